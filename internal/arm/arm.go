package arm

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/asecurityteam/rolling"
	"github.com/markusressel/notebot/internal/configuration"
	"github.com/markusressel/notebot/internal/control"
	"github.com/markusressel/notebot/internal/motors"
	"github.com/markusressel/notebot/internal/sensors"
	"github.com/markusressel/notebot/internal/ui"
	"github.com/markusressel/notebot/internal/util"
)

const (
	Name = "arm"

	TuningTab          = "Arm"
	TuningKP           = "kP"
	TuningKI           = "kI"
	TuningKD           = "kD"
	TuningHandlerSpeed = "Handler speed"

	defaultTrackingWindowSize = 50
)

// Arm moves a mechanical arm to a goal angle using a profiled PID controller
// combined with a gravity compensating feedforward.
// The arm also carries a handler motor, which feeds notes in either direction.
//
// All angles are in radians.
type Arm struct {
	mu sync.Mutex

	controller   *control.ProfiledPidController
	feedforward  control.ArmFeedforward
	motor        motors.Motor
	handlerMotor motors.Motor
	encoder      sensors.Encoder

	minAngle      float64
	maxAngle      float64
	bumpIncrement float64
	offset        float64

	defaultHandlerSpeed float64
	handlerSpeed        float64

	enabled bool

	measurement      float64
	pidOutput        float64
	feedforwardVolts float64
	outputVolts      float64
	trackingErrors   *rolling.PointPolicy
}

// State is a snapshot of the arm
type State struct {
	Enabled          bool          `json:"enabled"`
	Goal             control.State `json:"goal"`
	Setpoint         control.State `json:"setpoint"`
	Measurement      float64       `json:"measurement"`
	PidOutput        float64       `json:"pidOutput"`
	FeedforwardVolts float64       `json:"feedforwardVolts"`
	OutputVolts      float64       `json:"outputVolts"`
	AvgTrackingError float64       `json:"avgTrackingError"`
	AtGoal           bool          `json:"atGoal"`
	HandlerSpeed     float64       `json:"handlerSpeed"`
	MinAngle         float64       `json:"minAngle"`
	MaxAngle         float64       `json:"maxAngle"`
}

// NewArm creates a new arm. handlerMotor may be nil if the arm has no handler.
func NewArm(
	config configuration.ArmConfig,
	motor motors.Motor,
	handlerMotor motors.Motor,
	encoder sensors.Encoder,
) (*Arm, error) {
	minAngle := config.MinAngle.Radians()
	maxAngle := config.MaxAngle.Radians()
	if minAngle > maxAngle {
		return nil, fmt.Errorf("arm: min angle %.2f is greater than max angle %.2f", config.MinAngle.Degrees(), config.MaxAngle.Degrees())
	}
	if config.MaxVelocity <= 0 {
		return nil, fmt.Errorf("arm: max velocity must be > 0, got %.2f", config.MaxVelocity)
	}
	if config.MaxAcceleration <= 0 {
		return nil, fmt.Errorf("arm: max acceleration must be > 0, got %.2f", config.MaxAcceleration)
	}
	if motor == nil || encoder == nil {
		return nil, fmt.Errorf("arm: motor and encoder are required")
	}

	windowSize := config.TrackingWindowSize
	if windowSize <= 0 {
		windowSize = defaultTrackingWindowSize
	}

	controller := control.NewProfiledPidController(
		config.KP, config.KI, config.KD,
		control.Constraints{
			MaxVelocity:     config.MaxVelocity,
			MaxAcceleration: config.MaxAcceleration,
		},
	)
	if config.PositionTolerance > 0 {
		controller.SetTolerance(config.PositionTolerance)
	}

	a := &Arm{
		controller:          controller,
		feedforward:         control.NewArmFeedforward(config.KS, config.KG, config.KV, config.KA),
		motor:               motor,
		handlerMotor:        handlerMotor,
		encoder:             encoder,
		minAngle:            minAngle,
		maxAngle:            maxAngle,
		bumpIncrement:       config.BumpIncrement,
		offset:              config.Offset,
		defaultHandlerSpeed: config.HandlerDefaultSpeed,
		handlerSpeed:        config.HandlerDefaultSpeed,
		trackingErrors:      util.CreateRollingWindow(windowSize),
	}
	a.setGoal(0)

	if config.EnableOnStart.Get() {
		a.enable()
	}

	return a, nil
}

func (a *Arm) GetName() string {
	return Name
}

// SetGoal sets the goal angle, clamped to the allowed range
func (a *Arm) SetGoal(position float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.setGoal(position)
}

func (a *Arm) SetGoalDegrees(degrees float64) {
	a.SetGoal(util.DegreesToRadians(degrees))
}

func (a *Arm) setGoal(position float64) {
	a.controller.SetGoal(util.Coerce(position, a.minAngle, a.maxAngle))
}

// BumpUp raises the goal by the bump increment.
// The current goal is used as base, not the measurement, so repeated bumps add up.
func (a *Arm) BumpUp() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.setGoal(a.controller.GetGoal().Position + a.bumpIncrement)
}

// BumpDown lowers the goal by the bump increment.
func (a *Arm) BumpDown() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.setGoal(a.controller.GetGoal().Position - a.bumpIncrement)
}

func (a *Arm) GetGoal() control.State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.controller.GetGoal()
}

// GetMeasurement returns the last measured angle
func (a *Arm) GetMeasurement() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.measurement
}

// Enable starts closed loop control, the profile starts at the current measurement
func (a *Arm) Enable() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enable()
}

func (a *Arm) enable() {
	a.enabled = true
	a.controller.Reset(a.measure())
}

// Disable stops closed loop control and releases the arm motor
func (a *Arm) Disable() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = false
	return a.applyVoltage(0)
}

func (a *Arm) IsEnabled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.enabled
}

// Periodic advances the arm by one tick: measure, calculate and apply the motor voltage.
// It has to be called exactly once per tick.
func (a *Arm) Periodic(dt time.Duration) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	measured := a.measure()
	if !a.enabled {
		a.pidOutput = 0
		a.feedforwardVolts = 0
		return a.applyVoltage(0)
	}

	a.pidOutput = a.controller.Calculate(measured, dt)
	setpoint := a.controller.GetSetpoint()
	a.feedforwardVolts = a.feedforward.Calculate(setpoint.Position, setpoint.Velocity, 0)
	a.trackingErrors.Append(setpoint.Position - measured)

	return a.applyVoltage(a.pidOutput + a.feedforwardVolts)
}

// Stop disables the arm and stops the handler, if there is one
func (a *Arm) Stop() error {
	err := a.Disable()
	if a.handlerMotor == nil {
		return err
	}
	return errors.Join(err, a.HandlerMotorStop())
}

// measure reads the encoder once, on failure the last measurement is reused
func (a *Arm) measure() float64 {
	distance, err := a.encoder.GetDistance()
	if err != nil {
		ui.Warning("arm: unable to read encoder %s, reusing last measurement: %v", a.encoder.GetId(), err)
		return a.measurement
	}
	a.measurement = distance + a.offset
	return a.measurement
}

func (a *Arm) applyVoltage(volts float64) error {
	a.outputVolts = volts
	err := a.motor.SetVoltage(volts)
	if err != nil {
		return fmt.Errorf("arm: %w", err)
	}
	return nil
}

func (a *Arm) GetState() State {
	a.mu.Lock()
	defer a.mu.Unlock()

	avgTrackingError := 0.0
	if a.trackingErrors.Reduce(rolling.Count) > 0 {
		avgTrackingError = util.GetWindowAvg(a.trackingErrors)
	}

	return State{
		Enabled:          a.enabled,
		Goal:             a.controller.GetGoal(),
		Setpoint:         a.controller.GetSetpoint(),
		Measurement:      a.measurement,
		PidOutput:        a.pidOutput,
		FeedforwardVolts: a.feedforwardVolts,
		OutputVolts:      a.outputVolts,
		AvgTrackingError: avgTrackingError,
		AtGoal:           a.enabled && a.controller.AtGoal(),
		HandlerSpeed:     a.handlerSpeed,
		MinAngle:         a.minAngle,
		MaxAngle:         a.maxAngle,
	}
}
