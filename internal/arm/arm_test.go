package arm

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/markusressel/notebot/internal/configuration"
	"github.com/markusressel/notebot/internal/motors"
	"github.com/markusressel/notebot/internal/sensors"
	"github.com/markusressel/notebot/internal/tuning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 20 * time.Millisecond

type testArm struct {
	arm          *Arm
	motor        *motors.VirtualMotor
	handlerMotor *motors.VirtualMotor
	encoder      *sensors.VirtualEncoder
}

func createConfig() configuration.ArmConfig {
	return configuration.ArmConfig{
		KP:                  10,
		MaxVelocity:         10,
		MaxAcceleration:     500,
		MinAngle:            configuration.AngleFromDegrees(0),
		MaxAngle:            configuration.AngleFromDegrees(90),
		BumpIncrement:       configuration.AngleFromDegrees(5).Radians(),
		PositionTolerance:   0.01,
		HandlerDefaultSpeed: 0.5,
	}
}

func createArm(t *testing.T, config configuration.ArmConfig) testArm {
	motor := motors.NewVirtualMotor("arm")
	handlerMotor := motors.NewVirtualMotor("handler")
	encoder := &sensors.VirtualEncoder{ID: "arm_encoder"}
	a, err := NewArm(config, motor, handlerMotor, encoder)
	require.NoError(t, err)
	return testArm{
		arm:          a,
		motor:        motor,
		handlerMotor: handlerMotor,
		encoder:      encoder,
	}
}

func TestNewArm_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *configuration.ArmConfig)
		err    string
	}{
		{"min greater than max", func(c *configuration.ArmConfig) {
			c.MinAngle = configuration.AngleFromDegrees(100)
		}, "arm: min angle 100.00 is greater than max angle 90.00"},
		{"zero velocity", func(c *configuration.ArmConfig) { c.MaxVelocity = 0 }, "arm: max velocity must be > 0, got 0.00"},
		{"negative acceleration", func(c *configuration.ArmConfig) { c.MaxAcceleration = -1 }, "arm: max acceleration must be > 0, got -1.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// GIVEN
			config := createConfig()
			tt.modify(&config)

			// WHEN
			a, err := NewArm(config, motors.NewVirtualMotor("arm"), nil, &sensors.VirtualEncoder{})

			// THEN
			assert.Nil(t, a)
			assert.EqualError(t, err, tt.err)
		})
	}
}

func TestNewArm_InitialGoalIsClamped(t *testing.T) {
	// GIVEN
	config := createConfig()
	config.MinAngle = configuration.AngleFromDegrees(10)

	// WHEN
	a := createArm(t, config).arm

	// THEN
	assert.InDelta(t, config.MinAngle.Radians(), a.GetGoal().Position, 1e-9)
}

func TestArm_SetGoalIsClamped(t *testing.T) {
	// GIVEN
	a := createArm(t, createConfig()).arm
	maxAngle := math.Pi / 2

	for _, requested := range []float64{-100, -1, 0, 0.5, maxAngle, 2, 1000, math.Inf(1)} {
		// WHEN
		a.SetGoal(requested)

		// THEN
		goal := a.GetGoal()
		assert.GreaterOrEqual(t, goal.Position, 0.0)
		assert.LessOrEqual(t, goal.Position, maxAngle+1e-12)
		assert.Equal(t, 0.0, goal.Velocity)
	}
}

func TestArm_SetGoalDegrees(t *testing.T) {
	// GIVEN
	a := createArm(t, createConfig()).arm

	// WHEN
	a.SetGoalDegrees(45)

	// THEN
	assert.InDelta(t, math.Pi/4, a.GetGoal().Position, 1e-9)
}

func TestArm_BumpUpIsClampedToMax(t *testing.T) {
	// GIVEN
	a := createArm(t, createConfig()).arm

	// WHEN
	for i := 0; i < 20; i++ {
		a.BumpUp()
	}

	// THEN
	assert.InDelta(t, 90.0, a.GetGoal().Position*180/math.Pi, 1e-9)
}

func TestArm_BumpMonotonicity(t *testing.T) {
	// GIVEN
	config := createConfig()
	a := createArm(t, config).arm
	increment := config.BumpIncrement

	for n := 1; n <= 25; n++ {
		// WHEN
		a.BumpUp()

		// THEN
		expected := math.Min(float64(n)*increment, math.Pi/2)
		assert.InDelta(t, expected, a.GetGoal().Position, 1e-9, "bump %d", n)
	}

	for n := 1; n <= 25; n++ {
		// WHEN
		a.BumpDown()

		// THEN
		expected := math.Max(math.Pi/2-float64(n)*increment, 0)
		assert.InDelta(t, expected, a.GetGoal().Position, 1e-9, "bump %d", n)
	}
}

func TestArm_BumpIsBasedOnGoal(t *testing.T) {
	// GIVEN
	test := createArm(t, createConfig())
	test.encoder.SetRaw(0)
	test.arm.SetGoal(0.5)
	_ = test.arm.Periodic(tick)

	// WHEN
	test.arm.BumpUp()
	test.arm.BumpUp()

	// THEN
	// the arm has barely moved, but the goal advances twice
	assert.InDelta(t, 0.5+2*createConfig().BumpIncrement, test.arm.GetGoal().Position, 1e-9)
}

func TestArm_PeriodicAppliesPidAndFeedforward(t *testing.T) {
	// GIVEN
	config := createConfig()
	config.KG = 1
	test := createArm(t, config)
	test.arm.SetGoal(math.Pi / 2)

	// WHEN
	err := test.arm.Periodic(tick)

	// THEN
	assert.NoError(t, err)
	state := test.arm.GetState()
	assert.InDelta(t, 0.1, state.Setpoint.Position, 1e-9)
	assert.InDelta(t, 1.0, state.PidOutput, 1e-9)
	assert.InDelta(t, math.Cos(0.1), state.FeedforwardVolts, 1e-9)
	assert.InDelta(t, 1.0+math.Cos(0.1), test.motor.Volts, 1e-9)
	assert.InDelta(t, 1.0+math.Cos(0.1), state.OutputVolts, 1e-9)
}

func TestArm_FeedforwardUsesSetpoint(t *testing.T) {
	// GIVEN
	config := createConfig()
	config.KS = 0.5
	config.KV = 0.1
	test := createArm(t, config)
	test.arm.SetGoal(1)

	// WHEN
	_ = test.arm.Periodic(tick)

	// THEN
	setpoint := test.arm.GetState().Setpoint
	assert.Greater(t, setpoint.Velocity, 0.0)
	assert.InDelta(t, 0.5+0.1*setpoint.Velocity, test.arm.GetState().FeedforwardVolts, 1e-9)
}

func TestArm_MeasurementAppliesOffset(t *testing.T) {
	// GIVEN
	config := createConfig()
	config.Offset = 0.1
	test := createArm(t, config)
	test.encoder.SetRaw(0.2)

	// WHEN
	_ = test.arm.Periodic(tick)

	// THEN
	assert.InDelta(t, 0.3, test.arm.GetMeasurement(), 1e-9)
}

func TestArm_SensorFailureReusesLastMeasurement(t *testing.T) {
	// GIVEN
	test := createArm(t, createConfig())
	test.encoder.SetRaw(0.4)
	_ = test.arm.Periodic(tick)

	// WHEN
	test.encoder.SetError(errors.New("disconnected"))
	err := test.arm.Periodic(tick)

	// THEN
	assert.NoError(t, err)
	assert.InDelta(t, 0.4, test.arm.GetMeasurement(), 1e-9)
}

func TestArm_DisabledAppliesZeroVolts(t *testing.T) {
	// GIVEN
	config := createConfig()
	config.KG = 1
	config.EnableOnStart.SetOverride(false)
	test := createArm(t, config)
	test.arm.SetGoal(1)

	// WHEN
	err := test.arm.Periodic(tick)

	// THEN
	assert.NoError(t, err)
	assert.False(t, test.arm.IsEnabled())
	assert.Equal(t, 0.0, test.motor.Volts)
}

func TestArm_EnableResetsSetpointToMeasurement(t *testing.T) {
	// GIVEN
	config := createConfig()
	config.EnableOnStart.SetOverride(false)
	test := createArm(t, config)
	test.encoder.SetRaw(0.7)

	// WHEN
	test.arm.Enable()

	// THEN
	assert.True(t, test.arm.IsEnabled())
	assert.InDelta(t, 0.7, test.arm.GetState().Setpoint.Position, 1e-9)
}

func TestArm_DisableStopsMotor(t *testing.T) {
	// GIVEN
	config := createConfig()
	config.KG = 1
	test := createArm(t, config)
	_ = test.arm.Periodic(tick)
	assert.NotEqual(t, 0.0, test.motor.Volts)

	// WHEN
	err := test.arm.Disable()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 0.0, test.motor.Volts)
}

// failingMotor rejects every voltage
type failingMotor struct {
	*motors.VirtualMotor
}

func (m failingMotor) SetVoltage(volts float64) error {
	return errors.New("bus off")
}

func TestArm_Stop(t *testing.T) {
	// GIVEN
	config := createConfig()
	config.KG = 1
	test := createArm(t, config)
	_ = test.arm.Periodic(tick)
	require.NoError(t, test.arm.HandlerMotorDriveForward())

	// WHEN
	err := test.arm.Stop()

	// THEN
	assert.NoError(t, err)
	assert.False(t, test.arm.IsEnabled())
	assert.Equal(t, 0.0, test.motor.Volts)
	assert.Equal(t, 0.0, test.handlerMotor.Get())
}

func TestArm_StopWithoutHandler(t *testing.T) {
	// GIVEN
	motor := motors.NewVirtualMotor("arm")
	a, err := NewArm(createConfig(), motor, nil, &sensors.VirtualEncoder{})
	require.NoError(t, err)

	// WHEN
	err = a.Stop()

	// THEN
	assert.NoError(t, err)
	assert.False(t, a.IsEnabled())
	assert.Equal(t, 0.0, motor.Volts)
}

func TestArm_StopStopsHandlerWhenMotorFails(t *testing.T) {
	// GIVEN
	handlerMotor := motors.NewVirtualMotor("handler")
	a, err := NewArm(createConfig(), failingMotor{motors.NewVirtualMotor("arm")}, handlerMotor, &sensors.VirtualEncoder{})
	require.NoError(t, err)
	require.NoError(t, a.HandlerMotorDriveForward())

	// WHEN
	err = a.Stop()

	// THEN
	assert.EqualError(t, err, "arm: bus off")
	assert.False(t, a.IsEnabled())
	assert.Equal(t, 0.0, handlerMotor.Get())
}

func TestArm_ConvergesToGoal(t *testing.T) {
	// GIVEN
	config := createConfig()
	config.MaxVelocity = 3
	config.MaxAcceleration = 10
	test := createArm(t, config)
	test.arm.SetGoal(1)

	// WHEN
	// an ideal arm follows its setpoint
	for i := 0; i < 100; i++ {
		_ = test.arm.Periodic(tick)
		test.encoder.SetRaw(test.arm.GetState().Setpoint.Position)
	}
	_ = test.arm.Periodic(tick)

	// THEN
	state := test.arm.GetState()
	assert.InDelta(t, 1.0, state.Measurement, 1e-9)
	assert.Equal(t, 0.0, state.Setpoint.Velocity)
	assert.True(t, state.AtGoal)
}

func TestArm_GetStateWithoutTicks(t *testing.T) {
	// GIVEN
	a := createArm(t, createConfig()).arm

	// WHEN
	state := a.GetState()

	// THEN
	assert.Equal(t, 0.0, state.AvgTrackingError)
	assert.True(t, state.Enabled)
}

func TestArm_Handler(t *testing.T) {
	// GIVEN
	test := createArm(t, createConfig())

	// WHEN
	err := test.arm.HandlerMotorDriveForward()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 0.5, test.handlerMotor.Get())

	// WHEN
	err = test.arm.HandlerMotorDriveBackward()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, -0.5, test.handlerMotor.Get())

	// WHEN
	err = test.arm.HandlerMotorStop()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 0.0, test.handlerMotor.Get())
}

func TestArm_HandlerMissing(t *testing.T) {
	// GIVEN
	a, err := NewArm(createConfig(), motors.NewVirtualMotor("arm"), nil, &sensors.VirtualEncoder{})
	require.NoError(t, err)

	// WHEN
	err = a.HandlerMotorDriveForward()

	// THEN
	assert.EqualError(t, err, "arm: no handler motor configured")
}

func TestArm_PullTuning(t *testing.T) {
	// GIVEN
	test := createArm(t, createConfig())
	dashboard := tuning.NewDashboard()
	test.arm.PullTuning(dashboard)

	// WHEN
	_, err := dashboard.Set(TuningTab, TuningHandlerSpeed, 0.8)
	require.NoError(t, err)
	_, err = dashboard.Set(TuningTab, TuningKP, 2)
	require.NoError(t, err)
	test.arm.PullTuning(dashboard)

	// THEN
	assert.Equal(t, 0.8, test.arm.GetHandlerSpeed())
	assert.Equal(t, 2.0, test.arm.controller.GetP())
	entry, ok := dashboard.Get(TuningTab, TuningKP)
	assert.True(t, ok)
	assert.Equal(t, 10.0, entry.Default)
}

func TestArm_HandlerSpeedDefaultsToConfig(t *testing.T) {
	// GIVEN
	test := createArm(t, createConfig())

	// WHEN
	test.arm.PullTuning(tuning.NewDashboard())

	// THEN
	assert.Equal(t, 0.5, test.arm.GetHandlerSpeed())
}
