package intake

import (
	"fmt"
	"sync"
	"time"

	"github.com/markusressel/notebot/internal/configuration"
	"github.com/markusressel/notebot/internal/motors"
	"github.com/markusressel/notebot/internal/sensors"
	"github.com/markusressel/notebot/internal/tuning"
	"github.com/markusressel/notebot/internal/ui"
)

const (
	Name = "intake"

	TuningTab   = "Intake"
	TuningSpeed = "Intake speed"
)

// Intake picks up notes. A beam break sensor detects whether a note is held.
type Intake struct {
	mu sync.Mutex

	motor     motors.Motor
	beamBreak sensors.DigitalInput

	defaultSpeed float64
	speed        float64

	hasNote   bool
	running   bool
	pickingUp bool
}

type State struct {
	HasNote   bool    `json:"hasNote"`
	Running   bool    `json:"running"`
	PickingUp bool    `json:"pickingUp"`
	Speed     float64 `json:"speed"`
}

func NewIntake(config configuration.IntakeConfig, motor motors.Motor, beamBreak sensors.DigitalInput) (*Intake, error) {
	if config.Speed < -1 || config.Speed > 1 {
		return nil, fmt.Errorf("intake: speed must be in [-1..1], got %.2f", config.Speed)
	}
	return &Intake{
		motor:        motor,
		beamBreak:    beamBreak,
		defaultSpeed: config.Speed,
		speed:        config.Speed,
	}, nil
}

func (i *Intake) GetName() string {
	return Name
}

func (i *Intake) PullTuning(dashboard *tuning.Dashboard) {
	i.mu.Lock()
	defer i.mu.Unlock()
	entry := dashboard.Tab(TuningTab).Add(TuningSpeed, i.defaultSpeed, tuning.EntryOptions{Min: -1, Max: 1})
	i.speed = entry.Get()
}

// Periodic updates the note detection, and ends a pickup once a note is held
func (i *Intake) Periodic(dt time.Duration) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	beam, err := i.beamBreak.Get()
	if err != nil {
		ui.Warning("intake: unable to read beam break %s: %v", i.beamBreak.GetId(), err)
	} else {
		// "true" means the beam is NOT broken
		i.hasNote = !beam
	}

	if i.pickingUp && i.hasNote {
		ui.Debug("intake: note detected, stopping pickup")
		i.pickingUp = false
		return i.setMotor(0)
	}

	if i.running {
		return i.setMotor(i.speed)
	}
	return nil
}

// Start runs the intake motor at the tuned speed
func (i *Intake) Start() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.setMotor(i.speed)
}

func (i *Intake) Stop() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.pickingUp = false
	return i.setMotor(0)
}

// PickupNote starts the intake and stops it automatically once a note is detected.
// Nothing happens if a note is already held.
func (i *Intake) PickupNote() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.hasNote {
		ui.Info("intake: already holding a note")
		return nil
	}
	i.pickingUp = true
	return i.setMotor(i.speed)
}

func (i *Intake) HasNote() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.hasNote
}

func (i *Intake) GetSpeed() float64 {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.speed
}

func (i *Intake) GetState() State {
	i.mu.Lock()
	defer i.mu.Unlock()
	return State{
		HasNote:   i.hasNote,
		Running:   i.running,
		PickingUp: i.pickingUp,
		Speed:     i.speed,
	}
}

func (i *Intake) setMotor(speed float64) error {
	i.running = speed != 0
	err := i.motor.Set(speed)
	if err != nil {
		return fmt.Errorf("intake: %w", err)
	}
	return nil
}
