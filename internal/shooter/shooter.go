package shooter

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/markusressel/notebot/internal/configuration"
	"github.com/markusressel/notebot/internal/motors"
	"github.com/markusressel/notebot/internal/persistence"
	"github.com/markusressel/notebot/internal/tuning"
	"github.com/markusressel/notebot/internal/ui"
)

const (
	Name = "shooter"

	TuningTab   = "Shooter"
	TuningSpeed = "Shooter speed"
)

// Shooter spins a flywheel at an unregulated speed.
// The speed is persisted whenever it is changed on the dashboard.
type Shooter struct {
	mu sync.Mutex

	motor         motors.Motor
	preferences   persistence.Preferences
	preferenceKey string

	speed    float64
	spinning bool
}

type State struct {
	Speed    float64 `json:"speed"`
	Spinning bool    `json:"spinning"`
}

func NewShooter(config configuration.ShooterConfig, motor motors.Motor, preferences persistence.Preferences) (*Shooter, error) {
	if len(config.PreferenceKey) <= 0 {
		return nil, fmt.Errorf("shooter: missing preference key")
	}

	speed, err := preferences.GetFloat(config.PreferenceKey, config.Speed)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		ui.Warning("shooter: unable to load preference %s, using %.2f: %v", config.PreferenceKey, config.Speed, err)
		speed = config.Speed
	}

	return &Shooter{
		motor:         motor,
		preferences:   preferences,
		preferenceKey: config.PreferenceKey,
		speed:         speed,
	}, nil
}

func (s *Shooter) GetName() string {
	return Name
}

// PullTuning reads the speed from the dashboard and persists it if it was changed
func (s *Shooter) PullTuning(dashboard *tuning.Dashboard) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := dashboard.Tab(TuningTab).Add(TuningSpeed, s.speed, tuning.EntryOptions{Min: 0, Max: 1, Persistent: true})
	value := entry.Get()
	if value == s.speed {
		return
	}

	s.speed = value
	err := s.preferences.SetFloat(s.preferenceKey, value)
	if err != nil {
		ui.Error("shooter: unable to persist speed %.2f: %v", value, err)
	}
}

// Periodic keeps the flywheel at the current speed while spinning
func (s *Shooter) Periodic(dt time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.spinning {
		return nil
	}
	return s.setMotor(s.speed)
}

func (s *Shooter) SpinUp() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spinning = true
	return s.setMotor(s.speed)
}

func (s *Shooter) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spinning = false
	return s.setMotor(0)
}

func (s *Shooter) IsSpinning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spinning
}

func (s *Shooter) GetSpeed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speed
}

func (s *Shooter) GetState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Speed:    s.speed,
		Spinning: s.spinning,
	}
}

func (s *Shooter) setMotor(speed float64) error {
	err := s.motor.Set(speed)
	if err != nil {
		return fmt.Errorf("shooter: %w", err)
	}
	return nil
}
