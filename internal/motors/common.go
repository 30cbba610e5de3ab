package motors

import (
	"fmt"
	"sync"

	"github.com/markusressel/notebot/internal/configuration"
	"github.com/markusressel/notebot/internal/util"
	cmap "github.com/orcaman/concurrent-map/v2"
)

const (
	MaxSpeed = 1.0
	MinSpeed = -1.0

	DefaultBusVoltage = 12.0
)

var (
	MotorMap = cmap.New[Motor]()
)

type Motor interface {
	GetId() string

	GetConfig() configuration.MotorConfig

	// Set applies the given duty cycle in [-1..1]
	Set(speed float64) error
	// SetVoltage applies the given voltage, relative to the bus voltage of the motor
	SetVoltage(volts float64) error

	// Get returns the last commanded duty cycle, before inversion
	Get() float64

	IsInverted() bool
}

func NewMotor(config configuration.MotorConfig) (Motor, error) {
	if config.File != nil {
		return &FileMotor{motorBase: motorBase{config: config}}, nil
	}

	if config.Cmd != nil {
		return &CmdMotor{motorBase: motorBase{config: config}}, nil
	}

	if config.Virtual != nil {
		return &VirtualMotor{motorBase: motorBase{config: config}}, nil
	}

	return nil, fmt.Errorf("no matching motor type for motor: %s", config.ID)
}

// motorBase holds the state shared by all motor implementations
type motorBase struct {
	config configuration.MotorConfig

	mu    sync.Mutex
	speed float64
}

func (m *motorBase) GetId() string {
	return m.config.ID
}

func (m *motorBase) GetConfig() configuration.MotorConfig {
	return m.config
}

func (m *motorBase) IsInverted() bool {
	return m.config.Inverted
}

func (m *motorBase) Get() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.speed
}

func (m *motorBase) busVoltage() float64 {
	if m.config.BusVoltage > 0 {
		return m.config.BusVoltage
	}
	return DefaultBusVoltage
}

// apply clamps the speed, remembers it and passes the inverted value to write
func (m *motorBase) apply(speed float64, write func(output float64) error) error {
	speed = util.Coerce(speed, MinSpeed, MaxSpeed)
	output := speed
	if m.config.Inverted {
		output = -speed
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	err := write(output)
	if err != nil {
		return fmt.Errorf("motor %s: %w", m.config.ID, err)
	}
	m.speed = speed
	return nil
}
