package motors

// VirtualMotor only remembers what it was told, used for simulation and tests.
type VirtualMotor struct {
	motorBase

	// Output is the duty cycle a real motor would have received, after inversion
	Output float64 `json:"output"`
	// Volts is the last value passed to SetVoltage
	Volts float64 `json:"volts"`
}

func NewVirtualMotor(id string) *VirtualMotor {
	motor := &VirtualMotor{}
	motor.config.ID = id
	return motor
}

func (motor *VirtualMotor) Set(speed float64) error {
	return motor.apply(speed, func(output float64) error {
		motor.Output = output
		return nil
	})
}

func (motor *VirtualMotor) SetVoltage(volts float64) error {
	return motor.apply(volts/motor.busVoltage(), func(output float64) error {
		motor.Volts = volts
		motor.Output = output
		return nil
	})
}

// GetVoltage returns the last value passed to SetVoltage
func (motor *VirtualMotor) GetVoltage() float64 {
	motor.mu.Lock()
	defer motor.mu.Unlock()
	return motor.Volts
}
