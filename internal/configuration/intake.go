package configuration

type IntakeConfig struct {
	// Speed is the default duty cycle in [-1..1], can be tuned at runtime
	Speed float64 `json:"speed"`

	Motor MotorConfig `json:"motor"`
	// BeamBreak reports "true" while the beam is NOT broken
	BeamBreak DigitalInputConfig `json:"beamBreak"`
}
