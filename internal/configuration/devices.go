package configuration

// MotorConfig describes how a motor controller is reached.
// Exactly one of File, Cmd or Virtual has to be set.
type MotorConfig struct {
	ID string `json:"id"`
	// Inverted flips the direction of all commands sent to the motor
	Inverted bool `json:"inverted"`
	// BusVoltage is used to translate voltage commands into a duty cycle, defaults to 12V
	BusVoltage float64 `json:"busVoltage"`

	File    *FileMotorConfig    `json:"file,omitempty"`
	Cmd     *CmdMotorConfig     `json:"cmd,omitempty"`
	Virtual *VirtualMotorConfig `json:"virtual,omitempty"`
}

type FileMotorConfig struct {
	// Path of the file that receives the duty cycle in [-1..1]
	Path string `json:"path"`
}

type CmdMotorConfig struct {
	// Exec is executed on each speed change, "%speed%" in Args is
	// replaced with the duty cycle in [-1..1]
	Exec string   `json:"exec"`
	Args []string `json:"args"`
}

type VirtualMotorConfig struct {
}

// EncoderConfig describes a position sensor.
// Exactly one of File, Cmd or Virtual has to be set.
type EncoderConfig struct {
	ID string `json:"id"`
	// DistancePerPulse scales the raw reading to radians, defaults to 1
	DistancePerPulse float64 `json:"distancePerPulse"`

	File    *FileSensorConfig     `json:"file,omitempty"`
	Cmd     *CmdSensorConfig      `json:"cmd,omitempty"`
	Virtual *VirtualEncoderConfig `json:"virtual,omitempty"`
}

// DigitalInputConfig describes a binary sensor, like a beam break.
type DigitalInputConfig struct {
	ID string `json:"id"`

	File    *FileSensorConfig          `json:"file,omitempty"`
	Cmd     *CmdSensorConfig           `json:"cmd,omitempty"`
	Virtual *VirtualDigitalInputConfig `json:"virtual,omitempty"`
}

type FileSensorConfig struct {
	Path string `json:"path"`
}

type CmdSensorConfig struct {
	Exec string   `json:"exec"`
	Args []string `json:"args"`
}

type VirtualEncoderConfig struct {
	// Distance is the initial raw reading
	Distance float64 `json:"distance"`
}

type VirtualDigitalInputConfig struct {
	Value bool `json:"value"`
}
