package configuration

type VisionConfig struct {
	Camera CameraConfig `json:"camera"`
}

// CameraConfig describes where the latest pipeline result of a camera can be read.
// Exactly one of File or Cmd has to be set.
type CameraConfig struct {
	Name string `json:"name"`

	File *FileSensorConfig `json:"file,omitempty"`
	Cmd  *CmdSensorConfig  `json:"cmd,omitempty"`
}
