package sensors

import (
	"fmt"

	"github.com/markusressel/notebot/internal/util"
)

// FileEncoder reads the raw value from a file that is updated by an external driver
type FileEncoder struct {
	ID               string  `json:"id"`
	Path             string  `json:"path"`
	DistancePerPulse float64 `json:"distancePerPulse"`
}

func (encoder FileEncoder) GetId() string {
	return encoder.ID
}

func (encoder FileEncoder) GetDistance() (float64, error) {
	filePath, err := util.ExpandHomeDir(encoder.Path)
	if err != nil {
		return 0, err
	}
	value, err := util.ReadFloatFromFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("encoder %s: %w", encoder.ID, err)
	}
	return value * encoder.DistancePerPulse, nil
}

type FileDigitalInput struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

func (input FileDigitalInput) GetId() string {
	return input.ID
}

func (input FileDigitalInput) Get() (bool, error) {
	filePath, err := util.ExpandHomeDir(input.Path)
	if err != nil {
		return false, err
	}
	value, err := util.ReadBoolFromFile(filePath)
	if err != nil {
		return false, fmt.Errorf("input %s: %w", input.ID, err)
	}
	return value, nil
}
