package sensors

import (
	"fmt"
	"time"

	"github.com/markusressel/notebot/internal/configuration"
)

const cmdTimeout = 2 * time.Second

// Encoder measures a distance, for the arm this is an angle in radians.
type Encoder interface {
	GetId() string

	// GetDistance returns the current raw reading multiplied with the distance per pulse
	GetDistance() (float64, error)
}

// DigitalInput is a binary sensor, like a beam break or a limit switch.
type DigitalInput interface {
	GetId() string

	Get() (bool, error)
}

func NewEncoder(config configuration.EncoderConfig) (Encoder, error) {
	distancePerPulse := config.DistancePerPulse
	if distancePerPulse == 0 {
		distancePerPulse = 1
	}

	if config.File != nil {
		return &FileEncoder{
			ID:               config.ID,
			Path:             config.File.Path,
			DistancePerPulse: distancePerPulse,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdEncoder{
			ID:               config.ID,
			Exec:             config.Cmd.Exec,
			Args:             config.Cmd.Args,
			DistancePerPulse: distancePerPulse,
		}, nil
	}

	if config.Virtual != nil {
		return &VirtualEncoder{
			ID:               config.ID,
			Raw:              config.Virtual.Distance,
			DistancePerPulse: distancePerPulse,
		}, nil
	}

	return nil, fmt.Errorf("no matching encoder type for encoder: %s", config.ID)
}

func NewDigitalInput(config configuration.DigitalInputConfig) (DigitalInput, error) {
	if config.File != nil {
		return &FileDigitalInput{
			ID:   config.ID,
			Path: config.File.Path,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdDigitalInput{
			ID:   config.ID,
			Exec: config.Cmd.Exec,
			Args: config.Cmd.Args,
		}, nil
	}

	if config.Virtual != nil {
		return &VirtualDigitalInput{
			ID:    config.ID,
			Value: config.Virtual.Value,
		}, nil
	}

	return nil, fmt.Errorf("no matching input type for input: %s", config.ID)
}
