package sensors

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/markusressel/notebot/internal/configuration"
	"github.com/stretchr/testify/assert"
)

func TestNewEncoder_MissingSubConfig(t *testing.T) {
	// WHEN
	encoder, err := NewEncoder(configuration.EncoderConfig{ID: "arm"})

	// THEN
	assert.Nil(t, encoder)
	assert.EqualError(t, err, "no matching encoder type for encoder: arm")
}

func TestVirtualEncoder_DistancePerPulse(t *testing.T) {
	// GIVEN
	encoder, err := NewEncoder(configuration.EncoderConfig{
		ID:               "arm",
		DistancePerPulse: 0.5,
		Virtual:          &configuration.VirtualEncoderConfig{Distance: 3},
	})
	assert.NoError(t, err)

	// WHEN
	distance, err := encoder.GetDistance()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 1.5, distance)
}

func TestVirtualEncoder_DefaultDistancePerPulse(t *testing.T) {
	// GIVEN
	encoder, _ := NewEncoder(configuration.EncoderConfig{
		ID:      "arm",
		Virtual: &configuration.VirtualEncoderConfig{Distance: 0.25},
	})

	// WHEN
	encoder.(*VirtualEncoder).SetRaw(0.75)
	distance, err := encoder.GetDistance()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 0.75, distance)
}

func TestVirtualEncoder_Error(t *testing.T) {
	// GIVEN
	encoder := &VirtualEncoder{ID: "arm"}
	encoder.SetError(errors.New("disconnected"))

	// WHEN
	_, err := encoder.GetDistance()

	// THEN
	assert.EqualError(t, err, "disconnected")
}

func TestFileEncoder_GetDistance(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "encoder")
	err := os.WriteFile(path, []byte("200\n"), 0o644)
	assert.NoError(t, err)
	encoder, _ := NewEncoder(configuration.EncoderConfig{
		ID:               "arm",
		DistancePerPulse: 0.01,
		File:             &configuration.FileSensorConfig{Path: path},
	})

	// WHEN
	distance, err := encoder.GetDistance()

	// THEN
	assert.NoError(t, err)
	assert.InDelta(t, 2.0, distance, 1e-9)
}

func TestFileEncoder_MissingFile(t *testing.T) {
	// GIVEN
	encoder, _ := NewEncoder(configuration.EncoderConfig{
		ID:   "arm",
		File: &configuration.FileSensorConfig{Path: filepath.Join(t.TempDir(), "missing")},
	})

	// WHEN
	_, err := encoder.GetDistance()

	// THEN
	assert.Error(t, err)
}

func TestFileDigitalInput_Get(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "beam")
	err := os.WriteFile(path, []byte("0"), 0o644)
	assert.NoError(t, err)
	input, _ := NewDigitalInput(configuration.DigitalInputConfig{
		ID:   "beam",
		File: &configuration.FileSensorConfig{Path: path},
	})

	// WHEN
	value, err := input.Get()

	// THEN
	assert.NoError(t, err)
	assert.False(t, value)
}

func TestVirtualDigitalInput(t *testing.T) {
	// GIVEN
	input, err := NewDigitalInput(configuration.DigitalInputConfig{
		ID:      "beam",
		Virtual: &configuration.VirtualDigitalInputConfig{Value: true},
	})
	assert.NoError(t, err)

	// WHEN
	input.(*VirtualDigitalInput).Set(false)
	value, err := input.Get()

	// THEN
	assert.NoError(t, err)
	assert.False(t, value)
}

func TestNewDigitalInput_MissingSubConfig(t *testing.T) {
	// WHEN
	_, err := NewDigitalInput(configuration.DigitalInputConfig{ID: "beam"})

	// THEN
	assert.EqualError(t, err, "no matching input type for input: beam")
}
