package vision

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/markusressel/notebot/internal/configuration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pipelineResult = `{
  "timestamp": "2024-03-01T12:00:00Z",
  "latency": 12.5,
  "targets": [
    {"fiducialId": 4, "yaw": 10.5, "pitch": -2, "area": 1.2, "skew": 0, "poseAmbiguity": 0.1},
    {"fiducialId": 7, "yaw": -3, "pitch": 1, "area": 0.8, "skew": 0, "poseAmbiguity": 0.2},
    {"fiducialId": 4, "yaw": 99, "pitch": 0, "area": 0.1, "skew": 0, "poseAmbiguity": 0.9}
  ]
}`

func createVision(t *testing.T, content string) *Vision {
	path := filepath.Join(t.TempDir(), "result.json")
	err := os.WriteFile(path, []byte(content), 0o644)
	require.NoError(t, err)
	camera, err := NewCamera(configuration.CameraConfig{
		Name: "back",
		File: &configuration.FileSensorConfig{Path: path},
	})
	require.NoError(t, err)
	return NewVision(camera)
}

func TestNewCamera_MissingSubConfig(t *testing.T) {
	// WHEN
	_, err := NewCamera(configuration.CameraConfig{Name: "back"})

	// THEN
	assert.EqualError(t, err, "no matching camera type for camera: back")
}

func TestVision_GetTargetForTag_ReturnsFirstMatch(t *testing.T) {
	// GIVEN
	vision := createVision(t, pipelineResult)

	// WHEN
	target, found, err := vision.GetTargetForTag(4)

	// THEN
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 10.5, target.Yaw)
}

func TestVision_GetTargetForTag_NotFound(t *testing.T) {
	// GIVEN
	vision := createVision(t, pipelineResult)

	// WHEN
	_, found, err := vision.GetTargetForTag(1)

	// THEN
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestVision_GetTargetForTag_NoTargets(t *testing.T) {
	// GIVEN
	vision := createVision(t, `{"targets": []}`)

	// WHEN
	_, found, err := vision.GetTargetForTag(4)

	// THEN
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestVision_InvalidResult(t *testing.T) {
	// GIVEN
	vision := createVision(t, "no json")

	// WHEN
	_, _, err := vision.GetTargetForTag(4)

	// THEN
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "camera back: invalid pipeline result")
}

func TestFileCamera_GetLatestResult(t *testing.T) {
	// GIVEN
	vision := createVision(t, pipelineResult)

	// WHEN
	result, err := vision.GetCamera().GetLatestResult()

	// THEN
	assert.NoError(t, err)
	assert.True(t, result.HasTargets())
	assert.Len(t, result.Targets, 3)
	assert.Equal(t, 12.5, result.Latency)
}
