package vision

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/markusressel/notebot/internal/configuration"
	"github.com/markusressel/notebot/internal/util"
)

const cmdTimeout = 2 * time.Second

// Target is a fiducial (AprilTag) detected by the camera pipeline
type Target struct {
	FiducialId    int     `json:"fiducialId"`
	Yaw           float64 `json:"yaw"`
	Pitch         float64 `json:"pitch"`
	Area          float64 `json:"area"`
	Skew          float64 `json:"skew"`
	PoseAmbiguity float64 `json:"poseAmbiguity"`
}

// PipelineResult is the latest output of a camera pipeline
type PipelineResult struct {
	// Timestamp of the frame the result is based on
	Timestamp time.Time `json:"timestamp"`
	// Latency of the pipeline in milliseconds
	Latency float64  `json:"latency"`
	Targets []Target `json:"targets"`
}

func (r PipelineResult) HasTargets() bool {
	return len(r.Targets) > 0
}

type Camera interface {
	GetName() string

	GetLatestResult() (PipelineResult, error)
}

func NewCamera(config configuration.CameraConfig) (Camera, error) {
	if config.File != nil {
		return &FileCamera{
			Name: config.Name,
			Path: config.File.Path,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdCamera{
			Name: config.Name,
			Exec: config.Cmd.Exec,
			Args: config.Cmd.Args,
		}, nil
	}

	return nil, fmt.Errorf("no matching camera type for camera: %s", config.Name)
}

// FileCamera reads the pipeline result as JSON from a file written by an external pipeline
type FileCamera struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func (camera FileCamera) GetName() string {
	return camera.Name
}

func (camera FileCamera) GetLatestResult() (result PipelineResult, err error) {
	filePath, err := util.ExpandHomeDir(camera.Path)
	if err != nil {
		return result, err
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return result, fmt.Errorf("camera %s: %w", camera.Name, err)
	}
	return parseResult(camera.Name, data)
}

// CmdCamera executes a command which prints the pipeline result as JSON
type CmdCamera struct {
	Name string   `json:"name"`
	Exec string   `json:"exec"`
	Args []string `json:"args"`
}

func (camera CmdCamera) GetName() string {
	return camera.Name
}

func (camera CmdCamera) GetLatestResult() (result PipelineResult, err error) {
	output, err := util.SafeCmdExecution(camera.Exec, camera.Args, cmdTimeout)
	if err != nil {
		return result, fmt.Errorf("camera %s: %s", camera.Name, err.Error())
	}
	return parseResult(camera.Name, []byte(output))
}

func parseResult(name string, data []byte) (result PipelineResult, err error) {
	err = json.Unmarshal(data, &result)
	if err != nil {
		return result, fmt.Errorf("camera %s: invalid pipeline result: %w", name, err)
	}
	return result, nil
}
