package sensors

import (
	"fmt"
	"strconv"

	"github.com/markusressel/notebot/internal/ui"
	"github.com/markusressel/notebot/internal/util"
)

// CmdEncoder executes a command that prints the raw encoder value
type CmdEncoder struct {
	ID               string   `json:"id"`
	Exec             string   `json:"exec"`
	Args             []string `json:"args"`
	DistancePerPulse float64  `json:"distancePerPulse"`
}

func (encoder CmdEncoder) GetId() string {
	return encoder.ID
}

func (encoder CmdEncoder) GetDistance() (float64, error) {
	result, err := util.SafeCmdExecution(encoder.Exec, encoder.Args, cmdTimeout)
	if err != nil {
		return 0, fmt.Errorf("encoder %s: %s", encoder.ID, err.Error())
	}

	value, err := strconv.ParseFloat(result, 64)
	if err != nil {
		ui.Warning("encoder %s: Unable to read float from command output: %s", encoder.ID, encoder.Exec)
		return 0, err
	}

	return value * encoder.DistancePerPulse, nil
}

// CmdDigitalInput executes a command that prints "true"/"false" or "1"/"0"
type CmdDigitalInput struct {
	ID   string   `json:"id"`
	Exec string   `json:"exec"`
	Args []string `json:"args"`
}

func (input CmdDigitalInput) GetId() string {
	return input.ID
}

func (input CmdDigitalInput) Get() (bool, error) {
	result, err := util.SafeCmdExecution(input.Exec, input.Args, cmdTimeout)
	if err != nil {
		return false, fmt.Errorf("input %s: %s", input.ID, err.Error())
	}

	value, err := strconv.ParseBool(result)
	if err != nil {
		ui.Warning("input %s: Unable to read bool from command output: %s", input.ID, input.Exec)
		return false, err
	}
	return value, nil
}
