package motors

import (
	"strconv"
	"time"

	"github.com/markusressel/notebot/internal/util"
)

// CmdMotor executes a command on every change of the duty cycle
type CmdMotor struct {
	motorBase
}

func (motor *CmdMotor) Set(speed float64) error {
	return motor.apply(speed, func(output float64) error {
		timeout := 2 * time.Second
		exec := motor.config.Cmd.Exec
		value := strconv.FormatFloat(output, 'f', -1, 64)
		args := util.ReplacePlaceholder(motor.config.Cmd.Args, "speed", value)
		_, err := util.SafeCmdExecution(exec, args, timeout)
		return err
	})
}

func (motor *CmdMotor) SetVoltage(volts float64) error {
	return motor.Set(volts / motor.busVoltage())
}
