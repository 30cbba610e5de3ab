package motors

import (
	"github.com/markusressel/notebot/internal/util"
)

// FileMotor writes the duty cycle to a file, which is picked up by an external motor driver.
type FileMotor struct {
	motorBase
}

func (motor *FileMotor) Set(speed float64) error {
	return motor.apply(speed, func(output float64) error {
		filePath, err := util.ExpandHomeDir(motor.config.File.Path)
		if err != nil {
			return err
		}
		return util.WriteFloatToFileAtomic(output, filePath)
	})
}

func (motor *FileMotor) SetVoltage(volts float64) error {
	return motor.Set(volts / motor.busVoltage())
}
