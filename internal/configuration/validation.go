package configuration

import (
	"errors"
	"fmt"

	"github.com/markusressel/notebot/internal/ui"
	"github.com/markusressel/notebot/internal/util"
	"golang.org/x/exp/slices"
)

func Validate(configPath string) error {
	return validateConfig(&CurrentConfig, configPath)
}

func validateConfig(config *Configuration, path string) error {
	if config.TickRate <= 0 {
		return fmt.Errorf("tickRate must be > 0, got %v", config.TickRate)
	}

	err := validateArm(&config.Arm)
	if err != nil {
		return err
	}
	err = validateIntake(config.Intake)
	if err != nil {
		return err
	}
	err = validateShooter(config.Shooter)
	if err != nil {
		return err
	}
	err = validateVision(config.Vision)
	if err != nil {
		return err
	}
	err = validateMotors(config)
	if err != nil {
		return err
	}

	if containsCmdDevices(config) {
		if _, err := util.CheckFilePermissionsForExecution(path); err != nil {
			return fmt.Errorf("config file '%s' has invalid permissions: %s", path, err)
		}
	}

	return nil
}

// collectMotors returns all motor definitions of the configuration
func collectMotors(config *Configuration) []MotorConfig {
	motors := []MotorConfig{config.Arm.Motor}
	if config.Arm.HandlerMotor != nil {
		motors = append(motors, *config.Arm.HandlerMotor)
	}
	if config.Intake != nil {
		motors = append(motors, config.Intake.Motor)
	}
	if config.Shooter != nil {
		motors = append(motors, config.Shooter.Motor)
	}
	return motors
}

func containsCmdDevices(config *Configuration) bool {
	for _, motorConfig := range collectMotors(config) {
		if motorConfig.Cmd != nil {
			return true
		}
	}
	if config.Arm.Encoder.Cmd != nil {
		return true
	}
	if config.Intake != nil && config.Intake.BeamBreak.Cmd != nil {
		return true
	}
	if config.Vision != nil && config.Vision.Camera.Cmd != nil {
		return true
	}
	return false
}

func validateArm(config *ArmConfig) error {
	if config.MinAngle > config.MaxAngle {
		return fmt.Errorf("arm: minAngle (%.2f°) must not be greater than maxAngle (%.2f°)", config.MinAngle.Degrees(), config.MaxAngle.Degrees())
	}
	if config.MaxVelocity <= 0 {
		return errors.New("arm: maxVelocity must be > 0")
	}
	if config.MaxAcceleration <= 0 {
		return errors.New("arm: maxAcceleration must be > 0")
	}
	if config.BumpIncrement <= 0 {
		return errors.New("arm: bumpIncrement must be > 0")
	}
	if config.PositionTolerance < 0 {
		return errors.New("arm: positionTolerance must be >= 0")
	}
	if config.HandlerDefaultSpeed < -1 || config.HandlerDefaultSpeed > 1 {
		return errors.New("arm: handlerDefaultSpeed must be in [-1..1]")
	}
	if config.KP == 0 && config.KI == 0 && config.KD == 0 {
		ui.Warning("arm: all PID constants are zero, the arm is driven by feedforward only until kP is tuned")
	}
	if config.TrackingWindowSize < 0 {
		return errors.New("arm: trackingWindowSize must be >= 0")
	}

	err := validateEncoder("arm", &config.Encoder)
	if err != nil {
		return err
	}
	return nil
}

func validateIntake(config *IntakeConfig) error {
	if config == nil {
		return nil
	}
	if config.Speed < -1 || config.Speed > 1 {
		return errors.New("intake: speed must be in [-1..1]")
	}
	return validateDigitalInput("intake", &config.BeamBreak)
}

func validateShooter(config *ShooterConfig) error {
	if config == nil {
		return nil
	}
	if config.Speed < 0 || config.Speed > 1 {
		return errors.New("shooter: speed must be in [0..1]")
	}
	if len(config.PreferenceKey) <= 0 {
		return errors.New("shooter: missing preferenceKey")
	}
	return nil
}

func validateVision(config *VisionConfig) error {
	if config == nil {
		return nil
	}
	camera := config.Camera
	subConfigs := 0
	if camera.File != nil {
		subConfigs++
	}
	if camera.Cmd != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return fmt.Errorf("camera %s: only one camera type can be used per camera definition block", camera.Name)
	}
	if subConfigs <= 0 {
		return fmt.Errorf("camera %s: sub-configuration for camera is missing, use one of: file | cmd", camera.Name)
	}
	if camera.File != nil && len(camera.File.Path) <= 0 {
		return fmt.Errorf("camera %s: no file path provided", camera.Name)
	}
	if camera.Cmd != nil && len(camera.Cmd.Exec) <= 0 {
		return fmt.Errorf("camera %s: executable is missing", camera.Name)
	}
	return nil
}

func validateMotors(config *Configuration) error {
	var ids []string
	for _, motorConfig := range collectMotors(config) {
		if len(motorConfig.ID) <= 0 {
			return errors.New("motor: missing id")
		}
		if slices.Contains(ids, motorConfig.ID) {
			return fmt.Errorf("duplicate motor id detected: %s", motorConfig.ID)
		}
		ids = append(ids, motorConfig.ID)

		subConfigs := 0
		if motorConfig.File != nil {
			subConfigs++
		}
		if motorConfig.Cmd != nil {
			subConfigs++
		}
		if motorConfig.Virtual != nil {
			subConfigs++
		}
		if subConfigs > 1 {
			return fmt.Errorf("motor %s: only one motor type can be used per motor definition block", motorConfig.ID)
		}
		if subConfigs <= 0 {
			return fmt.Errorf("motor %s: sub-configuration for motor is missing, use one of: file | cmd | virtual", motorConfig.ID)
		}

		if motorConfig.BusVoltage < 0 {
			return fmt.Errorf("motor %s: busVoltage must be >= 0", motorConfig.ID)
		}
		if motorConfig.File != nil && len(motorConfig.File.Path) <= 0 {
			return fmt.Errorf("motor %s: no file path provided", motorConfig.ID)
		}
		if motorConfig.Cmd != nil && len(motorConfig.Cmd.Exec) <= 0 {
			return fmt.Errorf("motor %s: executable is missing", motorConfig.ID)
		}
		if motorConfig.Virtual != nil {
			ui.Warning("Motor %s is virtual, no hardware will be driven", motorConfig.ID)
		}
	}
	return nil
}

func validateEncoder(owner string, config *EncoderConfig) error {
	subConfigs := 0
	if config.File != nil {
		subConfigs++
	}
	if config.Cmd != nil {
		subConfigs++
	}
	if config.Virtual != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return fmt.Errorf("%s: encoder %s: only one sensor type can be used per sensor definition block", owner, config.ID)
	}
	if subConfigs <= 0 {
		return fmt.Errorf("%s: encoder %s: sub-configuration for sensor is missing, use one of: file | cmd | virtual", owner, config.ID)
	}
	if config.DistancePerPulse < 0 {
		return fmt.Errorf("%s: encoder %s: distancePerPulse must be >= 0", owner, config.ID)
	}
	return validateSensorSource(owner, config.ID, config.File, config.Cmd)
}

func validateDigitalInput(owner string, config *DigitalInputConfig) error {
	subConfigs := 0
	if config.File != nil {
		subConfigs++
	}
	if config.Cmd != nil {
		subConfigs++
	}
	if config.Virtual != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return fmt.Errorf("%s: input %s: only one sensor type can be used per sensor definition block", owner, config.ID)
	}
	if subConfigs <= 0 {
		return fmt.Errorf("%s: input %s: sub-configuration for sensor is missing, use one of: file | cmd | virtual", owner, config.ID)
	}
	return validateSensorSource(owner, config.ID, config.File, config.Cmd)
}

func validateSensorSource(owner string, id string, file *FileSensorConfig, cmd *CmdSensorConfig) error {
	if file != nil && len(file.Path) <= 0 {
		return fmt.Errorf("%s: sensor %s: no file path provided", owner, id)
	}
	if cmd != nil && len(cmd.Exec) <= 0 {
		return fmt.Errorf("%s: sensor %s: executable is missing", owner, id)
	}
	return nil
}
