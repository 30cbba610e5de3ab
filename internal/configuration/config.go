package configuration

import (
	"os"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/markusressel/notebot/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Configuration struct {
	DbPath string `json:"dbPath"`

	// TickRate is the fixed period at which all subsystems are advanced
	TickRate time.Duration `json:"tickRate"`

	Arm     ArmConfig      `json:"arm"`
	Intake  *IntakeConfig  `json:"intake,omitempty"`
	Shooter *ShooterConfig `json:"shooter,omitempty"`
	Vision  *VisionConfig  `json:"vision,omitempty"`

	Api        ApiConfig        `json:"api"`
	Statistics StatisticsConfig `json:"statistics"`
	Profiling  ProfilingConfig  `json:"profiling"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("notebot")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/notebot/")
	}

	viper.SetEnvPrefix("notebot")
	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("dbPath", "/etc/notebot/notebot.db")
	viper.SetDefault("tickRate", 20*time.Millisecond)

	viper.SetDefault("arm.kP", 1.0)
	viper.SetDefault("arm.kS", 1.0)
	viper.SetDefault("arm.kG", 1.0)
	viper.SetDefault("arm.kV", 0.5)
	viper.SetDefault("arm.kA", 0.1)
	viper.SetDefault("arm.maxVelocity", 3.0)
	viper.SetDefault("arm.maxAcceleration", 10.0)
	// degrees, see Angle
	viper.SetDefault("arm.minAngle", 0.0)
	viper.SetDefault("arm.maxAngle", 90.0)
	viper.SetDefault("arm.bumpIncrement", 0.0873)
	viper.SetDefault("arm.positionTolerance", 0.02)
	viper.SetDefault("arm.handlerDefaultSpeed", 0.5)
	viper.SetDefault("arm.trackingWindowSize", 50)

	viper.SetDefault("api.enabled", false)
	viper.SetDefault("api.host", "localhost")
	viper.SetDefault("api.port", 9001)

	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", 9000)

	viper.SetDefault("profiling.enabled", false)
	viper.SetDefault("profiling.host", "localhost")
	viper.SetDefault("profiling.port", 6060)
}

// DetectAndReadConfigFile reads the config file found by InitConfig and returns its path.
// A config file is required, so this terminates the process if none can be read.
func DetectAndReadConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		ui.FatalWithoutStacktrace("Error reading config file, %s", err)
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed()
}

// TryReadConfigFile is like DetectAndReadConfigFile, but falls back to
// default values when no config file exists.
func TryReadConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		ui.Debug("No config file read, using defaults: %v", err)
		return ""
	}
	return viper.ConfigFileUsed()
}

func LoadConfig() {
	err := viper.Unmarshal(&CurrentConfig, viper.DecodeHook(decodeHooks()))
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
}

func decodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		AngleHookFunc(),
		DefaultTrueBoolHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}
