package arm

import (
	"github.com/markusressel/notebot/internal/configuration"
	"github.com/markusressel/notebot/internal/ui"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "arm",
	Short:            "Arm related commands",
	Long:             ``,
	TraverseChildren: true,
}

// loadConfig reads and validates the configuration file
func loadConfig() *configuration.Configuration {
	configPath := configuration.DetectAndReadConfigFile()
	ui.Info("Using configuration file at: %s", configPath)
	configuration.LoadConfig()
	err := configuration.Validate(configPath)
	if err != nil {
		ui.FatalWithoutStacktrace("%v", err)
	}
	return &configuration.CurrentConfig
}
