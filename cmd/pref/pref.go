package pref

import (
	"github.com/markusressel/notebot/internal/configuration"
	"github.com/markusressel/notebot/internal/persistence"
	"github.com/markusressel/notebot/internal/ui"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "pref",
	Short:            "Inspect and modify persisted preferences",
	Long:             `Preferences hold values tuned at runtime, like the shooter speed.`,
	TraverseChildren: true,
}

func openPreferences() (persistence.Preferences, error) {
	configPath := configuration.TryReadConfigFile()
	if configPath != "" {
		ui.Debug("Using configuration file at: %s", configPath)
	}
	configuration.LoadConfig()

	pers := persistence.NewPersistence(configuration.CurrentConfig.DbPath)
	return pers, pers.Init()
}
