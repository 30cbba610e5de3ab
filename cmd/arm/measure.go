package arm

import (
	"fmt"

	"github.com/markusressel/notebot/internal/sensors"
	"github.com/markusressel/notebot/internal/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Read the current angle of the arm from its encoder",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		config := loadConfig()
		encoder, err := sensors.NewEncoder(config.Arm.Encoder)
		if err != nil {
			return err
		}

		distance, err := encoder.GetDistance()
		if err != nil {
			return err
		}
		angle := distance + config.Arm.Offset
		fmt.Printf("%.4f rad (%.2f°)\n", angle, util.RadiansToDegrees(angle))
		return nil
	},
}

func init() {
	Command.AddCommand(measureCmd)
}
