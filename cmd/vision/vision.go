package vision

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/markusressel/notebot/cmd/global"
	"github.com/markusressel/notebot/internal/configuration"
	"github.com/markusressel/notebot/internal/ui"
	"github.com/markusressel/notebot/internal/vision"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var fiducialId int

var Command = &cobra.Command{
	Use:              "vision",
	Short:            "Vision related commands",
	Long:             ``,
	TraverseChildren: true,
}

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Print the latest target with the given fiducial id",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := configuration.DetectAndReadConfigFile()
		ui.Info("Using configuration file at: %s", configPath)
		configuration.LoadConfig()
		if err := configuration.Validate(configPath); err != nil {
			return err
		}

		config := configuration.CurrentConfig.Vision
		if config == nil {
			return errors.New("no vision configuration found")
		}
		camera, err := vision.NewCamera(config.Camera)
		if err != nil {
			return err
		}

		target, found, err := vision.NewVision(camera).GetTargetForTag(fiducialId)
		if err != nil {
			return err
		}
		if !found {
			ui.Warning("Target %d is not visible to camera %s", fiducialId, camera.GetName())
			return nil
		}

		tableString, err := global.RenderTable(table.Table{
			Headers: []string{"ID", "Yaw", "Pitch", "Area", "Skew", "Ambiguity"},
			Rows: [][]string{{
				strconv.Itoa(target.FiducialId),
				fmt.Sprintf("%.2f°", target.Yaw),
				fmt.Sprintf("%.2f°", target.Pitch),
				fmt.Sprintf("%.2f%%", target.Area),
				fmt.Sprintf("%.2f°", target.Skew),
				fmt.Sprintf("%.3f", target.PoseAmbiguity),
			}},
		})
		if err != nil {
			return err
		}
		ui.Printfln("%s", tableString)
		return nil
	},
}

func init() {
	targetCmd.Flags().IntVarP(&fiducialId, "id", "i", 0, "Fiducial (AprilTag) id")
	_ = targetCmd.MarkFlagRequired("id")
	Command.AddCommand(targetCmd)
}
