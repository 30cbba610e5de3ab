package arm

import (
	"fmt"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/markusressel/notebot/cmd/global"
	"github.com/markusressel/notebot/internal/configuration"
	"github.com/markusressel/notebot/internal/control"
	"github.com/markusressel/notebot/internal/ui"
	"github.com/markusressel/notebot/internal/util"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const maxProfileSteps = 10000

var (
	fromDegrees float64
	toDegrees   float64
	pngPath     string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Preview the motion profile of the arm between two angles",
	Long: `Samples the trapezoid motion profile the arm would follow when moving
from --from to --to (both in degrees), using the constraints and tick rate
of the current configuration.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// the preview works without a config file, using default constraints
		configPath := configuration.TryReadConfigFile()
		if configPath != "" {
			ui.Info("Using configuration file at: %s", configPath)
		}
		configuration.LoadConfig()
		config := configuration.CurrentConfig

		constraints := control.Constraints{
			MaxVelocity:     config.Arm.MaxVelocity,
			MaxAcceleration: config.Arm.MaxAcceleration,
		}
		if constraints.MaxVelocity <= 0 || constraints.MaxAcceleration <= 0 {
			return fmt.Errorf("maxVelocity and maxAcceleration must be > 0")
		}
		if config.TickRate <= 0 {
			return fmt.Errorf("tickRate must be > 0, got %v", config.TickRate)
		}

		from := util.DegreesToRadians(fromDegrees)
		to := util.DegreesToRadians(toDegrees)
		samples := SampleProfile(constraints, from, to, config.TickRate)

		profile := control.NewTrapezoidProfile(constraints)
		profile.Calculate(config.TickRate, control.State{Position: from}, control.State{Position: to})

		tab := table.Table{
			Headers: []string{"", ""},
			Rows: [][]string{
				{"From", fmt.Sprintf("%.2f° (%.3f rad)", fromDegrees, from)},
				{"To", fmt.Sprintf("%.2f° (%.3f rad)", toDegrees, to)},
				{"Max velocity", fmt.Sprintf("%.3f rad/s", constraints.MaxVelocity)},
				{"Max acceleration", fmt.Sprintf("%.3f rad/s²", constraints.MaxAcceleration)},
				{"Tick rate", config.TickRate.String()},
				{"Total time", profile.TotalTime().Round(time.Millisecond).String()},
				{"Ticks", fmt.Sprintf("%d", len(samples))},
			},
		}
		tableString, err := global.RenderTable(tab)
		if err != nil {
			return err
		}
		ui.Printfln("%s", tableString)

		if len(samples) == 0 {
			ui.Printfln("Arm is already at the goal.")
			return nil
		}

		positions := make([]float64, len(samples))
		velocities := make([]float64, len(samples))
		for i, sample := range samples {
			positions[i] = util.RadiansToDegrees(sample.Position)
			velocities[i] = util.RadiansToDegrees(sample.Velocity)
		}

		graph := asciigraph.PlotMany(
			[][]float64{positions, velocities},
			asciigraph.Height(15),
			asciigraph.Width(100),
			asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Yellow),
			asciigraph.Caption("Position (°) / Velocity (°/s)"),
		)
		ui.Printfln("%s", graph)

		if pngPath != "" {
			err = renderProfile(pngPath, samples, config.TickRate)
			if err != nil {
				return err
			}
			ui.Success("Profile written to %s", pngPath)
		}
		return nil
	},
}

// SampleProfile returns the setpoints the arm controller would produce on every tick
// while moving from one angle to another. Like the controller, the profile is
// restarted from the last setpoint on every tick.
func SampleProfile(constraints control.Constraints, from float64, to float64, dt time.Duration) []control.State {
	profile := control.NewTrapezoidProfile(constraints)
	goal := control.State{Position: to}
	setpoint := control.State{Position: from}

	var result []control.State
	for i := 0; i < maxProfileSteps && !atGoal(setpoint, goal); i++ {
		setpoint = profile.Calculate(dt, setpoint, goal)
		result = append(result, setpoint)
	}
	return result
}

func atGoal(setpoint control.State, goal control.State) bool {
	return util.NearlyEqual(setpoint.Position, goal.Position, 1e-9) && util.NearlyEqual(setpoint.Velocity, 0, 1e-9)
}

func renderProfile(path string, samples []control.State, dt time.Duration) error {
	p := plot.New()
	p.Title.Text = "Arm motion profile"
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "rad, rad/s"

	positions := make(plotter.XYs, len(samples))
	velocities := make(plotter.XYs, len(samples))
	for i, sample := range samples {
		t := float64(i+1) * dt.Seconds()
		positions[i].X = t
		positions[i].Y = sample.Position
		velocities[i].X = t
		velocities[i].Y = sample.Velocity
	}

	err := plotutil.AddLines(p, "Position", positions, "Velocity", velocities)
	if err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}

func init() {
	profileCmd.Flags().Float64VarP(&fromDegrees, "from", "f", 0, "Start angle in degrees")
	profileCmd.Flags().Float64VarP(&toDegrees, "to", "t", 90, "Goal angle in degrees")
	profileCmd.Flags().StringVarP(&pngPath, "png", "", "", "Additionally render the profile to the given PNG file")
	Command.AddCommand(profileCmd)
}
