package pref

import (
	"strconv"

	"github.com/markusressel/notebot/cmd/global"
	"github.com/markusressel/notebot/internal/ui"
	"github.com/markusressel/notebot/internal/util"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pers, err := openPreferences()
		if err != nil {
			return err
		}
		values, err := pers.List()
		if err != nil {
			return err
		}
		if len(values) == 0 {
			ui.Printfln("No preferences stored yet.")
			return nil
		}

		var rows [][]string
		for _, key := range util.SortedKeys(values) {
			rows = append(rows, []string{key, strconv.FormatFloat(values[key], 'f', -1, 64)})
		}
		tableString, err := global.RenderTable(table.Table{
			Headers: []string{"Key", "Value"},
			Rows:    rows,
		})
		if err != nil {
			return err
		}
		ui.Printfln("%s", tableString)
		return nil
	},
}

func init() {
	Command.AddCommand(listCmd)
}
