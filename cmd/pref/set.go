package pref

import (
	"strconv"

	"github.com/markusressel/notebot/internal/ui"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a preference",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return err
		}
		pers, err := openPreferences()
		if err != nil {
			return err
		}
		err = pers.SetFloat(args[0], value)
		if err != nil {
			return err
		}
		ui.Success("Stored %s = %v", args[0], value)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete a stored preference, the default value is used afterwards",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pers, err := openPreferences()
		if err != nil {
			return err
		}
		err = pers.Delete(args[0])
		if err != nil {
			return err
		}
		ui.Success("Deleted %s", args[0])
		return nil
	},
}

func init() {
	Command.AddCommand(setCmd)
	Command.AddCommand(deleteCmd)
}
