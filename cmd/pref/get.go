package pref

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a stored preference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pers, err := openPreferences()
		if err != nil {
			return err
		}
		key := args[0]
		value, err := pers.GetFloat(key, math.NaN())
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("no preference stored for key: %s", key)
		} else if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}

func init() {
	Command.AddCommand(getCmd)
}
