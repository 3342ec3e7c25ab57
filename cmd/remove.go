package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove a command by its list index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("index must be a number, got %q", args[0])
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		set, err := a.loadSet()
		if err != nil {
			return err
		}
		if index < 0 || index >= len(set) {
			return fmt.Errorf("no command at index %d, have %d", index, len(set))
		}

		removed := set[index].Invocation
		set = append(set[:index], set[index+1:]...)
		for i := range set {
			set[i].ID = i
		}
		if err := a.store.Save(set); err != nil {
			return err
		}
		fmt.Printf("removed %q\n", removed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
