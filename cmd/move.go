package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gucli/gucli/internal/registry"
)

var moveCmd = &cobra.Command{
	Use:   "move <from> <to>",
	Short: "Reorder a command within the menu",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("from must be a number, got %q", args[0])
		}
		to, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("to must be a number, got %q", args[1])
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		set, err := a.loadSet()
		if err != nil {
			return err
		}
		if from < 0 || from >= len(set) || to < 0 || to >= len(set) {
			return fmt.Errorf("index out of range, have %d commands", len(set))
		}

		spec := set[from]
		set = append(set[:from], set[from+1:]...)
		set = append(set[:to], append(registry.CommandSet{spec}, set[to:]...)...)
		for i := range set {
			set[i].ID = i
		}
		if err := a.store.Save(set); err != nil {
			return err
		}
		fmt.Printf("moved %q to index %d\n", spec.Invocation, to)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
