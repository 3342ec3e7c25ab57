package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved commands in menu order",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		set, err := a.loadSet()
		if err != nil {
			return err
		}
		for _, spec := range set {
			sn := " "
			if spec.NotifyOnSuccess {
				sn = "*"
			}
			fmt.Printf("%d %s [%s]%s %s\n", spec.ID, spec.Icon, spec.Shell, sn, spec.Invocation)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
