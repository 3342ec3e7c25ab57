package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the built-in default command document",
	Long:  "Restore the built-in default command document. Without --force this only creates a missing document and never touches an existing one.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		a, err := newApp()
		if err != nil {
			return err
		}
		if err := a.store.Reset(force); err != nil {
			return err
		}
		if force {
			a.logger.Info("Commands reset to default")
			fmt.Println("commands reset to default")
		} else {
			fmt.Println("command document present")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Overwrite an existing document")
	rootCmd.AddCommand(resetCmd)
}
