package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Print the most recent log records",
	RunE: func(cmd *cobra.Command, _ []string) error {
		count, _ := cmd.Flags().GetInt("lines")

		a, err := newApp()
		if err != nil {
			return err
		}
		lines := a.log.Lines()
		if count > 0 && count < len(lines) {
			lines = lines[len(lines)-count:]
		}
		for _, line := range lines {
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	logCmd.Flags().IntP("lines", "n", 0, "Only print the newest N records (0 = all retained)")
	rootCmd.AddCommand(logCmd)
}
