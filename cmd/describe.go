package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gucli/gucli/internal/executor"
	"github.com/gucli/gucli/internal/manual"
	"github.com/gucli/gucli/internal/registry"
	"github.com/gucli/gucli/internal/render"
)

var describeCmd = &cobra.Command{
	Use:   "describe <command>",
	Short: "Look up help text for a command",
	Long:  "Look up help text for a command by trying man and --help in order, keeping the first plausible answer.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		markup, _ := cmd.Flags().GetBool("markup")

		a, err := newApp()
		if err != nil {
			return err
		}

		run := func(invocation string) (string, error) {
			outcome := a.runner.Run(cmd.Context(), registry.ShellSh, invocation)
			if outcome.Status != executor.StatusSuccess {
				return "", fmt.Errorf("%s", outcome.Output)
			}
			return outcome.Output, nil
		}

		text, err := manual.Help(run, strings.Join(args, " "))
		if err != nil {
			return err
		}
		if markup {
			fmt.Println(render.HelpText(text))
		} else {
			fmt.Println(render.PlainText(text))
		}
		return nil
	},
}

func init() {
	describeCmd.Flags().Bool("markup", false, "Print with tview markup instead of plain text")
	rootCmd.AddCommand(describeCmd)
}
