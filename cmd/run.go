package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gucli/gucli/internal/executor"
	"github.com/gucli/gucli/internal/render"
)

var runCmd = &cobra.Command{
	Use:   "run <index>",
	Short: "Run a saved command by its list index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		markup, _ := cmd.Flags().GetBool("markup")

		a, err := newApp()
		if err != nil {
			return err
		}
		set, err := a.loadSet()
		if err != nil {
			return err
		}

		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("index must be a number, got %q", args[0])
		}
		if index < 0 || index >= len(set) {
			return fmt.Errorf("no command at index %d, have %d", index, len(set))
		}
		spec := set[index]

		outcome := a.runner.Run(cmd.Context(), spec.Shell, spec.Invocation)
		recordOutcome(a, spec.Invocation, outcome)

		message := resultMessage(spec.Invocation, outcome)
		plain := render.PlainText(message)

		a.dispatcher.Dispatch(outcome, spec.NotifyOnSuccess, plain)

		if markup {
			fmt.Println(render.Output(message))
		} else {
			fmt.Println(plain)
		}
		return nil
	},
}

// resultMessage flattens an outcome into the display message whose first
// line doubles as the notification summary.
func resultMessage(invocation string, outcome executor.Outcome) string {
	switch outcome.Status {
	case executor.StatusSuccess:
		return fmt.Sprintf("Ok( Command <%s> executed ), Result:\n%s", invocation, outcome.Output)
	case executor.StatusTimedOut:
		return fmt.Sprintf("Err( Command <%s> timed out ), %s", invocation, outcome.Output)
	default:
		return fmt.Sprintf("Err( Command <%s> failed ), Error:\n%s", invocation, outcome.Output)
	}
}

// recordOutcome appends the flattened one-line summary of the run to the
// shared log, unconditionally for every outcome.
func recordOutcome(a *app, invocation string, outcome executor.Outcome) {
	flat := strings.ReplaceAll(outcome.Output, "\n", " ")
	switch outcome.Status {
	case executor.StatusSuccess:
		a.logger.Info(fmt.Sprintf("Command <%s> executed, Result: %s", invocation, flat))
	case executor.StatusTimedOut:
		a.logger.Error(fmt.Sprintf("Command <%s> timed out after %s", invocation, outcome.Elapsed.Round(time.Millisecond)))
	default:
		a.logger.Error(fmt.Sprintf("Command <%s> failed, Error: %s", invocation, flat))
	}
}

func init() {
	runCmd.Flags().Bool("markup", false, "Print the display string with tview markup instead of plain text")
	rootCmd.AddCommand(runCmd)
}
