// Package manual resolves help text for a command by trying an ordered
// list of candidate invocations and keeping the first plausible answer.
package manual

import (
	"fmt"
	"strings"
)

// minHelpLength filters out terse error blurbs: anything shorter is
// treated as "no help found" and the next candidate is tried.
const minHelpLength = 50

// helpFlags mark an invocation that should run exactly as entered instead
// of being wrapped in man/--help candidates.
var helpFlags = []string{
	" --longhelp ", " --help-all ", " --help ", " help ", " -? ",
	"man ", " info ", " --usage ", " -help ",
}

// Runner executes one candidate invocation and returns its output, or an
// error when the invocation failed or produced nothing usable.
type Runner func(invocation string) (string, error)

// Strategies returns the candidate invocations for cmd, in the order they
// should be tried. An invocation already carrying a help flag is its own
// single strategy.
func Strategies(cmd string) []string {
	for _, flag := range helpFlags {
		if strings.Contains(cmd, flag) {
			return []string{cmd}
		}
	}
	return []string{
		fmt.Sprintf("man -P cat %s", cmd),
		fmt.Sprintf("%s --help", cmd),
	}
}

// Lookup tries each strategy in order and short-circuits on the first
// output meeting the minimum-length heuristic. It is pure over run and the
// strategy list, so tests can drive it with a fake runner.
func Lookup(run Runner, strategies []string) (string, error) {
	for _, candidate := range strategies {
		out, err := run(candidate)
		if err != nil {
			continue
		}
		if len(out) >= minHelpLength {
			return out, nil
		}
	}
	return "", fmt.Errorf("no valid help found")
}

// Help resolves help text for cmd with run. An empty command is rejected
// before anything executes.
func Help(run Runner, cmd string) (string, error) {
	if strings.TrimSpace(cmd) == "" {
		return "", fmt.Errorf("enter the command to search for help")
	}
	out, err := Lookup(run, Strategies(cmd))
	if err != nil {
		return "", fmt.Errorf("no valid help found for %q", cmd)
	}
	return out, nil
}
