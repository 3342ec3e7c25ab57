// Package registry loads, validates, and persists the user's command set.
package registry

import "fmt"

// Shell identifies the interpreter a command runs under.
type Shell string

// Supported interpreters. Anything else is rejected at load time.
const (
	ShellSh   Shell = "sh"
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// DefaultShell is used when a persisted entry omits the shell field.
const DefaultShell = ShellSh

// Valid reports whether s is one of the supported interpreters.
func (s Shell) Valid() bool {
	switch s {
	case ShellSh, ShellBash, ShellZsh, ShellFish:
		return true
	}
	return false
}

// CommandSpec is one user-defined shell invocation plus display metadata.
type CommandSpec struct {
	ID              int
	Shell           Shell
	Invocation      string
	Icon            string
	NotifyOnSuccess bool
}

// CommandSet is the ordered sequence of command specs. Order is significant:
// it drives menu order and is user-reorderable.
type CommandSet []CommandSpec

// ValidationError reports the first invalid entry found during Load. The
// whole load fails; no partially-valid set is ever returned.
type ValidationError struct {
	Index  int
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("command %d: %s", e.Index, e.Reason)
}
