// Package notify decides whether an execution outcome is surfaced as a
// desktop notification and hands it to the external notifier.
package notify

import (
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/gucli/gucli/internal/executor"
)

// maxBodyRunes clamps the notification body so a chatty command cannot
// overload the notifier.
const maxBodyRunes = 200

// Notifier is the external display collaborator.
type Notifier interface {
	Send(summary, body string) error
}

// Decide reports whether outcome should be surfaced: failures and timeouts
// always are, successes only when the command opted in.
func Decide(outcome executor.Outcome, notifyOnSuccess bool) bool {
	if outcome.Status != executor.StatusSuccess {
		return true
	}
	return notifyOnSuccess
}

// Compose splits a display message into a notification summary and body.
// The summary is the first line; the body is the remainder clamped to
// maxBodyRunes.
func Compose(message string) (summary, body string) {
	summary, body, _ = strings.Cut(message, "\n")
	runes := []rune(body)
	if len(runes) > maxBodyRunes {
		body = string(runes[:maxBodyRunes])
	}
	return summary, body
}

// Dispatcher applies the gate and forwards to the notifier. A missing or
// failing notifier degrades to a logged warning; it never fails the
// command that produced the outcome.
type Dispatcher struct {
	notifier Notifier
	logger   *zap.Logger
}

// NewDispatcher wires a Dispatcher. A nil logger is replaced with a no-op.
func NewDispatcher(notifier Notifier, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{notifier: notifier, logger: logger}
}

// Dispatch sends a notification for outcome when the gate allows it.
func (d *Dispatcher) Dispatch(outcome executor.Outcome, notifyOnSuccess bool, message string) {
	if !Decide(outcome, notifyOnSuccess) {
		return
	}
	summary, body := Compose(message)
	if err := d.notifier.Send(summary, body); err != nil {
		d.logger.Warn("notification skipped",
			zap.String("summary", summary),
			zap.Error(err))
	}
}

// NotifySend shells out to the notify-send binary, the default notifier on
// freedesktop systems.
type NotifySend struct{}

// Send delivers the notification, reporting an error when notify-send is
// not installed or exits non-zero.
func (NotifySend) Send(summary, body string) error {
	path, err := exec.LookPath("notify-send")
	if err != nil {
		return fmt.Errorf("notify-send not found: %w", err)
	}
	cmd := exec.Command(path, summary, body, "--app-name=gucli", "--icon=system")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("notify-send: %w", err)
	}
	return nil
}
