// Package executor runs a single shell invocation under a hard wall-clock
// budget and reports a structured outcome.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"syscall"
	"time"

	"github.com/gucli/gucli/internal/config"
	"github.com/gucli/gucli/internal/registry"
)

// Status tags the result of one execution attempt.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusTimedOut
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusTimedOut:
		return "timed out"
	}
	return "unknown"
}

// Outcome is the tagged result of one execution attempt. Output carries
// stdout for a success, stderr (or the spawn error) for a failure, and a
// textual notice for a timeout; any output captured before the deadline is
// discarded on timeout.
type Outcome struct {
	Status  Status
	Output  string
	Elapsed time.Duration
}

// Runner abstracts command execution so callers can inject fakes in tests.
type Runner interface {
	Run(ctx context.Context, shell registry.Shell, invocation string) Outcome
}

// Executor supervises one child process per call. It holds no state across
// calls, so concurrent invocations are independent.
type Executor struct {
	Timeout      time.Duration
	PollInterval time.Duration
	Grace        time.Duration
}

// New returns an Executor with the limits from cfg.
func New(cfg config.Config) *Executor {
	return &Executor{
		Timeout:      cfg.Timeout,
		PollInterval: cfg.PollInterval,
		Grace:        cfg.Grace,
	}
}

func (e *Executor) timeout() time.Duration {
	if e.Timeout > 0 {
		return e.Timeout
	}
	return config.DefaultTimeout
}

func (e *Executor) pollInterval() time.Duration {
	if e.PollInterval > 0 {
		return e.PollInterval
	}
	return config.DefaultPollInterval
}

func (e *Executor) grace() time.Duration {
	if e.Grace > 0 {
		return e.Grace
	}
	return config.DefaultGrace
}

// Run spawns "<shell> -c <invocation>" with the invocation passed verbatim
// as a single command string; pipes, redirects, and backgrounding inside it
// are the shell's concern. Completion is supervised by a poll loop so the
// call returns within timeout + grace no matter what the child does.
//
// The child gets its own process group so termination reaches the
// foreground children the shell forks. Descendants that detach from the
// group (setsid, "&" with disown) are not reaped.
func (e *Executor) Run(ctx context.Context, shell registry.Shell, invocation string) Outcome {
	start := time.Now()

	cmd := exec.Command(string(shell), "-c", invocation)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		// Spawn failure (interpreter missing, permission denied) is a
		// reportable failure, never a panic.
		return Outcome{
			Status:  StatusFailure,
			Output:  fmt.Sprintf("cannot start %s: %v", shell, err),
			Elapsed: time.Since(start),
		}
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	ticker := time.NewTicker(e.pollInterval())
	defer ticker.Stop()

	for {
		select {
		case err := <-done:
			return e.finish(err, &stdout, &stderr, time.Since(start))
		case <-ctx.Done():
			e.terminate(cmd, done)
			return Outcome{
				Status:  StatusFailure,
				Output:  fmt.Sprintf("execution canceled: %v", ctx.Err()),
				Elapsed: time.Since(start),
			}
		case <-ticker.C:
			if time.Since(start) < e.timeout() {
				continue
			}
			e.terminate(cmd, done)
			elapsed := time.Since(start)
			return Outcome{
				Status:  StatusTimedOut,
				Output:  fmt.Sprintf("command timed out after %s", elapsed.Round(time.Millisecond)),
				Elapsed: elapsed,
			}
		}
	}
}

// terminate asks the child's process group to exit and escalates to
// SIGKILL once the single grace budget is spent. It never blocks past
// grace: after the kill it does not wait again, so the whole call stays
// within timeout + grace even when a forked descendant keeps the output
// pipes open and cmd.Wait stays blocked.
func (e *Executor) terminate(cmd *exec.Cmd, done <-chan error) {
	deadline := time.NewTimer(e.grace())
	defer deadline.Stop()

	e.signal(cmd, syscall.SIGTERM)
	select {
	case <-done:
		return
	case <-deadline.C:
	}
	e.signal(cmd, syscall.SIGKILL)
	// Grace is spent; a still-blocked Wait is abandoned to its goroutine.
	select {
	case <-done:
	default:
	}
}

// signal targets the child's process group, falling back to the direct
// child when the group is already gone.
func (e *Executor) signal(cmd *exec.Cmd, sig syscall.Signal) {
	if err := syscall.Kill(-cmd.Process.Pid, sig); err != nil {
		_ = cmd.Process.Signal(sig)
	}
}

func (e *Executor) finish(waitErr error, stdout, stderr *bytes.Buffer, elapsed time.Duration) Outcome {
	if waitErr == nil {
		return Outcome{Status: StatusSuccess, Output: stdout.String(), Elapsed: elapsed}
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		return Outcome{Status: StatusFailure, Output: stderr.String(), Elapsed: elapsed}
	}
	return Outcome{Status: StatusFailure, Output: waitErr.Error(), Elapsed: elapsed}
}
