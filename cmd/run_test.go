package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gucli/gucli/internal/config"
	"github.com/gucli/gucli/internal/executor"
	"github.com/gucli/gucli/internal/notify"
	"github.com/gucli/gucli/internal/registry"
)

// fakeRunner implements executor.Runner for tests.
type fakeRunner struct {
	lastShell      registry.Shell
	lastInvocation string
	outcome        executor.Outcome
}

func (f *fakeRunner) Run(_ context.Context, shell registry.Shell, invocation string) executor.Outcome {
	f.lastShell = shell
	f.lastInvocation = invocation
	return f.outcome
}

// fakeNotifier records dispatched notifications.
type fakeNotifier struct {
	summaries []string
	bodies    []string
}

func (f *fakeNotifier) Send(summary, body string) error {
	f.summaries = append(f.summaries, summary)
	f.bodies = append(f.bodies, body)
	return nil
}

func setupTempHome(t *testing.T) string {
	t.Helper()
	d := t.TempDir()
	t.Setenv("GUCLI_HOME", d)
	return d
}

func injectFakes(t *testing.T, outcome executor.Outcome) (*fakeRunner, *fakeNotifier) {
	t.Helper()
	runner := &fakeRunner{outcome: outcome}
	notifier := &fakeNotifier{}
	origExec := execFactory
	origNotify := notifierFactory
	execFactory = func(config.Config) executor.Runner { return runner }
	notifierFactory = func() notify.Notifier { return notifier }
	t.Cleanup(func() {
		execFactory = origExec
		notifierFactory = origNotify
	})
	return runner, notifier
}

func captureOutput(f func()) (string, string) {
	oldOut := os.Stdout
	oldErr := os.Stderr
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	outC := make(chan string)
	errC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		outC <- buf.String()
	}()
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rErr)
		errC <- buf.String()
	}()

	f()

	_ = wOut.Close()
	_ = wErr.Close()
	os.Stdout = oldOut
	os.Stderr = oldErr

	out := <-outC
	err := <-errC
	return out, err
}

func writeCommands(t *testing.T, home, doc string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(home, "commands.yaml"), []byte(doc), 0o644); err != nil {
		t.Fatalf("write commands: %v", err)
	}
}

func TestRunPrintsResultAndLogs(t *testing.T) {
	home := setupTempHome(t)
	runner, notifier := injectFakes(t, executor.Outcome{
		Status: executor.StatusSuccess,
		Output: "demo.example.org\n",
	})

	out, _ := captureOutput(func() {
		rootCmd.SetArgs([]string{"run", "0"})
		if err := rootCmd.Execute(); err != nil {
			t.Errorf("run failed: %v", err)
		}
	})

	// The default document's first entry drives the invocation.
	if runner.lastInvocation != "hostname -A" {
		t.Fatalf("expected default command to run, got %q", runner.lastInvocation)
	}
	if runner.lastShell != registry.ShellSh {
		t.Fatalf("expected sh, got %q", runner.lastShell)
	}
	if !strings.Contains(out, "Ok( Command <hostname -A> executed )") {
		t.Fatalf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "demo.example.org") {
		t.Fatalf("command output missing: %q", out)
	}

	// Default sn is true, so the success was dispatched.
	if len(notifier.summaries) != 1 || !strings.Contains(notifier.summaries[0], "executed") {
		t.Fatalf("expected success notification, got %v", notifier.summaries)
	}

	// The run left a record in the log file.
	raw, err := os.ReadFile(filepath.Join(home, "gucli.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(raw), "Command <hostname -A> executed") {
		t.Fatalf("log record missing: %q", string(raw))
	}
}

func TestRunQuietSuccessSkipsNotification(t *testing.T) {
	home := setupTempHome(t)
	_, notifier := injectFakes(t, executor.Outcome{
		Status: executor.StatusSuccess,
		Output: "ok\n",
	})
	writeCommands(t, home, "commands:\n  - command: uptime\n    sn: false\n")

	captureOutput(func() {
		rootCmd.SetArgs([]string{"run", "0"})
		if err := rootCmd.Execute(); err != nil {
			t.Errorf("run failed: %v", err)
		}
	})

	if len(notifier.summaries) != 0 {
		t.Fatalf("quiet success must not notify, got %v", notifier.summaries)
	}
}

func TestRunFailureAlwaysNotifies(t *testing.T) {
	home := setupTempHome(t)
	_, notifier := injectFakes(t, executor.Outcome{
		Status: executor.StatusFailure,
		Output: "boom\n",
	})
	writeCommands(t, home, "commands:\n  - command: uptime\n    sn: false\n")

	captureOutput(func() {
		rootCmd.SetArgs([]string{"run", "0"})
		if err := rootCmd.Execute(); err != nil {
			t.Errorf("run failed: %v", err)
		}
	})

	if len(notifier.summaries) != 1 {
		t.Fatalf("expected failure notification, got %v", notifier.summaries)
	}
	if !strings.Contains(notifier.summaries[0], "failed") {
		t.Fatalf("unexpected summary: %q", notifier.summaries[0])
	}
}

func TestRunRejectsBadIndex(t *testing.T) {
	setupTempHome(t)
	injectFakes(t, executor.Outcome{Status: executor.StatusSuccess})

	captureOutput(func() {
		rootCmd.SetArgs([]string{"run", "42"})
		if err := rootCmd.Execute(); err == nil {
			t.Errorf("expected error for out-of-range index")
		}
	})
}

func TestRunInvalidDocumentIsFatal(t *testing.T) {
	home := setupTempHome(t)
	injectFakes(t, executor.Outcome{Status: executor.StatusSuccess})
	writeCommands(t, home, "commands:\n  - command: dup\n  - command: dup\n")

	captureOutput(func() {
		rootCmd.SetArgs([]string{"run", "0"})
		if err := rootCmd.Execute(); err == nil {
			t.Errorf("expected validation error to abort the run")
		}
	})
}
