package manual

import (
	"errors"
	"strings"
	"testing"
)

func TestStrategiesWrapPlainCommands(t *testing.T) {
	got := Strategies("tar")
	if len(got) != 2 {
		t.Fatalf("expected 2 strategies, got %v", got)
	}
	if got[0] != "man -P cat tar" || got[1] != "tar --help" {
		t.Fatalf("unexpected strategies: %v", got)
	}
}

func TestStrategiesKeepExplicitHelpFlags(t *testing.T) {
	for _, cmd := range []string{"git commit --help ", "man tar", "ip -? addr"} {
		got := Strategies(cmd)
		if len(got) != 1 || got[0] != cmd {
			t.Fatalf("expected %q to run as-is, got %v", cmd, got)
		}
	}
}

func TestLookupShortCircuitsOnFirstValidResult(t *testing.T) {
	long := strings.Repeat("help text ", 10)
	var ran []string
	run := func(invocation string) (string, error) {
		ran = append(ran, invocation)
		return long, nil
	}
	out, err := Lookup(run, []string{"first", "second"})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if out != long {
		t.Fatalf("unexpected output: %q", out)
	}
	if len(ran) != 1 || ran[0] != "first" {
		t.Fatalf("expected short-circuit after first strategy, ran %v", ran)
	}
}

func TestLookupSkipsShortAndFailedResults(t *testing.T) {
	long := strings.Repeat("real help ", 10)
	run := func(invocation string) (string, error) {
		switch invocation {
		case "a":
			return "", errors.New("exit 1")
		case "b":
			return "too short", nil
		default:
			return long, nil
		}
	}
	out, err := Lookup(run, []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if out != long {
		t.Fatalf("expected the long result, got %q", out)
	}
}

func TestLookupExhaustedStrategies(t *testing.T) {
	run := func(string) (string, error) { return "", errors.New("nope") }
	if _, err := Lookup(run, []string{"a", "b"}); err == nil {
		t.Fatalf("expected error when every strategy fails")
	}
}

func TestHelpRejectsEmptyCommand(t *testing.T) {
	run := func(string) (string, error) { return "", nil }
	if _, err := Help(run, "   "); err == nil {
		t.Fatalf("expected error for empty command")
	}
}
