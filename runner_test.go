package viewpane

import (
	"context"
	"strings"
	"testing"
)

func TestExecRunnerCapturesOutput(t *testing.T) {
	r := NewExecRunner([]string{"echo", "hello"})
	res, err := r.Run(context.Background())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("expected exit 0, got %d", res.ExitCode)
	}
	if string(res.Output) != "hello\n" {
		t.Errorf("expected \"hello\\n\", got %q", res.Output)
	}
}

func TestExecRunnerNonZeroExitIsData(t *testing.T) {
	r := NewShellRunner("echo oops >&2; exit 3")
	res, err := r.Run(context.Background())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ExitCode != 3 {
		t.Errorf("expected exit 3, got %d", res.ExitCode)
	}
	if !strings.Contains(string(res.Output), "oops") {
		t.Errorf("expected stderr in combined output, got %q", res.Output)
	}
}

func TestExecRunnerMissingCommand(t *testing.T) {
	r := NewExecRunner([]string{"definitely-not-a-command-xyz"})
	if _, err := r.Run(context.Background()); err == nil {
		t.Error("expected error for missing command")
	}
}

func TestShellRunnerHandsLineToShell(t *testing.T) {
	r := NewShellRunner("echo a && echo b")
	res, err := r.Run(context.Background())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(res.Output) != "a\nb\n" {
		t.Errorf("expected \"a\\nb\\n\", got %q", res.Output)
	}
}

func TestPTYRunnerResizeClampsToPositive(t *testing.T) {
	r := NewPTYRunner([]string{"true"})
	r.Resize(0, -1)

	if r.rows != 24 || r.cols != 80 {
		t.Errorf("expected defaults kept on bad sizes, got %dx%d", r.rows, r.cols)
	}

	r.Resize(40, 120)
	if r.rows != 40 || r.cols != 120 {
		t.Errorf("expected 40x120, got %dx%d", r.rows, r.cols)
	}
}
