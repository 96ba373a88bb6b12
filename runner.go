package viewpane

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/creack/pty"
)

// Result is one execution of the watched command: its exit status and the
// combined stdout+stderr bytes.
type Result struct {
	ExitCode int
	Output   []byte
}

// Runner executes the watched command once, synchronously. A non-zero exit
// status is data, not an error; Run returns an error only when the command
// could not be executed at all.
type Runner interface {
	Run(ctx context.Context) (Result, error)
}

// ExecRunner runs the command directly with combined output capture. The
// child sees no tty, so most programs suppress color; use PTYRunner to keep
// escape sequences flowing.
type ExecRunner struct {
	Name string
	Args []string
}

// NewExecRunner builds a runner from an argv-style token list.
func NewExecRunner(argv []string) *ExecRunner {
	return &ExecRunner{Name: argv[0], Args: argv[1:]}
}

// NewShellRunner builds a runner that hands a pre-quoted command line to
// the shell.
func NewShellRunner(cmdline string) *ExecRunner {
	return &ExecRunner{Name: "/bin/sh", Args: []string{"-c", cmdline}}
}

// Run executes the command and blocks until it exits.
func (r *ExecRunner) Run(ctx context.Context) (Result, error) {
	cmd := exec.CommandContext(ctx, r.Name, r.Args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{ExitCode: exitErr.ExitCode(), Output: out}, nil
		}
		return Result{}, fmt.Errorf("run %s: %w", r.Name, err)
	}
	return Result{ExitCode: 0, Output: out}, nil
}

// PTYRunner runs the command attached to a pseudo-terminal sized to the
// watcher's screen, so the child keeps emitting color and columned output.
type PTYRunner struct {
	Name string
	Args []string
	rows uint16
	cols uint16
}

// NewPTYRunner builds a pty-attached runner from an argv-style token list.
func NewPTYRunner(argv []string) *PTYRunner {
	return &PTYRunner{Name: argv[0], Args: argv[1:], rows: 24, cols: 80}
}

// Resize records the pty dimensions used by the next Run.
func (r *PTYRunner) Resize(rows, cols int) {
	if rows > 0 {
		r.rows = uint16(rows)
	}
	if cols > 0 {
		r.cols = uint16(cols)
	}
}

// Run executes the command under a pty and blocks until it exits. The pty
// read loop ends with an I/O error when the child closes its side; that is
// the normal EOF and is not reported.
func (r *PTYRunner) Run(ctx context.Context) (Result, error) {
	cmd := exec.CommandContext(ctx, r.Name, r.Args...)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: r.rows, Cols: r.cols})
	if err != nil {
		return Result{}, fmt.Errorf("start %s on pty: %w", r.Name, err)
	}
	defer ptmx.Close()

	var buf bytes.Buffer
	io.Copy(&buf, ptmx)

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{ExitCode: exitErr.ExitCode(), Output: buf.Bytes()}, nil
		}
		return Result{}, fmt.Errorf("wait for %s: %w", r.Name, err)
	}
	return Result{ExitCode: 0, Output: buf.Bytes()}, nil
}
