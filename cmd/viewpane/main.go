package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/tbozeman/viewpane"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		cmdline   = flag.String("c", "", "watched command as a single shell string (mutually exclusive with positional tokens)")
		delay     = flag.Float64("d", 2.0, "seconds between runs of the watched command")
		status    = flag.Bool("status", true, "show the status line with the command's exit code")
		strict    = flag.Bool("strict", false, "treat a non-zero exit of the watched command as fatal")
		usePty    = flag.Bool("pty", false, "run the watched command on a pseudo-terminal so it keeps emitting color")
		logPath   = flag.String("log", "", "append debug logs to this file")
		shotDir   = flag.String("screenshot-dir", ".", "directory screenshot PNGs are written to")
		pairLimit = flag.Int("pairs", 0, "maximum distinct color pairs (0 = default)")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: %s [flags] command [args...]\n       %s [flags] -c 'command line'\n\nA quick little program somewhere between watch(1) and less(1).\n\n",
			os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	argv := flag.Args()
	if (*cmdline == "") == (len(argv) == 0) {
		fmt.Fprintln(os.Stderr, "viewpane: give a command either as tokens or as -c 'string', not both")
		flag.Usage()
		return 2
	}

	logger := slog.New(slog.DiscardHandler)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "viewpane: open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "viewpane: stdout is not a terminal")
		return 1
	}

	runner, label := selectRunner(*cmdline, argv, *usePty)

	registry := viewpane.NewPairRegistry(*pairLimit)

	screen, err := viewpane.OpenScreen(registry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "viewpane: %v\n", err)
		return 1
	}

	w := viewpane.New(runner, registry,
		viewpane.WithLabel(label),
		viewpane.WithInterval(time.Duration(*delay*float64(time.Second))),
		viewpane.WithStatusLine(*status),
		viewpane.WithStrict(*strict),
		viewpane.WithScreenshotDir(*shotDir),
		viewpane.WithLogger(logger),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "command", label, "interval", *delay)
	runErr := runWatcher(ctx, w, screen)

	// The terminal must be back in normal mode before anything is printed.
	screen.Close()
	logger.Info("stopping")

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "viewpane: %v\n", runErr)
		var cmdErr *viewpane.CommandError
		if errors.As(runErr, &cmdErr) && cmdErr.ExitCode > 0 {
			return cmdErr.ExitCode
		}
		return 1
	}
	return 0
}

// selectRunner builds the runner for the watched command. A shell string
// runs under /bin/sh -c; -pty wraps either form of the command in a
// pseudo-terminal.
func selectRunner(cmdline string, argv []string, usePty bool) (viewpane.Runner, string) {
	label := strings.Join(argv, " ")
	if cmdline != "" {
		argv = []string{"/bin/sh", "-c", cmdline}
		label = cmdline
	}
	if usePty {
		return viewpane.NewPTYRunner(argv), label
	}
	if cmdline != "" {
		return viewpane.NewShellRunner(cmdline), label
	}
	return viewpane.NewExecRunner(argv), label
}

// runWatcher isolates the loop so a panic still restores the terminal.
func runWatcher(ctx context.Context, w *viewpane.Watcher, screen *viewpane.Screen) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()
	return w.Run(ctx, screen)
}
