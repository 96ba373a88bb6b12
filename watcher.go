package viewpane

import (
	"context"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
)

const (
	// DefaultInterval is the default redraw interval between command runs.
	DefaultInterval = 2 * time.Second
	// DefaultPollRate is the sleep between input polls while waiting for
	// the next redraw.
	DefaultPollRate = 50 * time.Millisecond
)

// CommandError reports a watched command that exited non-zero while the
// watcher runs in strict mode. The command's combined output is the detail.
type CommandError struct {
	ExitCode int
	Output   []byte
}

func (e *CommandError) Error() string {
	out := strings.TrimSpace(string(e.Output))
	if out == "" {
		return fmt.Sprintf("command exited with status %d", e.ExitCode)
	}
	return fmt.Sprintf("command exited with status %d: %s", e.ExitCode, out)
}

// Watcher drives the watch cycle: run the command, translate its output
// into the pad, render, and poll input until the next redraw is due. All of
// it happens on the calling goroutine; a long-running command simply delays
// the next redraw and input handling until it returns.
type Watcher struct {
	runner     Runner
	registry   *PairRegistry
	parser     *LineParser
	translator *Translator
	pad        *Pad

	label         string
	interval      time.Duration
	pollRate      time.Duration
	statusLine    bool
	strict        bool
	screenshotDir string
	logger        *slog.Logger

	screen      *Screen
	lastResult  Result
	lastRefresh time.Time
}

// Option configures a Watcher during construction.
type Option func(*Watcher)

// WithLabel sets the command description shown on the status line.
func WithLabel(label string) Option {
	return func(w *Watcher) {
		w.label = label
	}
}

// WithInterval sets the redraw interval.
// Values <= 0 are replaced with the default (2s).
func WithInterval(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithPollRate sets the sleep between input polls.
// Values <= 0 are replaced with the default (50ms).
func WithPollRate(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.pollRate = d
		}
	}
}

// WithStatusLine enables or disables the status line on startup. It can be
// toggled at runtime regardless.
func WithStatusLine(enabled bool) Option {
	return func(w *Watcher) {
		w.statusLine = enabled
	}
}

// WithStrict makes a non-zero exit of the watched command fatal instead of
// reporting it on the status line.
func WithStrict(enabled bool) Option {
	return func(w *Watcher) {
		w.strict = enabled
	}
}

// WithScreenshotDir sets where screenshot PNGs are written. Defaults to the
// current directory.
func WithScreenshotDir(dir string) Option {
	return func(w *Watcher) {
		w.screenshotDir = dir
	}
}

// WithLogger sets the logger. Defaults to discarding.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New creates a watcher for the given runner. The registry must be the one
// the rendering screen decodes attributes with.
func New(runner Runner, registry *PairRegistry, opts ...Option) *Watcher {
	w := &Watcher{
		runner:   runner,
		registry: registry,
		parser:   NewLineParser(),
		pad:      NewPad(),
		interval: DefaultInterval,
		pollRate: DefaultPollRate,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.translator = NewTranslator(registry, w.logger)
	return w
}

// Pad returns the watcher's viewport buffer.
func (w *Watcher) Pad() *Pad {
	return w.pad
}

// Run drives the watch loop until the user quits, the context is canceled,
// or a fatal condition surfaces. The screen must already be open; the
// caller owns its restoration.
func (w *Watcher) Run(ctx context.Context, screen *Screen) error {
	w.screen = screen
	w.resizeRunner()

	for {
		if err := w.refresh(ctx); err != nil {
			return err
		}
		w.draw()

		quit, err := w.poll(ctx)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// refresh runs the command once and rewrites the pad from its output. Style
// state restarts each cycle; the pair registry persists, keeping slot
// numbering stable across redraws.
func (w *Watcher) refresh(ctx context.Context) error {
	res, err := w.runner.Run(ctx)
	if err != nil {
		return err
	}
	if w.strict && res.ExitCode != 0 {
		return &CommandError{ExitCode: res.ExitCode, Output: res.Output}
	}

	lines := splitLines(res.Output)
	rendered := make([][]Span, len(lines))
	w.translator.ResetState()
	for i, line := range lines {
		spans, err := w.translator.Translate(w.parser.ParseLine(line))
		if err != nil {
			// Logged by the translator; later lines render with the
			// colors already allocated.
			w.logger.Warn("coloring degraded", "line", i, "err", err)
		}
		rendered[i] = spans
	}
	w.pad.Write(rendered)

	w.lastResult = res
	w.lastRefresh = time.Now()
	w.logger.Debug("refreshed", "exit", res.ExitCode, "lines", len(lines), "pairs", w.registry.Len())
	return nil
}

func (w *Watcher) draw() {
	w.screen.Clear()
	w.pad.RenderTo(w.screen)
	if w.statusLine {
		w.drawStatus()
	}
	w.screen.Show()
}

// drawStatus paints the reserved final row in reverse video.
func (w *Watcher) drawStatus() {
	cols, rows := w.screen.Size()
	y, x := w.pad.Offset()

	text := fmt.Sprintf(" %s | exit %d | %s | +%d+%d ",
		w.label, w.lastResult.ExitCode, w.lastRefresh.Format("15:04:05"), y, x)

	attr := makeAttr(AttrReverse, 0)
	col := 0
	for _, r := range text {
		if col >= cols {
			break
		}
		w.screen.SetCell(col, rows-1, r, attr)
		col += runeWidth(r)
	}
	for ; col < cols; col++ {
		w.screen.SetCell(col, rows-1, ' ', attr)
	}
}

// poll alternates "is a keystroke pending?" with "has the redraw interval
// elapsed?" against a monotonic clock, sleeping between iterations. Returns
// true when the user quit.
func (w *Watcher) poll(ctx context.Context) (bool, error) {
	start := time.Now()
	for {
		if ctx.Err() != nil {
			return true, nil
		}

		for w.screen.HasEvent() {
			quit, redraw := w.handleEvent(w.screen.NextEvent())
			if quit {
				return true, nil
			}
			if redraw {
				return false, nil
			}
		}

		if time.Since(start) >= w.interval {
			return false, nil
		}
		time.Sleep(w.pollRate)
	}
}

// handleEvent dispatches one input event. The second return requests an
// immediate refresh.
func (w *Watcher) handleEvent(ev tcell.Event) (quit, redraw bool) {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		w.screen.Sync()
		w.resizeRunner()
		w.draw()

	case *tcell.EventKey:
		switch action := actionFor(tev); action {
		case ActionNone:
			w.logger.Debug("unmapped key", "key", tev.Name())
		case ActionQuit:
			return true, false
		case ActionRefresh:
			return false, true
		case ActionScreenshot:
			w.saveScreenshot()
		case ActionToggleStatus:
			w.statusLine = !w.statusLine
			w.draw()
		default:
			w.applyScroll(action)
			w.draw()
		}
	}
	return false, false
}

// applyScroll maps a scroll action onto the pad. Page sizes derive from the
// content area, which excludes the status row.
func (w *Watcher) applyScroll(action Action) {
	_, rows := w.screen.Size()
	page := rows - 1
	if page < 1 {
		page = 1
	}
	half := page / 2
	if half < 1 {
		half = 1
	}

	switch action {
	case ActionUp:
		w.pad.MoveBy(-1, 0)
	case ActionDown:
		w.pad.MoveBy(1, 0)
	case ActionLeft:
		w.pad.MoveBy(0, -1)
	case ActionRight:
		w.pad.MoveBy(0, 1)
	case ActionPageUp:
		w.pad.MoveBy(-page, 0)
	case ActionPageDown:
		w.pad.MoveBy(page, 0)
	case ActionHalfUp:
		w.pad.MoveBy(-half, 0)
	case ActionHalfDown:
		w.pad.MoveBy(half, 0)
	case ActionTop:
		w.pad.JumpTo(MinEdge, Keep)
	case ActionBottom:
		w.pad.JumpTo(MaxEdge, Keep)
	case ActionLineStart:
		w.pad.JumpTo(Keep, MinEdge)
	case ActionLineEnd:
		w.pad.JumpTo(Keep, MaxEdge)
	}
}

// resizeRunner propagates the content area size to runners that care (the
// pty runner sizes the child's terminal with it).
func (w *Watcher) resizeRunner() {
	type resizer interface {
		Resize(rows, cols int)
	}
	if r, ok := w.runner.(resizer); ok {
		cols, rows := w.screen.Size()
		r.Resize(rows-1, cols)
	}
}

// saveScreenshot dumps the full pad, not just the visible window, to a
// timestamped PNG.
func (w *Watcher) saveScreenshot() {
	name := fmt.Sprintf("viewpane-%s.png", time.Now().Format("20060102-150405"))
	path := filepath.Join(w.screenshotDir, name)

	f, err := os.Create(path)
	if err != nil {
		w.logger.Error("screenshot create failed", "path", path, "err", err)
		return
	}
	defer f.Close()

	if err := png.Encode(f, w.pad.Screenshot(w.registry)); err != nil {
		w.logger.Error("screenshot encode failed", "path", path, "err", err)
		return
	}
	w.logger.Info("screenshot saved", "path", path)
}

// splitLines splits combined command output into lines, tolerating CRLF
// endings from pty-attached commands. Empty output yields no lines.
func splitLines(output []byte) []string {
	s := string(output)
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
