package viewpane

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Ensure Screen implements Surface
var _ Surface = (*Screen)(nil)

// Screen is the tcell-backed rendering surface. It decodes packed Attr
// values back into tcell styles through the pair registry, so every
// translator writing to it must share that registry.
type Screen struct {
	tc       tcell.Screen
	registry *PairRegistry
}

// OpenScreen acquires the physical terminal. The caller must Close the
// screen on every exit path so the terminal is restored to normal mode.
func OpenScreen(registry *PairRegistry) (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if err := tc.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	tc.HideCursor()
	tc.Clear()
	return NewScreen(tc, registry), nil
}

// NewScreen wraps an already-initialized tcell screen. Useful with
// tcell.NewSimulationScreen in tests.
func NewScreen(tc tcell.Screen, registry *PairRegistry) *Screen {
	return &Screen{tc: tc, registry: registry}
}

// Close releases the terminal, restoring its normal mode. Safe to call once
// after OpenScreen regardless of how the run loop ended.
func (s *Screen) Close() {
	s.tc.Fini()
}

// Size returns the surface dimensions in columns and rows.
func (s *Screen) Size() (cols, rows int) {
	return s.tc.Size()
}

// SetCell paints a rune with the given attribute. Hidden text paints as a
// blank under its own colors, since tcell has no invisible attribute.
func (s *Screen) SetCell(x, y int, r rune, attr Attr) {
	if attr.Has(AttrHidden) {
		r = ' '
	}
	s.tc.SetContent(x, y, r, nil, s.styleFor(attr))
}

// Clear erases the screen to the default style.
func (s *Screen) Clear() {
	s.tc.Clear()
}

// Show flushes pending paints to the terminal.
func (s *Screen) Show() {
	s.tc.Show()
}

// Sync forces a full repaint, used after a resize event.
func (s *Screen) Sync() {
	s.tc.Sync()
}

// HasEvent reports whether an input event is pending without blocking.
func (s *Screen) HasEvent() bool {
	return s.tc.HasPendingEvent()
}

// NextEvent blocks until the next input event. Call only after HasEvent
// reports true to keep the poll loop non-blocking.
func (s *Screen) NextEvent() tcell.Event {
	return s.tc.PollEvent()
}

func (s *Screen) styleFor(attr Attr) tcell.Style {
	st := tcell.StyleDefault

	pair := s.registry.PairFor(attr.Slot())
	if pair.Fg != DefaultColor {
		st = st.Foreground(tcell.PaletteColor(pair.Fg))
	}
	if pair.Bg != DefaultColor {
		st = st.Background(tcell.PaletteColor(pair.Bg))
	}

	if attr.Has(AttrBold) {
		st = st.Bold(true)
	}
	if attr.Has(AttrDim) {
		st = st.Dim(true)
	}
	if attr.Has(AttrItalic) {
		st = st.Italic(true)
	}
	if attr.Has(AttrUnderline) {
		st = st.Underline(true)
	}
	if attr.Has(AttrBlink) {
		st = st.Blink(true)
	}
	if attr.Has(AttrReverse) {
		st = st.Reverse(true)
	}

	return st
}
