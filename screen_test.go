package viewpane

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, reg *PairRegistry, cols, rows int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("simulation screen init: %v", err)
	}
	sim.SetSize(cols, rows)
	t.Cleanup(sim.Fini)
	return NewScreen(sim, reg), sim
}

func TestScreenSetCellDecodesPair(t *testing.T) {
	reg := NewPairRegistry(0)
	slot, err := reg.Resolve(Pair{Fg: 1, Bg: 4})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	screen, sim := newSimScreen(t, reg, 10, 4)
	screen.SetCell(0, 0, 'x', makeAttr(AttrBold, slot))
	screen.Show()

	r, _, style, _ := sim.GetContent(0, 0)
	if r != 'x' {
		t.Errorf("expected 'x', got %q", r)
	}

	fg, bg, mask := style.Decompose()
	if fg != tcell.PaletteColor(1) {
		t.Errorf("expected palette color 1 foreground, got %v", fg)
	}
	if bg != tcell.PaletteColor(4) {
		t.Errorf("expected palette color 4 background, got %v", bg)
	}
	if mask&tcell.AttrBold == 0 {
		t.Error("expected bold attribute")
	}
}

func TestScreenDefaultPairKeepsTerminalColors(t *testing.T) {
	reg := NewPairRegistry(0)
	screen, sim := newSimScreen(t, reg, 10, 4)

	screen.SetCell(0, 0, 'x', 0)
	screen.Show()

	_, _, style, _ := sim.GetContent(0, 0)
	fg, bg, _ := style.Decompose()
	if fg != tcell.ColorDefault || bg != tcell.ColorDefault {
		t.Errorf("expected default colors for slot 0, got fg=%v bg=%v", fg, bg)
	}
}

func TestScreenHiddenPaintsBlank(t *testing.T) {
	reg := NewPairRegistry(0)
	screen, sim := newSimScreen(t, reg, 10, 4)

	screen.SetCell(0, 0, 'x', makeAttr(AttrHidden, 0))
	screen.Show()

	if r, _, _, _ := sim.GetContent(0, 0); r != ' ' {
		t.Errorf("expected blank for hidden text, got %q", r)
	}
}

func TestScreenStyleFlags(t *testing.T) {
	reg := NewPairRegistry(0)
	screen, sim := newSimScreen(t, reg, 10, 4)

	screen.SetCell(0, 0, 'x', makeAttr(AttrDim|AttrItalic|AttrUnderline|AttrBlink|AttrReverse, 0))
	screen.Show()

	_, _, style, _ := sim.GetContent(0, 0)
	_, _, mask := style.Decompose()
	for _, want := range []tcell.AttrMask{
		tcell.AttrDim, tcell.AttrItalic, tcell.AttrUnderline, tcell.AttrBlink, tcell.AttrReverse,
	} {
		if mask&want == 0 {
			t.Errorf("expected attr %v set in %v", want, mask)
		}
	}
}
