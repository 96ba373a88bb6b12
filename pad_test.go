package viewpane

import "testing"

func line(texts ...string) []Span {
	spans := make([]Span, len(texts))
	for i, s := range texts {
		spans[i] = Span{Text: s}
	}
	return spans
}

func TestNewPadIsMinimal(t *testing.T) {
	p := NewPad()

	// One blank row; one content column plus the padding column.
	if p.Rows() != 1 || p.Cols() != 2 {
		t.Errorf("expected 1x2 pad, got %dx%d", p.Rows(), p.Cols())
	}
}

func TestPadWriteSizesToContent(t *testing.T) {
	p := NewPad()
	p.Write([][]Span{nil, line("abc")})

	if p.Rows() != 2 {
		t.Errorf("expected 2 rows, got %d", p.Rows())
	}
	// Widest line plus one column of padding.
	if p.Cols() != 4 {
		t.Errorf("expected 4 cols, got %d", p.Cols())
	}
	if p.Line(0) != "" {
		t.Errorf("expected blank first row, got %q", p.Line(0))
	}
	if p.Line(1) != "abc" {
		t.Errorf("expected \"abc\", got %q", p.Line(1))
	}
}

func TestPadWritePaintsSpansLeftToRight(t *testing.T) {
	p := NewPad()
	p.Write([][]Span{{
		{Text: "ab", Attr: makeAttr(AttrBold, 1)},
		{Text: "cd", Attr: 0},
	}})

	if p.Line(0) != "abcd" {
		t.Errorf("expected \"abcd\", got %q", p.Line(0))
	}
	if !p.Cell(0, 1).Attr.Has(AttrBold) {
		t.Error("expected bold attr on first span's cells")
	}
	if p.Cell(0, 2).Attr != 0 {
		t.Errorf("expected plain attr on second span's cells, got %v", p.Cell(0, 2).Attr)
	}
}

func TestPadWriteReplacesEntirely(t *testing.T) {
	p := NewPad()
	p.Write([][]Span{line("a very wide first line")})
	p.Write([][]Span{line("ab")})

	if p.Rows() != 1 || p.Cols() != 3 {
		t.Errorf("expected 1x3 pad after narrower write, got %dx%d", p.Rows(), p.Cols())
	}
	if p.Line(0) != "ab" {
		t.Errorf("expected no residue from first write, got %q", p.Line(0))
	}
}

func TestPadWriteEmptyContent(t *testing.T) {
	p := NewPad()
	p.Write([][]Span{line("something")})
	p.Write(nil)

	if p.Rows() != 1 || p.Cols() != 2 {
		t.Errorf("expected minimal pad for empty content, got %dx%d", p.Rows(), p.Cols())
	}
	if p.Line(0) != "" {
		t.Errorf("expected blank line, got %q", p.Line(0))
	}
}

func TestPadWideRuneUsesSpacer(t *testing.T) {
	p := NewPad()
	p.Write([][]Span{line("日x")})

	if !p.Cell(0, 1).IsSpacer() {
		t.Error("expected spacer cell behind wide rune")
	}
	if p.Cell(0, 2).Char != 'x' {
		t.Errorf("expected 'x' after the spacer, got %q", p.Cell(0, 2).Char)
	}
	if p.Line(0) != "日x" {
		t.Errorf("expected wide rune preserved, got %q", p.Line(0))
	}
}

func TestPadMoveByClamps(t *testing.T) {
	p := NewPad()
	p.Write([][]Span{nil, line("abc")})

	p.MoveBy(-5, 0)
	if y, _ := p.Offset(); y != 0 {
		t.Errorf("expected y clamped at 0, got %d", y)
	}

	p.MoveBy(100, 100)
	y, x := p.Offset()
	if y != p.Rows()-1 || x != p.Cols()-1 {
		t.Errorf("expected offset clamped to (%d,%d), got (%d,%d)", p.Rows()-1, p.Cols()-1, y, x)
	}

	// Axes clamp independently.
	p.MoveBy(-100, 1)
	y, x = p.Offset()
	if y != 0 {
		t.Errorf("expected y back at 0, got %d", y)
	}
	if x != p.Cols()-1 {
		t.Errorf("expected x to saturate at %d, got %d", p.Cols()-1, x)
	}
}

func TestPadJumpToEdges(t *testing.T) {
	p := NewPad()
	p.Write([][]Span{line("one"), line("two"), line("three")})

	p.JumpTo(MaxEdge, MaxEdge)
	y, x := p.Offset()
	if y != p.Rows()-1 || x != p.Cols()-1 {
		t.Errorf("expected (%d,%d), got (%d,%d)", p.Rows()-1, p.Cols()-1, y, x)
	}

	p.JumpTo(MinEdge, MinEdge)
	y, x = p.Offset()
	if y != 0 || x != 0 {
		t.Errorf("expected (0,0), got (%d,%d)", y, x)
	}
}

func TestPadJumpToCoordAndKeep(t *testing.T) {
	p := NewPad()
	p.Write([][]Span{line("one"), line("two"), line("three")})

	p.JumpTo(Coord(2), Keep)
	y, x := p.Offset()
	if y != 2 || x != 0 {
		t.Errorf("expected (2,0), got (%d,%d)", y, x)
	}

	p.JumpTo(Keep, Coord(100))
	y, x = p.Offset()
	if y != 2 {
		t.Errorf("expected y kept at 2, got %d", y)
	}
	if x != p.Cols()-1 {
		t.Errorf("expected x clamped to %d, got %d", p.Cols()-1, x)
	}
}

func TestPadOffsetSurvivesWriteClamped(t *testing.T) {
	p := NewPad()
	p.Write([][]Span{line("one"), line("two"), line("three")})
	p.JumpTo(MaxEdge, Keep)

	p.Write([][]Span{line("one")})
	if y, _ := p.Offset(); y != 0 {
		t.Errorf("expected offset re-clamped to shrunken buffer, got %d", y)
	}
}

// gridSurface is an in-memory Surface for render tests.
type gridSurface struct {
	cols, rows int
	chars      [][]rune
	attrs      [][]Attr
}

func newGridSurface(cols, rows int) *gridSurface {
	s := &gridSurface{cols: cols, rows: rows}
	s.Clear()
	return s
}

func (s *gridSurface) Size() (int, int) { return s.cols, s.rows }

func (s *gridSurface) SetCell(x, y int, r rune, attr Attr) {
	if y < 0 || y >= s.rows || x < 0 || x >= s.cols {
		return
	}
	s.chars[y][x] = r
	s.attrs[y][x] = attr
}

func (s *gridSurface) Clear() {
	s.chars = make([][]rune, s.rows)
	s.attrs = make([][]Attr, s.rows)
	for y := range s.chars {
		s.chars[y] = make([]rune, s.cols)
		s.attrs[y] = make([]Attr, s.cols)
		for x := range s.chars[y] {
			s.chars[y][x] = ' '
		}
	}
}

func (s *gridSurface) Show() {}

func (s *gridSurface) row(y int) string {
	return string(s.chars[y])
}

func TestPadRenderReservesStatusRow(t *testing.T) {
	p := NewPad()
	p.Write([][]Span{line("aaa"), line("bbb"), line("ccc"), line("ddd")})

	s := newGridSurface(3, 3)
	p.RenderTo(s)

	if s.row(0) != "aaa" || s.row(1) != "bbb" {
		t.Errorf("expected first two lines rendered, got %q, %q", s.row(0), s.row(1))
	}
	if s.row(2) != "   " {
		t.Errorf("expected final row untouched, got %q", s.row(2))
	}
}

func TestPadRenderHonorsOffset(t *testing.T) {
	p := NewPad()
	p.Write([][]Span{line("abcde"), line("fghij"), line("klmno")})

	s := newGridSurface(3, 3)
	p.MoveBy(1, 2)
	p.RenderTo(s)

	if s.row(0) != "hij" {
		t.Errorf("expected offset projection \"hij\", got %q", s.row(0))
	}
	if s.row(1) != "mno" {
		t.Errorf("expected offset projection \"mno\", got %q", s.row(1))
	}
}

func TestPadRenderSingleEmptyLine(t *testing.T) {
	p := NewPad()
	s := newGridSurface(4, 2)
	p.RenderTo(s)

	if s.row(0) != "    " {
		t.Errorf("expected blank render, got %q", s.row(0))
	}
}
