package viewpane

// targetKind discriminates Target values.
type targetKind int

const (
	targetKeep targetKind = iota
	targetCoord
	targetMin
	targetMax
)

// Target selects one axis of a JumpTo destination: an explicit coordinate,
// a buffer edge, or "leave this axis alone". The zero value keeps the
// current offset.
type Target struct {
	kind targetKind
	n    int
}

// Keep leaves the axis at its current offset.
var Keep = Target{}

// MinEdge jumps the axis to offset 0.
var MinEdge = Target{kind: targetMin}

// MaxEdge jumps the axis to the last row or column.
var MaxEdge = Target{kind: targetMax}

// Coord jumps the axis to an explicit offset, clamped to the buffer.
func Coord(n int) Target {
	return Target{kind: targetCoord, n: n}
}

// Pad is a virtual content buffer larger than or equal to the physical
// screen, plus a clamped scroll offset. Write resizes it to exactly fit the
// rendered content; RenderTo projects the sub-rectangle at the offset onto a
// surface. A pad is owned and mutated by a single goroutine.
type Pad struct {
	rows  int
	cols  int
	cells [][]Cell
	offY  int
	offX  int
}

// NewPad creates a minimal pad holding a single blank line: one row, one
// content column plus the trailing padding column.
func NewPad() *Pad {
	p := &Pad{}
	p.Write(nil)
	return p
}

// Rows returns the buffer height in rows.
func (p *Pad) Rows() int {
	return p.rows
}

// Cols returns the buffer width in columns, including the trailing padding
// column.
func (p *Pad) Cols() int {
	return p.cols
}

// Offset returns the current scroll offset.
func (p *Pad) Offset() (y, x int) {
	return p.offY, p.offX
}

// Cell returns a pointer to the cell at (row, col).
// Returns nil if coordinates are out of bounds.
func (p *Pad) Cell(row, col int) *Cell {
	if row < 0 || row >= p.rows || col < 0 || col >= p.cols {
		return nil
	}
	return &p.cells[row][col]
}

// Write replaces the entire buffer contents with the given lines of spans.
// The buffer is rebuilt at (max(1, lines), max(1, widest line)+1): the extra
// column guarantees the rightmost character survives an edge scroll. Every
// write fully supersedes prior contents; the scroll offset is kept and
// re-clamped against the new dimensions.
func (p *Pad) Write(lines [][]Span) {
	rows := len(lines)
	if rows < 1 {
		rows = 1
	}

	cols := 1
	for _, line := range lines {
		w := 0
		for _, span := range line {
			w += spanWidth(span.Text)
		}
		if w > cols {
			cols = w
		}
	}
	cols++

	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
		for j := range cells[i] {
			cells[i][j] = NewCell()
		}
	}

	for y, line := range lines {
		x := 0
		for _, span := range line {
			for _, r := range span.Text {
				w := runeWidth(r)
				if w == 0 || x+w > cols {
					continue
				}
				cells[y][x] = Cell{Char: r, Attr: span.Attr}
				if w == 2 {
					cells[y][x+1] = Cell{Char: 0, Attr: span.Attr}
				}
				x += w
			}
		}
	}

	p.rows = rows
	p.cols = cols
	p.cells = cells
	p.offY = clamp(p.offY, 0, rows-1)
	p.offX = clamp(p.offX, 0, cols-1)
}

// MoveBy shifts the scroll offset by the given deltas. Each axis clamps
// independently: a delta heading past a boundary saturates there, which
// makes scrolling off an edge a no-op rather than an error.
func (p *Pad) MoveBy(dy, dx int) {
	p.offY = clamp(p.offY+dy, 0, p.rows-1)
	p.offX = clamp(p.offX+dx, 0, p.cols-1)
}

// JumpTo moves the scroll offset to the targets, clamped like MoveBy.
func (p *Pad) JumpTo(y, x Target) {
	p.offY = p.applyTarget(y, p.offY, p.rows)
	p.offX = p.applyTarget(x, p.offX, p.cols)
}

func (p *Pad) applyTarget(t Target, cur, dim int) int {
	switch t.kind {
	case targetCoord:
		return clamp(t.n, 0, dim-1)
	case targetMin:
		return 0
	case targetMax:
		return dim - 1
	default:
		return cur
	}
}

// RenderTo paints the buffer sub-rectangle at the scroll offset onto the
// surface. The surface's final row is reserved for a status line and never
// painted. Spacer cells and out-of-range positions are left to the
// surface's cleared state.
func (p *Pad) RenderTo(s Surface) {
	w, h := s.Size()
	for sy := 0; sy < h-1; sy++ {
		by := p.offY + sy
		if by >= p.rows {
			break
		}
		for sx := 0; sx < w; sx++ {
			bx := p.offX + sx
			if bx >= p.cols {
				break
			}
			cell := p.cells[by][bx]
			if cell.IsSpacer() {
				continue
			}
			s.SetCell(sx, sy, cell.Char, cell.Attr)
		}
	}
}

// clamp ensures the value is within the given range.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
