package viewpane

// Cell stores one grid position of the viewport buffer. A zero Char marks
// the spacer position behind a wide character; rendering skips it.
type Cell struct {
	Char rune
	Attr Attr
}

// NewCell creates a blank cell with no attributes.
func NewCell() Cell {
	return Cell{Char: ' '}
}

// Reset returns the cell to blank state.
func (c *Cell) Reset() {
	c.Char = ' '
	c.Attr = 0
}

// IsSpacer returns true if this is the second column of a wide character.
func (c *Cell) IsSpacer() bool {
	return c.Char == 0
}
