package viewpane

import "strings"

// Line returns the text content of a buffer row with trailing blanks
// trimmed. Wide character spacers are skipped. Returns the empty string for
// an out-of-bounds row.
func (p *Pad) Line(row int) string {
	if row < 0 || row >= p.rows {
		return ""
	}

	last := -1
	for col := p.cols - 1; col >= 0; col-- {
		c := &p.cells[row][col]
		if c.Char != ' ' && !c.IsSpacer() {
			last = col
			break
		}
	}
	if last < 0 {
		return ""
	}

	runes := make([]rune, 0, last+1)
	for col := 0; col <= last; col++ {
		c := &p.cells[row][col]
		if c.IsSpacer() {
			continue
		}
		runes = append(runes, c.Char)
	}
	return string(runes)
}

// Contents returns the whole buffer as newline-joined trimmed lines.
func (p *Pad) Contents() string {
	lines := make([]string, p.rows)
	for row := 0; row < p.rows; row++ {
		lines[row] = p.Line(row)
	}
	return strings.Join(lines, "\n")
}
