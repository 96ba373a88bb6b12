package viewpane

// Surface is the grid-addressable paint target a Pad renders onto. The
// production implementation wraps a tcell screen; tests substitute an
// in-memory grid.
type Surface interface {
	// Size returns the surface dimensions in columns and rows.
	Size() (cols, rows int)

	// SetCell paints a rune with the given packed attribute at (x, y).
	SetCell(x, y int, r rune, attr Attr)

	// Clear erases the surface to its default state.
	Clear()

	// Show makes all pending paints visible.
	Show()
}
