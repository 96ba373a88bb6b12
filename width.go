package viewpane

import "github.com/unilibs/uniwidth"

// runeWidth returns the display width of a rune (0, 1, or 2 columns).
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// isWideRune returns true if the rune occupies 2 columns (CJK, emoji, etc.).
func isWideRune(r rune) bool {
	return uniwidth.RuneWidth(r) == 2
}

// spanWidth returns the display width of a span's text in columns.
func spanWidth(s string) int {
	return uniwidth.StringWidth(s)
}
