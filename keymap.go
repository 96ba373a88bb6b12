package viewpane

import "github.com/gdamore/tcell/v2"

// Action is a user command resolved from a key event.
type Action int

const (
	// ActionNone means the key has no mapped action.
	ActionNone Action = iota
	// ActionQuit ends the watch loop.
	ActionQuit
	// ActionRefresh re-runs the command immediately.
	ActionRefresh
	// ActionScreenshot saves the current buffer as a PNG.
	ActionScreenshot
	// ActionToggleStatus shows or hides the status line.
	ActionToggleStatus
	// ActionUp scrolls one row up.
	ActionUp
	// ActionDown scrolls one row down.
	ActionDown
	// ActionLeft scrolls one column left.
	ActionLeft
	// ActionRight scrolls one column right.
	ActionRight
	// ActionPageUp scrolls a full content page up.
	ActionPageUp
	// ActionPageDown scrolls a full content page down.
	ActionPageDown
	// ActionHalfUp scrolls half a content page up.
	ActionHalfUp
	// ActionHalfDown scrolls half a content page down.
	ActionHalfDown
	// ActionTop jumps to the first row.
	ActionTop
	// ActionBottom jumps to the last row.
	ActionBottom
	// ActionLineStart jumps to column 0.
	ActionLineStart
	// ActionLineEnd jumps to the last column.
	ActionLineEnd
)

// actionFor maps a key event to an action. Unmapped keys return ActionNone;
// pressing one is not an error.
func actionFor(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionUp
	case tcell.KeyDown:
		return ActionDown
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyPgUp, tcell.KeyCtrlB:
		return ActionPageUp
	case tcell.KeyPgDn, tcell.KeyCtrlF:
		return ActionPageDown
	case tcell.KeyCtrlU:
		return ActionHalfUp
	case tcell.KeyCtrlD:
		return ActionHalfDown
	case tcell.KeyHome:
		return ActionTop
	case tcell.KeyEnd:
		return ActionBottom
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return ActionQuit
		case 'k':
			return ActionUp
		case 'j':
			return ActionDown
		case 'h':
			return ActionLeft
		case 'l':
			return ActionRight
		case 'g':
			return ActionTop
		case 'G':
			return ActionBottom
		case '0':
			return ActionLineStart
		case '$':
			return ActionLineEnd
		case 'r':
			return ActionRefresh
		case 's':
			return ActionScreenshot
		case 'x':
			return ActionToggleStatus
		}
	}
	return ActionNone
}
