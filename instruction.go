package viewpane

// Instruction is one element of the stream an ANSI-parsed line decomposes
// into: literal text interleaved with styling directives. The translator
// consumes a stream exactly once, left to right.
//
// The set of implementations is closed: Text, SetForeground, SetBackground,
// SetAttribute, and Reset.
type Instruction interface {
	isInstruction()
}

// Text is a literal text fragment carrying no styling of its own.
type Text string

// SetForeground selects a new foreground color by palette code.
type SetForeground int

// SetBackground selects a new background color by palette code.
type SetBackground int

// SetAttribute enables or disables a single style flag. The flag is one of
// the Attr style bits; disabling clears only that bit.
type SetAttribute struct {
	Flag    Attr
	Enabled bool
}

// Reset clears all style flags and returns the color selection to slot 0.
// Previously allocated color pairs are unaffected.
type Reset struct{}

func (Text) isInstruction()          {}
func (SetForeground) isInstruction() {}
func (SetBackground) isInstruction() {}
func (SetAttribute) isInstruction()  {}
func (Reset) isInstruction()         {}
