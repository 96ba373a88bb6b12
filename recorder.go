package viewpane

import (
	"image/color"

	"github.com/danielgatis/go-ansicode"
)

// Ensure recorder implements ansicode.Handler
var _ ansicode.Handler = (*recorder)(nil)

// tabWidth is the column interval tabs expand to.
const tabWidth = 8

// recorder implements ansicode.Handler by capturing printable text and SGR
// styling callbacks into an Instruction stream. Everything else the decoder
// reports (cursor motion, charsets, OSC strings, keyboard modes) is cursor
// and terminal control, out of scope for line styling, and is ignored.
type recorder struct {
	instrs []Instruction
	text   []rune
	col    int
}

// LineParser converts one raw escape-coded line into an Instruction stream
// using the go-ansicode decoder. The decoder is reused across lines, so a
// (rare) escape sequence split across a line boundary still parses.
type LineParser struct {
	rec *recorder
	dec *ansicode.Decoder
}

// NewLineParser creates a parser with a fresh decoder.
func NewLineParser() *LineParser {
	rec := &recorder{}
	return &LineParser{
		rec: rec,
		dec: ansicode.NewDecoder(rec),
	}
}

// ParseLine decodes a single line of raw text, without the trailing newline,
// into an Instruction stream.
func (p *LineParser) ParseLine(line string) []Instruction {
	p.rec.reset()
	p.dec.Write([]byte(line))
	return p.rec.take()
}

func (r *recorder) reset() {
	r.instrs = nil
	r.text = nil
	r.col = 0
}

// take flushes pending text and returns the recorded stream.
func (r *recorder) take() []Instruction {
	r.flushText()
	return r.instrs
}

func (r *recorder) flushText() {
	if len(r.text) == 0 {
		return
	}
	r.instrs = append(r.instrs, Text(string(r.text)))
	r.text = nil
}

func (r *recorder) emit(in Instruction) {
	r.flushText()
	r.instrs = append(r.instrs, in)
}

// Input records a printable rune.
func (r *recorder) Input(ch rune) {
	if runeWidth(ch) == 0 {
		// Combining marks would need grapheme handling; dropped.
		return
	}
	r.text = append(r.text, ch)
	r.col += runeWidth(ch)
}

// Tab expands to spaces up to the next tab stop, n times.
func (r *recorder) Tab(n int) {
	for i := 0; i < n; i++ {
		next := (r.col/tabWidth + 1) * tabWidth
		for r.col < next {
			r.text = append(r.text, ' ')
			r.col++
		}
	}
}

// CarriageReturn rewinds the column counter. Lines are split before parsing,
// so a stray CR (from CRLF endings) only affects tab arithmetic.
func (r *recorder) CarriageReturn() {
	r.col = 0
}

// SetTerminalCharAttribute translates an SGR callback into styling
// instructions. Attributes with no flag equivalent (strike-through,
// underline color) are dropped.
func (r *recorder) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
	switch attr.Attr {
	case ansicode.CharAttributeReset:
		r.emit(Reset{})

	case ansicode.CharAttributeBold:
		r.emit(SetAttribute{Flag: AttrBold, Enabled: true})

	case ansicode.CharAttributeDim:
		r.emit(SetAttribute{Flag: AttrDim, Enabled: true})

	case ansicode.CharAttributeItalic:
		r.emit(SetAttribute{Flag: AttrItalic, Enabled: true})

	case ansicode.CharAttributeUnderline,
		ansicode.CharAttributeDoubleUnderline,
		ansicode.CharAttributeCurlyUnderline,
		ansicode.CharAttributeDottedUnderline,
		ansicode.CharAttributeDashedUnderline:
		r.emit(SetAttribute{Flag: AttrUnderline, Enabled: true})

	case ansicode.CharAttributeBlinkSlow, ansicode.CharAttributeBlinkFast:
		r.emit(SetAttribute{Flag: AttrBlink, Enabled: true})

	case ansicode.CharAttributeReverse:
		r.emit(SetAttribute{Flag: AttrReverse, Enabled: true})

	case ansicode.CharAttributeHidden:
		r.emit(SetAttribute{Flag: AttrHidden, Enabled: true})

	case ansicode.CharAttributeCancelBold:
		r.emit(SetAttribute{Flag: AttrBold, Enabled: false})

	case ansicode.CharAttributeCancelBoldDim:
		r.emit(SetAttribute{Flag: AttrBold, Enabled: false})
		r.emit(SetAttribute{Flag: AttrDim, Enabled: false})

	case ansicode.CharAttributeCancelItalic:
		r.emit(SetAttribute{Flag: AttrItalic, Enabled: false})

	case ansicode.CharAttributeCancelUnderline:
		r.emit(SetAttribute{Flag: AttrUnderline, Enabled: false})

	case ansicode.CharAttributeCancelBlink:
		r.emit(SetAttribute{Flag: AttrBlink, Enabled: false})

	case ansicode.CharAttributeCancelReverse:
		r.emit(SetAttribute{Flag: AttrReverse, Enabled: false})

	case ansicode.CharAttributeCancelHidden:
		r.emit(SetAttribute{Flag: AttrHidden, Enabled: false})

	case ansicode.CharAttributeForeground:
		if code, ok := colorCode(attr); ok {
			r.emit(SetForeground(code))
		}

	case ansicode.CharAttributeBackground:
		if code, ok := colorCode(attr); ok {
			r.emit(SetBackground(code))
		}
	}
}

// colorCode resolves an SGR color payload to a palette code. Truecolor
// values quantize to the nearest xterm-256 entry; named colors at or above
// the palette range mean "terminal default".
func colorCode(attr ansicode.TerminalCharAttribute) (int, bool) {
	if attr.RGBColor != nil {
		return nearestPaletteIndex(attr.RGBColor.R, attr.RGBColor.G, attr.RGBColor.B), true
	}
	if attr.IndexedColor != nil {
		return int(attr.IndexedColor.Index), true
	}
	if attr.NamedColor != nil {
		n := int(*attr.NamedColor)
		if n >= len(Palette) {
			return DefaultColor, true
		}
		return n, true
	}
	return 0, false
}

// The remaining ansicode.Handler callbacks.

func (r *recorder) ApplicationCommandReceived(data []byte)  {}
func (r *recorder) Backspace()                              {}
func (r *recorder) Bell()                                   {}
func (r *recorder) CellSizePixels()                         {}
func (r *recorder) ClearLine(mode ansicode.LineClearMode)   {}
func (r *recorder) ClearScreen(mode ansicode.ClearMode)     {}
func (r *recorder) ClearTabs(mode ansicode.TabulationClearMode) {
}
func (r *recorder) ClipboardLoad(clipboard byte, terminator string) {}
func (r *recorder) ClipboardStore(clipboard byte, data []byte)      {}
func (r *recorder) ConfigureCharset(index ansicode.CharsetIndex, charset ansicode.Charset) {
}
func (r *recorder) Decaln()                   {}
func (r *recorder) DeleteChars(n int)         {}
func (r *recorder) DeleteLines(n int)         {}
func (r *recorder) DeviceStatus(n int)        {}
func (r *recorder) EraseChars(n int)          {}
func (r *recorder) Goto(row, col int)         {}
func (r *recorder) GotoCol(col int)           {}
func (r *recorder) GotoLine(row int)          {}
func (r *recorder) HorizontalTabSet()         {}
func (r *recorder) IdentifyTerminal(b byte)   {}
func (r *recorder) InsertBlank(n int)         {}
func (r *recorder) InsertBlankLines(n int)    {}
func (r *recorder) LineFeed()                 {}
func (r *recorder) MoveBackward(n int)        {}
func (r *recorder) MoveBackwardTabs(n int)    {}
func (r *recorder) MoveDown(n int)            {}
func (r *recorder) MoveDownCr(n int)          {}
func (r *recorder) MoveForward(n int)         {}
func (r *recorder) MoveForwardTabs(n int)     {}
func (r *recorder) MoveUp(n int)              {}
func (r *recorder) MoveUpCr(n int)            {}
func (r *recorder) PopKeyboardMode(n int)     {}
func (r *recorder) PopTitle()                 {}
func (r *recorder) PrivacyMessageReceived(data []byte) {
}
func (r *recorder) PushKeyboardMode(mode ansicode.KeyboardMode) {}
func (r *recorder) PushTitle()                                  {}
func (r *recorder) ReportKeyboardMode()                         {}
func (r *recorder) ReportModifyOtherKeys()                      {}
func (r *recorder) ResetColor(i int)                            {}
func (r *recorder) ResetState()                                 {}
func (r *recorder) RestoreCursorPosition()                      {}
func (r *recorder) ReverseIndex()                               {}
func (r *recorder) SaveCursorPosition()                         {}
func (r *recorder) ScrollDown(n int)                            {}
func (r *recorder) ScrollUp(n int)                              {}
func (r *recorder) SetActiveCharset(n int)                      {}
func (r *recorder) SetColor(index int, c color.Color)           {}
func (r *recorder) SetCursorStyle(style ansicode.CursorStyle)   {}
func (r *recorder) SetDynamicColor(prefix string, index int, terminator string) {
}
func (r *recorder) SetHyperlink(hyperlink *ansicode.Hyperlink) {}
func (r *recorder) SetKeyboardMode(mode ansicode.KeyboardMode, behavior ansicode.KeyboardModeBehavior) {
}
func (r *recorder) SetKeypadApplicationMode()                        {}
func (r *recorder) SetMode(mode ansicode.TerminalMode)               {}
func (r *recorder) SetModifyOtherKeys(modify ansicode.ModifyOtherKeys) {
}
func (r *recorder) SetScrollingRegion(top, bottom int) {}
func (r *recorder) SetTitle(title string)              {}
func (r *recorder) SetUserVar(name, value string)      {}
func (r *recorder) SetWorkingDirectory(uri string)     {}
func (r *recorder) SixelReceived(params [][]uint16, data []byte) {}
func (r *recorder) StartOfStringReceived(data []byte)            {}
func (r *recorder) Substitute()                                  {}
func (r *recorder) TextAreaSizeChars()                           {}
func (r *recorder) TextAreaSizePixels()                          {}
func (r *recorder) UnsetKeypadApplicationMode()                  {}
func (r *recorder) UnsetMode(mode ansicode.TerminalMode)         {}
