package viewpane

// Attr is the packed attribute value consumed by a rendering surface.
// The low 8 bits carry the color-pair slot; style flags live above them.
type Attr uint32

const (
	// AttrBold renders text with increased intensity.
	AttrBold Attr = 1 << (8 + iota)
	// AttrDim renders text with decreased intensity.
	AttrDim
	// AttrItalic renders text in italics.
	AttrItalic
	// AttrUnderline renders text underlined.
	AttrUnderline
	// AttrBlink renders text blinking.
	AttrBlink
	// AttrReverse swaps foreground and background.
	AttrReverse
	// AttrHidden renders text invisibly.
	AttrHidden
)

// attrSlotMask covers the bits reserved for the color-pair slot.
const attrSlotMask Attr = 0xff

// styleMask covers every style flag.
const styleMask = AttrBold | AttrDim | AttrItalic | AttrUnderline | AttrBlink | AttrReverse | AttrHidden

// makeAttr packs style flags and a color-pair slot into one attribute value.
func makeAttr(flags Attr, slot int) Attr {
	return (flags & styleMask) | (Attr(slot) & attrSlotMask)
}

// Slot extracts the color-pair slot. Slot 0 means no color override.
func (a Attr) Slot() int {
	return int(a & attrSlotMask)
}

// Styles extracts the style flags, dropping the slot bits.
func (a Attr) Styles() Attr {
	return a & styleMask
}

// Has returns true if every flag in the given mask is set.
func (a Attr) Has(flag Attr) bool {
	return a&flag == flag
}
