package viewpane

import "log/slog"

// Span is a run of text sharing one resolved attribute, ready for a
// rendering surface.
type Span struct {
	Text string
	Attr Attr
}

// StyleState is the translator's running attribute state between calls:
// the active style flags and the active color-pair slot (0 = no color).
type StyleState struct {
	Flags Attr
	Slot  int
}

// Translator converts Instruction streams into Spans, carrying style state
// across calls: a style opened on one line and not closed continues on the
// next. A fresh translator starts with no flags and slot 0. State restarts
// only at an explicit Reset instruction or a ResetState call; the color-pair
// registry survives both.
//
// The pending color selection is tracked apart from the resolved slot: a
// foreground arriving before its background mutates only the selection, and
// the pair is registered when text is emitted under it.
type Translator struct {
	state    StyleState
	pending  Pair
	dirty    bool
	registry *PairRegistry
	logger   *slog.Logger
}

// NewTranslator creates a translator over the given registry. Translators
// sharing a registry agree on slot numbering. A nil logger discards log
// output.
func NewTranslator(registry *PairRegistry, logger *slog.Logger) *Translator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Translator{
		pending:  DefaultPair,
		registry: registry,
		logger:   logger,
	}
}

// State returns the current running style state.
func (t *Translator) State() StyleState {
	return t.state
}

// ResetState clears the running style state without touching the registry:
// allocated color pairs keep their slots.
func (t *Translator) ResetState() {
	t.state = StyleState{}
	t.pending = DefaultPair
	t.dirty = false
}

// Registry returns the translator's color-pair registry.
func (t *Translator) Registry() *PairRegistry {
	return t.registry
}

// Translate consumes an Instruction stream and returns the rendered spans.
// Text fragments are emitted immediately under the attribute active at that
// point; styling instructions mutate the running state. After the stream is
// exhausted the state persists for the next call.
//
// Color instructions only adjust the pending selection; the pair is
// registered lazily when text is emitted under it, so a foreground and
// background arriving back to back allocate one pair, not two, and a
// selection never followed by text allocates nothing.
//
// A color instruction outside the palette range is logged and skipped. When
// a new color pair would exceed the registry's capacity, the previous slot
// stays active and the spans are returned together with ErrPairCapacity;
// existing allocations are never disturbed.
func (t *Translator) Translate(instrs []Instruction) ([]Span, error) {
	flags := t.state.Flags
	slot := t.state.Slot
	pair := t.pending
	dirty := t.dirty

	var spans []Span
	var capErr error

	for _, in := range instrs {
		switch v := in.(type) {
		case Text:
			if dirty {
				slot = t.resolve(pair, slot, &capErr)
				dirty = false
			}
			spans = append(spans, Span{Text: string(v), Attr: makeAttr(flags, slot)})

		case SetForeground:
			code := int(v)
			if code < DefaultColor || code >= len(Palette) {
				t.logger.Warn("unresolvable foreground color", "code", code)
				continue
			}
			pair.Fg = code
			dirty = true

		case SetBackground:
			code := int(v)
			if code < DefaultColor || code >= len(Palette) {
				t.logger.Warn("unresolvable background color", "code", code)
				continue
			}
			pair.Bg = code
			dirty = true

		case SetAttribute:
			if v.Enabled {
				flags |= v.Flag & styleMask
			} else {
				flags &^= v.Flag
			}

		case Reset:
			flags = 0
			slot = 0
			pair = DefaultPair
			dirty = false

		default:
			t.logger.Warn("unrecognized instruction", "instruction", in)
		}
	}

	t.state.Flags = flags
	t.state.Slot = slot
	t.pending = pair
	t.dirty = dirty

	return spans, capErr
}

// resolve maps a pair to its slot, keeping the previous slot on capacity
// overflow. The first overflow per call is logged and recorded in capErr.
func (t *Translator) resolve(pair Pair, prev int, capErr *error) int {
	slot, err := t.registry.Resolve(pair)
	if err != nil {
		if *capErr == nil {
			t.logger.Error("color pair allocation failed", "fg", pair.Fg, "bg", pair.Bg, "limit", t.registry.Limit())
			*capErr = err
		}
		return prev
	}
	return slot
}
