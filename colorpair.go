package viewpane

import "errors"

// DefaultColor is the sentinel color code meaning "inherit the terminal default".
const DefaultColor = -1

// DefaultPairLimit is the default maximum number of allocatable color pairs.
// It matches the 8-bit slot field of Attr.
const DefaultPairLimit = 255

// ErrPairCapacity is returned when allocating a new color pair would exceed
// the registry's limit. Existing allocations are unaffected.
var ErrPairCapacity = errors.New("color pair capacity exceeded")

// Pair is a (foreground, background) color combination. Each code is an
// xterm-256 palette index, or DefaultColor.
type Pair struct {
	Fg int
	Bg int
}

// DefaultPair is the reserved pair for slot 0: no color override.
var DefaultPair = Pair{Fg: DefaultColor, Bg: DefaultColor}

// PairRegistry allocates small integer slots for distinct color pairs,
// the handles a rendering surface uses to reference a color combination.
//
// Slot 0 is reserved for DefaultPair and never allocated. New pairs receive
// strictly increasing slots starting at 1; a mapping, once made, is never
// revoked. The registry is not safe for concurrent use: translators sharing
// one must run on the same goroutine.
type PairRegistry struct {
	slots map[Pair]int
	pairs []Pair // index == slot; pairs[0] == DefaultPair
	limit int
}

// NewPairRegistry creates an empty registry. A limit <= 0 selects
// DefaultPairLimit.
func NewPairRegistry(limit int) *PairRegistry {
	if limit <= 0 {
		limit = DefaultPairLimit
	}
	return &PairRegistry{
		slots: make(map[Pair]int),
		pairs: []Pair{DefaultPair},
		limit: limit,
	}
}

// Resolve returns the slot for the given pair, allocating the next free slot
// on first sight. Repeated calls with a known pair return the same slot with
// no side effects. Returns ErrPairCapacity when a new allocation would exceed
// the limit.
func (r *PairRegistry) Resolve(pair Pair) (int, error) {
	if pair == DefaultPair {
		return 0, nil
	}
	if slot, ok := r.slots[pair]; ok {
		return slot, nil
	}
	if len(r.slots) >= r.limit {
		return 0, ErrPairCapacity
	}
	slot := len(r.pairs)
	r.slots[pair] = slot
	r.pairs = append(r.pairs, pair)
	return slot, nil
}

// PairFor returns the pair registered for a slot. Slot 0 and out-of-range
// slots yield DefaultPair.
func (r *PairRegistry) PairFor(slot int) Pair {
	if slot <= 0 || slot >= len(r.pairs) {
		return DefaultPair
	}
	return r.pairs[slot]
}

// Len returns the number of allocated pairs, not counting reserved slot 0.
func (r *PairRegistry) Len() int {
	return len(r.slots)
}

// Limit returns the maximum number of allocatable pairs.
func (r *PairRegistry) Limit() int {
	return r.limit
}
