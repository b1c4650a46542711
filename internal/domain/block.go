package domain

import "fmt"

// BlockKind is the closed set of day-block types
type BlockKind int

const (
	KindSlot BlockKind = iota
	KindMandatoryBreak
	KindOptionalBreak
)

// Block is one unit of the day's ordered sequence.
// It carries no time: start and end are implied by its position.
type Block struct {
	ID   string
	Kind BlockKind
}

// DurationOf returns the fixed duration of a block kind in minutes
func DurationOf(kind BlockKind) int {
	switch kind {
	case KindSlot:
		return SlotDuration
	case KindMandatoryBreak:
		return MandatoryBreakDuration
	case KindOptionalBreak:
		return OptionalBreakDuration
	default:
		panic(fmt.Sprintf("domain: unknown block kind %d", kind))
	}
}

// Duration returns the block duration in minutes
func (b Block) Duration() int {
	return DurationOf(b.Kind)
}

// IsSlot returns true if the block can hold an appointment
func (b Block) IsSlot() bool {
	return b.Kind == KindSlot
}

// IsBreak returns true for both break kinds
func (b Block) IsBreak() bool {
	return b.Kind == KindMandatoryBreak || b.Kind == KindOptionalBreak
}

// String returns the stable wire name of the kind
func (k BlockKind) String() string {
	switch k {
	case KindSlot:
		return "slot"
	case KindMandatoryBreak:
		return "mandatory_break"
	case KindOptionalBreak:
		return "optional_break"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// IsValid returns true for the three known kinds
func (k BlockKind) IsValid() bool {
	return k == KindSlot || k == KindMandatoryBreak || k == KindOptionalBreak
}

// ParseBlockKind converts a wire name back into a BlockKind
func ParseBlockKind(s string) (BlockKind, error) {
	switch s {
	case "slot":
		return KindSlot, nil
	case "mandatory_break":
		return KindMandatoryBreak, nil
	case "optional_break":
		return KindOptionalBreak, nil
	default:
		return 0, fmt.Errorf("domain: unknown block kind %q", s)
	}
}
