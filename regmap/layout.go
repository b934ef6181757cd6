package regmap

import (
	"golang.org/x/exp/slices"
)

// Slot is one entry of an overlay: either a named register (or register
// array) or a run of reserved words.
type Slot struct {
	Offset   uint32
	Words    uint32
	Register *Register
}

// Reserved reports whether the slot is padding.
func (s Slot) Reserved() bool {
	return s.Register == nil
}

// Bytes returns the size of the slot.
func (s Slot) Bytes() uint32 {
	return s.Words * 4
}

// Layout returns the overlay of the map from offset zero to Span. Gaps between
// registers and the tail up to Span are filled with reserved slots. Alternate
// registers share the slot of their primary and do not appear.
func (p *Peripheral) Layout() []Slot {
	var registers []*Register
	for i := range p.Registers {
		if p.Registers[i].Occupies() {
			registers = append(registers, &p.Registers[i])
		}
	}

	// Sort the registers by address offset
	slices.SortStableFunc(registers, func(a, b *Register) bool {
		return a.Offset < b.Offset
	})

	var slots []Slot
	offset := uint32(0)
	for _, r := range registers {
		if r.Offset < offset {
			// Overlapping register, reported by Validate
			continue
		}
		if r.Offset > offset {
			// Insert padding words
			slots = append(slots, Slot{Offset: offset, Words: (r.Offset - offset) / 4})
			offset = r.Offset
		}
		slots = append(slots, Slot{Offset: r.Offset, Words: r.Extent() / 4, Register: r})
		offset += r.Extent()
	}

	if p.Span > offset {
		slots = append(slots, Slot{Offset: offset, Words: (p.Span - offset) / 4})
	}
	return slots
}

// Size returns the number of bytes covered by the overlay.
func (p *Peripheral) Size() uint32 {
	size := uint32(0)
	for _, slot := range p.Layout() {
		size += slot.Bytes()
	}
	return size
}
