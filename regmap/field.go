package regmap

import "fmt"

// EnumeratedValue names one legal value of a field.
type EnumeratedValue struct {
	Name        string
	Description string
	Value       uint32
}

// Enumeration is the named vocabulary of a field.
type Enumeration struct {
	Name   string
	Values []EnumeratedValue
}

// Lookup returns the enumerated value equal to v.
func (e *Enumeration) Lookup(v uint32) (EnumeratedValue, bool) {
	for _, ev := range e.Values {
		if ev.Value == v {
			return ev, true
		}
	}
	return EnumeratedValue{}, false
}

// Range marks a field whose legal values are the dense sequence 0..Max.
type Range struct {
	Name string
	Max  uint32
}

// Field is a bitfield descriptor within a register.
//
// A composed field has a non-empty Base; its offset is the offset of the base
// field plus Index and is filled in by Peripheral.Resolve.
type Field struct {
	Name        string
	Description string
	Offset      uint32
	Width       uint32
	Access      Access
	Base        string
	Index       uint32
	Enum        *Enumeration
	Range       *Range
}

// Composed reports whether the field offset is derived from another field.
func (f *Field) Composed() bool {
	return f.Base != ""
}

// Pattern returns the unshifted mask of the field.
func (f *Field) Pattern() uint32 {
	if f.Width >= 32 {
		return 0xFFFFFFFF
	}
	return 1<<f.Width - 1
}

// Mask returns the field mask shifted to the field offset.
func (f *Field) Mask() uint32 {
	return f.Pattern() << f.Offset
}

// Max returns the largest value the field can hold.
func (f *Field) Max() uint32 {
	return f.Pattern()
}

// Fits reports whether v can be stored in the field.
func (f *Field) Fits(v uint32) bool {
	return v&^f.Pattern() == 0
}

// Extract returns the field value contained in word.
func (f *Field) Extract(word uint32) uint32 {
	return (word & f.Mask()) >> f.Offset
}

// Insert returns word with the field replaced by v. Bits of v that do not fit
// the field are discarded.
func (f *Field) Insert(word, v uint32) uint32 {
	return word&^f.Mask() | (v<<f.Offset)&f.Mask()
}

// Encode returns v shifted to the field offset, or an error if it does not fit.
func (f *Field) Encode(v uint32) (uint32, error) {
	if !f.Fits(v) {
		return 0, fmt.Errorf("%s: %w: %#x > %#x", f.Name, ErrValueTooWide, v, f.Max())
	}
	return v << f.Offset, nil
}

func (f *Field) overlaps(other *Field) bool {
	return f.Mask()&other.Mask() != 0
}

func (f *Field) contains(other *Field) bool {
	return other.Mask()&^f.Mask() == 0
}
