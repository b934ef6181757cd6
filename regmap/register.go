package regmap

// Register describes one 32-bit register (or array of registers) in a map.
type Register struct {
	Name        string
	Description string
	Offset      uint32
	Size        uint32
	Access      Access
	ResetValue  uint32

	// Count and Increment describe a register array. Count zero means a
	// single register.
	Count     uint32
	Increment uint32

	// DerivedFrom names a register whose field layout this register shares,
	// e.g. the MPU alias registers RBAR_A1..A3.
	DerivedFrom string

	// Alternate names the register whose slot this register shares at the same
	// offset. Alternates do not occupy overlay space.
	Alternate string

	// Banked registers are selected by a bank number in addition to their
	// offset.
	Banked bool
	Bank   uint32

	Fields []Field
}

// Field returns the named field.
func (r *Register) Field(name string) (*Field, bool) {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			return &r.Fields[i], true
		}
	}
	return nil, false
}

// Elements returns the number of registers described, at least one.
func (r *Register) Elements() uint32 {
	if r.Count == 0 {
		return 1
	}
	return r.Count
}

// Bytes returns the size of a single element in bytes.
func (r *Register) Bytes() uint32 {
	if r.Size == 0 {
		return 4
	}
	return r.Size / 8
}

// Stride returns the distance between array elements in bytes.
func (r *Register) Stride() uint32 {
	if r.Increment == 0 {
		return r.Bytes()
	}
	return r.Increment
}

// Extent returns the number of bytes covered by the register or array.
func (r *Register) Extent() uint32 {
	return r.Stride()*(r.Elements()-1) + r.Bytes()
}

// Occupies reports whether the register owns its overlay slot.
func (r *Register) Occupies() bool {
	return r.Alternate == ""
}

// FieldAccess returns the effective access of f within r.
func (r *Register) FieldAccess(f *Field) Access {
	return f.Access.Or(r.Access)
}

// FieldValue is one decoded field of a register word.
type FieldValue struct {
	Field *Field
	Value uint32
	Name  string
}

// Decode splits a word read from the register into its readable,
// non-composed fields.
func (r *Register) Decode(word uint32) []FieldValue {
	values := make([]FieldValue, 0, len(r.Fields))
	for i := range r.Fields {
		f := &r.Fields[i]
		if f.Composed() || !r.FieldAccess(f).Readable() {
			continue
		}
		fv := FieldValue{Field: f, Value: f.Extract(word)}
		if f.Enum != nil {
			if ev, ok := f.Enum.Lookup(fv.Value); ok {
				fv.Name = ev.Name
			}
		}
		values = append(values, fv)
	}
	return values
}
