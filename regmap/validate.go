package regmap

import (
	"errors"
	"fmt"
)

// Validate checks the structural invariants of a resolved map and returns
// every violation found, joined.
func (p *Peripheral) Validate() error {
	var errs []error
	fail := func(err error) {
		errs = append(errs, err)
	}

	names := map[string]bool{}
	var prev *Register
	for i := range p.Registers {
		r := &p.Registers[i]

		if names[r.Name] {
			fail(fmt.Errorf("%s: %w: register %s", p.Name, ErrDuplicate, r.Name))
		}
		names[r.Name] = true

		if r.Offset%4 != 0 {
			fail(fmt.Errorf("%s.%s: %w: %#x", p.Name, r.Name, ErrAlignment, r.Offset))
		}
		if r.Count > 1 && r.Stride() != r.Bytes() {
			fail(fmt.Errorf("%s.%s: %w: %#x", p.Name, r.Name, ErrStride, r.Stride()))
		}
		if r.Offset+r.Extent() > p.Span {
			fail(fmt.Errorf("%s.%s: %w: ends at %#x past %#x", p.Name, r.Name, ErrSpan, r.Offset+r.Extent(), p.Span))
		}

		if !r.Occupies() {
			primary, ok := p.Register(r.Alternate)
			switch {
			case !ok:
				fail(fmt.Errorf("%s.%s: %w: unknown alternate %q", p.Name, r.Name, ErrAlias, r.Alternate))
			case !primary.Occupies():
				fail(fmt.Errorf("%s.%s: %w: alternate %s is itself an alternate", p.Name, r.Name, ErrAlias, primary.Name))
			case primary.Offset != r.Offset:
				fail(fmt.Errorf("%s.%s: %w: offset %#x differs from %s at %#x", p.Name, r.Name, ErrAlias, r.Offset, primary.Name, primary.Offset))
			}
		} else {
			if prev != nil {
				end := prev.Offset + prev.Extent()
				switch {
				case r.Offset <= prev.Offset:
					fail(fmt.Errorf("%s.%s: %w: %#x follows %s at %#x", p.Name, r.Name, ErrOrder, r.Offset, prev.Name, prev.Offset))
				case r.Offset < end:
					fail(fmt.Errorf("%s.%s: %w: starts at %#x inside %s", p.Name, r.Name, ErrOverlap, r.Offset, prev.Name))
				}
			}
			prev = r
		}

		if err := validateFields(p.Name, r); err != nil {
			fail(err)
		}
	}

	if size := p.Size(); size != p.Span {
		fail(fmt.Errorf("%s: %w: overlay is %#x bytes, span is %#x", p.Name, ErrSpan, size, p.Span))
	}

	ranges := map[string]uint32{}
	for i := range p.Registers {
		for j := range p.Registers[i].Fields {
			rng := p.Registers[i].Fields[j].Range
			if rng == nil {
				continue
			}
			if max, ok := ranges[rng.Name]; ok && max != rng.Max {
				fail(fmt.Errorf("%s: %w: range %s used with maxima %d and %d", p.Name, ErrRange, rng.Name, max, rng.Max))
			}
			ranges[rng.Name] = rng.Max
		}
	}

	return errors.Join(errs...)
}

func validateFields(periph string, r *Register) error {
	var errs []error
	names := map[string]bool{}
	for i := range r.Fields {
		f := &r.Fields[i]
		where := fmt.Sprintf("%s.%s.%s", periph, r.Name, f.Name)

		if names[f.Name] {
			errs = append(errs, fmt.Errorf("%s: %w: field", where, ErrDuplicate))
		}
		names[f.Name] = true

		if f.Width == 0 || f.Offset+f.Width > r.Size {
			errs = append(errs, fmt.Errorf("%s: %w: bits %d+%d of %d", where, ErrFieldBounds, f.Offset, f.Width, r.Size))
			continue
		}

		if f.Composed() {
			base, ok := r.Field(f.Base)
			if !ok || !base.contains(f) {
				errs = append(errs, fmt.Errorf("%s: %w: not contained in %s", where, ErrComposition, f.Base))
			}
		} else {
			for j := 0; j < i; j++ {
				other := &r.Fields[j]
				if !other.Composed() && f.overlaps(other) && !accessAliased(r.FieldAccess(f), r.FieldAccess(other)) {
					errs = append(errs, fmt.Errorf("%s: %w: with %s (%#08x & %#08x)", where, ErrOverlap, other.Name, f.Mask(), other.Mask()))
				}
			}
		}

		if f.Range != nil && f.Range.Max != f.Max() {
			errs = append(errs, fmt.Errorf("%s: %w: %s max %d, field holds 0..%d", where, ErrRange, f.Range.Name, f.Range.Max, f.Max()))
		}

		if f.Enum != nil {
			values := map[string]bool{}
			for _, ev := range f.Enum.Values {
				if !f.Fits(ev.Value) {
					errs = append(errs, fmt.Errorf("%s: %w: %s = %#x", where, ErrValueTooWide, ev.Name, ev.Value))
				}
				if values[ev.Name] {
					errs = append(errs, fmt.Errorf("%s: %w: value %s", where, ErrDuplicate, ev.Name))
				}
				values[ev.Name] = true
			}
		}
	}
	return errors.Join(errs...)
}

// accessAliased reports whether two overlapping fields are the read and write
// views of the same bits, such as DHCSR.S_HALT and DHCSR.DBGKEY.
func accessAliased(a, b Access) bool {
	return (a == ReadOnly && !b.Readable()) || (b == ReadOnly && !a.Readable())
}
