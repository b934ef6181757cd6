package regmap

import (
	"errors"
	"testing"
)

func testMap() *Peripheral {
	regionSize := &Enumeration{Name: "RegionSize", Values: []EnumeratedValue{
		{Name: "16_bytes", Value: 3},
		{Name: "32_bytes", Value: 4},
	}}
	rasr := []Field{
		{Name: "ENABLE", Offset: 0, Width: 1},
		{Name: "SIZE", Offset: 1, Width: 4, Enum: regionSize},
		{Name: "SRD", Offset: 8, Width: 8},
		{Name: "AP", Offset: 24, Width: 3},
	}
	return &Peripheral{
		Name:    "MPU",
		Binding: Binding{Symbol: "SCS_BASE", Offset: 0xD90},
		Span:    0x60,
		Registers: []Register{
			{Name: "TYPE", Offset: 0x0, Access: ReadOnly, Fields: []Field{
				{Name: "SEPARATE", Offset: 0, Width: 1},
				{Name: "DREGION", Offset: 8, Width: 8, Range: &Range{Name: "RegionCount", Max: 255}},
			}},
			{Name: "CTRL", Offset: 0x4},
			{Name: "RNR", Offset: 0x8, Fields: []Field{
				{Name: "REGION", Offset: 0, Width: 8, Range: &Range{Name: "Region", Max: 255}},
			}},
			{Name: "RBAR", Offset: 0xC},
			{Name: "RASR", Offset: 0x10, Fields: rasr},
			{Name: "RBAR_A1", Offset: 0x14, DerivedFrom: "RBAR"},
			{Name: "RASR_A1", Offset: 0x18, DerivedFrom: "RASR"},
		},
	}
}

func resolved(t *testing.T, p *Peripheral) *Peripheral {
	t.Helper()
	if err := p.Resolve(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func TestFieldMask(t *testing.T) {
	p := resolved(t, testMap())
	rasr, _ := p.Register("RASR")
	size, _ := rasr.Field("SIZE")

	if size.Mask() != 0x0000001E {
		t.Errorf("expected mask %#x, got %#x", 0x1E, size.Mask())
	}
	if size.Mask() != size.Pattern()<<size.Offset {
		t.Errorf("mask %#x is not pattern %#x << %d", size.Mask(), size.Pattern(), size.Offset)
	}

	v := size.Extract(0x00000006)
	if v != 3 {
		t.Fatalf("expected SIZE 3, got %d", v)
	}
	ev, ok := size.Enum.Lookup(v)
	if !ok || ev.Name != "16_bytes" {
		t.Errorf("expected 16_bytes, got %q", ev.Name)
	}
}

func TestFieldRoundTrip(t *testing.T) {
	p := resolved(t, testMap())
	rasr, _ := p.Register("RASR")

	words := []uint32{0x00000000, 0x00000006, 0x1302FF3F, 0xFFFFFFFF, 0x8000001E}
	for _, word := range words {
		for i := range rasr.Fields {
			f := &rasr.Fields[i]
			v := f.Extract(word)
			cleared := word &^ f.Mask()
			if got := cleared | v<<f.Offset; got != word {
				t.Errorf("%s: %#08x -> %#x -> %#08x", f.Name, word, v, got)
			}
			if got := f.Insert(word, v); got != word {
				t.Errorf("%s: Insert(%#08x, %#x) = %#08x", f.Name, word, v, got)
			}
		}
	}
}

func TestFieldEncode(t *testing.T) {
	f := Field{Name: "AP", Offset: 24, Width: 3}
	if v, err := f.Encode(3); err != nil || v != 0x03000000 {
		t.Errorf("expected 0x03000000, got %#x (%v)", v, err)
	}
	if _, err := f.Encode(8); !errors.Is(err, ErrValueTooWide) {
		t.Errorf("expected ErrValueTooWide, got %v", err)
	}
	if got := f.Insert(0, 0xF); got != 0x07000000 {
		t.Errorf("expected excess bits to be discarded, got %#x", got)
	}

	wide := Field{Name: "ADDR", Offset: 0, Width: 32}
	if wide.Mask() != 0xFFFFFFFF {
		t.Errorf("expected full mask, got %#x", wide.Mask())
	}
}

func TestDenseRange(t *testing.T) {
	p := resolved(t, testMap())
	rnr, _ := p.Register("RNR")
	region, _ := rnr.Field("REGION")

	seen := map[uint32]bool{}
	for v := uint32(0); v <= region.Range.Max; v++ {
		word := region.Insert(0, v)
		got := region.Extract(word)
		if got != v {
			t.Fatalf("region %d extracted as %d", v, got)
		}
		if seen[got] {
			t.Fatalf("duplicate region %d", got)
		}
		seen[got] = true
	}
	if len(seen) != 256 {
		t.Errorf("expected 256 regions, got %d", len(seen))
	}

	if ranges := p.Ranges(); len(ranges) != 2 {
		t.Errorf("expected 2 ranges, got %v", ranges)
	}
}

func TestLayout(t *testing.T) {
	p := resolved(t, testMap())
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	slots := p.Layout()
	named, reserved := 0, uint32(0)
	for _, slot := range slots {
		if slot.Reserved() {
			reserved += slot.Words
		} else {
			named++
		}
	}
	if named != 7 || reserved != 17 {
		t.Errorf("expected 7 named and 17 reserved words, got %d and %d", named, reserved)
	}
	if p.Size() != 0x60 {
		t.Errorf("expected size 0x60, got %#x", p.Size())
	}

	addr, err := p.Address()
	if err != nil || addr != 0xE000ED90 {
		t.Errorf("expected 0xE000ED90, got %s (%v)", addr, err)
	}
}

func TestDerivedFields(t *testing.T) {
	p := resolved(t, testMap())
	alias, _ := p.Register("RASR_A1")
	if len(alias.Fields) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(alias.Fields))
	}
	size, ok := alias.Field("SIZE")
	if !ok || size.Mask() != 0x1E {
		t.Errorf("expected SIZE field with mask 0x1E")
	}

	p = testMap()
	p.Registers = append(p.Registers, Register{Name: "BAD", Offset: 0x1C, DerivedFrom: "NOPE"})
	if err := p.Resolve(); !errors.Is(err, ErrAlias) {
		t.Errorf("expected ErrAlias, got %v", err)
	}
}

func TestComposition(t *testing.T) {
	actlr := func(base uint32) *Peripheral {
		return &Peripheral{
			Name:    "SCS",
			Binding: Binding{Symbol: "SCS_BASE"},
			Span:    0x10,
			Registers: []Register{
				{Name: "ACTLR", Offset: 0x8, Fields: []Field{
					{Name: "DISDI_DBR", Base: "DISDI", Index: 4, Width: 1},
					{Name: "DISDI", Offset: base, Width: 5},
					{Name: "DISDI_VFP", Base: "DISDI", Index: 0, Width: 1},
					{Name: "DISDI_VFP_ALIAS", Base: "DISDI_VFP", Index: 0, Width: 1},
				}},
			},
		}
	}

	for _, base := range []uint32{16, 20} {
		p := resolved(t, actlr(base))
		if err := p.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		r, _ := p.Register("ACTLR")
		dbr, _ := r.Field("DISDI_DBR")
		vfp, _ := r.Field("DISDI_VFP")
		chained, _ := r.Field("DISDI_VFP_ALIAS")
		if dbr.Offset != base+4 || vfp.Offset != base || chained.Offset != base {
			t.Errorf("base %d: got offsets %d, %d, %d", base, dbr.Offset, vfp.Offset, chained.Offset)
		}
	}

	// Index beyond the base field
	p := actlr(16)
	p.Registers[0].Fields[0].Index = 5
	resolved(t, p)
	if err := p.Validate(); !errors.Is(err, ErrComposition) {
		t.Errorf("expected ErrComposition, got %v", err)
	}

	// Cycle
	p = actlr(16)
	p.Registers[0].Fields[1].Base = "DISDI_VFP"
	if err := p.Resolve(); !errors.Is(err, ErrComposition) {
		t.Errorf("expected ErrComposition, got %v", err)
	}

	// Unknown base
	p = actlr(16)
	p.Registers[0].Fields[0].Base = "NOPE"
	if err := p.Resolve(); !errors.Is(err, ErrComposition) {
		t.Errorf("expected ErrComposition, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Peripheral)
		err    error
	}{
		{"span", func(p *Peripheral) { p.Span = 0x18 }, ErrSpan},
		{"span-unaligned", func(p *Peripheral) { p.Span = 0x5E }, ErrSpan},
		{"order", func(p *Peripheral) { p.Registers[1].Offset = 0x0 }, ErrOrder},
		{"overlap", func(p *Peripheral) {
			p.Registers[2].Count, p.Registers[2].Increment = 2, 4
		}, ErrOverlap},
		{"stride", func(p *Peripheral) {
			p.Registers[6].Count, p.Registers[6].Increment = 2, 8
		}, ErrStride},
		{"alignment", func(p *Peripheral) { p.Registers[6].Offset = 0x1A }, ErrAlignment},
		{"field-overlap", func(p *Peripheral) {
			p.Registers[4].Fields[2].Offset = 4
		}, ErrOverlap},
		{"field-bounds", func(p *Peripheral) {
			p.Registers[4].Fields[3].Offset = 30
		}, ErrFieldBounds},
		{"range", func(p *Peripheral) {
			p.Registers[2].Fields[0].Range.Max = 239
		}, ErrRange},
		{"enum", func(p *Peripheral) {
			p.Registers[4].Fields[1].Enum.Values[0].Value = 0x10
		}, ErrValueTooWide},
		{"duplicate", func(p *Peripheral) { p.Registers[1].Name = "TYPE" }, ErrDuplicate},
		{"alternate", func(p *Peripheral) {
			p.Registers = append(p.Registers, Register{Name: "X", Offset: 0x8, Alternate: "CTRL"})
		}, ErrAlias},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := testMap()
			tc.mutate(p)
			if err := p.Resolve(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err := p.Validate(); !errors.Is(err, tc.err) {
				t.Errorf("expected %v, got %v", tc.err, err)
			}
		})
	}
}

func TestAlternate(t *testing.T) {
	p := &Peripheral{
		Name:    "DP",
		Binding: Binding{Symbol: "DP_BASE"},
		Span:    0x8,
		Registers: []Register{
			{Name: "DPIDR", Offset: 0x0, Access: ReadOnly},
			{Name: "ABORT", Offset: 0x0, Access: WriteOnly, Alternate: "DPIDR"},
			{Name: "CTRL_STAT", Offset: 0x4, Banked: true},
			{Name: "DLCR", Offset: 0x4, Banked: true, Bank: 1, Alternate: "CTRL_STAT"},
		},
	}
	resolved(t, p)
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slots := p.Layout(); len(slots) != 2 {
		t.Errorf("expected 2 slots, got %d", len(slots))
	}
}

func TestDecode(t *testing.T) {
	p := resolved(t, testMap())
	values, err := p.Decode("RASR", 0x03000007)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := map[string]uint32{}
	for _, fv := range values {
		got[fv.Field.Name] = fv.Value
	}
	want := map[string]uint32{"ENABLE": 1, "SIZE": 3, "SRD": 0, "AP": 3}
	for name, v := range want {
		if got[name] != v {
			t.Errorf("%s: expected %d, got %d", name, v, got[name])
		}
	}

	if _, err = p.Decode("NOPE", 0); !errors.Is(err, ErrUnknownRegister) {
		t.Errorf("expected ErrUnknownRegister, got %v", err)
	}
}

func TestParseAccess(t *testing.T) {
	tests := []struct {
		in       string
		access   Access
		readable bool
		writable bool
	}{
		{"read-only", ReadOnly, true, false},
		{"RO", ReadOnly, true, false},
		{"write-only", WriteOnly, false, true},
		{"WO", WriteOnly, false, true},
		{"read-write", ReadWrite, true, true},
		{"RW", ReadWrite, true, true},
		{"writeOnce", WriteOnce, false, true},
		{"W0", WriteOnce, false, true},
		{"read-writeOnce", ReadWriteOnce, true, true},
		{"R0", ReadWriteOnce, true, true},
	}

	for _, tc := range tests {
		a, err := ParseAccess(tc.in)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.in, err)
		}
		if a != tc.access || a.Readable() != tc.readable || a.Writable() != tc.writable {
			t.Errorf("%s: got %v readable=%v writable=%v", tc.in, a, a.Readable(), a.Writable())
		}
	}

	if _, err := ParseAccess("sometimes"); !errors.Is(err, ErrUnknownAccess) {
		t.Errorf("expected ErrUnknownAccess, got %v", err)
	}
}

func TestAccessAlias(t *testing.T) {
	tests := []struct {
		name    string
		read    Access
		write   Access
		wantErr bool
	}{
		{name: "read-write-views", read: ReadOnly, write: WriteOnly},
		{name: "both-readable", read: ReadOnly, write: ReadWrite, wantErr: true},
		{name: "both-writable", read: WriteOnly, write: WriteOnly, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := resolved(t, &Peripheral{
				Name: "DEBUG",
				Span: 0x4,
				Registers: []Register{
					{Name: "DHCSR", Offset: 0x0, Fields: []Field{
						{Name: "C_DEBUGEN", Offset: 0, Width: 1},
						{Name: "S_HALT", Offset: 17, Width: 1, Access: test.read},
						{Name: "DBGKEY", Offset: 16, Width: 16, Access: test.write},
					}},
				},
			})
			err := p.Validate()
			if test.wantErr && !errors.Is(err, ErrOverlap) {
				t.Errorf("expected ErrOverlap, got %v", err)
			} else if !test.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			values := p.Registers[0].Decode(0x00020001)
			if test.name == "read-write-views" && len(values) != 2 {
				t.Errorf("expected 2 readable fields, got %d", len(values))
			}
		})
	}
}
