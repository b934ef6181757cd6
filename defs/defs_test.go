package defs

import (
	"errors"
	"testing"

	"omibyte.io/coresight/mmio"
	"omibyte.io/coresight/regmap"
)

func TestAll(t *testing.T) {
	periphs, err := All()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		base mmio.Address
		span uint32
	}{
		{name: "MPU", base: 0xE000ED90, span: 0x60},
		{name: "SCS", base: 0xE000E000, span: 0x1000},
		{name: "DWT", base: 0xE0001000, span: 0x1000},
		{name: "ITM", base: 0xE0000000, span: 0x1000},
		{name: "DP", base: 0x0, span: 0x10},
		{name: "MEMAP", base: 0x0, span: 0x100},
	}

	if len(periphs) != len(tests) {
		t.Fatalf("expected %d peripherals, got %d", len(tests), len(periphs))
	}

	for i, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := periphs[i]
			if p.Name != test.name {
				t.Fatalf("expected %s, got %s", test.name, p.Name)
			}
			if err := p.Validate(); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if p.Span != test.span {
				t.Errorf("expected span %#x, got %#x", test.span, p.Span)
			}
			if p.Size() != test.span {
				t.Errorf("expected overlay size %#x, got %#x", test.span, p.Size())
			}
			addr, err := p.Address()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if addr != test.base {
				t.Errorf("expected base %s, got %s", test.base, addr)
			}
		})
	}
}

func TestFind(t *testing.T) {
	if _, err := Find("mpu"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := Load("NVIC"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if src, err := Source("DWT"); err != nil || len(src) == 0 {
		t.Errorf("expected DWT source, got %d bytes (%v)", len(src), err)
	}
}

func field(t *testing.T, p *regmap.Peripheral, register, name string) *regmap.Field {
	t.Helper()
	r, ok := p.Register(register)
	if !ok {
		t.Fatalf("%s: no register %s", p.Name, register)
	}
	f, ok := r.Field(name)
	if !ok {
		t.Fatalf("%s.%s: no field %s", p.Name, register, name)
	}
	return f
}

func TestRegionSize(t *testing.T) {
	p, err := Load("MPU")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	size := field(t, p, "RASR", "SIZE")
	if size.Mask() != 0x1E {
		t.Errorf("expected mask 0x1e, got %#x", size.Mask())
	}

	v := size.Extract(0x00000006)
	if v != 3 {
		t.Fatalf("expected 3, got %d", v)
	}
	ev, ok := size.Enum.Lookup(v)
	if !ok || ev.Name != "16_bytes" {
		t.Errorf("expected 16_bytes, got %q", ev.Name)
	}

	// The alias registers share the layout of RASR
	alias := field(t, p, "RASR_A3", "SIZE")
	if alias.Mask() != size.Mask() || alias.Enum != size.Enum {
		t.Errorf("RASR_A3.SIZE differs from RASR.SIZE")
	}

	var named, reserved uint32
	for _, slot := range p.Layout() {
		if slot.Reserved() {
			reserved += slot.Words
		} else {
			named += slot.Words
		}
	}
	if named != 11 || reserved != 13 {
		t.Errorf("expected 11 named and 13 reserved words, got %d and %d", named, reserved)
	}
}

func TestComposedFields(t *testing.T) {
	p, err := Load("SCS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		field  string
		offset uint32
	}{
		{"DISDI_VFP", 16},
		{"DISDI_MAC", 17},
		{"DISDI_LDST", 18},
		{"DISDI_IBR", 19},
		{"DISDI_DBR", 20},
		{"DISISSCH1_VFP", 21},
		{"DISISSCH1_MAC", 22},
		{"DISISSCH1_LDST", 23},
		{"DISISSCH1_IBR", 24},
		{"DISISSCH1_DBR", 25},
	}

	for _, test := range tests {
		t.Run(test.field, func(t *testing.T) {
			f := field(t, p, "ACTLR", test.field)
			base := field(t, p, "ACTLR", f.Base)
			if f.Offset != test.offset {
				t.Errorf("expected offset %d, got %d", test.offset, f.Offset)
			}
			if f.Offset != base.Offset+f.Index {
				t.Errorf("offset %d is not %s offset %d + %d", f.Offset, base.Name, base.Offset, f.Index)
			}
			if f.Mask()&^base.Mask() != 0 {
				t.Errorf("mask %#x not inside %s mask %#x", f.Mask(), base.Name, base.Mask())
			}
		})
	}
}

func TestDenseRanges(t *testing.T) {
	periphs, err := All()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count := 0
	for _, p := range periphs {
		for i := range p.Registers {
			r := &p.Registers[i]
			for j := range r.Fields {
				f := &r.Fields[j]
				if f.Range == nil {
					continue
				}
				count++
				if f.Range.Max != 1<<f.Width-1 {
					t.Errorf("%s.%s.%s: max %d for width %d", p.Name, r.Name, f.Name, f.Range.Max, f.Width)
				}
				for v := uint32(0); v <= f.Range.Max; v++ {
					word := f.Insert(0, v)
					if word&^f.Mask() != 0 || f.Extract(word) != v {
						t.Fatalf("%s.%s.%s: %d does not round trip", p.Name, r.Name, f.Name, v)
					}
				}
			}
		}
	}
	if count == 0 {
		t.Errorf("no dense ranges found")
	}
}

func TestBankedRegisters(t *testing.T) {
	p, err := Load("DP")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	banks := map[uint32]string{}
	for i := range p.Registers {
		r := &p.Registers[i]
		if !r.Banked {
			continue
		}
		if r.Offset != 0x4 {
			t.Errorf("%s: banked register at %#x", r.Name, r.Offset)
		}
		if other, ok := banks[r.Bank]; ok {
			t.Errorf("%s and %s share bank %d", r.Name, other, r.Bank)
		}
		banks[r.Bank] = r.Name
	}
	if len(banks) != 5 || banks[0] != "CTRL_STAT" {
		t.Errorf("unexpected banks %v", banks)
	}

	if slots := p.Layout(); len(slots) != 4 {
		t.Errorf("expected 4 slots, got %d", len(slots))
	}
}

func TestConfig(t *testing.T) {
	config := Config()
	if err := config.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := config.ImportPath("MPU"); got != "omibyte.io/coresight/cortexm/mpu" {
		t.Errorf("unexpected import path %q", got)
	}
	if got := config.PackageName("MEMAP"); got != "memap" {
		t.Errorf("unexpected package name %q", got)
	}
}
