package svd

import (
	"errors"
	"strings"
	"testing"

	"omibyte.io/coresight/mmio"
	"omibyte.io/coresight/regmap"
)

const sample = `<?xml version="1.0" encoding="utf-8"?>
<device>
  <name>TEST</name>
  <access>read-write</access>
  <peripherals>
    <peripheral>
      <name>UNIT</name>
      <description>Test
        unit</description>
      <baseAddress>0xE000E010</baseAddress>
      <binding symbol="SCS_BASE" offset="0x10"/>
      <addressBlock>
        <offset>0x0</offset>
        <size>0x20</size>
      </addressBlock>
      <registers>
        <register>
          <name>CTRL/STAT</name>
          <description>Control</description>
          <addressOffset>0x0</addressOffset>
          <resetValue>0x00000004</resetValue>
          <fields>
            <field>
              <name>MODE</name>
              <bitOffset>0</bitOffset>
              <bitWidth>2</bitWidth>
              <enumeratedValues>
                <name>mode</name>
                <enumeratedValue><name>off</name><value>0</value></enumeratedValue>
                <enumeratedValue><name>on</name><description>Enabled</description><value>1</value></enumeratedValue>
              </enumeratedValues>
            </field>
            <field>
              <name>LANES</name>
              <bitOffset>8</bitOffset>
              <bitWidth>4</bitWidth>
            </field>
            <field>
              <name>LANES_B</name>
              <bitWidth>1</bitWidth>
              <composedFrom field="LANES" index="1"/>
            </field>
            <field>
              <name>READY</name>
              <bitOffset>31</bitOffset>
              <bitWidth>1</bitWidth>
              <access>read-only</access>
            </field>
          </fields>
        </register>
        <register>
          <name>SEL</name>
          <addressOffset>0x4</addressOffset>
          <access>write-only</access>
          <fields>
            <field>
              <name>MODE</name>
              <bitOffset>4</bitOffset>
              <bitWidth>2</bitWidth>
              <enumeratedValues derivedFrom="mode"/>
            </field>
            <field>
              <name>INDEX</name>
              <bitOffset>8</bitOffset>
              <bitWidth>3</bitWidth>
              <range name="index"/>
            </field>
          </fields>
        </register>
        <register>
          <name>DATA[%s]</name>
          <addressOffset>0x8</addressOffset>
          <dim>4</dim>
          <dimIncrement>4</dimIncrement>
        </register>
        <register derivedFrom="SEL">
          <name>SEL_A1</name>
          <addressOffset>0x18</addressOffset>
          <access>write-only</access>
        </register>
      </registers>
    </peripheral>
  </peripherals>
</device>`

func TestLoad(t *testing.T) {
	maps, err := Load([]byte(sample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(maps) != 1 {
		t.Fatalf("expected 1 peripheral, got %d", len(maps))
	}

	p := maps[0]
	if p.Name != "UNIT" || p.Description != "Test unit" || p.Span != 0x20 {
		t.Errorf("unexpected peripheral %q %q %#x", p.Name, p.Description, p.Span)
	}
	addr, err := p.Address()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr != mmio.SCSBase+0x10 {
		t.Errorf("expected base %s, got %s", mmio.SCSBase+0x10, addr)
	}
	if err = p.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		offset uint32
		access regmap.Access
		count  uint32
		fields int
	}{
		{name: "CTRL_STAT", offset: 0x0, access: regmap.ReadWrite, fields: 4},
		{name: "SEL", offset: 0x4, access: regmap.WriteOnly, fields: 2},
		{name: "DATA", offset: 0x8, access: regmap.ReadWrite, count: 4},
		{name: "SEL_A1", offset: 0x18, access: regmap.WriteOnly, fields: 2},
	}
	for _, test := range tests {
		r, ok := p.Register(test.name)
		if !ok {
			t.Errorf("missing register %s", test.name)
			continue
		}
		if r.Offset != test.offset || r.Access != test.access || r.Count != test.count || len(r.Fields) != test.fields {
			t.Errorf("%s: unexpected register %+v", test.name, *r)
		}
	}
}

func TestFields(t *testing.T) {
	maps, err := Load([]byte(sample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := maps[0]
	ctrl, _ := p.Register("CTRL_STAT")
	sel, _ := p.Register("SEL")

	composed, ok := ctrl.Field("LANES_B")
	if !ok || !composed.Composed() || composed.Offset != 9 {
		t.Errorf("unexpected composed field %+v", composed)
	}

	mode, _ := ctrl.Field("MODE")
	derived, _ := sel.Field("MODE")
	if mode.Enum == nil || derived.Enum != mode.Enum {
		t.Errorf("expected SEL.MODE to share the enumeration of CTRL_STAT.MODE")
	}
	if v, ok := mode.Enum.Lookup(1); !ok || v.Name != "on" || v.Description != "Enabled" {
		t.Errorf("unexpected enumerated value %+v", v)
	}

	index, _ := sel.Field("INDEX")
	if index.Range == nil || index.Range.Name != "index" || index.Range.Max != 7 {
		t.Errorf("unexpected range %+v", index.Range)
	}

	ready, _ := ctrl.Field("READY")
	if ctrl.FieldAccess(ready) != regmap.ReadOnly {
		t.Errorf("expected READY to be read-only, got %s", ctrl.FieldAccess(ready))
	}

	alias, _ := p.Register("SEL_A1")
	if f, ok := alias.Field("INDEX"); !ok || f.Offset != 8 {
		t.Errorf("expected SEL_A1 to take the fields of SEL")
	}
}

func TestDefaults(t *testing.T) {
	const (
		device     = `<access>read-write</access>`
		peripheral = `<baseAddress>0xE000E010</baseAddress>`
		register   = `<dim>4</dim>`
	)

	tests := []struct {
		name      string
		edits     []string
		size      uint32
		dataReset uint32
	}{
		{
			name: "none",
			size: 32,
		},
		{
			name:      "device",
			edits:     []string{device, device + `<size>16</size><resetValue>0x5</resetValue>`},
			size:      16,
			dataReset: 0x5,
		},
		{
			name: "peripheral",
			edits: []string{
				device, device + `<resetValue>0x5</resetValue>`,
				peripheral, peripheral + `<size>8</size><resetValue>0x7</resetValue>`,
			},
			size:      8,
			dataReset: 0x7,
		},
		{
			name: "register",
			edits: []string{
				device, device + `<resetValue>0x5</resetValue>`,
				register, register + `<size>16</size><resetValue>0x0</resetValue>`,
			},
			size: 16,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			src := strings.NewReplacer(test.edits...).Replace(sample)
			maps, err := Load([]byte(src))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			data, _ := maps[0].Register("DATA")
			if data.Size != test.size || data.ResetValue != test.dataReset {
				t.Errorf("expected DATA size %d reset %#x, got %d %#x", test.size, test.dataReset, data.Size, data.ResetValue)
			}
			// An explicit reset value is never overridden
			ctrl, _ := maps[0].Register("CTRL_STAT")
			if ctrl.ResetValue != 0x4 {
				t.Errorf("expected CTRL_STAT reset 0x4, got %#x", ctrl.ResetValue)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		old  string
		new  string
		err  error
	}{
		{
			name: "binding",
			old:  `<baseAddress>0xE000E010</baseAddress>`,
			new:  `<baseAddress>0xE000E020</baseAddress>`,
			err:  ErrBinding,
		},
		{
			name: "enumeration",
			old:  `<enumeratedValues derivedFrom="mode"/>`,
			new:  `<enumeratedValues derivedFrom="missing"/>`,
			err:  ErrUnknownEnumeration,
		},
		{
			name: "access",
			old:  `<access>write-only</access>`,
			new:  `<access>sometimes</access>`,
			err:  regmap.ErrUnknownAccess,
		},
		{
			name: "symbol",
			old:  `symbol="SCS_BASE"`,
			new:  `symbol="NOWHERE"`,
			err:  mmio.ErrUnknownBase,
		},
		{
			name: "composition",
			old:  `<composedFrom field="LANES" index="1"/>`,
			new:  `<composedFrom field="WIDTH" index="1"/>`,
			err:  regmap.ErrComposition,
		},
		{
			name: "peripherals",
			old:  sample[strings.Index(sample, "<peripheral>"):strings.Index(sample, "</peripherals>")],
			new:  "",
			err:  ErrNoPeripherals,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			src := strings.Replace(sample, test.old, test.new, 1)
			if _, err := Load([]byte(src)); !errors.Is(err, test.err) {
				t.Errorf("expected %v, got %v", test.err, err)
			}
		})
	}

	if _, err := Load([]byte("<device>")); err == nil {
		t.Errorf("expected a decode error")
	}
}

func TestInteger(t *testing.T) {
	tests := []struct {
		in      string
		want    Integer
		wantErr bool
	}{
		{in: "12", want: 12},
		{in: " 0x1F ", want: 0x1F},
		{in: "0XFFFFFFFF", want: 0xFFFFFFFF},
		{in: "0xZZ", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, test := range tests {
		got, err := parseInteger(test.in)
		if test.wantErr {
			if err == nil {
				t.Errorf("%q: expected an error", test.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("%q: expected %#x, got %#x", test.in, test.want, got)
		}
	}
}
