package svd

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"omibyte.io/coresight/regmap"
)

var (
	ErrBinding            = errors.New("base address does not match binding")
	ErrUnknownEnumeration = errors.New("unknown enumeration")
	ErrNoPeripherals      = errors.New("device describes no peripherals")
)

// properties are the register defaults a device or peripheral passes down.
type properties struct {
	access     regmap.Access
	size       uint32
	resetValue uint32
}

// inherit returns p overridden by the elements that are set.
func (p properties) inherit(access regmap.Access, size, resetValue *Integer) properties {
	p.access = access.Or(p.access)
	if size != nil {
		p.size = uint32(*size)
	}
	if resetValue != nil {
		p.resetValue = uint32(*resetValue)
	}
	return p
}

// Decode parses an SVD document.
func Decode(buf []byte) (*DeviceElement, error) {
	device := &DeviceElement{}
	if err := xml.Unmarshal(buf, device); err != nil {
		return nil, fmt.Errorf("xml decode error: %w", err)
	}
	return device, nil
}

// Load decodes an SVD document and returns its resolved register maps.
func Load(buf []byte) ([]*regmap.Peripheral, error) {
	device, err := Decode(buf)
	if err != nil {
		return nil, err
	}
	return device.RegisterMaps()
}

// RegisterMaps converts every peripheral of the device into a resolved
// register map. Peripherals derived from another peripheral share its registers.
func (d *DeviceElement) RegisterMaps() ([]*regmap.Peripheral, error) {
	if len(d.Peripherals.Elements) == 0 {
		return nil, ErrNoPeripherals
	}

	access, err := regmap.ParseAccess(d.DefaultAccess)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Name, err)
	}
	defaults := properties{}.inherit(access, d.RegisterSize, d.ResetValue)

	var maps []*regmap.Peripheral
	for _, periph := range d.Peripherals.Elements {
		registers := periph.Registers
		if periph.DerivedFrom != "" {
			i, ok := d.Peripherals.Find(periph.DerivedFrom)
			if !ok {
				return nil, fmt.Errorf("%s: derived from unknown peripheral %q", periph.Name, periph.DerivedFrom)
			}
			registers = d.Peripherals.Elements[i].Registers
		}

		p, err := convertPeripheral(periph, registers, defaults)
		if err != nil {
			return nil, err
		}
		maps = append(maps, p)
	}
	return maps, nil
}

func convertPeripheral(periph PeripheralElement, registers RegistersElement, defaults properties) (*regmap.Peripheral, error) {
	access, err := regmap.ParseAccess(periph.Access)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", periph.Name, err)
	}
	defaults = defaults.inherit(access, periph.RegisterSize, periph.ResetValue)

	p := &regmap.Peripheral{
		Name:          periph.Name,
		Description:   cleanText(periph.Description),
		Span:          uint32(periph.AddressBlock.Size),
		DefaultAccess: defaults.access,
	}

	if periph.Binding != nil {
		p.Binding = regmap.Binding{Symbol: periph.Binding.Symbol, Offset: uint32(periph.Binding.Offset)}
		addr, err := p.Binding.Address()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", periph.Name, err)
		}
		if uint32(addr) != uint32(periph.BaseAddress) {
			return nil, fmt.Errorf("%s: %w: %#x != %s (%s)", periph.Name, ErrBinding, uint32(periph.BaseAddress), addr, p.Binding)
		}
	} else {
		// Without a binding the base address is absolute
		p.Binding = regmap.Binding{Offset: uint32(periph.BaseAddress)}
	}

	// Enumerations declared in this peripheral, for derivedFrom lookups
	enums := map[string]*regmap.Enumeration{}

	for _, re := range registers.RegisterElements {
		r, err := convertRegister(re, defaults, enums)
		if err != nil {
			return nil, fmt.Errorf("%s.%w", periph.Name, err)
		}
		p.Registers = append(p.Registers, r)
	}

	if err = p.Resolve(); err != nil {
		return nil, err
	}
	return p, nil
}

func convertRegister(re RegisterElement, defaults properties, enums map[string]*regmap.Enumeration) (regmap.Register, error) {
	access, err := regmap.ParseAccess(re.Access)
	if err != nil {
		return regmap.Register{}, fmt.Errorf("%s: %w", re.Name, err)
	}

	// Access is left for Resolve to inherit from the peripheral
	own := defaults.inherit(regmap.AccessInherit, re.Size, re.ResetValue)

	r := regmap.Register{
		Name:        cleanIdentifier(re.Name),
		Description: cleanText(re.Description),
		Offset:      uint32(re.AddressOffset),
		Size:        own.size,
		Access:      access,
		ResetValue:  own.resetValue,
		Count:       uint32(re.Count),
		Increment:   uint32(re.Increment),
		DerivedFrom: re.DerivedFrom,
		Alternate:   re.Alternative,
	}
	if re.Bank != nil {
		r.Banked = true
		r.Bank = uint32(*re.Bank)
	}

	for _, fe := range re.Fields.Elements {
		f, err := convertField(fe, enums)
		if err != nil {
			return regmap.Register{}, fmt.Errorf("%s.%w", r.Name, err)
		}
		r.Fields = append(r.Fields, f)
	}
	return r, nil
}

func convertField(fe FieldElement, enums map[string]*regmap.Enumeration) (regmap.Field, error) {
	access, err := regmap.ParseAccess(fe.Access)
	if err != nil {
		return regmap.Field{}, fmt.Errorf("%s: %w", fe.Name, err)
	}

	f := regmap.Field{
		Name:        cleanIdentifier(fe.Name),
		Description: cleanText(fe.Description),
		Offset:      uint32(fe.BitOffset),
		Width:       uint32(fe.BitWidth),
		Access:      access,
	}

	if fe.ComposedFrom != nil {
		f.Base = fe.ComposedFrom.Field
		f.Index = uint32(fe.ComposedFrom.Index)
	}

	if fe.Range != nil {
		f.Range = &regmap.Range{Name: fe.Range.Name, Max: f.Pattern()}
	}

	if ev := fe.EnumeratedValues; ev != nil {
		if ev.DerivedFrom != "" {
			enum, ok := enums[ev.DerivedFrom]
			if !ok {
				return regmap.Field{}, fmt.Errorf("%s: %w: %q", fe.Name, ErrUnknownEnumeration, ev.DerivedFrom)
			}
			f.Enum = enum
		} else {
			enum := &regmap.Enumeration{Name: ev.Name}
			for _, value := range ev.Elements {
				enum.Values = append(enum.Values, regmap.EnumeratedValue{
					Name:        value.Name,
					Description: cleanText(value.Description),
					Value:       uint32(value.Value),
				})
			}
			if enum.Name != "" {
				enums[enum.Name] = enum
			}
			f.Enum = enum
		}
	}
	return f, nil
}

// cleanIdentifier turns SVD register names such as "CTRL/STAT" or "COMP[%s]"
// into identifiers.
func cleanIdentifier(ident string) string {
	ident = strings.NewReplacer("[%s]", "", "%s", "", "/", "_", " ", "_").Replace(strings.TrimSpace(ident))
	return strings.Trim(ident, "_")
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
