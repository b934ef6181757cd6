// Package generator turns resolved register maps into Go packages.
//
// A generated package carries the base address of the peripheral, offset and
// mask constants for every field, named types for enumerated values and dense
// ranges, a value type per register with accessors for its fields, an Overlay
// struct matching the memory layout and a Registers struct of typed handles.
package generator

import (
	"fmt"
	"strings"

	"golang.org/x/tools/imports"

	"omibyte.io/coresight/regmap"
)

// MMIOPath is the import path of the package generated code binds to.
const MMIOPath = "omibyte.io/coresight/mmio"

// Header is the first line of every generated file.
const Header = "// Code generated by regmap generate. DO NOT EDIT."

// symbols maps binding symbols to the mmio constants they name.
var symbols = map[string]string{
	"PPB_BASE": "mmio.PPBBase",
	"SCS_BASE": "mmio.SCSBase",
	"DP_BASE":  "mmio.DPBase",
	"AP_BASE":  "mmio.APBase",
}

type gen struct {
	periph *regmap.Peripheral
	pkg    string
	w      strings.Builder

	// Enumerations and ranges already declared, by type name
	declared map[string]bool
}

// Generate returns the formatted source of package pkg for the register map p.
// The map must be resolved.
func Generate(p *regmap.Peripheral, pkg string) ([]byte, error) {
	g := &gen{
		periph:   p,
		pkg:      pkg,
		declared: map[string]bool{},
	}

	if err := g.generate(); err != nil {
		return nil, err
	}

	fname := pkg + "/" + FileName
	buf, err := imports.Process(fname, []byte(g.w.String()), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", fname, ErrFormat, err)
	}
	return buf, nil
}

func (g *gen) printf(format string, args ...any) {
	fmt.Fprintf(&g.w, format, args...)
}

func (g *gen) generate() error {
	g.printf("%s\n\n", Header)
	g.printf("package %s\n\n", g.pkg)
	g.printf("import %q\n\n", MMIOPath)

	if err := g.generateBase(); err != nil {
		return err
	}

	for i := range g.periph.Registers {
		g.generateConstants(&g.periph.Registers[i])
	}

	for i := range g.periph.Registers {
		g.generateTypes(&g.periph.Registers[i])
	}

	g.generateOverlay()
	g.generateRegisters()
	return nil
}

func (g *gen) generateBase() error {
	b := g.periph.Binding
	base := fmt.Sprintf("%#x", b.Offset)
	if b.Symbol != "" {
		symbol, ok := symbols[b.Symbol]
		if !ok {
			return fmt.Errorf("%s: %w: %q", g.periph.Name, ErrUnknownSymbol, b.Symbol)
		}
		base = fmt.Sprintf("%s + %#x", symbol, b.Offset)
	}

	g.printf("const (\n")
	g.printf("// Base is the address of the %s registers (%s).\n", g.periph.Name, b)
	g.printf("Base mmio.Address = %s\n\n", base)
	g.printf("// Span is the size of the %s register window in bytes.\n", g.periph.Name)
	g.printf("Span = %#x\n", g.periph.Span)
	g.printf(")\n\n")
	return nil
}

func (g *gen) generateConstants(r *regmap.Register) {
	g.printf("// %s: %s\n", r.Name, r.Description)
	g.printf("const (\n")
	g.printf("%s_Offset = 0x%03x\n", r.Name, r.Offset)
	if r.Count > 1 {
		g.printf("%s_Count = %d\n", r.Name, r.Count)
	}
	if r.Banked {
		g.printf("%s_Bank = %d\n", r.Name, r.Bank)
	}
	if r.ResetValue != 0 {
		g.printf("%s_Reset = 0x%08x\n", r.Name, r.ResetValue)
	}

	// Derived registers share the constants of their source
	if r.DerivedFrom == "" {
		for i := range r.Fields {
			f := &r.Fields[i]
			pos := PosName(r.Name, f.Name)
			if f.Composed() {
				g.printf("%s = %s + %d\n", pos, PosName(r.Name, f.Base), f.Index)
			} else {
				g.printf("%s = %d\n", pos, f.Offset)
			}
			g.printf("%s = %#x << %s\n", MskName(r.Name, f.Name), f.Pattern(), pos)
		}
	}
	g.printf(")\n\n")
}

func (g *gen) generateTypes(r *regmap.Register) {
	if r.DerivedFrom != "" {
		g.printf("// %s is the value of the %s.\n", r.Name, r.Description)
		g.printf("type %s = %s\n\n", r.Name, r.DerivedFrom)
		return
	}

	g.printf("// %s is the value of the %s.\n", r.Name, r.Description)
	g.printf("type %s uint32\n\n", r.Name)

	for i := range r.Fields {
		f := &r.Fields[i]
		if f.Enum != nil {
			g.generateEnumeration(r, f)
		}
		if f.Range != nil {
			g.generateRange(r, f)
		}
	}

	for i := range r.Fields {
		f := &r.Fields[i]
		access := r.FieldAccess(f)
		if access.Readable() {
			g.generateGetter(r, f)
		}
		if access.Writable() {
			g.generateSetter(r, f)
		}
	}
}

func (g *gen) generateEnumeration(r *regmap.Register, f *regmap.Field) {
	typename := enumTypeName(r, f)
	if g.declared[typename] {
		return
	}
	g.declared[typename] = true

	g.printf("// %s enumerates the values of %s.%s.\n", typename, r.Name, f.Name)
	g.printf("type %s uint32\n\n", typename)
	g.printf("const (\n")
	for _, value := range f.Enum.Values {
		name := EnumConstName(typename, value.Name)
		if value.Description != "" {
			g.printf("// %s %s\n", name, value.Description)
		}
		g.printf("%s %s = %#x\n", name, typename, value.Value)
	}
	g.printf(")\n\n")
}

func (g *gen) generateRange(r *regmap.Register, f *regmap.Field) {
	typename := f.Range.Name
	if g.declared[typename] {
		return
	}
	g.declared[typename] = true

	g.printf("// %s is a value of the dense range of %s.%s.\n", typename, r.Name, f.Name)
	g.printf("type %s %s\n\n", typename, rangeType(f.Width))
	g.printf("// %s is the largest %s.\n", RangeMaxName(typename), typename)
	g.printf("const %s %s = %#x\n\n", RangeMaxName(typename), typename, f.Range.Max)
	g.printf("// Valid reports whether v is within 0..%s.\n", RangeMaxName(typename))
	g.printf("func (v %s) Valid() bool {\n", typename)
	g.printf("return v <= %s\n", RangeMaxName(typename))
	g.printf("}\n\n")
}

func (g *gen) generateGetter(r *regmap.Register, f *regmap.Field) {
	pos, msk := PosName(r.Name, f.Name), MskName(r.Name, f.Name)
	typename := fieldType(r, f)

	g.printf("func (r %s) Get%s() %s {\n", r.Name, f.Name, typename)
	if typename == "bool" {
		g.printf("return r&%s != 0\n", msk)
	} else {
		g.printf("return %s((r & %s) >> %s)\n", typename, msk, pos)
	}
	g.printf("}\n\n")
}

func (g *gen) generateSetter(r *regmap.Register, f *regmap.Field) {
	pos, msk := PosName(r.Name, f.Name), MskName(r.Name, f.Name)
	typename := fieldType(r, f)

	g.printf("func (r *%s) Set%s(value %s) {\n", r.Name, f.Name, typename)
	if typename == "bool" {
		g.printf("if value {\n")
		g.printf("*r |= %s\n", msk)
		g.printf("} else {\n")
		g.printf("*r &^= %s\n", msk)
		g.printf("}\n")
	} else {
		g.printf("*r = *r&^%s | %s(value)<<%s&%s\n", msk, r.Name, pos, msk)
	}
	g.printf("}\n\n")
}

func (g *gen) generateOverlay() {
	g.printf("// Overlay is the memory layout of the %s registers.\n", g.periph.Name)
	g.printf("type Overlay struct {\n")
	for _, slot := range g.periph.Layout() {
		switch {
		case slot.Reserved() && slot.Words == 1:
			g.printf("_ uint32 // 0x%03x\n", slot.Offset)
		case slot.Reserved():
			g.printf("_ [%d]uint32 // 0x%03x\n", slot.Words, slot.Offset)
		case slot.Register.Count > 1:
			r := slot.Register
			g.printf("%s [%d]%s // 0x%03x %s\n", r.Name, r.Count, r.Name, r.Offset, r.Access.Short())
		default:
			r := slot.Register
			g.printf("%s %s // 0x%03x %s\n", r.Name, r.Name, r.Offset, r.Access.Short())
		}
	}
	g.printf("}\n\n")
}

func (g *gen) generateRegisters() {
	name := g.periph.Name

	g.printf("// Registers binds the %s registers to a bus.\n", name)
	g.printf("type Registers struct {\n")
	for i := range g.periph.Registers {
		r := &g.periph.Registers[i]
		if r.Count > 1 {
			g.printf("%s [%d]mmio.%s[%s]\n", r.Name, r.Count, handleType(r.Access), r.Name)
		} else {
			g.printf("%s mmio.%s[%s]\n", r.Name, handleType(r.Access), r.Name)
		}
	}
	g.printf("}\n\n")

	g.printf("// New binds the registers at Base on bus.\n")
	g.printf("func New(bus mmio.Bus) *Registers {\n")
	g.printf("r := &Registers{}\n")
	for i := range g.periph.Registers {
		r := &g.periph.Registers[i]
		handle := handleType(r.Access)
		if r.Count > 1 {
			g.printf("for i := range r.%s {\n", r.Name)
			g.printf("r.%s[i] = mmio.New%s[%s](bus, Base+%s_Offset+mmio.Address(i)*%d)\n", r.Name, handle, r.Name, r.Name, r.Stride())
			g.printf("}\n")
		} else {
			g.printf("r.%s = mmio.New%s[%s](bus, Base+%s_Offset)\n", r.Name, handle, r.Name, r.Name)
		}
	}
	g.printf("return r\n")
	g.printf("}\n\n")

	g.printf("// Claim leases the %s register window from arb and binds the registers to\n", name)
	g.printf("// the lease.\n")
	g.printf("func Claim(arb *mmio.Arbiter) (*Registers, *mmio.Lease, error) {\n")
	g.printf("lease, err := arb.Claim(%q, Base, Span)\n", name)
	g.printf("if err != nil {\n")
	g.printf("return nil, nil, err\n")
	g.printf("}\n")
	g.printf("return New(lease), lease, nil\n")
	g.printf("}\n")
}

func enumTypeName(r *regmap.Register, f *regmap.Field) string {
	if f.Enum.Name != "" {
		return f.Enum.Name
	}
	return Identifier(r.Name) + Identifier(f.Name)
}

// fieldType returns the Go type a field is read and written as.
func fieldType(r *regmap.Register, f *regmap.Field) string {
	switch {
	case f.Enum != nil:
		return enumTypeName(r, f)
	case f.Range != nil:
		return f.Range.Name
	default:
		return typeForBitWidth(f.Width)
	}
}

func typeForBitWidth(width uint32) string {
	if width > 16 {
		return "uint32"
	} else if width > 8 {
		return "uint16"
	} else if width > 1 {
		return "uint8"
	} else {
		return "bool"
	}
}

// rangeType returns the underlying type of a range, which is never bool.
func rangeType(width uint32) string {
	if width == 1 {
		return "uint8"
	}
	return typeForBitWidth(width)
}

func handleType(access regmap.Access) string {
	switch access {
	case regmap.ReadOnly:
		return "RO"
	case regmap.WriteOnly, regmap.WriteOnce:
		return "WO"
	default:
		return "RW"
	}
}
