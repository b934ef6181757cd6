// Package regtest checks generated register packages against the register
// maps they were generated from.
package regtest

import (
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"go/types"
	"reflect"
	"strings"
	"testing"

	"omibyte.io/coresight/defs"
	"omibyte.io/coresight/generator"
	"omibyte.io/coresight/mmio"
	"omibyte.io/coresight/regmap"
)

// Load returns the embedded register map of the named peripheral.
func Load(t *testing.T, name string) *regmap.Peripheral {
	t.Helper()
	p, err := defs.Load(name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

type stubImporter struct{}

// Import returns an empty package. References into it fail to type check,
// which leaves the constants that do not depend on it intact.
func (stubImporter) Import(path string) (*types.Package, error) {
	pkg := types.NewPackage(path, path[strings.LastIndex(path, "/")+1:])
	pkg.MarkComplete()
	return pkg, nil
}

// Source holds the parsed generated file of a package.
type Source struct {
	File      *ast.File
	Constants map[string]constant.Value
}

// Parse parses and type checks the generated file in the current directory.
func Parse(t *testing.T) *Source {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, generator.FileName, nil, parser.ParseComments)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info := &types.Info{Defs: map[*ast.Ident]types.Object{}}
	config := types.Config{
		Importer: stubImporter{},
		Error:    func(error) {},
	}
	config.Check(file.Name.Name, fset, []*ast.File{file}, info)

	src := &Source{File: file, Constants: map[string]constant.Value{}}
	for ident, obj := range info.Defs {
		if c, ok := obj.(*types.Const); ok && c.Val().Kind() != constant.Unknown {
			src.Constants[ident.Name] = c.Val()
		}
	}
	return src
}

func (s *Source) expect(t *testing.T, name string, want uint64) {
	t.Helper()
	v, ok := s.Constants[name]
	if !ok {
		t.Errorf("missing constant %s", name)
		return
	}
	got, exact := constant.Uint64Val(v)
	if !exact || got != want {
		t.Errorf("%s: expected %#x, got %s", name, want, v)
	}
}

// CheckConstants compares the offset, field, enumeration and range constants
// of the generated file with p.
func (s *Source) CheckConstants(t *testing.T, p *regmap.Peripheral) {
	t.Helper()
	s.expect(t, "Span", uint64(p.Span))

	for i := range p.Registers {
		r := &p.Registers[i]
		s.expect(t, r.Name+"_Offset", uint64(r.Offset))
		if r.Banked {
			s.expect(t, r.Name+"_Bank", uint64(r.Bank))
		}
		if r.DerivedFrom != "" {
			continue
		}

		for j := range r.Fields {
			f := &r.Fields[j]
			s.expect(t, generator.PosName(r.Name, f.Name), uint64(f.Offset))
			s.expect(t, generator.MskName(r.Name, f.Name), uint64(f.Mask()))
			if f.Enum != nil {
				for _, ev := range f.Enum.Values {
					s.expect(t, generator.EnumConstName(f.Enum.Name, ev.Name), uint64(ev.Value))
				}
			}
			if f.Range != nil {
				s.expect(t, generator.RangeMaxName(f.Range.Name), uint64(f.Range.Max))
			}
		}
	}
}

// CheckComposed verifies that the offset constant of every composed field is
// written as the offset constant of its base plus the index.
func (s *Source) CheckComposed(t *testing.T, p *regmap.Peripheral) {
	t.Helper()

	values := map[string]ast.Expr{}
	ast.Inspect(s.File, func(n ast.Node) bool {
		if spec, ok := n.(*ast.ValueSpec); ok {
			for i, name := range spec.Names {
				if i < len(spec.Values) {
					values[name.Name] = spec.Values[i]
				}
			}
		}
		return true
	})

	for i := range p.Registers {
		r := &p.Registers[i]
		if r.DerivedFrom != "" {
			continue
		}
		for j := range r.Fields {
			f := &r.Fields[j]
			if !f.Composed() {
				continue
			}
			name := generator.PosName(r.Name, f.Name)
			expr, ok := values[name].(*ast.BinaryExpr)
			if !ok || expr.Op != token.ADD {
				t.Errorf("%s is not a sum", name)
				continue
			}
			base, ok := expr.X.(*ast.Ident)
			if !ok || base.Name != generator.PosName(r.Name, f.Base) {
				t.Errorf("%s is not based on %s", name, generator.PosName(r.Name, f.Base))
			}
		}
	}
}

// CheckOverlay compares the field offsets and size of an Overlay value with
// the layout of p.
func CheckOverlay(t *testing.T, p *regmap.Peripheral, overlay any) {
	t.Helper()

	typ := reflect.TypeOf(overlay)
	if typ.Size() != uintptr(p.Span) {
		t.Errorf("%s: overlay is %#x bytes, expected %#x", p.Name, typ.Size(), p.Span)
	}

	slots := p.Layout()
	if typ.NumField() != len(slots) {
		t.Fatalf("%s: overlay has %d fields, expected %d", p.Name, typ.NumField(), len(slots))
	}

	for i, slot := range slots {
		field := typ.Field(i)
		if field.Offset != uintptr(slot.Offset) {
			t.Errorf("%s.%s: offset %#x, expected %#x", p.Name, field.Name, field.Offset, slot.Offset)
		}
		if field.Type.Size() != uintptr(slot.Bytes()) {
			t.Errorf("%s.%s: %#x bytes, expected %#x", p.Name, field.Name, field.Type.Size(), slot.Bytes())
		}
		switch {
		case slot.Reserved() && field.Name != "_":
			t.Errorf("%s: reserved slot at %#x is named %s", p.Name, slot.Offset, field.Name)
		case !slot.Reserved() && field.Name != slot.Register.Name:
			t.Errorf("%s: expected %s at %#x, got %s", p.Name, slot.Register.Name, slot.Offset, field.Name)
		}
	}
}

type addressed interface {
	Address() mmio.Address
}

// CheckHandles compares the handles of a Registers value with the registers of
// p bound at base.
func CheckHandles(t *testing.T, p *regmap.Peripheral, registers any, base mmio.Address) {
	t.Helper()

	v := reflect.Indirect(reflect.ValueOf(registers))
	if v.NumField() != len(p.Registers) {
		t.Fatalf("%s: %d handles, expected %d", p.Name, v.NumField(), len(p.Registers))
	}

	for i := range p.Registers {
		r := &p.Registers[i]
		field := v.Field(i)
		if name := v.Type().Field(i).Name; name != r.Name {
			t.Errorf("%s: expected handle %s, got %s", p.Name, r.Name, name)
			continue
		}

		var handles []reflect.Value
		if field.Kind() == reflect.Array {
			if field.Len() != int(r.Elements()) {
				t.Errorf("%s.%s: %d elements, expected %d", p.Name, r.Name, field.Len(), r.Elements())
			}
			for j := 0; j < field.Len(); j++ {
				handles = append(handles, field.Index(j))
			}
		} else {
			handles = append(handles, field)
		}

		for j, h := range handles {
			want := base.Add(r.Offset + uint32(j)*r.Stride())
			if got := h.Interface().(addressed).Address(); got != want {
				t.Errorf("%s.%s[%d]: bound at %s, expected %s", p.Name, r.Name, j, got, want)
			}
			if kind := handleKind(h.Type()); kind != expectedKind(r.Access) {
				t.Errorf("%s.%s: %s handle for %s register", p.Name, r.Name, kind, r.Access)
			}
		}
	}
}

func handleKind(typ reflect.Type) string {
	name := typ.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		return name[:i]
	}
	return name
}

func expectedKind(access regmap.Access) string {
	switch access {
	case regmap.ReadOnly:
		return "RO"
	case regmap.WriteOnly, regmap.WriteOnce:
		return "WO"
	default:
		return "RW"
	}
}
