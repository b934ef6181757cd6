// Package regmap models peripheral register maps: ordered registers with
// byte offsets and access modes, bitfield descriptors, enumerated values,
// dense value ranges and base address bindings.
package regmap

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"omibyte.io/coresight/mmio"
)

// Binding anchors a register map at a fixed offset from a named base address.
// A binding without a symbol is absolute.
type Binding struct {
	Symbol string
	Offset uint32
}

// Address resolves the binding to an absolute address.
func (b Binding) Address() (mmio.Address, error) {
	if b.Symbol == "" {
		return mmio.Address(b.Offset), nil
	}
	base, err := mmio.LookupBase(b.Symbol)
	if err != nil {
		return 0, err
	}
	return base.Add(b.Offset), nil
}

func (b Binding) String() string {
	if b.Symbol == "" {
		return fmt.Sprintf("%#x", b.Offset)
	}
	return fmt.Sprintf("%s + %#x", b.Symbol, b.Offset)
}

// Peripheral is the register map of one peripheral.
type Peripheral struct {
	Name          string
	Description   string
	Binding       Binding
	Span          uint32
	DefaultAccess Access
	Registers     []Register
}

// Register returns the named register.
func (p *Peripheral) Register(name string) (*Register, bool) {
	for i := range p.Registers {
		if p.Registers[i].Name == name {
			return &p.Registers[i], true
		}
	}
	return nil, false
}

// Address returns the absolute base address of the peripheral.
func (p *Peripheral) Address() (mmio.Address, error) {
	return p.Binding.Address()
}

// Resolve fills in everything the description leaves implicit: inherited
// access modes, fields of derived registers and offsets of composed fields.
func (p *Peripheral) Resolve() error {
	if p.DefaultAccess == AccessInherit {
		p.DefaultAccess = ReadWrite
	}

	for i := range p.Registers {
		r := &p.Registers[i]
		r.Access = r.Access.Or(p.DefaultAccess)
		if r.Size == 0 {
			r.Size = 32
		}
	}

	// Derived registers take the fields of their source
	for i := range p.Registers {
		r := &p.Registers[i]
		if r.DerivedFrom == "" || len(r.Fields) > 0 {
			continue
		}
		src, err := p.derivedSource(r)
		if err != nil {
			return err
		}
		r.Fields = slices.Clone(src.Fields)
	}

	for i := range p.Registers {
		if err := resolveComposition(&p.Registers[i]); err != nil {
			return err
		}
	}
	return nil
}

func (p *Peripheral) derivedSource(r *Register) (*Register, error) {
	seen := map[string]bool{r.Name: true}
	src := r
	for src.DerivedFrom != "" {
		next, ok := p.Register(src.DerivedFrom)
		if !ok {
			return nil, fmt.Errorf("%s: %w: derived from unknown register %q", r.Name, ErrAlias, src.DerivedFrom)
		}
		if seen[next.Name] {
			return nil, fmt.Errorf("%s: %w: derivation cycle through %q", r.Name, ErrAlias, next.Name)
		}
		seen[next.Name] = true
		src = next
	}
	return src, nil
}

// resolveComposition sets the offset of composed fields to the offset of their
// base field plus their index. Bases are resolved before the fields composed
// from them, so compositions may chain.
func resolveComposition(r *Register) error {
	graph := simple.NewDirectedGraph()
	index := make(map[string]int64, len(r.Fields))
	for i := range r.Fields {
		index[r.Fields[i].Name] = int64(i)
		graph.AddNode(simple.Node(i))
	}

	composed := false
	for i := range r.Fields {
		f := &r.Fields[i]
		if !f.Composed() {
			continue
		}
		composed = true
		base, ok := index[f.Base]
		if !ok || base == int64(i) {
			return fmt.Errorf("%s.%s: %w: unknown base field %q", r.Name, f.Name, ErrComposition, f.Base)
		}
		graph.SetEdge(graph.NewEdge(simple.Node(base), simple.Node(i)))
	}
	if !composed {
		return nil
	}

	sorted, err := topo.Sort(graph)
	if err != nil {
		return fmt.Errorf("%s: %w: %v", r.Name, ErrComposition, err)
	}

	for _, node := range sorted {
		f := &r.Fields[node.ID()]
		if f.Composed() {
			f.Offset = r.Fields[index[f.Base]].Offset + f.Index
		}
	}
	return nil
}

// Ranges returns the distinct value ranges used by the map's fields.
func (p *Peripheral) Ranges() []Range {
	var ranges []Range
	for i := range p.Registers {
		for j := range p.Registers[i].Fields {
			rng := p.Registers[i].Fields[j].Range
			if rng == nil {
				continue
			}
			if slices.IndexFunc(ranges, func(r Range) bool { return r.Name == rng.Name }) < 0 {
				ranges = append(ranges, *rng)
			}
		}
	}
	return ranges
}

// Decode decodes word as the value of the named register.
func (p *Peripheral) Decode(register string, word uint32) ([]FieldValue, error) {
	r, ok := p.Register(register)
	if !ok {
		return nil, fmt.Errorf("%s: %w: %q", p.Name, ErrUnknownRegister, register)
	}
	return r.Decode(word), nil
}
