package generator

import (
	"bytes"
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"omibyte.io/coresight/regmap"
)

func sampleMap(t *testing.T) *regmap.Peripheral {
	t.Helper()
	p := &regmap.Peripheral{
		Name:    "UART",
		Binding: regmap.Binding{Symbol: "SCS_BASE", Offset: 0x100},
		Span:    0x14,
		Registers: []regmap.Register{
			{Name: "CTRL", Description: "Control Register", Offset: 0x0, Fields: []regmap.Field{
				{Name: "EN", Offset: 0, Width: 1},
				{Name: "MODE", Offset: 1, Width: 2, Enum: &regmap.Enumeration{Name: "Mode", Values: []regmap.EnumeratedValue{
					{Name: "off_mode", Value: 0},
					{Name: "on", Value: 1, Description: "Transmitter on"},
				}}},
				{Name: "MODE1", Base: "MODE", Index: 1, Width: 1},
				{Name: "DIV", Offset: 4, Width: 4, Range: &regmap.Range{Name: "Divider", Max: 15}},
			}},
			{Name: "STAT", Description: "Status Register", Offset: 0x4, Access: regmap.ReadOnly, ResetValue: 0x4, Fields: []regmap.Field{
				{Name: "READY", Offset: 2, Width: 1},
			}},
			{Name: "DATA", Description: "Data Register", Offset: 0x8, Access: regmap.WriteOnly, Count: 2, Increment: 4, Fields: []regmap.Field{
				{Name: "VALUE", Offset: 0, Width: 8},
			}},
			{Name: "DATA_A1", Description: "Data Register Alias", Offset: 0x10, Access: regmap.WriteOnly, DerivedFrom: "DATA"},
		},
	}
	if err := p.Resolve(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

// declared returns the top-level names of src. Methods are named
// Type.Method.
func declared(t *testing.T, src []byte) map[string]bool {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), FileName, src, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := map[string]bool{}
	for _, decl := range file.Decls {
		switch decl := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range decl.Specs {
				switch spec := spec.(type) {
				case *ast.ValueSpec:
					for _, name := range spec.Names {
						names[name.Name] = true
					}
				case *ast.TypeSpec:
					names[spec.Name.Name] = true
				}
			}
		case *ast.FuncDecl:
			name := decl.Name.Name
			if decl.Recv != nil {
				recv := decl.Recv.List[0].Type
				if star, ok := recv.(*ast.StarExpr); ok {
					recv = star.X
				}
				name = recv.(*ast.Ident).Name + "." + name
			}
			names[name] = true
		}
	}
	return names
}

func TestGenerate(t *testing.T) {
	src, err := Generate(sampleMap(t), "uart")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(src, []byte(Header+"\n")) {
		t.Errorf("missing header")
	}
	if !bytes.Contains(src, []byte("Base mmio.Address = mmio.SCSBase + 0x100")) {
		t.Errorf("unexpected base address")
	}
	if !bytes.Contains(src, []byte("CTRL_MODE1_Pos = CTRL_MODE_Pos + 1")) {
		t.Errorf("composed field is not derived from its base")
	}

	names := declared(t, src)
	tests := []struct {
		name string
		want bool
	}{
		{"Base", true},
		{"Span", true},
		{"CTRL_Offset", true},
		{"CTRL_EN_Pos", true},
		{"CTRL_EN_Msk", true},
		{"CTRL_MODE1_Msk", true},
		{"STAT_Reset", true},
		{"CTRL_Reset", false},
		{"DATA_Count", true},
		{"DATA_A1_Offset", true},
		{"DATA_A1_VALUE_Pos", false},
		{"Mode", true},
		{"ModeOffMode", true},
		{"ModeOn", true},
		{"Divider", true},
		{"DividerMax", true},
		{"Divider.Valid", true},
		{"CTRL.GetMODE", true},
		{"CTRL.SetDIV", true},
		{"STAT.GetREADY", true},
		{"STAT.SetREADY", false},
		{"DATA.SetVALUE", true},
		{"DATA.GetVALUE", false},
		{"Overlay", true},
		{"Registers", true},
		{"New", true},
		{"Claim", true},
	}
	for _, test := range tests {
		if names[test.name] != test.want {
			t.Errorf("%s: expected declared %v", test.name, test.want)
		}
	}
}

func TestGenerateBase(t *testing.T) {
	p := sampleMap(t)
	p.Binding = regmap.Binding{Offset: 0x40000000}
	src, err := Generate(p, "uart")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(src, []byte("Base mmio.Address = 0x40000000")) {
		t.Errorf("unexpected absolute base address")
	}

	p.Binding = regmap.Binding{Symbol: "FLASH_BASE"}
	if _, err = Generate(p, "uart"); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"priv_rw_unpriv_ro", "PrivRWUnprivRO"},
		{"16_bytes", "16Bytes"},
		{"ahb5", "AHB5"},
		{"no access", "NoAccess"},
		{"", ""},
	}
	for _, test := range tests {
		if got := Identifier(test.in); got != test.want {
			t.Errorf("%q: expected %q, got %q", test.in, test.want, got)
		}
	}

	if got := EnumConstName("RegionSize", "16_bytes"); got != "RegionSize16Bytes" {
		t.Errorf("unexpected enum constant %s", got)
	}
	if got := RangeMaxName("Region"); got != "RegionMax" {
		t.Errorf("unexpected range maximum %s", got)
	}
}

const sampleConfig = `
module: example.com/board
output: out
packages:
  UART: drivers/uart
  CLOCK: drivers/clock
`

func TestConfig(t *testing.T) {
	config, err := LoadConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if names := config.Peripherals(); len(names) != 2 || names[0] != "CLOCK" || names[1] != "UART" {
		t.Errorf("unexpected peripherals %v", names)
	}
	if got := config.ImportPath("UART"); got != "example.com/board/drivers/uart" {
		t.Errorf("unexpected import path %s", got)
	}
	if got := config.PackageName("UART"); got != "uart" {
		t.Errorf("unexpected package name %s", got)
	}
	if got := config.Dir("UART"); got != filepath.Join("out", "drivers", "uart") {
		t.Errorf("unexpected directory %s", got)
	}

	tests := []struct {
		name string
		src  string
		err  error
	}{
		{name: "no module", src: "packages:\n  UART: uart\n", err: ErrNoModule},
		{name: "bad module", src: "module: \"bad path\"\n"},
		{name: "bad package", src: "module: example.com/board\npackages:\n  UART: \"drivers/u art\"\n"},
		{name: "bad yaml", src: "module: [\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadConfig([]byte(test.src))
			if err == nil {
				t.Fatalf("expected an error")
			}
			if test.err != nil && !errors.Is(err, test.err) {
				t.Errorf("expected %v, got %v", test.err, err)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	config, err := LoadConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uart := sampleMap(t)
	other := &regmap.Peripheral{Name: "TIMER"}
	periphs := []*regmap.Peripheral{uart, other}

	selected, err := config.Select(periphs, nil)
	if err != nil || len(selected) != 1 || selected[0] != uart {
		t.Errorf("expected the configured peripherals, got %v (%v)", selected, err)
	}

	selected, err = config.Select(periphs, []string{"timer", "Uart"})
	if err != nil || len(selected) != 2 || selected[0] != other || selected[1] != uart {
		t.Errorf("expected the named peripherals, got %v (%v)", selected, err)
	}

	if _, err = config.Select(periphs, []string{"DMA"}); !errors.Is(err, ErrUnknownPeripheral) {
		t.Errorf("expected ErrUnknownPeripheral, got %v", err)
	}
}

func TestWrite(t *testing.T) {
	config, err := LoadConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	config.Output = t.TempDir()

	written, err := config.Write([]*regmap.Peripheral{sampleMap(t)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(config.Output, "drivers", "uart", FileName)
	if len(written) != 1 || written[0] != want {
		t.Fatalf("expected %s, got %v", want, written)
	}

	buf, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(buf), "package uart\n") {
		t.Errorf("unexpected package clause")
	}

	_, err = config.Write([]*regmap.Peripheral{{Name: "TIMER"}})
	if !errors.Is(err, ErrNoPackage) {
		t.Errorf("expected ErrNoPackage, got %v", err)
	}
}
