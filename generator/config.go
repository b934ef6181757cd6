package generator

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"omibyte.io/coresight/regmap"
)

// FileName is the name of the file written into every generated package.
const FileName = "registers_gen.go"

// Config selects where generated packages are written.
type Config struct {
	// Module is the module path the packages belong to.
	Module string `yaml:"module"`

	// Output is the directory corresponding to the module root.
	Output string `yaml:"output"`

	// Packages maps peripheral names to package paths relative to Module.
	Packages map[string]string `yaml:"packages"`
}

// LoadConfig decodes a YAML generator configuration.
func LoadConfig(buf []byte) (*Config, error) {
	config := &Config{}
	if err := yaml.Unmarshal(buf, config); err != nil {
		return nil, fmt.Errorf("yaml decode error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that the module path and every package path are valid
// import paths.
func (c *Config) Validate() error {
	if c.Module == "" {
		return ErrNoModule
	}
	if err := module.CheckImportPath(c.Module); err != nil {
		return err
	}

	for _, name := range c.Peripherals() {
		if err := module.CheckImportPath(c.ImportPath(name)); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// Peripherals returns the configured peripheral names in sorted order.
func (c *Config) Peripherals() []string {
	names := maps.Keys(c.Packages)
	slices.Sort(names)
	return names
}

// ImportPath returns the full import path of the package of peripheral name.
func (c *Config) ImportPath(name string) string {
	return path.Join(c.Module, c.Packages[name])
}

// PackageName returns the Go package name of peripheral name.
func (c *Config) PackageName(name string) string {
	return path.Base(c.Packages[name])
}

// Dir returns the output directory of peripheral name.
func (c *Config) Dir(name string) string {
	return filepath.Join(c.Output, filepath.FromSlash(c.Packages[name]))
}

// Write generates the package of every register map in maps and writes it to
// its configured directory. It returns the files written.
func (c *Config) Write(periphs []*regmap.Peripheral) ([]string, error) {
	var written []string
	for _, p := range periphs {
		if _, ok := c.Packages[p.Name]; !ok {
			return written, fmt.Errorf("%w: %s", ErrNoPackage, p.Name)
		}

		src, err := Generate(p, c.PackageName(p.Name))
		if err != nil {
			return written, err
		}

		// Create the output directory
		dir := c.Dir(p.Name)
		if err = os.MkdirAll(dir, 0750); err != nil {
			return written, err
		}

		fname := filepath.Join(dir, FileName)
		if err = os.WriteFile(fname, src, 0640); err != nil {
			return written, err
		}
		written = append(written, fname)
	}
	return written, nil
}

// Select returns the register maps among periphs named in names. An empty
// names selects every map that has a configured package.
func (c *Config) Select(periphs []*regmap.Peripheral, names []string) ([]*regmap.Peripheral, error) {
	var selected []*regmap.Peripheral
	if len(names) == 0 {
		for _, p := range periphs {
			if _, ok := c.Packages[p.Name]; ok {
				selected = append(selected, p)
			}
		}
		return selected, nil
	}

	for _, name := range names {
		i := slices.IndexFunc(periphs, func(p *regmap.Peripheral) bool {
			return strings.EqualFold(p.Name, name)
		})
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPeripheral, name)
		}
		selected = append(selected, periphs[i])
	}
	return selected, nil
}
