// Package defs embeds the register map descriptions of the Cortex-M7 and
// CoreSight peripherals. The generated packages under cortexm/ and adi/ are
// produced from these descriptions.
package defs

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"omibyte.io/coresight/generator"
	"omibyte.io/coresight/regmap"
	"omibyte.io/coresight/svd"
)

//go:embed index.yaml
var rawIndex []byte

//go:embed *.svd
var files embed.FS

var index Index

var ErrNotFound = errors.New("peripheral not found")

type Index struct {
	Module      string  `yaml:"module"`
	Peripherals []Entry `yaml:"peripherals"`
}

// Entry describes one embedded register map.
type Entry struct {
	Name    string `yaml:"name"`
	File    string `yaml:"file"`
	Package string `yaml:"package"`
}

// Entries returns the index of embedded descriptions.
func Entries() []Entry {
	return index.Peripherals
}

// Find returns the entry of the named peripheral. Names are matched without
// regard to case.
func Find(name string) (Entry, error) {
	for _, entry := range index.Peripherals {
		if strings.EqualFold(entry.Name, name) {
			return entry, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Source returns the raw description of the named peripheral.
func Source(name string) ([]byte, error) {
	entry, err := Find(name)
	if err != nil {
		return nil, err
	}
	return files.ReadFile(entry.File)
}

// Load returns the resolved register map of the named peripheral.
func Load(name string) (*regmap.Peripheral, error) {
	entry, err := Find(name)
	if err != nil {
		return nil, err
	}
	return entry.Load()
}

// Load decodes the description of the entry.
func (e Entry) Load() (*regmap.Peripheral, error) {
	buf, err := files.ReadFile(e.File)
	if err != nil {
		return nil, err
	}

	periphs, err := svd.Load(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.File, err)
	}
	for _, p := range periphs {
		if p.Name == e.Name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%s: %w: %s", e.File, ErrNotFound, e.Name)
}

// All returns every embedded register map in index order.
func All() ([]*regmap.Peripheral, error) {
	periphs := make([]*regmap.Peripheral, 0, len(index.Peripherals))
	for _, entry := range index.Peripherals {
		p, err := entry.Load()
		if err != nil {
			return nil, err
		}
		periphs = append(periphs, p)
	}
	return periphs, nil
}

// Config returns the generator configuration that reproduces the packages of
// this module when run from its root directory.
func Config() *generator.Config {
	config := &generator.Config{
		Module:   index.Module,
		Output:   ".",
		Packages: map[string]string{},
	}
	for _, entry := range index.Peripherals {
		config.Packages[entry.Name] = entry.Package
	}
	return config
}

func init() {
	if err := yaml.Unmarshal(rawIndex, &index); err != nil {
		panic(err)
	}
}
