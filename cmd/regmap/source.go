package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/exp/slices"

	"omibyte.io/coresight/defs"
	"omibyte.io/coresight/regmap"
	"omibyte.io/coresight/svd"
)

// svdFiles replace the embedded descriptions when set.
var svdFiles []string

func addSourceFlags(flags *pflag.FlagSet) {
	flags.StringSliceVar(&svdFiles, "svd", nil, "read register maps from SVD files instead of the embedded descriptions")
}

// loadMaps returns the register maps described by files, or the embedded maps
// if files is empty.
func loadMaps(files []string) ([]*regmap.Peripheral, error) {
	if len(files) == 0 {
		return defs.All()
	}

	var periphs []*regmap.Peripheral
	for _, fname := range files {
		buf, err := os.ReadFile(fname)
		if err != nil {
			return nil, err
		}
		maps, err := svd.Load(buf)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
		periphs = append(periphs, maps...)
	}
	return periphs, nil
}

// findMap returns the named register map from the selected source.
func findMap(name string) (*regmap.Peripheral, error) {
	if len(svdFiles) == 0 {
		return defs.Load(name)
	}

	periphs, err := loadMaps(svdFiles)
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(periphs, func(p *regmap.Peripheral) bool {
		return strings.EqualFold(p.Name, name)
	})
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", defs.ErrNotFound, name)
	}
	return periphs[i], nil
}
