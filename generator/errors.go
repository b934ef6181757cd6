package generator

import "errors"

var (
	ErrNoModule          = errors.New("no module path")
	ErrNoPackage         = errors.New("no package for peripheral")
	ErrUnknownPeripheral = errors.New("unknown peripheral")
	ErrUnknownSymbol     = errors.New("unknown base address symbol")
	ErrFormat            = errors.New("generated source does not format")
)
