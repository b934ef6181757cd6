package mmio

import "errors"

var (
	ErrUnaligned    = errors.New("unaligned register access")
	ErrClaimed      = errors.New("address window already claimed")
	ErrOutOfWindow  = errors.New("address outside of leased window")
	ErrReleased     = errors.New("lease has been released")
	ErrEmptyWindow  = errors.New("address window has zero size")
	ErrUnknownBase  = errors.New("unknown base address symbol")
	ErrOutOfMapping = errors.New("address outside of mapped memory")
)
