// Package mmio provides typed access to memory-mapped registers through a Bus.
//
// Register handles are typed by access mode. An RO handle can only be loaded, a
// WO handle can only be stored and an RW handle supports both, so an illegal
// access to a read-only or write-only register does not compile.
package mmio

import "fmt"

// Address is a 32-bit address in the address space of a Bus.
type Address uint32

// Add returns the address offset bytes after a.
func (a Address) Add(offset uint32) Address {
	return a + Address(offset)
}

// Aligned reports whether a is aligned to a 32-bit word.
func (a Address) Aligned() bool {
	return a&0x3 == 0
}

func (a Address) String() string {
	return fmt.Sprintf("0x%08x", uint32(a))
}

// Well-known base addresses that register maps are bound to.
const (
	// PPBBase is the start of the ARMv7-M Private Peripheral Bus.
	PPBBase Address = 0xE0000000

	// SCSBase is the start of the System Control Space.
	SCSBase Address = PPBBase + 0xE000

	// DPBase is the origin of the Debug Port register space.
	DPBase Address = 0x0

	// APBase is the origin of an Access Port register space.
	APBase Address = 0x0
)

var bases = map[string]Address{
	"PPB_BASE": PPBBase,
	"SCS_BASE": SCSBase,
	"DP_BASE":  DPBase,
	"AP_BASE":  APBase,
}

// LookupBase resolves a base address symbol such as "SCS_BASE".
func LookupBase(symbol string) (Address, error) {
	if addr, ok := bases[symbol]; ok {
		return addr, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBase, symbol)
}
