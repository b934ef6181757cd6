// Package dwt describes the Data Watchpoint and Trace unit of the Cortex-M7.
//
// The unit is only clocked while DEMCR.TRCENA is set, see scs.EnableTrace.
package dwt

//go:generate go run omibyte.io/coresight/cmd/regmap generate --output ../.. DWT

import (
	"errors"
	"fmt"

	"omibyte.io/coresight/mmio"
)

var (
	ErrComparator = errors.New("comparator not implemented")
	ErrMask       = errors.New("mask out of range")
	ErrNoCounter  = errors.New("cycle counter not implemented")
)

// MaxMaskBits is the largest number of ignored address bits of a comparator.
const MaxMaskBits = 15

// MaxComparators is the number of comparators described by the register map.
const MaxComparators = 4

// Comparator holds the handles of one comparator.
type Comparator struct {
	COMP     mmio.RW[COMP0]
	MASK     mmio.RW[MASK0]
	FUNCTION mmio.RW[FUNCTION0]
}

// Comparators returns the number of implemented comparators, at most
// MaxComparators.
func (r *Registers) Comparators() (int, error) {
	ctrl, err := r.CTRL.Load()
	if err != nil {
		return 0, err
	}
	n := int(ctrl.GetNUMCOMP())
	if n > MaxComparators {
		n = MaxComparators
	}
	return n, nil
}

// Comparator returns comparator n.
func (r *Registers) Comparator(n int) (Comparator, error) {
	count, err := r.Comparators()
	if err != nil {
		return Comparator{}, err
	}
	if n < 0 || n >= count {
		return Comparator{}, fmt.Errorf("%w: %d of %d", ErrComparator, n, count)
	}

	switch n {
	case 0:
		return Comparator{r.COMP0, r.MASK0, r.FUNCTION0}, nil
	case 1:
		return Comparator{r.COMP1, r.MASK1, r.FUNCTION1}, nil
	case 2:
		return Comparator{r.COMP2, r.MASK2, r.FUNCTION2}, nil
	case 3:
		return Comparator{r.COMP3, r.MASK3, r.FUNCTION3}, nil
	}
	return Comparator{}, fmt.Errorf("%w: %d", ErrComparator, n)
}

// Watch programs the comparator to match addr with the low maskBits bits
// ignored, raising fn on a match. The comparator is disabled while its
// address and mask change.
func (c Comparator) Watch(addr uint32, maskBits uint8, fn Function) error {
	if maskBits > MaxMaskBits {
		return fmt.Errorf("%w: %d", ErrMask, maskBits)
	}

	if err := c.FUNCTION.Store(0); err != nil {
		return err
	}

	var comp COMP0
	comp.SetCOMP(addr)
	if err := c.COMP.Store(comp); err != nil {
		return err
	}

	var mask MASK0
	mask.SetMASK(maskBits)
	if err := c.MASK.Store(mask); err != nil {
		return err
	}

	var function FUNCTION0
	function.SetFUNCTION(fn)
	return c.FUNCTION.Store(function)
}

// Matched reports whether the comparator matched since FUNCTION was last
// read. Reading clears the flag.
func (c Comparator) Matched() (bool, error) {
	v, err := c.FUNCTION.Load()
	return v.GetMATCHED(), err
}

// Disable stops the comparator.
func (c Comparator) Disable() error {
	return c.FUNCTION.Store(0)
}

// EnableCycleCounter clears CYCCNT and starts it.
func (r *Registers) EnableCycleCounter() error {
	ctrl, err := r.CTRL.Load()
	if err != nil {
		return err
	}
	if ctrl.GetNOCYCCNT() {
		return ErrNoCounter
	}
	if err = r.CYCCNT.Store(0); err != nil {
		return err
	}
	ctrl.SetCYCCNTENA(true)
	return r.CTRL.Store(ctrl)
}

// CycleCount returns the current value of the cycle counter.
func (r *Registers) CycleCount() (uint32, error) {
	v, err := r.CYCCNT.Load()
	return v.GetCYCCNT(), err
}

// Unlock enables write access through the software lock, if one is
// implemented.
func (r *Registers) Unlock() error {
	lsr, err := r.LSR.Load()
	if err != nil || !lsr.GetSLI() || !lsr.GetSLK() {
		return err
	}
	var lar LAR
	lar.SetKEY(LockKeyUnlock)
	return r.LAR.Store(lar)
}
