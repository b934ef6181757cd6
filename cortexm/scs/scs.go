// Package scs describes the System Control Space of the Cortex-M7: SysTick,
// the NVIC, the system control block, debug and cache maintenance registers.
//
// The register definitions in registers_gen.go are generated from
// defs/scs.svd.
package scs

//go:generate go run omibyte.io/coresight/cmd/regmap generate --output ../.. SCS

import (
	"errors"
	"fmt"
)

var (
	ErrVectorTable   = errors.New("vector table is not aligned")
	ErrReload        = errors.New("reload value out of range")
	ErrPriorityGroup = errors.New("priority grouping out of range")
)

// MaxPriorityGroup is the largest PRIGROUP value.
const MaxPriorityGroup = AIRCR_PRIGROUP_Msk >> AIRCR_PRIGROUP_Pos

// SetVectorTable relocates the vector table to addr, which must be aligned to
// 128 bytes.
func (r *Registers) SetVectorTable(addr uint32) error {
	if addr&^VTOR_TBLOFF_Msk != 0 {
		return fmt.Errorf("%w: %#08x", ErrVectorTable, addr)
	}
	return r.VTOR.Store(VTOR(addr))
}

// SystemReset requests a system reset. The priority grouping is preserved.
func (r *Registers) SystemReset() error {
	return r.AIRCR.Modify(func(v *AIRCR) {
		v.SetVECTKEY(VectorKeyWrite)
		v.SetSYSRESETREQ(true)
	})
}

// SetPriorityGrouping sets the split between group priority and subpriority.
func (r *Registers) SetPriorityGrouping(group uint8) error {
	if group > MaxPriorityGroup {
		return fmt.Errorf("%w: %d", ErrPriorityGroup, group)
	}
	return r.AIRCR.Modify(func(v *AIRCR) {
		v.SetVECTKEY(VectorKeyWrite)
		v.SetPRIGROUP(group)
	})
}

// StartSysTick starts the SysTick counter with the given reload value on the
// processor clock, raising the SysTick exception on every wrap.
func (r *Registers) StartSysTick(reload uint32) error {
	if reload == 0 || reload > SYST_RVR_RELOAD_Msk {
		return fmt.Errorf("%w: %d", ErrReload, reload)
	}

	var rvr SYST_RVR
	rvr.SetRELOAD(reload)
	if err := r.SYST_RVR.Store(rvr); err != nil {
		return err
	}

	// Any write clears the current value
	if err := r.SYST_CVR.Store(0); err != nil {
		return err
	}

	var csr SYST_CSR
	csr.SetCLKSOURCE(true)
	csr.SetTICKINT(true)
	csr.SetENABLE(true)
	return r.SYST_CSR.Store(csr)
}

// EnableTrace sets DEMCR.TRCENA, which powers the DWT and ITM.
func (r *Registers) EnableTrace() error {
	return r.DEMCR.Modify(func(v *DEMCR) {
		v.SetTRCENA(true)
	})
}

// Halt requests the core to enter debug state.
func (r *Registers) Halt() error {
	var dhcsr DHCSR
	dhcsr.SetDBGKEY(DebugKeyWrite)
	dhcsr.SetC_DEBUGEN(true)
	dhcsr.SetC_HALT(true)
	return r.DHCSR.Store(dhcsr)
}

// Halted reports whether the core is in debug state.
func (r *Registers) Halted() (bool, error) {
	v, err := r.DHCSR.Load()
	return v.GetS_HALT(), err
}
