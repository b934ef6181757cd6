// Package dapsim simulates a Debug Access Port behind a debug link, for tests
// of code that drives a target through dp.Port.
package dapsim

import (
	"fmt"
	"sync"

	"omibyte.io/coresight/adi/dp"
	"omibyte.io/coresight/mmio"
)

// DPIDR of the simulated DP: an ARM DPv2 SW-DP.
const DPIDR = 0x6ba02477

// Stats counts the transactions seen by a Wire.
type Stats struct {
	Selects  int
	APReads  int
	APWrites int
	RDBUFF   int
}

// Wire is a dp.Wire backed by simulated DP registers and a set of Access
// Ports, each an mmio.Bus over its register space.
type Wire struct {
	mu sync.Mutex

	// Unpowered, when set, leaves the power-up acknowledges low.
	Unpowered bool

	aps    map[dp.APSel]mmio.Bus
	ctrl   uint32
	dlcr   uint32
	sel    uint32
	rdbuff uint32
	sticky bool
	stats  Stats
}

// New returns a Wire without Access Ports.
func New() *Wire {
	return &Wire{aps: map[dp.APSel]mmio.Bus{}}
}

// Attach connects ap as Access Port apsel.
func (w *Wire) Attach(apsel dp.APSel, ap mmio.Bus) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.aps[apsel] = ap
}

// Stats returns the transaction counts so far.
func (w *Wire) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

// Sticky reports whether the sticky error flag is set.
func (w *Wire) Sticky() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sticky
}

func (w *Wire) bank() uint32 {
	return w.sel & dp.SELECT_DPBANKSEL_Msk >> dp.SELECT_DPBANKSEL_Pos
}

func (w *Wire) ReadDP(addr uint8) (uint32, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch addr {
	case dp.DPIDR_Offset:
		return DPIDR, nil
	case dp.CTRL_STAT_Offset:
		switch w.bank() {
		case dp.CTRL_STAT_Bank:
			v := w.ctrl
			if !w.Unpowered {
				// Acknowledges follow their requests
				v |= v & dp.CTRL_STAT_CDBGPWRUPREQ_Msk << 1
				v |= v & dp.CTRL_STAT_CSYSPWRUPREQ_Msk << 1
			}
			if w.sticky {
				v |= dp.CTRL_STAT_STICKYERR_Msk
			}
			return v, nil
		case dp.DLCR_Bank:
			return w.dlcr, nil
		default:
			return 0, nil
		}
	case dp.RESEND_Offset, dp.RDBUFF_Offset:
		w.stats.RDBUFF++
		return w.rdbuff, nil
	}
	return 0, fmt.Errorf("%w: DP read at %#x", dp.ErrFault, addr)
}

func (w *Wire) WriteDP(addr uint8, value uint32) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch addr {
	case dp.ABORT_Offset:
		if value&dp.ABORT_STKERRCLR_Msk != 0 {
			w.sticky = false
		}
	case dp.CTRL_STAT_Offset:
		switch w.bank() {
		case dp.CTRL_STAT_Bank:
			w.ctrl = value & (dp.CTRL_STAT_CDBGPWRUPREQ_Msk | dp.CTRL_STAT_CSYSPWRUPREQ_Msk |
				dp.CTRL_STAT_CDBGRSTREQ_Msk | dp.CTRL_STAT_ORUNDETECT_Msk | dp.CTRL_STAT_TRNMODE_Msk)
		case dp.DLCR_Bank:
			w.dlcr = value & dp.DLCR_TURNROUND_Msk
		}
	case dp.SELECT_Offset:
		w.stats.Selects++
		w.sel = value
	case dp.TARGETSEL_Offset:
	default:
		return fmt.Errorf("%w: DP write at %#x", dp.ErrFault, addr)
	}
	return nil
}

// ap returns the selected Access Port and the address of addr in its
// register space.
func (w *Wire) ap(addr uint8) (mmio.Bus, mmio.Address, error) {
	if w.sticky {
		return nil, 0, fmt.Errorf("%w: sticky error", dp.ErrFault)
	}
	apsel := dp.APSel(w.sel & dp.SELECT_APSEL_Msk >> dp.SELECT_APSEL_Pos)
	bus, ok := w.aps[apsel]
	if !ok {
		w.sticky = true
		return nil, 0, fmt.Errorf("%w: no AP %d", dp.ErrFault, apsel)
	}
	return bus, mmio.Address(w.sel&dp.SELECT_APBANKSEL_Msk | uint32(addr)), nil
}

func (w *Wire) ReadAP(addr uint8) (uint32, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stats.APReads++
	bus, reg, err := w.ap(addr)
	if err != nil {
		return 0, err
	}
	v, err := bus.Read32(reg)
	if err != nil {
		w.sticky = true
		return 0, fmt.Errorf("%w: %v", dp.ErrFault, err)
	}
	prev := w.rdbuff
	w.rdbuff = v
	return prev, nil
}

func (w *Wire) WriteAP(addr uint8, value uint32) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stats.APWrites++
	bus, reg, err := w.ap(addr)
	if err != nil {
		return err
	}
	if err = bus.Write32(reg, value); err != nil {
		w.sticky = true
		return fmt.Errorf("%w: %v", dp.ErrFault, err)
	}
	return nil
}
