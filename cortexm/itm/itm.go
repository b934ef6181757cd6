// Package itm describes the Instrumentation Trace Macrocell of the Cortex-M7.
//
// Software writes to one of 256 stimulus ports and the ITM emits the data as
// instrumentation packets on the trace bus.
package itm

//go:generate go run omibyte.io/coresight/cmd/regmap generate --output ../.. ITM

import (
	"errors"
	"fmt"

	"omibyte.io/coresight/mmio"
)

var (
	ErrPortDisabled = errors.New("stimulus port disabled")
	ErrFIFOFull     = errors.New("stimulus port FIFO stayed full")
	ErrTraceBusID   = errors.New("trace bus ID out of range")
)

// MaxPolls bounds the number of FIFOREADY polls of a single write.
const MaxPolls = 1000

// Config is the trace configuration written to TCR by Enable.
type Config struct {
	TraceBusID TraceBusID
	Timestamps bool
	Prescaler  Prescaler
	Global     GlobalTimestamp
	// SWO selects the asynchronous SWO clock for the timestamp counter.
	SWO bool
}

// Enable turns the ITM on with c, including synchronization packets.
func (r *Registers) Enable(c Config) error {
	if !c.TraceBusID.Valid() {
		return fmt.Errorf("%w: %d", ErrTraceBusID, c.TraceBusID)
	}

	var tcr TCR
	tcr.SetITMENA(true)
	tcr.SetSYNCENA(true)
	tcr.SetTSENA(c.Timestamps)
	tcr.SetTSPRESCALE(c.Prescaler)
	tcr.SetGTSFREQ(c.Global)
	tcr.SetSWOENA(c.SWO)
	tcr.SetTRACEBUSID(c.TraceBusID)
	return r.TCR.Store(tcr)
}

// Disable turns the ITM off.
func (r *Registers) Disable() error {
	return r.TCR.Modify(func(v *TCR) {
		v.SetITMENA(false)
	})
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

// Port is a stimulus port.
type Port struct {
	n    uint8
	stim mmio.RW[STIM]
	ter  mmio.RW[TER]
	tcr  mmio.RW[TCR]
}

// Port returns stimulus port n.
func (r *Registers) Port(n uint8) Port {
	return Port{
		n:    n,
		stim: r.STIM[n],
		ter:  r.TER[n>>5],
		tcr:  r.TCR,
	}
}

// Number returns the port number.
func (p Port) Number() uint8 {
	return p.n
}

func (p Port) bit() uint32 {
	return 1 << (p.n & 0x1F)
}

// Enable sets the trace enable bit of the port.
func (p Port) Enable() error {
	return p.ter.Modify(func(v *TER) {
		v.SetSTIMENA(v.GetSTIMENA() | p.bit())
	})
}

// Enabled reports whether writes to the port are traced: the ITM and the
// port's trace enable bit must both be set.
func (p Port) Enabled() (bool, error) {
	tcr, err := p.tcr.Load()
	if err != nil || !tcr.GetITMENA() {
		return false, err
	}
	ter, err := p.ter.Load()
	return ter.GetSTIMENA()&p.bit() != 0, err
}

// Write32 waits for room in the stimulus FIFO and writes v.
func (p Port) Write32(v uint32) error {
	enabled, err := p.Enabled()
	if err != nil {
		return err
	}
	if !enabled {
		return fmt.Errorf("%w: %d", ErrPortDisabled, p.n)
	}

	for i := 0; i < MaxPolls; i++ {
		stim, err := p.stim.Load()
		if err != nil {
			return err
		}
		if stim.GetFIFOREADY() {
			var w STIM
			w.SetSTIMULUS(v)
			return p.stim.Store(w)
		}
	}
	return fmt.Errorf("%w: %d", ErrFIFOFull, p.n)
}
