// Package dp describes the ADIv5 Debug Port and drives it over a debug link.
//
// The register definitions in registers_gen.go are generated from
// defs/dp.svd. Addresses are offsets in the DP register space, so a Port is
// the Bus the generated registers are bound to:
//
//	port := dp.NewPort(wire)
//	regs := dp.New(port)
//	id, err := regs.DPIDR.Load()
//
// Registers in bank 1 and up of offset 0x4 are reached through Port.Bank.
package dp

//go:generate go run omibyte.io/coresight/cmd/regmap generate --output ../.. DP

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jpillora/backoff"

	"omibyte.io/coresight/mmio"
)

var (
	ErrFault       = errors.New("FAULT response")
	ErrStickyError = errors.New("sticky error set")
	ErrPowerUp     = errors.New("debug power-up not acknowledged")
	ErrAddress     = errors.New("address outside register space")
)

// MaxPolls bounds the number of status reads while waiting for an
// acknowledge.
const MaxPolls = 100

// Delays between status reads while waiting for an acknowledge.
const (
	MinPollDelay = 10 * time.Microsecond
	MaxPollDelay = time.Millisecond
)

// Wire performs raw transactions on a debug link such as SWD or JTAG-DP.
// addr selects one of the four registers of the DP, or of the AP bank
// currently selected in SELECT, and is a multiple of 4 below 0x10.
//
// AP reads are posted: ReadAP returns the result of the previous AP read and
// the result of this one is read from RDBUFF. A transfer that is answered
// with FAULT returns an error wrapping ErrFault.
type Wire interface {
	ReadDP(addr uint8) (uint32, error)
	WriteDP(addr uint8, value uint32) error
	ReadAP(addr uint8) (uint32, error)
	WriteAP(addr uint8, value uint32) error
}

// Port drives a Debug Port over a Wire. It implements mmio.Bus over the DP
// register space with DPBANKSEL 0. A Port is safe for concurrent use.
type Port struct {
	mu   sync.Mutex
	wire Wire

	// Last value written to SELECT, valid once selected is set.
	sel      SELECT
	selected bool
}

// NewPort returns a Port on w.
func NewPort(w Wire) *Port {
	return &Port{wire: w}
}

func checkAddress(addr mmio.Address, span mmio.Address) error {
	if !addr.Aligned() {
		return mmio.ErrUnaligned
	}
	if addr >= span {
		return fmt.Errorf("%w: %s", ErrAddress, addr)
	}
	return nil
}

// selectAP writes SELECT if the requested AP selection differs from the
// cached one. DPBANKSEL is kept.
func (p *Port) selectAP(apsel APSel, apbank APBank) error {
	sel := p.sel
	sel.SetAPSEL(apsel)
	sel.SetAPBANKSEL(apbank)
	if p.selected && sel == p.sel {
		return nil
	}
	return p.writeSelect(sel)
}

func (p *Port) writeSelect(sel SELECT) error {
	if err := p.wire.WriteDP(SELECT_Offset, uint32(sel)); err != nil {
		p.selected = false
		return err
	}
	p.sel = sel
	p.selected = true
	return nil
}

// selectDP changes only DPBANKSEL, keeping the AP selection.
func (p *Port) selectDP(bank DPBank) error {
	sel := p.sel
	sel.SetDPBANKSEL(bank)
	if p.selected && sel == p.sel {
		return nil
	}
	return p.writeSelect(sel)
}

func (p *Port) readDP(addr mmio.Address, bank DPBank) (uint32, error) {
	if err := checkAddress(addr, Span); err != nil {
		return 0, err
	}
	if addr == CTRL_STAT_Offset {
		if err := p.selectDP(bank); err != nil {
			return 0, err
		}
	}
	return p.wire.ReadDP(uint8(addr))
}

func (p *Port) writeDP(addr mmio.Address, bank DPBank, value uint32) error {
	if err := checkAddress(addr, Span); err != nil {
		return err
	}
	switch addr {
	case SELECT_Offset:
		return p.writeSelect(SELECT(value))
	case CTRL_STAT_Offset:
		if err := p.selectDP(bank); err != nil {
			return err
		}
	}
	return p.wire.WriteDP(uint8(addr), value)
}

func (p *Port) Read32(addr mmio.Address) (uint32, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.readDP(addr, 0)
}

func (p *Port) Write32(addr mmio.Address, value uint32) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writeDP(addr, 0, value)
}

// Bank returns a Bus over the DP register space that reaches the registers of
// bank at offset 0x4, such as DLCR in bank DLCR_Bank.
func (p *Port) Bank(bank DPBank) mmio.Bus {
	return &dpBank{port: p, bank: bank}
}

type dpBank struct {
	port *Port
	bank DPBank
}

func (b *dpBank) Read32(addr mmio.Address) (uint32, error) {
	b.port.mu.Lock()
	defer b.port.mu.Unlock()
	return b.port.readDP(addr, b.bank)
}

func (b *dpBank) Write32(addr mmio.Address, value uint32) error {
	b.port.mu.Lock()
	defer b.port.mu.Unlock()
	return b.port.writeDP(addr, b.bank, value)
}

// status reads CTRL/STAT in bank 0.
func (p *Port) status() (CTRL_STAT, error) {
	v, err := p.readDP(CTRL_STAT_Offset, 0)
	return CTRL_STAT(v), err
}

// fault turns a FAULT response into ErrStickyError if CTRL/STAT reports one.
func (p *Port) fault(err error) error {
	if !errors.Is(err, ErrFault) {
		return err
	}
	stat, serr := p.status()
	if serr != nil {
		return errors.Join(err, serr)
	}
	if stat.GetSTICKYERR() {
		return fmt.Errorf("%w: %w", ErrStickyError, err)
	}
	return err
}

// PowerUp requests debug and system power and waits for both acknowledges.
func (p *Port) PowerUp(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var req CTRL_STAT
	req.SetCDBGPWRUPREQ(true)
	req.SetCSYSPWRUPREQ(true)
	if err := p.writeDP(CTRL_STAT_Offset, 0, uint32(req)); err != nil {
		return err
	}

	b := &backoff.Backoff{
		Min:    MinPollDelay,
		Max:    MaxPollDelay,
		Factor: 2,
	}
	for i := 0; i < MaxPolls; i++ {
		stat, err := p.status()
		if err != nil {
			return err
		}
		if stat.GetCDBGPWRUPACK() && stat.GetCSYSPWRUPACK() {
			return nil
		}

		if err = ctx.Err(); err != nil {
			return err
		}
		t := time.NewTimer(b.Duration())
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
	return ErrPowerUp
}

// PowerDown withdraws the power requests.
func (p *Port) PowerDown() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writeDP(CTRL_STAT_Offset, 0, 0)
}

// ClearErrors clears all sticky error flags through ABORT.
func (p *Port) ClearErrors() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var abort ABORT
	abort.SetSTKCMPCLR(true)
	abort.SetSTKERRCLR(true)
	abort.SetWDERRCLR(true)
	abort.SetORUNERRCLR(true)
	return p.wire.WriteDP(ABORT_Offset, uint32(abort))
}

// Abort cancels the current AP transaction.
func (p *Port) Abort() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var abort ABORT
	abort.SetDAPABORT(true)
	return p.wire.WriteDP(ABORT_Offset, uint32(abort))
}

// Invalidate forgets the cached SELECT value, forcing it to be written before
// the next banked access. Use it after a line reset.
func (p *Port) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selected = false
}
