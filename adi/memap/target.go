// Package memap describes the ADIv5 Memory Access Port and accesses target
// memory through it.
//
// A Target implements mmio.Bus over the memory behind a MEM-AP, so the
// memory-mapped register maps can be driven from a debug host:
//
//	target, err := memap.NewTarget(port.AP(0))
//	regs := scs.New(target)
//	err = regs.Halt()
package memap

//go:generate go run omibyte.io/coresight/cmd/regmap generate --output ../.. MEMAP

import (
	"errors"
	"fmt"
	"sync"

	"omibyte.io/coresight/adi/dp"
	"omibyte.io/coresight/mmio"
)

var (
	ErrNotMemAP = errors.New("access port is not a MEM-AP")
	ErrNoDebug  = errors.New("no debug base address")
)

// autoIncrementWrap is the boundary TAR auto-increment is guaranteed up to.
const autoIncrementWrap = 0x400

// Target is the memory behind a MEM-AP, accessed with 32-bit transfers. It is
// safe for concurrent use.
type Target struct {
	mu   sync.Mutex
	ap   *dp.AccessPort
	regs *Registers

	csw      CSW
	cswValid bool
	tar      uint32
	tarValid bool
}

// NewTarget identifies the AP behind ap as a MEM-AP and returns its memory.
func NewTarget(ap *dp.AccessPort) (*Target, error) {
	t := &Target{ap: ap, regs: New(ap)}
	idr, err := t.regs.IDR.Load()
	if err != nil {
		return nil, err
	}
	if idr.GetCLASS() != ClassMemAP {
		return nil, fmt.Errorf("%w: AP %d, IDR %#08x", ErrNotMemAP, ap.Select(), uint32(idr))
	}
	return t, nil
}

// Registers returns the MEM-AP registers of the target.
func (t *Target) Registers() *Registers {
	return t.regs
}

// invalidate forgets the cached CSW and TAR after a failed transfer.
func (t *Target) invalidate() {
	t.cswValid = false
	t.tarValid = false
}

func (t *Target) setup(inc AddrInc) error {
	if !t.cswValid {
		csw, err := t.regs.CSW.Load()
		if err != nil {
			return err
		}
		t.csw = csw
	}

	csw := t.csw
	csw.SetSIZE(SizeWord)
	csw.SetADDRINC(inc)
	if t.cswValid && csw == t.csw {
		return nil
	}
	if err := t.regs.CSW.Store(csw); err != nil {
		return err
	}
	t.csw = csw
	t.cswValid = true
	return nil
}

func (t *Target) setAddress(addr mmio.Address) error {
	if !addr.Aligned() {
		return mmio.ErrUnaligned
	}
	if t.tarValid && t.tar == uint32(addr) {
		return nil
	}
	var tar TAR
	tar.SetADDRESS(uint32(addr))
	if err := t.regs.TAR.Store(tar); err != nil {
		return err
	}
	t.tar = uint32(addr)
	t.tarValid = true
	return nil
}

func (t *Target) Read32(addr mmio.Address) (uint32, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.setup(AddrIncOff); err != nil {
		t.invalidate()
		return 0, err
	}
	if err := t.setAddress(addr); err != nil {
		t.invalidate()
		return 0, err
	}
	v, err := t.regs.DRW.Load()
	if err != nil {
		t.invalidate()
		return 0, err
	}
	return v.GetDATA(), nil
}

func (t *Target) Write32(addr mmio.Address, value uint32) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.setup(AddrIncOff); err != nil {
		t.invalidate()
		return err
	}
	if err := t.setAddress(addr); err != nil {
		t.invalidate()
		return err
	}
	var drw DRW
	drw.SetDATA(value)
	if err := t.regs.DRW.Store(drw); err != nil {
		t.invalidate()
		return err
	}
	return nil
}

// chunks calls fn for every run of buf that does not cross an
// auto-increment boundary.
func chunks(addr mmio.Address, n int, fn func(addr mmio.Address, lo, hi int) error) error {
	for lo := 0; lo < n; {
		room := int(autoIncrementWrap-uint32(addr)%autoIncrementWrap) / 4
		hi := lo + room
		if hi > n {
			hi = n
		}
		if err := fn(addr, lo, hi); err != nil {
			return err
		}
		addr += mmio.Address((hi - lo) * 4)
		lo = hi
	}
	return nil
}

// ReadBlock reads len(buf) words starting at addr using address
// auto-increment.
func (t *Target) ReadBlock(addr mmio.Address, buf []uint32) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.setup(AddrIncSingle); err != nil {
		t.invalidate()
		return err
	}
	err := chunks(addr, len(buf), func(addr mmio.Address, lo, hi int) error {
		t.tarValid = false
		if err := t.setAddress(addr); err != nil {
			return err
		}
		return t.ap.ReadBlock(DRW_Offset, buf[lo:hi])
	})
	// TAR has moved past the block
	t.tarValid = false
	if err != nil {
		t.invalidate()
	}
	return err
}

// WriteBlock writes buf to consecutive words starting at addr using address
// auto-increment.
func (t *Target) WriteBlock(addr mmio.Address, buf []uint32) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.setup(AddrIncSingle); err != nil {
		t.invalidate()
		return err
	}
	err := chunks(addr, len(buf), func(addr mmio.Address, lo, hi int) error {
		t.tarValid = false
		if err := t.setAddress(addr); err != nil {
			return err
		}
		return t.ap.WriteBlock(DRW_Offset, buf[lo:hi])
	})
	t.tarValid = false
	if err != nil {
		t.invalidate()
	}
	return err
}

// DebugBase returns the address of the top-level ROM table.
func (t *Target) DebugBase() (mmio.Address, error) {
	base, err := t.regs.BASE.Load()
	if err != nil {
		return 0, err
	}
	if !base.GetP() {
		return 0, ErrNoDebug
	}
	return mmio.Address(base.GetBASEADDR()) << BASE_BASEADDR_Pos, nil
}
