package dp

import (
	"omibyte.io/coresight/mmio"
)

// APSpan is the size of the register space of an Access Port.
const APSpan = 0x100

// AccessPort is the register space of one Access Port behind a Port. It
// implements mmio.Bus, so the registers of an AP, such as those of a MEM-AP,
// can be bound to it.
type AccessPort struct {
	port  *Port
	apsel APSel
}

// AP returns the Access Port selected by apsel.
func (p *Port) AP(apsel APSel) *AccessPort {
	return &AccessPort{port: p, apsel: apsel}
}

// Port returns the Debug Port the AP is accessed through.
func (a *AccessPort) Port() *Port {
	return a.port
}

// Select returns the AP number.
func (a *AccessPort) Select() APSel {
	return a.apsel
}

// Read32 reads an AP register. The read is posted, so its result is taken
// from RDBUFF.
func (a *AccessPort) Read32(addr mmio.Address) (uint32, error) {
	p := a.port
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := checkAddress(addr, APSpan); err != nil {
		return 0, err
	}
	if err := p.selectAP(a.apsel, APBank(addr>>4)); err != nil {
		return 0, err
	}
	if _, err := p.wire.ReadAP(uint8(addr & 0xC)); err != nil {
		return 0, p.fault(err)
	}
	v, err := p.wire.ReadDP(RDBUFF_Offset)
	if err != nil {
		return 0, p.fault(err)
	}
	return v, nil
}

// Write32 writes an AP register.
func (a *AccessPort) Write32(addr mmio.Address, value uint32) error {
	p := a.port
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := checkAddress(addr, APSpan); err != nil {
		return err
	}
	if err := p.selectAP(a.apsel, APBank(addr>>4)); err != nil {
		return err
	}
	if err := p.wire.WriteAP(uint8(addr&0xC), value); err != nil {
		return p.fault(err)
	}
	return nil
}

// ReadBlock reads len(buf) consecutive values of one AP register, such as DRW
// with address auto-increment. Reads are pipelined: every AP read returns the
// previous result and RDBUFF returns the last one.
func (a *AccessPort) ReadBlock(addr mmio.Address, buf []uint32) error {
	if len(buf) == 0 {
		return nil
	}

	p := a.port
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := checkAddress(addr, APSpan); err != nil {
		return err
	}
	if err := p.selectAP(a.apsel, APBank(addr>>4)); err != nil {
		return err
	}
	if _, err := p.wire.ReadAP(uint8(addr & 0xC)); err != nil {
		return p.fault(err)
	}
	for i := 1; i < len(buf); i++ {
		v, err := p.wire.ReadAP(uint8(addr & 0xC))
		if err != nil {
			return p.fault(err)
		}
		buf[i-1] = v
	}
	v, err := p.wire.ReadDP(RDBUFF_Offset)
	if err != nil {
		return p.fault(err)
	}
	buf[len(buf)-1] = v
	return nil
}

// WriteBlock writes the values of buf to one AP register in order.
func (a *AccessPort) WriteBlock(addr mmio.Address, buf []uint32) error {
	p := a.port
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := checkAddress(addr, APSpan); err != nil {
		return err
	}
	if err := p.selectAP(a.apsel, APBank(addr>>4)); err != nil {
		return err
	}
	for _, v := range buf {
		if err := p.wire.WriteAP(uint8(addr&0xC), v); err != nil {
			return p.fault(err)
		}
	}
	return nil
}
