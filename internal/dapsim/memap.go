package dapsim

import (
	"fmt"
	"sync"

	"omibyte.io/coresight/adi/memap"
	"omibyte.io/coresight/mmio"
)

// MemAPIDR is the IDR of the simulated MEM-AP: an ARM AHB5 MEM-AP.
const MemAPIDR = uint32(memap.APTypeAHB5)<<memap.IDR_TYPE_Pos |
	uint32(memap.ClassMemAP)<<memap.IDR_CLASS_Pos |
	0x23b<<memap.IDR_DESIGNER_Pos |
	0x8<<memap.IDR_REVISION_Pos

// ROMTable is the debug base address reported by the simulated MEM-AP.
const ROMTable = 0xE00FF000

// MemAP is the register space of a MEM-AP over a memory bus. Only 32-bit
// transfers are implemented. Address auto-increment wraps within 1KB.
type MemAP struct {
	mu  sync.Mutex
	mem mmio.Bus
	csw uint32
	tar uint32
}

// NewMemAP returns a MEM-AP accessing mem.
func NewMemAP(mem mmio.Bus) *MemAP {
	return &MemAP{mem: mem, csw: uint32(memap.SizeWord) << memap.CSW_SIZE_Pos}
}

func (m *MemAP) increment() {
	inc := memap.AddrInc(m.csw & memap.CSW_ADDRINC_Msk >> memap.CSW_ADDRINC_Pos)
	if inc == memap.AddrIncSingle {
		m.tar = m.tar&^0x3FF | (m.tar+4)&0x3FF
	}
}

func (m *MemAP) checkSize() error {
	if size := memap.Size(m.csw & memap.CSW_SIZE_Msk >> memap.CSW_SIZE_Pos); size != memap.SizeWord {
		return fmt.Errorf("transfer size %d not implemented", size)
	}
	return nil
}

func (m *MemAP) Read32(addr mmio.Address) (uint32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case addr == memap.CSW_Offset:
		return m.csw | memap.CSW_DEVICEEN_Msk, nil
	case addr == memap.TAR_Offset:
		return m.tar, nil
	case addr == memap.TAR_MSW_Offset, addr == memap.BASE_MSW_Offset, addr == memap.CFG_Offset:
		return 0, nil
	case addr == memap.DRW_Offset:
		if err := m.checkSize(); err != nil {
			return 0, err
		}
		v, err := m.mem.Read32(mmio.Address(m.tar))
		if err != nil {
			return 0, err
		}
		m.increment()
		return v, nil
	case addr >= memap.BD_Offset && addr < memap.BD_Offset+memap.BD_Count*4:
		return m.mem.Read32(mmio.Address(m.tar&^0xF) + addr - memap.BD_Offset)
	case addr == memap.BASE_Offset:
		return ROMTable | memap.BASE_FORMAT_Msk | memap.BASE_P_Msk, nil
	case addr == memap.IDR_Offset:
		return MemAPIDR, nil
	}
	return 0, nil
}

func (m *MemAP) Write32(addr mmio.Address, value uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case addr == memap.CSW_Offset:
		m.csw = value &^ (memap.CSW_DEVICEEN_Msk | memap.CSW_TRINPROG_Msk | memap.CSW_TYPE_Msk)
	case addr == memap.TAR_Offset:
		m.tar = value
	case addr == memap.DRW_Offset:
		if err := m.checkSize(); err != nil {
			return err
		}
		if err := m.mem.Write32(mmio.Address(m.tar), value); err != nil {
			return err
		}
		m.increment()
	case addr >= memap.BD_Offset && addr < memap.BD_Offset+memap.BD_Count*4:
		return m.mem.Write32(mmio.Address(m.tar&^0xF)+addr-memap.BD_Offset, value)
	}
	return nil
}
