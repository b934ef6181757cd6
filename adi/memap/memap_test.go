package memap_test

import (
	"context"
	"errors"
	"testing"

	"omibyte.io/coresight/adi/dp"
	"omibyte.io/coresight/adi/memap"
	"omibyte.io/coresight/cortexm/mpu"
	"omibyte.io/coresight/cortexm/scs"
	"omibyte.io/coresight/internal/dapsim"
	"omibyte.io/coresight/internal/regtest"
	"omibyte.io/coresight/mmio"
)

func TestGenerated(t *testing.T) {
	p := regtest.Load(t, "MEMAP")
	regtest.Parse(t).CheckConstants(t, p)
	regtest.CheckOverlay(t, p, memap.Overlay{})
	regtest.CheckHandles(t, p, memap.New(mmio.NewMemory()), 0)
}

func newTarget(t *testing.T, mem mmio.Bus) (*dapsim.Wire, *memap.Target) {
	t.Helper()

	wire := dapsim.New()
	wire.Attach(0, dapsim.NewMemAP(mem))
	port := dp.NewPort(wire)
	if err := port.PowerUp(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	target, err := memap.NewTarget(port.AP(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return wire, target
}

func TestIdentify(t *testing.T) {
	_, target := newTarget(t, mmio.NewMemory())

	idr, err := target.Registers().IDR.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idr.GetTYPE() != memap.APTypeAHB5 || idr.GetDESIGNER() != 0x23b {
		t.Errorf("unexpected IDR %#08x", uint32(idr))
	}

	base, err := target.DebugBase()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if base != dapsim.ROMTable {
		t.Errorf("expected ROM table at %#08x, got %s", dapsim.ROMTable, base)
	}

	wire := dapsim.New()
	wire.Attach(1, mmio.NewMemory())
	if _, err = memap.NewTarget(dp.NewPort(wire).AP(1)); !errors.Is(err, memap.ErrNotMemAP) {
		t.Errorf("expected ErrNotMemAP, got %v", err)
	}
}

func TestReadWrite(t *testing.T) {
	mem := mmio.NewMemory()
	mem.Poke(0x20000000, 0x12345678)
	wire, target := newTarget(t, mem)

	v, err := target.Read32(0x20000000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0x12345678 {
		t.Errorf("expected 0x12345678, got %#08x", v)
	}

	if err = target.Write32(0x20000004, 0xcafef00d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mem.Peek(0x20000004); got != 0xcafef00d {
		t.Errorf("expected 0xcafef00d, got %#08x", got)
	}

	// CSW is written once and TAR only when the address changes
	before := wire.Stats().APWrites
	for i := 0; i < 3; i++ {
		if _, err = target.Read32(0x20000000); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got := wire.Stats().APWrites - before; got != 1 {
		t.Errorf("expected 1 AP write, got %d", got)
	}

	if _, err = target.Read32(0x20000002); !errors.Is(err, mmio.ErrUnaligned) {
		t.Errorf("expected ErrUnaligned, got %v", err)
	}
}

func TestBlock(t *testing.T) {
	mem := mmio.NewMemory()
	_, target := newTarget(t, mem)

	// The block crosses a 1KB boundary, where auto-increment wraps
	const addr = 0x200003f0
	data := make([]uint32, 12)
	for i := range data {
		data[i] = uint32(0x100 + i)
	}
	if err := target.WriteBlock(addr, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range data {
		if got := mem.Peek(addr + mmio.Address(i*4)); got != data[i] {
			t.Errorf("%d: expected %#x, got %#x", i, data[i], got)
		}
	}
	if got := mem.Peek(0x20000000); got != 0 {
		t.Errorf("write wrapped to the start of the 1KB block: %#x", got)
	}

	buf := make([]uint32, len(data))
	if err := target.ReadBlock(addr, buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range buf {
		if buf[i] != data[i] {
			t.Errorf("%d: expected %#x, got %#x", i, data[i], buf[i])
		}
	}

	// Single transfers after a block use the right address
	if v, err := target.Read32(addr); err != nil || v != data[0] {
		t.Errorf("expected %#x, got %#x (%v)", data[0], v, err)
	}
}

func TestFault(t *testing.T) {
	arb := mmio.NewArbiter(mmio.NewMemory())
	lease, err := arb.Claim("SRAM", 0x20000000, 0x1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wire, target := newTarget(t, lease)

	_, err = target.Read32(0x30000000)
	if !errors.Is(err, dp.ErrStickyError) {
		t.Fatalf("expected ErrStickyError, got %v", err)
	}
	if !wire.Sticky() {
		t.Errorf("expected sticky error flag")
	}

	if err = target.Write32(0x20000000, 1); !errors.Is(err, dp.ErrFault) {
		t.Errorf("expected ErrFault while sticky, got %v", err)
	}
}

func TestRegisterMaps(t *testing.T) {
	mem := mmio.NewMemory()
	mem.Poke(mpu.Base+mpu.TYPE_Offset, mpu.TYPE_Reset)
	_, target := newTarget(t, mem)

	regions := mpu.New(target)
	err := regions.Configure(mpu.RegionConfig{
		Number:     1,
		Address:    0x20000000,
		Size:       mpu.RegionSize4KB,
		Permission: mpu.PermissionFullAccess,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err = regions.Enable(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := mem.Peek(mpu.Base + mpu.RNR_Offset); got != 1 {
		t.Errorf("RNR: expected 1, got %d", got)
	}
	rasr := mpu.RASR(mem.Peek(mpu.Base + mpu.RASR_Offset))
	if !rasr.GetENABLE() || rasr.GetSIZE() != mpu.RegionSize4KB {
		t.Errorf("unexpected RASR %#08x", uint32(rasr))
	}
	if ctrl := mpu.CTRL(mem.Peek(mpu.Base + mpu.CTRL_Offset)); !ctrl.GetENABLE() {
		t.Errorf("expected MPU enabled")
	}

	system := scs.New(target)
	if err = system.EnableIRQ(40); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mem.Peek(scs.Base + scs.ISER_Offset + 4); got != 1<<8 {
		t.Errorf("expected ISER1 0x100, got %#x", got)
	}
}
