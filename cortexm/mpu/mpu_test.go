package mpu

import (
	"errors"
	"testing"
	"unsafe"

	"omibyte.io/coresight/internal/regtest"
	"omibyte.io/coresight/mmio"
)

func TestGenerated(t *testing.T) {
	p := regtest.Load(t, "MPU")
	regtest.Parse(t).CheckConstants(t, p)
	regtest.CheckOverlay(t, p, Overlay{})
	regtest.CheckHandles(t, p, New(mmio.NewMemory()), 0xE000ED90)

	if unsafe.Sizeof(Overlay{}) != Span {
		t.Errorf("expected overlay of %#x bytes, got %#x", Span, unsafe.Sizeof(Overlay{}))
	}
	if unsafe.Offsetof(Overlay{}.RASR_A3) != RASR_A3_Offset {
		t.Errorf("RASR_A3 at %#x", unsafe.Offsetof(Overlay{}.RASR_A3))
	}
}

func TestRegionSizeField(t *testing.T) {
	if RASR_SIZE_Msk != 0x1E {
		t.Errorf("expected RASR_SIZE_Msk 0x1e, got %#x", RASR_SIZE_Msk)
	}

	rasr := RASR(0x00000006)
	if got := rasr.GetSIZE(); got != RegionSize16Bytes {
		t.Errorf("expected %d, got %d", RegionSize16Bytes, got)
	}

	rasr.SetSIZE(RegionSize64KB)
	if rasr != 0x1E {
		t.Errorf("expected 0x1e, got %#x", uint32(rasr))
	}
}

func TestRegionSizeFor(t *testing.T) {
	tests := []struct {
		bytes   uint32
		size    RegionSize
		wantErr bool
	}{
		{bytes: 16, size: RegionSize16Bytes},
		{bytes: 256, size: RegionSize256Bytes},
		{bytes: 1024, size: RegionSize1KB},
		{bytes: 65536, size: RegionSize64KB},
		{bytes: 0, wantErr: true},
		{bytes: 8, wantErr: true},
		{bytes: 48, wantErr: true},
		{bytes: 1 << 17, wantErr: true},
	}

	for _, test := range tests {
		size, err := RegionSizeFor(test.bytes)
		if test.wantErr {
			if !errors.Is(err, ErrRegionSize) {
				t.Errorf("%d: expected ErrRegionSize, got %v", test.bytes, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%d: unexpected error: %v", test.bytes, err)
			continue
		}
		if size != test.size {
			t.Errorf("%d: expected %d, got %d", test.bytes, test.size, size)
		}
		if size.Bytes() != test.bytes {
			t.Errorf("%d: Bytes() = %d", test.bytes, size.Bytes())
		}
	}
}

func TestDenseRanges(t *testing.T) {
	for v := 0; v <= int(RegionMax); v++ {
		var rnr RNR
		rnr.SetREGION(Region(v))
		if !Region(v).Valid() || rnr.GetREGION() != Region(v) {
			t.Fatalf("region %d does not round trip", v)
		}
	}

	var rbar RBAR
	rbar.SetREGION(RegionSelectMax + 1)
	if rbar&^RBAR_REGION_Msk != 0 {
		t.Errorf("region select spilled into %#x", uint32(rbar))
	}
	if (RegionSelectMax + 1).Valid() {
		t.Errorf("expected %d to be invalid", RegionSelectMax+1)
	}
}

func TestConfigure(t *testing.T) {
	mem := mmio.NewMemory()
	mem.Poke(Base+TYPE_Offset, TYPE_Reset)
	regs := New(mem)

	err := regs.Configure(RegionConfig{
		Number:       2,
		Address:      0x20000000,
		Size:         RegionSize32KB,
		Permission:   PermissionPrivRWUnprivRO,
		Cacheable:    true,
		ExecuteNever: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := mem.Peek(Base + RNR_Offset); got != 2 {
		t.Errorf("RNR: expected 2, got %d", got)
	}
	if got := mem.Peek(Base + RBAR_Offset); got != 0x20000000 {
		t.Errorf("RBAR: expected 0x20000000, got %#x", got)
	}

	rasr := RASR(mem.Peek(Base + RASR_Offset))
	if !rasr.GetENABLE() || rasr.GetSIZE() != RegionSize32KB || rasr.GetAP() != PermissionPrivRWUnprivRO {
		t.Errorf("unexpected RASR %#x", uint32(rasr))
	}
	if !rasr.GetC() || rasr.GetB() || !rasr.GetXN() {
		t.Errorf("unexpected RASR attributes %#x", uint32(rasr))
	}

	tests := []struct {
		name   string
		config RegionConfig
		err    error
	}{
		{"unaligned", RegionConfig{Number: 0, Address: 0x20000100, Size: RegionSize1KB}, ErrRegionAddress},
		{"region", RegionConfig{Number: 16, Address: 0, Size: RegionSize1KB}, ErrRegion},
		{"below RBAR alignment", RegionConfig{Number: 1, Address: 0x20000010, Size: RegionSize16Bytes}, ErrRegionAddress},
		{"zero size", RegionConfig{Number: 1, Address: 0x20000002}, ErrRegionSize},
		{"reserved size", RegionConfig{Number: 1, Address: 0x20000000, Size: RegionSize16Bytes - 1}, ErrRegionSize},
		{"oversized", RegionConfig{Number: 1, Address: 0x20000000, Size: RegionSize64KB + 1}, ErrRegionSize},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mem.Poke(Base+RBAR_Offset, 0)
			mem.Poke(Base+RASR_Offset, 0)
			if err := regs.Configure(test.config); !errors.Is(err, test.err) {
				t.Errorf("expected %v, got %v", test.err, err)
			}
			if rbar, rasr := mem.Peek(Base+RBAR_Offset), mem.Peek(Base+RASR_Offset); rbar != 0 || rasr != 0 {
				t.Errorf("rejected region written: RBAR %#x, RASR %#x", rbar, rasr)
			}
		})
	}

	// The smallest region at a 32 byte boundary
	err = regs.Configure(RegionConfig{Number: 1, Address: 0x20000020, Size: RegionSize32Bytes})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mem.Peek(Base + RBAR_Offset); got != 0x20000020 {
		t.Errorf("RBAR: expected 0x20000020, got %#x", got)
	}
}

func TestEnable(t *testing.T) {
	arb := mmio.NewArbiter(mmio.NewMemory())
	regs, lease, err := Claim(arb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer lease.Release()

	if _, _, err = Claim(arb); !errors.Is(err, mmio.ErrClaimed) {
		t.Errorf("expected ErrClaimed, got %v", err)
	}

	if err = regs.Enable(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctrl, _ := regs.CTRL.Load()
	if !ctrl.GetENABLE() || !ctrl.GetPRIVDEFENA() || ctrl.GetHFNMIENA() {
		t.Errorf("unexpected CTRL %#x", uint32(ctrl))
	}

	if err = regs.Disable(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctrl, _ = regs.CTRL.Load(); ctrl != 0 {
		t.Errorf("expected CTRL 0, got %#x", uint32(ctrl))
	}
}
