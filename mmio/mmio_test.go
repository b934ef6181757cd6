package mmio

import (
	"errors"
	"testing"
)

type ctrl uint32

func TestHandles(t *testing.T) {
	mem := NewMemory()
	mem.Poke(0x100, 0xCAFE)

	ro := NewRO[ctrl](mem, 0x100)
	v, err := ro.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0xCAFE {
		t.Errorf("expected %#x, got %#x", 0xCAFE, v)
	}

	wo := NewWO[ctrl](mem, 0x104)
	if err = wo.Store(0x5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mem.Peek(0x104); got != 0x5 {
		t.Errorf("expected %#x, got %#x", 0x5, got)
	}

	rw := NewRW[ctrl](mem, 0x108)
	rw.Store(0xF0)
	if err = rw.Modify(func(v *ctrl) { *v |= 0x1 }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ = rw.Load(); v != 0xF1 {
		t.Errorf("expected %#x, got %#x", 0xF1, v)
	}
	if rw.Address() != 0x108 {
		t.Errorf("expected address 0x108, got %s", rw.Address())
	}
}

func TestMemoryHooks(t *testing.T) {
	mem := NewMemory()

	// Write-one-to-clear
	mem.Poke(0x0, 0xFF)
	mem.OnWrite(0x0, func(stored, written uint32) uint32 {
		return stored &^ written
	})
	mem.Write32(0x0, 0x0F)
	if got := mem.Peek(0x0); got != 0xF0 {
		t.Errorf("expected %#x, got %#x", 0xF0, got)
	}

	// Read-as-one bit
	mem.OnRead(0x4, func(stored uint32) uint32 {
		return stored | 0x1
	})
	if v, _ := mem.Read32(0x4); v != 0x1 {
		t.Errorf("expected %#x, got %#x", 0x1, v)
	}

	if _, err := mem.Read32(0x6); !errors.Is(err, ErrUnaligned) {
		t.Errorf("expected ErrUnaligned, got %v", err)
	}
	if err := mem.Write32(0x1, 0); !errors.Is(err, ErrUnaligned) {
		t.Errorf("expected ErrUnaligned, got %v", err)
	}
}

func TestArbiter(t *testing.T) {
	mem := NewMemory()
	arb := NewArbiter(mem)

	tests := []struct {
		name string
		base Address
		size uint32
		err  error
	}{
		{"first", 0x1000, 0x100, nil},
		{"overlap-start", 0x0F00, 0x101, ErrClaimed},
		{"overlap-end", 0x10FC, 0x4, ErrClaimed},
		{"adjacent", 0x1100, 0x100, nil},
		{"below", 0x0F00, 0x100, nil},
		{"empty", 0x2000, 0, ErrEmptyWindow},
	}

	for _, tc := range tests {
		_, err := arb.Claim(tc.name, tc.base, tc.size)
		if !errors.Is(err, tc.err) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.err, err)
		}
	}

	if n := len(arb.Leases()); n != 3 {
		t.Errorf("expected 3 leases, got %d", n)
	}
}

func TestLeaseWindow(t *testing.T) {
	mem := NewMemory()
	arb := NewArbiter(mem)

	lease, err := arb.Claim("mpu", 0xE000ED90, 0x60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err = lease.Write32(0xE000ED94, 0x5); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err = lease.Write32(0xE000EDF0, 0x5); !errors.Is(err, ErrOutOfWindow) {
		t.Errorf("expected ErrOutOfWindow, got %v", err)
	}
	if _, err = lease.Read32(0xE000ED8C); !errors.Is(err, ErrOutOfWindow) {
		t.Errorf("expected ErrOutOfWindow, got %v", err)
	}

	// The window can be claimed again once released
	lease.Release()
	if _, err = lease.Read32(0xE000ED94); !errors.Is(err, ErrReleased) {
		t.Errorf("expected ErrReleased, got %v", err)
	}
	if _, err = arb.Claim("mpu-again", 0xE000ED90, 0x60); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	lease.Release()
}

func TestLookupBase(t *testing.T) {
	tests := []struct {
		symbol string
		addr   Address
		err    error
	}{
		{"PPB_BASE", 0xE0000000, nil},
		{"SCS_BASE", 0xE000E000, nil},
		{"DP_BASE", 0x0, nil},
		{"AP_BASE", 0x0, nil},
		{"NOPE", 0x0, ErrUnknownBase},
	}

	for _, tc := range tests {
		t.Run(tc.symbol, func(t *testing.T) {
			addr, err := LookupBase(tc.symbol)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
			if addr != tc.addr {
				t.Errorf("expected %s, got %s", tc.addr, addr)
			}
		})
	}
}
