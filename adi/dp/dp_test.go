package dp_test

import (
	"context"
	"errors"
	"testing"

	"omibyte.io/coresight/adi/dp"
	"omibyte.io/coresight/internal/dapsim"
	"omibyte.io/coresight/internal/regtest"
	"omibyte.io/coresight/mmio"
)

func TestGenerated(t *testing.T) {
	p := regtest.Load(t, "DP")
	src := regtest.Parse(t)
	src.CheckConstants(t, p)
	regtest.CheckOverlay(t, p, dp.Overlay{})
	regtest.CheckHandles(t, p, dp.New(mmio.NewMemory()), 0)

	banks := []struct {
		name string
		bank int
	}{
		{"CTRL_STAT", dp.CTRL_STAT_Bank},
		{"DLCR", dp.DLCR_Bank},
		{"TARGETID", dp.TARGETID_Bank},
		{"DLPIDR", dp.DLPIDR_Bank},
		{"EVENTSTAT", dp.EVENTSTAT_Bank},
	}
	for i, b := range banks {
		if b.bank != i {
			t.Errorf("%s: expected bank %d, got %d", b.name, i, b.bank)
		}
	}
}

func TestPowerUp(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name      string
		ctx       context.Context
		unpowered bool
		err       error
	}{
		{name: "acknowledged", ctx: context.Background()},
		{name: "unpowered", ctx: context.Background(), unpowered: true, err: dp.ErrPowerUp},
		{name: "canceled", ctx: canceled, unpowered: true, err: context.Canceled},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			wire := dapsim.New()
			wire.Unpowered = test.unpowered
			port := dp.NewPort(wire)

			err := port.PowerUp(test.ctx)
			if !errors.Is(err, test.err) {
				t.Fatalf("expected %v, got %v", test.err, err)
			}
			if err != nil {
				return
			}

			stat, err := dp.New(port).CTRL_STAT.Load()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !stat.GetCDBGPWRUPACK() || !stat.GetCSYSPWRUPACK() {
				t.Errorf("unexpected CTRL/STAT %#08x", uint32(stat))
			}
		})
	}
}

func TestRegisters(t *testing.T) {
	port := dp.NewPort(dapsim.New())
	regs := dp.New(port)

	id, err := regs.DPIDR.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.GetDESIGNER() != 0x23b || id.GetVERSION() != 2 {
		t.Errorf("unexpected DPIDR %#08x", uint32(id))
	}

	// DLCR shares its offset with CTRL/STAT
	banked := dp.New(port.Bank(dp.DLCR_Bank))
	var dlcr dp.DLCR
	dlcr.SetTURNROUND(dp.Turnaround3Cycles)
	if err = banked.DLCR.Store(dlcr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err = port.PowerUp(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dlcr, err = banked.DLCR.Load(); err != nil || dlcr.GetTURNROUND() != dp.Turnaround3Cycles {
		t.Errorf("expected 3 cycle turnaround, got %#x (%v)", uint32(dlcr), err)
	}

	if _, err = port.Read32(dp.Span); !errors.Is(err, dp.ErrAddress) {
		t.Errorf("expected ErrAddress, got %v", err)
	}
	if _, err = port.Read32(2); !errors.Is(err, mmio.ErrUnaligned) {
		t.Errorf("expected ErrUnaligned, got %v", err)
	}
}

func TestAccessPort(t *testing.T) {
	wire := dapsim.New()
	ap := mmio.NewMemory()
	ap.Poke(0x04, 0x11111111)
	ap.Poke(0x0c, 0x22222222)
	ap.Poke(0xfc, 0x33333333)
	wire.Attach(1, ap)

	port := dp.NewPort(wire)
	bus := port.AP(1)

	tests := []struct {
		addr mmio.Address
		want uint32
	}{
		{0x04, 0x11111111},
		{0x0c, 0x22222222},
		{0xfc, 0x33333333},
		{0x04, 0x11111111},
	}
	for _, test := range tests {
		got, err := bus.Read32(test.addr)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != test.want {
			t.Errorf("%s: expected %#08x, got %#08x", test.addr, test.want, got)
		}
	}

	// Bank 0 is selected once, bank 0xf once, then bank 0 again
	if stats := wire.Stats(); stats.Selects != 3 || stats.RDBUFF != len(tests) {
		t.Errorf("unexpected transactions %+v", stats)
	}

	if err := bus.Write32(0x08, 0xabcd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ap.Peek(0x08); got != 0xabcd {
		t.Errorf("expected 0xabcd, got %#x", got)
	}
	if _, err := bus.Read32(dp.APSpan); !errors.Is(err, dp.ErrAddress) {
		t.Errorf("expected ErrAddress, got %v", err)
	}
}

func TestBlock(t *testing.T) {
	wire := dapsim.New()
	ap := mmio.NewMemory()
	wire.Attach(0, ap)

	// Every read of 0xc returns the next value of a counter
	next := uint32(0)
	ap.OnRead(0x0c, func(uint32) uint32 {
		next++
		return next
	})

	bus := dp.NewPort(wire).AP(0)
	buf := make([]uint32, 5)
	if err := bus.ReadBlock(0x0c, buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range buf {
		if v != uint32(i+1) {
			t.Errorf("%d: expected %d, got %d", i, i+1, v)
		}
	}
	if stats := wire.Stats(); stats.APReads != 5 || stats.RDBUFF != 1 {
		t.Errorf("unexpected transactions %+v", stats)
	}

	var written []uint32
	ap.OnWrite(0x0c, func(_, v uint32) uint32 {
		written = append(written, v)
		return v
	})
	if err := bus.WriteBlock(0x0c, []uint32{7, 8, 9}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(written) != 3 || written[0] != 7 || written[2] != 9 {
		t.Errorf("unexpected writes %v", written)
	}
}

func TestStickyError(t *testing.T) {
	wire := dapsim.New()
	port := dp.NewPort(wire)

	// No AP is attached at 3
	_, err := port.AP(3).Read32(0)
	if !errors.Is(err, dp.ErrStickyError) || !errors.Is(err, dp.ErrFault) {
		t.Fatalf("expected a sticky FAULT, got %v", err)
	}
	if !wire.Sticky() {
		t.Fatalf("expected sticky error flag")
	}

	if err = port.ClearErrors(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wire.Sticky() {
		t.Errorf("expected sticky error flag cleared")
	}
	stat, err := dp.New(port).CTRL_STAT.Load()
	if err != nil || stat.GetSTICKYERR() {
		t.Errorf("unexpected CTRL/STAT %#08x (%v)", uint32(stat), err)
	}
}

func TestSelectCache(t *testing.T) {
	wire := dapsim.New()
	wire.Attach(0, mmio.NewMemory())
	port := dp.NewPort(wire)
	bus := port.AP(0)

	for i := 0; i < 3; i++ {
		if _, err := bus.Read32(0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got := wire.Stats().Selects; got != 1 {
		t.Errorf("expected 1 SELECT write, got %d", got)
	}

	port.Invalidate()
	if _, err := bus.Read32(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := wire.Stats().Selects; got != 2 {
		t.Errorf("expected 2 SELECT writes, got %d", got)
	}
}
