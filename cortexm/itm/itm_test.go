package itm

import (
	"errors"
	"testing"

	"omibyte.io/coresight/internal/regtest"
	"omibyte.io/coresight/mmio"
)

func TestGenerated(t *testing.T) {
	p := regtest.Load(t, "ITM")
	regtest.Parse(t).CheckConstants(t, p)
	regtest.CheckOverlay(t, p, Overlay{})
	regtest.CheckHandles(t, p, New(mmio.NewMemory()), 0xE0000000)
}

func TestStimulusAliasing(t *testing.T) {
	if STIM_FIFOREADY_Msk&STIM_STIMULUS_Msk == 0 {
		t.Fatalf("expected FIFOREADY to alias STIMULUS")
	}

	var stim STIM
	stim.SetSTIMULUS(0x1)
	if !stim.GetFIFOREADY() {
		t.Errorf("expected bit 0 to read as FIFOREADY")
	}
}

func TestEnable(t *testing.T) {
	mem := mmio.NewMemory()
	regs := New(mem)

	err := regs.Enable(Config{
		TraceBusID: 0x11,
		Timestamps: true,
		Prescaler:  PrescalerDiv4,
		Global:     GlobalTimestampEvery8192Cycles,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tcr := TCR(mem.Peek(Base + TCR_Offset))
	if !tcr.GetITMENA() || !tcr.GetSYNCENA() || !tcr.GetTSENA() || tcr.GetSWOENA() {
		t.Errorf("unexpected TCR %#x", uint32(tcr))
	}
	if tcr.GetTRACEBUSID() != 0x11 || tcr.GetTSPRESCALE() != PrescalerDiv4 || tcr.GetGTSFREQ() != GlobalTimestampEvery8192Cycles {
		t.Errorf("unexpected TCR fields %#x", uint32(tcr))
	}

	if err = regs.Enable(Config{TraceBusID: TraceBusIDMax + 1}); !errors.Is(err, ErrTraceBusID) {
		t.Errorf("expected ErrTraceBusID, got %v", err)
	}

	if err = regs.Disable(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tcr = TCR(mem.Peek(Base + TCR_Offset)); tcr.GetITMENA() || tcr.GetTRACEBUSID() != 0x11 {
		t.Errorf("unexpected TCR after disable %#x", uint32(tcr))
	}
}

func TestPort(t *testing.T) {
	mem := mmio.NewMemory()
	regs := New(mem)
	if err := regs.Enable(Config{TraceBusID: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		port   uint8
		ter    mmio.Address
		bit    uint32
		stim   mmio.Address
		ready  bool
		err    error
		enable bool
	}{
		{port: 0, ter: 0, bit: 0x1, stim: 0x0, ready: true, enable: true},
		{port: 33, ter: 4, bit: 0x2, stim: 0x84, ready: true, enable: true},
		{port: 255, ter: 28, bit: 0x80000000, stim: 0x3fc, ready: true, enable: true},
		{port: 7, ter: 0, bit: 0x80, stim: 0x1c, ready: true, err: ErrPortDisabled},
		{port: 9, ter: 0, bit: 0x200, stim: 0x24, ready: false, err: ErrFIFOFull, enable: true},
	}

	for _, test := range tests {
		port := regs.Port(test.port)
		if port.Number() != test.port {
			t.Errorf("expected port %d, got %d", test.port, port.Number())
		}

		if test.enable {
			if err := port.Enable(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := mem.Peek(Base + TER_Offset + test.ter); got&test.bit == 0 {
				t.Errorf("%d: TER bit %#x not set in %#x", test.port, test.bit, got)
			}
		}

		addr := Base + STIM_Offset + test.stim
		written := false
		ready := test.ready
		mem.OnRead(addr, func(uint32) uint32 {
			if ready {
				return 1
			}
			return 0
		})
		mem.OnWrite(addr, func(_, v uint32) uint32 {
			written = v == 0xcafe0000|uint32(test.port)
			return v
		})

		err := port.Write32(0xcafe0000 | uint32(test.port))
		if test.err != nil {
			if !errors.Is(err, test.err) {
				t.Errorf("%d: expected %v, got %v", test.port, test.err, err)
			}
			if written {
				t.Errorf("%d: unexpected write", test.port)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%d: unexpected error: %v", test.port, err)
		}
		if !written {
			t.Errorf("%d: stimulus not written", test.port)
		}
	}
}

func TestUnlock(t *testing.T) {
	mem := mmio.NewMemory()
	regs := New(mem)
	mem.Poke(Base+LSR_Offset, LSR_SLI_Msk|LSR_SLK_Msk)

	if err := regs.Unlock(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mem.Peek(Base + LAR_Offset); got != uint32(LockKeyUnlock) {
		t.Errorf("expected LAR %#x, got %#x", uint32(LockKeyUnlock), got)
	}
}
