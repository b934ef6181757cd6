package scs

import (
	"errors"
	"testing"
	"unsafe"

	"omibyte.io/coresight/internal/regtest"
	"omibyte.io/coresight/mmio"
)

func TestGenerated(t *testing.T) {
	p := regtest.Load(t, "SCS")
	src := regtest.Parse(t)
	src.CheckConstants(t, p)
	src.CheckComposed(t, p)
	regtest.CheckOverlay(t, p, Overlay{})
	regtest.CheckHandles(t, p, New(mmio.NewMemory()), 0xE000E000)

	if unsafe.Sizeof(Overlay{}) != Span {
		t.Errorf("expected overlay of %#x bytes, got %#x", Span, unsafe.Sizeof(Overlay{}))
	}
	if Base+CPUID_Offset != 0xE000ED00 {
		t.Errorf("CPUID at %s", Base+CPUID_Offset)
	}
}

func TestDualIssueBits(t *testing.T) {
	tests := []struct {
		name string
		pos  int
		base int
	}{
		{"DISDI_VFP", ACTLR_DISDI_VFP_Pos, ACTLR_DISDI_Pos},
		{"DISDI_DBR", ACTLR_DISDI_DBR_Pos, ACTLR_DISDI_Pos + 4},
		{"DISISSCH1_VFP", ACTLR_DISISSCH1_VFP_Pos, ACTLR_DISISSCH1_Pos},
		{"DISISSCH1_DBR", ACTLR_DISISSCH1_DBR_Pos, ACTLR_DISISSCH1_Pos + 4},
	}
	for _, test := range tests {
		if test.pos != test.base {
			t.Errorf("%s: expected %d, got %d", test.name, test.base, test.pos)
		}
	}

	var actlr ACTLR
	actlr.SetDISDI_LDST(true)
	if actlr.GetDISDI() != 0x4 {
		t.Errorf("expected DISDI 0x4, got %#x", actlr.GetDISDI())
	}
}

func TestInterrupts(t *testing.T) {
	mem := mmio.NewMemory()
	regs := New(mem)

	tests := []struct {
		irq  Interrupt
		word mmio.Address
		bit  uint32
	}{
		{irq: 0, word: 0, bit: 0x1},
		{irq: 31, word: 0, bit: 0x80000000},
		{irq: 32, word: 4, bit: 0x1},
		{irq: 239, word: 28, bit: 0x8000},
	}

	for _, test := range tests {
		mem.Poke(Base+ISER_Offset+test.word, 0)
		if err := regs.EnableIRQ(test.irq); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := mem.Peek(Base + ISER_Offset + test.word); got != test.bit {
			t.Errorf("%d: ISER expected %#x, got %#x", test.irq, test.bit, got)
		}
		if enabled, _ := regs.IRQEnabled(test.irq); !enabled {
			t.Errorf("%d: expected enabled", test.irq)
		}

		ops := []struct {
			name   string
			fn     func(Interrupt) error
			offset mmio.Address
		}{
			{"DisableIRQ", regs.DisableIRQ, ICER_Offset},
			{"SetPendingIRQ", regs.SetPendingIRQ, ISPR_Offset},
			{"ClearPendingIRQ", regs.ClearPendingIRQ, ICPR_Offset},
		}
		for _, op := range ops {
			if err := op.fn(test.irq); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := mem.Peek(Base + op.offset + test.word); got != test.bit {
				t.Errorf("%d: %s wrote %#x, expected %#x", test.irq, op.name, got, test.bit)
			}
		}
	}

	mem.Poke(Base+IABR_Offset+4, 0x2)
	if active, _ := regs.IRQActive(33); !active {
		t.Errorf("expected interrupt 33 active")
	}
}

func TestPriority(t *testing.T) {
	mem := mmio.NewMemory()
	regs := New(mem)

	for i := Interrupt(4); i < 8; i++ {
		if err := regs.SetPriority(i, Priority(0x10*uint8(i))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got := mem.Peek(Base + IPR_Offset + 4); got != 0x70605040 {
		t.Errorf("expected IPR1 0x70605040, got %#x", got)
	}

	for i := Interrupt(4); i < 8; i++ {
		priority, err := regs.Priority(i)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if priority != Priority(0x10*uint8(i)) {
			t.Errorf("%d: expected %#x, got %#x", i, 0x10*uint8(i), priority)
		}
	}

	if err := regs.TriggerIRQ(244); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mem.Peek(Base + STIR_Offset); got != 244 {
		t.Errorf("expected STIR 244, got %d", got)
	}
}

func TestSystemReset(t *testing.T) {
	mem := mmio.NewMemory()
	regs := New(mem)

	// The key reads back as its complement and the grouping is preserved
	mem.Poke(Base+AIRCR_Offset, uint32(VectorKeyRead)<<AIRCR_VECTKEY_Pos|0x5<<AIRCR_PRIGROUP_Pos)
	if err := regs.SystemReset(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	aircr := AIRCR(mem.Peek(Base + AIRCR_Offset))
	if aircr.GetVECTKEY() != VectorKeyWrite {
		t.Errorf("expected key %#x, got %#x", VectorKeyWrite, aircr.GetVECTKEY())
	}
	if aircr.GetPRIGROUP() != 0x5 {
		t.Errorf("expected PRIGROUP 5, got %d", aircr.GetPRIGROUP())
	}
	if aircr&AIRCR_SYSRESETREQ_Msk == 0 {
		t.Errorf("SYSRESETREQ not set in %#x", uint32(aircr))
	}
}

func TestPriorityGrouping(t *testing.T) {
	tests := []struct {
		group uint8
		err   error
	}{
		{group: 0},
		{group: 3},
		{group: MaxPriorityGroup},
		{group: MaxPriorityGroup + 1, err: ErrPriorityGroup},
		{group: 0xff, err: ErrPriorityGroup},
	}

	for _, test := range tests {
		mem := mmio.NewMemory()
		mem.Poke(Base+AIRCR_Offset, uint32(VectorKeyRead)<<AIRCR_VECTKEY_Pos|0x2<<AIRCR_PRIGROUP_Pos)
		regs := New(mem)

		err := regs.SetPriorityGrouping(test.group)
		aircr := AIRCR(mem.Peek(Base + AIRCR_Offset))
		if test.err != nil {
			if !errors.Is(err, test.err) {
				t.Errorf("%d: expected %v, got %v", test.group, test.err, err)
			}
			if aircr.GetPRIGROUP() != 0x2 {
				t.Errorf("%d: PRIGROUP changed to %d", test.group, aircr.GetPRIGROUP())
			}
			continue
		}
		if err != nil {
			t.Errorf("%d: unexpected error: %v", test.group, err)
			continue
		}
		if aircr.GetPRIGROUP() != test.group || aircr.GetVECTKEY() != VectorKeyWrite {
			t.Errorf("%d: unexpected AIRCR %#x", test.group, uint32(aircr))
		}
	}
}

func TestVectorTable(t *testing.T) {
	mem := mmio.NewMemory()
	regs := New(mem)

	if err := regs.SetVectorTable(0x20000080); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mem.Peek(Base + VTOR_Offset); got != 0x20000080 {
		t.Errorf("expected VTOR 0x20000080, got %#x", got)
	}
	if err := regs.SetVectorTable(0x20000040); !errors.Is(err, ErrVectorTable) {
		t.Errorf("expected ErrVectorTable, got %v", err)
	}
}

func TestSysTick(t *testing.T) {
	mem := mmio.NewMemory()
	regs := New(mem)
	mem.Poke(Base+SYST_CVR_Offset, 0x1234)

	if err := regs.StartSysTick(1 << 24); !errors.Is(err, ErrReload) {
		t.Errorf("expected ErrReload, got %v", err)
	}
	if err := regs.StartSysTick(999); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := mem.Peek(Base + SYST_RVR_Offset); got != 999 {
		t.Errorf("expected reload 999, got %d", got)
	}
	if got := mem.Peek(Base + SYST_CVR_Offset); got != 0 {
		t.Errorf("expected current value cleared, got %#x", got)
	}
	if got := mem.Peek(Base + SYST_CSR_Offset); got != 0x7 {
		t.Errorf("expected CSR 0x7, got %#x", got)
	}
}

func TestHalt(t *testing.T) {
	mem := mmio.NewMemory()
	regs := New(mem)

	// The core only accepts control writes carrying the debug key
	mem.OnWrite(Base+DHCSR_Offset, func(stored, written uint32) uint32 {
		if DebugKey(written>>DHCSR_DBGKEY_Pos) != DebugKeyWrite {
			return stored
		}
		v := written & 0xFFFF
		if v&DHCSR_C_HALT_Msk != 0 {
			v |= DHCSR_S_HALT_Msk
		}
		return v
	})

	if halted, _ := regs.Halted(); halted {
		t.Fatalf("expected running core")
	}
	if err := regs.Halt(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if halted, _ := regs.Halted(); !halted {
		t.Errorf("expected halted core")
	}
}

func TestEnableTrace(t *testing.T) {
	mem := mmio.NewMemory()
	regs := New(mem)
	mem.Poke(Base+DEMCR_Offset, DEMCR_VC_CORERESET_Msk)

	if err := regs.EnableTrace(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mem.Peek(Base + DEMCR_Offset); got != DEMCR_VC_CORERESET_Msk|DEMCR_TRCENA_Msk {
		t.Errorf("unexpected DEMCR %#x", got)
	}
}
