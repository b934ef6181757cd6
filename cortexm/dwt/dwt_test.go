package dwt

import (
	"errors"
	"testing"

	"omibyte.io/coresight/internal/regtest"
	"omibyte.io/coresight/mmio"
)

func TestGenerated(t *testing.T) {
	p := regtest.Load(t, "DWT")
	regtest.Parse(t).CheckConstants(t, p)
	regtest.CheckOverlay(t, p, Overlay{})
	regtest.CheckHandles(t, p, New(mmio.NewMemory()), 0xE0001000)
}

func newRegisters() (*mmio.Memory, *Registers) {
	mem := mmio.NewMemory()
	mem.Poke(Base+CTRL_Offset, CTRL_Reset)
	return mem, New(mem)
}

func TestCycleCounter(t *testing.T) {
	mem, regs := newRegisters()
	mem.Poke(Base+CYCCNT_Offset, 0xdeadbeef)

	if err := regs.EnableCycleCounter(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mem.Peek(Base + CTRL_Offset); got != CTRL_Reset|CTRL_CYCCNTENA_Msk {
		t.Errorf("expected CTRL %#x, got %#x", CTRL_Reset|CTRL_CYCCNTENA_Msk, got)
	}

	mem.Poke(Base+CYCCNT_Offset, 1234)
	count, err := regs.CycleCount()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1234 {
		t.Errorf("expected 1234 cycles, got %d", count)
	}

	mem.Poke(Base+CTRL_Offset, CTRL_NOCYCCNT_Msk)
	if err = regs.EnableCycleCounter(); !errors.Is(err, ErrNoCounter) {
		t.Errorf("expected ErrNoCounter, got %v", err)
	}
}

func TestComparator(t *testing.T) {
	mem, regs := newRegisters()

	tests := []struct {
		n      int
		offset mmio.Address
		err    error
	}{
		{n: 0, offset: COMP0_Offset},
		{n: 1, offset: COMP1_Offset},
		{n: 3, offset: COMP3_Offset},
		{n: 4, err: ErrComparator},
		{n: -1, err: ErrComparator},
	}

	for _, test := range tests {
		c, err := regs.Comparator(test.n)
		if test.err != nil {
			if !errors.Is(err, test.err) {
				t.Errorf("%d: expected %v, got %v", test.n, test.err, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%d: unexpected error: %v", test.n, err)
		}
		if c.COMP.Address() != Base+test.offset {
			t.Errorf("%d: COMP at %s", test.n, c.COMP.Address())
		}
		if c.MASK.Address() != Base+test.offset+4 || c.FUNCTION.Address() != Base+test.offset+8 {
			t.Errorf("%d: MASK at %s, FUNCTION at %s", test.n, c.MASK.Address(), c.FUNCTION.Address())
		}
	}

	c, _ := regs.Comparator(2)
	if err := c.Watch(0x20001000, 4, FunctionWatchWrite); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mem.Peek(Base + COMP2_Offset); got != 0x20001000 {
		t.Errorf("expected COMP2 0x20001000, got %#x", got)
	}
	if got := mem.Peek(Base + MASK2_Offset); got != 4 {
		t.Errorf("expected MASK2 4, got %d", got)
	}
	if got := FUNCTION2(mem.Peek(Base + FUNCTION2_Offset)); got.GetFUNCTION() != FunctionWatchWrite {
		t.Errorf("expected FUNCTION2 %#x, got %#x", FunctionWatchWrite, got.GetFUNCTION())
	}

	if err := c.Watch(0, MaxMaskBits+1, FunctionWatchRead); !errors.Is(err, ErrMask) {
		t.Errorf("expected ErrMask, got %v", err)
	}

	mem.Poke(Base+FUNCTION2_Offset, FUNCTION0_MATCHED_Msk|uint32(FunctionWatchWrite))
	if matched, _ := c.Matched(); !matched {
		t.Errorf("expected a match")
	}
	if err := c.Disable(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mem.Peek(Base + FUNCTION2_Offset); got != 0 {
		t.Errorf("expected FUNCTION2 0, got %#x", got)
	}
}

func TestComparatorCount(t *testing.T) {
	tests := []struct {
		numcomp uint32
		want    int
	}{
		{numcomp: 0, want: 0},
		{numcomp: 2, want: 2},
		{numcomp: 4, want: 4},
		{numcomp: 8, want: MaxComparators},
		{numcomp: 15, want: MaxComparators},
	}

	for _, test := range tests {
		mem, regs := newRegisters()
		mem.Poke(Base+CTRL_Offset, test.numcomp<<CTRL_NUMCOMP_Pos)

		n, err := regs.Comparators()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != test.want {
			t.Errorf("NUMCOMP %d: expected %d comparators, got %d", test.numcomp, test.want, n)
		}

		// Comparators past the register map are never aliased onto COMP3
		for i := n; i < 16; i++ {
			if c, err := regs.Comparator(i); !errors.Is(err, ErrComparator) {
				t.Errorf("NUMCOMP %d: comparator %d at %s, error %v", test.numcomp, i, c.COMP.Address(), err)
			}
		}
	}
}

func TestUnlock(t *testing.T) {
	tests := []struct {
		name string
		lsr  uint32
		lar  uint32
	}{
		{"locked", LSR_SLI_Msk | LSR_SLK_Msk, uint32(LockKeyUnlock)},
		{"unlocked", LSR_SLI_Msk, 0},
		{"no lock", 0, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mem, regs := newRegisters()
			mem.Poke(Base+LSR_Offset, test.lsr)
			if err := regs.Unlock(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := mem.Peek(Base + LAR_Offset); got != test.lar {
				t.Errorf("expected LAR %#x, got %#x", test.lar, got)
			}
		})
	}
}
