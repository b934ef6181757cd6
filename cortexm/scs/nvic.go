package scs

// Interrupt is an external interrupt number as used by the NVIC, not an
// exception number.
type Interrupt uint8

func (i Interrupt) word() int {
	return int(i >> 5)
}

func (i Interrupt) bit() uint32 {
	return 1 << (i & 0x1F)
}

// EnableIRQ enables interrupt i.
func (r *Registers) EnableIRQ(i Interrupt) error {
	return r.ISER[i.word()].Store(ISER(i.bit()))
}

// DisableIRQ disables interrupt i.
func (r *Registers) DisableIRQ(i Interrupt) error {
	return r.ICER[i.word()].Store(ICER(i.bit()))
}

// IRQEnabled reports whether interrupt i is enabled.
func (r *Registers) IRQEnabled(i Interrupt) (bool, error) {
	v, err := r.ISER[i.word()].Load()
	return uint32(v)&i.bit() != 0, err
}

// SetPendingIRQ marks interrupt i pending.
func (r *Registers) SetPendingIRQ(i Interrupt) error {
	return r.ISPR[i.word()].Store(ISPR(i.bit()))
}

// ClearPendingIRQ removes the pending state of interrupt i.
func (r *Registers) ClearPendingIRQ(i Interrupt) error {
	return r.ICPR[i.word()].Store(ICPR(i.bit()))
}

// IRQActive reports whether interrupt i is active.
func (r *Registers) IRQActive(i Interrupt) (bool, error) {
	v, err := r.IABR[i.word()].Load()
	return uint32(v)&i.bit() != 0, err
}

// Priority returns the priority of interrupt i.
func (r *Registers) Priority(i Interrupt) (Priority, error) {
	v, err := r.IPR[i>>2].Load()
	if err != nil {
		return 0, err
	}
	switch i & 0x3 {
	case 0:
		return v.GetPRI_N0(), nil
	case 1:
		return v.GetPRI_N1(), nil
	case 2:
		return v.GetPRI_N2(), nil
	default:
		return v.GetPRI_N3(), nil
	}
}

// SetPriority sets the priority of interrupt i. Only the implemented upper
// bits of the priority are retained by the hardware.
func (r *Registers) SetPriority(i Interrupt, priority Priority) error {
	return r.IPR[i>>2].Modify(func(v *IPR) {
		switch i & 0x3 {
		case 0:
			v.SetPRI_N0(priority)
		case 1:
			v.SetPRI_N1(priority)
		case 2:
			v.SetPRI_N2(priority)
		default:
			v.SetPRI_N3(priority)
		}
	})
}

// TriggerIRQ pends interrupt i through the software trigger register.
func (r *Registers) TriggerIRQ(i Interrupt) error {
	var stir STIR
	stir.SetINTID(InterruptID(i))
	return r.STIR.Store(stir)
}
