package mmio

// Bus performs 32-bit accesses to an address space.
type Bus interface {
	Read32(addr Address) (uint32, error)
	Write32(addr Address, value uint32) error
}

// Word is the set of register value types a handle can carry.
type Word interface {
	~uint32
}

// RO is a read-only register handle.
type RO[T Word] struct {
	bus  Bus
	addr Address
}

// NewRO binds a read-only register at addr.
func NewRO[T Word](bus Bus, addr Address) RO[T] {
	return RO[T]{bus: bus, addr: addr}
}

// Address returns the address the register is bound to.
func (r RO[T]) Address() Address {
	return r.addr
}

// Load reads the register.
func (r RO[T]) Load() (T, error) {
	v, err := r.bus.Read32(r.addr)
	return T(v), err
}

// WO is a write-only register handle. Write-once registers use it as well.
type WO[T Word] struct {
	bus  Bus
	addr Address
}

// NewWO binds a write-only register at addr.
func NewWO[T Word](bus Bus, addr Address) WO[T] {
	return WO[T]{bus: bus, addr: addr}
}

// Address returns the address the register is bound to.
func (r WO[T]) Address() Address {
	return r.addr
}

// Store writes value to the register.
func (r WO[T]) Store(value T) error {
	return r.bus.Write32(r.addr, uint32(value))
}

// RW is a read-write register handle.
type RW[T Word] struct {
	bus  Bus
	addr Address
}

// NewRW binds a read-write register at addr.
func NewRW[T Word](bus Bus, addr Address) RW[T] {
	return RW[T]{bus: bus, addr: addr}
}

// Address returns the address the register is bound to.
func (r RW[T]) Address() Address {
	return r.addr
}

// Load reads the register.
func (r RW[T]) Load() (T, error) {
	v, err := r.bus.Read32(r.addr)
	return T(v), err
}

// Store writes value to the register.
func (r RW[T]) Store(value T) error {
	return r.bus.Write32(r.addr, uint32(value))
}

// Modify performs a read-modify-write of the register. The sequence is not
// atomic with respect to other users of the bus.
func (r RW[T]) Modify(fn func(v *T)) error {
	v, err := r.Load()
	if err != nil {
		return err
	}
	fn(&v)
	return r.Store(v)
}
