package mmio

import (
	"fmt"
	"sync"

	"golang.org/x/exp/slices"
)

// Arbiter hands out exclusive leases over address windows of a Bus. A Lease is
// the token proving its holder is the only one accessing the window.
type Arbiter struct {
	mu     sync.Mutex
	bus    Bus
	leases []*Lease
}

func NewArbiter(bus Bus) *Arbiter {
	return &Arbiter{bus: bus}
}

// Claim leases [base, base+size). It fails with ErrClaimed if the window
// overlaps a lease that has not been released.
func (a *Arbiter) Claim(name string, base Address, size uint32) (*Lease, error) {
	if size == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyWindow)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	end := uint64(base) + uint64(size)
	for _, other := range a.leases {
		if uint64(base) < other.end() && uint64(other.base) < end {
			return nil, fmt.Errorf("%s: %w by %s [%s, %#x)", name, ErrClaimed, other.name, other.base, other.end())
		}
	}

	lease := &Lease{
		arbiter: a,
		name:    name,
		base:    base,
		size:    size,
	}
	a.leases = append(a.leases, lease)
	return lease, nil
}

// Leases returns the names of all active leases.
func (a *Arbiter) Leases() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	names := make([]string, len(a.leases))
	for i, lease := range a.leases {
		names[i] = lease.name
	}
	return names
}

func (a *Arbiter) release(lease *Lease) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if i := slices.Index(a.leases, lease); i >= 0 {
		a.leases = slices.Delete(a.leases, i, i+1)
	}
}

// Lease is an exclusive claim on an address window. It implements Bus and
// rejects accesses outside of its window.
type Lease struct {
	arbiter  *Arbiter
	name     string
	base     Address
	size     uint32
	mu       sync.RWMutex
	released bool
}

func (l *Lease) Name() string {
	return l.name
}

func (l *Lease) Base() Address {
	return l.base
}

func (l *Lease) Size() uint32 {
	return l.size
}

func (l *Lease) end() uint64 {
	return uint64(l.base) + uint64(l.size)
}

func (l *Lease) check(addr Address) error {
	if l.released {
		return fmt.Errorf("%s: %w", l.name, ErrReleased)
	}
	if addr < l.base || uint64(addr)+4 > l.end() {
		return fmt.Errorf("%s: %w: %s", l.name, ErrOutOfWindow, addr)
	}
	return nil
}

func (l *Lease) Read32(addr Address) (uint32, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err := l.check(addr); err != nil {
		return 0, err
	}
	return l.arbiter.bus.Read32(addr)
}

func (l *Lease) Write32(addr Address, value uint32) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err := l.check(addr); err != nil {
		return err
	}
	return l.arbiter.bus.Write32(addr, value)
}

// Release returns the window to the arbiter. Further accesses through the
// lease fail with ErrReleased.
func (l *Lease) Release() {
	l.mu.Lock()
	if l.released {
		l.mu.Unlock()
		return
	}
	l.released = true
	l.mu.Unlock()

	l.arbiter.release(l)
}
