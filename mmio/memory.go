package mmio

import (
	"sync"
)

// ReadHook computes the value returned for a read given the stored word.
type ReadHook func(stored uint32) uint32

// WriteHook computes the word to store given the stored word and the written
// value. It can model write-one-to-clear or write-ignored registers.
type WriteHook func(stored, written uint32) uint32

// Memory is a sparse simulated address space. Unwritten words read as zero.
// It is safe for concurrent use.
type Memory struct {
	mu     sync.Mutex
	words  map[Address]uint32
	reads  map[Address]ReadHook
	writes map[Address]WriteHook
}

func NewMemory() *Memory {
	return &Memory{
		words:  map[Address]uint32{},
		reads:  map[Address]ReadHook{},
		writes: map[Address]WriteHook{},
	}
}

func (m *Memory) Read32(addr Address) (uint32, error) {
	if !addr.Aligned() {
		return 0, ErrUnaligned
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	v := m.words[addr]
	if hook, ok := m.reads[addr]; ok {
		v = hook(v)
	}
	return v, nil
}

func (m *Memory) Write32(addr Address, value uint32) error {
	if !addr.Aligned() {
		return ErrUnaligned
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if hook, ok := m.writes[addr]; ok {
		value = hook(m.words[addr], value)
	}
	m.words[addr] = value
	return nil
}

// Poke sets the stored word at addr without running any write hook.
func (m *Memory) Poke(addr Address, value uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.words[addr] = value
}

// Peek returns the stored word at addr without running any read hook.
func (m *Memory) Peek(addr Address) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.words[addr]
}

// OnRead installs a hook that is consulted on every read of addr.
func (m *Memory) OnRead(addr Address, hook ReadHook) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads[addr] = hook
}

// OnWrite installs a hook that is consulted on every write of addr.
func (m *Memory) OnWrite(addr Address, hook WriteHook) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes[addr] = hook
}
