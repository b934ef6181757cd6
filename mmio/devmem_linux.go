//go:build linux

package mmio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// DevMem is a Bus backed by a window of physical memory mapped from /dev/mem.
type DevMem struct {
	mu    sync.Mutex
	mem   []byte
	delta uint32
	base  Address
	size  uint32
}

// OpenDevMem maps [base, base+size) of physical memory.
func OpenDevMem(base Address, size uint32) (*DevMem, error) {
	return OpenFile("/dev/mem", base, size)
}

// OpenFile maps [base, base+size) of the file at path. The mapping starts at
// the page containing base.
func OpenFile(path string, base Address, size uint32) (*DevMem, error) {
	if size == 0 {
		return nil, ErrEmptyWindow
	}

	fd, err := unix.Open(path, unix.O_RDWR|unix.O_SYNC|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	// The descriptor can be closed once the memory is mapped
	defer unix.Close(fd)

	pageSize := uint32(unix.Getpagesize())
	pageBase := uint32(base) &^ (pageSize - 1)
	delta := uint32(base) - pageBase

	mem, err := unix.Mmap(fd, int64(pageBase), int(delta+size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %s at %s: %w", path, base, err)
	}

	return &DevMem{
		mem:   mem,
		delta: delta,
		base:  base,
		size:  size,
	}, nil
}

func (d *DevMem) word(addr Address) (*uint32, error) {
	if !addr.Aligned() {
		return nil, ErrUnaligned
	}
	if d.mem == nil {
		return nil, ErrReleased
	}
	if addr < d.base || uint64(addr)+4 > uint64(d.base)+uint64(d.size) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfMapping, addr)
	}
	off := d.delta + uint32(addr-d.base)
	return (*uint32)(unsafe.Pointer(&d.mem[off])), nil
}

func (d *DevMem) Read32(addr Address) (uint32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, err := d.word(addr)
	if err != nil {
		return 0, err
	}
	return atomic.LoadUint32(p), nil
}

func (d *DevMem) Write32(addr Address, value uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, err := d.word(addr)
	if err != nil {
		return err
	}
	atomic.StoreUint32(p, value)
	return nil
}

// Close unmaps the window.
func (d *DevMem) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.mem == nil {
		return nil
	}
	err := unix.Munmap(d.mem)
	d.mem = nil
	return err
}
