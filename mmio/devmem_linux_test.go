//go:build linux

package mmio

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDevMemFile(t *testing.T) {
	// Back the mapping with a regular file standing in for /dev/mem
	path := filepath.Join(t.TempDir(), "mem")
	buf := make([]byte, 1<<16)
	binary.LittleEndian.PutUint32(buf[0x14:], 0x410FC270)
	if err := os.WriteFile(path, buf, 0600); err != nil {
		t.Fatal(err)
	}

	d, err := OpenFile(path, 0x10, 0x20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer d.Close()

	v, err := d.Read32(0x14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0x410FC270 {
		t.Errorf("expected %#x, got %#x", 0x410FC270, v)
	}

	if err = d.Write32(0x2C, 0xA5A5A5A5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ = d.Read32(0x2C); v != 0xA5A5A5A5 {
		t.Errorf("expected %#x, got %#x", 0xA5A5A5A5, v)
	}

	if _, err = d.Read32(0x30); !errors.Is(err, ErrOutOfMapping) {
		t.Errorf("expected ErrOutOfMapping, got %v", err)
	}
	if _, err = d.Read32(0x12); !errors.Is(err, ErrUnaligned) {
		t.Errorf("expected ErrUnaligned, got %v", err)
	}

	if err = d.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err = d.Read32(0x14); !errors.Is(err, ErrReleased) {
		t.Errorf("expected ErrReleased, got %v", err)
	}
}
