package regmap

import (
	"fmt"
	"strings"
)

// Access is the documented access mode of a register or field.
type Access int

const (
	// AccessInherit defers to the containing register (or peripheral default).
	AccessInherit Access = iota
	ReadOnly
	WriteOnly
	ReadWrite
	WriteOnce
	ReadWriteOnce
)

// ParseAccess accepts SVD access names ("read-only", "writeOnce", ...) and the
// short annotations RO, WO, RW, W0 (write-once) and R0 (read, write-once).
func ParseAccess(s string) (Access, error) {
	switch strings.TrimSpace(s) {
	case "":
		return AccessInherit, nil
	case "read-only", "RO":
		return ReadOnly, nil
	case "write-only", "WO":
		return WriteOnly, nil
	case "read-write", "RW":
		return ReadWrite, nil
	case "writeOnce", "W0":
		return WriteOnce, nil
	case "read-writeOnce", "R0":
		return ReadWriteOnce, nil
	default:
		return AccessInherit, fmt.Errorf("%w: %q", ErrUnknownAccess, s)
	}
}

// Readable reports whether the value can be read back.
func (a Access) Readable() bool {
	return a == ReadOnly || a == ReadWrite || a == ReadWriteOnce
}

// Writable reports whether the value can be written.
func (a Access) Writable() bool {
	return a == WriteOnly || a == ReadWrite || a == WriteOnce || a == ReadWriteOnce
}

// Or returns a unless it is AccessInherit, in which case it returns fallback.
func (a Access) Or(fallback Access) Access {
	if a == AccessInherit {
		return fallback
	}
	return a
}

// String returns the SVD name of the access mode.
func (a Access) String() string {
	switch a {
	case ReadOnly:
		return "read-only"
	case WriteOnly:
		return "write-only"
	case ReadWrite:
		return "read-write"
	case WriteOnce:
		return "writeOnce"
	case ReadWriteOnce:
		return "read-writeOnce"
	default:
		return "inherit"
	}
}

// Short returns the short annotation used in register map comments.
func (a Access) Short() string {
	switch a {
	case ReadOnly:
		return "RO"
	case WriteOnly:
		return "WO"
	case ReadWrite:
		return "RW"
	case WriteOnce:
		return "W0"
	case ReadWriteOnce:
		return "R0"
	default:
		return "--"
	}
}
