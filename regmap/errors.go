package regmap

import "errors"

var (
	ErrOrder           = errors.New("registers out of offset order")
	ErrAlignment       = errors.New("register offset is not word aligned")
	ErrOverlap         = errors.New("overlapping definitions")
	ErrSpan            = errors.New("register map does not match its span")
	ErrFieldBounds     = errors.New("field exceeds register width")
	ErrComposition     = errors.New("invalid field composition")
	ErrRange           = errors.New("invalid value range")
	ErrStride          = errors.New("unsupported register array stride")
	ErrAlias           = errors.New("invalid register alias")
	ErrUnknownAccess   = errors.New("unknown access mode")
	ErrUnknownRegister = errors.New("unknown register")
	ErrUnknownField    = errors.New("unknown field")
	ErrValueTooWide    = errors.New("value does not fit field")
	ErrDuplicate       = errors.New("duplicate name")
)
