package generator

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// initialisms are kept upper case in generated identifiers.
var initialisms = map[string]bool{
	"ahb":   true,
	"ap":    true,
	"apb":   true,
	"axi":   true,
	"dp":    true,
	"hprot": true,
	"id":    true,
	"jtag":  true,
	"kb":    true,
	"pc":    true,
	"ro":    true,
	"rw":    true,
}

// Identifier turns an SVD name such as "priv_rw_unpriv_ro" or "16_bytes" into
// a Go identifier fragment ("PrivRWUnprivRO", "16Bytes").
func Identifier(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	caser := cases.Title(language.Und)
	var b strings.Builder
	for _, part := range parts {
		if initialisms[strings.TrimRightFunc(strings.ToLower(part), unicode.IsDigit)] {
			b.WriteString(strings.ToUpper(part))
		} else {
			b.WriteString(caser.String(part))
		}
	}
	return b.String()
}

// EnumConstName returns the name of the constant generated for an enumerated
// value, e.g. RegionSize16Bytes.
func EnumConstName(enum, value string) string {
	return enum + Identifier(value)
}

// RangeMaxName returns the name of the constant holding the maximum of a range.
func RangeMaxName(rng string) string {
	return rng + "Max"
}

// PosName returns the name of the bit offset constant of a field.
func PosName(register, field string) string {
	return register + "_" + field + "_Pos"
}

// MskName returns the name of the mask constant of a field.
func MskName(register, field string) string {
	return register + "_" + field + "_Msk"
}
