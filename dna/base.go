package dna

import "fmt"

type Base uint8

const (
	I Base = iota
	C
	F
	P
)

func (b Base) String() string {
	switch b {
	case I:
		return "I"
	case C:
		return "C"
	case F:
		return "F"
	case P:
		return "P"
	}
	return fmt.Sprintf("Base(%d)", uint8(b))
}

func (b Base) Byte() byte {
	return "ICFP"[b&3]
}

// ParseBase maps one of 'I', 'C', 'F', 'P' to its base.
func ParseBase(r rune) (Base, bool) {
	switch r {
	case 'I':
		return I, true
	case 'C':
		return C, true
	case 'F':
		return F, true
	case 'P':
		return P, true
	}
	return 0, false
}
