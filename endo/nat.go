package endo

import (
	"math"
	"math/bits"

	"github.com/reusee/endo/dna"
)

// decodeNat reads a little-endian natural: I or F for a clear bit, C for a
// set bit, P to terminate. Values past the width of int saturate.
func decodeNat(d *dna.DNA) (int, error) {
	var n uint
	shift := 0
	saturated := false
	for {
		b, ok := d.Pop()
		if !ok {
			return 0, ErrFinish
		}
		switch b {
		case dna.P:
			if saturated || n > math.MaxInt {
				return math.MaxInt, nil
			}
			return int(n), nil
		case dna.C:
			if shift >= bits.UintSize {
				saturated = true
			} else {
				n |= 1 << shift
			}
		}
		shift++
	}
}
