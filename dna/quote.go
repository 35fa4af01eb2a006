package dna

// Quote maps I to C, C to F, F to P and P to IC.
func Quote(d DNA) DNA {
	var b Builder
	for _, base := range d.All() {
		switch base {
		case I:
			b.Append(C)
		case C:
			b.Append(F)
		case F:
			b.Append(P)
		case P:
			b.Append(I)
			b.Append(C)
		}
	}
	return b.DNA()
}

// Protect applies Quote level times.
func Protect(level int, d DNA) DNA {
	for range level {
		if d.Len() == 0 {
			break
		}
		d = Quote(d)
	}
	return d
}

// EncodeNat encodes n little-endian, I for a clear bit and C for a set bit,
// terminated by P.
func EncodeNat(n int) DNA {
	var b Builder
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			b.Append(C)
		} else {
			b.Append(I)
		}
	}
	b.Append(P)
	return b.DNA()
}
