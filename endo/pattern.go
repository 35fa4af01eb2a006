package endo

import (
	"github.com/reusee/endo/dna"
)

// RNASink receives RNA chunks as the parsers decode them.
type RNASink func(chunk dna.DNA)

const rnaChunkSize = 7

// emitRNA passes the next chunk to emit and removes it from d.
func emitRNA(d *dna.DNA, emit RNASink) {
	chunk := d.Subseq(0, rnaChunkSize)
	d.Drop(rnaChunkSize)
	if emit != nil {
		emit(chunk)
	}
}

// ParsePattern consumes a pattern from the front of d. It returns ErrFinish
// if d runs out first, leaving d partially consumed.
func ParsePattern(d *dna.DNA, emit RNASink) (Pattern, error) {
	var p Pattern
	level := 0
	literal := func(b dna.Base) {
		p = append(p, PatternItem{
			Op:   PatBase,
			Base: b,
		})
	}

	for {
		b, ok := d.Pop()
		if !ok {
			return nil, ErrFinish
		}
		switch b {
		case dna.C:
			literal(dna.I)
			continue
		case dna.F:
			literal(dna.C)
			continue
		case dna.P:
			literal(dna.F)
			continue
		}

		// I
		b, ok = d.Pop()
		if !ok {
			return nil, ErrFinish
		}
		switch b {
		case dna.C:
			literal(dna.P)
			continue

		case dna.P:
			n, err := decodeNat(d)
			if err != nil {
				return nil, err
			}
			p = append(p, PatternItem{
				Op: PatSkip,
				N:  n,
			})
			continue

		case dna.F:
			// one base is skipped before the constant
			d.Drop(1)
			p = append(p, PatternItem{
				Op:     PatSearch,
				Search: consts(d),
			})
			continue
		}

		// II
		b, ok = d.Pop()
		if !ok {
			return nil, ErrFinish
		}
		switch b {
		case dna.P:
			level++
			p = append(p, PatternItem{
				Op: PatOpen,
			})
		case dna.C, dna.F:
			if level == 0 {
				return p, nil
			}
			level--
			p = append(p, PatternItem{
				Op: PatClose,
			})
		case dna.I:
			emitRNA(d, emit)
		}
	}
}

// consts decodes the needle of a search. It stops before the first I that is
// not followed by C, putting back what it looked at.
func consts(d *dna.DNA) dna.DNA {
	var ret dna.Builder
	for {
		b, ok := d.Pop()
		if !ok {
			return ret.DNA()
		}
		switch b {
		case dna.C:
			ret.Append(dna.I)
		case dna.F:
			ret.Append(dna.C)
		case dna.P:
			ret.Append(dna.F)
		case dna.I:
			next, ok := d.Pop()
			if !ok {
				d.Prepend(dna.I)
				return ret.DNA()
			}
			if next != dna.C {
				d.Prepend(next)
				d.Prepend(dna.I)
				return ret.DNA()
			}
			ret.Append(dna.P)
		}
	}
}
