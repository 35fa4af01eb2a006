package endo

import (
	"github.com/reusee/endo/dna"
)

// ParseTemplate consumes a template from the front of d. It returns
// ErrFinish if d runs out first.
func ParseTemplate(d *dna.DNA, emit RNASink) (Template, error) {
	var t Template
	literal := func(b dna.Base) {
		t = append(t, TemplateItem{
			Op:   TplBase,
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

		b, ok = d.Pop()
		if !ok {
			return nil, ErrFinish
		}
		switch b {
		case dna.C:
			literal(dna.P)
			continue

		case dna.F, dna.P:
			level, err := decodeNat(d)
			if err != nil {
				return nil, err
			}
			n, err := decodeNat(d)
			if err != nil {
				return nil, err
			}
			t = append(t, TemplateItem{
				Op:    TplRef,
				N:     n,
				Level: level,
			})
			continue
		}

		b, ok = d.Pop()
		if !ok {
			return nil, ErrFinish
		}
		switch b {
		case dna.C, dna.F:
			return t, nil
		case dna.P:
			n, err := decodeNat(d)
			if err != nil {
				return nil, err
			}
			t = append(t, TemplateItem{
				Op: TplLen,
				N:  n,
			})
		case dna.I:
			emitRNA(d, emit)
		}
	}
}
