package endo

import (
	"fmt"

	"github.com/reusee/endo/dna"
)

// Environment holds captured groups in the order they closed.
type Environment []dna.DNA

// Match runs p against d from the start. It returns the index just past the
// matched prefix and the captured groups.
func Match(p Pattern, d dna.DNA) (int, Environment, bool) {
	i := 0
	var env Environment
	var starts []int
	for _, item := range p {
		switch item.Op {

		case PatBase:
			b, ok := d.At(i)
			if !ok || b != item.Base {
				return 0, nil, false
			}
			i++

		case PatSkip:
			if item.N > d.Len()-i {
				return 0, nil, false
			}
			i += item.N

		case PatSearch:
			index, ok := d.Find(item.Search, i)
			if !ok {
				return 0, nil, false
			}
			// the cursor lands past the needle, not at its start
			i = index + item.Search.Len()

		case PatOpen:
			starts = append(starts, i)

		case PatClose:
			if len(starts) == 0 {
				panic(fmt.Errorf("unbalanced group close in pattern %s", p))
			}
			start := starts[len(starts)-1]
			starts = starts[:len(starts)-1]
			env = append(env, d.Subseq(start, i))

		default:
			panic(fmt.Errorf("bad pattern op: %d", item.Op))
		}
	}
	return i, env, true
}

// Replace builds the replacement for t. A reference to a group missing from
// env is the empty sequence, or ErrGroupIndex when strict.
func Replace(t Template, env Environment, strict bool) (dna.DNA, error) {
	group := func(n int) (dna.DNA, error) {
		if n < 0 || n >= len(env) {
			if strict {
				return dna.DNA{}, fmt.Errorf("%w: %d of %d", ErrGroupIndex, n, len(env))
			}
			return dna.DNA{}, nil
		}
		return env[n], nil
	}

	var r dna.Builder
	for _, item := range t {
		switch item.Op {

		case TplBase:
			r.Append(item.Base)

		case TplRef:
			g, err := group(item.N)
			if err != nil {
				return dna.DNA{}, err
			}
			r.Concat(dna.Protect(item.Level, g))

		case TplLen:
			g, err := group(item.N)
			if err != nil {
				return dna.DNA{}, err
			}
			r.Concat(dna.EncodeNat(g.Len()))

		default:
			panic(fmt.Errorf("bad template op: %d", item.Op))
		}
	}
	return r.DNA(), nil
}

// MatchReplace rewrites the prefix of d matched by p with the replacement
// built from t. d is left untouched when p does not match.
func MatchReplace(d *dna.DNA, p Pattern, t Template, strict bool) (bool, error) {
	end, env, ok := Match(p, *d)
	if !ok {
		return false, nil
	}
	r, err := Replace(t, env, strict)
	if err != nil {
		return false, err
	}
	r.Concat(d.Subseq(end, d.Len()))
	d.Assign(r)
	return true, nil
}
