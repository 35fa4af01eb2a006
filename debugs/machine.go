package debugs

import (
	"github.com/reusee/endo/endo"
	"go.starlark.net/starlark"
)

// MachineGlobals exposes the counters and DNA of m. dna(start, end) returns a
// clamped slice of the current DNA as a string.
func MachineGlobals(m *endo.Machine) map[string]any {
	return map[string]any{
		"steps":   m.Steps,
		"matches": m.Matches,
		"rna":     m.Emitted,
		"dna_len": m.DNA.Len(),
		"dna": starlark.NewBuiltin("dna", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			start, end := 0, m.DNA.Len()
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "start?", &start, "end?", &end); err != nil {
				return nil, err
			}
			return starlark.String(m.DNA.Subseq(start, end).String()), nil
		}),
	}
}
