package endoconfigs

import (
	"github.com/reusee/endo/cmds"
	"github.com/reusee/endo/configs"
	"github.com/reusee/endo/dna"
	"github.com/reusee/endo/vars"
)

// MaxSteps bounds the number of interpreter steps. Zero means unbounded.
type MaxSteps int

var maxStepsFlag = cmds.Var[int]("-max-steps", "stop after this many steps, 0 for no limit")

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return MaxSteps(vars.FirstNonZero(
		*maxStepsFlag,
		configs.First[int](loader, "max_steps"),
	))
}

// StrictGroups makes a template reference to a group that never closed an
// error instead of the empty sequence.
type StrictGroups bool

var strictFlag = cmds.Switch("-strict", "fail on references to missing groups")

func (Module) StrictGroups(
	loader configs.Loader,
) StrictGroups {
	return StrictGroups(*strictFlag || configs.First[bool](loader, "strict_groups"))
}

// RNABuffer is the RNA channel capacity. Zero means unbounded.
type RNABuffer int

var rnaBufferFlag = cmds.Var[int]("-rna-buffer", "bound the RNA channel, 0 for unbounded")

func (Module) RNABuffer(
	loader configs.Loader,
) RNABuffer {
	return RNABuffer(vars.FirstNonZero(
		*rnaBufferFlag,
		configs.First[int](loader, "rna_buffer"),
	))
}

// Prefix is prepended to the loaded DNA.
type Prefix dna.DNA

var prefixFlag = cmds.Var[string]("-prefix", "prepend this DNA to the input")

func (Module) Prefix(
	loader configs.Loader,
) Prefix {
	return Prefix(dna.FromString(vars.FirstNonZero(
		*prefixFlag,
		configs.First[string](loader, "prefix"),
	)))
}
