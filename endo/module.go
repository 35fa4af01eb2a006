package endo

import (
	"context"
	"errors"
	"io"

	"github.com/reusee/dscope"
	"github.com/reusee/endo/dna"
	"github.com/reusee/endo/endoconfigs"
	"github.com/reusee/endo/logs"
	"github.com/reusee/endo/rnas"
)

type Module struct {
	dscope.Module
	Configs endoconfigs.Module
	Logs    logs.Module
}

// Load reads DNA and prepends the configured prefix.
type Load func(r io.Reader) (dna.DNA, error)

func (Module) Load(
	prefix endoconfigs.Prefix,
) Load {
	return func(r io.Reader) (dna.DNA, error) {
		d, err := dna.Read(r)
		if err != nil {
			return dna.DNA{}, err
		}
		ret := dna.DNA(prefix)
		ret.Concat(d)
		return ret, nil
	}
}

// Run executes d to completion, delivering RNA to consume in emission order
// from a separate goroutine. The returned machine holds the final state.
type Run func(ctx context.Context, d dna.DNA, consume rnas.Consumer) (*Machine, error)

func (Module) Run(
	logger logs.Logger,
	newSpan logs.NewSpan,
	maxSteps endoconfigs.MaxSteps,
	strict endoconfigs.StrictGroups,
	buffer endoconfigs.RNABuffer,
) Run {
	return func(ctx context.Context, d dna.DNA, consume rnas.Consumer) (*Machine, error) {
		ctx, _ = newSpan(ctx, "run")

		ch := rnas.NewChannel(int(buffer))
		consumed := make(chan error, 1)
		go func() {
			consumed <- rnas.Drain(ch, consume)
		}()

		m := &Machine{
			DNA:      d,
			Emit:     ch.Send,
			Strict:   bool(strict),
			MaxSteps: int(maxSteps),
			Logger:   logger,
		}
		err := m.Run(ctx)
		ch.Close()

		if consumeErr := <-consumed; consumeErr != nil {
			err = errors.Join(err, logs.WrapSpan(ctx, consumeErr))
		}
		return m, err
	}
}
