package endo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/reusee/endo/dna"
	"github.com/reusee/endo/logs"
	"github.com/reusee/endo/procs"
)

// Machine owns the DNA of one program run.
type Machine struct {
	DNA      dna.DNA
	Emit     RNASink
	Strict   bool
	MaxSteps int
	Logger   logs.Logger

	Steps   int
	Matches int
	Emitted int
}

func (m *Machine) emit(chunk dna.DNA) {
	m.Emitted++
	if m.Emit != nil {
		m.Emit(chunk)
	}
}

func (m *Machine) logger() logs.Logger {
	if m.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return m.Logger
}

// Step runs one parse, parse, match-replace cycle. It returns ErrFinish when
// the program ends. A pattern that does not match is not an error; the
// parsed pattern and template stay consumed.
func (m *Machine) Step() error {
	p, err := ParsePattern(&m.DNA, m.emit)
	if err != nil {
		return err
	}
	t, err := ParseTemplate(&m.DNA, m.emit)
	if err != nil {
		return err
	}
	matched, err := MatchReplace(&m.DNA, p, t, m.Strict)
	if err != nil {
		return err
	}
	m.Steps++
	if matched {
		m.Matches++
	}

	if logger := m.logger(); logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.Debug("step",
			"n", m.Steps,
			"pattern", p,
			"template", t,
			"matched", matched,
			"dna", m.DNA.Len(),
		)
	}

	return nil
}

// Run steps until the program ends, which returns nil. It also stops on
// context cancellation, on reaching MaxSteps when positive, and on errors
// from Step.
func (m *Machine) Run(ctx context.Context) error {
	logger := m.logger()
	logger.InfoContext(ctx, "start",
		"dna", m.DNA.Len(),
	)

	var running procs.Func[*Machine]
	running = func(m *Machine) (procs.Proc[*Machine], error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if m.MaxSteps > 0 && m.Steps >= m.MaxSteps {
			return nil, ErrStepLimit
		}
		if err := m.Step(); err != nil {
			if errors.Is(err, ErrFinish) {
				// halted
				return nil, nil
			}
			return nil, err
		}
		return running, nil
	}

	err := procs.Drive[*Machine](m, running)

	args := []any{
		"steps", m.Steps,
		"matches", m.Matches,
		"rna", m.Emitted,
		"dna", m.DNA.Len(),
	}
	if err != nil {
		logger.WarnContext(ctx, "stopped", append(args, "error", err)...)
		return logs.WrapSpan(ctx, err)
	}
	logger.InfoContext(ctx, "finished", args...)
	return nil
}
