package endo

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/endo/configs"
	"github.com/reusee/endo/dna"
	"github.com/reusee/endo/endoconfigs"
	"github.com/reusee/endo/modes"
	"github.com/reusee/endo/rnas"
)

func testScope(t *testing.T, config string) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoaderFromSources([]configs.Source{
				{
					Name:    "endo.cue",
					Content: []byte(config),
				},
			}, endoconfigs.Schema)
		},
	)
}

func TestModuleRun(t *testing.T) {
	testScope(t, `prefix: "III"`).Call(func(
		load Load,
		run Run,
	) {
		d, err := load(strings.NewReader("PIPIIIC\nIIC IIC"))
		if err != nil {
			t.Fatal(err)
		}
		if got := d.String(); got != "IIIPIPIIICIICIIC" {
			t.Fatalf("got %s", got)
		}

		var chunks []string
		m, err := run(t.Context(), d, func(chunk dna.DNA) error {
			chunks = append(chunks, chunk.String())
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
		if len(chunks) != 1 || chunks[0] != "PIPIIIC" {
			t.Fatalf("got %v", chunks)
		}
		if m.Steps != 1 || m.Emitted != 1 {
			t.Fatalf("got %d %d", m.Steps, m.Emitted)
		}
	})
}

func TestModuleRunBounded(t *testing.T) {
	testScope(t, `rna_buffer: 1`).Call(func(
		run Run,
	) {
		input := strings.Repeat("IIIPIPIIIC", 50) + "IICIIC"
		digest := rnas.NewDigest()
		var mu sync.Mutex
		n := 0
		_, err := run(t.Context(), dna.FromString(input), rnas.Tee(
			digest.Consume,
			func(chunk dna.DNA) error {
				mu.Lock()
				defer mu.Unlock()
				n++
				return nil
			},
		))
		if err != nil {
			t.Fatal(err)
		}
		if n != 50 || digest.Chunks() != 50 {
			t.Fatalf("got %d %d", n, digest.Chunks())
		}
	})
}

func TestModuleRunConsumerError(t *testing.T) {
	testScope(t, ``).Call(func(
		run Run,
	) {
		errFoo := errors.New("foo")
		input := strings.Repeat("IIIPIPIIIC", 3) + "IICIIC"
		m, err := run(t.Context(), dna.FromString(input), func(chunk dna.DNA) error {
			return errFoo
		})
		if !errors.Is(err, errFoo) {
			t.Fatalf("got %v", err)
		}
		// machine still runs to the end
		if m.Steps != 1 || m.Emitted != 3 {
			t.Fatalf("got %d %d", m.Steps, m.Emitted)
		}
	})
}

func TestModuleRunStepLimit(t *testing.T) {
	testScope(t, `max_steps: 3`).Call(func(
		run Run,
	) {
		m, err := run(t.Context(), dna.FromString(strings.Repeat("IICIIC", 10)), nil)
		if !errors.Is(err, ErrStepLimit) {
			t.Fatalf("got %v", err)
		}
		if m.Steps != 3 {
			t.Fatalf("got %d", m.Steps)
		}
	})
}
