package endoconfigs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/endo/configs"
	"github.com/reusee/endo/dna"
	"github.com/reusee/endo/modes"
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
			}, Schema)
		},
	)
}

func TestSettingsFromConfig(t *testing.T) {
	testScope(t, `
max_steps: 100
strict_groups: true
rna_buffer: 8
prefix: "IIPIFFCPICICIICPIICIPPPICIIC"
`).Call(func(
		maxSteps MaxSteps,
		strict StrictGroups,
		buffer RNABuffer,
		prefix Prefix,
	) {
		if maxSteps != 100 {
			t.Fatalf("got %v", maxSteps)
		}
		if !strict {
			t.Fatal("should be strict")
		}
		if buffer != 8 {
			t.Fatalf("got %v", buffer)
		}
		if got := dna.DNA(prefix).String(); got != "IIPIFFCPICICIICPIICIPPPICIIC" {
			t.Fatalf("got %s", got)
		}
	})
}

func TestSettingsDefaults(t *testing.T) {
	testScope(t, ``).Call(func(
		maxSteps MaxSteps,
		strict StrictGroups,
		buffer RNABuffer,
		prefix Prefix,
	) {
		if maxSteps != 0 || strict || buffer != 0 {
			t.Fatalf("got %v %v %v", maxSteps, strict, buffer)
		}
		if dna.DNA(prefix).Len() != 0 {
			t.Fatal("should be empty")
		}
	})
}

func TestFlagOverridesConfig(t *testing.T) {
	*maxStepsFlag = 7
	defer func() {
		*maxStepsFlag = 0
	}()
	testScope(t, `max_steps: 100`).Call(func(
		maxSteps MaxSteps,
	) {
		if maxSteps != 7 {
			t.Fatalf("got %v", maxSteps)
		}
	})
}

func TestSchemaRejectsBadPrefix(t *testing.T) {
	loader := configs.NewLoaderFromSources([]configs.Source{
		{
			Name:    "endo.cue",
			Content: []byte(`prefix: "ABC"`),
		},
	}, Schema)
	var s string
	if err := loader.AssignFirst("prefix", &s); err == nil {
		t.Fatal("should error")
	}
}
