package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.Output = buf
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func(int) {}).Desc("QUX").Args("N"),
		}).Desc("BAZ"),
	}).Desc("FOO"))
	executor.PrintUsage()

	out := buf.String()
	for _, expected := range []string{
		"foo\tFOO",
		"  bar\tBAR",
		"  baz\tBAZ",
		"    qux <N>\tQUX",
		"print this usage",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("missing %q in:\n%s", expected, out)
		}
	}
}
