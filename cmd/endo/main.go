package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/reusee/dscope"
	"github.com/reusee/endo/cmds"
	"github.com/reusee/endo/debugs"
	"github.com/reusee/endo/endo"
	"github.com/reusee/endo/logs"
	"github.com/reusee/endo/modes"
	"github.com/reusee/endo/rnas"
)

var (
	filePath = cmds.Var[string]("-file", "read DNA from this file instead of stdin")
	quiet    = cmds.Switch("-quiet", "do not print RNA chunks")
	colored  = cmds.Switch("-color", "colorize printed RNA")
	digest   = cmds.Switch("-digest", "print the blake3 digest of the RNA stream")
	rnaOut   = cmds.Var[string]("-rna-out", "record RNA chunks to this file as CBOR")
	doTap    = cmds.Switch("-tap", "open a starlark REPL on the halted machine")
	evals    = cmds.Collect[string]("-eval", "print a starlark expression evaluated on the halted machine")
)

func main() {
	cmds.Execute(os.Args[1:])

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	exitCode := execute(ctx, dscope.New(
		new(Module),
		modes.ForProduction(),
	), os.Stdout)

	cancel()
	os.Exit(exitCode)
}

// execute loads, runs and reports on one program, returning the exit code.
func execute(ctx context.Context, scope dscope.Scope, stdout io.Writer) int {
	exitCode := 0
	scope.Call(func(
		logger logs.Logger,
		load endo.Load,
		run endo.Run,
		tap debugs.Tap,
		eval debugs.Eval,
	) {

		input, err := openInput()
		ce(err)
		d, err := load(input)
		ce(errors.Join(err, input.Close()))

		var consumers []rnas.Consumer
		if !*quiet {
			consumers = append(consumers, rnas.NewPrinter(stdout, *colored).Consume)
		}
		var sum *rnas.Digest
		if *digest {
			sum = rnas.NewDigest()
			consumers = append(consumers, sum.Consume)
		}
		if *rnaOut != "" {
			f, err := os.Create(*rnaOut)
			ce(err)
			defer func() {
				ce(f.Close())
			}()
			consumers = append(consumers, rnas.NewRecorder(f).Consume)
		}

		m, err := run(ctx, d, rnas.Tee(consumers...))
		if err != nil {
			logger.ErrorContext(ctx, "run", "error", err)
			exitCode = 1
		}

		if sum != nil {
			fmt.Fprintf(stdout, "digest %s %d\n", sum.Sum(), sum.Chunks())
		}

		globals := debugs.MachineGlobals(m)
		for _, expr := range *evals {
			value, err := eval(ctx, expr, globals)
			if err != nil {
				logger.ErrorContext(ctx, "eval", "expr", expr, "error", err)
				exitCode = 1
				continue
			}
			fmt.Fprintf(stdout, "%s = %s\n", expr, value)
		}
		if *doTap {
			tap(ctx, "machine", globals)
		}
	})

	return exitCode
}

func openInput() (io.ReadCloser, error) {
	if *filePath != "" {
		return os.Open(*filePath)
	}
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return nil, fmt.Errorf("no input: pass -file or pipe DNA to stdin")
	}
	return io.NopCloser(os.Stdin), nil
}

func ce(err error) {
	if err != nil {
		panic(err)
	}
}
