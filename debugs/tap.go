package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/endo/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Tap opens a starlark REPL on stdin with globals bound.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: what,
		}
		repl.REPLOptions(fileOptions, thread, toStringDict(globals))
	}
}

// Eval evaluates one starlark expression with globals bound.
type Eval func(ctx context.Context, expr string, globals map[string]any) (starlark.Value, error)

func (Module) Eval(
	logger logs.Logger,
) Eval {
	return func(ctx context.Context, expr string, globals map[string]any) (starlark.Value, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		thread := &starlark.Thread{
			Name: "eval",
		}
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel(context.Cause(ctx).Error())
		})
		defer stop()

		value, err := starlark.EvalOptions(fileOptions, thread, "<eval>", expr, toStringDict(globals))
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		logger.DebugContext(ctx, "eval",
			"expr", expr,
			"value", value.String(),
		)
		return value, nil
	}
}
