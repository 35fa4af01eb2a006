package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan annotates err with the span carried by ctx, if any.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	v, ok := ctx.Value(SpanKey).(Span)
	if !ok {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", v))
}
