package main

import (
	"context"
	"fmt"
	"io"

	"github.com/reusee/auhui/logs"
	"github.com/reusee/auhui/styles"
	"github.com/reusee/auhui/traces"
)

// render writes the trace of source to w line by line, styled.
func render(
	ctx context.Context,
	tracer traces.Tracer,
	lineStyles styles.Styles,
	w io.Writer,
	source string,
) error {
	n := 0
	for line, err := range tracer.Lines(ctx, source) {
		if err != nil {
			return logs.WrapSpan(ctx, err)
		}
		if _, err := fmt.Fprintln(w, lineStyles.Line(line, tracer.Options)); err != nil {
			return logs.WrapSpan(ctx, err)
		}
		n++
	}
	if tracer.Logger != nil {
		tracer.Logger.DebugContext(ctx, "rendered",
			"lines", n,
		)
	}
	return nil
}
