package traces

import (
	"context"
	"iter"
	"strings"

	"github.com/reusee/auhui/grids"
	"github.com/reusee/auhui/logs"
)

type Tracer struct {
	Options Options
	Logger  logs.Logger
}

// Lines walks the program in source and yields its trace lines in order.
// A non-nil error is yielded at most once, as the last element.
func (t Tracer) Lines(ctx context.Context, source string) iter.Seq2[Line, error] {
	return func(yield func(Line, error) bool) {
		newWalker(ctx, t.Grid(source), t.Options, yield).walk(0)
	}
}

// Grid lays out source the way Lines reads it.
func (t Tracer) Grid(source string) *grids.Grid {
	return grids.Build(t.Options.source(source))
}

func (t Tracer) Trace(ctx context.Context, source string) (string, error) {
	var lines []string
	var bounded bool
	for line, err := range t.Lines(ctx, source) {
		if err != nil {
			return strings.Join(lines, "\n"), logs.WrapSpan(ctx, err)
		}
		switch line.Kind {
		case LineTooDeep, LineTruncated:
			bounded = true
		}
		lines = append(lines, Format(line, t.Options))
	}
	if t.Logger != nil {
		if bounded {
			t.Logger.WarnContext(ctx, "trace bounded",
				"max_depth", t.Options.MaxDepth,
				"max_lines", t.Options.MaxLines,
			)
		}
		t.Logger.DebugContext(ctx, "trace done",
			"lines", len(lines),
		)
	}
	return strings.Join(lines, "\n"), nil
}

// Explain traces source with the default options.
func Explain(source string) string {
	ret, err := Tracer{
		Options: DefaultOptions(),
	}.Trace(context.Background(), source)
	if err != nil {
		// only cancellation fails, and the background context is never cancelled
		panic(err)
	}
	return ret
}
