package debugs

import (
	"context"

	"github.com/reusee/auhui/grids"
	"github.com/reusee/auhui/traces"
	"github.com/reusee/starlarkutil"
)

// TraceGlobals binds a traced program for inspection:
// source, width, height, lines (formatted), steps (structured),
// row_len(y), cell(x, y) and explain(source).
func TraceGlobals(ctx context.Context, tracer traces.Tracer, source string) (map[string]any, error) {
	grid := tracer.Grid(source)

	var lines []string
	var steps []traces.Line
	for line, err := range tracer.Lines(ctx, source) {
		if err != nil {
			return nil, err
		}
		steps = append(steps, line)
		lines = append(lines, traces.Format(line, tracer.Options))
	}

	return map[string]any{
		"source":  grid.Source(),
		"width":   grid.Width(),
		"height":  grid.Height(),
		"lines":   lines,
		"steps":   steps,
		"row_len": starlarkutil.MakeFunc("row_len", grid.RowLen),
		"cell": starlarkutil.MakeFunc("cell", func(x int, y int) string {
			s, ok := grid.CellAt(grids.Pos{X: x, Y: y})
			if !ok {
				return ""
			}
			return s.String()
		}),
		"explain": starlarkutil.MakeFunc("explain", traces.Explain),
	}, nil
}
