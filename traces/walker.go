package traces

import (
	"context"
	"maps"

	"github.com/reusee/auhui/grids"
	"github.com/reusee/auhui/hangul"
)

// walkState is everything a branch arm may change.
type walkState struct {
	cursor  grids.Pos
	storage Storage
	visited map[grids.Pos]struct{}
}

func (s walkState) snapshot() walkState {
	s.visited = maps.Clone(s.visited)
	return s
}

// visit marks pos and reports whether it was unvisited.
func (s walkState) visit(pos grids.Pos) bool {
	if _, ok := s.visited[pos]; ok {
		return false
	}
	s.visited[pos] = struct{}{}
	return true
}

type walker struct {
	ctx     context.Context
	grid    *grids.Grid
	options Options
	state   walkState
	yield   func(Line, error) bool

	emitted int
	done    bool
}

func newWalker(ctx context.Context, grid *grids.Grid, options Options, yield func(Line, error) bool) *walker {
	return &walker{
		ctx:     ctx,
		grid:    grid,
		options: options,
		yield:   yield,
		state: walkState{
			storage: defaultStorage,
			visited: make(map[grids.Pos]struct{}),
		},
	}
}

func (w *walker) emit(line Line) {
	if w.done {
		return
	}
	if limit := w.options.MaxLines; limit > 0 && w.emitted >= limit {
		w.done = true
		w.yield(Line{
			Kind:  LineTruncated,
			Depth: line.Depth,
			Pos:   line.Pos,
			Body:  []string{truncatedMessage},
		}, nil)
		return
	}
	w.emitted++
	if !w.yield(line, nil) {
		w.done = true
	}
}

func (w *walker) walk(depth int) {
	for !w.done {
		if err := w.ctx.Err(); err != nil {
			w.done = true
			w.yield(Line{}, err)
			return
		}

		pos := w.state.cursor
		cell, ok := w.grid.CellAt(pos)
		if !ok {
			return
		}

		if !w.state.visit(pos) {
			w.emit(Line{
				Kind:  LineRepeated,
				Depth: depth,
				Pos:   pos,
				Body:  []string{repeatedMessage},
			})
			return
		}

		switch cell.Lead {
		case hangul.LeadHieuh:
			w.emit(Line{
				Kind:  LineHalt,
				Depth: depth,
				Pos:   pos,
				Cell:  cell,
				Body:  []string{haltMessage},
			})
			// ends every pending arm too
			w.done = true
			return
		case hangul.LeadChieut:
			w.branch(depth, pos, cell)
			return
		}

		var body string
		body, w.state.storage = describe(cell, w.state.storage, w.options.PrintKind)
		move := movementOf(cell.Vowel)
		w.state.cursor = move.apply(pos)
		line := Line{
			Kind:  LineStep,
			Depth: depth,
			Pos:   pos,
			Cell:  cell,
			Body:  []string{body},
		}
		if w.options.PrintCursor {
			line.Cursor = move.prose(false)
		}
		w.emit(line)
	}
}

// branch explores both arms of a conditional from the same starting state.
func (w *walker) branch(depth int, pos grids.Pos, cell hangul.Syllable) {
	if limit := w.options.MaxDepth; limit > 0 && depth >= limit {
		w.emit(Line{
			Kind:  LineTooDeep,
			Depth: depth,
			Pos:   pos,
			Body:  []string{tooDeepMessage},
		})
		return
	}

	snapshot := w.state.snapshot()
	storage := w.state.storage.display(w.options.PrintKind)
	move := movementOf(cell.Vowel)

	arm := func(kind LineKind, move movement) {
		w.state.cursor = move.apply(pos)
		cursor := ""
		if w.options.PrintCursor {
			cursor = move.prose(true)
		}
		intro := elseProse(cursor)
		if kind == LineThen {
			intro = thenProse(storage, cursor)
		}
		w.emit(Line{
			Kind:  kind,
			Depth: depth,
			Pos:   pos,
			Cell:  cell,
			Body:  []string{intro},
		})
		w.walk(depth + 1)
		w.emit(Line{
			Kind:  LineClose,
			Depth: depth,
			Pos:   pos,
			Cell:  cell,
			Body:  []string{closeMessage},
		})
	}

	// the zero case reverses the flow, so it follows the mirrored path
	arm(LineThen, move.inverted())
	w.state = snapshot
	arm(LineElse, move)
}
