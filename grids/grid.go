package grids

import (
	"strings"

	"github.com/reusee/auhui/hangul"
)

type Pos struct {
	X int
	Y int
}

func (p Pos) Add(dx, dy int) Pos {
	return Pos{
		X: p.X + dx,
		Y: p.Y + dy,
	}
}

type cell struct {
	syllable hangul.Syllable
	ok       bool
}

// Grid is an immutable, possibly ragged, program space.
type Grid struct {
	source string
	rows   [][]cell
	width  int
}

func Build(source string) *Grid {
	grid := &Grid{
		source: source,
	}
	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSuffix(line, "\r")
		row := make([]cell, 0, len(line))
		for _, r := range line {
			s, ok := hangul.Decompose(r)
			row = append(row, cell{
				syllable: s,
				ok:       ok,
			})
		}
		grid.width = max(grid.width, len(row))
		grid.rows = append(grid.rows, row)
	}
	return grid
}

// CellAt reports false for blank cells and for positions outside the row.
func (g *Grid) CellAt(pos Pos) (hangul.Syllable, bool) {
	if pos.Y < 0 || pos.Y >= len(g.rows) {
		return hangul.Syllable{}, false
	}
	row := g.rows[pos.Y]
	if pos.X < 0 || pos.X >= len(row) {
		return hangul.Syllable{}, false
	}
	c := row[pos.X]
	return c.syllable, c.ok
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return len(g.rows)
}

func (g *Grid) RowLen(y int) int {
	if y < 0 || y >= len(g.rows) {
		return 0
	}
	return len(g.rows[y])
}

func (g *Grid) Source() string {
	return g.source
}
