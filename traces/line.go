package traces

import (
	"github.com/reusee/auhui/grids"
	"github.com/reusee/auhui/hangul"
)

type LineKind uint8

const (
	LineStep LineKind = iota
	LineHalt
	LineThen
	LineElse
	LineClose
	LineRepeated
	LineTooDeep
	LineTruncated
)

var lineKindNames = map[LineKind]string{
	LineStep:      "step",
	LineHalt:      "halt",
	LineThen:      "then",
	LineElse:      "else",
	LineClose:     "close",
	LineRepeated:  "repeated",
	LineTooDeep:   "too-deep",
	LineTruncated: "truncated",
}

func (k LineKind) String() string {
	return lineKindNames[k]
}

// Line is one rendered step of a trace, before formatting.
type Line struct {
	Kind  LineKind
	Depth int
	Pos   grids.Pos
	Cell  hangul.Syllable
	Body  []string
	// Cursor is the trailing movement prose, empty when not printed.
	Cursor string
}

// System reports whether the line is emitted by the walker itself rather than by a cell.
func (l Line) System() bool {
	switch l.Kind {
	case LineRepeated, LineTooDeep, LineTruncated:
		return true
	}
	return false
}
