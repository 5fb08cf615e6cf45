package traces

import "github.com/reusee/auhui/hangul"

type Options struct {
	// PrintName prefixes every line with the executed syllable.
	PrintName bool
	// PrintCursor appends the cursor movement to every step.
	PrintCursor bool
	// PrintKind suffixes storage names with their kind.
	PrintKind bool
	// Normalize composes the source to NFC before laying out the grid.
	// Composition changes the column of every later cell on the row.
	Normalize bool

	IndentSize int
	LabelWidth int

	// MaxDepth bounds branch nesting. Zero means unbounded.
	MaxDepth int
	// MaxLines bounds the number of emitted lines. Zero means unbounded.
	MaxLines int
}

func (o Options) source(s string) string {
	if o.Normalize {
		return hangul.Normalize(s)
	}
	return s
}

func DefaultOptions() Options {
	return Options{
		IndentSize: 4,
		LabelWidth: 8,
		MaxDepth:   64,
		MaxLines:   100_000,
	}
}
