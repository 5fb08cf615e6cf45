package traces

import (
	"strings"

	"golang.org/x/text/width"
)

const systemLabel = "시스템"

func Format(line Line, options Options) string {
	var parts []string
	if options.PrintName {
		label := systemLabel
		if !line.System() {
			label = line.Cell.String()
		}
		parts = append(parts, padLabel(label, options.LabelWidth), "/")
	}
	if n := line.Depth * options.IndentSize; n > 0 {
		// the joining space completes the indent
		parts = append(parts, strings.Repeat(" ", n-1))
	}
	parts = append(parts, line.Body...)
	if line.Cursor != "" {
		parts = append(parts, line.Cursor)
	}
	return strings.Join(parts, " ")
}

func padLabel(label string, columns int) string {
	w := displayWidth(label)
	if w >= columns {
		return label
	}
	return label + strings.Repeat(" ", columns-w)
}

func displayWidth(s string) (n int) {
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return
}
