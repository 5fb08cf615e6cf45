package styles

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/reusee/auhui/auhuiconfigs"
	"github.com/reusee/auhui/traces"
)

// Styles colors formatted trace lines by kind.
// The zero value renders lines unchanged.
type Styles struct {
	enabled bool
	byKind  map[traces.LineKind]lipgloss.Style
}

func New(renderer *lipgloss.Renderer) Styles {
	branch := renderer.NewStyle().Foreground(lipgloss.Color("6"))
	return Styles{
		enabled: true,
		byKind: map[traces.LineKind]lipgloss.Style{
			traces.LineHalt:      renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
			traces.LineThen:      branch,
			traces.LineElse:      branch,
			traces.LineClose:     branch,
			traces.LineRepeated:  renderer.NewStyle().Foreground(lipgloss.Color("3")),
			traces.LineTooDeep:   renderer.NewStyle().Foreground(lipgloss.Color("3")).Italic(true),
			traces.LineTruncated: renderer.NewStyle().Foreground(lipgloss.Color("3")).Italic(true),
		},
	}
}

// Output is where styled traces are written.
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}

func (Module) Styles(
	color auhuiconfigs.Color,
	output Output,
) Styles {
	if !color {
		return Styles{}
	}
	renderer := lipgloss.NewRenderer(output)
	if renderer.ColorProfile() == termenv.Ascii {
		// color was requested, keep it on pipes too
		renderer.SetColorProfile(termenv.ANSI)
	}
	return New(renderer)
}

// Line formats line and styles the result.
func (s Styles) Line(line traces.Line, options traces.Options) string {
	text := traces.Format(line, options)
	if !s.enabled {
		return text
	}
	style, ok := s.byKind[line.Kind]
	if !ok {
		return text
	}
	return style.Render(text)
}
