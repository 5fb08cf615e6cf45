package auhuiconfigs

import (
	"github.com/reusee/auhui/cmds"
	"github.com/reusee/auhui/configs"
	"github.com/reusee/auhui/traces"
	"github.com/reusee/auhui/vars"
)

var (
	printNameFlag   = cmds.Toggle("name", "label every line with its syllable")
	printCursorFlag = cmds.Toggle("cursor", "describe cursor movement")
	printKindFlag   = cmds.Toggle("kind", "show storage kinds")
	normalizeFlag   = cmds.Toggle("nfc", "compose the source to NFC before tracing")
	indentFlag      = cmds.Var[int]("indent", "indent width per branch level")
	maxDepthFlag    = cmds.Var[int]("max-depth", "maximum branch nesting")
	maxLinesFlag    = cmds.Var[int]("max-lines", "maximum trace lines")
)

func (Module) TraceOptions(
	loader configs.Loader,
) traces.Options {
	options := traces.DefaultOptions()

	options.PrintName = toggle(printNameFlag, loader, "print_name")
	options.PrintCursor = toggle(printCursorFlag, loader, "print_cursor")
	options.PrintKind = toggle(printKindFlag, loader, "print_kind")
	options.Normalize = toggle(normalizeFlag, loader, "normalize")

	if n, ok := configs.Lookup[int](loader, "indent_size"); ok {
		options.IndentSize = n
	}
	options.IndentSize = vars.FirstNonZero(*indentFlag, options.IndentSize)
	options.LabelWidth = vars.FirstNonZero(
		configs.First[int](loader, "label_width"),
		options.LabelWidth,
	)

	// an explicit 0 in the config disables a bound
	if n, ok := configs.Lookup[int](loader, "max_depth"); ok {
		options.MaxDepth = n
	}
	if n, ok := configs.Lookup[int](loader, "max_lines"); ok {
		options.MaxLines = n
	}
	if *maxDepthFlag != 0 {
		options.MaxDepth = *maxDepthFlag
	}
	if *maxLinesFlag != 0 {
		options.MaxLines = *maxLinesFlag
	}

	return options
}

func toggle(flag *cmds.Flag, loader configs.Loader, path string) bool {
	if v, ok := flag.Get(); ok {
		return v
	}
	return configs.First[bool](loader, path)
}
