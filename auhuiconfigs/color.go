package auhuiconfigs

import (
	"github.com/reusee/auhui/cmds"
	"github.com/reusee/auhui/configs"
)

// Color enables styled terminal output.
type Color bool

var colorFlag = cmds.Toggle("color", "style the trace for a terminal")

func (Module) Color(
	loader configs.Loader,
) Color {
	return Color(toggle(colorFlag, loader, "color"))
}
