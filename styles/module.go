package styles

import (
	"github.com/reusee/auhui/auhuiconfigs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs auhuiconfigs.Module
}
