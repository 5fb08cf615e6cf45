package auhuiconfigs

import (
	"github.com/reusee/auhui/configs"
	"github.com/reusee/auhui/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
