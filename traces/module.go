package traces

import (
	"github.com/reusee/auhui/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

func (Module) Tracer(
	options Options,
	logger logs.Logger,
) Tracer {
	return Tracer{
		Options: options,
		Logger:  logger,
	}
}
