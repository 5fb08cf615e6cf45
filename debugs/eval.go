package debugs

import (
	"context"

	"go.starlark.net/starlark"
)

// Eval evaluates a starlark expression against globals.
// Strings are returned unquoted, other values in their starlark form.
func Eval(ctx context.Context, globals map[string]any, expr string) (string, error) {
	thread := &starlark.Thread{
		Name: "eval",
	}
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})
	defer stop()

	value, err := starlark.EvalOptions(fileOptions, thread, "eval", expr, toStringDict(globals))
	if err != nil {
		return "", wrap(err)
	}
	if s, ok := value.(starlark.String); ok {
		return s.GoString(), nil
	}
	return value.String(), nil
}
