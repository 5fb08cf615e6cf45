package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/reusee/auhui/auhuiconfigs"
	"github.com/reusee/auhui/cmds"
	"github.com/reusee/auhui/debugs"
	"github.com/reusee/auhui/logs"
	"github.com/reusee/auhui/modes"
	"github.com/reusee/auhui/styles"
	"github.com/reusee/auhui/traces"
	"github.com/reusee/auhui/watches"
	"github.com/reusee/dscope"
)

var (
	fileFlag  = cmds.Var[string]("file", "program file, stdin when absent")
	watchFlag = cmds.Switch("watch", "trace the file again whenever it changes")
	replFlag  = cmds.Switch("repl", "type programs interactively")
	tapFlag   = cmds.Switch("tap", "inspect the trace in a starlark REPL")
	evalFlag  = cmds.Var[string]("eval", "print a starlark expression over the trace")
)

func main() {
	cmds.Execute(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dscope.New(
		new(traces.Module),
		new(auhuiconfigs.Module),
		new(styles.Module),
		new(watches.Module),
		new(debugs.Module),
		modes.ForProduction(),
	).Call(func(
		tracer traces.Tracer,
		lineStyles styles.Styles,
		output styles.Output,
		watch watches.Watch,
		tap debugs.Tap,
		newSpan logs.NewSpan,
		logger logs.Logger,
	) {
		switch {

		case *replFlag:
			runREPL(ctx, tracer, lineStyles, output)

		case *watchFlag:
			if *fileFlag == "" {
				fmt.Fprintln(os.Stderr, "watch needs a file (use 'file <path>')")
				os.Exit(1)
			}
			for content, err := range watch(ctx, *fileFlag) {
				if err != nil {
					logger.ErrorContext(ctx, "watch", "error", err)
					continue
				}
				ctx, _ := newSpan(ctx, "trace")
				fmt.Fprint(output, clearScreen)
				if err := render(ctx, tracer, lineStyles, output, string(content)); err != nil {
					// cancelled by interrupt
					return
				}
			}

		default:
			source, err := readSource(*fileFlag)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx, _ := newSpan(ctx, "trace")
			if err := render(ctx, tracer, lineStyles, output, source); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}

			if *tapFlag || *evalFlag != "" {
				globals, err := debugs.TraceGlobals(ctx, tracer, source)
				if err != nil {
					panic(err)
				}
				if *evalFlag != "" {
					result, err := debugs.Eval(ctx, globals, *evalFlag)
					if err != nil {
						fmt.Fprintln(os.Stderr, err)
						os.Exit(1)
					}
					fmt.Fprintln(output, result)
				}
				if *tapFlag {
					tap(ctx, "trace", globals)
				}
			}

		}
	})
}

const clearScreen = "\x1b[H\x1b[2J"

func readSource(path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
