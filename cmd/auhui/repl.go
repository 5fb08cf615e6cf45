package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/auhui/styles"
	"github.com/reusee/auhui/traces"
)

// runREPL collects program rows until an empty line, then prints their trace.
func runREPL(ctx context.Context, tracer traces.Tracer, lineStyles styles.Styles, w io.Writer) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".auhui_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()

	var rows []string
	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		if line != "" {
			rows = append(rows, line)
			rl.SetPrompt(". ")
			continue
		}
		if len(rows) == 0 {
			continue
		}
		if err := render(ctx, tracer, lineStyles, w, strings.Join(rows, "\n")); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		rows = rows[:0]
		rl.SetPrompt("> ")
	}
}
