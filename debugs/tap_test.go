package debugs

import (
	"context"
	"testing"

	"github.com/reusee/auhui/traces"
	"github.com/reusee/dscope"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		// stdin is empty under go test, so the REPL ends at once
		tap(t.Context(), "test", map[string]any{
			"foo": 42,
		})
	})
}

func TestEvalTraceGlobals(t *testing.T) {
	ctx := context.Background()
	globals, err := TraceGlobals(ctx, traces.Tracer{
		Options: traces.DefaultOptions(),
	}, "방방두\n  망함")
	if err != nil {
		t.Fatal(err)
	}

	for expr, expected := range map[string]string{
		"len(lines)":                  "5",
		"lines[2]":                    "'아'에 있는 두 수의 합을 구해요.",
		"steps[0]['Kind']":            "step",
		"steps[4]['Kind']":            "halt",
		"steps[4]['Cell']":            "함",
		"steps[1]['Pos']['X']":        "1",
		"width":                       "4",
		"height":                      "2",
		"cell(2, 0)":                  "두",
		"cell(0, 1)":                  "",
		"row_len(1)":                  "4",
		"row_len(5)":                  "0",
		"explain('하')":                "프로그램을 종료해요.",
		"[s['Depth'] for s in steps]": "[0, 0, 0, 0, 0]",
	} {
		got, err := Eval(ctx, globals, expr)
		if err != nil {
			t.Fatalf("%s: %v", expr, err)
		}
		if got != expected {
			t.Fatalf("%s: got %q", expr, got)
		}
	}

	if _, err := Eval(ctx, globals, "nope"); err == nil {
		t.Fatal("should fail")
	}
}

func TestEvalCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Eval(ctx, nil, "[x for x in range(100000000)]"); err == nil {
		t.Fatal("should be cancelled")
	}
}
