package debugs

import (
	"testing"

	"github.com/reusee/auhui/grids"
	"github.com/reusee/auhui/hangul"
	"github.com/reusee/auhui/traces"
	"go.starlark.net/starlark"
)

func dict(pairs ...starlark.Value) *starlark.Dict {
	d := starlark.NewDict(len(pairs) / 2)
	for i := 0; i < len(pairs); i += 2 {
		d.SetKey(pairs[i], pairs[i+1])
	}
	return d
}

func list(elems ...starlark.Value) *starlark.List {
	return starlark.NewList(elems)
}

func checkValue(t *testing.T, input any, expected starlark.Value) {
	t.Helper()
	got := toStarlarkValue(input)
	equal, err := starlark.Equal(got, expected)
	if err != nil {
		t.Fatalf("%#v: %v", input, err)
	}
	if !equal {
		t.Fatalf("%#v: got %v, want %v", input, got, expected)
	}
}

func TestScalars(t *testing.T) {
	checkValue(t, nil, starlark.None)
	checkValue(t, true, starlark.True)
	checkValue(t, []byte("abc"), starlark.Bytes("abc"))
	checkValue(t, "하", starlark.String("하"))
	checkValue(t, 42, starlark.MakeInt(42))
	checkValue(t, int8(-3), starlark.MakeInt(-3))
	checkValue(t, uint8(42), starlark.MakeInt(42))
	checkValue(t, float32(0.5), starlark.Float(0.5))
	checkValue(t, starlark.MakeInt(7), starlark.MakeInt(7))
}

func TestStringers(t *testing.T) {
	checkValue(t, hangul.Syllable{Lead: hangul.LeadHieuh, Vowel: hangul.VowelA}, starlark.String("하"))
	checkValue(t, hangul.LeadChieut, starlark.String("ㅊ"))
	checkValue(t, traces.LineThen, starlark.String("then"))
}

func TestContainers(t *testing.T) {
	checkValue(t, []any{1, "a", true}, list(starlark.MakeInt(1), starlark.String("a"), starlark.True))
	checkValue(t, []string{"a", "b"}, list(starlark.String("a"), starlark.String("b")))
	checkValue(t, map[string]any{"n": 1}, dict(starlark.String("n"), starlark.MakeInt(1)))
	checkValue(t, map[int]bool{1: true}, dict(starlark.MakeInt(1), starlark.True))
}

func TestStructs(t *testing.T) {
	type labeled struct {
		Label string
		width int
	}
	value := &labeled{Label: "시스템", width: 6}
	expected := dict(starlark.String("Label"), starlark.String("시스템"))
	checkValue(t, *value, expected)
	checkValue(t, value, expected)
	checkValue(t, &value, expected)
	checkValue(t, (*labeled)(nil), starlark.None)

	checkValue(t, grids.Pos{X: 1, Y: 2}, dict(
		starlark.String("X"), starlark.MakeInt(1),
		starlark.String("Y"), starlark.MakeInt(2),
	))
}

func TestUnsupported(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	toStarlarkValue(make(chan bool))
}
