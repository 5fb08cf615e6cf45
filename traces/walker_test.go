package traces

import (
	"context"
	"maps"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reusee/auhui/grids"
)

// walkArm walks from cursor with the given visited set, as one arm of a branch.
func walkArm(grid *grids.Grid, options Options, cursor grids.Pos, visited map[grids.Pos]struct{}) []string {
	var ret []string
	w := newWalker(context.Background(), grid, options, func(line Line, err error) bool {
		ret = append(ret, Format(line, options))
		return true
	})
	w.state.cursor = cursor
	w.state.visited = maps.Clone(visited)
	w.walk(1)
	return ret
}

func TestBranchIsBothArms(t *testing.T) {
	options := DefaultOptions()
	grid := grids.Build(branchSource)
	visited := map[grids.Pos]struct{}{
		{X: 0, Y: 0}: {},
		{X: 1, Y: 0}: {},
		{X: 2, Y: 0}: {},
		{X: 2, Y: 1}: {},
		{X: 2, Y: 2}: {},
	}

	var expected []string
	expected = append(expected, thenProse("아", ""))
	expected = append(expected, walkArm(grid, options, grids.Pos{X: 4, Y: 2}, visited)...)
	expected = append(expected, closeMessage)
	expected = append(expected, elseProse(""))
	expected = append(expected, walkArm(grid, options, grids.Pos{X: 0, Y: 2}, visited)...)
	expected = append(expected, closeMessage)

	lines := traceLines(t, options, branchSource)
	if diff := cmp.Diff(expected, lines[4:]); diff != "" {
		t.Fatal(diff)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	state := walkState{
		storage: defaultStorage,
		visited: map[grids.Pos]struct{}{},
	}
	if !state.visit(grids.Pos{X: 1}) {
		t.Fatal("should be unvisited")
	}
	snapshot := state.snapshot()
	state.visit(grids.Pos{X: 2})
	if _, ok := snapshot.visited[grids.Pos{X: 2}]; ok {
		t.Fatal("snapshot should not see later visits")
	}
	if _, ok := snapshot.visited[grids.Pos{X: 1}]; !ok {
		t.Fatal("snapshot should keep earlier visits")
	}
	if state.visit(grids.Pos{X: 1}) {
		t.Fatal("should be visited")
	}
}
