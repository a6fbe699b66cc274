package crucible_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aockit/aoc/crucible"
	"github.com/aockit/aoc/grid"
)

func mustParse(t *testing.T, text string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(text)
	require.NoError(t, err)

	return g
}

func TestExpand_InitialState(t *testing.T) {
	g := mustParse(t, "123\n456\n789")

	// From the top-left corner the in-bounds directions are South and East.
	moves := crucible.Expand(g, crucible.State{Row: 0, Col: 0, Dir: crucible.DirNone}, 1, 2)

	want := map[crucible.State]int{
		{Row: 1, Col: 0, Dir: crucible.South, Run: 1}: 4,
		{Row: 2, Col: 0, Dir: crucible.South, Run: 2}: 11,
		{Row: 0, Col: 1, Dir: crucible.East, Run: 1}:  2,
		{Row: 0, Col: 2, Dir: crucible.East, Run: 2}:  5,
	}
	require.Len(t, moves, len(want))
	for _, m := range moves {
		cost, ok := want[m.State]
		require.True(t, ok, "unexpected move to %+v", m.State)
		require.Equal(t, cost, m.Cost, "cost of move to %+v", m.State)
	}
}

func TestExpand_TurnsOnly(t *testing.T) {
	g := mustParse(t, "123\n456\n789")

	// After travelling East, the only legal continuations are North and
	// South; here North leaves the grid.
	moves := crucible.Expand(g, crucible.State{Row: 0, Col: 2, Dir: crucible.East, Run: 1}, 1, 2)

	want := map[crucible.State]int{
		{Row: 1, Col: 2, Dir: crucible.South, Run: 1}: 6,
		{Row: 2, Col: 2, Dir: crucible.South, Run: 2}: 15,
	}
	require.Len(t, moves, len(want))
	for _, m := range moves {
		require.NotEqual(t, crucible.East, m.State.Dir, "straight continuation is not a separate move")
		require.NotEqual(t, crucible.West, m.State.Dir, "reversal is never legal")
		require.Equal(t, want[m.State], m.Cost)
	}
}

func TestExpand_MinRunSkipsShortBlocks(t *testing.T) {
	g := mustParse(t, "11111\n11111\n11111\n11111\n11111")

	moves := crucible.Expand(g, crucible.State{Row: 0, Col: 0, Dir: crucible.DirNone}, 4, 4)
	require.Len(t, moves, 2)
	for _, m := range moves {
		require.Equal(t, 4, m.State.Run)
		require.Equal(t, 4, m.Cost)
	}
}

func TestExpand_NoLegalMoves(t *testing.T) {
	g := mustParse(t, "111")

	// At the East end of a single-row grid the only turns leave the grid.
	moves := crucible.Expand(g, crucible.State{Row: 0, Col: 2, Dir: crucible.East, Run: 3}, 1, 3)
	require.Empty(t, moves)
}
