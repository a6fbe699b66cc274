// Package grid_test contains unit tests for grid parsing and lookups.
package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aockit/aoc/grid"
)

func TestParse_Simple(t *testing.T) {
	g, err := grid.Parse("12\n34")
	require.NoError(t, err)
	require.Equal(t, 2, g.Width())
	require.Equal(t, 2, g.Height())

	cases := []struct {
		row, col, want int
	}{
		{0, 0, 1},
		{0, 1, 2},
		{1, 0, 3},
		{1, 1, 4},
	}
	for _, c := range cases {
		got, err := g.CostAt(c.row, c.col)
		require.NoError(t, err)
		require.Equal(t, c.want, got, "cost at (%d,%d)", c.row, c.col)
	}
}

func TestParse_TrimsSurroundingWhitespace(t *testing.T) {
	g, err := grid.Parse("\n123\n456\n")
	require.NoError(t, err)
	require.Equal(t, 3, g.Width())
	require.Equal(t, 2, g.Height())
}

func TestParse_Empty(t *testing.T) {
	_, err := grid.Parse("")
	require.ErrorIs(t, err, grid.ErrMalformedGrid)

	_, err = grid.Parse("   \n  ")
	require.ErrorIs(t, err, grid.ErrMalformedGrid)
}

func TestParse_RaggedRows(t *testing.T) {
	_, err := grid.Parse("123\n12")
	require.ErrorIs(t, err, grid.ErrMalformedGrid)
}

func TestParse_NonDigit(t *testing.T) {
	_, err := grid.Parse("123\n4x6")
	require.ErrorIs(t, err, grid.ErrMalformedGrid)
}

func TestCostAt_OutOfBounds(t *testing.T) {
	g, err := grid.Parse("12\n34")
	require.NoError(t, err)

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := g.CostAt(c[0], c[1])
		if !errors.Is(err, grid.ErrOutOfBounds) {
			t.Fatalf("CostAt(%d,%d): expected ErrOutOfBounds, got %v", c[0], c[1], err)
		}
	}
}

func TestInBounds(t *testing.T) {
	g, err := grid.Parse("111\n111")
	require.NoError(t, err)

	require.True(t, g.InBounds(0, 0))
	require.True(t, g.InBounds(1, 2))
	require.False(t, g.InBounds(2, 0))
	require.False(t, g.InBounds(0, 3))
	require.False(t, g.InBounds(-1, 0))
}
