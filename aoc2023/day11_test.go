package aoc2023

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const day11Universe = `...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....`

func TestGalaxyDistanceSum(t *testing.T) {
	universe := splitLines(day11Universe)
	// Each empty row or column adds expansion extra steps when crossed.
	require.Equal(t, 374, galaxyDistanceSum(universe, 1))
	require.Equal(t, 1030, galaxyDistanceSum(universe, 10-1))
	require.Equal(t, 8410, galaxyDistanceSum(universe, 100-1))
}

func TestDay11Part1(t *testing.T) {
	got, err := Day11Part1(day11Universe)
	require.NoError(t, err)
	require.Equal(t, 374, got)
}
