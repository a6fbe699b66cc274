package aoc2023

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const day13Patterns = `#.##..##.
..#.##.#.
##......#
##......#
..#.##.#.
..##..##.
#.#.##.#.

#...##..#
#....#..#
..##..###
#####.##.
#####.##.
..##..###
#....#..#`

func TestMirrorReflections(t *testing.T) {
	mirrors := splitMirrors(day13Patterns)
	require.Len(t, mirrors, 2)

	row, col := mirrorReflections(mirrors[0], 0)
	require.Equal(t, 0, row)
	require.Equal(t, 5, col)

	row, col = mirrorReflections(mirrors[1], 0)
	require.Equal(t, 4, row)
	require.Equal(t, 0, col)
}

func TestMirrorReflectionsWithSmudge(t *testing.T) {
	mirrors := splitMirrors(day13Patterns)

	row, col := mirrorReflections(mirrors[0], 1)
	require.Equal(t, 3, row)
	require.Equal(t, 0, col)

	row, col = mirrorReflections(mirrors[1], 1)
	require.Equal(t, 1, row)
	require.Equal(t, 0, col)
}

func TestDay13Parts(t *testing.T) {
	got, err := Day13Part1(day13Patterns)
	require.NoError(t, err)
	require.Equal(t, 405, got)

	got, err = Day13Part2(day13Patterns)
	require.NoError(t, err)
	require.Equal(t, 400, got)
}
