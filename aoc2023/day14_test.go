package aoc2023

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const day14Platform = `O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....`

func TestTiltNorth(t *testing.T) {
	p := parsePlatform(day14Platform)
	p.tiltNorth()
	want := `OOOO.#.O..
OO..#....#
OO..O##..O
O..#.OO...
........#.
..#....#.#
..O..#.O.O
..O.......
#....###..
#....#....`
	require.Equal(t, want, p.String())
}

func TestSpinCycle(t *testing.T) {
	p := parsePlatform(day14Platform)
	p = p.spinCycle()
	want := `.....#....
....#...O#
...OO##...
.OO#......
.....OOO#.
.O#...O#.#
....O#....
......OOOO
#...O###..
#..OO#....`
	require.Equal(t, want, p.String())
}

func TestDay14Part1(t *testing.T) {
	got, err := Day14Part1(day14Platform)
	require.NoError(t, err)
	require.Equal(t, 136, got)
}

func TestDay14Part2(t *testing.T) {
	got, err := Day14Part2(day14Platform)
	require.NoError(t, err)
	require.Equal(t, 64, got)
}
