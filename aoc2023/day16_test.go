package aoc2023

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const day16Contraption = `.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....`

func TestDay16Part1(t *testing.T) {
	got, err := Day16Part1(day16Contraption)
	require.NoError(t, err)
	require.Equal(t, 46, got)
}

func TestDay16Part2(t *testing.T) {
	got, err := Day16Part2(day16Contraption)
	require.NoError(t, err)
	require.Equal(t, 51, got)
}

func TestDeflect(t *testing.T) {
	require.Equal(t, []Direction16{beamUp}, beamRight.deflect('/'))
	require.Equal(t, []Direction16{beamDown}, beamRight.deflect('\\'))
	require.Equal(t, []Direction16{beamLeft, beamRight}, beamDown.deflect('-'))
	require.Equal(t, []Direction16{beamUp, beamDown}, beamLeft.deflect('|'))
	require.Equal(t, []Direction16{beamRight}, beamRight.deflect('.'))
	require.Equal(t, []Direction16{beamRight}, beamRight.deflect('-'))
}

func TestIlluminateLoop(t *testing.T) {
	// A closed mirror square must terminate.
	grid := []string{`\.\`, "...", `/./`}
	require.Positive(t, illuminate(grid, beam{dir: beamRight}))
}
