package aoc2023

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const day18Plan = `R 6 (#70c710)
D 5 (#0dc571)
L 2 (#5713f0)
D 2 (#d2c081)
R 2 (#59c680)
D 2 (#411b91)
L 5 (#8ceee2)
U 2 (#caa173)
L 1 (#1b58a2)
U 2 (#caa171)
R 2 (#7807d2)
U 3 (#a77fa3)
L 2 (#015232)
U 2 (#7a21e3)`

func TestDay18Part1(t *testing.T) {
	got, err := Day18Part1(day18Plan)
	require.NoError(t, err)
	require.Equal(t, 62, got)
}

func TestDay18Part2(t *testing.T) {
	got, err := Day18Part2(day18Plan)
	require.NoError(t, err)
	require.Equal(t, 952408144115, got)
}

func TestLagoonVolumeConcave(t *testing.T) {
	cases := []struct {
		plan string
		want int
	}{
		{
			`R 6 (#000060)
D 6 (#000061)
L 2 (#000022)
U 3 (#000033)
L 2 (#000022)
D 3 (#000031)
L 2 (#000022)
U 6 (#000063)`,
			46,
		},
		{
			`R 2 (#000020)
D 3 (#000031)
R 2 (#000020)
U 3 (#000033)
R 2 (#000020)
D 6 (#000061)
L 6 (#000062)
U 6 (#000063)`,
			46,
		},
	}
	for _, tc := range cases {
		got, err := Day18Part1(tc.plan)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}

func TestLagoonVolumeOpenPlan(t *testing.T) {
	steps, err := parseDigPlan("R 6 (#70c710)\nD 5 (#0dc571)", false)
	require.NoError(t, err)
	_, err = lagoonVolume(steps)
	require.ErrorIs(t, err, ErrBadInput)
}

func TestParseDigPlanSwapped(t *testing.T) {
	steps, err := parseDigPlan("R 6 (#70c710)", true)
	require.NoError(t, err)
	require.Equal(t, []digStep{{dir: 'R', count: 461937}}, steps)
}
