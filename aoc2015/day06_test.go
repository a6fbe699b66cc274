package aoc2015

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDay06Part1(t *testing.T) {
	input := "turn on 0,0 through 999,999\n" +
		"toggle 0,0 through 999,0\n" +
		"turn off 499,499 through 500,500"
	got, err := Day06Part1(input)
	require.NoError(t, err)
	require.Equal(t, 1000000-1000-4, got)
}

func TestDay06Part2(t *testing.T) {
	got, err := Day06Part2("turn on 0,0 through 0,0\ntoggle 0,0 through 999,999")
	require.NoError(t, err)
	require.Equal(t, 2000001, got)
}

func TestParseLightRect(t *testing.T) {
	r, err := parseLightRect("turn on 0,0 through 999,999")
	require.NoError(t, err)
	require.Equal(t, lightRect{action: "on", x2: 999, y2: 999}, r)

	r, err = parseLightRect("toggle 499,499 through 500,500")
	require.NoError(t, err)
	require.Equal(t, lightRect{action: "toggle", x1: 499, y1: 499, x2: 500, y2: 500}, r)

	_, err = parseLightRect("dim 0,0 through 1,1")
	require.ErrorIs(t, err, ErrBadInput)
}
