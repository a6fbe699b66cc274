package aoc2015

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDay02Part1(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"2x3x4", 58},
		{"1x1x10", 43},
		{"2x3x4\n1x1x10", 101},
	}
	for _, tc := range cases {
		got, err := Day02Part1(tc.input)
		require.NoError(t, err, tc.input)
		require.Equal(t, tc.want, got, tc.input)
	}
}

func TestDay02Part2(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"2x3x4", 34},
		{"1x1x10", 14},
		{"2x3x4\n1x1x10", 48},
	}
	for _, tc := range cases {
		got, err := Day02Part2(tc.input)
		require.NoError(t, err, tc.input)
		require.Equal(t, tc.want, got, tc.input)
	}
}

func TestDay02RejectsBadDimensions(t *testing.T) {
	_, err := Day02Part1("2x3")
	require.ErrorIs(t, err, ErrBadInput)
}
