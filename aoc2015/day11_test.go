package aoc2015

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIncrementPassword(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"xx", "xy"},
		{"xy", "xz"},
		{"xz", "ya"},
		{"ya", "yb"},
		{"azz", "baa"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, incrementPassword(tc.input), tc.input)
	}
}

func TestIsValidPassword(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"hijklmmn", false},
		{"abbceffg", false},
		{"abbcegjk", false},
		{"abcdffaa", true},
		{"ghjaabcc", true},
		{"abcdffa", false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, isValidPassword(tc.input), tc.input)
	}
}

func TestDay11Part1(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"abcdefgh", "abcdffaa"},
		{"ghijklmn", "ghjaabcc"},
	}
	for _, tc := range cases {
		got, err := Day11Part1(tc.input)
		require.NoError(t, err, tc.input)
		require.Equal(t, tc.want, got, tc.input)
	}
}
