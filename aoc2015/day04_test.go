package aoc2015

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDay04Part1(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping AdventCoin mining in short mode")
	}
	cases := []struct {
		secret string
		want   int
	}{
		{"abcdef", 609043},
		{"pqrstuv", 1048970},
	}
	for _, tc := range cases {
		got, err := Day04Part1(tc.secret)
		require.NoError(t, err, tc.secret)
		require.Equal(t, tc.want, got, tc.secret)
	}
}

func TestMineAdventCoinShortPrefix(t *testing.T) {
	// md5("abcdef609043") starts with 000001dbbfa, so a one-zero prefix is
	// found long before the canonical five-zero answer.
	n := mineAdventCoin("abcdef", "0")
	require.LessOrEqual(t, n, 609043)
	require.Positive(t, n)
}
