package numtheory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aockit/aoc/numtheory"
)

func TestGCD(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{12, 18, 6},
		{18, 12, 6},
		{7, 13, 1},
		{0, 5, 5},
		{5, 0, 5},
		{-12, 18, 6},
		{240, 46, 2},
	}
	for _, c := range cases {
		require.Equal(t, c.want, numtheory.GCD(c.a, c.b), "GCD(%d,%d)", c.a, c.b)
	}
}

func TestLCM(t *testing.T) {
	require.Equal(t, 1, numtheory.LCM())
	require.Equal(t, 12, numtheory.LCM(4, 6))
	require.Equal(t, 60, numtheory.LCM(4, 6, 10))
	require.Equal(t, 7, numtheory.LCM(7))
}

func TestEuclidSequence(t *testing.T) {
	// 240 and 46: remainders 10, 6, 4, 2, 0; the last nonzero is the GCD.
	seq := numtheory.EuclidSequence(46, 240)
	require.Equal(t, []numtheory.RQ{
		{Remainder: 10, Quotient: 5},
		{Remainder: 6, Quotient: 4},
		{Remainder: 4, Quotient: 1},
		{Remainder: 2, Quotient: 1},
		{Remainder: 0, Quotient: 2},
	}, seq)
}

func TestBezoutCoefficients(t *testing.T) {
	cases := [][2]int{{240, 46}, {46, 240}, {12, 18}, {7, 13}, {101, 103}}
	for _, c := range cases {
		u, v := numtheory.BezoutCoefficients(c[0], c[1])
		require.Equal(t, numtheory.GCD(c[0], c[1]), u*c[0]+v*c[1],
			"Bezout identity for (%d,%d)", c[0], c[1])
	}
}

func TestChineseRemainder(t *testing.T) {
	// x ≡ 2 (mod 3), x ≡ 3 (mod 5), x ≡ 2 (mod 7) → 23 mod 105.
	x, m, err := numtheory.ChineseRemainder([]int{2, 3, 2}, []int{3, 5, 7})
	require.NoError(t, err)
	require.Equal(t, 23, x)
	require.Equal(t, 105, m)
}

func TestChineseRemainder_NonCoprime(t *testing.T) {
	// Consistent despite sharing a factor: x ≡ 2 (mod 4), x ≡ 4 (mod 6) → 10 mod 12.
	x, m, err := numtheory.ChineseRemainder([]int{2, 4}, []int{4, 6})
	require.NoError(t, err)
	require.Equal(t, 10, x)
	require.Equal(t, 12, m)
}

func TestChineseRemainder_NoSolution(t *testing.T) {
	// x ≡ 1 (mod 4) and x ≡ 2 (mod 6) disagree modulo 2.
	_, _, err := numtheory.ChineseRemainder([]int{1, 2}, []int{4, 6})
	require.ErrorIs(t, err, numtheory.ErrNoSolution)
}
