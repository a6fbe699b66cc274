package aoc2023

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const day05Almanac = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4`

func TestDay05Part1(t *testing.T) {
	got, err := Day05Part1(day05Almanac)
	require.NoError(t, err)
	require.Equal(t, 35, got)
}

func TestDay05Part2(t *testing.T) {
	got, err := Day05Part2(day05Almanac)
	require.NoError(t, err)
	require.Equal(t, 46, got)
}

func TestAlmanacConvert(t *testing.T) {
	m := almanacMap{rules: []almanacRule{
		{start: 98, end: 100, offset: -48},
		{start: 50, end: 98, offset: 2},
	}}
	cases := []struct{ in, want int }{
		{98, 50},
		{99, 51},
		{53, 55},
		{10, 10},
		{79, 81},
		{14, 14},
		{55, 57},
		{13, 13},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, m.convert(tc.in), tc.in)
	}
}

func TestAlmanacConvertRange(t *testing.T) {
	m := almanacMap{rules: []almanacRule{{start: 50, end: 98, offset: 2}}}
	out := m.convertRange(seedRange{40, 60})
	// The mapped slice shifts, the rest passes through.
	require.ElementsMatch(t, []seedRange{{52, 62}, {40, 50}}, out)
}

func TestParseAlmanacRejectsBadInput(t *testing.T) {
	_, _, err := parseAlmanac("79 14 55 13")
	require.ErrorIs(t, err, ErrBadInput)
}
