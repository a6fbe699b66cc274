package aoc2023

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const day12Records = `???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1`

func TestCountArrangements(t *testing.T) {
	cases := []struct {
		record string
		groups []int
		want   int
	}{
		{"???.###", []int{1, 1, 3}, 1},
		{".??..??...?##.", []int{1, 1, 3}, 4},
		{"?#?#?#?#?#?#?#?", []int{1, 3, 1, 6}, 1},
		{"????.#...#...", []int{4, 1, 1}, 1},
		{"????.######..#####.", []int{1, 6, 5}, 4},
		{"?###????????", []int{3, 2, 1}, 10},
	}
	for _, tc := range cases {
		got := countArrangements(tc.record, tc.groups, make(map[springKey]int))
		require.Equal(t, tc.want, got, tc.record)
	}
}

func TestCountArrangementsExpanded(t *testing.T) {
	cases := []struct {
		record string
		groups []int
		want   int
	}{
		{"???.###", []int{1, 1, 3}, 1},
		{".??..??...?##.", []int{1, 1, 3}, 16384},
		{"?#?#?#?#?#?#?#?", []int{1, 3, 1, 6}, 1},
		{"????.#...#...", []int{4, 1, 1}, 16},
		{"????.######..#####.", []int{1, 6, 5}, 2500},
		{"?###????????", []int{3, 2, 1}, 506250},
	}
	for _, tc := range cases {
		record, groups := expandSpringRow(tc.record, tc.groups, 5)
		got := countArrangements(record, groups, make(map[springKey]int))
		require.Equal(t, tc.want, got, tc.record)
	}
}

func TestDay12Parts(t *testing.T) {
	got, err := Day12Part1(day12Records)
	require.NoError(t, err)
	require.Equal(t, 21, got)

	got, err = Day12Part2(day12Records)
	require.NoError(t, err)
	require.Equal(t, 525152, got)
}

func TestParseSpringRowRejectsBadLine(t *testing.T) {
	_, _, err := parseSpringRow("???.###")
	require.ErrorIs(t, err, ErrBadInput)
}
