package aoc2015

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const day15Ingredients = `Butterscotch: capacity -1, durability -2, flavor 6, texture 3, calories 8
Cinnamon: capacity 2, durability 3, flavor -2, texture -1, calories 3`

func TestDay15Part1(t *testing.T) {
	got, err := Day15Part1(day15Ingredients)
	require.NoError(t, err)
	require.Equal(t, 62842880, got)
}

func TestDay15Part2(t *testing.T) {
	got, err := Day15Part2(day15Ingredients)
	require.NoError(t, err)
	require.Equal(t, 57600000, got)
}

func TestParseIngredient(t *testing.T) {
	ing, err := parseIngredient("Butterscotch: capacity -1, durability -2, flavor 6, texture 3, calories 8")
	require.NoError(t, err)
	require.Equal(t, ingredient{
		name:       "Butterscotch",
		capacity:   -1,
		durability: -2,
		flavor:     6,
		texture:    3,
		calories:   8,
	}, ing)
}

func TestForEachPartition(t *testing.T) {
	var seen [][]int
	forEachPartition(4, 3, func(weights []int) {
		seen = append(seen, append([]int(nil), weights...))
	})
	// Every split of 4 across 3 slots, zeros included.
	require.Len(t, seen, 15)
	for _, weights := range seen {
		require.Equal(t, 4, weights[0]+weights[1]+weights[2])
	}
	require.Contains(t, seen, []int{0, 0, 4})
	require.Contains(t, seen, []int{4, 0, 0})
	require.Contains(t, seen, []int{1, 1, 2})
}
