package aoc2023

import "strings"

// Day 11: Cosmic Expansion. Sum pairwise galaxy distances while empty rows
// and columns of the image expand.

// galaxyDistanceSum sums Manhattan distances between all galaxy pairs, where
// each empty row or column crossed contributes expansion extra steps.
func galaxyDistanceSum(universe []string, expansion int) int {
	var galaxies [][2]int
	for i, row := range universe {
		for j := 0; j < len(row); j++ {
			if row[j] == '#' {
				galaxies = append(galaxies, [2]int{i, j})
			}
		}
	}

	emptyRow := make([]bool, len(universe))
	for i, row := range universe {
		emptyRow[i] = !strings.ContainsRune(row, '#')
	}
	var width int
	if len(universe) > 0 {
		width = len(universe[0])
	}
	emptyCol := make([]bool, width)
	for j := 0; j < width; j++ {
		emptyCol[j] = true
		for _, row := range universe {
			if j < len(row) && row[j] == '#' {
				emptyCol[j] = false
				break
			}
		}
	}

	total := 0
	for a := 0; a < len(galaxies); a++ {
		for b := a + 1; b < len(galaxies); b++ {
			rMin, rMax := minMax(galaxies[a][0], galaxies[b][0])
			cMin, cMax := minMax(galaxies[a][1], galaxies[b][1])
			total += (rMax - rMin) + (cMax - cMin)
			for r := rMin + 1; r < rMax; r++ {
				if emptyRow[r] {
					total += expansion
				}
			}
			for c := cMin + 1; c < cMax; c++ {
				if emptyCol[c] {
					total += expansion
				}
			}
		}
	}

	return total
}

func minMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}

	return b, a
}

// Day11Part1 sums distances with each empty row or column doubled.
func Day11Part1(data string) (int, error) {
	return galaxyDistanceSum(splitLines(data), 1), nil
}

// Day11Part2 sums distances with a million-fold expansion.
func Day11Part2(data string) (int, error) {
	return galaxyDistanceSum(splitLines(data), 1000000-1), nil
}
