package aoc2023

import "strings"

// Day 13: Point of Incidence. Find the horizontal or vertical reflection
// line in each ash pattern, exactly or with one smudge.

// countDiffs counts positions where the two strings differ.
func countDiffs(a, b string) int {
	diffs := 0
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			diffs++
		}
	}

	return diffs
}

// mirrorReflections returns the number of rows above a horizontal reflection
// and columns left of a vertical one, zero when absent. The reflection must
// have exactly smudges mismatched cells.
func mirrorReflections(mirror []string, smudges int) (int, int) {
	row := 0
	for split := 1; split < len(mirror); split++ {
		diffs := 0
		for lo, hi := split-1, split; lo >= 0 && hi < len(mirror); lo, hi = lo-1, hi+1 {
			diffs += countDiffs(mirror[lo], mirror[hi])
		}
		if diffs == smudges {
			row = split
			break
		}
	}

	col := 0
	width := 0
	if len(mirror) > 0 {
		width = len(mirror[0])
	}
	for split := 1; split < width; split++ {
		diffs := 0
		for _, line := range mirror {
			for lo, hi := split-1, split; lo >= 0 && hi < len(line); lo, hi = lo-1, hi+1 {
				if line[lo] != line[hi] {
					diffs++
				}
			}
		}
		if diffs == smudges {
			col = split
			break
		}
	}

	return row, col
}

func splitMirrors(data string) [][]string {
	var mirrors [][]string
	for _, block := range strings.Split(strings.TrimSpace(data), "\n\n") {
		mirrors = append(mirrors, splitLines(block))
	}

	return mirrors
}

func sumMirrorScores(data string, smudges int) int {
	total := 0
	for _, mirror := range splitMirrors(data) {
		row, col := mirrorReflections(mirror, smudges)
		total += 100*row + col
	}

	return total
}

// Day13Part1 scores each pattern's clean reflection line.
func Day13Part1(data string) (int, error) {
	return sumMirrorScores(data, 0), nil
}

// Day13Part2 scores the reflection line revealed by fixing one smudge.
func Day13Part2(data string) (int, error) {
	return sumMirrorScores(data, 1), nil
}
