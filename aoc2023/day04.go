package aoc2023

import (
	"fmt"
	"strings"
)

// Day 4: Scratchcards. Score cards by how many of their numbers are winning
// numbers, then cascade copies of the cards below each winner.

// cardMatches returns, per card, how many of its numbers appear in its
// winning list.
func cardMatches(data string) ([]int, error) {
	var matches []int
	for _, line := range splitLines(data) {
		_, numbers, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: day 4: %q", ErrBadInput, line)
		}
		winning, have, ok := strings.Cut(numbers, "|")
		if !ok {
			return nil, fmt.Errorf("%w: day 4: %q", ErrBadInput, line)
		}
		winSet := make(map[string]bool)
		for _, n := range strings.Fields(winning) {
			winSet[n] = true
		}
		count := 0
		for _, n := range strings.Fields(have) {
			if winSet[n] {
				count++
			}
		}
		matches = append(matches, count)
	}

	return matches, nil
}

// Day04Part1 sums card scores, doubling per match past the first.
func Day04Part1(data string) (int, error) {
	matches, err := cardMatches(data)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, m := range matches {
		if m > 0 {
			total += 1 << (m - 1)
		}
	}

	return total, nil
}

// Day04Part2 counts total cards after each card wins copies of the cards
// below it.
func Day04Part2(data string) (int, error) {
	matches, err := cardMatches(data)
	if err != nil {
		return 0, err
	}
	copies := make([]int, len(matches))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, m := range matches {
		for j := i + 1; j <= i+m && j < len(copies); j++ {
			copies[j] += copies[i]
		}
		total += copies[i]
	}

	return total, nil
}
