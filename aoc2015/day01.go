package aoc2015

import (
	"fmt"
	"strings"
)

// Day 1: Not Quite Lisp. Santa follows parentheses up and down an
// apartment building, starting on floor 0.

// Day01Part1 returns the floor the instructions leave Santa on.
func Day01Part1(data string) (int, error) {
	floor := 0
	for _, r := range strings.TrimSpace(data) {
		switch r {
		case '(':
			floor++
		case ')':
			floor--
		default:
			return 0, fmt.Errorf("%w: day 1: unexpected %q", ErrBadInput, r)
		}
	}

	return floor, nil
}

// Day01Part2 returns the 1-based position of the first instruction that
// puts Santa in the basement (floor -1).
func Day01Part2(data string) (int, error) {
	floor := 0
	for i, r := range strings.TrimSpace(data) {
		switch r {
		case '(':
			floor++
		case ')':
			floor--
		default:
			return 0, fmt.Errorf("%w: day 1: unexpected %q", ErrBadInput, r)
		}
		if floor == -1 {
			return i + 1, nil
		}
	}

	return 0, fmt.Errorf("%w: day 1: basement never reached", ErrBadInput)
}
