package aoc2023

import (
	"fmt"
	"strings"
)

// Day 1: Trebuchet?! Recover calibration values from each line, first using
// bare digits, then spelled-out digit words too.

var digitWords = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
}

// digitAt returns the digit starting at position i, or -1. Digit words only
// count when words is true.
func digitAt(line string, i int, words bool) int {
	if line[i] >= '0' && line[i] <= '9' {
		return int(line[i] - '0')
	}
	if words {
		for word, v := range digitWords {
			if strings.HasPrefix(line[i:], word) {
				return v
			}
		}
	}

	return -1
}

// calibrationValue combines the first and last digit on a line.
func calibrationValue(line string, words bool) (int, error) {
	first, last := -1, -1
	for i := range line {
		if d := digitAt(line, i, words); d >= 0 {
			if first < 0 {
				first = d
			}
			last = d
		}
	}
	if first < 0 {
		return 0, fmt.Errorf("%w: day 1: no digit in %q", ErrBadInput, line)
	}

	return 10*first + last, nil
}

func sumCalibrations(data string, words bool) (int, error) {
	total := 0
	for _, line := range splitLines(data) {
		v, err := calibrationValue(line, words)
		if err != nil {
			return 0, err
		}
		total += v
	}

	return total, nil
}

// Day01Part1 sums calibration values using digits only.
func Day01Part1(data string) (int, error) {
	return sumCalibrations(data, false)
}

// Day01Part2 sums calibration values counting spelled-out digits as well.
func Day01Part2(data string) (int, error) {
	return sumCalibrations(data, true)
}
