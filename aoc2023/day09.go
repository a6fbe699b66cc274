package aoc2023

import (
	"fmt"
	"strconv"
	"strings"
)

// Day 9: Mirage Maintenance. Extrapolate each OASIS report by building
// difference sequences down to all zeros.

// predict extrapolates the next value of the sequence, or the value before
// the first when reverse is true.
func predict(report []int, reverse bool) int {
	if len(report) == 0 {
		return 0
	}
	allZero := true
	for _, v := range report {
		if v != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return 0
	}
	diffs := make([]int, len(report)-1)
	for i := range diffs {
		diffs[i] = report[i+1] - report[i]
	}
	if reverse {
		return report[0] - predict(diffs, true)
	}

	return report[len(report)-1] + predict(diffs, false)
}

func parseReports(data string) ([][]int, error) {
	var reports [][]int
	for _, line := range splitLines(data) {
		var report []int
		for _, f := range strings.Fields(line) {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: day 9: %q", ErrBadInput, line)
			}
			report = append(report, v)
		}
		reports = append(reports, report)
	}

	return reports, nil
}

func sumPredictions(data string, reverse bool) (int, error) {
	reports, err := parseReports(data)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, report := range reports {
		total += predict(report, reverse)
	}

	return total, nil
}

// Day09Part1 sums the forward extrapolation of every report.
func Day09Part1(data string) (int, error) {
	return sumPredictions(data, false)
}

// Day09Part2 sums the backward extrapolation of every report.
func Day09Part2(data string) (int, error) {
	return sumPredictions(data, true)
}
