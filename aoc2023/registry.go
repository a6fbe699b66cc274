package aoc2023

import (
	"errors"
	"strconv"
)

// ErrBadInput indicates puzzle input that does not match the expected
// format for the day. Wrapped with detail at the point of failure.
var ErrBadInput = errors.New("aoc2023: malformed puzzle input")

// Part computes one part's answer from the raw puzzle input.
type Part func(data string) (string, error)

// Day bundles the two parts of one puzzle day.
type Day struct {
	Part1 Part
	Part2 Part
}

// intPart adapts an integer-answer solver to the Part signature.
func intPart(f func(string) (int, error)) Part {
	return func(data string) (string, error) {
		n, err := f(data)
		if err != nil {
			return "", err
		}

		return strconv.Itoa(n), nil
	}
}

var days = map[int]Day{
	1:  {intPart(Day01Part1), intPart(Day01Part2)},
	2:  {intPart(Day02Part1), intPart(Day02Part2)},
	3:  {intPart(Day03Part1), intPart(Day03Part2)},
	4:  {intPart(Day04Part1), intPart(Day04Part2)},
	5:  {intPart(Day05Part1), intPart(Day05Part2)},
	6:  {intPart(Day06Part1), intPart(Day06Part2)},
	7:  {intPart(Day07Part1), intPart(Day07Part2)},
	8:  {intPart(Day08Part1), intPart(Day08Part2)},
	9:  {intPart(Day09Part1), intPart(Day09Part2)},
	10: {intPart(Day10Part1), intPart(Day10Part2)},
	11: {intPart(Day11Part1), intPart(Day11Part2)},
	12: {intPart(Day12Part1), intPart(Day12Part2)},
	13: {intPart(Day13Part1), intPart(Day13Part2)},
	14: {intPart(Day14Part1), intPart(Day14Part2)},
	15: {intPart(Day15Part1), intPart(Day15Part2)},
	16: {intPart(Day16Part1), intPart(Day16Part2)},
	17: {intPart(Day17Part1), intPart(Day17Part2)},
	18: {intPart(Day18Part1), intPart(Day18Part2)},
	19: {intPart(Day19Part1), intPart(Day19Part2)},
}

// Lookup returns the solutions for the given day, if implemented.
func Lookup(day int) (Day, bool) {
	d, ok := days[day]

	return d, ok
}
