// Package aoc2023 solves the 2023 Advent of Code puzzles, days 1 through 19.
//
// Each day exposes DayNNPart1 and DayNNPart2 functions taking the raw puzzle
// input and returning the answer. Lookup returns the registered solver pair
// for a day so callers can dispatch by number.
//
// Day 17 is backed by the crucible and grid packages, which implement the
// run-constrained shortest path search the puzzle is built around.
package aoc2023
