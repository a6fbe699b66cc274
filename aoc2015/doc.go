// Package aoc2015 contains the Advent of Code 2015 solutions, days 1-19.
//
// Each day lives in its own file and exposes DayNNPart1 and DayNNPart2
// taking the raw puzzle input text. Days whose puzzle fixes a parameter
// (race duration, container volume, animation steps) keep a parameterized
// variant underneath so alternate values can be exercised directly.
//
// Lookup maps a day number to its two parts with answers formatted as
// strings, for use by the command-line dispatcher.
package aoc2015
