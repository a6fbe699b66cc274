// Package aoc is a curated collection of Advent of Code solutions with
// the reusable algorithm kernels factored out as standalone packages.
//
// 🚀 What is aoc?
//
//	A pure-Go puzzle corpus that brings together:
//		• Puzzle years: aoc2015 and aoc2023, days 1-19 each, two parts per day
//		• Grid primitives: digit cost grids with bounds-checked access
//		• Crucible search: run-constrained weighted shortest path over a grid
//		• Number theory: GCD, LCM, Bezout coefficients, Chinese remainder
//		• A thin CLI: cmd/aoc dispatches a year and day against its input
//
// ✨ Why this layout?
//
//   - Uniform solver API – every part is func(input string) (answer, error)
//   - Honest errors – malformed input surfaces ErrBadInput, never a panic
//   - Reusable kernels – grid, crucible and numtheory stand on their own
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under these subpackages:
//
//	aoc2015/   — Advent of Code 2015, days 1-19
//	aoc2023/   — Advent of Code 2023, days 1-19
//	grid/      — rectangular digit grids with per-cell costs
//	crucible/  — minimum heat loss search with run-length constraints
//	numtheory/ — integer arithmetic helpers shared by the solvers
//	cmd/aoc/   — command line runner
//
// Quick ASCII example:
//
//	2413
//	3215
//	3255
//
//	a 3x4 cost grid; crucible.MinCost finds the cheapest corner-to-corner
//	path whose straight runs stay within the configured bounds.
//
//	go get github.com/aockit/aoc
package aoc
