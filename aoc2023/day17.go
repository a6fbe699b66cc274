package aoc2023

import (
	"github.com/aockit/aoc/crucible"
	"github.com/aockit/aoc/grid"
)

// Day 17: Clumsy Crucible. Minimise heat loss across the city grid under the
// crucible's run-length constraints.

func minimizeHeatLoss(data string, opts ...crucible.Option) (int, error) {
	g, err := grid.Parse(data)
	if err != nil {
		return 0, err
	}

	return crucible.MinCost(g, opts...)
}

// Day17Part1 routes a crucible that moves at most three blocks straight.
func Day17Part1(data string) (int, error) {
	return minimizeHeatLoss(data)
}

// Day17Part2 routes an ultra crucible moving four to ten blocks per run.
func Day17Part2(data string) (int, error) {
	return minimizeHeatLoss(data, crucible.WithMinRun(4), crucible.WithMaxRun(10))
}
