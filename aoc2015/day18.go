package aoc2015

import (
	"strings"
)

// Day 18: Like a GIF For Your Yard. A Conway-style light grid animated for a
// fixed number of steps, optionally with the four corners stuck on.

const lightSteps = 100

// lightGrid holds the on/off state of the animated lights.
type lightGrid struct {
	cells     [][]bool
	cornersOn bool
}

func parseLightGrid(data string, cornersOn bool) *lightGrid {
	var cells [][]bool
	for _, line := range splitLines(data) {
		row := make([]bool, len(line))
		for i := range line {
			row[i] = line[i] == '#'
		}
		cells = append(cells, row)
	}
	g := &lightGrid{cells: cells, cornersOn: cornersOn}
	g.forceCorners()

	return g
}

func (g *lightGrid) forceCorners() {
	if !g.cornersOn || len(g.cells) == 0 {
		return
	}
	rows, cols := len(g.cells), len(g.cells[0])
	g.cells[0][0] = true
	g.cells[0][cols-1] = true
	g.cells[rows-1][0] = true
	g.cells[rows-1][cols-1] = true
}

func (g *lightGrid) neighborsOn(row, col int) int {
	count := 0
	for i := row - 1; i <= row+1; i++ {
		for j := col - 1; j <= col+1; j++ {
			if i == row && j == col {
				continue
			}
			if i < 0 || i >= len(g.cells) || j < 0 || j >= len(g.cells[i]) {
				continue
			}
			if g.cells[i][j] {
				count++
			}
		}
	}

	return count
}

// animate computes the next configuration. All lights update simultaneously.
func (g *lightGrid) animate() *lightGrid {
	next := make([][]bool, len(g.cells))
	for i, row := range g.cells {
		next[i] = make([]bool, len(row))
		for j, on := range row {
			n := g.neighborsOn(i, j)
			next[i][j] = n == 3 || (on && n == 2)
		}
	}
	ng := &lightGrid{cells: next, cornersOn: g.cornersOn}
	ng.forceCorners()

	return ng
}

func (g *lightGrid) lit() int {
	count := 0
	for _, row := range g.cells {
		for _, on := range row {
			if on {
				count++
			}
		}
	}

	return count
}

func (g *lightGrid) String() string {
	var b strings.Builder
	for i, row := range g.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, on := range row {
			if on {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}

	return b.String()
}

func runLightAnimation(data string, steps int, cornersOn bool) int {
	g := parseLightGrid(data, cornersOn)
	for i := 0; i < steps; i++ {
		g = g.animate()
	}

	return g.lit()
}

// Day18Part1 counts lit lights after 100 animation steps.
func Day18Part1(data string) (int, error) {
	return runLightAnimation(data, lightSteps, false), nil
}

// Day18Part2 counts lit lights after 100 steps with stuck corners.
func Day18Part2(data string) (int, error) {
	return runLightAnimation(data, lightSteps, true), nil
}
