package aoc2023

import (
	"fmt"
	"regexp"
	"strconv"
)

// Day 18: Lavaduct Lagoon. The dig plan traces a closed rectilinear polygon;
// the lagoon volume is its lattice area including the trench itself,
// computed with the shoelace formula and Pick's theorem.

type digStep struct {
	dir   byte
	count int
}

var digLineRe = regexp.MustCompile(`^([LRDU])\s+(\d+)\s+\(#([0-9a-f]{5})([0-3])\)$`)

// parseDigPlan reads the dig plan. With swapped true the hex color encodes
// the real distance and direction.
func parseDigPlan(data string, swapped bool) ([]digStep, error) {
	var steps []digStep
	for _, line := range splitLines(data) {
		m := digLineRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: day 18: %q", ErrBadInput, line)
		}
		var step digStep
		if swapped {
			n, err := strconv.ParseInt(m[3], 16, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: day 18: %q", ErrBadInput, line)
			}
			step.count = int(n)
			step.dir = "RDLU"[m[4][0]-'0']
		} else {
			n, err := strconv.Atoi(m[2])
			if err != nil {
				return nil, fmt.Errorf("%w: day 18: %q", ErrBadInput, line)
			}
			step.count = n
			step.dir = m[1][0]
		}
		steps = append(steps, step)
	}

	return steps, nil
}

// lagoonVolume returns the number of cubic meters dug out: the polygon's
// interior lattice points plus its boundary.
func lagoonVolume(steps []digStep) (int, error) {
	x, y := 0, 0
	shoelace := 0
	perimeter := 0
	for _, s := range steps {
		nx, ny := x, y
		switch s.dir {
		case 'L':
			nx -= s.count
		case 'R':
			nx += s.count
		case 'U':
			ny -= s.count
		case 'D':
			ny += s.count
		}
		shoelace += x*ny - nx*y
		perimeter += s.count
		x, y = nx, ny
	}
	if x != 0 || y != 0 {
		return 0, fmt.Errorf("%w: day 18: dig plan is not closed", ErrBadInput)
	}
	if shoelace < 0 {
		shoelace = -shoelace
	}
	// Pick's theorem: interior = area - boundary/2 + 1.
	interior := shoelace/2 - perimeter/2 + 1

	return interior + perimeter, nil
}

// Day18Part1 digs by the plain direction and distance columns.
func Day18Part1(data string) (int, error) {
	steps, err := parseDigPlan(data, false)
	if err != nil {
		return 0, err
	}

	return lagoonVolume(steps)
}

// Day18Part2 digs by the distances hidden in the hex colors.
func Day18Part2(data string) (int, error) {
	steps, err := parseDigPlan(data, true)
	if err != nil {
		return 0, err
	}

	return lagoonVolume(steps)
}
