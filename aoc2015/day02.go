package aoc2015

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Day 2: I Was Told There Would Be No Math. Wrapping paper and ribbon for
// a list of LxWxH present dimensions.

// parseDimensions parses one "LxWxH" line into sorted side lengths.
func parseDimensions(line string) ([3]int, error) {
	var dims [3]int
	parts := strings.Split(strings.TrimSpace(line), "x")
	if len(parts) != 3 {
		return dims, fmt.Errorf("%w: day 2: %q", ErrBadInput, line)
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return dims, fmt.Errorf("%w: day 2: %q", ErrBadInput, line)
		}
		dims[i] = n
	}
	sort.Ints(dims[:])

	return dims, nil
}

// Day02Part1 returns the total wrapping paper: surface area plus the area
// of the smallest side as slack.
func Day02Part1(data string) (int, error) {
	total := 0
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		d, err := parseDimensions(line)
		if err != nil {
			return 0, err
		}
		l, w, h := d[0], d[1], d[2]
		total += 2*l*w + 2*w*h + 2*h*l + l*w
	}

	return total, nil
}

// Day02Part2 returns the total ribbon: the smallest perimeter around the
// present plus its volume for the bow.
func Day02Part2(data string) (int, error) {
	total := 0
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		d, err := parseDimensions(line)
		if err != nil {
			return 0, err
		}
		total += 2*(d[0]+d[1]) + d[0]*d[1]*d[2]
	}

	return total, nil
}
