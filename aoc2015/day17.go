package aoc2015

import (
	"fmt"
	"strconv"
)

// Day 17: No Such Thing as Too Much. Count the combinations of containers
// that exactly hold the eggnog, then only the minimal-size combinations.

const eggnogLiters = 150

func parseContainers(data string) ([]int, error) {
	var containers []int
	for _, line := range splitLines(data) {
		size, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("%w: day 17: %q", ErrBadInput, line)
		}
		containers = append(containers, size)
	}

	return containers, nil
}

// countFills accumulates, per combination size, the number of container
// subsets summing exactly to the remaining quantity.
func countFills(remaining int, containers []int, used int, sizes map[int]int) {
	if remaining == 0 {
		sizes[used]++
		return
	}
	for i, c := range containers {
		if c > remaining {
			continue
		}
		countFills(remaining-c, containers[i+1:], used+1, sizes)
	}
}

func day17Part1(data string, qty int) (int, error) {
	containers, err := parseContainers(data)
	if err != nil {
		return 0, err
	}
	sizes := make(map[int]int)
	countFills(qty, containers, 0, sizes)
	total := 0
	for _, n := range sizes {
		total += n
	}

	return total, nil
}

func day17Part2(data string, qty int) (int, error) {
	containers, err := parseContainers(data)
	if err != nil {
		return 0, err
	}
	sizes := make(map[int]int)
	countFills(qty, containers, 0, sizes)
	minUsed := -1
	for used := range sizes {
		if minUsed < 0 || used < minUsed {
			minUsed = used
		}
	}
	if minUsed < 0 {
		return 0, nil
	}

	return sizes[minUsed], nil
}

// Day17Part1 counts every combination holding exactly 150 liters.
func Day17Part1(data string) (int, error) {
	return day17Part1(data, eggnogLiters)
}

// Day17Part2 counts only the combinations using the fewest containers.
func Day17Part2(data string) (int, error) {
	return day17Part2(data, eggnogLiters)
}
