package aoc2023

import (
	"fmt"
	"strconv"
	"strings"
)

// Day 2: Cube Conundrum. Judge which games fit in a bag of 12 red, 13 green
// and 14 blue cubes, then compute the power of each game's minimum cube set.

var cubeLimits = map[string]int{
	"red":   12,
	"green": 13,
	"blue":  14,
}

// parseGame reads one game line and returns its ID with the maximum count
// revealed per color.
func parseGame(line string) (int, map[string]int, error) {
	head, results, ok := strings.Cut(line, ":")
	if !ok || !strings.HasPrefix(head, "Game ") {
		return 0, nil, fmt.Errorf("%w: day 2: %q", ErrBadInput, line)
	}
	id, err := strconv.Atoi(strings.TrimPrefix(head, "Game "))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: day 2: %q", ErrBadInput, line)
	}
	maxSeen := make(map[string]int)
	for _, reveal := range strings.Split(results, ";") {
		for _, cubes := range strings.Split(reveal, ",") {
			count, color, ok := strings.Cut(strings.TrimSpace(cubes), " ")
			if !ok {
				return 0, nil, fmt.Errorf("%w: day 2: %q", ErrBadInput, line)
			}
			n, err := strconv.Atoi(count)
			if err != nil {
				return 0, nil, fmt.Errorf("%w: day 2: %q", ErrBadInput, line)
			}
			if n > maxSeen[color] {
				maxSeen[color] = n
			}
		}
	}

	return id, maxSeen, nil
}

// Day02Part1 sums the IDs of games possible within the cube limits.
func Day02Part1(data string) (int, error) {
	total := 0
	for _, line := range splitLines(data) {
		id, maxSeen, err := parseGame(line)
		if err != nil {
			return 0, err
		}
		possible := true
		for color, n := range maxSeen {
			if limit, ok := cubeLimits[color]; !ok || n > limit {
				possible = false
				break
			}
		}
		if possible {
			total += id
		}
	}

	return total, nil
}

// Day02Part2 sums the powers of the minimum cube set of each game.
func Day02Part2(data string) (int, error) {
	total := 0
	for _, line := range splitLines(data) {
		_, maxSeen, err := parseGame(line)
		if err != nil {
			return 0, err
		}
		power := 1
		for _, n := range maxSeen {
			power *= n
		}
		total += power
	}

	return total, nil
}
