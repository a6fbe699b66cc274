package aoc2023

import (
	"fmt"
	"strconv"
	"strings"
)

// Day 12: Hot Springs. Count the arrangements of damaged springs matching
// each row's group description, memoised for the fivefold expansion.

type springKey struct {
	record string
	groups string
}

// countArrangements counts the ways record can satisfy the damaged-group
// sizes. '?' may stand for either '.' or '#'.
func countArrangements(record string, groups []int, memo map[springKey]int) int {
	if len(groups) == 0 {
		if strings.ContainsRune(record, '#') {
			return 0
		}
		return 1
	}

	key := springKey{record, fmt.Sprint(groups)}
	if v, ok := memo[key]; ok {
		return v
	}

	minLength := len(groups) - 1
	for _, g := range groups {
		minLength += g
	}

	total := 0
	for i := 0; i+minLength <= len(record); i++ {
		// The run cannot start past a known damaged spring.
		if i > 0 && record[i-1] == '#' {
			break
		}
		fits := !strings.ContainsRune(record[i:i+groups[0]], '.')
		if fits && len(groups) > 1 {
			fits = record[i+groups[0]] != '#'
		}
		if !fits {
			continue
		}
		next := i + groups[0]
		if len(groups) > 1 {
			next++
		}
		total += countArrangements(record[next:], groups[1:], memo)
	}

	memo[key] = total
	return total
}

// expandSpringRow joins copies of the record with '?' and repeats the groups.
func expandSpringRow(record string, groups []int, factor int) (string, []int) {
	parts := make([]string, factor)
	expanded := make([]int, 0, len(groups)*factor)
	for i := range parts {
		parts[i] = record
		expanded = append(expanded, groups...)
	}

	return strings.Join(parts, "?"), expanded
}

func parseSpringRow(line string) (string, []int, error) {
	record, rawGroups, ok := strings.Cut(line, " ")
	if !ok {
		return "", nil, fmt.Errorf("%w: day 12: %q", ErrBadInput, line)
	}
	var groups []int
	for _, f := range strings.Split(rawGroups, ",") {
		g, err := strconv.Atoi(f)
		if err != nil {
			return "", nil, fmt.Errorf("%w: day 12: %q", ErrBadInput, line)
		}
		groups = append(groups, g)
	}

	return record, groups, nil
}

func sumArrangements(data string, factor int) (int, error) {
	total := 0
	for _, line := range splitLines(data) {
		record, groups, err := parseSpringRow(line)
		if err != nil {
			return 0, err
		}
		if factor > 1 {
			record, groups = expandSpringRow(record, groups, factor)
		}
		total += countArrangements(record, groups, make(map[springKey]int))
	}

	return total, nil
}

// Day12Part1 sums arrangement counts for the rows as given.
func Day12Part1(data string) (int, error) {
	return sumArrangements(data, 1)
}

// Day12Part2 sums arrangement counts after fivefold expansion.
func Day12Part2(data string) (int, error) {
	return sumArrangements(data, 5)
}
