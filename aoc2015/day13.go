package aoc2015

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
)

// Day 13: Knights of the Dinner Table. Seat guests around a circular table
// to maximise total pairwise happiness.

var happinessRe = regexp.MustCompile(
	`(\w+) would (gain|lose) (\d+) happiness units by sitting next to (\w+)\.`)

// parseHappiness builds the directed happiness table from input lines.
func parseHappiness(data string) (map[string]map[string]int, error) {
	happiness := make(map[string]map[string]int)
	for _, line := range splitLines(data) {
		m := happinessRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: day 13: %q", ErrBadInput, line)
		}
		units, err := strconv.Atoi(m[3])
		if err != nil {
			return nil, fmt.Errorf("%w: day 13: %q", ErrBadInput, line)
		}
		if m[2] == "lose" {
			units = -units
		}
		if happiness[m[1]] == nil {
			happiness[m[1]] = make(map[string]int)
		}
		happiness[m[1]][m[4]] = units
	}

	return happiness, nil
}

// bestSeating tries every circular arrangement of the attendees and returns
// the maximum total happiness change.
func bestSeating(attendees []string, happiness map[string]map[string]int) int {
	best := 0
	var seat func(table []string, remaining []string, score int)
	seat = func(table []string, remaining []string, score int) {
		if len(remaining) == 0 {
			if len(table) > 1 {
				score += happiness[table[len(table)-1]][table[0]]
				score += happiness[table[0]][table[len(table)-1]]
			}
			if score > best {
				best = score
			}
			return
		}
		for i, guest := range remaining {
			step := 0
			if len(table) > 0 {
				last := table[len(table)-1]
				step = happiness[last][guest] + happiness[guest][last]
			}
			rest := make([]string, 0, len(remaining)-1)
			rest = append(rest, remaining[:i]...)
			rest = append(rest, remaining[i+1:]...)
			seat(append(table, guest), rest, score+step)
		}
	}
	seat(nil, attendees, 0)

	return best
}

func attendeeNames(happiness map[string]map[string]int) []string {
	names := make([]string, 0, len(happiness))
	for name := range happiness {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Day13Part1 returns the optimal happiness change for the listed guests.
func Day13Part1(data string) (int, error) {
	happiness, err := parseHappiness(data)
	if err != nil {
		return 0, err
	}

	return bestSeating(attendeeNames(happiness), happiness), nil
}

// Day13Part2 adds an apathetic self to the table before optimising.
func Day13Part2(data string) (int, error) {
	happiness, err := parseHappiness(data)
	if err != nil {
		return 0, err
	}
	names := attendeeNames(happiness)
	happiness[""] = make(map[string]int)
	for _, name := range names {
		happiness[""][name] = 0
		happiness[name][""] = 0
	}

	return bestSeating(append(names, ""), happiness), nil
}
