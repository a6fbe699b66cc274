package aoc2015

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Day 9: All in a Single Night. Visit every location exactly once, starting
// and ending anywhere, and report the shortest or longest total distance.

// parseDistances builds a symmetric distance table from lines such as
// "London to Dublin = 464".
func parseDistances(data string) (map[string]map[string]int, error) {
	distances := make(map[string]map[string]int)
	add := func(a, b string, d int) {
		if distances[a] == nil {
			distances[a] = make(map[string]int)
		}
		distances[a][b] = d
	}
	for _, line := range splitLines(data) {
		route, rawDist, ok := strings.Cut(line, " = ")
		if !ok {
			return nil, fmt.Errorf("%w: day 9: %q", ErrBadInput, line)
		}
		from, to, ok := strings.Cut(route, " to ")
		if !ok {
			return nil, fmt.Errorf("%w: day 9: %q", ErrBadInput, line)
		}
		d, err := strconv.Atoi(rawDist)
		if err != nil {
			return nil, fmt.Errorf("%w: day 9: %q", ErrBadInput, line)
		}
		add(from, to, d)
		add(to, from, d)
	}

	return distances, nil
}

// routeDistances walks every permutation of the remaining places and calls fn
// with each complete route's total distance.
func routeDistances(last string, remaining []string, total int, distances map[string]map[string]int, fn func(int)) {
	if len(remaining) == 0 {
		fn(total)
		return
	}
	for i, place := range remaining {
		step := 0
		if last != "" {
			step = distances[last][place]
		}
		rest := make([]string, 0, len(remaining)-1)
		rest = append(rest, remaining[:i]...)
		rest = append(rest, remaining[i+1:]...)
		routeDistances(place, rest, total+step, distances, fn)
	}
}

func allPlaces(distances map[string]map[string]int) []string {
	places := make([]string, 0, len(distances))
	for place := range distances {
		places = append(places, place)
	}
	sort.Strings(places)

	return places
}

// Day09Part1 returns the distance of the shortest complete route.
func Day09Part1(data string) (int, error) {
	distances, err := parseDistances(data)
	if err != nil {
		return 0, err
	}
	best := -1
	routeDistances("", allPlaces(distances), 0, distances, func(total int) {
		if best < 0 || total < best {
			best = total
		}
	})

	return best, nil
}

// Day09Part2 returns the distance of the longest complete route.
func Day09Part2(data string) (int, error) {
	distances, err := parseDistances(data)
	if err != nil {
		return 0, err
	}
	best := 0
	routeDistances("", allPlaces(distances), 0, distances, func(total int) {
		if total > best {
			best = total
		}
	})

	return best, nil
}
