package aoc2023

import (
	"fmt"
	"strconv"
	"strings"
)

// Day 5: If You Give A Seed A Fertilizer. Push seed numbers through a chain
// of range-remapping almanac maps and find the lowest final location.

// seedRange is a half-open interval of category numbers.
type seedRange struct {
	start, end int
}

// almanacRule remaps the source interval [start, end) by offset.
type almanacRule struct {
	start, end int
	offset     int
}

// almanacMap converts numbers from one category to the next.
type almanacMap struct {
	name  string
	rules []almanacRule
}

// convert maps a single value through the map. Unmapped values pass through.
func (m almanacMap) convert(v int) int {
	for _, r := range m.rules {
		if v >= r.start && v < r.end {
			return v + r.offset
		}
	}

	return v
}

// convertRange maps an interval through the map, splitting it at rule
// boundaries so each piece shifts uniformly.
func (m almanacMap) convertRange(in seedRange) []seedRange {
	var out []seedRange
	pending := []seedRange{in}
	for _, r := range m.rules {
		var rest []seedRange
		for _, p := range pending {
			lo := p.start
			if r.start > lo {
				lo = r.start
			}
			hi := p.end
			if r.end < hi {
				hi = r.end
			}
			if lo >= hi {
				rest = append(rest, p)
				continue
			}
			out = append(out, seedRange{lo + r.offset, hi + r.offset})
			if p.start < lo {
				rest = append(rest, seedRange{p.start, lo})
			}
			if hi < p.end {
				rest = append(rest, seedRange{hi, p.end})
			}
		}
		pending = rest
	}

	return append(out, pending...)
}

// parseAlmanac splits the input into the seed list and the map pipeline.
func parseAlmanac(data string) ([]int, []almanacMap, error) {
	sections := strings.Split(strings.TrimSpace(data), "\n\n")
	if len(sections) < 2 || !strings.HasPrefix(sections[0], "seeds:") {
		return nil, nil, fmt.Errorf("%w: day 5: missing seeds header", ErrBadInput)
	}
	var seeds []int
	for _, f := range strings.Fields(strings.TrimPrefix(sections[0], "seeds:")) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: day 5: seed %q", ErrBadInput, f)
		}
		seeds = append(seeds, n)
	}

	var pipeline []almanacMap
	for _, section := range sections[1:] {
		lines := splitLines(section)
		if len(lines) == 0 || !strings.HasSuffix(lines[0], "map:") {
			return nil, nil, fmt.Errorf("%w: day 5: bad map header", ErrBadInput)
		}
		m := almanacMap{name: strings.TrimSuffix(lines[0], " map:")}
		for _, line := range lines[1:] {
			fields := strings.Fields(line)
			if len(fields) != 3 {
				return nil, nil, fmt.Errorf("%w: day 5: %q", ErrBadInput, line)
			}
			dest, err1 := strconv.Atoi(fields[0])
			source, err2 := strconv.Atoi(fields[1])
			count, err3 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, nil, fmt.Errorf("%w: day 5: %q", ErrBadInput, line)
			}
			m.rules = append(m.rules, almanacRule{start: source, end: source + count, offset: dest - source})
		}
		pipeline = append(pipeline, m)
	}

	return seeds, pipeline, nil
}

// Day05Part1 returns the lowest location reached by any listed seed.
func Day05Part1(data string) (int, error) {
	seeds, pipeline, err := parseAlmanac(data)
	if err != nil {
		return 0, err
	}
	best := -1
	for _, seed := range seeds {
		v := seed
		for _, m := range pipeline {
			v = m.convert(v)
		}
		if best < 0 || v < best {
			best = v
		}
	}
	if best < 0 {
		return 0, fmt.Errorf("%w: day 5: no seeds", ErrBadInput)
	}

	return best, nil
}

// Day05Part2 treats the seed list as start/length pairs and returns the
// lowest location across the full ranges.
func Day05Part2(data string) (int, error) {
	seeds, pipeline, err := parseAlmanac(data)
	if err != nil {
		return 0, err
	}
	if len(seeds)%2 != 0 {
		return 0, fmt.Errorf("%w: day 5: odd seed range list", ErrBadInput)
	}
	var ranges []seedRange
	for i := 0; i < len(seeds); i += 2 {
		ranges = append(ranges, seedRange{seeds[i], seeds[i] + seeds[i+1]})
	}
	for _, m := range pipeline {
		var next []seedRange
		for _, r := range ranges {
			next = append(next, m.convertRange(r)...)
		}
		ranges = next
	}
	best := -1
	for _, r := range ranges {
		if best < 0 || r.start < best {
			best = r.start
		}
	}
	if best < 0 {
		return 0, fmt.Errorf("%w: day 5: no seed ranges", ErrBadInput)
	}

	return best, nil
}
