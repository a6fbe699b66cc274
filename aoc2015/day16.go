package aoc2015

import (
	"fmt"
	"regexp"
	"strconv"
)

// Day 16: Aunt Sue. Match 500 partially-remembered aunts against the ticker
// tape from the MFCSAM, first exactly, then with range readings.

// mfcsamReading is the ticker tape output describing the gift-giving Sue.
var mfcsamReading = map[string]int{
	"children":    3,
	"cats":        7,
	"samoyeds":    2,
	"pomeranians": 3,
	"akitas":      0,
	"vizslas":     0,
	"goldfish":    5,
	"trees":       3,
	"cars":        2,
	"perfumes":    1,
}

type auntSue struct {
	id    int
	props map[string]int
}

var (
	sueIDRe   = regexp.MustCompile(`Sue (\d+)`)
	suePropRe = regexp.MustCompile(`(\w+): (\d+)`)
)

// parseSue reads one line such as "Sue 1: cars: 9, akitas: 3, goldfish: 0".
func parseSue(line string) (auntSue, error) {
	idMatch := sueIDRe.FindStringSubmatch(line)
	if idMatch == nil {
		return auntSue{}, fmt.Errorf("%w: day 16: %q", ErrBadInput, line)
	}
	id, _ := strconv.Atoi(idMatch[1])
	sue := auntSue{id: id, props: make(map[string]int)}
	for _, m := range suePropRe.FindAllStringSubmatch(line, -1) {
		v, _ := strconv.Atoi(m[2])
		sue.props[m[1]] = v
	}

	return sue, nil
}

// matches reports whether the remembered properties are consistent with the
// reading. With ranges enabled, cats and trees read low while pomeranians
// and goldfish read high.
func (s auntSue) matches(reading map[string]int, ranges bool) bool {
	for key, want := range reading {
		have, ok := s.props[key]
		if !ok {
			continue
		}
		if ranges {
			switch key {
			case "cats", "trees":
				if have <= want {
					return false
				}
				continue
			case "pomeranians", "goldfish":
				if have >= want {
					return false
				}
				continue
			}
		}
		if have != want {
			return false
		}
	}

	return true
}

func findSue(data string, ranges bool) (int, error) {
	matched := 0
	count := 0
	for _, line := range splitLines(data) {
		sue, err := parseSue(line)
		if err != nil {
			return 0, err
		}
		if sue.matches(mfcsamReading, ranges) {
			matched = sue.id
			count++
		}
	}
	if count != 1 {
		return 0, fmt.Errorf("%w: day 16: %d aunts match", ErrBadInput, count)
	}

	return matched, nil
}

// Day16Part1 identifies the Sue whose remembered values match exactly.
func Day16Part1(data string) (int, error) {
	return findSue(data, false)
}

// Day16Part2 identifies the Sue under the retroencabulator range readings.
func Day16Part2(data string) (int, error) {
	return findSue(data, true)
}
