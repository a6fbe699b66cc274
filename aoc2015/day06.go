package aoc2015

import (
	"fmt"
	"strconv"
	"strings"
)

// Day 6: Probably a Fire Hazard. A million-light grid driven by turn on,
// turn off and toggle instructions over rectangular regions.

type lightRect struct {
	action         string
	x1, y1, x2, y2 int
}

// parseLightRect parses one instruction line such as
// "turn on 0,0 through 999,999" or "toggle 0,0 through 999,0".
func parseLightRect(line string) (lightRect, error) {
	fields := strings.Fields(line)
	var r lightRect
	switch {
	case len(fields) == 5 && fields[0] == "turn" && (fields[1] == "on" || fields[1] == "off"):
		r.action = fields[1]
		fields = fields[2:]
	case len(fields) == 4 && fields[0] == "toggle":
		r.action = "toggle"
		fields = fields[1:]
	default:
		return r, fmt.Errorf("%w: day 6: %q", ErrBadInput, line)
	}
	if fields[1] != "through" {
		return r, fmt.Errorf("%w: day 6: %q", ErrBadInput, line)
	}
	corners := [2][2]*int{{&r.x1, &r.y1}, {&r.x2, &r.y2}}
	for i, raw := range []string{fields[0], fields[2]} {
		parts := strings.Split(raw, ",")
		if len(parts) != 2 {
			return r, fmt.Errorf("%w: day 6: %q", ErrBadInput, line)
		}
		for j, p := range parts {
			n, err := strconv.Atoi(p)
			if err != nil {
				return r, fmt.Errorf("%w: day 6: %q", ErrBadInput, line)
			}
			*corners[i][j] = n
		}
	}

	return r, nil
}

// Day06Part1 counts lights that are on after applying all instructions,
// treating each light as a boolean.
func Day06Part1(data string) (int, error) {
	var lights [1000][1000]bool
	for _, line := range splitLines(data) {
		r, err := parseLightRect(line)
		if err != nil {
			return 0, err
		}
		for x := r.x1; x <= r.x2; x++ {
			for y := r.y1; y <= r.y2; y++ {
				switch r.action {
				case "on":
					lights[x][y] = true
				case "off":
					lights[x][y] = false
				case "toggle":
					lights[x][y] = !lights[x][y]
				}
			}
		}
	}
	lit := 0
	for x := range lights {
		for y := range lights[x] {
			if lights[x][y] {
				lit++
			}
		}
	}

	return lit, nil
}

// Day06Part2 sums total brightness when instructions adjust per-light
// brightness instead of a boolean state.
func Day06Part2(data string) (int, error) {
	var lights [1000][1000]int
	for _, line := range splitLines(data) {
		r, err := parseLightRect(line)
		if err != nil {
			return 0, err
		}
		for x := r.x1; x <= r.x2; x++ {
			for y := r.y1; y <= r.y2; y++ {
				switch r.action {
				case "on":
					lights[x][y]++
				case "off":
					if lights[x][y] > 0 {
						lights[x][y]--
					}
				case "toggle":
					lights[x][y] += 2
				}
			}
		}
	}
	total := 0
	for x := range lights {
		for y := range lights[x] {
			total += lights[x][y]
		}
	}

	return total, nil
}
