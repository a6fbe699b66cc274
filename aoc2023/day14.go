package aoc2023

import "strings"

// Day 14: Parabolic Reflector Dish. Round rocks roll when the platform
// tilts; spin cycles repeat, so the billionth state is found by cycle
// detection.

type rockPlatform [][]byte

func parsePlatform(data string) rockPlatform {
	lines := splitLines(data)
	p := make(rockPlatform, len(lines))
	for i, line := range lines {
		p[i] = []byte(line)
	}

	return p
}

func (p rockPlatform) String() string {
	rows := make([]string, len(p))
	for i, row := range p {
		rows[i] = string(row)
	}

	return strings.Join(rows, "\n")
}

// tiltNorth rolls every round rock as far up as it can go.
func (p rockPlatform) tiltNorth() {
	for col := 0; col < len(p[0]); col++ {
		free := 0
		for row := 0; row < len(p); row++ {
			switch p[row][col] {
			case '#':
				free = row + 1
			case 'O':
				p[row][col] = '.'
				p[free][col] = 'O'
				free++
			}
		}
	}
}

// rotate turns the platform 90 degrees clockwise so one tilt routine covers
// all four directions.
func (p rockPlatform) rotate() rockPlatform {
	if len(p) == 0 {
		return p
	}
	out := make(rockPlatform, len(p[0]))
	for i := range out {
		out[i] = make([]byte, len(p))
		for j := range out[i] {
			out[i][j] = p[len(p)-1-j][i]
		}
	}

	return out
}

// spinCycle tilts north, west, south and east in order.
func (p rockPlatform) spinCycle() rockPlatform {
	for i := 0; i < 4; i++ {
		p.tiltNorth()
		p = p.rotate()
	}

	return p
}

// northLoad sums the distance of each round rock from the south edge.
func (p rockPlatform) northLoad() int {
	load := 0
	for i, row := range p {
		for _, c := range row {
			if c == 'O' {
				load += len(p) - i
			}
		}
	}

	return load
}

// Day14Part1 returns the north load after a single tilt north.
func Day14Part1(data string) (int, error) {
	p := parsePlatform(data)
	if len(p) == 0 {
		return 0, nil
	}
	p.tiltNorth()

	return p.northLoad(), nil
}

// Day14Part2 returns the north load after a billion spin cycles.
func Day14Part2(data string) (int, error) {
	const iterations = 1000000000
	p := parsePlatform(data)
	if len(p) == 0 {
		return 0, nil
	}
	seen := map[string]int{}
	var states []rockPlatform
	for i := 0; i < iterations; i++ {
		key := p.String()
		if start, ok := seen[key]; ok {
			loop := i - start
			final := states[start+(iterations-start)%loop]
			return final.northLoad(), nil
		}
		seen[key] = i
		states = append(states, p)
		p = p.copyPlatform().spinCycle()
	}

	return p.northLoad(), nil
}

func (p rockPlatform) copyPlatform() rockPlatform {
	out := make(rockPlatform, len(p))
	for i, row := range p {
		out[i] = append([]byte(nil), row...)
	}

	return out
}
