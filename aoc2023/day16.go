package aoc2023

// Day 16: The Floor Will Be Lava. Trace a light beam through mirrors and
// splitters and count energized tiles, then pick the best edge entry.

type beam struct {
	row, col int
	dir      Direction16
}

// Direction16 is a beam heading on the contraption grid.
type Direction16 uint8

const (
	beamUp Direction16 = iota
	beamDown
	beamLeft
	beamRight
)

func (d Direction16) step(row, col int) (int, int) {
	switch d {
	case beamUp:
		return row - 1, col
	case beamDown:
		return row + 1, col
	case beamLeft:
		return row, col - 1
	default:
		return row, col + 1
	}
}

// deflect returns the outgoing headings for a beam hitting tile c.
func (d Direction16) deflect(c byte) []Direction16 {
	switch c {
	case '/':
		switch d {
		case beamRight:
			return []Direction16{beamUp}
		case beamLeft:
			return []Direction16{beamDown}
		case beamUp:
			return []Direction16{beamRight}
		default:
			return []Direction16{beamLeft}
		}
	case '\\':
		switch d {
		case beamRight:
			return []Direction16{beamDown}
		case beamLeft:
			return []Direction16{beamUp}
		case beamUp:
			return []Direction16{beamLeft}
		default:
			return []Direction16{beamRight}
		}
	case '-':
		if d == beamUp || d == beamDown {
			return []Direction16{beamLeft, beamRight}
		}
	case '|':
		if d == beamLeft || d == beamRight {
			return []Direction16{beamUp, beamDown}
		}
	}

	return []Direction16{d}
}

// illuminate counts the tiles energized by a beam entering at start.
func illuminate(grid []string, start beam) int {
	seen := make(map[beam]bool)
	tiles := make(map[[2]int]bool)
	stack := []beam{start}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b.row < 0 || b.row >= len(grid) || b.col < 0 || b.col >= len(grid[b.row]) {
			continue
		}
		if seen[b] {
			continue
		}
		seen[b] = true
		tiles[[2]int{b.row, b.col}] = true
		for _, dir := range b.dir.deflect(grid[b.row][b.col]) {
			row, col := dir.step(b.row, b.col)
			stack = append(stack, beam{row: row, col: col, dir: dir})
		}
	}

	return len(tiles)
}

// Day16Part1 counts energized tiles for a beam entering top-left heading
// right.
func Day16Part1(data string) (int, error) {
	return illuminate(splitLines(data), beam{dir: beamRight}), nil
}

// Day16Part2 tries every edge entry and returns the best energized count.
func Day16Part2(data string) (int, error) {
	grid := splitLines(data)
	if len(grid) == 0 {
		return 0, nil
	}
	best := 0
	check := func(b beam) {
		if n := illuminate(grid, b); n > best {
			best = n
		}
	}
	for col := 0; col < len(grid[0]); col++ {
		check(beam{row: 0, col: col, dir: beamDown})
		check(beam{row: len(grid) - 1, col: col, dir: beamUp})
	}
	for row := 0; row < len(grid); row++ {
		check(beam{row: row, col: 0, dir: beamRight})
		check(beam{row: row, col: len(grid[0]) - 1, dir: beamLeft})
	}

	return best, nil
}
