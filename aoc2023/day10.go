package aoc2023

import (
	"fmt"
	"strings"
)

// Day 10: Pipe Maze. Trace the loop of pipe starting at S, then count the
// tiles enclosed by it with a scanline parity test.

type pipeMaze struct {
	rows []string
}

type mazePos struct{ row, col int }

func parsePipeMaze(data string) pipeMaze {
	return pipeMaze{rows: splitLines(data)}
}

func (m pipeMaze) at(p mazePos) byte {
	if p.row < 0 || p.row >= len(m.rows) || p.col < 0 || p.col >= len(m.rows[p.row]) {
		return '.'
	}

	return m.rows[p.row][p.col]
}

// connections lists the neighbor positions a pipe tile opens toward.
func (m pipeMaze) connections(p mazePos) []mazePos {
	var out []mazePos
	c := m.at(p)
	if strings.IndexByte("|LJS", c) >= 0 {
		out = append(out, mazePos{p.row - 1, p.col})
	}
	if strings.IndexByte("|7FS", c) >= 0 {
		out = append(out, mazePos{p.row + 1, p.col})
	}
	if strings.IndexByte("-J7S", c) >= 0 {
		out = append(out, mazePos{p.row, p.col - 1})
	}
	if strings.IndexByte("-LFS", c) >= 0 {
		out = append(out, mazePos{p.row, p.col + 1})
	}
	if c == 'S' {
		// S opens everywhere; keep only neighbors that open back.
		var mutual []mazePos
		for _, n := range out {
			for _, back := range m.connections(n) {
				if back == p {
					mutual = append(mutual, n)
					break
				}
			}
		}
		out = mutual
	}

	return out
}

func (m pipeMaze) findStart() (mazePos, error) {
	for i, row := range m.rows {
		if j := strings.IndexByte(row, 'S'); j >= 0 {
			return mazePos{i, j}, nil
		}
	}

	return mazePos{}, fmt.Errorf("%w: day 10: no start tile", ErrBadInput)
}

// loopTiles returns the set of tiles on the loop through S.
func (m pipeMaze) loopTiles() (map[mazePos]bool, error) {
	start, err := m.findStart()
	if err != nil {
		return nil, err
	}
	visited := map[mazePos]bool{start: true}
	frontier := m.connections(start)
	for len(frontier) > 0 {
		p := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if visited[p] {
			continue
		}
		visited[p] = true
		for _, n := range m.connections(p) {
			if !visited[n] {
				frontier = append(frontier, n)
			}
		}
	}

	return visited, nil
}

// startShape infers the pipe shape hidden under S from its two connections.
func (m pipeMaze) startShape(start mazePos) byte {
	conns := m.connections(start)
	up, down, left, right := false, false, false, false
	for _, n := range conns {
		switch {
		case n.row < start.row:
			up = true
		case n.row > start.row:
			down = true
		case n.col < start.col:
			left = true
		default:
			right = true
		}
	}
	switch {
	case up && down:
		return '|'
	case left && right:
		return '-'
	case up && right:
		return 'L'
	case up && left:
		return 'J'
	case down && left:
		return '7'
	default:
		return 'F'
	}
}

// containedTiles counts tiles strictly inside the loop. A tile is inside when
// the loop crossings to its left are odd; corner pairs F..J and L..7 count as
// one crossing.
func (m pipeMaze) containedTiles() ([]mazePos, error) {
	loop, err := m.loopTiles()
	if err != nil {
		return nil, err
	}
	start, err := m.findStart()
	if err != nil {
		return nil, err
	}
	startShape := m.startShape(start)

	var contained []mazePos
	for i, row := range m.rows {
		enclosed := false
		var lastCorner byte
		for j := 0; j < len(row); j++ {
			p := mazePos{i, j}
			c := row[j]
			if p == start {
				c = startShape
			}
			if loop[p] {
				switch c {
				case '|':
					enclosed = !enclosed
				case 'J':
					if lastCorner == 'F' {
						enclosed = !enclosed
					}
					lastCorner = c
				case '7':
					if lastCorner == 'L' {
						enclosed = !enclosed
					}
					lastCorner = c
				case 'L', 'F':
					lastCorner = c
				}
				continue
			}
			if enclosed {
				contained = append(contained, p)
			}
		}
	}

	return contained, nil
}

// Day10Part1 returns the farthest loop distance from the start, half the
// loop length.
func Day10Part1(data string) (int, error) {
	loop, err := parsePipeMaze(data).loopTiles()
	if err != nil {
		return 0, err
	}

	return len(loop) / 2, nil
}

// Day10Part2 counts the tiles enclosed by the loop.
func Day10Part2(data string) (int, error) {
	contained, err := parsePipeMaze(data).containedTiles()
	if err != nil {
		return 0, err
	}

	return len(contained), nil
}
