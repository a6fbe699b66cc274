package crucible

import "github.com/aockit/aoc/grid"

// turns maps an incoming direction to the directions legal for the next
// block. Reversal is never legal; after a completed block the crucible must
// turn, so the same direction is excluded too. From the initial state all
// four directions are open.
func turns(d Direction) [4]Direction {
	switch d {
	case North, South:
		return [4]Direction{East, West, DirNone, DirNone}
	case East, West:
		return [4]Direction{North, South, DirNone, DirNone}
	default:
		return [4]Direction{North, South, East, West}
	}
}

// Expand returns the legal transitions out of s on g, honoring the block
// formulation: each move enters a new direction and traverses between minRun
// and maxRun cells, its cost the sum of every traversed cell. Moves that
// would leave the grid are omitted. The result is empty when no legal
// transition exists.
//
// Complexity: O(maxRun) per direction; at most 2×(maxRun-minRun+1) moves.
func Expand(g *grid.Grid, s State, minRun, maxRun int) []Move {
	moves := make([]Move, 0, 2*(maxRun-minRun+1))
	for _, d := range turns(s.Dir) {
		if d == DirNone {
			break
		}
		dr, dc := d.delta()

		// Walk the block one cell at a time, accumulating cost. Once the
		// block leaves the grid every longer run does too.
		cost := 0
		for run := 1; run <= maxRun; run++ {
			row, col := s.Row+dr*run, s.Col+dc*run
			if !g.InBounds(row, col) {
				break
			}
			c, _ := g.CostAt(row, col) // in bounds by the check above
			cost += c
			if run < minRun {
				continue
			}
			moves = append(moves, Move{
				State: State{Row: row, Col: col, Dir: d, Run: run},
				Cost:  cost,
			})
		}
	}

	return moves
}
