package grid

import (
	"fmt"
	"strings"
)

// Parse builds a Grid from a block of text, one line per row, each character
// a decimal digit. Leading and trailing whitespace around the block is
// trimmed; interior lines are taken verbatim.
//
// Returns ErrMalformedGrid (wrapped with detail) if the input is empty, any
// row length differs from the first, or any rune is not a digit 0-9.
//
// Complexity: O(W×H) time and memory.
func Parse(text string) (*Grid, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedGrid)
	}

	width := len(lines[0])
	cells := make([][]int, len(lines))
	for row, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d",
				ErrMalformedGrid, row, len(line), width)
		}
		cells[row] = make([]int, width)
		for col, r := range line {
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("%w: row %d col %d: %q is not a digit",
					ErrMalformedGrid, row, col, r)
			}
			cells[row][col] = int(r - '0')
		}
	}

	return &Grid{width: width, height: len(lines), cells: cells}, nil
}

// CostAt returns the cost stored at (row, col).
// Returns ErrOutOfBounds if the indices fall outside the grid; callers on
// the hot path should check InBounds and use the value unchecked.
func (g *Grid) CostAt(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d",
			ErrOutOfBounds, row, col, g.height, g.width)
	}

	return g.cells[row][col], nil
}
