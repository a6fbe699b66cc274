// Package grid defines the Grid type and sentinel errors for the
// grid subpackage of github.com/aockit/aoc.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrMalformedGrid indicates the input text is not a rectangular block
	// of decimal digits (empty input, ragged rows, or a non-digit rune).
	ErrMalformedGrid = errors.New("grid: input must be a rectangular block of digits")

	// ErrOutOfBounds indicates a cost lookup outside [0,Height)×[0,Width).
	ErrOutOfBounds = errors.New("grid: cell index out of bounds")
)

// Grid is an immutable 2D field of non-negative integer costs.
// Construct it with Parse; the zero value is an empty grid.
type Grid struct {
	width  int
	height int
	cells  [][]int
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (row, col) lies within the grid boundaries.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}
