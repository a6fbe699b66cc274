// Package grid provides an immutable rectangular grid of single-digit,
// non-negative integer costs, parsed from a block of text.
//
// Overview:
//
//   - A Grid is built once from input text via Parse and never mutated.
//   - Cells are addressed by (row, col) with 0 <= row < Height() and
//     0 <= col < Width().
//   - Parse validates shape strictly: every line must have the same length
//     and contain only the decimal digits 0-9.
//
// When to use:
//
//   - As the cost model for weighted-grid path searches (see package
//     crucible), or any puzzle whose input is a rectangular digit field.
//
// Error handling (sentinel errors):
//
//   - ErrMalformedGrid:
//     Returned by Parse when the input is empty, rows have unequal length,
//     or a character is not a decimal digit. The returned error wraps
//     ErrMalformedGrid with the offending line or character.
//   - ErrOutOfBounds:
//     Returned by CostAt when indices fall outside the grid. This is a
//     defensive guard; correct callers check InBounds first.
//
// Complexity:
//
//   - Parse: O(W×H) time and memory.
//   - CostAt, InBounds, Width, Height: O(1).
//
// Thread safety:
//
//   - A Grid is read-only after Parse and safe to share across goroutines.
package grid
