// Package crucible implements a constrained shortest-path search on a
// weighted digit grid: uniform-cost (Dijkstra) search where every move must
// run between a minimum and maximum number of cells in a straight line
// before turning, and reversing direction is never allowed.
//
// Overview:
//
//   - The search starts at the top-left cell and ends at the bottom-right
//     cell of a grid.Grid, minimising the summed cost of every cell entered.
//     The start cell's own cost is never counted.
//   - Moves use the block formulation: entering a new direction traverses
//     min..max contiguous cells atomically, accumulating the cost of each
//     traversed cell. After a block the crucible must turn 90 degrees, so
//     straight continuation never appears as a separate transition; a longer
//     straight run is simply a longer block.
//   - Because a plain cell position is not a sufficient search key (the same
//     cell reached from different directions admits different continuations),
//     the best-cost table is keyed by the full State: position, incoming
//     direction and run length.
//
// Key features:
//
//   - Functional options select the run-length bounds: WithMinRun and
//     WithMaxRun, defaulting to (1, 3). The reference variants are (1, 3)
//     and (4, 10).
//   - Lazy decrease-key strategy: shorter paths push duplicate frontier
//     entries; stale entries are skipped when popped.
//   - Deterministic result: the minimum cost is unique even though the
//     tie-break order among equal-cost frontier entries is
//     implementation-defined (heap order).
//
// Performance and complexity:
//
//   - There are at most W×H×4×max distinct states; each expansion emits up
//     to 2×(max-min+1) moves.
//   - Time:  O(S × max × log S) with S = number of states.
//   - Space: O(S) for the best-cost table plus the frontier.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:
//     Returned when MinCost is called with a nil *grid.Grid.
//   - ErrBadRunBounds:
//     Returned when the configured bounds are inconsistent (min < 1 or
//     max < min). WithMinRun and WithMaxRun panic early on non-positive
//     arguments, in line with option constructors elsewhere in this module.
//   - ErrNoPath:
//     Returned if the frontier empties before the goal is reached. On a
//     connected rectangular grid this cannot happen for sane bounds, but
//     oversized minimum runs (wider than the grid) make the goal
//     unreachable and exercise this path.
//
// Edge cases:
//
//   - A 1x1 grid returns cost 0: the initial state already sits on the goal
//     cell, and arrival via the initial state carries no run to validate.
//
// Thread safety:
//
//   - MinCost owns all mutable state internally; the input Grid is read-only
//     and may be shared by concurrent searches.
package crucible
