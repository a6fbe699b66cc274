// The search engine is classic uniform-cost search: the frontier always
// yields the lowest-cost undiscovered state next, and because every block
// cost is non-negative, a state's cost is final the first time it is popped.
// The first popped state sitting on the bottom-right cell is the answer: in
// the block formulation every arrival at a cell already satisfies the
// minimum run length, so no extra goal-side run check is needed.

package crucible

import (
	"container/heap"

	"github.com/aockit/aoc/grid"
)

// MinCost computes the minimum total traversal cost from the top-left cell
// of g to its bottom-right cell, subject to the configured run-length
// bounds. The start cell's own cost is not part of the total.
//
// Returns:
//
//   - the minimum cost, 0 when the grid is a single cell;
//   - ErrNilGrid if g is nil;
//   - ErrBadRunBounds if the applied options are inconsistent;
//   - ErrNoPath if the goal is unreachable (possible only when MinRun
//     exceeds what the grid geometry allows).
//
// Complexity: O(S × max × log S) time, O(S) space, S = W×H×4×MaxRun states.
func MinCost(g *grid.Grid, opts ...Option) (int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return 0, ErrNilGrid
	}
	if cfg.MinRun < 1 || cfg.MaxRun < cfg.MinRun {
		return 0, ErrBadRunBounds
	}

	r := &runner{
		g:    g,
		cfg:  cfg,
		best: make(map[State]int),
	}

	return r.run()
}

// runner holds the mutable state of a single search execution.
type runner struct {
	g    *grid.Grid
	cfg  Options
	best map[State]int // lowest known cost per composite state
	pq   frontier      // min-heap of discovered states, lazy decrease-key
}

// run executes the uniform-cost loop until the goal is popped or the
// frontier empties.
func (r *runner) run() (int, error) {
	goalRow, goalCol := r.g.Height()-1, r.g.Width()-1

	start := State{Row: 0, Col: 0, Dir: DirNone, Run: 0}
	r.best[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &entry{state: start, cost: 0})

	for r.pq.Len() > 0 {
		e := heap.Pop(&r.pq).(*entry)

		// Stale entry left behind by a later improvement; skip it.
		if best, ok := r.best[e.state]; ok && e.cost > best {
			continue
		}

		if e.state.Row == goalRow && e.state.Col == goalCol {
			return e.cost, nil
		}

		for _, m := range Expand(r.g, e.state, r.cfg.MinRun, r.cfg.MaxRun) {
			next := e.cost + m.Cost
			if best, ok := r.best[m.State]; ok && next >= best {
				continue
			}
			r.best[m.State] = next
			heap.Push(&r.pq, &entry{state: m.State, cost: next})
		}
	}

	return 0, ErrNoPath
}

// entry is a frontier element: a state and its cumulative cost from the
// start. Ordered by cost ascending; ties break in implementation-defined
// heap order.
type entry struct {
	state State
	cost  int
}

// frontier is a min-heap of *entry ordered by cumulative cost.
type frontier []*entry

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders entries by ascending cumulative cost.
func (f frontier) Less(i, j int) bool { return f[i].cost < f[j].cost }

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds x onto the heap; x must be of type *entry.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*entry)) }

// Pop removes and returns the smallest element from the heap.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
