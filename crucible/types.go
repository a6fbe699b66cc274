// Package crucible defines the state model, configuration options, and
// sentinel errors for the constrained grid search.
package crucible

import "errors"

// Sentinel errors returned by the crucible search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to MinCost.
	ErrNilGrid = errors.New("crucible: grid is nil")

	// ErrBadRunBounds indicates inconsistent run-length bounds
	// (MinRun < 1 or MaxRun < MinRun).
	ErrBadRunBounds = errors.New("crucible: run bounds must satisfy 1 <= min <= max")

	// ErrNoPath indicates the frontier emptied before the goal was reached.
	ErrNoPath = errors.New("crucible: no path to the goal under the given constraints")
)

// Direction is one of the four cardinal travel directions.
// DirNone marks the initial state only, before any move has been made.
type Direction uint8

const (
	// DirNone is the absent direction of the initial state.
	DirNone Direction = iota
	// North decreases the row index.
	North
	// South increases the row index.
	South
	// East increases the column index.
	East
	// West decreases the column index.
	West
)

// Opposite returns the reverse of d. The opposite of DirNone is DirNone.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return DirNone
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	default:
		return "-"
	}
}

// delta returns the unit (row, col) step for d.
func (d Direction) delta() (int, int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// State is the composite search key: a cell position plus the direction and
// run length of the block that entered it. Two States are equal iff all four
// fields match; the same cell reached along different travel histories is a
// different state. Dir is DirNone (with Run 0) only for the initial state.
type State struct {
	Row, Col int
	Dir      Direction
	Run      int
}

// Move is one legal transition out of a State: the destination state and the
// incremental cost of every cell traversed by the block.
type Move struct {
	State State
	Cost  int
}

// Options configures the crucible search.
//
// MinRun is the minimum cells a block must travel before the next turn (>= 1).
// MaxRun is the maximum cells a block may travel in a straight line (>= MinRun).
type Options struct {
	MinRun int
	MaxRun int
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithMinRun sets the minimum run length. Must be positive; non-positive
// values panic with ErrBadRunBounds.
func WithMinRun(min int) Option {
	return func(o *Options) {
		if min < 1 {
			panic(ErrBadRunBounds.Error())
		}
		o.MinRun = min
	}
}

// WithMaxRun sets the maximum run length. Must be positive; non-positive
// values panic with ErrBadRunBounds. Consistency against MinRun is checked
// in MinCost once all options are applied.
func WithMaxRun(max int) Option {
	return func(o *Options) {
		if max < 1 {
			panic(ErrBadRunBounds.Error())
		}
		o.MaxRun = max
	}
}

// DefaultOptions returns the search defaults: MinRun=1, MaxRun=3
// (the basic crucible variant).
func DefaultOptions() Options {
	return Options{MinRun: 1, MaxRun: 3}
}
