// Package dijkstra defines core types and configuration options
// for the direction-aware grid search.
//
// The search runs over State = (Position, Direction). Moving forward one
// cell costs StepCost, rotating 90° in place costs TurnCost.
//
// Options:
//
//	– StartDirection:  heading of the initial state (default East).
//	– StepCost:        cost of a forward move (default 1, must be > 0).
//	– TurnCost:        cost of a 90° rotation (default 1000, must be > 0).
//	– MaxCost:         states costlier than this are not explored.
//	– CollectTiles:    enumerate every tile on an optimal path (default true).
//
// Errors (sentinel):
//
//	– ErrNilGrid         if the provided grid pointer is nil.
//	– ErrOutOfBounds     if start or end lies outside the grid.
//	– ErrStartBlocked    if start or end is a wall.
//	– ErrMissingMarkers  if Solve is called on a grid without 'S' and 'E'.
//	– ErrOptionViolation if an option received an invalid value.
//	– ErrIllegalMove     if Replay meets a transition the search never makes.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrOutOfBounds indicates that start or end lies outside the grid.
	ErrOutOfBounds = errors.New("dijkstra: position out of bounds")

	// ErrStartBlocked indicates that start or end is a wall cell.
	ErrStartBlocked = errors.New("dijkstra: start or end is blocked")

	// ErrMissingMarkers indicates that Solve found no 'S' or no 'E' marker.
	ErrMissingMarkers = errors.New("dijkstra: grid has no start or end marker")

	// ErrOptionViolation indicates an option was given an invalid value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrIllegalMove indicates a state path contains a transition that is
	// neither a forward step onto open floor nor a 90° turn.
	ErrIllegalMove = errors.New("dijkstra: illegal transition in path")
)

// Default costs of the reindeer-maze scoring.
const (
	DefaultStepCost int64 = 1
	DefaultTurnCost int64 = 1000
)

// State is a node of the search graph: a cell plus the current heading.
type State struct {
	Pos gridgraph.Position
	Dir gridgraph.Direction
}

// Less orders states by position, then direction.
func (s State) Less(o State) bool {
	if c := s.Pos.Compare(o.Pos); c != 0 {
		return c < 0
	}
	return s.Dir < o.Dir
}

// String renders the state as "(row,col)D".
func (s State) String() string { return s.Pos.String() + s.Dir.String() }

// Options configures the behavior of the search.
type Options struct {
	StartDirection gridgraph.Direction // Heading of the initial state
	StepCost       int64               // Cost of one forward move
	TurnCost       int64               // Cost of one 90° rotation
	MaxCost        int64               // States beyond this cost are not explored
	CollectTiles   bool                // Whether to enumerate optimal tiles

	err error // first invalid option, surfaced by Search
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with the maze
// defaults: facing East, step 1, turn 1000, no cost cap, tiles collected.
func DefaultOptions() Options {
	return Options{
		StartDirection: gridgraph.East,
		StepCost:       DefaultStepCost,
		TurnCost:       DefaultTurnCost,
		MaxCost:        math.MaxInt64,
		CollectTiles:   true,
	}
}

// WithStartDirection sets the heading of the initial state.
func WithStartDirection(d gridgraph.Direction) Option {
	return func(o *Options) {
		if d > gridgraph.West {
			o.fail(fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, d))
			return
		}
		o.StartDirection = d
	}
}

// WithStepCost sets the cost of a forward move. Must be positive.
func WithStepCost(c int64) Option {
	return func(o *Options) {
		if c <= 0 {
			o.fail(fmt.Errorf("%w: StepCost must be positive (%d)", ErrOptionViolation, c))
			return
		}
		o.StepCost = c
	}
}

// WithTurnCost sets the cost of a 90° rotation. Must be positive.
func WithTurnCost(c int64) Option {
	return func(o *Options) {
		if c <= 0 {
			o.fail(fmt.Errorf("%w: TurnCost must be positive (%d)", ErrOptionViolation, c))
			return
		}
		o.TurnCost = c
	}
}

// WithMaxCost caps exploration: states whose cost would exceed max are
// never pushed. Must be non-negative.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.fail(fmt.Errorf("%w: MaxCost must be non-negative (%d)", ErrOptionViolation, max))
			return
		}
		o.MaxCost = max
	}
}

// WithoutTiles skips optimal-tile enumeration; Result.Tiles stays empty.
func WithoutTiles() Option {
	return func(o *Options) {
		o.CollectTiles = false
	}
}

// fail keeps the first option error.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// build applies opts over the defaults.
func build(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, cfg.err
}
