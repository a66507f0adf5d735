// Package bfs provides tunable options and error definitions
// for breadth-first search over a gridgraph.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrSourceOutOfBounds is returned when the source lies outside the grid.
	ErrSourceOutOfBounds = errors.New("bfs: source position out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is first discovered.
	OnEnqueue func(p gridgraph.Position, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(p gridgraph.Position, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// Passable decides whether a cell may be entered. The source is
	// always visited regardless.
	Passable func(p gridgraph.Position) bool

	// StopAt, when set, ends the traversal once that cell is dequeued.
	StopAt *gridgraph.Position

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks
//   - Passable == nil, meaning "not blocked on the searched grid"
//   - no early stop.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(gridgraph.Position, int) {},
		OnVisit:   func(gridgraph.Position, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue(fn func(p gridgraph.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(p gridgraph.Position, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithPassable overrides the default wall test.
func WithPassable(fn func(p gridgraph.Position) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Passable = fn
		}
	}
}

// WithStopAt ends the traversal as soon as target is dequeued.
func WithStopAt(target gridgraph.Position) Option {
	return func(o *Options) {
		o.StopAt = &target
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Depth: map from cell to its distance (in steps) from the source.
//   - Parent: map from cell to its predecessor in the BFS tree.
type Result struct {
	Source gridgraph.Position
	Order  []gridgraph.Position
	Depth  map[gridgraph.Position]int
	Parent map[gridgraph.Position]gridgraph.Position
}

// DistanceTo returns the step count from the source to dest, or ok=false
// if dest was never reached.
func (r *Result) DistanceTo(dest gridgraph.Position) (int, bool) {
	d, ok := r.Depth[dest]
	return d, ok
}

// PathTo reconstructs the path from the source to dest, both inclusive.
// Returns ok=false if dest was not reached.
func (r *Result) PathTo(dest gridgraph.Position) ([]gridgraph.Position, bool) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, false
	}
	// build reversed path
	path := []gridgraph.Position{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
