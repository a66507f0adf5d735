package shortcut

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Sentinel errors for shortcut searches.
var (
	// ErrNilGrid indicates that a nil grid was passed.
	ErrNilGrid = errors.New("shortcut: grid is nil")
	// ErrOutOfBounds indicates that start or end lies outside the grid.
	ErrOutOfBounds = errors.New("shortcut: position out of bounds")
	// ErrMissingMarkers indicates that Solve found no 'S' or no 'E'.
	ErrMissingMarkers = errors.New("shortcut: grid has no start or end marker")
	// ErrOptionViolation indicates an option was given an invalid value.
	ErrOptionViolation = errors.New("shortcut: invalid option supplied")
)

// Strategy selects how excursions are enumerated.
type Strategy int

const (
	// StrategyPhase walks a bounded BFS allowing one contiguous wall run.
	StrategyPhase Strategy = iota
	// StrategyRadius pairs every path cell within Manhattan distance Allowance.
	StrategyRadius
)

// String names the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyPhase:
		return "phase"
	case StrategyRadius:
		return "radius"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Options configures a shortcut search.
type Options struct {
	// Allowance bounds the total moves of one excursion (and therefore its
	// wall moves). 2 for simple cheats, 20 for extended ones.
	Allowance int
	// MinSavings is the smallest savings reported.
	MinSavings int
	// Strategy selects phase-through BFS or plain Manhattan radius.
	Strategy Strategy

	err error
}

// Option is a functional option for Find and Solve.
type Option func(*Options)

// DefaultOptions returns Allowance=2, MinSavings=1, StrategyPhase.
func DefaultOptions() Options {
	return Options{Allowance: 2, MinSavings: 1, Strategy: StrategyPhase}
}

// WithAllowance sets the excursion length limit. Must be ≥ 1.
func WithAllowance(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail(fmt.Errorf("%w: Allowance must be at least 1 (%d)", ErrOptionViolation, n))
			return
		}
		o.Allowance = n
	}
}

// WithMinSavings sets the reporting threshold. Must be ≥ 0.
func WithMinSavings(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(fmt.Errorf("%w: MinSavings cannot be negative (%d)", ErrOptionViolation, n))
			return
		}
		o.MinSavings = n
	}
}

// WithStrategy selects the enumeration strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != StrategyPhase && s != StrategyRadius {
			o.fail(fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s)))
			return
		}
		o.Strategy = s
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// PhaseState is a node of the bounded excursion search.
type PhaseState struct {
	Pos        gridgraph.Position
	PhaseMoves int  // wall cells entered so far
	InPhase    bool // currently standing in a wall
}

// Shortcut is one qualifying (origin, destination) pair on the path.
type Shortcut struct {
	From, To gridgraph.Position
	Moves    int // length of the excursion
	Savings  int // path-index difference minus Moves
}

// Result is the outcome of a shortcut search.
type Result struct {
	// Path is the canonical route, start and end inclusive; empty if the
	// end is unreachable.
	Path []gridgraph.Position
	// Shortcuts holds every pair with Savings ≥ MinSavings, sorted by
	// From, then To.
	Shortcuts []Shortcut
}

// Count returns the number of qualifying shortcuts.
func (r *Result) Count() int { return len(r.Shortcuts) }

// Length returns the canonical route length in moves, or -1 if there is none.
func (r *Result) Length() int { return len(r.Path) - 1 }

// Histogram maps each savings value to the number of shortcuts achieving it.
func (r *Result) Histogram() map[int]int {
	h := make(map[int]int)
	for _, s := range r.Shortcuts {
		h[s.Savings]++
	}
	return h
}
