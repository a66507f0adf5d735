package shortcut

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/maps"

	"github.com/katalvlaran/gridsearch/bfs"
	"github.com/katalvlaran/gridsearch/gridgraph"
)

// pair keys the best savings seen for one (origin, destination).
type pair struct{ from, to gridgraph.Position }

// Find computes the canonical route from start to end and enumerates every
// shortcut along it that saves at least Options.MinSavings moves.
//
// Validation order: options, nil grid, bounds. A start or end on a wall,
// or an end that cannot be reached over floor, yields an empty Result.
func Find(g *gridgraph.Grid, start, end gridgraph.Position, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	for _, p := range []gridgraph.Position{start, end} {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
	}

	res := &Result{}
	if g.IsBlocked(start) || g.IsBlocked(end) {
		return res, nil
	}
	path, ok, err := bfs.ShortestPath(g, start, end)
	if err != nil {
		return nil, err
	}
	if !ok {
		return res, nil
	}
	res.Path = path

	f := &finder{
		g:     g,
		cfg:   cfg,
		path:  path,
		index: make(map[gridgraph.Position]int, len(path)),
		best:  make(map[pair]Shortcut),
	}
	for i, p := range path {
		f.index[p] = i
	}
	for i, origin := range path {
		switch cfg.Strategy {
		case StrategyRadius:
			f.radius(i, origin)
		default:
			f.phase(i, origin)
		}
	}
	res.Shortcuts = f.collect()

	return res, nil
}

// Solve runs Find between the grid's 'S' and 'E' markers.
func Solve(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	start, okS := g.Start()
	end, okE := g.End()
	if !okS || !okE {
		return nil, ErrMissingMarkers
	}
	return Find(g, start, end, opts...)
}

// finder holds the per-call tables shared by every origin.
type finder struct {
	g     *gridgraph.Grid
	cfg   Options
	path  []gridgraph.Position
	index map[gridgraph.Position]int // path cell → position along the path
	best  map[pair]Shortcut
}

// offer records a candidate if it beats the best savings for its pair.
func (f *finder) offer(from, to gridgraph.Position, moves, savings int) {
	k := pair{from, to}
	if cur, ok := f.best[k]; ok && cur.Savings >= savings {
		return
	}
	f.best[k] = Shortcut{From: from, To: to, Moves: moves, Savings: savings}
}

// phaseItem is a queued excursion state with the moves taken to reach it.
type phaseItem struct {
	state PhaseState
	moves int
}

// phase runs the bounded excursion BFS from the i-th path cell.
func (f *finder) phase(i int, origin gridgraph.Position) {
	seed := PhaseState{Pos: origin}
	visited := mapset.New[PhaseState]()
	visited.Put(seed)
	queue := []phaseItem{{state: seed}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		s := item.state

		// Landed back on the track after a closed wall run.
		if s.PhaseMoves > 0 && !s.InPhase {
			if j, ok := f.index[s.Pos]; ok && j > i {
				f.offer(origin, s.Pos, item.moves, j-i-item.moves)
			}
		}
		if item.moves == f.cfg.Allowance {
			continue
		}
		for _, d := range gridgraph.Directions {
			next, ok := advance(f.g, s, d, f.cfg.Allowance)
			if !ok || visited.Has(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, phaseItem{state: next, moves: item.moves + 1})
		}
	}
}

// advance moves s one cell in direction d. It refuses to leave the grid,
// to start a second wall run, or to exceed the wall-move allowance.
func advance(g *gridgraph.Grid, s PhaseState, d gridgraph.Direction, allowance int) (PhaseState, bool) {
	p := s.Pos.Step(d)
	if !g.InBounds(p) {
		return PhaseState{}, false
	}
	wall := g.IsBlocked(p)
	if wall && !s.InPhase && s.PhaseMoves > 0 {
		return PhaseState{}, false
	}
	moves := s.PhaseMoves
	if wall {
		moves++
	}
	if moves > allowance {
		return PhaseState{}, false
	}

	return PhaseState{Pos: p, PhaseMoves: moves, InPhase: wall}, true
}

// collect filters by MinSavings and sorts by origin, then destination.
func (f *finder) collect() []Shortcut {
	out := slices.DeleteFunc(maps.Values(f.best), func(s Shortcut) bool {
		return s.Savings < f.cfg.MinSavings
	})
	slices.SortFunc(out, func(a, b Shortcut) int {
		if c := a.From.Compare(b.From); c != 0 {
			return c
		}
		return a.To.Compare(b.To)
	})

	return out
}
