// Package dijkstra implements a direction-aware Dijkstra search on grids.
//
// The search graph is implicit: its nodes are State{Pos, Dir} and every
// node has at most three successors (step forward, turn clockwise, turn
// counter-clockwise). States are processed in order of increasing cost
// using a min-heap; ties are broken by position, then direction, so two
// runs on the same grid expand states in exactly the same order.
//
// Notes on implementation choices:
//
//   - States live in an arena ([]node) addressed by int32 handles. Each node
//     keeps every predecessor that reaches it at its best known cost, so all
//     optimal routes are recoverable without copying path prefixes.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries when popped.
//   - The first end-state popped fixes the minimum; the search stops at the
//     first popped entry whose cost exceeds it.
package dijkstra

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Result is the outcome of one search.
//
//   - Found: whether any end-state was reached.
//   - Cost:  minimal accumulated cost to the end cell (valid when Found).
//   - Tiles: every cell on at least one cost-minimal route, sorted by
//     position (empty when Found is false or tiles were not requested).
//   - Expanded: number of states settled.
type Result struct {
	Found    bool
	Cost     int64
	Tiles    []gridgraph.Position
	Expanded int

	nodes []node
	ends  []int32
}

// TileCount returns len(Tiles).
func (r *Result) TileCount() int { return len(r.Tiles) }

// Path returns one cost-minimal state sequence from the start state to an
// end state, or nil if no route exists. Among equal-cost routes it follows
// the earliest recorded predecessor, so the choice is deterministic.
func (r *Result) Path() []State {
	if !r.Found || len(r.ends) == 0 {
		return nil
	}
	var path []State
	for at := r.ends[0]; ; {
		n := r.nodes[at]
		path = append(path, n.state)
		if len(n.preds) == 0 {
			break
		}
		at = n.preds[0]
	}
	slices.Reverse(path)

	return path
}

// Search computes the minimal cost from start (facing Options.StartDirection)
// to end in any direction, and the set of tiles lying on any optimal route.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. start and end must be inside g (ErrOutOfBounds).
//  4. start and end must not be walls (ErrStartBlocked).
//
// No route is not an error: Result.Found is false and Tiles is empty.
//
// Complexity:
//
//   - Time:  O(S log S) with S = 4·W·H states.
//   - Space: O(S) for the arena, index and heap.
func Search(g *gridgraph.Grid, start, end gridgraph.Position, opts ...Option) (*Result, error) {
	cfg, err := build(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	for _, p := range []gridgraph.Position{start, end} {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
		if g.IsBlocked(p) {
			return nil, fmt.Errorf("%w: %v", ErrStartBlocked, p)
		}
	}

	res := &Result{}
	// Different regions: nothing to search.
	if !g.Connected(start, end) {
		return res, nil
	}

	r := &runner{
		g:     g,
		cfg:   cfg,
		end:   end,
		index: make(map[State]int32, 4*g.Width()*g.Height()),
		res:   res,
	}
	r.init(State{Pos: start, Dir: cfg.StartDirection})
	r.process()

	if cfg.CollectTiles && res.Found {
		res.Tiles = r.tiles()
	}
	res.nodes, res.ends = r.nodes, r.ends

	return res, nil
}

// Solve runs Search between the grid's 'S' and 'E' markers.
func Solve(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	start, okS := g.Start()
	end, okE := g.End()
	if !okS || !okE {
		return nil, ErrMissingMarkers
	}
	return Search(g, start, end, opts...)
}

// Replay recomputes the cost of a state sequence under the given options.
// Every consecutive pair must be a forward step onto open floor or a 90°
// turn in place; anything else yields ErrIllegalMove.
func Replay(g *gridgraph.Grid, path []State, opts ...Option) (int64, error) {
	cfg, err := build(opts)
	if err != nil {
		return 0, err
	}
	if g == nil {
		return 0, ErrNilGrid
	}
	if len(path) == 0 {
		return 0, nil
	}
	if g.IsBlocked(path[0].Pos) {
		return 0, fmt.Errorf("%w: first state %v is blocked", ErrIllegalMove, path[0])
	}

	var total int64
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		switch {
		case a.Pos == b.Pos && (b.Dir == a.Dir.Clockwise() || b.Dir == a.Dir.CounterClockwise()):
			total += cfg.TurnCost
		case a.Dir == b.Dir && b.Pos == a.Pos.Step(a.Dir) && !g.IsBlocked(b.Pos):
			total += cfg.StepCost
		default:
			return 0, fmt.Errorf("%w: step %d %v→%v", ErrIllegalMove, i, a, b)
		}
	}

	return total, nil
}

// node is one arena slot: a state, its best known cost, and every
// predecessor reaching it at that cost.
type node struct {
	state State
	cost  int64
	preds []int32
	done  bool
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g     *gridgraph.Grid
	cfg   Options
	end   gridgraph.Position
	index map[State]int32 // best-cost table: state → arena handle
	nodes []node
	ends  []int32 // settled end-states at the minimal cost
	pq    frontier
	res   *Result
}

// init seeds the arena and heap with the start state at cost 0.
func (r *runner) init(s State) {
	r.index[s] = 0
	r.nodes = append(r.nodes, node{state: s})
	heap.Init(&r.pq)
	heap.Push(&r.pq, entry{handle: 0, state: s, cost: 0})
}

// process is the core loop. It pops the cheapest entry, skips stale ones,
// records end-states, and expands everything else.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(entry)
		n := &r.nodes[item.handle]

		// Stale: a cheaper entry for this state was already settled or pushed.
		if n.done || item.cost > n.cost {
			continue
		}
		// Cost-ordered popping: nothing cheaper can follow.
		if r.res.Found && item.cost > r.res.Cost {
			break
		}
		n.done = true
		r.res.Expanded++

		if n.state.Pos == r.end {
			if !r.res.Found {
				r.res.Found, r.res.Cost = true, item.cost
			}
			r.ends = append(r.ends, item.handle)
			continue
		}
		r.expand(item.handle)
	}
}

// expand generates the forward and turn successors of the settled node h.
func (r *runner) expand(h int32) {
	cur, cost := r.nodes[h].state, r.nodes[h].cost

	if fwd := cur.Pos.Step(cur.Dir); !r.g.IsBlocked(fwd) {
		r.relax(h, State{Pos: fwd, Dir: cur.Dir}, cost+r.cfg.StepCost)
	}
	r.relax(h, State{Pos: cur.Pos, Dir: cur.Dir.Clockwise()}, cost+r.cfg.TurnCost)
	r.relax(h, State{Pos: cur.Pos, Dir: cur.Dir.CounterClockwise()}, cost+r.cfg.TurnCost)
}

// relax offers cost nc for state s reached from node from. A strictly
// better cost replaces the predecessor list and pushes a new entry; an
// equal cost only adds from as another predecessor.
func (r *runner) relax(from int32, s State, nc int64) {
	if nc > r.cfg.MaxCost {
		return
	}
	h, ok := r.index[s]
	if !ok {
		h = int32(len(r.nodes))
		r.index[s] = h
		r.nodes = append(r.nodes, node{state: s, cost: nc, preds: []int32{from}})
		heap.Push(&r.pq, entry{handle: h, state: s, cost: nc})
		return
	}

	n := &r.nodes[h]
	switch {
	case nc < n.cost:
		n.cost = nc
		n.preds = append(n.preds[:0], from)
		heap.Push(&r.pq, entry{handle: h, state: s, cost: nc})
	case nc == n.cost && !n.done:
		n.preds = append(n.preds, from)
	}
}

// tiles walks predecessor links back from every minimal end-state and
// returns the union of visited positions, sorted.
func (r *runner) tiles() []gridgraph.Position {
	set := mapset.New[gridgraph.Position]()
	seen := make([]bool, len(r.nodes))
	stack := make([]int32, 0, len(r.ends))
	for _, h := range r.ends {
		seen[h] = true
		stack = append(stack, h)
	}
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		set.Put(r.nodes[h].state.Pos)
		for _, p := range r.nodes[h].preds {
			if !seen[p] {
				seen[p] = true
				stack = append(stack, p)
			}
		}
	}

	out := make([]gridgraph.Position, 0, set.Size())
	set.Each(func(p gridgraph.Position) {
		out = append(out, p)
	})
	slices.SortFunc(out, gridgraph.Position.Compare)

	return out
}

// entry is a frontier item: an arena handle with the cost it was pushed at.
// The state is carried for tie-breaking without touching the arena.
type entry struct {
	handle int32
	state  State
	cost   int64
}

// frontier is a min-heap of entries ordered by cost, then state.
type frontier []entry

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less defines the comparison: smaller cost first, then smaller state.
func (pq frontier) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].state.Less(pq[j].state)
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last element; heap.Pop has already swapped
// the minimum there.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
