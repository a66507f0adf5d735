// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores cells in increasing distance from a source cell,
// with optional hooks, depth limiting, and passability overrides.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	pos   gridgraph.Position
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid  *gridgraph.Grid
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from src,
// applying any number of functional Options.
// Returns ErrGridNil or ErrSourceOutOfBounds for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g *gridgraph.Grid, src gridgraph.Position, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(src) {
		return nil, fmt.Errorf("%w: %v", ErrSourceOutOfBounds, src)
	}
	if o.Passable == nil {
		o.Passable = func(p gridgraph.Position) bool { return !g.IsBlocked(p) }
	}

	n := g.Width() * g.Height()
	w := &walker{
		grid:  g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Source: src,
			Order:  make([]gridgraph.Position, 0, n),
			Depth:  make(map[gridgraph.Position]int, n),
			Parent: make(map[gridgraph.Position]gridgraph.Position, n),
		},
	}

	// Seed queue with the source (no parent)
	w.enqueue(src, 0, nil)

	return w.res, w.loop()
}

// ShortestPath returns one shortest path from src to dst, both inclusive.
// ok is false when dst is unreachable.
func ShortestPath(g *gridgraph.Grid, src, dst gridgraph.Position, opts ...Option) ([]gridgraph.Position, bool, error) {
	res, err := BFS(g, src, withStop(opts, dst)...)
	if err != nil {
		return nil, false, err
	}
	path, ok := res.PathTo(dst)

	return path, ok, nil
}

// Distance returns the minimum number of steps from src to dst.
// ok is false when dst is unreachable.
func Distance(g *gridgraph.Grid, src, dst gridgraph.Position, opts ...Option) (int, bool, error) {
	res, err := BFS(g, src, withStop(opts, dst)...)
	if err != nil {
		return 0, false, err
	}
	d, ok := res.DistanceTo(dst)

	return d, ok, nil
}

// withStop appends WithStopAt(dst) without touching the caller's slice.
func withStop(opts []Option, dst gridgraph.Position) []Option {
	out := make([]Option, 0, len(opts)+1)
	out = append(out, opts...)
	return append(out, WithStopAt(dst))
}

// enqueue records p at depth d with its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(p gridgraph.Position, d int, parent *gridgraph.Position) {
	w.res.Depth[p] = d
	if parent != nil {
		w.res.Parent[p] = *parent
	}
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, queueItem{pos: p, depth: d})
}

// loop processes the queue until empty, error, early stop, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.opts.StopAt != nil && item.pos == *w.opts.StopAt {
			return nil
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.pos)
	if err := w.opts.OnVisit(item.pos, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.pos, err)
	}
	return nil
}

// enqueueNeighbors applies passability and MaxDepth, and enqueues each
// unseen neighbour.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.grid.Neighbors(item.pos) {
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		if !w.opts.Passable(nbr) {
			continue
		}
		parent := item.pos
		w.enqueue(nbr, nextDepth, &parent)
	}
}
