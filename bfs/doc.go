// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore cells in non-decreasing distance (step count) from a source cell.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from position → distance (steps) from the source
//   - Parent: map from position → its predecessor in the BFS tree
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a cell is first discovered)
//   - OnVisit   (when visiting; may abort with an error)
//   - Decides passability via WithPassable (default: not a wall).
//   - Honors a MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Stops early once WithStopAt's target is dequeued.
//
// Why
//
//   - Shortest step count on an obstacle grid in O(W×H) time.
//   - Canonical reference path for the shortcut search.
//
// Determinism
//
//	Neighbours are enqueued in N, E, S, W order, so the visit sequence and
//	the parent tree (and therefore every reconstructed path) are reproducible.
//
// Complexity (N = W×H)
//
//   - Time:   O(N)   (each cell enqueued at most once, four neighbours each)
//   - Memory: O(N)   (queue, Depth map, Parent map)
//
// Usage
//
//	res, err := bfs.BFS(g, start, bfs.WithStopAt(end))
//	if err != nil {
//	    // ErrGridNil, ErrSourceOutOfBounds, ErrOptionViolation, or a hook error
//	}
//	path, ok := res.PathTo(end)
//
// Errors
//
//   - ErrGridNil             if the grid pointer is nil.
//   - ErrSourceOutOfBounds   if the source lies outside the grid.
//   - ErrOptionViolation     if an invalid Option was supplied (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
//
// An unreachable target is not an error: PathTo and DistanceTo report ok=false.
package bfs
