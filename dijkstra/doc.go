// Package dijkstra provides a direction-aware Dijkstra search on 2D grids:
// the "reindeer maze" scoring, where walking forward one cell costs 1 and
// rotating 90° in place costs 1000.
//
// Overview:
//
//   - The search graph is implicit. A node is State{Pos, Dir}; its successors
//     are a forward step (only onto an in-bounds, non-wall cell) and the two
//     quarter turns.
//   - Search returns the minimal cost to reach the end cell in any direction
//     and, optionally, every cell that lies on at least one minimal route.
//   - Ties in the frontier are broken by position (row, then column) and
//     then by direction, so the exploration order is fully reproducible.
//
// Key features:
//
//   - Functional options tune costs and the starting heading without
//     changing the API signature.
//   - WithMaxCost: states costlier than the cap are never pushed.
//   - WithoutTiles: skip optimal-tile enumeration when only the score matters.
//   - Result.Path: one optimal state sequence, rebuilt from predecessor links.
//   - Replay: price an arbitrary state sequence and reject illegal moves.
//
// Performance and complexity:
//
//   - Time:  O(S log S), S = 4·W·H states, each pushed a bounded number of times.
//   - Space: O(S) for the arena, the best-cost index and the heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid, ErrOutOfBounds, ErrStartBlocked: invalid inputs.
//   - ErrMissingMarkers: Solve on a grid without 'S' and 'E'.
//   - ErrOptionViolation: a non-positive cost, negative cap, or unknown heading.
//   - ErrIllegalMove: Replay met a transition the search never generates.
//
// No route between start and end is a regular result (Found == false),
// never an error.
//
// Thread safety:
//
//   - Every call owns its frontier and tables; a Grid is immutable, so
//     concurrent searches on the same Grid are safe.
package dijkstra
