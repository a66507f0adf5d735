// Package shortcut finds "cheats" on a single-lane racetrack grid: short
// excursions through wall cells that rejoin the track further along and so
// shorten the route.
//
// What:
//
//   - The canonical path is one BFS shortest path from start to end over
//     open floor; each cell on it gets its 0-based index along the path.
//   - StrategyPhase: from every path cell, a bounded BFS over PhaseState
//     (position, wall moves used, currently inside a wall) finds the path
//     cells reachable with at most Allowance moves, using one contiguous
//     run of wall cells and ending on floor.
//   - StrategyRadius: every pair of path cells within Manhattan distance
//     Allowance counts, as if the excursion could ignore walls entirely.
//   - Savings for a pair = (index difference) − (moves taken). The best
//     savings per (origin, destination) pair is kept; pairs at or above
//     MinSavings are reported.
//
// Complexity (P = path length, A = Allowance):
//
//   - Phase:  O(P · A³) states in the worst case.
//   - Radius: O(P · A²).
//
// Errors:
//
//   - ErrNilGrid, ErrOutOfBounds: invalid inputs.
//   - ErrMissingMarkers: Solve on a grid without 'S' and 'E'.
//   - ErrOptionViolation: Allowance < 1, MinSavings < 0, or unknown strategy.
//
// An unreachable end yields an empty Result, not an error.
package shortcut
