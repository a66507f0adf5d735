// Package gridgraph models a rectangular 2D character grid as an implicit
// graph for maze and routing searches.
//
// What:
//
//   - Grid wraps a rectangular matrix of single-byte cell symbols:
//     '#' wall, '.' floor, 'S' start marker, 'E' end marker.
//   - Position is a (Row, Col) pair with a total order (row first, then column)
//     used for deterministic tie-breaking by every search in this module.
//   - Direction covers the four cardinal headings with 90° rotations.
//   - Neighbors yields in-bounds orthogonal positions in N, E, S, W order.
//   - Connected answers reachability questions from a component labelling
//     of open cells, computed once per Grid.
//
// Why:
//
//   - Searches (bfs, dijkstra, shortcut) share one immutable, bounds-checked
//     view of the map instead of indexing raw [][]byte.
//   - Puzzle variants that need a modified map (placing an obstacle,
//     clearing a marker) go through WithCell, which returns a copy.
//
// Complexity:
//
//   - New / Parse:  O(W×H) time and memory (deep copy of the input).
//   - Neighbors:    O(1).
//   - Connected:    O(W×H) on first call, O(1) afterwards.
//
// Options:
//
//   - GridOptions.RequireMarkers: reject grids without an 'S' and an 'E'.
//
// Errors:
//
//   - ErrMalformedGrid: umbrella for every parse failure below.
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrMissingStart / ErrMissingEnd: markers required but absent.
//   - ErrOutOfBounds: a position outside the grid was supplied.
package gridgraph
