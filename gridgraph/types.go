// Package gridgraph defines core types and options for the grid model.
package gridgraph

import (
	"fmt"
	"sync"

	"golang.org/x/exp/constraints"
)

// Cell symbols understood by the grid model. Any symbol other than Wall
// is passable.
const (
	Wall        byte = '#'
	Floor       byte = '.'
	StartMarker byte = 'S'
	EndMarker   byte = 'E'
)

// Position is a (Row, Col) cell coordinate. Row grows downwards.
type Position struct {
	Row, Col int
}

// Compare orders positions by row, then column. It returns -1, 0 or +1.
func (p Position) Compare(q Position) int {
	switch {
	case p.Row < q.Row:
		return -1
	case p.Row > q.Row:
		return 1
	case p.Col < q.Col:
		return -1
	case p.Col > q.Col:
		return 1
	}
	return 0
}

// Less reports whether p sorts before q.
func (p Position) Less(q Position) bool { return p.Compare(q) < 0 }

// Step returns the position one cell away in direction d.
// The result may lie outside any particular grid.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Manhattan returns |Δrow| + |Δcol| between p and q.
func (p Position) Manhattan(q Position) int {
	return AbsDiff(p.Row, q.Row) + AbsDiff(p.Col, q.Col)
}

// String renders p as "(row,col)".
func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// AbsDiff returns |a-b| for any integer type.
func AbsDiff[T constraints.Integer](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// Direction is one of the four cardinal headings.
type Direction uint8

const (
	// North points towards row 0.
	North Direction = iota
	// East points towards higher columns.
	East
	// South points towards higher rows.
	South
	// West points towards column 0.
	West
)

// Directions lists all headings in neighbour order.
var Directions = [4]Direction{North, East, South, West}

// offsets is indexed by Direction.
var offsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Delta returns the (row, col) offset of one step in d.
func (d Direction) Delta() (dr, dc int) {
	o := offsets[d&3]
	return o[0], o[1]
}

// Clockwise returns d rotated 90° to the right.
func (d Direction) Clockwise() Direction { return (d + 1) & 3 }

// CounterClockwise returns d rotated 90° to the left.
func (d Direction) CounterClockwise() Direction { return (d + 3) & 3 }

// String returns the single-letter compass name.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// RequireMarkers rejects grids that lack an 'S' or an 'E' cell.
	RequireMarkers bool
}

// DefaultGridOptions returns GridOptions with RequireMarkers=false.
func DefaultGridOptions() GridOptions {
	return GridOptions{RequireMarkers: false}
}

// Grid is an immutable rectangular map of cell symbols.
// cells[row][col] holds the symbol; start and end record the first 'S'
// and 'E' in row-major order, if any.
type Grid struct {
	width, height int
	cells         [][]byte
	start, end    Position
	hasStart      bool
	hasEnd        bool

	regionsOnce sync.Once
	regions     []int // component label per cell, -1 for walls; built by Connected
}
