// Package gridgraph provides an immutable 2D character grid with
// bounds-checked orthogonal neighbour queries.
//
// Cells holding Wall are blocked; every other symbol is passable.
// Positions outside the grid are treated as blocked.
package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular matrix of symbols.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrMissingStart /
// ErrMissingEnd when opts.RequireMarkers is set and a marker is absent.
// Algorithmic complexity: O(W×H) time and memory.
func New(rows [][]byte, opts GridOptions) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	g := &Grid{width: w, height: h, cells: make([][]byte, h)}
	for r := 0; r < h; r++ {
		g.cells[r] = make([]byte, w)
		copy(g.cells[r], rows[r])
		for c, sym := range g.cells[r] {
			switch {
			case sym == StartMarker && !g.hasStart:
				g.start, g.hasStart = Position{Row: r, Col: c}, true
			case sym == EndMarker && !g.hasEnd:
				g.end, g.hasEnd = Position{Row: r, Col: c}, true
			}
		}
	}

	if opts.RequireMarkers {
		if !g.hasStart {
			return nil, ErrMissingStart
		}
		if !g.hasEnd {
			return nil, ErrMissingEnd
		}
	}

	return g, nil
}

// Parse builds a Grid from newline-separated text, one row per line.
// Carriage returns and trailing blank lines are ignored.
func Parse(text string, opts GridOptions) (*Grid, error) {
	return Read(strings.NewReader(text), opts)
}

// ParseLines builds a Grid from pre-split lines.
func ParseLines(lines []string, opts GridOptions) (*Grid, error) {
	rows := make([][]byte, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []byte(strings.TrimRight(line, "\r")))
	}
	return New(trimBlankTail(rows), opts)
}

// Read builds a Grid from r, one row per line.
func Read(r io.Reader, opts GridOptions) (*Grid, error) {
	var rows [][]byte
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, []byte(strings.TrimRight(sc.Text(), "\r")))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: reading grid: %w", err)
	}
	return New(trimBlankTail(rows), opts)
}

// trimBlankTail drops trailing empty rows left by a final newline.
func trimBlankTail(rows [][]byte) [][]byte {
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	return rows
}

// FromObstacles builds a width×height floor grid with Wall at every blocked
// position. Returns ErrOutOfBounds if any position lies outside the grid.
func FromObstacles(width, height int, blocked []Position) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	rows := make([][]byte, height)
	for r := range rows {
		rows[r] = []byte(strings.Repeat(string(Floor), width))
	}
	for _, p := range blocked {
		if p.Row < 0 || p.Row >= height || p.Col < 0 || p.Col >= width {
			return nil, fmt.Errorf("%w: obstacle %v in %dx%d grid", ErrOutOfBounds, p, width, height)
		}
		rows[p.Row][p.Col] = Wall
	}
	return New(rows, DefaultGridOptions())
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// At returns the symbol at p, or Wall if p is out of bounds.
func (g *Grid) At(p Position) byte {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Row][p.Col]
}

// IsBlocked reports whether p is a wall or lies outside the grid.
func (g *Grid) IsBlocked(p Position) bool {
	return g.At(p) == Wall
}

// Neighbors returns the in-bounds orthogonal neighbours of p in
// N, E, S, W order. Walls are included; callers filter with IsBlocked.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, 4)
	for _, d := range Directions {
		if q := p.Step(d); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Start returns the first 'S' cell in row-major order.
func (g *Grid) Start() (Position, bool) { return g.start, g.hasStart }

// End returns the first 'E' cell in row-major order.
func (g *Grid) End() (Position, bool) { return g.end, g.hasEnd }

// OpenCells returns every passable position in row-major order.
func (g *Grid) OpenCells() []Position {
	var out []Position
	for r, row := range g.cells {
		for c, sym := range row {
			if sym != Wall {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}
	return out
}

// Rows renders the grid back to text, one string per row.
func (g *Grid) Rows() []string {
	out := make([]string, g.height)
	for r, row := range g.cells {
		out[r] = string(row)
	}
	return out
}

// String renders the grid as newline-separated rows.
func (g *Grid) String() string { return strings.Join(g.Rows(), "\n") }

// WithCell returns a copy of g with the symbol at p replaced by sym.
// Marker bookkeeping is recomputed on the copy; g itself is untouched.
func (g *Grid) WithCell(p Position, sym byte) (*Grid, error) {
	if !g.InBounds(p) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	rows := make([][]byte, g.height)
	for r := range rows {
		rows[r] = g.cells[r]
	}
	row := make([]byte, g.width)
	copy(row, g.cells[p.Row])
	row[p.Col] = sym
	rows[p.Row] = row

	return New(rows, DefaultGridOptions())
}

// index maps p to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid) index(p Position) int {
	return p.Row*g.width + p.Col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.width, Col: idx % g.width}
}

// Index exposes the row-major index of p for callers that keep
// flat per-cell tables.
func (g *Grid) Index(p Position) int { return g.index(p) }
