package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

//----------------------------------------------------------------------------//
// Parse and New Tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that Parse rejects empty, ragged, or marker-less input.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		opts gridgraph.GridOptions
		err  error
	}{
		{"Empty", "", gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"OnlyNewlines", "\n\n", gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", "###\n#.\n###", gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
		{"MissingStart", "#E#", gridgraph.GridOptions{RequireMarkers: true}, gridgraph.ErrMissingStart},
		{"MissingEnd", "#S#", gridgraph.GridOptions{RequireMarkers: true}, gridgraph.ErrMissingEnd},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.Parse(tc.text, tc.opts)
			require.ErrorIs(t, err, tc.err)
			require.True(t, errors.Is(err, gridgraph.ErrMalformedGrid), "every parse failure is a malformed grid")
		})
	}
}

// TestParse_Markers checks marker discovery and CRLF tolerance.
func TestParse_Markers(t *testing.T) {
	g, err := gridgraph.Parse("#####\r\n#S.E#\r\n#####\r\n", gridgraph.GridOptions{RequireMarkers: true})
	require.NoError(t, err)

	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 3, g.Height())

	s, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, gridgraph.Position{Row: 1, Col: 1}, s)

	e, ok := g.End()
	require.True(t, ok)
	assert.Equal(t, gridgraph.Position{Row: 1, Col: 3}, e)
}

// TestParse_FirstMarkerWins ensures duplicate markers resolve in row-major order.
func TestParse_FirstMarkerWins(t *testing.T) {
	g, err := gridgraph.Parse("S.S\nE.E", gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	s, _ := g.Start()
	e, _ := g.End()
	assert.Equal(t, gridgraph.Position{Row: 0, Col: 0}, s)
	assert.Equal(t, gridgraph.Position{Row: 1, Col: 0}, e)
}

// TestNew_DeepCopy ensures later mutation of the input does not leak into the grid.
func TestNew_DeepCopy(t *testing.T) {
	rows := [][]byte{[]byte("..."), []byte("...")}
	g, err := gridgraph.New(rows, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	rows[0][0] = gridgraph.Wall
	assert.False(t, g.IsBlocked(gridgraph.Position{}))
}

//----------------------------------------------------------------------------//
// Query Tests
//----------------------------------------------------------------------------//

// TestInBoundsAndBlocked checks bounds and wall classification on a 3×2 grid.
func TestInBoundsAndBlocked(t *testing.T) {
	g, err := gridgraph.Parse(".#.\n#..", gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	for _, p := range []gridgraph.Position{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, g.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []gridgraph.Position{{-1, 0}, {0, 3}, {2, 1}, {1, -1}} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
		assert.True(t, g.IsBlocked(p), "out of bounds counts as blocked: %v", p)
	}
	assert.True(t, g.IsBlocked(gridgraph.Position{Row: 0, Col: 1}))
	assert.False(t, g.IsBlocked(gridgraph.Position{Row: 1, Col: 1}))
}

// TestNeighbors verifies order and clipping at the border.
func TestNeighbors(t *testing.T) {
	g, err := gridgraph.Parse("...\n...\n...", gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	center := g.Neighbors(gridgraph.Position{Row: 1, Col: 1})
	assert.Equal(t, []gridgraph.Position{{0, 1}, {1, 2}, {2, 1}, {1, 0}}, center)

	corner := g.Neighbors(gridgraph.Position{Row: 0, Col: 0})
	assert.Equal(t, []gridgraph.Position{{0, 1}, {1, 0}}, corner)
}

// TestWithCell ensures the source grid is untouched and markers are recomputed.
func TestWithCell(t *testing.T) {
	g, err := gridgraph.Parse("S.E", gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	h, err := g.WithCell(gridgraph.Position{Row: 0, Col: 0}, gridgraph.Floor)
	require.NoError(t, err)

	_, ok := h.Start()
	assert.False(t, ok)
	_, ok = g.Start()
	assert.True(t, ok)
	assert.Equal(t, []string{"S.E"}, g.Rows())
	assert.Equal(t, []string{"..E"}, h.Rows())

	_, err = g.WithCell(gridgraph.Position{Row: 4, Col: 0}, gridgraph.Wall)
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

// TestFromObstacles builds an obstacle grid and rejects stray coordinates.
func TestFromObstacles(t *testing.T) {
	g, err := gridgraph.FromObstacles(3, 2, []gridgraph.Position{{0, 1}, {1, 2}})
	require.NoError(t, err)
	assert.Equal(t, []string{".#.", "..#"}, g.Rows())

	_, err = gridgraph.FromObstacles(3, 2, []gridgraph.Position{{2, 0}})
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

//----------------------------------------------------------------------------//
// Geometry Tests
//----------------------------------------------------------------------------//

// TestDirectionRotation checks that four rotations return to the start heading.
func TestDirectionRotation(t *testing.T) {
	for _, d := range gridgraph.Directions {
		cw, ccw := d, d
		for i := 0; i < 4; i++ {
			cw = cw.Clockwise()
			ccw = ccw.CounterClockwise()
		}
		assert.Equal(t, d, cw)
		assert.Equal(t, d, ccw)
		assert.Equal(t, d, d.Clockwise().CounterClockwise())
	}
	assert.Equal(t, gridgraph.South, gridgraph.East.Clockwise())
	assert.Equal(t, gridgraph.North, gridgraph.East.CounterClockwise())
}

// TestPositionOrder checks the row-then-column ordering and Manhattan distance.
func TestPositionOrder(t *testing.T) {
	a := gridgraph.Position{Row: 1, Col: 5}
	b := gridgraph.Position{Row: 2, Col: 0}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, 6, a.Manhattan(b))
	assert.Equal(t, gridgraph.Position{Row: 0, Col: 5}, a.Step(gridgraph.North))
}

//----------------------------------------------------------------------------//
// Regions Tests
//----------------------------------------------------------------------------//

// TestRegionsAndConnected separates two open areas by a solid wall.
func TestRegionsAndConnected(t *testing.T) {
	g, err := gridgraph.Parse("..#..\n..#..", gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	comps := g.Regions()
	require.Len(t, comps, 2)
	assert.Len(t, comps[0], 4)
	assert.Len(t, comps[1], 4)

	assert.True(t, g.Connected(gridgraph.Position{Row: 0, Col: 0}, gridgraph.Position{Row: 1, Col: 1}))
	assert.False(t, g.Connected(gridgraph.Position{Row: 0, Col: 0}, gridgraph.Position{Row: 0, Col: 4}))
	assert.False(t, g.Connected(gridgraph.Position{Row: 0, Col: 2}, gridgraph.Position{Row: 0, Col: 2}), "walls are never connected")
}
