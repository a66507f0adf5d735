package obstacles_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/obstacles"
)

type pos = gridgraph.Position

func loadFalling(t testing.TB) []pos {
	t.Helper()
	f, err := os.Open("testdata/falling.txt")
	require.NoError(t, err)
	defer f.Close()
	coords, err := obstacles.ParseCoordinates(f)
	require.NoError(t, err)
	return coords
}

func TestParseCoordinates(t *testing.T) {
	coords, err := obstacles.ParseCoordinates(strings.NewReader("5,4\n\n 4, 2 \r\n"))
	require.NoError(t, err)
	assert.Equal(t, []pos{{Row: 4, Col: 5}, {Row: 2, Col: 4}}, coords)

	for _, bad := range []string{"5;4", "a,1", "1,", "1,2\n3"} {
		_, err := obstacles.ParseCoordinates(strings.NewReader(bad))
		require.ErrorIs(t, err, obstacles.ErrBadCoordinate, "%q", bad)
	}

	_, err = obstacles.ParseCoordinates(strings.NewReader("1,2\n\nx,y"))
	require.ErrorContains(t, err, "line 3")
}

func TestLayout(t *testing.T) {
	coords := loadFalling(t)
	require.Len(t, coords, 25)

	g, err := obstacles.Layout(7, coords, 12)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"...#...",
		"..#..#.",
		"....#..",
		"...#..#",
		"..#..#.",
		".#..#..",
		"#.#....",
	}, "\n"), g.String())

	_, err = obstacles.Layout(7, coords, 26)
	require.ErrorIs(t, err, obstacles.ErrPrefixRange)
	_, err = obstacles.Layout(7, coords, -1)
	require.ErrorIs(t, err, obstacles.ErrPrefixRange)
	_, err = obstacles.Layout(3, coords, 1)
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

func TestMinSteps(t *testing.T) {
	coords := loadFalling(t)

	d, ok, err := obstacles.MinSteps(7, coords, 12)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 22, d)

	d, ok, err = obstacles.MinSteps(7, coords, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 12, d)

	_, ok, err = obstacles.MinSteps(7, coords, len(coords))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFirstBlocking(t *testing.T) {
	coords := loadFalling(t)
	i, p, ok, err := obstacles.FirstBlocking(7, coords)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 20, i)
	assert.Equal(t, pos{Row: 1, Col: 6}, p)

	// Every prefix before it still has a route; it and every later one does not.
	_, ok, err = obstacles.MinSteps(7, coords, i)
	require.NoError(t, err)
	assert.True(t, ok)
	_, ok, err = obstacles.MinSteps(7, coords, i+1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFirstBlocking_Corners(t *testing.T) {
	// Landing on the exit blocks immediately.
	i, p, ok, err := obstacles.FirstBlocking(3, []pos{{Row: 0, Col: 1}, {Row: 2, Col: 2}})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, pos{Row: 2, Col: 2}, p)

	_, _, ok, err = obstacles.FirstBlocking(3, []pos{{Row: 1, Col: 1}})
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, _, err = obstacles.FirstBlocking(3, []pos{{Row: 5, Col: 5}})
	require.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}
