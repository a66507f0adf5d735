package obstacles

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridsearch/bfs"
	"github.com/katalvlaran/gridsearch/gridgraph"
)

var (
	// ErrBadCoordinate indicates a line that is not "x,y" with integers.
	ErrBadCoordinate = errors.New("obstacles: malformed coordinate")
	// ErrPrefixRange indicates n is negative or exceeds the coordinate count.
	ErrPrefixRange = errors.New("obstacles: obstacle count out of range")
)

// ParseCoordinates reads one "x,y" pair per line. Blank lines are skipped.
func ParseCoordinates(r io.Reader) ([]gridgraph.Position, error) {
	var out []gridgraph.Position
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		xs, ys, ok := strings.Cut(text, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadCoordinate, line, text)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadCoordinate, line, text)
		}
		out = append(out, gridgraph.Position{Row: y, Col: x})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Layout returns a size×size grid with the first n obstacles placed.
func Layout(size int, coords []gridgraph.Position, n int) (*gridgraph.Grid, error) {
	if n < 0 || n > len(coords) {
		return nil, fmt.Errorf("%w: %d of %d", ErrPrefixRange, n, len(coords))
	}
	return gridgraph.FromObstacles(size, size, coords[:n])
}

// MinSteps returns the fewest moves from (0,0) to (size-1,size-1) after the
// first n obstacles have landed. ok is false when no route exists.
func MinSteps(size int, coords []gridgraph.Position, n int) (int, bool, error) {
	g, err := Layout(size, coords, n)
	if err != nil {
		return 0, false, err
	}
	return steps(g)
}

// FirstBlocking returns the index and position of the first obstacle after
// which the exit is unreachable. ok is false if every obstacle can land
// without cutting the route.
func FirstBlocking(size int, coords []gridgraph.Position) (int, gridgraph.Position, bool, error) {
	if _, err := Layout(size, coords, len(coords)); err != nil {
		return 0, gridgraph.Position{}, false, err
	}

	var failure error
	n := sort.Search(len(coords)+1, func(n int) bool {
		if failure != nil {
			return true
		}
		g, err := Layout(size, coords, n)
		if err != nil {
			failure = err
			return true
		}
		_, ok, err := steps(g)
		if err != nil {
			failure = err
			return true
		}
		return !ok
	})
	if failure != nil {
		return 0, gridgraph.Position{}, false, failure
	}
	if n == 0 || n > len(coords) {
		return 0, gridgraph.Position{}, false, nil
	}

	return n - 1, coords[n-1], true, nil
}

// steps runs the corner-to-corner BFS on g.
func steps(g *gridgraph.Grid) (int, bool, error) {
	src := gridgraph.Position{}
	dst := gridgraph.Position{Row: g.Height() - 1, Col: g.Width() - 1}
	if g.IsBlocked(src) || g.IsBlocked(dst) {
		return 0, false, nil
	}
	return bfs.Distance(g, src, dst)
}
