package gridgraph

// Regions labels contiguous areas of passable cells under 4-connectivity.
// Returns a slice of components; each component is a slice of row-major
// cell indices in BFS discovery order. Use Coordinate to map an index
// back to a Position.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions() [][]int {
	total := g.width * g.height
	seen := make([]bool, total)
	var comps [][]int

	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if g.cells[r][c] == Wall {
				continue
			}
			i0 := g.index(Position{Row: r, Col: c})
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			var comp []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				for _, v := range g.Neighbors(g.Coordinate(u)) {
					if g.IsBlocked(v) {
						continue
					}
					vi := g.index(v)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}

// Connected reports whether a and b are passable cells in the same region.
// The labelling is computed once per Grid and is safe for concurrent use.
func (g *Grid) Connected(a, b Position) bool {
	if g.IsBlocked(a) || g.IsBlocked(b) {
		return false
	}
	g.regionsOnce.Do(func() {
		labels := make([]int, g.width*g.height)
		for i := range labels {
			labels[i] = -1
		}
		for id, comp := range g.Regions() {
			for _, i := range comp {
				labels[i] = id
			}
		}
		g.regions = labels
	})
	return g.regions[g.index(a)] == g.regions[g.index(b)]
}
