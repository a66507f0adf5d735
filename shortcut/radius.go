package shortcut

import "github.com/katalvlaran/gridsearch/gridgraph"

// radius pairs the i-th path cell with every later path cell within
// Manhattan distance Allowance; walls in between are ignored.
func (f *finder) radius(i int, origin gridgraph.Position) {
	r := f.cfg.Allowance
	for dr := -r; dr <= r; dr++ {
		span := r - gridgraph.AbsDiff(dr, 0)
		for dc := -span; dc <= span; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			to := gridgraph.Position{Row: origin.Row + dr, Col: origin.Col + dc}
			j, ok := f.index[to]
			if !ok || j <= i {
				continue
			}
			moves := origin.Manhattan(to)
			f.offer(origin, to, moves, j-i-moves)
		}
	}
}
