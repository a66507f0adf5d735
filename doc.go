// Package gridsearch is a small toolkit for shortest-path puzzles on
// 2D character grids: mazes with turning costs, single-lane racetracks with
// wall-skipping shortcuts, and square regions slowly filling with obstacles.
//
// What is inside?
//
//	gridgraph       immutable grid model, parsing, bounds, neighbours, regions
//	bfs             unweighted breadth-first search with hooks and depth limits
//	dijkstra        direction-aware search (step 1, turn 1000) + optimal tiles
//	shortcut        bounded phase-through-wall and Manhattan-radius shortcuts
//	obstacles       falling-obstacle layouts, min steps, first blocking obstacle
//	input           file ingestion helpers
//	cmd/gridsearch  command-line front end
//
// Quick start:
//
//	g, _ := gridgraph.Parse(text, gridgraph.GridOptions{RequireMarkers: true})
//	res, _ := dijkstra.Solve(g)
//	fmt.Println(res.Cost, res.TileCount())
//
// Every search is deterministic: neighbours are always visited North, East,
// South, West and heap ties are broken by position. Grids are read-only
// after construction, so one grid can serve many concurrent searches.
package gridsearch
