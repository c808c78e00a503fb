package tsp

import "github.com/lvlath-labs/hsearch/core"

func zeroHeuristic(core.State, core.State, int, *core.Problem) int { return 0 }

func minEdgeIn(city Point, cities []Point) int {
	best := -1
	for _, other := range cities {
		if other == city {
			continue
		}
		d := dist(city, other)
		if best == -1 || d < best {
			best = d
		}
	}
	if best == -1 {
		return 0
	}
	return best
}

// edgesInHeuristicFw sums, over every city labeled backward-visited in
// state, its minimum edge to any other city. Grounded on
// original_source's edges_in_heuristic_fw, which hardcodes the visited
// label it scans for rather than deriving it from state.direction.
func edgesInHeuristicFw(state, _ core.State, _ int, problem *core.Problem) int {
	s := state.(*State)
	cities := problem.Statics.([]Point)
	h := 0
	for _, c := range s.cities {
		if c.visited == labelBackward {
			h += minEdgeIn(c.point, cities)
		}
	}
	return h
}

// edgesInHeuristicBw mirrors edgesInHeuristicFw, scanning for the
// forward-visited label instead. Grounded on original_source's
// edges_in_heuristic_bw.
func edgesInHeuristicBw(state, _ core.State, _ int, problem *core.Problem) int {
	s := state.(*State)
	cities := problem.Statics.([]Point)
	h := 0
	for _, c := range s.cities {
		if c.visited == labelForward {
			h += minEdgeIn(c.point, cities)
		}
	}
	return h
}
