package pancake

import (
	"math"

	"github.com/lvlath-labs/hsearch/core"
)

func zeroHeuristic(core.State, core.State, int, *core.Problem) int { return 0 }

// notAdjacent reports whether p1 and p2 are NOT next to each other
// (in either order) anywhere in stack.
func notAdjacent(p1, p2 int, stack []int) bool {
	for i := 0; i < len(stack)-1; i++ {
		a, b := stack[i], stack[i+1]
		if (p1 == a || p1 == b) && (p2 == a || p2 == b) {
			return false
		}
	}
	return true
}

// gapHeuristic counts the pairs of pancakes adjacent in state but not in
// goal, per original_source's gap_heuristic_fw. degradation ignores the
// top floor(degradation/10 * len) pancakes of the comparison, per the
// domain-wide degradation contract. Used unchanged for both fw and bw —
// original_source's gap_heuristic_bw is a literal call to the fw function
// with the same argument order, so there is no direction-specific form.
func gapHeuristic(state, goal core.State, degradation int, _ *core.Problem) int {
	s := state.(*State).stack
	g := goal.(*State).stack

	stop := (len(g) - 1) - int(math.Floor(float64(degradation)/10*float64(len(g))))
	if stop < 0 {
		stop = 0
	}
	h := 0
	for i := 0; i < stop; i++ {
		if notAdjacent(s[i], s[i+1], g) {
			h++
		}
	}
	return h
}

// largestPancakeHeuristic returns the weight of the rightmost (closest to
// the top of stack, i.e. highest-index) pancake that is out of place
// relative to goal, within the first stop positions after degradation.
// Grounded on original_source's largest_pancake_heuristic_fw.
func largestPancakeHeuristic(state, goal core.State, degradation int, _ *core.Problem) int {
	s := state.(*State)
	g := goal.(*State)
	if s.Equal(g) {
		return 0
	}

	stop := len(g.stack) - int(math.Floor(float64(degradation)/10*float64(len(g.stack))))
	maxI := -1
	for i := 1; i < stop && i < len(s.stack); i++ {
		if s.stack[i] != g.stack[i] {
			maxI = i
		}
	}
	if maxI == -1 {
		return 0
	}
	return s.stack[maxI]
}
