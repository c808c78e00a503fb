package astar

import (
	"context"
	"math"

	"github.com/lvlath-labs/hsearch/core"
	"github.com/lvlath-labs/hsearch/stats"
)

// Run drives the A* main loop to completion (or until ctx is canceled) and
// returns the resulting statistics.
//
//  1. Seed the open set with the initial state as a node at g=0.
//  2. While the open set is non-empty: pop the minimum-f node n — this
//     pop is what nodes_expanded counts, whether or not n turns out to be
//     the goal. If n's state equals the goal, record it as the solution
//     and terminate.
//  3. Otherwise close n, and for each (child, edgeCost) from
//     n.Expand(problem, Eager): skip closed children; skip children
//     already open at a cost no worse than the new one; otherwise replace
//     or append the open entry with the cheaper node.
//  4. If the open set empties without finding the goal, report best=+Inf.
func (s *Searcher) Run(ctx context.Context, problem *core.Problem, label string) (*stats.Report, error) {
	open := core.NewOpenSet()
	closed := core.NewClosedSet()

	root := core.NewNode(problem.Initial, 0, s.h(problem.Initial, problem), core.Forward, nil)
	if err := open.Append(root); err != nil {
		return nil, err
	}
	nodesGenerated := 1
	nodesExpanded := 0

	for open.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := open.Pop()
		if err != nil {
			return nil, err
		}
		nodesExpanded++

		if n.State.Equal(problem.Goal) {
			return s.solvedReport(label, nodesExpanded, nodesGenerated, open, closed, n), nil
		}

		closed.Add(n)

		for _, edge := range n.Expand(problem, core.Eager) {
			if closed.Contains(edge.State, core.Forward) {
				continue
			}
			if open.Contains(edge.State, core.Forward) && edge.G >= open.GetG(edge.State, core.Forward) {
				continue
			}

			child := core.NewNode(edge.State, edge.G, s.h(edge.State, problem), core.Forward, n)
			nodesGenerated++
			if open.Contains(edge.State, core.Forward) {
				if err := open.Replace(child); err != nil {
					return nil, err
				}
			} else if err := open.Append(child); err != nil {
				return nil, err
			}
		}
	}

	rep := stats.Unsolvable(label, s.domain.Name(), "astar")
	rep.HeuristicWeighting = s.settings.HeuristicWeighting
	rep.OpenSizeForward = open.Len()
	rep.ClosedSizeForward = closed.Len()
	rep.NodesGenerated = nodesGenerated
	rep.NodesExpanded = nodesExpanded
	return &rep, nil
}

// h evaluates the searcher's heuristic at state against problem's goal,
// scaling by HeuristicWeighting (rounded to the nearest integer since the
// search engine's cost arithmetic is integral throughout).
func (s *Searcher) h(state core.State, problem *core.Problem) int {
	raw := s.heuristic(state, problem.Goal, s.settings.Degradation, problem)
	if s.settings.HeuristicWeighting == 1 {
		return raw
	}
	return int(math.Round(float64(raw) * s.settings.HeuristicWeighting))
}

func (s *Searcher) solvedReport(label string, nodesExpanded, nodesGenerated int, open *core.OpenSet, closed *core.ClosedSet, goalNode *core.Node) *stats.Report {
	return &stats.Report{
		RunLabel:           label,
		Domain:             s.domain.Name(),
		Algorithm:          "astar",
		NodesExpanded:      nodesExpanded,
		NodesGenerated:     nodesGenerated,
		OpenSizeForward:    open.Len(),
		ClosedSizeForward:  closed.Len(),
		Best:               float64(goalNode.G),
		HeuristicWeighting: s.settings.HeuristicWeighting,
	}
}
