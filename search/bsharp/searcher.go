package bsharp

import (
	"context"

	"github.com/lvlath-labs/hsearch/core"
	"github.com/lvlath-labs/hsearch/stats"
)

// frontier bundles the per-direction open/closed sets and bookkeeping the
// layer-expansion step needs.
type frontier struct {
	open        map[core.Direction]*core.OpenSet
	closed      map[core.Direction]*core.ClosedSet
	gLim        map[core.Direction]int
	started0    map[core.Direction]map[uint64]struct{}
	nodesGenerated int
}

func newFrontier() *frontier {
	return &frontier{
		open:   map[core.Direction]*core.OpenSet{core.Forward: core.NewOpenSet(), core.Backward: core.NewOpenSet()},
		closed: map[core.Direction]*core.ClosedSet{core.Forward: core.NewClosedSet(), core.Backward: core.NewClosedSet()},
		gLim:   map[core.Direction]int{core.Forward: 0, core.Backward: 0},
		started0: map[core.Direction]map[uint64]struct{}{
			core.Forward:  {},
			core.Backward: {},
		},
	}
}

func opposite(d core.Direction) core.Direction {
	if d == core.Forward {
		return core.Backward
	}
	return core.Forward
}

// Run drives the bidirectional layered main loop to completion (or until
// ctx is canceled) and returns the resulting statistics.
func (s *Searcher) Run(ctx context.Context, problem *core.Problem, label string) (*stats.Report, error) {
	fr := newFrontier()

	hFwdInit := s.heuristicFwd(problem.Initial, problem.Goal, s.settings.Degradation, problem)
	hBwdGoal := s.heuristicBwd(problem.Goal, problem.Initial, s.settings.Degradation, problem)

	rootFwd := core.NewNode(problem.Initial, 0, hFwdInit, core.Forward, nil)
	rootBwd := core.NewNode(problem.Goal, 0, hBwdGoal, core.Backward, nil)
	if err := fr.open[core.Forward].Append(rootFwd); err != nil {
		return nil, err
	}
	if err := fr.open[core.Backward].Append(rootBwd); err != nil {
		return nil, err
	}
	fr.nodesGenerated = 2

	// Edge case: trivial problem. A zero-cost solution can exist before
	// fLim's general termination proof would ever certify it, so the root
	// collision is special-cased here instead of being left to the main
	// loop.
	if problem.Initial.Equal(problem.Goal) {
		return s.solvedReport(label, problem, fr, rootFwd, rootBwd, 0), nil
	}

	fLim := maxInt(hFwdInit, maxInt(hBwdGoal, problem.Epsilon))
	best := core.MaxCost()
	var collisionFwd, collisionBwd *core.Node

	for fr.open[core.Forward].Len() > 0 && fr.open[core.Backward].Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if best == fLim {
			break
		}

		splitFn(fLim-problem.Epsilon+1, s.settings.Split, fr.gLim)
		expandedThisLayer := map[core.Direction]map[uint64]struct{}{
			core.Forward:  {},
			core.Backward: {},
		}

		proven := s.runLayer(problem, fr, fLim, &best, &collisionFwd, &collisionBwd, expandedThisLayer)
		if proven || best == fLim {
			break
		}
		fLim++
	}

	if best >= core.MaxCost() || collisionFwd == nil || collisionBwd == nil {
		return s.unsolvedReport(label, problem, fr), nil
	}
	return s.solvedReport(label, problem, fr, collisionFwd, collisionBwd, best), nil
}

// runLayer processes the expandable set for the current fLim/gLim and
// returns true if a proven-optimal collision was found mid-layer.
func (s *Searcher) runLayer(
	problem *core.Problem,
	fr *frontier,
	fLim int,
	best *int,
	collisionFwd, collisionBwd **core.Node,
	expandedThisLayer map[core.Direction]map[uint64]struct{},
) bool {
	var queue []*core.Node
	for _, d := range [2]core.Direction{core.Forward, core.Backward} {
		fr.open[d].Each(func(n *core.Node) {
			if n.F() <= fLim && n.G < fr.gLim[d] {
				queue = append(queue, n)
			}
		})
	}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		d := n.Direction
		cur, err := fr.open[d].Get(n.State, d)
		if err != nil || cur != n {
			continue // stale: n was replaced or removed since being queued
		}

		if n.NExpanded == 0 && !n.ExpandedNonce {
			fr.started0[d][n.State.Hash()] = struct{}{}
			expandedThisLayer[d][n.State.Hash()] = struct{}{}
			n.ExpandedNonce = true
		}

		opp := opposite(d)
		for _, edge := range n.Expand(problem, core.Eager) {
			if fr.closed[d].Contains(edge.State, d) {
				continue
			}
			if fr.open[d].Contains(edge.State, d) && edge.G >= fr.open[d].GetG(edge.State, d) {
				continue
			}

			if fr.open[d].Contains(edge.State, d) {
				_ = fr.open[d].Remove(edge.State, d)
			}
			if fr.closed[d].Contains(edge.State, d) {
				fr.closed[d].Remove(edge.State, d)
			}

			child := core.NewNode(edge.State, edge.G, s.h(d, edge.State, problem), d, n)
			if err := fr.open[d].Append(child); err != nil {
				continue
			}
			fr.nodesGenerated++

			if child.G < fr.gLim[d] && child.F() <= fLim {
				queue = append(queue, child)
			}

			if fr.open[opp].Contains(edge.State, opp) {
				oppNode, _ := fr.open[opp].Get(edge.State, opp)
				candidate := edge.G + oppNode.G
				if candidate < *best {
					*best = candidate
					if d == core.Forward {
						*collisionFwd, *collisionBwd = child, oppNode
					} else {
						*collisionFwd, *collisionBwd = oppNode, child
					}
				}
				if *best <= fLim {
					return true
				}
			}
		}

		if n.IsFullyExpanded(problem) {
			_ = fr.open[d].Remove(n.State, d)
			fr.closed[d].Add(n)
		}
	}
	return false
}

func (s *Searcher) h(d core.Direction, state core.State, problem *core.Problem) int {
	if d == core.Forward {
		return s.heuristicFwd(state, problem.Goal, s.settings.Degradation, problem)
	}
	return s.heuristicBwd(state, problem.Initial, s.settings.Degradation, problem)
}

// splitFn advances gLim[+1] and gLim[-1] one unit at a time from zero until
// their sum equals target, favoring the forward direction whenever its
// current share of target is below split. target <= 0 leaves both limits
// at zero (the documented resolution for a zero-budget layer).
func splitFn(target int, split float64, gLim map[core.Direction]int) {
	gLim[core.Forward] = 0
	gLim[core.Backward] = 0
	for step := 0; step < target; step++ {
		if float64(gLim[core.Forward])/float64(target) < split {
			gLim[core.Forward]++
		} else {
			gLim[core.Backward]++
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
