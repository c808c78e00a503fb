package bsharp_test

import (
	"fmt"

	"github.com/lvlath-labs/hsearch/config"
	"github.com/lvlath-labs/hsearch/core"
	"github.com/lvlath-labs/hsearch/domain"
)

// lineState is a tiny core.State: an integer node on a fixed undirected
// path graph 0 - 1 - 2 - ... - n, each edge costing 1. Successors are
// symmetric (both neighbors, where they exist), matching the undirected
// domains (pancake, tsp) that the bidirectional searcher actually drives:
// the same successor rule must work whether the frontier is growing from
// the problem's initial state or its goal state.
type lineState struct {
	id, max int
}

func (s *lineState) Equal(other core.State) bool {
	o, ok := other.(*lineState)
	return ok && o.id == s.id
}
func (s *lineState) Hash() uint64 { return uint64(s.id) }
func (s *lineState) Successors(_ *core.Problem) []core.Successor {
	var out []core.Successor
	if s.id > 0 {
		out = append(out, core.Successor{State: &lineState{id: s.id - 1, max: s.max}, Cost: 1})
	}
	if s.id < s.max {
		out = append(out, core.Successor{State: &lineState{id: s.id + 1, max: s.max}, Cost: 1})
	}
	return out
}
func (s *lineState) NumSuccessors(_ *core.Problem) int {
	n := 0
	if s.id > 0 {
		n++
	}
	if s.id < s.max {
		n++
	}
	return n
}
func (s *lineState) String() string { return fmt.Sprintf("line(%d)", s.id) }

// lineDomain implements domain.Domain over lineState, with a "zero" and a
// perfectly admissible "remaining" heuristic (|goal.id - state.id|).
type lineDomain struct{}

func (lineDomain) Name() string { return "line" }
func (lineDomain) Successors(s core.State, p *core.Problem) []core.Successor {
	return s.Successors(p)
}
func (lineDomain) Cost(from, to core.State, p *core.Problem) int {
	for _, e := range from.Successors(p) {
		if e.State.Equal(to) {
			return e.Cost
		}
	}
	return 0
}
func (lineDomain) Heuristics() map[string]domain.HeuristicTriple {
	zero := func(core.State, core.State, int, *core.Problem) int { return 0 }
	remaining := func(state, goal core.State, _ int, _ *core.Problem) int {
		g := goal.(*lineState)
		s := state.(*lineState)
		d := g.id - s.id
		if d < 0 {
			d = -d
		}
		return d
	}
	return map[string]domain.HeuristicTriple{
		"zero":      {zero, zero, zero},
		"remaining": {remaining, remaining, remaining},
	}
}
func (lineDomain) GenerateProblems(_ *config.Config) ([]*core.Problem, error) { return nil, nil }
func (lineDomain) ParseProblem(_ string) (*core.Problem, error)               { return nil, nil }

func lineProblem(initial, goal, max int) *core.Problem {
	return &core.Problem{
		Initial: &lineState{id: initial, max: max},
		Goal:    &lineState{id: goal, max: max},
		Epsilon: 1,
	}
}
