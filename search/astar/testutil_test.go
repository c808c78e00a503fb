package astar_test

import (
	"fmt"

	"github.com/lvlath-labs/hsearch/config"
	"github.com/lvlath-labs/hsearch/core"
	"github.com/lvlath-labs/hsearch/domain"
)

// chainState is a tiny core.State: an integer node in a fixed directed
// chain 0 -> 1 -> 2 -> ... -> n, each edge costing 1, used to exercise the
// A* loop against known-optimal costs without any real domain package.
type chainState struct {
	id, max int
}

func (s *chainState) Equal(other core.State) bool {
	o, ok := other.(*chainState)
	return ok && o.id == s.id
}
func (s *chainState) Hash() uint64 { return uint64(s.id) }
func (s *chainState) Successors(_ *core.Problem) []core.Successor {
	if s.id >= s.max {
		return nil
	}
	return []core.Successor{{State: &chainState{id: s.id + 1, max: s.max}, Cost: 1}}
}
func (s *chainState) NumSuccessors(_ *core.Problem) int {
	if s.id >= s.max {
		return 0
	}
	return 1
}
func (s *chainState) String() string { return fmt.Sprintf("chain(%d)", s.id) }

// chainDomain implements domain.Domain over chainState, with a "zero" and
// a perfectly admissible "remaining" heuristic (goal.id - state.id).
type chainDomain struct{}

func (chainDomain) Name() string { return "chain" }
func (chainDomain) Successors(s core.State, p *core.Problem) []core.Successor {
	return s.Successors(p)
}
func (chainDomain) Cost(from, to core.State, p *core.Problem) int {
	for _, e := range from.Successors(p) {
		if e.State.Equal(to) {
			return e.Cost
		}
	}
	return 0
}
func (chainDomain) Heuristics() map[string]domain.HeuristicTriple {
	zero := func(core.State, core.State, int, *core.Problem) int { return 0 }
	remaining := func(state, goal core.State, _ int, _ *core.Problem) int {
		g := goal.(*chainState)
		s := state.(*chainState)
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
func (chainDomain) GenerateProblems(_ *config.Config) ([]*core.Problem, error) { return nil, nil }
func (chainDomain) ParseProblem(_ string) (*core.Problem, error)               { return nil, nil }
