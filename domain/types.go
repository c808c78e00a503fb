package domain

import (
	"github.com/lvlath-labs/hsearch/config"
	"github.com/lvlath-labs/hsearch/core"
)

// HeuristicFunc estimates the remaining cost from state to goal. degradation
// is an integer in [0, 10] the heuristic interprets as how much to relax
// itself; 0 leaves it unchanged. Implementations must return a value >= 0
// and must be safe to call concurrently (the harness may run independent
// problem instances in parallel).
type HeuristicFunc func(state, goal core.State, degradation int, problem *core.Problem) int

// HeuristicTriple bundles the three heuristic calls a searcher can need:
//
//	[0] forward heuristic, used by unidirectional A*.
//	[1] forward heuristic, used by the bidirectional searcher's forward frontier.
//	[2] backward heuristic, used by the bidirectional searcher's backward frontier.
//
// [0] and [1] are always the same function; the triple exists so both
// searchers can index into heuristics by the same small integer scheme.
type HeuristicTriple [3]HeuristicFunc

// Domain is the contract every problem domain (domains/pancake,
// domains/tsp) implements so search/astar and search/bsharp can drive it
// generically.
type Domain interface {
	// Name returns the domain's registry key, e.g. "unit_pancake".
	Name() string

	// Successors enumerates state's outgoing edges for problem, sorted by
	// ascending cost. Most domains delegate directly to the state's own
	// Successors method; Domain exposes it too so callers that only hold a
	// Domain (not a concrete state type) can still enumerate.
	Successors(state core.State, problem *core.Problem) []core.Successor

	// Cost returns the edge cost from "from" to "to", consistent with the
	// cost Successors(from, problem) reports for the same transition.
	Cost(from, to core.State, problem *core.Problem) int

	// Heuristics returns the domain's named heuristic table. Every domain
	// must include a "zero" entry.
	Heuristics() map[string]HeuristicTriple

	// GenerateProblems builds the set of problem instances described by
	// cfg's Settings section: either parsing the files named in
	// Settings.Precompiled, or sampling Settings.NProblems random
	// instances parameterized by Settings.Param.
	GenerateProblems(cfg *config.Config) ([]*core.Problem, error)

	// ParseProblem parses a single problem instance from one line of a
	// problem file, independent of a full Config. Used by GenerateProblems
	// for the precompiled case and directly by domain-specific tests and
	// CLI tooling that want one problem without a config.
	ParseProblem(line string) (*core.Problem, error)
}
