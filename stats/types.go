package stats

import (
	"math"
	"time"
)

// Report is one searcher run's outcome, matching the statistics
// table field-for-field. Fields not produced by a given algorithm are left
// at their zero value:
//
//   - HeuristicWeighting is astar-only (bsharp doesn't weight its heuristic).
//   - AttemptedExpansions, HeuristicID and SolutionPath are bsharp-only.
//   - OpenSizeBackward / ClosedSizeBackward are bsharp-only; astar leaves
//     them at 0 and reports only the forward (Open/ClosedSizeForward) pair.
type Report struct {
	RunLabel      string `json:"run_label"`
	Domain        string `json:"domain"`
	Algorithm     string `json:"algorithm"` // "astar" | "bsharp"
	ProblemInitial string `json:"problem_initial,omitempty"`

	NodesExpanded  int `json:"nodes_expanded"`
	NodesGenerated int `json:"nodes_generated"`

	// AttemptedExpansions counts states that began expansion across both
	// directions in a bsharp run (the attempted-expansion count).
	AttemptedExpansions int `json:"attempted_expansions,omitempty"`

	OpenSizeForward    int `json:"open_size_forward"`
	ClosedSizeForward  int `json:"closed_size_forward"`
	OpenSizeBackward   int `json:"open_size_backward,omitempty"`
	ClosedSizeBackward int `json:"closed_size_backward,omitempty"`

	// Best is the solution cost, or +Inf for an unsolvable instance.
	Best float64 `json:"best"`

	// SolutionPath is the rendered forward-to-backward spliced path
	// (bsharp only); nil when Best is infinite or the searcher is astar.
	SolutionPath []string `json:"solution_path,omitempty"`

	HeuristicID        string  `json:"heuristic_id,omitempty"`
	HeuristicWeighting float64 `json:"heuristic_weighting,omitempty"`

	Elapsed time.Duration `json:"elapsed_ns"`
}

// Unsolvable returns a Report recording that no solution was found: Best
// is +Inf and SolutionPath is nil.
func Unsolvable(runLabel, domainName, algorithm string) Report {
	return Report{
		RunLabel:  runLabel,
		Domain:    domainName,
		Algorithm: algorithm,
		Best:      math.Inf(1),
	}
}

// Solved reports whether the run found a finite-cost solution.
func (r Report) Solved() bool {
	return !math.IsInf(r.Best, 1)
}
