package bsharp

import (
	"github.com/lvlath-labs/hsearch/core"
	"github.com/lvlath-labs/hsearch/stats"
)

func (s *Searcher) solvedReport(label string, problem *core.Problem, fr *frontier, collisionFwd, collisionBwd *core.Node, best int) *stats.Report {
	return &stats.Report{
		RunLabel:             label,
		Domain:               s.dom.Name(),
		Algorithm:            "bsharp",
		ProblemInitial:       problem.Initial.String(),
		NodesExpanded:        fr.closed[core.Forward].Len() + fr.closed[core.Backward].Len(),
		NodesGenerated:       fr.nodesGenerated,
		AttemptedExpansions:  len(fr.started0[core.Forward]) + len(fr.started0[core.Backward]),
		OpenSizeForward:      fr.open[core.Forward].Len(),
		ClosedSizeForward:    fr.closed[core.Forward].Len(),
		OpenSizeBackward:     fr.open[core.Backward].Len(),
		ClosedSizeBackward:   fr.closed[core.Backward].Len(),
		Best:                 float64(best),
		SolutionPath:         splicePath(collisionFwd, collisionBwd),
		HeuristicID:          s.heuristicName,
	}
}

func (s *Searcher) unsolvedReport(label string, problem *core.Problem, fr *frontier) *stats.Report {
	rep := stats.Unsolvable(label, s.dom.Name(), "bsharp")
	rep.ProblemInitial = problem.Initial.String()
	rep.NodesExpanded = fr.closed[core.Forward].Len() + fr.closed[core.Backward].Len()
	rep.NodesGenerated = fr.nodesGenerated
	rep.AttemptedExpansions = len(fr.started0[core.Forward]) + len(fr.started0[core.Backward])
	rep.OpenSizeForward = fr.open[core.Forward].Len()
	rep.ClosedSizeForward = fr.closed[core.Forward].Len()
	rep.OpenSizeBackward = fr.open[core.Backward].Len()
	rep.ClosedSizeBackward = fr.closed[core.Backward].Len()
	rep.HeuristicID = s.heuristicName
	return &rep
}
