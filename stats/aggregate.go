package stats

import "gonum.org/v1/gonum/stat"

// Aggregate summarizes a batch of Reports from repeated runs of the same
// searcher/heuristic/degradation configuration over many problem
// instances — the comparison this harness exists to produce.
type Aggregate struct {
	N              int
	SolvedCount    int
	MeanBest       float64
	StdDevBest     float64
	MeanExpanded   float64
	StdDevExpanded float64
	MeanElapsedSec float64
}

// Summarize computes an Aggregate over reports, restricting the Best and
// NodesExpanded statistics to solved runs (an unsolved run's Best is +Inf
// and would otherwise dominate the mean).
func Summarize(reports []Report) Aggregate {
	agg := Aggregate{N: len(reports)}
	if len(reports) == 0 {
		return agg
	}

	var bests, expanded, elapsed []float64
	for _, r := range reports {
		elapsed = append(elapsed, r.Elapsed.Seconds())
		if r.Solved() {
			agg.SolvedCount++
			bests = append(bests, r.Best)
			expanded = append(expanded, float64(r.NodesExpanded))
		}
	}

	if len(bests) > 0 {
		agg.MeanBest, agg.StdDevBest = stat.MeanStdDev(bests, nil)
		agg.MeanExpanded, _ = stat.MeanStdDev(expanded, nil)
		agg.StdDevExpanded = stat.StdDev(expanded, nil)
	}
	agg.MeanElapsedSec = stat.Mean(elapsed, nil)
	return agg
}
