package astar

import (
	"github.com/lvlath-labs/hsearch/domain"
)

// Settings configures one Searcher instance.
type Settings struct {
	// Degradation is passed to the heuristic on every call, closed over
	// once at construction time; it must not be re-bound per call.
	Degradation int
	// HeuristicWeighting multiplies the heuristic value; 1 is unweighted
	// A*, values > 1 trade optimality for speed.
	HeuristicWeighting float64
}

// DefaultSettings returns unweighted, undegraded A* settings.
func DefaultSettings() Settings {
	return Settings{Degradation: 0, HeuristicWeighting: 1}
}

// Searcher runs uniform-cost or weighted A* against a fixed domain and
// heuristic.
type Searcher struct {
	domain    domain.Domain
	heuristic domain.HeuristicFunc
	settings  Settings
	label     string // heuristic name, for stats.Report.HeuristicID-equivalent logging
}

// New returns a Searcher bound to dom, using heuristicName's forward
// heuristic (triple index 0). If heuristicName is unknown, it falls back
// to the domain's "zero" heuristic.
func New(dom domain.Domain, heuristicName string, settings Settings) *Searcher {
	triple, ok := dom.Heuristics()[heuristicName]
	if !ok {
		heuristicName = "zero"
		triple = dom.Heuristics()["zero"]
	}
	return &Searcher{
		domain:    dom,
		heuristic: triple[0],
		settings:  settings,
		label:     heuristicName,
	}
}
