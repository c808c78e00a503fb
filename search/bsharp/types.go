package bsharp

import (
	"github.com/lvlath-labs/hsearch/domain"
)

// Settings configures one Searcher instance.
type Settings struct {
	// Degradation is passed to both heuristics on every call, closed over
	// once at construction time.
	Degradation int
	// Split is the forward-share parameter in [0, 1]: 1.0 runs forward-only
	// (the backward gLim never advances), 0.0 runs backward-only, 0.5
	// splits the per-layer budget evenly.
	Split float64
}

// DefaultSettings returns undegraded, evenly split settings.
func DefaultSettings() Settings {
	return Settings{Degradation: 0, Split: 0.5}
}

// Searcher runs the bidirectional layered search against a fixed domain
// and heuristic pair.
type Searcher struct {
	dom           domain.Domain
	heuristicFwd  domain.HeuristicFunc
	heuristicBwd  domain.HeuristicFunc
	settings      Settings
	heuristicName string
}

// New returns a Searcher bound to dom, using heuristicName's bidirectional
// pair (triple indices 1 and 2). If heuristicName is unknown to dom, it
// falls back to the domain's "zero" heuristic.
func New(dom domain.Domain, heuristicName string, settings Settings) *Searcher {
	triple, ok := dom.Heuristics()[heuristicName]
	if !ok {
		heuristicName = "zero"
		triple = dom.Heuristics()["zero"]
	}
	return &Searcher{
		dom:           dom,
		heuristicFwd:  triple[1],
		heuristicBwd:  triple[2],
		settings:      settings,
		heuristicName: heuristicName,
	}
}
