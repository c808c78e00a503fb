package config

import "errors"

var (
	// ErrMissingDomain is returned when Settings.Domain is empty.
	ErrMissingDomain = errors.New("config: Settings.domain is required")

	// ErrNoSearchers is returned when the Searchers table is empty —
	// there is nothing for the harness to run.
	ErrNoSearchers = errors.New("config: at least one [Searchers.*] table is required")

	// ErrUnknownSearcherKind is returned when a SearcherConfig.Searcher
	// value is neither "astar" nor "bsharp".
	ErrUnknownSearcherKind = errors.New("config: Searchers.*.searcher must be \"astar\" or \"bsharp\"")

	// ErrBadSplit is returned when a bsharp SearcherConfig.Split falls
	// outside [0, 1].
	ErrBadSplit = errors.New("config: Searchers.*.split must be in [0, 1]")

	// ErrBadNProblems is returned when Settings.NProblems is negative.
	ErrBadNProblems = errors.New("config: Settings.n_problems must be >= 0")
)
