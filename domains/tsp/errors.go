package tsp

import "errors"

var (
	// ErrEmptyLine is returned by ParseProblem when given a blank line.
	ErrEmptyLine = errors.New("tsp: empty problem line")

	// ErrBadCoord is returned by ParseProblem when a "x y" pair does not
	// parse as two floats.
	ErrBadCoord = errors.New("tsp: malformed city coordinate")

	// ErrTooFewCities is returned by ParseProblem when fewer than 2 cities
	// are given; a tour needs at least a start and one other city.
	ErrTooFewCities = errors.New("tsp: at least 2 cities are required")

	// ErrMissingParam is returned by GenerateProblems when no precompiled
	// files are configured and Settings.NProblems/Param are unset.
	ErrMissingParam = errors.New("tsp: n_problems and param are required when precompiled is empty")
)
