package pancake

import "errors"

var (
	// ErrEmptyLine is returned by ParseProblem when given a blank line.
	ErrEmptyLine = errors.New("pancake: empty problem line")

	// ErrBadToken is returned by ParseProblem when a token on the line is
	// not a valid integer.
	ErrBadToken = errors.New("pancake: non-integer pancake size")

	// ErrTooShort is returned by ParseProblem when a stack has fewer than
	// 3 elements (base plus at least 2 pancakes), the minimum needed for
	// a non-trivial flip to exist.
	ErrTooShort = errors.New("pancake: stack must have at least 3 elements")

	// ErrMissingParam is returned by GenerateProblems when no precompiled
	// files are configured and Settings.NProblems/Param are unset.
	ErrMissingParam = errors.New("pancake: n_problems and param are required when precompiled is empty")
)
