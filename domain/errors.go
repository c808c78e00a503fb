package domain

import "errors"

var (
	// ErrUnknownDomain is returned by New when no domain was registered
	// under the requested name.
	ErrUnknownDomain = errors.New("domain: unknown domain name")

	// ErrDuplicateDomain's message prefixes the value Register panics with
	// when a name is already bound to a constructor.
	ErrDuplicateDomain = errors.New("domain: domain already registered")

	// ErrMissingZeroHeuristic describes a heuristic table that omits the
	// mandatory "zero" entry. No code in this module returns it;
	// domains/pancake and domains/tsp always include "zero".
	ErrMissingZeroHeuristic = errors.New("domain: heuristic table missing required \"zero\" entry")

	// ErrUnknownHeuristic describes a configuration naming a heuristic
	// absent from a domain's table. No code in this module returns it:
	// astar.New and bsharp.New fall back to the "zero" heuristic instead.
	ErrUnknownHeuristic = errors.New("domain: unknown heuristic name")
)
