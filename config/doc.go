// Package config decodes the TOML file the experiment harness reads: one
// "Settings" table describing which domain, heuristic and problem source
// to use, and a "Searchers" table of subtables, one per configured
// searcher run.
//
// Overview:
//
//   - A settings section plus a list of searcher descriptors, exactly the
//     external shape the harness contract calls for: domain name,
//     heuristic name, problem source (generated or read from files), and
//     per-searcher overrides (which algorithm, which degradation values,
//     heuristic weighting, forward/backward split).
//   - Decoding is strict: unknown keys and the wrong TOML type for a field
//     are decode errors, not silently ignored, since a misconfigured
//     degradation list should fail fast rather than run a silently wrong
//     experiment.
//
// Example file:
//
//	[Settings]
//	domain = "unit_pancake"
//	heuristic = "gap"
//	n_problems = 50
//	param = 10
//
//	[Searchers.astar_w1]
//	searcher = "astar"
//	heuristic = "gap"
//	degradation = [0, 4, 8]
//	heuristic_weighting = 1.0
//
//	[Searchers.bsharp_even]
//	searcher = "bsharp"
//	heuristic = "gap"
//	degradation = [0]
//	split = 0.5
package config
