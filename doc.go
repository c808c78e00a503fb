// Package hsearch is a heuristic graph-search engine: a generic A* and
// bidirectional (B#) searcher core, driven against pluggable
// combinatorial problem domains.
//
// Subpackages:
//
//	core/            — Node, OpenSet, ClosedSet, Problem, State: the
//	                   search-engine's own data model.
//	domain/          — the Domain contract and its name-keyed registry.
//	domains/pancake/ — unit- and arbitrary-cost pancake-flipping domains.
//	domains/tsp/     — the travelling-salesman domain.
//	search/astar/    — unidirectional A*.
//	search/bsharp/   — bidirectional layered (B#/NBS) search.
//	config/          — TOML harness configuration.
//	stats/           — per-run statistics, serialization, aggregation.
//	cmd/searchbench/ — the CLI harness entrypoint.
package hsearch
