// Package domain defines the contract a problem domain must satisfy to be
// driven by search/astar and search/bsharp, plus a name-keyed registry so
// the experiment harness (cmd/searchbench) can select a domain by its
// configuration string instead of importing it directly.
//
// Overview:
//
//   - Domain exposes successor enumeration, edge cost, a heuristic table
//     keyed by name, and problem generation from configuration.
//   - HeuristicFunc is a plain function of (state, goal, degradation,
//     problem); degradation is an integer 0-10 a heuristic interprets as
//     "how much to relax itself" (0 = unchanged).
//   - HeuristicTriple repeats the forward heuristic at index 0 so a single
//     indexing scheme serves unidirectional search (index 0) and the
//     bidirectional searcher's forward/backward pair (indices 1 and 2).
//   - Register/New let domains/pancake and domains/tsp make themselves
//     available under a string name without the core packages importing
//     them, using a registration map since domains are added externally
//     rather than enumerated.
package domain
