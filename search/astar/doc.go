// Package astar implements uniform-cost and weighted A* search over the
// domain.Domain contract.
//
// Overview:
//
//   - Searcher is constructed once per (domain, heuristic, degradation,
//     weighting) configuration and driven by Run, which accepts a
//     context.Context so a host harness can cancel a long-running search
//     between expansions.
//   - The main loop follows the classical best-first scheme: seed the
//     open set with the initial state at g=0, repeatedly pop the
//     minimum-f node, stop when it is the goal, otherwise expand it
//     eagerly against the domain and relax each child.
//   - HeuristicWeighting > 1 produces weighted A*: the heuristic value is
//     scaled before being added to g, trading optimality for speed. The
//     result is only admissible if the base heuristic is and the caller
//     accepts bounded suboptimality (reported cost <= weight * optimal).
//
// Complexity: each state is expanded at most once; total work is bounded
// by the number of distinct states reachable within the solution's cost
// radius, same as any best-first search with a consistent heuristic.
package astar
