// Package bsharp implements the bidirectional, layered, meeting-in-the-
// middle search (B#/NBS-style) over the domain.Domain contract.
//
// Overview:
//
//   - Searcher maintains two open sets and two closed sets, one per
//     search direction, and alternately widens a joint f-limit (fLim)
//     while distributing a per-layer g-budget between the two directions
//     according to a configured forward/backward split.
//   - Each outer iteration raises fLim by one and re-derives gLim[+1],
//     gLim[-1] via the split rule, then runs one layer expansion over the
//     "expandable set" (nodes whose f is within budget and g below their
//     direction's gLim).
//   - A solution is proven optimal the moment a meet-in-the-middle
//     candidate cost equals fLim; until then fLim is only a lower bound.
//
// Edge cases handled explicitly: a trivial problem (initial == goal) is
// special-cased at the seeding step rather than relying on the general
// fLim termination, since a zero-cost solution can be found before fLim
// itself reaches zero; an unreachable goal is detected when either open
// set empties, reporting best=+Inf; re-opening a closed node (a cheaper
// path to an already-expanded state) is supported by core.ClosedSet.Remove.
package bsharp
