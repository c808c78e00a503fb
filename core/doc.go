// SPDX-License-Identifier: MIT
//
// File: doc.go
// Role: Package overview and complexity summary for the search-engine data
//       model (State, Node, OpenSet, ClosedSet).
// Policy:
//   - Every exported method in this package documents its complexity.
//   - No algorithms live here; see search/astar and search/bsharp.

// Package core defines the searcher-independent data model shared by every
// algorithm in this module: the State/Problem contract a domain must
// satisfy, the Node record a searcher attaches to a state during search,
// and the two containers — OpenSet and ClosedSet — a searcher uses to
// track its frontier.
//
// Overview:
//
//   - State is supplied by a domain (see package domain) and must be
//     immutable, hashable, and able to enumerate its own successors sorted
//     by ascending edge cost.
//   - Node wraps a State with the bookkeeping a searcher needs: g/h/f,
//     direction, parent, depth, and the deferred-expansion cursor G. Nodes
//     are owned by the searcher, never by the domain, and are never shared
//     across searcher runs.
//   - OpenSet is an indexed priority queue: a binary heap ordered on
//     Node.F, paired with a hash map from (state, direction) to heap
//     position, so Contains, GetG, Replace and Remove all run in O(log n)
//     instead of the O(n) a plain heap would force. A second min-heap,
//     ordered on Node.G, serves MinG.
//   - ClosedSet is a state-keyed set that additionally supports Remove,
//     because the bidirectional searcher re-opens a closed node when a
//     cheaper path to its state is discovered.
//
// None of the types in this package know anything about A* or the
// bidirectional algorithm; see search/astar and search/bsharp for the
// searchers that drive these containers.
//
// Complexity:
//
//   - OpenSet.Append / Pop / Replace / Remove: O(log n).
//   - OpenSet.Contains / GetG / Get: O(1) (hash lookup) + O(log n) for the
//     heap-position bookkeeping on mutation.
//   - ClosedSet.Add / Remove / Contains: O(1) amortized.
//
// OpenSet follows the common indexed-heap idiom (container/heap plus an
// auxiliary index map), extended to support random-access replace and
// remove.
package core
