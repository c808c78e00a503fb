// Package stats defines the per-run statistics record emitted by every
// searcher and the two serialization forms the harness writes to disk: a
// machine-readable JSON form and a human-readable text log, mirroring the
// two write-out paths of the algorithm this module reimplements.
//
// Report's fields are a superset covering both A* and bidirectional runs;
// a field a given algorithm doesn't produce is left at its zero value
// (HeuristicWeighting for bsharp, HeuristicID/SolutionPath/AttemptedExpansions
// for astar — see the field comments on Report).
package stats
