// Command searchbench runs one or more configured searchers (astar,
// bsharp) against a domain's generated or precompiled problem set and
// writes per-run and aggregate statistics to disk.
package main
