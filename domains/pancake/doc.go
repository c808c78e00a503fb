// Package pancake implements the pancake-flipping domain in both its
// unit-cost and arbitrary-cost variants, satisfying the domain.Domain
// contract (see package domain).
//
// A state is a stack of pancakes, the leftmost element always the fixed
// base. A move picks a split point i in [1, len-2], keeps the prefix
// [0, i) unchanged and reverses the suffix [i, len) in place — the
// array-index equivalent of lifting the top (len-i) pancakes with a
// spatula and flipping them. The goal state is the same pancakes sorted
// in descending order.
//
// Two variants share this successor rule and differ only in edge cost:
// UnitCost domains charge 1 per flip; ArbitraryCost domains charge the
// number of positions from the first index the two states differ to the
// end, grounded on original_source/src/search/domains/{unit,arbitrary}_pancake.py.
package pancake
