// Package tsp implements the travelling-salesman domain, satisfying the
// domain.Domain contract (see package domain).
//
// A state is a tour-in-progress: every city is labeled visited (in the
// forward direction), unvisited, or current. A move picks an unvisited
// city and makes it current, marking the previously current city
// visited. The forward search grows a tour from the start city; the
// backward search grows a tour from the end city using the complementary
// visited label, so the two frontiers can meet in the middle, grounded
// on original_source/src/search/domains/tsp.py.
package tsp
