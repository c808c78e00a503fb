// SPDX-License-Identifier: MIT
//
// File: closedset.go
// Role: ClosedSet, the searcher's expanded-node record, with Remove support
//       for bidirectional search's reopen case.
// Policy:
//   - Every exported method documents complexity.

package core

// ClosedSet is a state-keyed set of (state, direction) identities that have
// already been expanded. Unlike a typical "visited" set it supports Remove,
// because the bidirectional searcher reopens a closed node when a cheaper
// path to its state is found mid-search.
type ClosedSet struct {
	byKey map[stateKey][]*Node
	n     int
}

// NewClosedSet returns an empty ClosedSet.
//
// Complexity: O(1)
func NewClosedSet() *ClosedSet {
	return &ClosedSet{byKey: make(map[stateKey][]*Node)}
}

// Len returns the number of nodes in the set.
//
// Complexity: O(1)
func (c *ClosedSet) Len() int { return c.n }

// Add inserts node, keyed by its (state, direction).
//
// Complexity: O(1) amortized
func (c *ClosedSet) Add(node *Node) {
	k := node.Key()
	c.byKey[k] = append(c.byKey[k], node)
	c.n++
}

// Contains reports whether (state, dir) has been added and not since
// removed.
//
// Complexity: O(1) expected
func (c *ClosedSet) Contains(state State, dir Direction) bool {
	return c.find(state, dir) != nil
}

// Get returns the closed node for (state, dir), or ErrNotInOpen (reused as
// the generic "absent" sentinel) if none is present.
//
// Complexity: O(1) expected
func (c *ClosedSet) Get(state State, dir Direction) (*Node, error) {
	if n := c.find(state, dir); n != nil {
		return n, nil
	}
	return nil, ErrNotInOpen
}

// Remove deletes the entry for (state, dir); it is a no-op if absent.
//
// Complexity: O(1) expected, dominated by the swap-with-last bucket removal.
func (c *ClosedSet) Remove(state State, dir Direction) {
	k := stateKey{hash: state.Hash(), dir: dir}
	bucket := c.byKey[k]
	for i, cand := range bucket {
		if cand.State.Equal(state) {
			bucket[i] = bucket[len(bucket)-1]
			bucket = bucket[:len(bucket)-1]
			c.n--
			break
		}
	}
	if len(bucket) == 0 {
		delete(c.byKey, k)
	} else {
		c.byKey[k] = bucket
	}
}

// Each calls fn for every node currently closed, in arbitrary order.
//
// Complexity: O(n)
func (c *ClosedSet) Each(fn func(*Node)) {
	for _, bucket := range c.byKey {
		for _, n := range bucket {
			fn(n)
		}
	}
}

// find is O(1) expected: one hash-map lookup plus a scan of the (normally
// single-element) bucket for (state.Hash(), dir).
func (c *ClosedSet) find(state State, dir Direction) *Node {
	k := stateKey{hash: state.Hash(), dir: dir}
	for _, n := range c.byKey[k] {
		if n.State.Equal(state) {
			return n
		}
	}
	return nil
}
