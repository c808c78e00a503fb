// SPDX-License-Identifier: MIT
//
// File: openset.go
// Role: OpenSet, the searcher's frontier — an indexed priority queue keyed
//       on (state, direction).
// Policy:
//   - Every exported method documents complexity.
//   - At most one entry may exist per (state, direction) key.

package core

import "container/heap"

// OpenSet is the searcher's frontier: an indexed priority queue keyed on
// (state, direction), ordered by Node.F, with O(log n) Contains, Get,
// GetG, Replace and Remove. A second min-heap on Node.G is kept in lockstep
// so MinG never needs a linear scan, matching the "heap + state→index hash
// map, min_g tracked by a second scalar min-heap" design.
//
// At most one entry may exist per (state, direction) key.
type OpenSet struct {
	byKey map[stateKey][]*Node // hash-bucketed; resolved by State.Equal on lookup

	fHeap fMinHeap
	gHeap gMinHeap
}

// NewOpenSet returns an empty OpenSet.
//
// Complexity: O(1)
func NewOpenSet() *OpenSet {
	return &OpenSet{byKey: make(map[stateKey][]*Node)}
}

// Len returns the number of nodes currently in the set.
//
// Complexity: O(1)
func (o *OpenSet) Len() int { return len(o.fHeap) }

func (o *OpenSet) bucket(k stateKey) []*Node { return o.byKey[k] }

// find is O(1) expected: one hash-map lookup plus a scan of the (normally
// single-element) bucket for (state.Hash(), dir).
func (o *OpenSet) find(state State, dir Direction) *Node {
	k := stateKey{hash: state.Hash(), dir: dir}
	for _, n := range o.byKey[k] {
		if n.State.Equal(state) {
			return n
		}
	}
	return nil
}

// Contains reports whether a node for (state, dir) is present.
//
// Complexity: O(1) expected
func (o *OpenSet) Contains(state State, dir Direction) bool {
	return o.find(state, dir) != nil
}

// Get returns the node stored for (state, dir), or ErrNotInOpen if absent.
//
// Complexity: O(1) expected
func (o *OpenSet) Get(state State, dir Direction) (*Node, error) {
	if n := o.find(state, dir); n != nil {
		return n, nil
	}
	return nil, ErrNotInOpen
}

// GetG returns the g-value of the node stored for (state, dir). Per the
// contract it reports +infinity (math.MaxInt) rather than an error when
// absent, since callers use it in cost comparisons.
//
// Complexity: O(1) expected
func (o *OpenSet) GetG(state State, dir Direction) int {
	if n := o.find(state, dir); n != nil {
		return n.G
	}
	return maxCost
}

// maxCost stands in for +infinity in g-value comparisons.
const maxCost = int(^uint(0) >> 1)

// MaxCost returns the sentinel value GetG and MinG report in place of
// +infinity for an absent or empty set.
//
// Complexity: O(1)
func MaxCost() int { return maxCost }

// Append inserts node. It returns ErrAlreadyOpen if a node already exists
// for node's (state, direction) key, and ErrNilNode for a nil node.
//
// Complexity: O(log n), dominated by the two heap.Push calls.
func (o *OpenSet) Append(node *Node) error {
	if node == nil {
		return ErrNilNode
	}
	if o.Contains(node.State, node.Direction) {
		return ErrAlreadyOpen
	}
	k := node.Key()
	o.byKey[k] = append(o.byKey[k], node)
	heap.Push(&o.fHeap, node)
	heap.Push(&o.gHeap, node)
	return nil
}

// Peek returns the minimum-F node without removing it, or ErrEmptyOpen.
//
// Complexity: O(1)
func (o *OpenSet) Peek() (*Node, error) {
	if len(o.fHeap) == 0 {
		return nil, ErrEmptyOpen
	}
	return o.fHeap[0], nil
}

// Pop removes and returns the minimum-F node, or ErrEmptyOpen.
//
// Complexity: O(log n), dominated by removeNode's two heap.Remove calls.
func (o *OpenSet) Pop() (*Node, error) {
	if len(o.fHeap) == 0 {
		return nil, ErrEmptyOpen
	}
	n := o.fHeap[0]
	o.removeNode(n)
	return n, nil
}

// Remove deletes the entry for (state, dir), returning ErrNotInOpen if
// absent.
//
// Complexity: O(log n), dominated by removeNode's two heap.Remove calls.
func (o *OpenSet) Remove(state State, dir Direction) error {
	n := o.find(state, dir)
	if n == nil {
		return ErrNotInOpen
	}
	o.removeNode(n)
	return nil
}

// Replace atomically removes the entry for newNode's (state, direction)
// key and inserts newNode in its place. Returns ErrNotInOpen if no entry
// existed to replace.
//
// Complexity: O(log n), dominated by one removeNode and two heap.Push calls.
func (o *OpenSet) Replace(newNode *Node) error {
	if newNode == nil {
		return ErrNilNode
	}
	old := o.find(newNode.State, newNode.Direction)
	if old == nil {
		return ErrNotInOpen
	}
	o.removeNode(old)
	k := newNode.Key()
	o.byKey[k] = append(o.byKey[k], newNode)
	heap.Push(&o.fHeap, newNode)
	heap.Push(&o.gHeap, newNode)
	return nil
}

// MinG returns the minimum g-value across all entries, or maxCost if empty.
//
// Complexity: O(1)
func (o *OpenSet) MinG() int {
	if len(o.gHeap) == 0 {
		return maxCost
	}
	return o.gHeap[0].G
}

// Each calls fn for every node currently in the set, in arbitrary order.
// fn must not mutate the set.
//
// Complexity: O(n)
func (o *OpenSet) Each(fn func(*Node)) {
	for _, n := range o.fHeap {
		fn(n)
	}
}

// removeNode is O(log n): bucket removal is O(1) amortized (swap-with-last),
// the two heap.Remove calls are O(log n) each.
func (o *OpenSet) removeNode(n *Node) {
	k := n.Key()
	bucket := o.byKey[k]
	for i, cand := range bucket {
		if cand == n {
			bucket[i] = bucket[len(bucket)-1]
			bucket = bucket[:len(bucket)-1]
			break
		}
	}
	if len(bucket) == 0 {
		delete(o.byKey, k)
	} else {
		o.byKey[k] = bucket
	}
	heap.Remove(&o.fHeap, n.fIndex)
	heap.Remove(&o.gHeap, n.gIndex)
}
