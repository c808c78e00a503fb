// SPDX-License-Identifier: MIT
//
// File: node.go
// Role: Node, the searcher-owned record binding a State to search
//       bookkeeping (g/h/f, direction, parent, expansion cursor).
// Policy:
//   - Every exported method documents complexity.
//   - Nodes are never shared between searcher runs and never mutated by a
//     domain.

package core

// ExpandMode selects how Node.Expand walks a state's successor list.
type ExpandMode int8

const (
	// Eager yields every remaining successor in one call and marks the
	// node fully expanded.
	Eager ExpandMode = iota
	// Deferred yields only the successors whose accumulated child g
	// equals the node's current NextG tier, advancing NextG to the next
	// tier (without yielding) once that tier is exhausted. Used by the
	// bidirectional searcher to respect a per-direction g-limit without
	// generating nodes that would be immediately rejected.
	Deferred
)

// ChildEdge is one successor produced by Node.Expand: the child state and
// the g-value (accumulated path cost) it would carry as a new Node.
type ChildEdge struct {
	State State
	G     int
}

// Node is a search-owned record binding a State to the bookkeeping a
// searcher needs: its cost so far, heuristic estimate, direction, parent
// link and expansion cursor. Nodes are never shared between searcher runs
// and are never mutated by a domain.
type Node struct {
	State     State
	G         int       // cost of the best known path to State.
	H         int       // non-negative heuristic estimate.
	Direction Direction // +1 forward, -1 backward.
	Parent    *Node     // nil for roots.
	Depth     int       // Parent.Depth + 1, else 0.

	NExpanded int  // successors already emitted.
	NextG     int  // next g-value at which further successors would be produced (deferred mode).
	HasNextG  bool // false once the node is fully expanded.

	ExpandedNonce bool // one-shot flag: has this node begun expansion in the current bidirectional layer.

	fIndex int // position in OpenSet's F-ordered heap; maintained by heap.Interface swaps.
	gIndex int // position in OpenSet's G-ordered heap; maintained by heap.Interface swaps.
}

// NewNode constructs a root or generated node. g and h are the node's path
// cost and heuristic estimate; the deferred-expansion cursor NextG starts
// equal to g per the data model.
//
// Complexity: O(1)
func NewNode(state State, g, h int, dir Direction, parent *Node) *Node {
	return &Node{
		State:     state,
		G:         g,
		H:         h,
		Direction: dir,
		Parent:    parent,
		Depth:     depthOf(parent),
		NextG:     g,
		HasNextG:  true,
	}
}

func depthOf(parent *Node) int {
	if parent == nil {
		return 0
	}
	return parent.Depth + 1
}

// F returns g + h, the node's priority in the open set.
//
// Complexity: O(1)
func (n *Node) F() int {
	return n.G + n.H
}

// Key returns the (state, direction) identity used by OpenSet/ClosedSet.
//
// Complexity: O(1), assuming State.Hash() is O(1) or precomputed.
func (n *Node) Key() stateKey {
	return stateKey{hash: n.State.Hash(), dir: n.Direction}
}

// IsFullyExpanded reports whether every successor of State has been
// emitted by Expand, equivalently that the deferred-expansion cursor NextG
// has been retired.
//
// Complexity: O(1), assuming State.NumSuccessors is O(1) or memoized.
func (n *Node) IsFullyExpanded(problem *Problem) bool {
	return !n.HasNextG || n.NExpanded == n.State.NumSuccessors(problem)
}

// Expand advances the node's expansion cursor and returns the successors
// produced by this call under mode. Eager returns every remaining
// successor and retires NextG. Deferred returns only the successors whose
// accumulated g equals the current NextG tier; on reaching the first
// successor beyond that tier it sets NextG to that successor's g without
// yielding it, and once every successor has been emitted it retires NextG.
// A deferred call can therefore return an empty slice while HasNextG is
// still true (it only advanced NextG), so callers in deferred mode must be
// prepared to call Expand again, since reaching a tier boundary does not by
// itself signal exhaustion.
//
// Complexity: O(k) in Eager mode and amortized O(1) per call in Deferred
// mode, where k is State's total successor count (via State.Successors,
// itself memoized after its first call).
func (n *Node) Expand(problem *Problem, mode ExpandMode) []ChildEdge {
	succs := n.State.Successors(problem)

	if mode == Eager {
		out := make([]ChildEdge, 0, len(succs)-n.NExpanded)
		for n.NExpanded < len(succs) {
			s := succs[n.NExpanded]
			n.NExpanded++
			out = append(out, ChildEdge{State: s.State, G: n.G + s.Cost})
		}
		n.HasNextG = false
		return out
	}

	out := make([]ChildEdge, 0, 1)
	for n.NExpanded < len(succs) {
		s := succs[n.NExpanded]
		childG := n.G + s.Cost
		if childG == n.NextG {
			n.NExpanded++
			out = append(out, ChildEdge{State: s.State, G: childG})
			continue
		}
		n.NextG = childG
		return out
	}
	n.HasNextG = false
	return out
}

// Path walks parent pointers back to the root. With reverse=false it
// returns the chain in root-to-node order; with reverse=true it returns
// the raw node-to-root walk unreversed. search/bsharp uses both forms to
// splice a forward chain (root-to-node) and a backward chain (node-to-root,
// i.e. collision-to-goal) at their shared collision state during solution
// reconstruction.
//
// Complexity: O(d), where d is n.Depth.
func (n *Node) Path(reverse bool) []*Node {
	var chain []*Node
	for cur := n; cur != nil; cur = cur.Parent {
		chain = append(chain, cur)
	}
	if reverse {
		return chain
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
