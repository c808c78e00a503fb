package pancake

import (
	"encoding/binary"
	"hash/fnv"
	"sort"
	"strconv"
	"strings"

	"github.com/lvlath-labs/hsearch/core"
)

// costKind selects which edge-cost rule a State's Successors computes.
type costKind uint8

const (
	unitCost costKind = iota
	arbitraryCost
)

// State is a pancake stack: stack[0] is the fixed base, stack[1:] is the
// pancake order from bottom to top. Successors are memoized on first call,
// per the domain contract's "lazy per state" requirement.
type State struct {
	stack []int
	kind  costKind

	hash     uint64
	succ     []core.Successor
	memoized bool
}

func newState(stack []int, kind costKind) *State {
	return &State{stack: stack, kind: kind, hash: hashInts(stack)}
}

// hashInts is an FNV-1a hash over a slice of ints, used so two stacks with
// the same contents always hash identically regardless of which State
// instance produced them.
func hashInts(xs []int) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, x := range xs {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(x)))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// Equal reports whether other is a pancake State with the same stack
// contents. The cost variant is not part of identity: a problem only ever
// compares states drawn from the same domain instance.
func (s *State) Equal(other core.State) bool {
	o, ok := other.(*State)
	if !ok || len(o.stack) != len(s.stack) {
		return false
	}
	for i, v := range s.stack {
		if o.stack[i] != v {
			return false
		}
	}
	return true
}

func (s *State) Hash() uint64 { return s.hash }

// NumSuccessors reports the total outgoing edges: every split point in
// [1, len-2], or 0 if the stack is too short to flip.
func (s *State) NumSuccessors(_ *core.Problem) int {
	n := len(s.stack) - 2
	if n < 0 {
		return 0
	}
	return n
}

// Successors enumerates every split-point flip, sorted by ascending cost
// with ties broken by split-point order (stable sort preserves the order
// the flips were generated in, i.e. first-generated order per the domain
// contract).
func (s *State) Successors(problem *core.Problem) []core.Successor {
	if s.memoized {
		return s.succ
	}

	n := len(s.stack)
	out := make([]core.Successor, 0, s.NumSuccessors(problem))
	for i := 1; i <= n-2; i++ {
		child := make([]int, n)
		copy(child[:i], s.stack[:i])
		for j := i; j < n; j++ {
			child[j] = s.stack[n-1-(j-i)]
		}
		cs := newState(child, s.kind)
		out = append(out, core.Successor{State: cs, Cost: s.costTo(cs)})
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Cost < out[b].Cost })

	s.succ = out
	s.memoized = true
	return out
}

// costTo returns the edge cost of the transition from s to other. Unit
// domains always charge 1; arbitrary domains charge the number of
// positions from the first differing index to the end of the stack,
// following original_source's arbitrary_pancake.cost exactly.
func (s *State) costTo(other *State) int {
	if s.kind == unitCost {
		return 1
	}
	i := 0
	for i < len(s.stack) && s.stack[i] == other.stack[i] {
		i++
	}
	return len(s.stack) - i
}

func (s *State) String() string {
	parts := make([]string, len(s.stack))
	for i, v := range s.stack {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
