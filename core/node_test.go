package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lvlath-labs/hsearch/core"
)

func TestNode_FAndKey(t *testing.T) {
	s := newFakeState(1)
	n := core.NewNode(s, 3, 4, core.Forward, nil)
	assert.Equal(t, 7, n.F())
	assert.Equal(t, 0, n.Depth)

	child := core.NewNode(newFakeState(2), 5, 1, core.Forward, n)
	assert.Equal(t, 1, child.Depth)
	assert.Same(t, n, child.Parent)
}

func TestNode_ExpandEager(t *testing.T) {
	s := newFakeState(1,
		core.Successor{State: newFakeState(2), Cost: 1},
		core.Successor{State: newFakeState(3), Cost: 2},
	)
	n := core.NewNode(s, 0, 0, core.Forward, nil)

	edges := n.Expand(nil, core.Eager)
	assert.Len(t, edges, 2)
	assert.Equal(t, 1, edges[0].G)
	assert.Equal(t, 2, edges[1].G)
	assert.True(t, n.IsFullyExpanded(nil))

	// A further eager call on an exhausted node yields nothing.
	assert.Empty(t, n.Expand(nil, core.Eager))
}

func TestNode_ExpandDeferred(t *testing.T) {
	s := newFakeState(1,
		core.Successor{State: newFakeState(2), Cost: 1},
		core.Successor{State: newFakeState(3), Cost: 1},
		core.Successor{State: newFakeState(4), Cost: 3},
	)
	n := core.NewNode(s, 0, 0, core.Forward, nil)

	// NextG starts equal to g (0); no successor has g==0, so the first
	// call advances the tier to 1 and yields nothing.
	first := n.Expand(nil, core.Deferred)
	assert.Empty(t, first)
	assert.False(t, n.IsFullyExpanded(nil))

	// Second call drains the g==1 tier (two successors) and, on reaching
	// the g==3 successor, advances NextG to 3 without yielding it.
	second := n.Expand(nil, core.Deferred)
	assert.Len(t, second, 2)
	assert.False(t, n.IsFullyExpanded(nil))

	// Third call drains the final successor and retires NextG.
	third := n.Expand(nil, core.Deferred)
	assert.Len(t, third, 1)
	assert.True(t, n.IsFullyExpanded(nil))

	// A further call on the exhausted node yields nothing.
	fourth := n.Expand(nil, core.Deferred)
	assert.Empty(t, fourth)
}

func TestNode_Path(t *testing.T) {
	root := core.NewNode(newFakeState(1), 0, 0, core.Forward, nil)
	mid := core.NewNode(newFakeState(2), 1, 0, core.Forward, root)
	leaf := core.NewNode(newFakeState(3), 3, 0, core.Forward, mid)

	path := leaf.Path(false)
	assert.Len(t, path, 3)
	assert.Same(t, root, path[0])
	assert.Same(t, mid, path[1])
	assert.Same(t, leaf, path[2])
}
