package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/hsearch/core"
)

func TestOpenSet_AppendPeekPop(t *testing.T) {
	o := core.NewOpenSet()
	a := core.NewNode(newFakeState(1), 5, 1, core.Forward, nil) // f=6
	b := core.NewNode(newFakeState(2), 1, 1, core.Forward, nil) // f=2
	c := core.NewNode(newFakeState(3), 2, 2, core.Forward, nil) // f=4

	require.NoError(t, o.Append(a))
	require.NoError(t, o.Append(b))
	require.NoError(t, o.Append(c))
	assert.Equal(t, 3, o.Len())

	top, err := o.Peek()
	require.NoError(t, err)
	assert.Same(t, b, top)

	popped, err := o.Pop()
	require.NoError(t, err)
	assert.Same(t, b, popped)
	assert.Equal(t, 2, o.Len())

	popped, err = o.Pop()
	require.NoError(t, err)
	assert.Same(t, c, popped)

	popped, err = o.Pop()
	require.NoError(t, err)
	assert.Same(t, a, popped)

	_, err = o.Pop()
	assert.ErrorIs(t, err, core.ErrEmptyOpen)
}

func TestOpenSet_AppendDuplicateRejected(t *testing.T) {
	o := core.NewOpenSet()
	s := newFakeState(1)
	require.NoError(t, o.Append(core.NewNode(s, 0, 0, core.Forward, nil)))
	err := o.Append(core.NewNode(s, 0, 0, core.Forward, nil))
	assert.ErrorIs(t, err, core.ErrAlreadyOpen)
}

func TestOpenSet_ContainsGetGetG(t *testing.T) {
	o := core.NewOpenSet()
	s := newFakeState(7)
	n := core.NewNode(s, 4, 2, core.Forward, nil)
	require.NoError(t, o.Append(n))

	assert.True(t, o.Contains(s, core.Forward))
	assert.False(t, o.Contains(s, core.Backward))

	got, err := o.Get(s, core.Forward)
	require.NoError(t, err)
	assert.Same(t, n, got)

	assert.Equal(t, 4, o.GetG(s, core.Forward))
	assert.Equal(t, core.MaxCost(), o.GetG(newFakeState(99), core.Forward))
}

func TestOpenSet_Replace(t *testing.T) {
	o := core.NewOpenSet()
	s := newFakeState(1)
	original := core.NewNode(s, 10, 0, core.Forward, nil)
	require.NoError(t, o.Append(original))

	cheaper := core.NewNode(s, 3, 0, core.Forward, nil)
	require.NoError(t, o.Replace(cheaper))

	assert.Equal(t, 1, o.Len())
	assert.Equal(t, 3, o.GetG(s, core.Forward))

	err := o.Replace(core.NewNode(newFakeState(2), 1, 0, core.Forward, nil))
	assert.ErrorIs(t, err, core.ErrNotInOpen)
}

func TestOpenSet_RemoveAndMinG(t *testing.T) {
	o := core.NewOpenSet()
	a := core.NewNode(newFakeState(1), 5, 0, core.Forward, nil)
	b := core.NewNode(newFakeState(2), 1, 0, core.Forward, nil)
	require.NoError(t, o.Append(a))
	require.NoError(t, o.Append(b))

	assert.Equal(t, 1, o.MinG())

	require.NoError(t, o.Remove(b.State, core.Forward))
	assert.Equal(t, 5, o.MinG())
	assert.Equal(t, 1, o.Len())

	err := o.Remove(b.State, core.Forward)
	assert.ErrorIs(t, err, core.ErrNotInOpen)
}

func TestOpenSet_DirectionIsPartOfIdentity(t *testing.T) {
	o := core.NewOpenSet()
	s := newFakeState(1)
	require.NoError(t, o.Append(core.NewNode(s, 0, 0, core.Forward, nil)))
	require.NoError(t, o.Append(core.NewNode(s, 0, 0, core.Backward, nil)))
	assert.Equal(t, 2, o.Len())
}

func TestOpenSet_Each(t *testing.T) {
	o := core.NewOpenSet()
	states := []int{1, 2, 3}
	for _, id := range states {
		require.NoError(t, o.Append(core.NewNode(newFakeState(id), id, 0, core.Forward, nil)))
	}
	seen := map[int]bool{}
	o.Each(func(n *core.Node) { seen[n.G] = true })
	assert.Len(t, seen, 3)
}
