package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/swellgo/internal/tree"
)

type recordingObserver struct {
	events []string
}

func (r *recordingObserver) AddedToForest(n tree.NodeID)     { r.events = append(r.events, "added_forest") }
func (r *recordingObserver) AddedToParent(n tree.NodeID)     { r.events = append(r.events, "added_parent") }
func (r *recordingObserver) RemovingFromParent(n tree.NodeID) {
	r.events = append(r.events, "removing_parent")
}
func (r *recordingObserver) RemovedFromForest(n tree.NodeID) {
	r.events = append(r.events, "removed_forest")
}

func TestPushBackFiresAddedToForestThenAddedToParent(t *testing.T) {
	a := tree.NewArena()
	obs := &recordingObserver{}
	a.Subscribe(obs)

	root := a.NewRoot()
	child := a.PushBack(root.ID())

	require.True(t, a.Alive(child))
	assert.Equal(t, []string{"added_forest", "added_forest", "added_parent"}, obs.events)
}

func TestChildOrderingForwardAndReverse(t *testing.T) {
	a := tree.NewArena()
	root := a.NewRoot()

	c1 := a.PushBack(root.ID())
	c2 := a.PushBack(root.ID())
	c3 := a.PushBack(root.ID())

	assert.Equal(t, []tree.NodeID{c1, c2, c3}, a.Children(root.ID()))
	assert.Equal(t, []tree.NodeID{c3, c2, c1}, a.ChildrenReverse(root.ID()))
}

func TestInsertBeforeAndAfter(t *testing.T) {
	a := tree.NewArena()
	root := a.NewRoot()
	mid := a.PushBack(root.ID())

	before := a.InsertBefore(mid)
	after := a.InsertAfter(mid)

	assert.Equal(t, []tree.NodeID{before, mid, after}, a.Children(root.ID()))
}

func TestRemoveFiresRemovingThenRemovedAndDetaches(t *testing.T) {
	a := tree.NewArena()
	obs := &recordingObserver{}
	root := a.NewRoot()
	child := a.PushBack(root.ID())
	a.Subscribe(obs)

	a.Remove(child)

	assert.False(t, a.Alive(child))
	assert.Empty(t, a.Children(root.ID()))
	assert.Equal(t, []string{"removing_parent", "removed_forest"}, obs.events)
}

func TestRemoveIsRecursive(t *testing.T) {
	a := tree.NewArena()
	root := a.NewRoot()
	container := a.PushBack(root.ID())
	leaf1 := a.PushBack(container)
	leaf2 := a.PushBack(container)

	a.Remove(container)

	assert.False(t, a.Alive(container))
	assert.False(t, a.Alive(leaf1))
	assert.False(t, a.Alive(leaf2))
}

func TestReleaseRootRemovesEntireSubtree(t *testing.T) {
	a := tree.NewArena()
	root := a.NewRoot()
	child := a.PushBack(root.ID())

	root.Release()

	assert.False(t, a.Alive(root.ID()))
	assert.False(t, a.Alive(child))
}

func TestDoubleReleasePanics(t *testing.T) {
	a := tree.NewArena()
	root := a.NewRoot()
	root.Release()

	assert.Panics(t, func() { root.Release() })
}

func TestUseAfterRemovePanics(t *testing.T) {
	a := tree.NewArena()
	root := a.NewRoot()
	child := a.PushBack(root.ID())
	a.Remove(child)

	assert.Panics(t, func() { a.Parent(child) })
}

func TestInsertBeforeOnRootlessNodePanics(t *testing.T) {
	a := tree.NewArena()
	root := a.NewRoot()

	assert.Panics(t, func() { a.InsertBefore(root.ID()) })
}

func TestMoveToLastReparentsAndFiresEvents(t *testing.T) {
	a := tree.NewArena()
	root := a.NewRoot()
	containerA := a.PushBack(root.ID())
	containerB := a.PushBack(root.ID())
	leaf := a.PushBack(containerA)

	obs := &recordingObserver{}
	a.Subscribe(obs)
	a.MoveToLast(leaf, containerB)

	assert.Equal(t, []string{"removing_parent", "added_parent"}, obs.events)
	assert.Equal(t, containerB, a.Parent(leaf))
	assert.Empty(t, a.Children(containerA))
	assert.Equal(t, []tree.NodeID{leaf}, a.Children(containerB))
}

func TestAncestorsSelfFirst(t *testing.T) {
	a := tree.NewArena()
	root := a.NewRoot()
	mid := a.PushBack(root.ID())
	leaf := a.PushBack(mid)

	assert.Equal(t, []tree.NodeID{leaf, mid, root.ID()}, a.Ancestors(leaf))
}
