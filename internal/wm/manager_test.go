package wm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/swellgo/internal/layout"
	"github.com/bnema/swellgo/internal/tree"
	"github.com/bnema/swellgo/internal/wm"
)

func TestAddWindowTracksIdentityAndAppearsInSpace(t *testing.T) {
	m := wm.New()
	space := wm.SpaceId("space-1")
	wid := wm.WindowId{Pid: 100, Index: 1}

	node := m.AddWindow(space, wid)

	got, ok := m.NodeOf(wid)
	require.True(t, ok)
	assert.Equal(t, node, got)

	gotWid, ok := m.WindowOf(node)
	require.True(t, ok)
	assert.Equal(t, wid, gotWid)
}

func TestRemoveWindowCullsEmptyAncestor(t *testing.T) {
	m := wm.New()
	space := wm.SpaceId("space-1")
	a := wm.WindowId{Pid: 1, Index: 1}
	b := wm.WindowId{Pid: 1, Index: 2}
	c := wm.WindowId{Pid: 1, Index: 3}

	m.AddWindow(space, a)
	m.AddWindow(space, b)
	m.Select(mustNode(t, m, a))
	m.Split(space, layout.Vertical) // nests a alone under a new container, since root has 2 children

	nestedParent := m.Arena().Parent(mustNode(t, m, a))
	require.True(t, nestedParent.Valid())

	m.AddWindow(space, c)

	m.RemoveWindow(a)

	_, ok := m.NodeOf(a)
	assert.False(t, ok)
	assert.False(t, m.Arena().Alive(nestedParent), "emptied container should be culled")

	root, ok := m.RootOf(space)
	require.True(t, ok)
	assert.True(t, m.Arena().HasChildren(root))
}

func TestSpacesAndSpaceOf(t *testing.T) {
	m := wm.New()
	s1 := wm.SpaceId("s1")
	s2 := wm.SpaceId("s2")
	w1 := wm.WindowId{Pid: 1, Index: 1}
	w2 := wm.WindowId{Pid: 2, Index: 1}

	m.AddWindow(s1, w1)
	m.AddWindow(s2, w2)

	spaces := m.Spaces()
	assert.ElementsMatch(t, []wm.SpaceId{s1, s2}, spaces)

	n1 := mustNode(t, m, w1)
	got, ok := m.SpaceOf(n1)
	require.True(t, ok)
	assert.Equal(t, s1, got)

	n2 := mustNode(t, m, w2)
	got, ok = m.SpaceOf(n2)
	require.True(t, ok)
	assert.Equal(t, s2, got)
}

func TestMoveFocusReturnsRaiseRequestOnLeaf(t *testing.T) {
	m := wm.New()
	space := wm.SpaceId("s1")
	a := wm.WindowId{Pid: 1, Index: 1}
	b := wm.WindowId{Pid: 1, Index: 2}

	m.AddWindow(space, a)
	m.AddWindow(space, b)
	m.Select(mustNode(t, m, a))

	raise, ok := m.MoveFocus(space, wm.Right)
	require.True(t, ok)
	assert.Equal(t, b, raise.Window)
	assert.Equal(t, space, raise.Space)

	sel, ok := m.CurrentSelection(space)
	require.True(t, ok)
	assert.Equal(t, mustNode(t, m, b), sel)
}

func TestGroupAndUngroupRoundTrip(t *testing.T) {
	m := wm.New()
	space := wm.SpaceId("s1")
	a := wm.WindowId{Pid: 1, Index: 1}
	b := wm.WindowId{Pid: 1, Index: 2}

	m.AddWindow(space, a)
	m.AddWindow(space, b)
	m.Select(mustNode(t, m, a))

	root, _ := m.RootOf(space)
	assert.Equal(t, layout.Horizontal, m.Layout().Kind(root))

	m.Group(space, layout.Vertical)
	assert.Equal(t, layout.Stacked, m.Layout().Kind(root))

	m.Ungroup(space)
	assert.Equal(t, layout.Horizontal, m.Layout().Kind(root))
}

func TestDumpReportsUnknownSpace(t *testing.T) {
	m := wm.New()
	_, ok := m.Dump(wm.SpaceId("nonexistent"))
	assert.False(t, ok)
}

func TestDumpRendersTree(t *testing.T) {
	m := wm.New()
	space := wm.SpaceId("s1")
	wid := wm.WindowId{Pid: 7, Index: 3}
	m.AddWindow(space, wid)

	dump, ok := m.Dump(space)
	require.True(t, ok)
	assert.Contains(t, dump, "7.3")
}

func mustNode(t *testing.T, m *wm.LayoutManager, wid wm.WindowId) tree.NodeID {
	t.Helper()
	n, ok := m.NodeOf(wid)
	require.True(t, ok)
	return n
}
