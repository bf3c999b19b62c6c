package wm

import (
	"github.com/bnema/swellgo/internal/layout"
	"github.com/bnema/swellgo/internal/logging"
	"github.com/bnema/swellgo/internal/selection"
	"github.com/bnema/swellgo/internal/tree"
)

// LayoutManager is the façade every reactor turn drives: it owns the
// arena, the layout and selection observers over it, one root per space,
// and the WindowId<->NodeID index that lets the reactor talk in window
// identities while the tree talks in node handles.
type LayoutManager struct {
	arena     *tree.Arena
	layout    *layout.Layout
	selection *selection.Selection

	roots map[SpaceId]tree.OwnedRoot

	windowToNode map[WindowId]tree.NodeID
	nodeToWindow map[tree.NodeID]WindowId
}

// New creates an empty LayoutManager with its own arena.
func New() *LayoutManager {
	arena := tree.NewArena()
	return &LayoutManager{
		arena:        arena,
		layout:       layout.New(arena),
		selection:    selection.New(arena),
		roots:        make(map[SpaceId]tree.OwnedRoot),
		windowToNode: make(map[WindowId]tree.NodeID),
		nodeToWindow: make(map[tree.NodeID]WindowId),
	}
}

// Arena exposes the underlying arena for components (e.g. a devtool tree
// dump) that need raw structural access beyond the façade's API.
func (m *LayoutManager) Arena() *tree.Arena { return m.arena }

// Layout exposes the layout observer, e.g. for GetSizes calls driven by the
// reactor's per-turn re-layout pass.
func (m *LayoutManager) Layout() *layout.Layout { return m.layout }

// EnsureSpace returns the root node for space, creating an empty
// Horizontal root if this is the first window ever placed on it.
func (m *LayoutManager) EnsureSpace(space SpaceId) tree.NodeID {
	if root, ok := m.roots[space]; ok {
		return root.ID()
	}
	root := m.arena.NewRoot()
	m.roots[space] = root
	return root.ID()
}

// RootOf returns the root node for an already-created space and whether it
// exists.
func (m *LayoutManager) RootOf(space SpaceId) (tree.NodeID, bool) {
	root, ok := m.roots[space]
	if !ok {
		return tree.NodeID{}, false
	}
	return root.ID(), true
}

// ReleaseSpace releases a space's owned root and all its descendants. Used
// when a screen/space configuration disappears entirely; ordinary window
// removal uses RemoveWindow instead.
func (m *LayoutManager) ReleaseSpace(space SpaceId) {
	root, ok := m.roots[space]
	if !ok {
		return
	}
	for n, w := range m.nodeToWindow {
		if _, alive := m.windowToNode[w]; alive && isDescendantOrSelf(m.arena, n, root.ID()) {
			delete(m.windowToNode, w)
			delete(m.nodeToWindow, n)
		}
	}
	root.Release()
	delete(m.roots, space)
}

func isDescendantOrSelf(a *tree.Arena, n, root tree.NodeID) bool {
	for cur := n; ; {
		if cur == root {
			return true
		}
		parent := a.Parent(cur)
		if !parent.Valid() {
			return false
		}
		cur = parent
	}
}

// AddWindow inserts a new leaf for wid as the last child of space's root
// (or of the current selection's container, were that the desired default;
// per §4.6 new windows join the current space's layout at the root level
// and are positioned properly by the next traversal/move).
func (m *LayoutManager) AddWindow(space SpaceId, wid WindowId) tree.NodeID {
	logging.Invariant(!m.hasWindow(wid), "wm: AddWindow called for an already-tracked window %s", wid)
	root := m.EnsureSpace(space)
	node := m.arena.PushBack(root)
	m.windowToNode[wid] = node
	m.nodeToWindow[node] = wid
	return node
}

// RemoveWindow removes wid's leaf from the tree, culling any ancestor
// container left empty and non-root as a result, per §4.4's culling rule.
func (m *LayoutManager) RemoveWindow(wid WindowId) {
	node, ok := m.windowToNode[wid]
	if !ok {
		return
	}
	parent := m.arena.Parent(node)
	m.arena.Remove(node)
	delete(m.windowToNode, wid)
	delete(m.nodeToWindow, node)
	m.cullEmptyAncestors(parent)
}

// cullEmptyAncestors removes n and walks upward removing any ancestor left
// with no children, stopping at the first non-empty container or at a
// root (roots are never culled, even when empty).
func (m *LayoutManager) cullEmptyAncestors(n tree.NodeID) {
	for n.Valid() && !m.arena.IsRoot(n) && !m.arena.HasChildren(n) {
		parent := m.arena.Parent(n)
		m.arena.Remove(n)
		n = parent
	}
}

// Spaces lists every space with a root, in no particular order.
func (m *LayoutManager) Spaces() []SpaceId {
	spaces := make([]SpaceId, 0, len(m.roots))
	for s := range m.roots {
		spaces = append(spaces, s)
	}
	return spaces
}

// SpaceOf walks n up to its owning root and reports which space that root
// belongs to. Used by the reactor to map a tracked node back to the screen
// currently showing its space.
func (m *LayoutManager) SpaceOf(n tree.NodeID) (SpaceId, bool) {
	cur := n
	for {
		parent := m.arena.Parent(cur)
		if !parent.Valid() {
			break
		}
		cur = parent
	}
	for space, root := range m.roots {
		if root.ID() == cur {
			return space, true
		}
	}
	return "", false
}

// NodeOf returns the node currently holding wid, if tracked.
func (m *LayoutManager) NodeOf(wid WindowId) (tree.NodeID, bool) {
	n, ok := m.windowToNode[wid]
	return n, ok
}

// WindowOf returns the window held by leaf n, if n is a tracked leaf.
func (m *LayoutManager) WindowOf(n tree.NodeID) (WindowId, bool) {
	w, ok := m.nodeToWindow[n]
	return w, ok
}

func (m *LayoutManager) hasWindow(wid WindowId) bool {
	_, ok := m.windowToNode[wid]
	return ok
}

// Select sets n (a tracked leaf or any container) as the current
// selection, per internal/selection.Select.
func (m *LayoutManager) Select(n tree.NodeID) {
	m.selection.Select(n)
}

// CurrentSelection returns the currently selected node under space's root.
func (m *LayoutManager) CurrentSelection(space SpaceId) (tree.NodeID, bool) {
	root, ok := m.RootOf(space)
	if !ok {
		return tree.NodeID{}, false
	}
	return m.selection.CurrentSelection(root), true
}
