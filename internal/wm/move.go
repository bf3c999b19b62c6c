package wm

import (
	"github.com/bnema/swellgo/internal/layout"
	"github.com/bnema/swellgo/internal/logging"
	"github.com/bnema/swellgo/internal/tree"
)

// moveNode implements §4.4's move_node(moving, dir): restructure the tree
// so moving ends up adjacent to a node found by, in order: an immediate
// directional sibling under a matching-orientation parent (descended
// toward a leaf or a further matching container); failing that, the
// nearest ancestor whose parent matches dir's orientation; failing that,
// wrapping the whole root in a new container of dir's orientation. Returns
// false only when moving has no parent (it is itself a space's root).
func (m *LayoutManager) moveNode(space SpaceId, moving tree.NodeID, dir Direction) bool {
	parent := m.arena.Parent(moving)
	if !parent.Valid() {
		return false
	}

	wasLocal := m.selection.LocalSelection(parent) == moving

	target, ahead, found := m.resolveImmediateSibling(moving, parent, dir)
	if !found {
		target, found = m.resolveMatchingAncestor(moving, dir)
		ahead = true
	}
	if !found {
		target = m.wrapRootForMove(space, dir)
		ahead = true
	}

	logging.Invariant(target.Valid() && target != moving, "wm: move_node resolved an invalid insertion target")
	_ = ahead // ahead/behind share one insertion rule (§9 decision, see DESIGN.md)

	if dir.Polarity() < 0 {
		m.arena.MoveBefore(moving, target)
	} else {
		m.arena.MoveAfter(moving, target)
	}

	if wasLocal {
		m.propagateLocalSelection(moving, parent)
	}
	return true
}

// resolveImmediateSibling is move_node step 2: an immediate sibling of
// moving in dir under a matching-orientation parent, descended per
// descendForMove.
func (m *LayoutManager) resolveImmediateSibling(moving, parent tree.NodeID, dir Direction) (tree.NodeID, bool, bool) {
	if !m.matchesDirection(parent, dir) {
		return tree.NodeID{}, false, false
	}
	sibling := m.siblingInDirection(moving, dir)
	if !sibling.Valid() {
		return tree.NodeID{}, false, false
	}
	target, ahead := m.descendForMove(sibling, dir)
	return target, ahead, true
}

// descendForMove mirrors traverse's descent rule but stops as soon as it
// reaches either a leaf (the "ahead" case: moving swaps adjacent to it) or
// a container whose orientation matches dir (the "behind" case: moving is
// inserted next to that container's first child, rather than descending
// further into it).
func (m *LayoutManager) descendForMove(start tree.NodeID, dir Direction) (tree.NodeID, bool) {
	cur := start
	for {
		if !m.arena.HasChildren(cur) {
			return cur, true
		}
		if m.matchesDirection(cur, dir) {
			return m.arena.FirstChild(cur), false
		}
		cur = m.selectionLocalOrFirst(cur)
	}
}

// resolveMatchingAncestor is move_node step 3: walk moving's ancestor
// chain (starting at its parent) for the first one whose own parent
// matches dir's orientation; that ancestor becomes the target.
func (m *LayoutManager) resolveMatchingAncestor(moving tree.NodeID, dir Direction) (tree.NodeID, bool) {
	parent := m.arena.Parent(moving)
	for _, anc := range m.arena.Ancestors(parent) {
		ancParent := m.arena.Parent(anc)
		if !ancParent.Valid() {
			continue
		}
		if m.matchesDirection(ancParent, dir) {
			return anc, true
		}
	}
	return tree.NodeID{}, false
}

// wrapRootForMove is move_node step 4: wrap space's root in a new
// container of dir's orientation and return the wrapped old root (now the
// new root's sole child) as moving's insertion target.
func (m *LayoutManager) wrapRootForMove(space SpaceId, dir Direction) tree.NodeID {
	root, ok := m.RootOf(space)
	logging.Invariant(ok, "wm: wrapRootForMove called for an unknown space")
	newRoot := m.nestInContainer(space, root, directionSplitKind(dir))
	return m.arena.FirstChild(newRoot)
}

func directionSplitKind(dir Direction) layout.Kind {
	if dir.Orientation() == layout.OrientationHorizontal {
		return layout.Horizontal
	}
	return layout.Vertical
}

// propagateLocalSelection re-establishes local selection up moving's new
// ancestor chain, stopping once it reaches boundary (moving's old
// parent), so that if the old parent is still an ancestor of moving after
// the move, its local-selection path still resolves down to moving.
func (m *LayoutManager) propagateLocalSelection(moving, boundary tree.NodeID) {
	cur := moving
	for {
		parent := m.arena.Parent(cur)
		if !parent.Valid() {
			return
		}
		m.selection.SelectLocally(cur)
		if parent == boundary {
			return
		}
		cur = parent
	}
}
