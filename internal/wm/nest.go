package wm

import (
	"github.com/bnema/swellgo/internal/layout"
	"github.com/bnema/swellgo/internal/tree"
)

// nestInContainer implements §4.4's nest_in_container: wrap n in a new
// container of kind kind, preserving siblings' proportions and n's local
// selection identity, and returns the node that now carries kind.
func (m *LayoutManager) nestInContainer(space SpaceId, n tree.NodeID, kind layout.Kind) tree.NodeID {
	parent := m.arena.Parent(n)

	if !parent.Valid() {
		return m.swapRootForNestedContainer(space, n, kind)
	}

	if m.arena.ChildCount(parent) == 1 {
		m.layout.SetKind(parent, kind)
		return parent
	}

	wasLocal := m.selection.LocalSelection(parent) == n

	newNode := m.arena.InsertBefore(n)
	m.layout.AssumeSizeOf(newNode, n)
	m.arena.MoveToLast(n, newNode)

	if wasLocal {
		m.selection.SelectLocally(newNode)
	}
	m.layout.SetKind(newNode, kind)
	return newNode
}

// swapRootForNestedContainer handles nest_in_container when n is itself a
// space's root: a new root node is allocated, the old root becomes its
// sole child, and the space's owned-root handle is rebound onto the new
// id — updating the space->root index atomically with the swap, as §4.4
// requires.
func (m *LayoutManager) swapRootForNestedContainer(space SpaceId, oldRoot tree.NodeID, kind layout.Kind) tree.NodeID {
	newRootID := m.arena.NewRootNode()
	m.arena.AdoptRootAsChild(newRootID, oldRoot)
	m.layout.SetKind(newRootID, kind)

	owned := m.roots[space]
	m.roots[space] = owned.Rebind(newRootID)
	return newRootID
}
