package wm

import "github.com/bnema/swellgo/internal/tree"

// traverse implements §4.4's traversal algorithm: walk ancestors of from
// (self first) for the first one with a sibling in dir under a split
// parent whose orientation matches dir, then descend from that sibling
// toward a leaf. Group (Tabbed/Stacked) parents never match, since their
// children all occupy the same rectangle and have no spatial direction
// between them.
func (m *LayoutManager) traverse(from tree.NodeID, dir Direction) (tree.NodeID, bool) {
	for _, anc := range m.arena.Ancestors(from) {
		parent := m.arena.Parent(anc)
		if !parent.Valid() {
			continue
		}
		if !m.matchesDirection(parent, dir) {
			continue
		}

		sibling := m.siblingInDirection(anc, dir)
		if sibling.Valid() {
			return m.descendFrom(sibling, dir), true
		}
	}
	return tree.NodeID{}, false
}

// matchesDirection reports whether parent is a split container whose
// orientation matches dir.
func (m *LayoutManager) matchesDirection(parent tree.NodeID, dir Direction) bool {
	k := m.layout.Kind(parent)
	return !k.IsGroup() && k.Orientation() == dir.Orientation()
}

func (m *LayoutManager) siblingInDirection(n tree.NodeID, dir Direction) tree.NodeID {
	if dir.Polarity() < 0 {
		return m.arena.PrevSibling(n)
	}
	return m.arena.NextSibling(n)
}

// descendFrom walks from entry toward a leaf: at each split container
// whose orientation matches dir, step to the last child (Left/Up) or
// first child (Right/Down); at any other container, step to its local
// selection if one is recorded, else its first child.
func (m *LayoutManager) descendFrom(entry tree.NodeID, dir Direction) tree.NodeID {
	cur := entry
	for m.arena.HasChildren(cur) {
		if m.matchesDirection(cur, dir) {
			if dir.Polarity() < 0 {
				cur = m.arena.LastChild(cur)
			} else {
				cur = m.arena.FirstChild(cur)
			}
			continue
		}
		if local := m.selectionLocalOrFirst(cur); local.Valid() {
			cur = local
			continue
		}
		return cur
	}
	return cur
}

func (m *LayoutManager) selectionLocalOrFirst(container tree.NodeID) tree.NodeID {
	if ls := m.selection.LocalSelection(container); ls.Valid() {
		return ls
	}
	return m.arena.FirstChild(container)
}
