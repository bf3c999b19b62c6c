package wm

import (
	"strings"

	"github.com/bnema/swellgo/internal/layout"
	"github.com/bnema/swellgo/internal/logging"
	"github.com/bnema/swellgo/internal/tree"
)

// RaiseRequest is returned by a command that changed the current selection
// to a leaf: the reactor turns this into a worker Raise request guarded by
// the raise token (§4.7). MoveFocus is the only command that returns one,
// with ok=false when it selects nothing or lands on a node with no window;
// Ascend and Descend change the selection without returning a RaiseRequest.
type RaiseRequest struct {
	Space  SpaceId
	Window WindowId
}

// MoveFocus implements §4.4's MoveFocus(dir): traverse from the space's
// current selection in dir and, if that reaches a leaf, select it and
// return a raise request for its window.
func (m *LayoutManager) MoveFocus(space SpaceId, dir Direction) (RaiseRequest, bool) {
	cur, ok := m.CurrentSelection(space)
	if !ok {
		return RaiseRequest{}, false
	}
	target, found := m.traverse(cur, dir)
	if !found {
		return RaiseRequest{}, false
	}
	m.selection.Select(target)

	wid, ok := m.WindowOf(target)
	if !ok {
		return RaiseRequest{}, false
	}
	return RaiseRequest{Space: space, Window: wid}, true
}

// MoveNode implements §4.4's MoveNode(dir): restructure the tree so the
// space's current selection moves in dir, preserving selection identity.
// Returns false when space has no root, or when the current selection has
// no parent (it is itself the space's root).
func (m *LayoutManager) MoveNode(space SpaceId, dir Direction) bool {
	cur, ok := m.CurrentSelection(space)
	if !ok {
		return false
	}
	return m.moveNode(space, cur, dir)
}

// Split implements §4.4's Split(orientation): nest the current selection
// in a new container of the given split kind. No-op if space has no root
// yet; with nothing selected, the current selection is the root itself.
func (m *LayoutManager) Split(space SpaceId, orientation layout.Kind) {
	logging.Invariant(!orientation.IsGroup(), "wm: Split requires a split kind, got %s", orientation)
	cur, ok := m.CurrentSelection(space)
	if !ok {
		return
	}
	m.nestInContainer(space, cur, orientation)
}

// Group implements §4.4's Group(orientation): change the current
// selection's parent's kind to the group kind matching orientation
// (Tabbed for horizontal, Stacked for vertical). No-op at a space's root,
// which has no parent to regroup.
func (m *LayoutManager) Group(space SpaceId, orientation layout.Kind) {
	logging.Invariant(!orientation.IsGroup(), "wm: Group takes a split orientation, not a group kind")
	cur, ok := m.CurrentSelection(space)
	if !ok {
		return
	}
	parent := m.arena.Parent(cur)
	if !parent.Valid() {
		return
	}
	groupKind := layout.Tabbed
	if orientation.Orientation() == layout.OrientationVertical {
		groupKind = layout.Stacked
	}
	m.layout.SetKind(parent, groupKind)
}

// Ungroup implements §4.4's Ungroup: restore the current selection's
// parent's last-ungrouped kind if it is currently a group. No-op
// otherwise.
func (m *LayoutManager) Ungroup(space SpaceId) {
	cur, ok := m.CurrentSelection(space)
	if !ok {
		return
	}
	parent := m.arena.Parent(cur)
	if !parent.Valid() || !m.layout.Kind(parent).IsGroup() {
		return
	}
	m.layout.SetKind(parent, m.layout.LastUngroupedKind(parent))
}

// Ascend implements §4.4's Ascend: move selection up to the current
// selection's parent, stopping there explicitly (an interior container
// can now be the selection, rather than whatever leaf its local-selection
// chain would otherwise resolve to). No-op at a space's root.
func (m *LayoutManager) Ascend(space SpaceId) {
	cur, ok := m.CurrentSelection(space)
	if !ok {
		return
	}
	parent := m.arena.Parent(cur)
	if !parent.Valid() {
		return
	}
	m.selection.Select(parent)
}

// Descend implements §4.4's Descend: move selection down to the current
// selection's most recent local selection, if it has one recorded. No-op
// (and returns false) if the current selection is already a leaf or has
// no recorded local selection.
func (m *LayoutManager) Descend(space SpaceId) bool {
	cur, ok := m.CurrentSelection(space)
	if !ok {
		return false
	}
	return m.selection.Descend(cur)
}

// Shuffle is the illustrative optional command named in §6: it rotates the
// current selection to the end of its parent's child order, giving users a
// quick way to cycle which window occupies a given screen position without
// a directional move. Supplemented from original_source/ (tmandry/x3's
// `Shuffle` layout command); a no-op at a space's root or when the
// selection is its parent's only child.
func (m *LayoutManager) Shuffle(space SpaceId) {
	cur, ok := m.CurrentSelection(space)
	if !ok {
		return
	}
	parent := m.arena.Parent(cur)
	if !parent.Valid() || m.arena.ChildCount(parent) < 2 {
		return
	}
	last := m.arena.LastChild(parent)
	if last == cur {
		return
	}
	m.arena.MoveAfter(cur, last)
}

// Debug implements §9's Debug layout command: log a one-line-per-node
// indented dump of space's current tree to the process-wide logger.
func (m *LayoutManager) Debug(space SpaceId) {
	dump, ok := m.Dump(space)
	if !ok {
		logging.Get().Info().Str("space", string(space)).Msg("wm: debug dump requested for unknown space")
		return
	}
	logging.Get().Info().Str("space", string(space)).Msg("wm: tree dump\n" + dump)
}

// Dump renders space's tree the same way Debug logs it, but returns the
// text instead — used by the debug socket's CmdDumpTree reply, which has
// no business going through the logger to get its payload.
func (m *LayoutManager) Dump(space SpaceId) (string, bool) {
	root, ok := m.RootOf(space)
	if !ok {
		return "", false
	}
	var b strings.Builder
	m.debugDump(root, 0, &b)
	return b.String(), true
}

func (m *LayoutManager) debugDump(n tree.NodeID, depth int, b *strings.Builder) {
	b.WriteString(strings.Repeat("  ", depth))
	if wid, ok := m.WindowOf(n); ok {
		b.WriteString(wid.String())
	} else {
		k := m.layout.Kind(n)
		b.WriteString(k.String())
		if sel := m.selection.LocalSelection(n); sel.Valid() {
			b.WriteString(" (selected: ")
			if wid, ok := m.WindowOf(sel); ok {
				b.WriteString(wid.String())
			} else {
				b.WriteString("container")
			}
			b.WriteString(")")
		}
	}
	b.WriteString("\n")
	for _, c := range m.arena.Children(n) {
		m.debugDump(c, depth+1, b)
	}
}
