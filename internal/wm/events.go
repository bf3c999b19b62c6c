package wm

import "github.com/bnema/swellgo/internal/layout"

// WindowRaised implements §4.4's WindowRaised(space, wid?) event: select
// the leaf holding wid, if any. A nil/untracked wid is a no-op — not every
// raise notification names a window the layout manager knows about (e.g.
// the desktop itself being raised).
func (m *LayoutManager) WindowRaised(space SpaceId, wid *WindowId) {
	if wid == nil {
		return
	}
	node, ok := m.NodeOf(*wid)
	if !ok {
		return
	}
	_ = space // space is carried for symmetry with the command surface; a
	// window's node already uniquely determines its root.
	m.selection.Select(node)
}

// WindowResized implements §4.4's WindowResized{space, wid, old_frame,
// new_frame, screen} event: reconcile a user-driven drag against the
// layout tree via set_frame_from_resize. No-op if wid is untracked.
func (m *LayoutManager) WindowResized(wid WindowId, old, new, screen layout.Rect) {
	node, ok := m.NodeOf(wid)
	if !ok {
		return
	}
	m.setFrameFromResize(node, old, new, screen)
}
