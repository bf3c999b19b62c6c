package wm

import (
	"github.com/bnema/swellgo/internal/layout"
	"github.com/bnema/swellgo/internal/logging"
	"github.com/bnema/swellgo/internal/tree"
)

// resize implements §4.4's resize(node, Δ_screen, dir): grow or shrink node
// along dir's axis by a fraction of the screen (deltaScreen, already
// normalized to [-1, 1] of the relevant screen dimension), translating that
// screen-relative delta into a local share delta via an "exchange rate"
// through every intervening matching-orientation, non-group ancestor.
func (m *LayoutManager) resize(node tree.NodeID, deltaScreen float64, dir Direction) {
	resizing, sibling, found := m.findResizeTarget(node, dir)
	if !found {
		return
	}

	rate := m.exchangeRate(resizing, dir)
	if rate == 0 {
		return
	}

	parent := m.arena.Parent(resizing)
	localDelta := deltaScreen * m.layout.Total(parent) / rate
	m.layout.TakeShare(resizing, sibling, localDelta)
}

// findResizeTarget is resize step 1: the nearest ancestor of node (self
// first) whose parent is a non-group split container with a sibling in
// dir.
func (m *LayoutManager) findResizeTarget(node tree.NodeID, dir Direction) (resizing, sibling tree.NodeID, found bool) {
	for _, anc := range m.arena.Ancestors(node) {
		parent := m.arena.Parent(anc)
		if !parent.Valid() || !m.matchesDirection(parent, dir) {
			continue
		}
		if sib := m.siblingInDirection(anc, dir); sib.Valid() {
			return anc, sib, true
		}
	}
	return tree.NodeID{}, tree.NodeID{}, false
}

// exchangeRate is resize step 2: the product of proportion(ancestor) for
// every ancestor above resizing whose own parent is a non-group container
// with matching orientation. It converts a fraction of the screen into a
// fraction of resizing's parent.
func (m *LayoutManager) exchangeRate(resizing tree.NodeID, dir Direction) float64 {
	rate := 1.0
	parent := m.arena.Parent(resizing)
	for _, anc := range m.arena.Ancestors(parent) {
		ancParent := m.arena.Parent(anc)
		if !ancParent.Valid() || !m.matchesDirection(ancParent, dir) {
			continue
		}
		rate *= m.layout.Proportion(anc)
	}
	return rate
}

// edgeChange is one of the (at most two) screen edges set_frame_from_resize
// finds moved between old and new.
type edgeChange struct {
	pixelDelta int
	axisSize   int
	dir        Direction
}

// setFrameFromResize implements §4.4's set_frame_from_resize(node, old,
// new, screen): a user-driven drag moved at most two of node's four
// screen edges. Each moved edge becomes one resize call along the
// corresponding direction, with the pixel delta normalized against
// screen's extent on that axis. More than two moved edges is a structural
// programming error — the caller promised a single-drag reconciliation,
// not an arbitrary relayout.
func (m *LayoutManager) setFrameFromResize(node tree.NodeID, old, new, screen layout.Rect) {
	var changes []edgeChange
	if d := old.X - new.X; d != 0 {
		changes = append(changes, edgeChange{d, screen.W, Left})
	}
	if d := (new.X + new.W) - (old.X + old.W); d != 0 {
		changes = append(changes, edgeChange{d, screen.W, Right})
	}
	if d := old.Y - new.Y; d != 0 {
		changes = append(changes, edgeChange{d, screen.H, Up})
	}
	if d := (new.Y + new.H) - (old.Y + old.H); d != 0 {
		changes = append(changes, edgeChange{d, screen.H, Down})
	}

	logging.Invariant(len(changes) <= 2, "wm: set_frame_from_resize asked to change more than two edges")

	for _, c := range changes {
		m.resize(node, float64(c.pixelDelta)/float64(c.axisSize), c.dir)
	}
}
