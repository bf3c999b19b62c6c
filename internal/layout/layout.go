package layout

import (
	"github.com/bnema/swellgo/internal/logging"
	"github.com/bnema/swellgo/internal/tree"
)

type entry struct {
	kind              Kind
	lastUngroupedKind Kind
	size              float64
	total             float64
}

// Layout is an observer over a tree.Arena maintaining an auxiliary
// side table of per-node size/total/kind, keyed by tree.NodeID. One Layout
// exists per Arena (typically one per reactor, shared across every space's
// root, since node ids are unique within an arena).
type Layout struct {
	arena   *tree.Arena
	entries map[tree.NodeID]*entry
}

// New creates a Layout and subscribes it to arena's structural events.
func New(arena *tree.Arena) *Layout {
	l := &Layout{arena: arena, entries: make(map[tree.NodeID]*entry)}
	arena.Subscribe(l)
	return l
}

// AddedToForest allocates a layout entry with default kind Horizontal,
// size 1.0, total 0, per §4.2.
func (l *Layout) AddedToForest(n tree.NodeID) {
	l.entries[n] = &entry{kind: Horizontal, lastUngroupedKind: Horizontal, size: 1.0}
}

// AddedToParent resets n's share to the default and adds it to the new
// parent's total.
func (l *Layout) AddedToParent(n tree.NodeID) {
	e := l.mustEntry(n)
	e.size = 1.0
	parent := l.arena.Parent(n)
	l.mustEntry(parent).total += 1.0
}

// RemovingFromParent subtracts n's current share from its (about to be
// former) parent's total.
func (l *Layout) RemovingFromParent(n tree.NodeID) {
	e := l.mustEntry(n)
	parent := l.arena.Parent(n)
	l.mustEntry(parent).total -= e.size
}

// RemovedFromForest drops n's layout entry entirely.
func (l *Layout) RemovedFromForest(n tree.NodeID) {
	delete(l.entries, n)
}

func (l *Layout) mustEntry(n tree.NodeID) *entry {
	e, ok := l.entries[n]
	logging.Invariant(ok, "layout: no entry for node (missing AddedToForest notification)")
	return e
}

// Kind returns n's container kind.
func (l *Layout) Kind(n tree.NodeID) Kind { return l.mustEntry(n).kind }

// Size returns n's parent-relative share.
func (l *Layout) Size(n tree.NodeID) float64 { return l.mustEntry(n).size }

// Total returns the sum of n's children's shares.
func (l *Layout) Total(n tree.NodeID) float64 { return l.mustEntry(n).total }

// LastUngroupedKind returns the most recent non-group kind n held, so
// Ungroup can restore it.
func (l *Layout) LastUngroupedKind(n tree.NodeID) Kind { return l.mustEntry(n).lastUngroupedKind }

// SetKind records n's kind. If kind is not a group kind, it also updates
// n's last-ungrouped-kind so a later Ungroup can restore it.
func (l *Layout) SetKind(n tree.NodeID, kind Kind) {
	e := l.mustEntry(n)
	e.kind = kind
	if !kind.IsGroup() {
		e.lastUngroupedKind = kind
	}
}

// Proportion returns size(n)/total(parent(n)). Panics if n is a root (no
// parent); callers must check tree.Arena.IsRoot first.
func (l *Layout) Proportion(n tree.NodeID) float64 {
	parent := l.arena.Parent(n)
	logging.Invariant(parent.Valid(), "layout: Proportion called on a root node")
	total := l.mustEntry(parent).total
	if total == 0 {
		return 0
	}
	return l.mustEntry(n).size / total
}

// AssumeSizeOf gives new the size currently held by old (which must be
// new's sibling under the same parent) and zeroes old's size. new's own
// former share is taken out of the parent's total, so the total again
// equals the sum of its children's shares, i.e. what it was before new
// was inserted. Used by nest_in_container when wrapping a node in a new
// container without disturbing its siblings' proportions.
func (l *Layout) AssumeSizeOf(newNode, old tree.NodeID) {
	logging.Invariant(l.arena.Parent(newNode) == l.arena.Parent(old), "layout: AssumeSizeOf requires a shared parent")
	oe := l.mustEntry(old)
	ne := l.mustEntry(newNode)
	l.mustEntry(l.arena.Parent(newNode)).total -= ne.size
	ne.size = oe.size
	oe.size = 0
}

// TakeShare moves Δ of size from `from` to `node`, both children of the
// same parent. Δ is clamped to [-size(node), size(from)] so neither share
// goes negative. The parent's total is unchanged.
func (l *Layout) TakeShare(node, from tree.NodeID, delta float64) {
	logging.Invariant(l.arena.Parent(node) == l.arena.Parent(from), "layout: TakeShare requires a shared parent")
	ne := l.mustEntry(node)
	fe := l.mustEntry(from)

	if delta > fe.size {
		delta = fe.size
	}
	if delta < -ne.size {
		delta = -ne.size
	}

	fe.size -= delta
	ne.size += delta
}
