// Package selection is an observer over internal/tree that remembers, for
// each container, which child is locally selected, with an optional stop
// flag so a user can explicitly select an interior container rather than
// whatever leaf its local-selection chain would otherwise resolve to.
package selection

import "github.com/bnema/swellgo/internal/tree"

type entry struct {
	selectedChild tree.NodeID
	stopHere      bool
}

// Selection tracks per-container local selection over a tree.Arena.
type Selection struct {
	arena   *tree.Arena
	entries map[tree.NodeID]*entry
}

// New creates a Selection and subscribes it to arena's structural events.
func New(arena *tree.Arena) *Selection {
	s := &Selection{arena: arena, entries: make(map[tree.NodeID]*entry)}
	arena.Subscribe(s)
	return s
}

// AddedToForest is a no-op: a selection entry is only allocated for a
// container once one of its children is actually selected (see Select),
// keeping the side table free of entries for untouched containers.
func (s *Selection) AddedToForest(tree.NodeID) {}

// AddedToParent is a no-op; selection state is driven explicitly by
// Select/SelectLocally, not by structural attachment.
func (s *Selection) AddedToParent(tree.NodeID) {}

// RemovingFromParent reassigns the parent's local selection away from n if
// n was selected, preferring the next sibling, then the previous sibling,
// then dropping the parent's entry entirely if n was the only child.
func (s *Selection) RemovingFromParent(n tree.NodeID) {
	parent := s.arena.Parent(n)
	e, ok := s.entries[parent]
	if !ok || e.selectedChild != n {
		return
	}

	if next := s.arena.NextSibling(n); next.Valid() {
		e.selectedChild = next
		return
	}
	if prev := s.arena.PrevSibling(n); prev.Valid() {
		e.selectedChild = prev
		return
	}
	delete(s.entries, parent)
}

// RemovedFromForest drops any selection entry keyed by n itself (n was a
// container with its own local selection recorded).
func (s *Selection) RemovedFromForest(n tree.NodeID) {
	delete(s.entries, n)
}

// LocalSelection returns the child currently selected at container c, or
// the zero NodeID if c has stop_here set or no entry exists.
func (s *Selection) LocalSelection(c tree.NodeID) tree.NodeID {
	e, ok := s.entries[c]
	if !ok || e.stopHere {
		return tree.NodeID{}
	}
	return e.selectedChild
}

// StopHere reports whether c has its stop flag set.
func (s *Selection) StopHere(c tree.NodeID) bool {
	e, ok := s.entries[c]
	return ok && e.stopHere
}

// Select makes n the current selection of its root: n's own stop flag is
// set only if n already has an entry (a leaf or an untouched container
// naturally terminates the chain without one), then for every ancestor of
// n, bottom-up, the ancestor's selected_child is set to the child on the
// path to n and its stop flag is cleared, so any stale stop higher up the
// chain no longer shadows this selection.
func (s *Selection) Select(n tree.NodeID) {
	if e, ok := s.entries[n]; ok {
		e.stopHere = true
	}

	child := n
	for {
		parent := s.arena.Parent(child)
		if !parent.Valid() {
			return
		}
		e := s.entryFor(parent)
		e.selectedChild = child
		e.stopHere = false
		child = parent
	}
}

// SelectLocally sets n's parent's local selection to n without touching
// any ancestor further up the chain.
func (s *Selection) SelectLocally(n tree.NodeID) {
	parent := s.arena.Parent(n)
	if !parent.Valid() {
		return
	}
	s.entryFor(parent).selectedChild = n
}

// Descend clears c's stop flag if c has a recorded local selection,
// letting CurrentSelection continue past c to that child on its next
// call. Reports whether c had a child to descend into.
func (s *Selection) Descend(c tree.NodeID) bool {
	e, ok := s.entries[c]
	if !ok || !e.selectedChild.Valid() {
		return false
	}
	e.stopHere = false
	return true
}

func (s *Selection) entryFor(n tree.NodeID) *entry {
	e, ok := s.entries[n]
	if !ok {
		e = &entry{}
		s.entries[n] = e
	}
	return e
}

// CurrentSelection follows selected_child from root until a node with
// stop_here set is reached or no entry exists, returning that node. A root
// always has a current selection: itself, if nothing deeper is recorded.
func (s *Selection) CurrentSelection(root tree.NodeID) tree.NodeID {
	current := root
	for {
		e, ok := s.entries[current]
		if !ok || e.stopHere {
			return current
		}
		if !e.selectedChild.Valid() || !s.arena.Alive(e.selectedChild) {
			return current
		}
		current = e.selectedChild
	}
}
