package tree

import (
	"runtime"

	"github.com/bnema/swellgo/internal/logging"
)

// OwnedRoot represents unique ownership of a tree root. Per the forest's
// lifecycle contract, a live OwnedRoot must be released exactly once, via
// Release. Dropping one without releasing it is a programming error; a
// finalizer backstops the
// explicit-release discipline so a leaked handle is diagnosed instead of
// silently forgotten.
type OwnedRoot struct {
	arena *Arena
	id    NodeID
	node  *ownedRootState
}

// ownedRootState is the finalizer target. OwnedRoot itself is a small value
// type copied freely (e.g. through a map), so the "has this been released"
// flag and finalizer both live on a separate heap object reachable only
// through this one field.
type ownedRootState struct {
	released bool
}

func newOwnedRoot(arena *Arena, id NodeID) OwnedRoot {
	state := &ownedRootState{}
	runtime.SetFinalizer(state, func(s *ownedRootState) {
		if !s.released {
			logging.Get().Error().
				Str("component", "tree").
				Msg("owned root handle garbage-collected without Release; this is a leak, not a crash, but indicates a programming error")
		}
	})
	return OwnedRoot{arena: arena, id: id, node: state}
}

// ID returns the root's current NodeID. For roots that have been swapped
// out from under their owner (see the nest_in_container root-swap case),
// the caller must re-fetch this after any operation documented to swap the
// root so it never holds a stale id across such a call.
func (r OwnedRoot) ID() NodeID {
	return r.id
}

// Release recursively removes the root and every descendant, firing
// RemovedFromForest bottom-up, and marks the handle as released. Releasing
// an already-released handle is a programming error.
func (r OwnedRoot) Release() {
	logging.Invariant(r.node != nil && !r.node.released, "tree: double release of an owned root")
	r.node.released = true
	r.arena.removeSubtree(r.id)
}

// Rebind returns a new OwnedRoot over the same released-state tracking
// object but a different NodeID. Used by nest_in_container's root-swap
// case: the owner's old root node becomes a child of a new root, and the
// OwnedRoot the caller holds must now track the new root id without
// double-counting release/finalizer bookkeeping.
func (r OwnedRoot) Rebind(newID NodeID) OwnedRoot {
	return OwnedRoot{arena: r.arena, id: newID, node: r.node}
}
