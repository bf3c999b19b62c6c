package tree

// Observer is notified of the four structural events the arena guarantees.
// RemovingFromParent fires before detachment: the node's parent pointer is
// still valid, but sibling pointers are unspecified from the observer's
// point of view (the arena may already be repairing them). Every other
// event is delivered only once the arena has reached a consistent state
// for that event.
type Observer interface {
	AddedToForest(n NodeID)
	AddedToParent(n NodeID)
	RemovingFromParent(n NodeID)
	RemovedFromForest(n NodeID)
}

// Subscription is returned by Subscribe and lets a caller detach an
// observer.
type Subscription struct {
	arena *Arena
	id    int
}

// Unsubscribe detaches the observer. Safe to call more than once.
func (s Subscription) Unsubscribe() {
	if s.arena == nil {
		return
	}
	s.arena.unsubscribe(s.id)
}

func (a *Arena) unsubscribe(id int) {
	for i, o := range a.observers {
		if o.id == id {
			a.observers = append(a.observers[:i], a.observers[i+1:]...)
			return
		}
	}
}

type observerEntry struct {
	id int
	Observer
}

func (a *Arena) fireAddedToForest(n NodeID) {
	for _, o := range a.observers {
		o.AddedToForest(n)
	}
}

func (a *Arena) fireAddedToParent(n NodeID) {
	for _, o := range a.observers {
		o.AddedToParent(n)
	}
}

func (a *Arena) fireRemovingFromParent(n NodeID) {
	for _, o := range a.observers {
		o.RemovingFromParent(n)
	}
}

func (a *Arena) fireRemovedFromForest(n NodeID) {
	for _, o := range a.observers {
		o.RemovedFromForest(n)
	}
}
