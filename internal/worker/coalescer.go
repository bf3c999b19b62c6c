package worker

import (
	"sync"
	"time"
)

// frameCoalescer merges a burst of WindowMoved/WindowResized callbacks for
// the same window index into a single re-read-and-emit, the way a single
// user drag can otherwise deliver a move and a resize notification
// separately (§4.5's "Coalescing rationale"). Adapted from the teacher's
// main-loop task coalescer (internal/ui/mainloop.Coalescer), replacing its
// GUI-toolkit post function with a short debounce timer, since a worker's
// run loop has no main-loop idle callback to post onto.
type frameCoalescer struct {
	mu      sync.Mutex
	pending map[uint64]*time.Timer
	delay   time.Duration
	fire    func(windowIndex uint64)
}

func newFrameCoalescer(delay time.Duration, fire func(windowIndex uint64)) *frameCoalescer {
	return &frameCoalescer{pending: make(map[uint64]*time.Timer), delay: delay, fire: fire}
}

// Notify schedules fire(windowIndex) after delay, resetting the timer if
// one is already pending for this window so a move immediately followed
// by a resize collapses into one fire.
func (c *frameCoalescer) Notify(windowIndex uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.pending[windowIndex]; ok {
		t.Stop()
	}
	c.pending[windowIndex] = time.AfterFunc(c.delay, func() {
		c.mu.Lock()
		delete(c.pending, windowIndex)
		c.mu.Unlock()
		c.fire(windowIndex)
	})
}

// Stop cancels every pending timer, e.g. when the worker is tearing down.
func (c *frameCoalescer) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.pending {
		t.Stop()
	}
	c.pending = make(map[uint64]*time.Timer)
}
