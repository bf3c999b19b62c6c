package worker

import "context"

// Handle is the reactor's view of a running Worker: a send-only path for
// Requests plus the means to tear the worker down. The reactor never
// blocks on a worker (§5); Send always either queues or spills onto a
// spawned goroutine rather than stalling the reactor's single turn.
type Handle struct {
	pid    int
	reqs   chan<- Request
	cancel context.CancelFunc
}

// Pid reports the application process this handle drives.
func (h *Handle) Pid() int { return h.pid }

// Send enqueues req for the worker. If the worker's request channel is
// momentarily full, Send hands off to a short-lived goroutine instead of
// blocking the reactor's turn — requests for one worker still arrive in
// the order Send was called, since each handoff goroutine blocks only on
// that single channel send.
func (h *Handle) Send(req Request) {
	select {
	case h.reqs <- req:
	default:
		go func() { h.reqs <- req }()
	}
}

// Stop cancels the worker's run loop, which unsubscribes from its
// accessibility handle and stops its coalescer timers.
func (h *Handle) Stop() {
	h.cancel()
}
