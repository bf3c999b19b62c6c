package worker

import "sync/atomic"

// RaiseToken implements §4.7: it ensures a later reactor-issued raise
// always wins even if an earlier raise's activation call is still in
// flight on a different worker. The reactor owns one RaiseToken shared
// across every worker; it stores the target pid into the atomic field
// (unsynchronized with the mutex) before dispatching a Raise request, and
// each worker servicing a Raise request takes the mutex, rechecks the
// atomic pid against its own, and only activates on a match. The mutex
// serializes activation across workers; rechecking under the lock closes
// the race where a second raise supersedes the first between the first
// worker reading the pid and calling activate.
type RaiseToken struct {
	pid   atomic.Int64
	mu    chan struct{} // 1-buffered channel used as a non-reentrant mutex
}

// NewRaiseToken creates an unlocked token with no pending target.
func NewRaiseToken() *RaiseToken {
	t := &RaiseToken{mu: make(chan struct{}, 1)}
	t.mu <- struct{}{}
	return t
}

// SetTarget records pid as the current raise target. Called by the
// reactor before dispatching a Raise request; not synchronized with the
// worker-side mutex by design (§4.7: "unsynchronized with the workers'
// lock").
func (t *RaiseToken) SetTarget(pid int) {
	t.pid.Store(int64(pid))
}

// TryActivate acquires the token's mutex, checks that pid still matches
// the current target, and reports whether the caller may proceed with
// activation. The caller must call Release exactly once after this
// returns, whether or not it actually activates, to free the mutex for
// the next worker's raise.
func (t *RaiseToken) TryActivate(pid int) bool {
	<-t.mu
	return int64(pid) == t.pid.Load()
}

// Release frees the mutex acquired by TryActivate.
func (t *RaiseToken) Release() {
	t.mu <- struct{}{}
}
