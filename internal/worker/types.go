// Package worker implements §4.5's per-application worker: one logical
// task per application process, driving that application's accessibility
// event loop, translating reactor commands into pkg/ax calls, and
// emitting coalesced notifications back to the reactor.
package worker

import "github.com/bnema/swellgo/pkg/ax"

// RequestKind names one of the worker's five request shapes (§4.5).
type RequestKind int

const (
	RequestSetWindowFrame RequestKind = iota
	RequestSetWindowPos
	RequestBeginAnimation
	RequestEndAnimation
	RequestRaise
)

// Request is one reactor-to-worker geometry/raise command. Only the
// fields relevant to Kind are populated; requests for a single worker
// arrive and are serviced in the order the reactor issued them (§5).
type Request struct {
	Kind        RequestKind
	WindowIndex uint64
	Frame       ax.Frame // RequestSetWindowFrame
	X, Y        int      // RequestSetWindowPos
	Txid        uint64   // RequestSetWindowFrame, RequestSetWindowPos
	Token       *RaiseToken
}

// NotificationKind names one of the worker-to-reactor notification shapes
// (§4.5, §4.6).
type NotificationKind int

const (
	NotificationAppActivated NotificationKind = iota
	NotificationAppDeactivated
	NotificationMainWindowChanged
	NotificationWindowCreated
	NotificationWindowDestroyed
	NotificationFrameChanged
	NotificationWorkerExited
)

// Notification is one worker-to-reactor event. Pid identifies the
// originating worker so the reactor, which multiplexes every worker's
// outbound channel onto its single inbound channel, knows which AppState
// to update.
type Notification struct {
	Kind NotificationKind
	Pid  int

	// NotificationMainWindowChanged, NotificationAppActivated
	MainWindowIndex uint64
	HasMainWindow   bool

	// NotificationWindowCreated
	NewWindowIndex uint64
	Title          string

	// NotificationWindowDestroyed, NotificationFrameChanged
	WindowIndex uint64

	// NotificationFrameChanged
	Frame     ax.Frame
	SeenTxid  uint64
	Requested bool
}
