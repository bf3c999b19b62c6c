package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/swellgo/internal/logging"
	"github.com/bnema/swellgo/pkg/ax"
)

// raiseTimeout bounds the activation call a Raise request makes, per
// §4.7's "bounded messaging timeout (e.g. 500 ms)".
const raiseTimeout = 500 * time.Millisecond

// frameCoalesceDelay is how long the worker waits after a move or resize
// notification before re-reading the window's frame, merging a burst of
// same-window callbacks into one emitted WindowFrameChanged (§4.5).
const frameCoalesceDelay = 4 * time.Millisecond

// Worker is §4.5's per-application worker: the sole thread of control for
// one application's accessibility handle. Every ax.Observer callback and
// every inbound Request is funneled through Worker.run's single select
// loop, so the worker's own state (windows, last_seen_txid, suppression)
// is never touched concurrently even though the real accessibility
// binding may deliver notifications from an OS-owned thread.
type Worker struct {
	pid      int
	bundleID string
	name     string
	app      ax.Application

	outbound chan<- Notification
	reqs     chan Request
	internal chan func()

	windows      map[uint64]ax.Window
	lastSeenTxid map[uint64]uint64
	suppressed   map[uint64]bool

	coalescer *frameCoalescer
	sub       ax.Subscription
	logger    zerolog.Logger
}

// Spawn obtains pid's accessibility handle, seeds the worker's window
// table from its current standard windows, subscribes to its
// notifications, and starts the worker's run loop as a goroutine. Per
// §4.5's "Liveness", a failure at any of these initial OS calls returns an
// error and starts nothing; the caller (internal/bridge's
// ApplicationLaunched) logs the failure and ignores the app, without
// retrying, so the reactor never learns of it.
func Spawn(ctx context.Context, collab ax.Collaborator, pid int, bundleID, name string, outbound chan<- Notification) (*Handle, []WindowSeed, error) {
	app, err := collab.ApplicationByPid(pid)
	if err != nil {
		return nil, nil, err
	}

	rawWindows, err := app.Windows()
	if err != nil {
		return nil, nil, err
	}

	w := &Worker{
		pid:          pid,
		bundleID:     bundleID,
		name:         name,
		app:          app,
		outbound:     outbound,
		reqs:         make(chan Request, 32),
		internal:     make(chan func(), 64),
		windows:      make(map[uint64]ax.Window),
		lastSeenTxid: make(map[uint64]uint64),
		suppressed:   make(map[uint64]bool),
		logger:       logging.Get().With().Int("pid", pid).Str("component", "worker").Logger(),
	}
	w.coalescer = newFrameCoalescer(frameCoalesceDelay, func(idx uint64) {
		w.enqueue(func() { w.handleFrameDirty(idx) })
	})

	_ = app.SetMessagingTimeout(raiseTimeout)

	var seeds []WindowSeed
	for _, win := range rawWindows {
		if !isStandardWindow(win) {
			continue
		}
		idx := win.Index()
		w.windows[idx] = win
		w.lastSeenTxid[idx] = 0
		title, _ := win.Title()
		frame, _ := win.Frame()
		seeds = append(seeds, WindowSeed{Index: idx, Title: title, Frame: frame})
	}

	sub, err := app.Subscribe(w)
	if err != nil {
		return nil, nil, err
	}
	w.sub = sub

	runCtx, cancel := context.WithCancel(ctx)
	go w.run(runCtx)

	return &Handle{pid: pid, reqs: w.reqs, cancel: cancel}, seeds, nil
}

// WindowSeed is a standard window Spawn found already open when the
// worker started, handed back so the reactor can insert WindowState/
// layout entries for it without waiting on a WindowCreated notification
// that will never arrive for pre-existing windows.
type WindowSeed struct {
	Index uint64
	Title string
	Frame ax.Frame
}

func isStandardWindow(w ax.Window) bool {
	role, subrole, err := w.Role()
	if err != nil {
		return false
	}
	return role == ax.RoleWindow && subrole == ax.SubroleStandard
}

func (w *Worker) run(ctx context.Context) {
	defer w.teardown()
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-w.reqs:
			w.handleRequest(req)
		case fn := <-w.internal:
			fn()
		}
	}
}

func (w *Worker) teardown() {
	w.coalescer.Stop()
	if w.sub != nil {
		w.sub.Unsubscribe()
	}
}

func (w *Worker) enqueue(fn func()) {
	select {
	case w.internal <- fn:
	default:
		go func() { w.internal <- fn }()
	}
}

func (w *Worker) send(n Notification) {
	n.Pid = w.pid
	select {
	case w.outbound <- n:
	default:
		go func() { w.outbound <- n }()
	}
}

func (w *Worker) handleRequest(req Request) {
	switch req.Kind {
	case RequestSetWindowFrame:
		w.setWindowFrame(req)
	case RequestSetWindowPos:
		w.setWindowPos(req)
	case RequestBeginAnimation:
		w.suppressed[req.WindowIndex] = true
	case RequestEndAnimation:
		w.endAnimation(req)
	case RequestRaise:
		w.raise(req)
	}
}

// setWindowFrame implements §4.5's "On SetWindow* requests": update
// last_seen_txid before calling the OS, call it, then read back the
// resulting frame and emit a requested=true WindowFrameChanged.
func (w *Worker) setWindowFrame(req Request) {
	w.lastSeenTxid[req.WindowIndex] = req.Txid
	win, ok := w.windows[req.WindowIndex]
	if !ok {
		return
	}
	if err := win.SetFrame(req.Frame); err != nil {
		w.logger.Warn().Err(err).Uint64("window", req.WindowIndex).Msg("SetFrame failed, will re-sync on next observed frame")
		return
	}
	frame, err := win.Frame()
	if err != nil {
		w.logger.Warn().Err(err).Uint64("window", req.WindowIndex).Msg("post-SetFrame read failed")
		return
	}
	w.send(Notification{Kind: NotificationFrameChanged, WindowIndex: req.WindowIndex, Frame: frame, SeenTxid: req.Txid, Requested: true})
}

func (w *Worker) setWindowPos(req Request) {
	w.lastSeenTxid[req.WindowIndex] = req.Txid
	win, ok := w.windows[req.WindowIndex]
	if !ok {
		return
	}
	if err := win.SetPosition(req.X, req.Y); err != nil {
		w.logger.Warn().Err(err).Uint64("window", req.WindowIndex).Msg("SetPosition failed, will re-sync on next observed frame")
		return
	}
	frame, err := win.Frame()
	if err != nil {
		w.logger.Warn().Err(err).Uint64("window", req.WindowIndex).Msg("post-SetPosition read failed")
		return
	}
	w.send(Notification{Kind: NotificationFrameChanged, WindowIndex: req.WindowIndex, Frame: frame, SeenTxid: req.Txid, Requested: true})
}

// endAnimation implements §4.5's EndWindowAnimation: re-enable outgoing
// notifications for the window, then read its settled frame and emit one
// WindowFrameChanged carrying the window's last_seen_txid.
func (w *Worker) endAnimation(req Request) {
	delete(w.suppressed, req.WindowIndex)
	win, ok := w.windows[req.WindowIndex]
	if !ok {
		return
	}
	frame, err := win.Frame()
	if err != nil {
		w.logger.Warn().Err(err).Uint64("window", req.WindowIndex).Msg("post-animation read failed")
		return
	}
	w.send(Notification{Kind: NotificationFrameChanged, WindowIndex: req.WindowIndex, Frame: frame, SeenTxid: w.lastSeenTxid[req.WindowIndex], Requested: true})
}

// raise implements §4.7's worker side: acquire the token's mutex, recheck
// the atomic target pid, and only activate on a match.
func (w *Worker) raise(req Request) {
	if req.Token == nil {
		return
	}
	ok := req.Token.TryActivate(w.pid)
	defer req.Token.Release()
	if !ok {
		return
	}
	win, found := w.windows[req.WindowIndex]
	if !found {
		return
	}
	if err := win.Raise(raiseTimeout); err != nil {
		w.logger.Warn().Err(err).Uint64("window", req.WindowIndex).Msg("raise failed")
	}
}

func (w *Worker) handleFrameDirty(idx uint64) {
	if w.suppressed[idx] {
		return
	}
	win, ok := w.windows[idx]
	if !ok {
		return
	}
	frame, err := win.Frame()
	if err != nil {
		w.logger.Warn().Err(err).Uint64("window", idx).Msg("frame re-read failed")
		return
	}
	w.send(Notification{Kind: NotificationFrameChanged, WindowIndex: idx, Frame: frame, SeenTxid: w.lastSeenTxid[idx], Requested: false})
}

// --- ax.Observer ---

func (w *Worker) WindowCreated(win ax.Window) {
	w.enqueue(func() {
		if !isStandardWindow(win) {
			return
		}
		idx := win.Index()
		w.windows[idx] = win
		w.lastSeenTxid[idx] = 0
		title, _ := win.Title()
		w.send(Notification{Kind: NotificationWindowCreated, NewWindowIndex: idx, Title: title})
	})
}

func (w *Worker) WindowDestroyed(index uint64) {
	w.enqueue(func() {
		delete(w.windows, index)
		delete(w.lastSeenTxid, index)
		delete(w.suppressed, index)
		w.send(Notification{Kind: NotificationWindowDestroyed, WindowIndex: index})
	})
}

func (w *Worker) WindowMoved(index uint64)   { w.coalescer.Notify(index) }
func (w *Worker) WindowResized(index uint64) { w.coalescer.Notify(index) }

func (w *Worker) WindowMinimized(uint64)   {}
func (w *Worker) WindowDeminimized(uint64) {}
func (w *Worker) TitleChanged(uint64, string) {}

func (w *Worker) Activated(mainWindowIndex uint64, hasMain bool) {
	w.enqueue(func() {
		w.send(Notification{Kind: NotificationAppActivated, MainWindowIndex: mainWindowIndex, HasMainWindow: hasMain})
	})
}

func (w *Worker) Deactivated() {
	w.enqueue(func() {
		w.send(Notification{Kind: NotificationAppDeactivated})
	})
}

func (w *Worker) MainWindowChanged(index uint64, has bool) {
	w.enqueue(func() {
		w.send(Notification{Kind: NotificationMainWindowChanged, MainWindowIndex: index, HasMainWindow: has})
	})
}
