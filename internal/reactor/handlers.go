package reactor

import (
	"context"

	"github.com/bnema/swellgo/internal/layout"
	"github.com/bnema/swellgo/internal/wm"
	"github.com/bnema/swellgo/pkg/ax"
)

// handleApplicationLaunched implements §4.6's ApplicationLaunched: insert
// the app, add its standard windows to the current space's layout, and
// insert WindowState for each. It leaves frontmost tracking untouched: the
// launch event carries no self-reported activation state, so the app is
// inserted as not self-frontmost and becomes frontmost only once its own
// activation report arrives and agrees with the OS-global frontmost pid.
func (r *Reactor) handleApplicationLaunched(ev Event) {
	r.apps[ev.Pid] = &AppState{Handle: ev.Handle, BundleID: ev.BundleID, Name: ev.Name}

	space, ok := r.mainSpace()
	for _, seed := range ev.Seeds {
		wid := wm.WindowId{Pid: ev.Pid, Index: seed.Index}
		r.windows[wid] = &WindowState{Title: seed.Title, FrameLastRead: toLayoutRect(seed.Frame)}
		if ok {
			r.manager.AddWindow(space, wid)
		}
	}
}

// handleApplicationTerminated implements §4.6's ApplicationTerminated:
// drop the app and every one of its windows from layout and state, and
// clear frontmost tracking if it named this pid.
func (r *Reactor) handleApplicationTerminated(ev Event) {
	if _, ok := r.apps[ev.Pid]; !ok {
		return
	}
	for wid := range r.windows {
		if wid.Pid == ev.Pid {
			r.manager.RemoveWindow(wid)
			delete(r.windows, wid)
		}
	}
	delete(r.apps, ev.Pid)

	if r.globalFrontmost == ev.Pid {
		r.globalFrontmost = 0
	}
	r.recomputeFrontmost()
}

// handleApplicationActivated implements the self-reported half of §4.6's
// ApplicationActivated: the app's own activation notification, carrying
// its current main window read synchronously by the worker.
func (r *Reactor) handleApplicationActivated(ev Event) {
	app, ok := r.apps[ev.Pid]
	if !ok {
		return
	}
	app.selfFrontmost = true
	app.HasMainWindow = ev.HasMainWindow
	app.MainWindow = ev.MainWindowIndex
	r.recomputeFrontmost()
	r.raiseSelection(ev.Pid, ev.MainWindowIndex, ev.HasMainWindow)
}

func (r *Reactor) handleApplicationDeactivated(ev Event) {
	app, ok := r.apps[ev.Pid]
	if !ok {
		return
	}
	app.selfFrontmost = false
	r.recomputeFrontmost()
}

func (r *Reactor) handleApplicationMainWindowChanged(ev Event) {
	app, ok := r.apps[ev.Pid]
	if !ok {
		return
	}
	app.HasMainWindow = ev.HasMainWindow
	app.MainWindow = ev.MainWindowIndex
	r.raiseSelection(ev.Pid, ev.MainWindowIndex, ev.HasMainWindow)
}

// raiseSelection feeds LayoutManager.WindowRaised when an app reports a
// main window, so a user clicking a different window of an already-
// frontmost app still moves the tracked selection (§4.4's WindowRaised
// event).
func (r *Reactor) raiseSelection(pid int, index uint64, has bool) {
	if !has {
		return
	}
	wid := wm.WindowId{Pid: pid, Index: index}
	node, ok := r.manager.NodeOf(wid)
	if !ok {
		return
	}
	space, ok := r.manager.SpaceOf(node)
	if !ok {
		return
	}
	r.manager.WindowRaised(space, &wid)
}

// handleWindowCreated implements §4.6's WindowCreated: insert WindowState
// and add the window to the current space's layout (if one exists yet).
// The worker forwards WindowCreated only for standard-role windows, so every
// window reaching this handler is standard; a non-standard window gets
// neither a layout node nor a WindowState entry.
func (r *Reactor) handleWindowCreated(ev Event) {
	wid := wm.WindowId{Pid: ev.Pid, Index: ev.WindowIndex}
	r.windows[wid] = &WindowState{Title: ev.Title}
	if space, ok := r.mainSpace(); ok {
		r.manager.AddWindow(space, wid)
	}
}

func (r *Reactor) handleWindowDestroyed(ev Event) {
	wid := wm.WindowId{Pid: ev.Pid, Index: ev.WindowIndex}
	r.manager.RemoveWindow(wid)
	delete(r.windows, wid)
}

// handleWindowFrameChanged implements §4.6's WindowFrameChanged: discard
// stale feedback by txid, ignore no-op observed frames, and for a
// user-driven (non-requested) change feed WindowResized into the
// LayoutManager before the relayout pass that follows — which is why,
// unlike every other handler, this one drives its own relayout call
// rather than letting dispatch do it unconditionally, since a stale or
// no-op frame must cause neither.
func (r *Reactor) handleWindowFrameChanged(ctx context.Context, ev Event) {
	wid := wm.WindowId{Pid: ev.Pid, Index: ev.WindowIndex}
	ws, ok := r.windows[wid]
	if !ok {
		return
	}
	if ev.SeenTxid < ws.LastSentTxid {
		return // stale feedback (§7); not an error
	}
	if !ev.Requested && ws.everWritten && rectsEqual(ev.Frame, ws.FrameLastRead) {
		return
	}

	old := ws.FrameLastRead
	ws.FrameLastRead = ev.Frame

	if ev.Requested {
		return // our own geometry command settling; no tree change, no relayout
	}

	if screen, ok := r.screenForWindow(wid); ok {
		r.manager.WindowResized(wid, old, ev.Frame, screen.Visible)
	}
	r.relayout(ctx, true)
}

func toLayoutRect(f ax.Frame) layout.Rect {
	return layout.Rect{X: f.X, Y: f.Y, W: f.W, H: f.H}
}

func rectsEqual(a, b layout.Rect) bool {
	return a == b
}
