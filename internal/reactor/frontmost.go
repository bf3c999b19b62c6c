package reactor

// recomputeFrontmost implements §4.8: the OS-global frontmost pid and an
// app's own self-reported activation state are tracked independently, and
// the reactor only agrees a pid is "the" frontmost app when both sources
// say so. Disagreement (e.g. a just-launched app that hasn't yet received
// its own activation notification) leaves frontmostPid at 0 rather than
// guessing.
func (r *Reactor) recomputeFrontmost() {
	if r.globalFrontmost == 0 {
		r.frontmostPid = 0
		return
	}
	app, ok := r.apps[r.globalFrontmost]
	if !ok || !app.selfFrontmost {
		r.frontmostPid = 0
		return
	}
	r.frontmostPid = r.globalFrontmost
}

// mainWindow returns the frontmost app's self-reported main window, if
// the reactor currently agrees on a frontmost app and that app currently
// reports having one.
func (r *Reactor) mainWindow() (int, uint64, bool) {
	if r.frontmostPid == 0 {
		return 0, 0, false
	}
	app, ok := r.apps[r.frontmostPid]
	if !ok || !app.HasMainWindow {
		return 0, 0, false
	}
	return r.frontmostPid, app.MainWindow, true
}
