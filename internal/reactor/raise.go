package reactor

import (
	"github.com/bnema/swellgo/internal/wm"
	"github.com/bnema/swellgo/internal/worker"
)

// dispatchRaise implements §4.7's reactor side: record the new target in
// the shared raise token before sending the Raise request, so a second
// raise issued before the first worker's activation call completes always
// supersedes it.
func (r *Reactor) dispatchRaise(wid wm.WindowId) {
	app, ok := r.apps[wid.Pid]
	if !ok {
		return
	}
	r.raiseToken.SetTarget(wid.Pid)
	app.Handle.Send(worker.Request{Kind: worker.RequestRaise, WindowIndex: wid.Index, Token: r.raiseToken})
}
