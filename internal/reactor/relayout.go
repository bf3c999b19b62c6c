package reactor

import (
	"context"
	"time"

	"github.com/bnema/swellgo/internal/layout"
	"github.com/bnema/swellgo/internal/metrics"
	"github.com/bnema/swellgo/internal/wm"
	"github.com/bnema/swellgo/internal/worker"
	"github.com/bnema/swellgo/pkg/anim"
	"github.com/bnema/swellgo/pkg/ax"
)

func dispatchFrameRequest(index uint64, rect layout.Rect, txid uint64) worker.Request {
	return worker.Request{
		Kind:        worker.RequestSetWindowFrame,
		WindowIndex: index,
		Frame:       ax.Frame{X: rect.X, Y: rect.Y, W: rect.W, H: rect.H},
		Txid:        txid,
	}
}

// relayout implements §4.6's "after every event that may change geometry,
// the reactor recomputes the layout and dispatches frame updates for
// every window whose target rectangle changed": walk every space with a
// visible screen, compute GetSizes against that screen's visible
// rectangle, diff each leaf's target against its WindowState, and
// dispatch the changed set either directly (fromResize) or through the
// animation runner.
//
// fromResize is true when relayout is running as the direct continuation
// of a user-driven WindowResized reconciliation (§4.6): that turn's
// changes are the user's own drag settling into place and are applied
// immediately, bypassing the animation runner, matching the original
// implementation's exclusion of drag-driven moves from the animated path.
func (r *Reactor) relayout(ctx context.Context, fromResize bool) {
	type change struct {
		wid  wm.WindowId
		from layout.Rect
		to   layout.Rect
		isNew bool
		txid uint64
	}
	var changes []change

	for _, space := range r.manager.Spaces() {
		screen, ok := r.screenForSpace(space)
		if !ok {
			continue // space has no visible screen this turn; tree state stands, no geometry dispatch
		}
		root, ok := r.manager.RootOf(space)
		if !ok {
			continue
		}
		rect := layout.Rect{X: screen.Visible.X, Y: screen.Visible.Y, W: screen.Visible.W, H: screen.Visible.H}
		rect = applyOuterGap(rect, r.cfg.OuterGapPx)

		for _, leaf := range r.manager.Layout().GetSizes(root, rect) {
			wid, ok := r.manager.WindowOf(leaf.Node)
			if !ok {
				continue
			}
			ws, ok := r.windows[wid]
			if !ok {
				continue
			}
			if ws.everWritten && ws.FrameLastWritten == leaf.Rect {
				continue
			}
			ws.LastSentTxid++
			isNew := !ws.everWritten
			from := ws.FrameLastWritten
			if isNew {
				from = leaf.Rect // new windows jump to their target size, not grow from a stale rect
			}
			ws.FrameLastWritten = leaf.Rect
			ws.everWritten = true
			changes = append(changes, change{wid: wid, from: from, to: leaf.Rect, isNew: isNew, txid: ws.LastSentTxid})
		}
	}

	if len(changes) == 0 {
		return
	}

	frames := 0
	if fromResize {
		for _, c := range changes {
			app, ok := r.apps[c.wid.Pid]
			if !ok {
				continue
			}
			app.Handle.Send(dispatchFrameRequest(c.wid.Index, c.to, c.txid))
		}
	} else {
		driver := newAnimDriver(r)
		jobs := make([]anim.Job, 0, len(changes))
		for _, c := range changes {
			key := c.wid.String()
			driver.txids[key] = c.txid
			jobs = append(jobs, anim.Job{
				Window: key,
				From:   anim.Rect{X: c.from.X, Y: c.from.Y, W: c.from.W, H: c.from.H},
				To:     anim.Rect{X: c.to.X, Y: c.to.Y, W: c.to.W, H: c.to.H},
				IsNew:  c.isNew,
				Txid:   c.txid,
			})
		}
		if r.cfg.AnimationEnabled {
			frames = r.runner.Run(ctx, driver, jobs)
		} else {
			r.runner.RunSkipToEnd(driver, jobs)
		}
	}

	r.metricsSink.Record(metrics.Sample{Event: "Relayout", AnimationFrames: frames, At: time.Now()})
}

// applyOuterGap insets rect by px on every edge (§3's outer-gap
// configuration), clamping to a degenerate zero-size rect rather than
// going negative when the gap exceeds the screen's dimensions.
func applyOuterGap(rect layout.Rect, px int) layout.Rect {
	if px <= 0 {
		return rect
	}
	w := rect.W - 2*px
	h := rect.H - 2*px
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return layout.Rect{X: rect.X + px, Y: rect.Y + px, W: w, H: h}
}
