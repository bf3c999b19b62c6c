package reactor

import (
	"fmt"

	"github.com/bnema/swellgo/internal/wm"
	"github.com/bnema/swellgo/internal/worker"
	"github.com/bnema/swellgo/pkg/ax"
)

// animDriver adapts a batch of worker handles to anim.Driver. A Job's
// Window key is its wm.WindowId.String() form; animDriver resolves that
// back to the app's *worker.Handle and per-window index once per call and
// tracks each job's current position so SetSize can be paired with the
// driver's last-known position (worker.Request only carries a full frame
// or a bare position, never a bare size).
type animDriver struct {
	r     *Reactor
	txids map[string]uint64
	pos   map[string][2]int
}

func newAnimDriver(r *Reactor) *animDriver {
	return &animDriver{r: r, txids: make(map[string]uint64), pos: make(map[string][2]int)}
}

func (d *animDriver) handleFor(key string) (*worker.Handle, uint64, bool) {
	wid, ok := parseWindowKey(key)
	if !ok {
		return nil, 0, false
	}
	app, ok := d.r.apps[wid.Pid]
	if !ok {
		return nil, 0, false
	}
	return app.Handle, wid.Index, true
}

func (d *animDriver) Begin(window string) {
	handle, idx, ok := d.handleFor(window)
	if !ok {
		return
	}
	handle.Send(worker.Request{Kind: worker.RequestBeginAnimation, WindowIndex: idx})
}

func (d *animDriver) SetPosition(window string, x, y int) {
	handle, idx, ok := d.handleFor(window)
	if !ok {
		return
	}
	d.pos[window] = [2]int{x, y}
	handle.Send(worker.Request{Kind: worker.RequestSetWindowPos, WindowIndex: idx, X: x, Y: y, Txid: d.txids[window]})
}

func (d *animDriver) SetSize(window string, w, h int) {
	handle, idx, ok := d.handleFor(window)
	if !ok {
		return
	}
	p := d.pos[window]
	handle.Send(worker.Request{
		Kind:        worker.RequestSetWindowFrame,
		WindowIndex: idx,
		Frame:       ax.Frame{X: p[0], Y: p[1], W: w, H: h},
		Txid:        d.txids[window],
	})
}

func (d *animDriver) End(window string) {
	handle, idx, ok := d.handleFor(window)
	if !ok {
		return
	}
	handle.Send(worker.Request{Kind: worker.RequestEndAnimation, WindowIndex: idx})
}

// parseWindowKey inverts wm.WindowId.String()'s "pid.index" form.
func parseWindowKey(key string) (wm.WindowId, bool) {
	var pid int
	var index uint64
	n, err := fmt.Sscanf(key, "%d.%d", &pid, &index)
	if err != nil || n != 2 {
		return wm.WindowId{}, false
	}
	return wm.WindowId{Pid: pid, Index: index}, true
}
