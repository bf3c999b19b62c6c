// Package bridge adapts the OS-facing collaborators (pkg/osnotify,
// pkg/hotkey, pkg/ax via internal/worker) into internal/reactor events and
// commands. It is the one place blocking OS calls happen on the bridge's
// own goroutines, never on the reactor's event loop (§5).
package bridge

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/swellgo/internal/layout"
	"github.com/bnema/swellgo/internal/logging"
	"github.com/bnema/swellgo/internal/reactor"
	"github.com/bnema/swellgo/internal/worker"
	"github.com/bnema/swellgo/internal/wm"
	"github.com/bnema/swellgo/pkg/ax"
	"github.com/bnema/swellgo/pkg/osnotify"
)

// NotificationBridge implements osnotify.Observer, translating every
// OS-global callback into a reactor.Event. It also owns the one channel
// every spawned worker sends its Notifications on, pumping each into the
// matching reactor event.
type NotificationBridge struct {
	reactor *reactor.Reactor
	axColl  ax.Collaborator

	notifications chan worker.Notification
	logger        zerolog.Logger
}

// NewNotificationBridge creates a bridge over r. Call Subscribe to attach
// it to osColl, and Run to start pumping worker notifications; both must
// run before any OS event can reach the reactor.
func NewNotificationBridge(r *reactor.Reactor, axColl ax.Collaborator) *NotificationBridge {
	return &NotificationBridge{
		reactor:       r,
		axColl:        axColl,
		notifications: make(chan worker.Notification, 256),
		logger:        logging.Get().With().Str("component", "bridge").Logger(),
	}
}

// Subscribe attaches b to osColl and seeds the reactor with the current
// screen configuration, matching what a later ScreenParametersChanged
// would deliver, before any such notification has fired.
func (b *NotificationBridge) Subscribe(osColl osnotify.Collaborator) (osnotify.Subscription, error) {
	screens, err := osColl.CurrentScreens()
	if err != nil {
		return nil, err
	}
	b.reactor.EnqueueEvent(reactor.Event{Kind: reactor.EventScreenParametersChanged, Screens: toReactorScreens(screens)})
	return osColl.Subscribe(b)
}

// Run pumps worker.Notifications onto the reactor until ctx is canceled.
// Call this on its own goroutine.
func (b *NotificationBridge) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-b.notifications:
			ev, ok := b.translateNotification(n)
			if !ok {
				b.logger.Warn().Int("pid", n.Pid).Int("kind", int(n.Kind)).Msg("bridge: dropping notification of unrecognized kind")
				continue
			}
			b.reactor.EnqueueEvent(ev)
		}
	}
}

// translateNotification maps a worker.Notification onto its reactor.Event
// equivalent. The second return is false for a worker.Notification.Kind this
// bridge doesn't recognize, which the caller must log and drop rather than
// guess a translation for — in particular it must never be treated as an
// EventApplicationTerminated, since an unrecognized notification says
// nothing about the app actually having exited.
func (b *NotificationBridge) translateNotification(n worker.Notification) (reactor.Event, bool) {
	switch n.Kind {
	case worker.NotificationAppActivated:
		return reactor.Event{Kind: reactor.EventApplicationActivated, Pid: n.Pid, MainWindowIndex: n.MainWindowIndex, HasMainWindow: n.HasMainWindow}, true
	case worker.NotificationAppDeactivated:
		return reactor.Event{Kind: reactor.EventApplicationDeactivated, Pid: n.Pid}, true
	case worker.NotificationMainWindowChanged:
		return reactor.Event{Kind: reactor.EventApplicationMainWindowChanged, Pid: n.Pid, MainWindowIndex: n.MainWindowIndex, HasMainWindow: n.HasMainWindow}, true
	case worker.NotificationWindowCreated:
		return reactor.Event{Kind: reactor.EventWindowCreated, Pid: n.Pid, WindowIndex: n.NewWindowIndex, Title: n.Title}, true
	case worker.NotificationWindowDestroyed:
		return reactor.Event{Kind: reactor.EventWindowDestroyed, Pid: n.Pid, WindowIndex: n.WindowIndex}, true
	case worker.NotificationFrameChanged:
		return reactor.Event{
			Kind:        reactor.EventWindowFrameChanged,
			Pid:         n.Pid,
			WindowIndex: n.WindowIndex,
			Frame:       layout.Rect{X: n.Frame.X, Y: n.Frame.Y, W: n.Frame.W, H: n.Frame.H},
			SeenTxid:    n.SeenTxid,
			Requested:   n.Requested,
		}, true
	default:
		return reactor.Event{}, false
	}
}

// --- osnotify.Observer ---

// ApplicationLaunched implements §2's bridge responsibility: the bridge,
// not the reactor, performs the blocking worker.Spawn call, then hands the
// reactor an already-running worker plus its pre-existing windows.
func (b *NotificationBridge) ApplicationLaunched(pid int, bundleID, name string) {
	handle, seeds, err := worker.Spawn(context.Background(), b.axColl, pid, bundleID, name, b.notifications)
	if err != nil {
		b.logger.Debug().Err(err).Int("pid", pid).Str("bundle", bundleID).Msg("bridge: worker spawn failed, app ignored")
		return
	}
	b.reactor.EnqueueEvent(reactor.Event{
		Kind:     reactor.EventApplicationLaunched,
		Pid:      pid,
		BundleID: bundleID,
		Name:     name,
		Handle:   handle,
		Seeds:    seeds,
	})
}

func (b *NotificationBridge) ApplicationTerminated(pid int) {
	b.reactor.EnqueueEvent(reactor.Event{Kind: reactor.EventApplicationTerminated, Pid: pid})
}

func (b *NotificationBridge) ApplicationActivated(pid int) {
	b.reactor.EnqueueEvent(reactor.Event{Kind: reactor.EventApplicationGloballyActivated, Pid: pid})
}

func (b *NotificationBridge) ApplicationDeactivated(pid int) {
	b.reactor.EnqueueEvent(reactor.Event{Kind: reactor.EventApplicationGloballyDeactivated, Pid: pid})
}

func (b *NotificationBridge) ActiveSpaceChanged(screens []osnotify.ScreenInfo) {
	b.reactor.EnqueueEvent(reactor.Event{Kind: reactor.EventSpaceChanged, Screens: toReactorScreens(screens)})
}

func (b *NotificationBridge) ScreenParametersChanged(screens []osnotify.ScreenInfo) {
	b.reactor.EnqueueEvent(reactor.Event{Kind: reactor.EventScreenParametersChanged, Screens: toReactorScreens(screens)})
}

// toReactorScreens converts the collaborator's screen list into the
// reactor's, synthesizing a stable ScreenId by slice index since
// osnotify.ScreenInfo carries no native per-display identifier and
// spec.md only requires a ScreenId be comparable for equality, not
// OS-stable across reconfigurations.
func toReactorScreens(screens []osnotify.ScreenInfo) []reactor.Screen {
	out := make([]reactor.Screen, len(screens))
	for i, s := range screens {
		out[i] = reactor.Screen{
			ID:      reactorScreenID(i),
			Frame:   layout.Rect{X: s.Frame.X, Y: s.Frame.Y, W: s.Frame.W, H: s.Frame.H},
			Visible: layout.Rect{X: s.Visible.X, Y: s.Visible.Y, W: s.Visible.W, H: s.Visible.H},
			Space:   spaceFromString(s.Space),
		}
	}
	return out
}

func reactorScreenID(index int) wm.ScreenId {
	return wm.ScreenId(fmt.Sprintf("screen-%d", index))
}

func spaceFromString(s string) wm.SpaceId { return wm.SpaceId(s) }
