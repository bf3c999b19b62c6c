package reactor

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/swellgo/internal/logging"
	"github.com/bnema/swellgo/internal/metrics"
	"github.com/bnema/swellgo/internal/wm"
	"github.com/bnema/swellgo/internal/worker"
	"github.com/bnema/swellgo/pkg/anim"
)

// Reactor is §4.6's single event loop: it owns app-worker handles, window
// metadata, screen configuration, frontmost/main-window tracking, the
// raise token, and the LayoutManager, and drives the animation
// collaborator. Every field below is touched only from Run's goroutine.
type Reactor struct {
	events chan Event

	manager *wm.LayoutManager
	apps    map[int]*AppState
	windows map[wm.WindowId]*WindowState
	screens []Screen

	globalFrontmost int // 0 means none
	frontmostPid    int // 0 means none; see §4.8

	raiseToken *worker.RaiseToken
	runner     *anim.Runner
	cfg        ConfigSnapshot

	timing      *metrics.Timing
	metricsSink metrics.Sink
	logger      zerolog.Logger
}

// New creates a Reactor. timing may be nil (CmdShowTiming then reports no
// samples) when the config's EnableTimingMetrics is off; the reactor
// always records through metricsSink so instrumentation call sites never
// need a config branch (metrics.NoopSink when timing is nil).
func New(cfg ConfigSnapshot, timing *metrics.Timing) *Reactor {
	var sink metrics.Sink = metrics.NoopSink{}
	if timing != nil {
		sink = timing
	}
	return &Reactor{
		events:      make(chan Event, 256),
		manager:     wm.New(),
		apps:        make(map[int]*AppState),
		windows:     make(map[wm.WindowId]*WindowState),
		raiseToken:  worker.NewRaiseToken(),
		runner:      newRunnerFromConfig(cfg),
		cfg:         cfg,
		timing:      timing,
		metricsSink: sink,
		logger:      logging.Get().With().Str("component", "reactor").Logger(),
	}
}

// newRunnerFromConfig builds the anim.Runner matching cfg, shared between
// New and CmdConfigReload so a config reload rebuilds the runner from the
// exact same construction path the reactor started with.
func newRunnerFromConfig(cfg ConfigSnapshot) *anim.Runner {
	return anim.NewRunner(time.Duration(cfg.AnimationMS)*time.Millisecond, cfg.AnimationFPS, cfg.EaseExponent)
}

// Events returns the send side of the reactor's inbound channel. A direct
// send on it blocks while the channel is full; the bridges and the debug
// socket listener use EnqueueEvent instead, which spills a full channel's
// send onto a short-lived goroutine, as internal/worker.Handle.Send does.
func (r *Reactor) Events() chan<- Event { return r.events }

// EnqueueEvent sends ev, spilling to a goroutine if the channel is
// momentarily full. Exposed so callers that already hold an Event value
// (rather than building one against the raw channel) get the same
// non-blocking guarantee without reaching into the channel directly.
func (r *Reactor) EnqueueEvent(ev Event) {
	select {
	case r.events <- ev:
	default:
		go func() { r.events <- ev }()
	}
}

// Run consumes events strictly in order until ctx is canceled or the
// inbound channel is closed, per §5: the reactor blocks only on this
// channel, never on any OS call or worker reply.
func (r *Reactor) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-r.events:
			if !ok {
				return nil
			}
			r.dispatch(ctx, ev)
		}
	}
}

func (r *Reactor) dispatch(ctx context.Context, ev Event) {
	start := time.Now()
	var eventName string

	switch ev.Kind {
	case EventApplicationLaunched:
		eventName = "ApplicationLaunched"
		r.handleApplicationLaunched(ev)
		r.relayout(ctx, false)
	case EventApplicationTerminated:
		eventName = "ApplicationTerminated"
		r.handleApplicationTerminated(ev)
		r.relayout(ctx, false)
	case EventApplicationActivated:
		eventName = "ApplicationActivated"
		r.handleApplicationActivated(ev)
	case EventApplicationDeactivated:
		eventName = "ApplicationDeactivated"
		r.handleApplicationDeactivated(ev)
	case EventApplicationGloballyActivated:
		eventName = "ApplicationGloballyActivated"
		r.globalFrontmost = ev.Pid
		r.recomputeFrontmost()
	case EventApplicationGloballyDeactivated:
		eventName = "ApplicationGloballyDeactivated"
		if r.globalFrontmost == ev.Pid {
			r.globalFrontmost = 0
		}
		r.recomputeFrontmost()
	case EventApplicationMainWindowChanged:
		eventName = "ApplicationMainWindowChanged"
		r.handleApplicationMainWindowChanged(ev)
	case EventWindowCreated:
		eventName = "WindowCreated"
		r.handleWindowCreated(ev)
		r.relayout(ctx, false)
	case EventWindowDestroyed:
		eventName = "WindowDestroyed"
		r.handleWindowDestroyed(ev)
		r.relayout(ctx, false)
	case EventWindowFrameChanged:
		eventName = "WindowFrameChanged"
		r.handleWindowFrameChanged(ctx, ev)
	case EventScreenParametersChanged:
		eventName = "ScreenParametersChanged"
		r.screens = ev.Screens
		r.relayout(ctx, false)
	case EventSpaceChanged:
		eventName = "SpaceChanged"
		r.screens = ev.Screens
		r.relayout(ctx, false)
	case EventCommand:
		eventName = "Command"
		r.handleCommand(ctx, ev.Command)
	}

	r.metricsSink.Record(metrics.Sample{
		Event:           eventName,
		EventToDispatch: 0, // bridges stamp no send time today; reserved for a future send-side timestamp.
		Handle:          time.Since(start),
		At:              start,
	})
}

func (r *Reactor) mainSpace() (wm.SpaceId, bool) {
	if len(r.screens) == 0 {
		return "", false
	}
	return r.screens[0].Space, true
}

func (r *Reactor) screenForSpace(space wm.SpaceId) (Screen, bool) {
	for _, s := range r.screens {
		if s.Space == space {
			return s, true
		}
	}
	return Screen{}, false
}

func (r *Reactor) screenForWindow(wid wm.WindowId) (Screen, bool) {
	node, ok := r.manager.NodeOf(wid)
	if !ok {
		return Screen{}, false
	}
	space, ok := r.manager.SpaceOf(node)
	if !ok {
		return Screen{}, false
	}
	return r.screenForSpace(space)
}
