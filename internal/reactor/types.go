// Package reactor implements the single-threaded event loop (§4.6): the
// one place every app-worker notification, OS-global notification, hotkey
// press, and debug-socket query is serialized, diffed against the layout
// tree, and turned into outgoing worker requests. Outside tests, it and
// internal/bridge are the only packages that import both internal/wm and
// internal/worker.
package reactor

import (
	"github.com/bnema/swellgo/internal/layout"
	"github.com/bnema/swellgo/internal/wm"
	"github.com/bnema/swellgo/internal/worker"
)

// EventKind names one of the reactor's inbound event shapes (§4.6).
type EventKind int

const (
	EventApplicationLaunched EventKind = iota
	EventApplicationTerminated
	EventApplicationActivated
	EventApplicationDeactivated
	EventApplicationGloballyActivated
	EventApplicationGloballyDeactivated
	EventApplicationMainWindowChanged
	EventWindowCreated
	EventWindowDestroyed
	EventWindowFrameChanged
	EventScreenParametersChanged
	EventSpaceChanged
	EventCommand
)

// Event is one reactor-inbound occurrence. As with worker.Request/
// Notification, only the fields relevant to Kind are populated.
type Event struct {
	Kind EventKind

	Pid      int
	BundleID string
	Name     string

	// EventApplicationLaunched: the worker the bridge already spawned (the
	// bridge, not the reactor, performs the blocking accessibility calls —
	// see §5's "reactor never blocks on any OS call") and the windows it
	// found already open.
	Handle *worker.Handle
	Seeds  []worker.WindowSeed

	// EventApplicationActivated/Deactivated (self-reported) and
	// EventApplicationMainWindowChanged.
	MainWindowIndex uint64
	HasMainWindow   bool

	// EventWindowCreated
	WindowIndex uint64
	Title       string

	// EventWindowFrameChanged
	Frame     layout.Rect
	SeenTxid  uint64
	Requested bool

	// EventScreenParametersChanged, EventSpaceChanged
	Screens []Screen

	// EventCommand
	Command Command
}

// CommandKind names one hotkey- or debug-socket-driven command (§6's
// "illustrative command surface", §9's supplemented Hello/ShowTiming/
// Debug).
type CommandKind int

const (
	CmdHello CommandKind = iota
	CmdMoveFocus
	CmdMoveNode
	CmdSplit
	CmdGroup
	CmdUngroup
	CmdAscend
	CmdDescend
	CmdShuffle
	CmdDebugDump
	CmdDumpTree
	CmdShowTiming
	CmdConfigReload
)

// Command is one dispatched command, optionally carrying a reply channel
// for debug-socket-originated requests that expect a response (§6's
// "Command surface"; SPEC_FULL's added debug socket collaborator).
type Command struct {
	Kind        CommandKind
	Direction   wm.Direction
	Orientation layout.Kind
	Space       wm.SpaceId

	// NewConfig is populated only for CmdConfigReload.
	NewConfig *ConfigSnapshot

	// Reply, if non-nil, receives exactly one Response before the command
	// handler returns. Buffered by the sender so the reactor never blocks
	// writing to it.
	Reply chan Response
}

// Response answers a Command.Reply. It mirrors internal/debugproto's wire
// shape; internal/reactor/debug.go, in this package, translates it into a
// debugproto.Response for debug-socket clients.
type Response struct {
	OK      bool
	Error   string
	Timing  *TimingSummary
	Tree    string
	Hello   string
}

// TimingSummary mirrors metrics.Summary, decoupling reactor's public
// Response shape from the ring buffer's internal package.
type TimingSummary struct {
	Count           int
	MeanDispatchNS  int64
	MaxDispatchNS   int64
	MeanHandleNS    int64
	MaxHandleNS     int64
	TotalAnimFrames int
}

// ConfigSnapshot is the subset of *config.Config the reactor's hot path
// consults. internal/cli/cmd's toSnapshot builds it from *config.Config so
// this package doesn't need to import internal/config for these five fields.
type ConfigSnapshot struct {
	OuterGapPx       int
	AnimationEnabled bool
	AnimationMS      int
	AnimationFPS     int
	EaseExponent     float64
}

// Screen is the reactor-owned per-display record (§3): rectangle, visible
// rectangle (screen minus system furniture), and current space, ordered
// main-screen-first.
type Screen struct {
	ID      wm.ScreenId
	Frame   layout.Rect
	Visible layout.Rect
	Space   wm.SpaceId
}

// WindowState is the reactor-owned per-window record (§3).
type WindowState struct {
	Title            string
	FrameLastRead    layout.Rect
	FrameLastWritten layout.Rect
	LastSentTxid     uint64
	// everWritten distinguishes "never targeted by a layout pass" (so the
	// next relayout treats it as a newly-appearing window per §4.6's
	// animation-start size jump) from a legitimate zero-value rectangle.
	everWritten bool
}

// AppState is the reactor-owned per-application record (§3).
type AppState struct {
	Handle   *worker.Handle
	BundleID string
	Name     string

	// MainWindow/HasMainWindow is this app's self-reported main window, set
	// by EventApplicationActivated/EventApplicationMainWindowChanged.
	MainWindow    uint64
	HasMainWindow bool

	// selfFrontmost is this app's own most recent activation report (§4.8).
	selfFrontmost bool
}
