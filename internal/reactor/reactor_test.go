package reactor_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/swellgo/internal/layout"
	"github.com/bnema/swellgo/internal/reactor"
	"github.com/bnema/swellgo/internal/worker"
	"github.com/bnema/swellgo/internal/wm"
	"github.com/bnema/swellgo/pkg/ax"
	mock_ax "github.com/bnema/swellgo/pkg/ax/mocks"
)

const (
	testSpace   = wm.SpaceId("space-main")
	replyWindow = time.Second
)

func testConfig() reactor.ConfigSnapshot {
	return reactor.ConfigSnapshot{AnimationEnabled: false}
}

// newTestApp spawns a worker.Handle backed by a mocked accessibility
// collaborator exposing one standard window, the way internal/bridge does
// for a real ApplicationLaunched notification.
func newTestApp(t *testing.T, ctrl *gomock.Controller, pid int, windowIndex uint64, setFrameCalls *atomic.Int32) (*worker.Handle, []worker.WindowSeed, *mock_ax.MockWindow) {
	t.Helper()

	collab := mock_ax.NewMockCollaborator(ctrl)
	app := mock_ax.NewMockApplication(ctrl)
	sub := mock_ax.NewMockSubscription(ctrl)
	win := mock_ax.NewMockWindow(ctrl)

	win.EXPECT().Index().Return(windowIndex).AnyTimes()
	win.EXPECT().Role().Return(ax.RoleWindow, ax.SubroleStandard, nil).AnyTimes()
	win.EXPECT().Title().Return("win", nil).AnyTimes()
	win.EXPECT().Frame().Return(ax.Frame{X: 0, Y: 0, W: 400, H: 300}, nil).AnyTimes()
	win.EXPECT().SetPosition(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	win.EXPECT().SetFrame(gomock.Any()).DoAndReturn(func(ax.Frame) error {
		if setFrameCalls != nil {
			setFrameCalls.Add(1)
		}
		return nil
	}).AnyTimes()

	collab.EXPECT().ApplicationByPid(pid).Return(app, nil)
	app.EXPECT().Windows().Return([]ax.Window{win}, nil)
	app.EXPECT().SetMessagingTimeout(gomock.Any()).Return(nil)
	app.EXPECT().Subscribe(gomock.Any()).Return(sub, nil)

	handle, seeds, err := worker.Spawn(context.Background(), collab, pid, "com.example.app", "Example", make(chan worker.Notification, 64))
	require.NoError(t, err)
	return handle, seeds, win
}

func newTestReactor(t *testing.T) (*reactor.Reactor, context.CancelFunc) {
	t.Helper()
	r := reactor.New(testConfig(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = r.Run(ctx) }()
	return r, cancel
}

func setScreen(r *reactor.Reactor) {
	r.EnqueueEvent(reactor.Event{
		Kind: reactor.EventScreenParametersChanged,
		Screens: []reactor.Screen{{
			ID:      wm.ScreenId("screen-0"),
			Frame:   layout.Rect{X: 0, Y: 0, W: 1000, H: 800},
			Visible: layout.Rect{X: 0, Y: 0, W: 1000, H: 800},
			Space:   testSpace,
		}},
	})
}

func dumpTree(t *testing.T, r *reactor.Reactor, space wm.SpaceId) reactor.Response {
	t.Helper()
	reply := make(chan reactor.Response, 1)
	r.EnqueueEvent(reactor.Event{
		Kind: reactor.EventCommand,
		Command: reactor.Command{
			Kind:  reactor.CmdDumpTree,
			Space: space,
			Reply: reply,
		},
	})
	select {
	case resp := <-reply:
		return resp
	case <-time.After(replyWindow):
		t.Fatal("timed out waiting for CmdDumpTree reply")
		return reactor.Response{}
	}
}

func TestApplicationLaunchedAddsWindowsToMainSpace(t *testing.T) {
	ctrl := gomock.NewController(t)
	r, cancel := newTestReactor(t)
	defer cancel()

	setScreen(r)
	handle, seeds, _ := newTestApp(t, ctrl, 100, 1, nil)
	r.EnqueueEvent(reactor.Event{Kind: reactor.EventApplicationLaunched, Pid: 100, BundleID: "com.example.app", Name: "Example", Handle: handle, Seeds: seeds})

	resp := dumpTree(t, r, testSpace)
	require.True(t, resp.OK)
	assert.Contains(t, resp.Tree, "100.1")
}

func TestApplicationTerminatedRemovesWindows(t *testing.T) {
	ctrl := gomock.NewController(t)
	r, cancel := newTestReactor(t)
	defer cancel()

	setScreen(r)
	handle, seeds, _ := newTestApp(t, ctrl, 100, 1, nil)
	r.EnqueueEvent(reactor.Event{Kind: reactor.EventApplicationLaunched, Pid: 100, BundleID: "com.example.app", Name: "Example", Handle: handle, Seeds: seeds})
	_ = dumpTree(t, r, testSpace) // barrier: wait for launch to be processed

	r.EnqueueEvent(reactor.Event{Kind: reactor.EventApplicationTerminated, Pid: 100})

	resp := dumpTree(t, r, testSpace)
	require.True(t, resp.OK)
	assert.NotContains(t, resp.Tree, "100.1")
}

func TestCmdHelloRepliesWithIdentity(t *testing.T) {
	r, cancel := newTestReactor(t)
	defer cancel()

	reply := make(chan reactor.Response, 1)
	r.EnqueueEvent(reactor.Event{Kind: reactor.EventCommand, Command: reactor.Command{Kind: reactor.CmdHello, Reply: reply}})

	select {
	case resp := <-reply:
		assert.True(t, resp.OK)
		assert.Equal(t, "swellgo", resp.Hello)
	case <-time.After(replyWindow):
		t.Fatal("timed out waiting for CmdHello reply")
	}
}

func TestCmdDumpTreeUnknownSpaceReportsError(t *testing.T) {
	r, cancel := newTestReactor(t)
	defer cancel()

	resp := dumpTree(t, r, wm.SpaceId("nonexistent"))
	assert.False(t, resp.OK)
	assert.NotEmpty(t, resp.Error)
}

func TestWindowFrameChangedDiscardsStaleAndNoOpFeedback(t *testing.T) {
	ctrl := gomock.NewController(t)
	var setFrameCalls atomic.Int32

	r, cancel := newTestReactor(t)
	defer cancel()

	setScreen(r)
	handle, seeds, _ := newTestApp(t, ctrl, 100, 1, &setFrameCalls)
	r.EnqueueEvent(reactor.Event{Kind: reactor.EventApplicationLaunched, Pid: 100, BundleID: "com.example.app", Name: "Example", Handle: handle, Seeds: seeds})
	_ = dumpTree(t, r, testSpace) // barrier

	require.Eventually(t, func() bool { return setFrameCalls.Load() == 1 }, replyWindow, time.Millisecond,
		"expected exactly one SetFrame call from the initial placement")

	// Stale feedback: SeenTxid (0) is behind the window's LastSentTxid (1)
	// from the initial placement above, so this must be discarded outright.
	r.EnqueueEvent(reactor.Event{
		Kind: reactor.EventWindowFrameChanged, Pid: 100, WindowIndex: 1,
		Frame: layout.Rect{X: 5, Y: 5, W: 100, H: 100}, SeenTxid: 0, Requested: false,
	})
	_ = dumpTree(t, r, testSpace) // barrier
	assert.EqualValues(t, 1, setFrameCalls.Load(), "stale feedback must not trigger another placement")

	// No-op feedback: same frame the worker seeded at launch, not stale,
	// but unchanged — must also be discarded without a relayout.
	r.EnqueueEvent(reactor.Event{
		Kind: reactor.EventWindowFrameChanged, Pid: 100, WindowIndex: 1,
		Frame: layout.Rect{X: 0, Y: 0, W: 400, H: 300}, SeenTxid: 1, Requested: false,
	})
	_ = dumpTree(t, r, testSpace) // barrier
	assert.EqualValues(t, 1, setFrameCalls.Load(), "an unchanged observed frame must not trigger another placement")
}

func TestCmdMoveFocusDispatchesRaiseToTargetWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	r, cancel := newTestReactor(t)
	defer cancel()

	setScreen(r)

	handleA, seedsA, _ := newTestApp(t, ctrl, 100, 1, nil)
	r.EnqueueEvent(reactor.Event{Kind: reactor.EventApplicationLaunched, Pid: 100, BundleID: "a", Name: "A", Handle: handleA, Seeds: seedsA})
	_ = dumpTree(t, r, testSpace) // barrier

	raised := make(chan struct{}, 1)
	collabB := mock_ax.NewMockCollaborator(ctrl)
	appB := mock_ax.NewMockApplication(ctrl)
	subB := mock_ax.NewMockSubscription(ctrl)
	winB := mock_ax.NewMockWindow(ctrl)
	winB.EXPECT().Index().Return(uint64(1)).AnyTimes()
	winB.EXPECT().Role().Return(ax.RoleWindow, ax.SubroleStandard, nil).AnyTimes()
	winB.EXPECT().Title().Return("win", nil).AnyTimes()
	winB.EXPECT().Frame().Return(ax.Frame{X: 0, Y: 0, W: 400, H: 300}, nil).AnyTimes()
	winB.EXPECT().SetPosition(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	winB.EXPECT().SetFrame(gomock.Any()).Return(nil).AnyTimes()
	winB.EXPECT().Raise(gomock.Any()).DoAndReturn(func(time.Duration) error {
		raised <- struct{}{}
		return nil
	}).Times(1)
	collabB.EXPECT().ApplicationByPid(200).Return(appB, nil)
	appB.EXPECT().Windows().Return([]ax.Window{winB}, nil)
	appB.EXPECT().SetMessagingTimeout(gomock.Any()).Return(nil)
	appB.EXPECT().Subscribe(gomock.Any()).Return(subB, nil)
	handleB, seedsB, err := worker.Spawn(context.Background(), collabB, 200, "b", "B", make(chan worker.Notification, 64))
	require.NoError(t, err)

	r.EnqueueEvent(reactor.Event{Kind: reactor.EventApplicationLaunched, Pid: 200, BundleID: "b", Name: "B", Handle: handleB, Seeds: seedsB})
	_ = dumpTree(t, r, testSpace) // barrier

	// Self-report 100.1 as the active main window, which selects its leaf
	// the way a real accessibility activation notification would.
	r.EnqueueEvent(reactor.Event{Kind: reactor.EventApplicationActivated, Pid: 100, MainWindowIndex: 1, HasMainWindow: true})
	_ = dumpTree(t, r, testSpace) // barrier

	// Both windows are children of the main space's root (default Horizontal
	// kind); the focused selection now sits at 100.1, so moving right
	// should raise 200.1.
	r.EnqueueEvent(reactor.Event{
		Kind: reactor.EventCommand,
		Command: reactor.Command{
			Kind:      reactor.CmdMoveFocus,
			Direction: wm.Right,
			Space:     testSpace,
		},
	})

	select {
	case <-raised:
	case <-time.After(replyWindow):
		t.Fatal("timed out waiting for the target window to be raised")
	}
}
