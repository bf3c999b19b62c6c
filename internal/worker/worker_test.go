package worker_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/swellgo/internal/worker"
	"github.com/bnema/swellgo/pkg/ax"
	mock_ax "github.com/bnema/swellgo/pkg/ax/mocks"
)

const testTimeout = time.Second

func recvNotification(t *testing.T, ch <-chan worker.Notification) worker.Notification {
	t.Helper()
	select {
	case n := <-ch:
		return n
	case <-time.After(testTimeout):
		t.Fatal("timed out waiting for notification")
		return worker.Notification{}
	}
}

func expectNoNotification(t *testing.T, ch <-chan worker.Notification) {
	t.Helper()
	select {
	case n := <-ch:
		t.Fatalf("expected no notification, got %+v", n)
	case <-time.After(20 * time.Millisecond):
	}
}

// newStandardWindow builds a window mock whose identity stubs (Index,
// Role, Title) are fixed for the test's lifetime. Frame() is NOT stubbed
// here: tests that care about Frame()'s return sequence (most of them, since
// a worker re-reads geometry after every mutating request) must set their
// own ordered expectations, since a blanket AnyTimes() stub recorded here
// would intercept every later call ahead of a test's more specific ones.
func newStandardWindow(ctrl *gomock.Controller, index uint64) *mock_ax.MockWindow {
	w := mock_ax.NewMockWindow(ctrl)
	w.EXPECT().Index().Return(index).AnyTimes()
	w.EXPECT().Role().Return(ax.RoleWindow, ax.SubroleStandard, nil).AnyTimes()
	w.EXPECT().Title().Return("", nil).AnyTimes()
	return w
}

func TestSpawnFailsWhenApplicationByPidErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	collab := mock_ax.NewMockCollaborator(ctrl)
	collab.EXPECT().ApplicationByPid(42).Return(nil, assertionError{})

	handle, seeds, err := worker.Spawn(context.Background(), collab, 42, "com.example.app", "Example", make(chan worker.Notification, 8))

	assert.Error(t, err)
	assert.Nil(t, handle)
	assert.Nil(t, seeds)
}

func TestSpawnFailsWhenWindowsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	collab := mock_ax.NewMockCollaborator(ctrl)
	app := mock_ax.NewMockApplication(ctrl)
	collab.EXPECT().ApplicationByPid(42).Return(app, nil)
	app.EXPECT().Windows().Return(nil, assertionError{})

	handle, seeds, err := worker.Spawn(context.Background(), collab, 42, "com.example.app", "Example", make(chan worker.Notification, 8))

	assert.Error(t, err)
	assert.Nil(t, handle)
	assert.Nil(t, seeds)
}

func TestSpawnSeedsStandardWindowsAndSkipsOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	collab := mock_ax.NewMockCollaborator(ctrl)
	app := mock_ax.NewMockApplication(ctrl)
	sub := mock_ax.NewMockSubscription(ctrl)

	standard := newStandardWindow(ctrl, 1)
	standard.EXPECT().Frame().Return(ax.Frame{X: 0, Y: 0, W: 800, H: 600}, nil)

	dialog := mock_ax.NewMockWindow(ctrl)
	dialog.EXPECT().Role().Return(ax.RoleWindow, ax.SubroleDialog, nil).AnyTimes()

	collab.EXPECT().ApplicationByPid(42).Return(app, nil)
	app.EXPECT().Windows().Return([]ax.Window{standard, dialog}, nil)
	app.EXPECT().SetMessagingTimeout(gomock.Any()).Return(nil)
	app.EXPECT().Subscribe(gomock.Any()).Return(sub, nil)

	handle, seeds, err := worker.Spawn(context.Background(), collab, 42, "com.example.app", "Example", make(chan worker.Notification, 8))
	require.NoError(t, err)
	require.NotNil(t, handle)
	defer handle.Stop()

	require.Len(t, seeds, 1)
	assert.Equal(t, uint64(1), seeds[0].Index)
	assert.Equal(t, 42, handle.Pid())
}

func TestSetWindowFrameRequestUpdatesGeometryAndEmitsRequestedNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	collab := mock_ax.NewMockCollaborator(ctrl)
	app := mock_ax.NewMockApplication(ctrl)
	sub := mock_ax.NewMockSubscription(ctrl)
	win := newStandardWindow(ctrl, 1)
	win.EXPECT().Frame().Return(ax.Frame{X: 0, Y: 0, W: 400, H: 300}, nil) // seeded during Spawn

	newFrame := ax.Frame{X: 10, Y: 20, W: 500, H: 400}
	win.EXPECT().SetFrame(newFrame).Return(nil)
	win.EXPECT().Frame().Return(newFrame, nil) // read back after SetFrame

	collab.EXPECT().ApplicationByPid(42).Return(app, nil)
	app.EXPECT().Windows().Return([]ax.Window{win}, nil)
	app.EXPECT().SetMessagingTimeout(gomock.Any()).Return(nil)
	app.EXPECT().Subscribe(gomock.Any()).Return(sub, nil)

	outbound := make(chan worker.Notification, 8)
	handle, _, err := worker.Spawn(context.Background(), collab, 42, "com.example.app", "Example", outbound)
	require.NoError(t, err)
	defer handle.Stop()

	handle.Send(worker.Request{Kind: worker.RequestSetWindowFrame, WindowIndex: 1, Frame: newFrame, Txid: 7})

	n := recvNotification(t, outbound)
	assert.Equal(t, worker.NotificationFrameChanged, n.Kind)
	assert.Equal(t, uint64(1), n.WindowIndex)
	assert.Equal(t, newFrame, n.Frame)
	assert.Equal(t, uint64(7), n.SeenTxid)
	assert.True(t, n.Requested)
	assert.Equal(t, 42, n.Pid)
}

func TestRaiseOnlyActivatesWhenTokenTargetMatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	collab := mock_ax.NewMockCollaborator(ctrl)
	app := mock_ax.NewMockApplication(ctrl)
	sub := mock_ax.NewMockSubscription(ctrl)
	win := newStandardWindow(ctrl, 1)
	win.EXPECT().Frame().Return(ax.Frame{}, nil) // seeded during Spawn
	raised := make(chan struct{}, 1)
	win.EXPECT().Raise(gomock.Any()).DoAndReturn(func(time.Duration) error {
		raised <- struct{}{}
		return nil
	}).Times(1)

	collab.EXPECT().ApplicationByPid(42).Return(app, nil)
	app.EXPECT().Windows().Return([]ax.Window{win}, nil)
	app.EXPECT().SetMessagingTimeout(gomock.Any()).Return(nil)
	app.EXPECT().Subscribe(gomock.Any()).Return(sub, nil)

	handle, _, err := worker.Spawn(context.Background(), collab, 42, "com.example.app", "Example", make(chan worker.Notification, 8))
	require.NoError(t, err)
	defer handle.Stop()

	token := worker.NewRaiseToken()
	token.SetTarget(42)
	handle.Send(worker.Request{Kind: worker.RequestRaise, WindowIndex: 1, Token: token})

	// Waiting for the mocked Raise call gives a synchronization point
	// before the mock controller's expectations are checked on test teardown;
	// acquiring the token's mutex afterwards then waits for the worker's
	// raise() to release it.
	select {
	case <-raised:
	case <-time.After(testTimeout):
		t.Fatal("timed out waiting for the worker to raise the window")
	}
	token.TryActivate(99)
	token.Release()
}

func TestBeginAnimationSuppressesFrameDirtyNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	collab := mock_ax.NewMockCollaborator(ctrl)
	app := mock_ax.NewMockApplication(ctrl)
	sub := mock_ax.NewMockSubscription(ctrl)

	win := mock_ax.NewMockWindow(ctrl)
	win.EXPECT().Index().Return(uint64(1)).AnyTimes()
	win.EXPECT().Role().Return(ax.RoleWindow, ax.SubroleStandard, nil).AnyTimes()
	win.EXPECT().Title().Return("", nil).AnyTimes()
	win.EXPECT().Frame().Return(ax.Frame{X: 0, Y: 0, W: 100, H: 100}, nil) // seeded during Spawn

	collab.EXPECT().ApplicationByPid(42).Return(app, nil)
	app.EXPECT().Windows().Return([]ax.Window{win}, nil)
	app.EXPECT().SetMessagingTimeout(gomock.Any()).Return(nil)

	var observer ax.Observer
	app.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(o ax.Observer) (ax.Subscription, error) {
		observer = o
		return sub, nil
	})

	outbound := make(chan worker.Notification, 8)
	handle, _, err := worker.Spawn(context.Background(), collab, 42, "com.example.app", "Example", outbound)
	require.NoError(t, err)
	defer handle.Stop()

	handle.Send(worker.Request{Kind: worker.RequestBeginAnimation, WindowIndex: 1})
	time.Sleep(10 * time.Millisecond)

	observer.WindowResized(1)
	expectNoNotification(t, outbound)

	endFrame := ax.Frame{X: 0, Y: 0, W: 200, H: 200}
	win.EXPECT().Frame().Return(endFrame, nil)
	handle.Send(worker.Request{Kind: worker.RequestEndAnimation, WindowIndex: 1})

	n := recvNotification(t, outbound)
	assert.Equal(t, worker.NotificationFrameChanged, n.Kind)
	assert.Equal(t, endFrame, n.Frame)
	assert.True(t, n.Requested)
}

func TestWindowCreatedAndDestroyedNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	collab := mock_ax.NewMockCollaborator(ctrl)
	app := mock_ax.NewMockApplication(ctrl)
	sub := mock_ax.NewMockSubscription(ctrl)

	collab.EXPECT().ApplicationByPid(42).Return(app, nil)
	app.EXPECT().Windows().Return(nil, nil)
	app.EXPECT().SetMessagingTimeout(gomock.Any()).Return(nil)

	var observer ax.Observer
	app.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(o ax.Observer) (ax.Subscription, error) {
		observer = o
		return sub, nil
	})

	outbound := make(chan worker.Notification, 8)
	handle, seeds, err := worker.Spawn(context.Background(), collab, 42, "com.example.app", "Example", outbound)
	require.NoError(t, err)
	defer handle.Stop()
	assert.Empty(t, seeds)

	newWin := newStandardWindow(ctrl, 2)
	observer.WindowCreated(newWin)

	created := recvNotification(t, outbound)
	assert.Equal(t, worker.NotificationWindowCreated, created.Kind)
	assert.Equal(t, uint64(2), created.NewWindowIndex)

	observer.WindowDestroyed(2)
	destroyed := recvNotification(t, outbound)
	assert.Equal(t, worker.NotificationWindowDestroyed, destroyed.Kind)
	assert.Equal(t, uint64(2), destroyed.WindowIndex)
}

func TestActivatedAndDeactivatedNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	collab := mock_ax.NewMockCollaborator(ctrl)
	app := mock_ax.NewMockApplication(ctrl)
	sub := mock_ax.NewMockSubscription(ctrl)

	collab.EXPECT().ApplicationByPid(42).Return(app, nil)
	app.EXPECT().Windows().Return(nil, nil)
	app.EXPECT().SetMessagingTimeout(gomock.Any()).Return(nil)

	var observer ax.Observer
	app.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(o ax.Observer) (ax.Subscription, error) {
		observer = o
		return sub, nil
	})

	outbound := make(chan worker.Notification, 8)
	handle, _, err := worker.Spawn(context.Background(), collab, 42, "com.example.app", "Example", outbound)
	require.NoError(t, err)
	defer handle.Stop()

	observer.Activated(3, true)
	n := recvNotification(t, outbound)
	assert.Equal(t, worker.NotificationAppActivated, n.Kind)
	assert.Equal(t, uint64(3), n.MainWindowIndex)
	assert.True(t, n.HasMainWindow)

	observer.Deactivated()
	n = recvNotification(t, outbound)
	assert.Equal(t, worker.NotificationAppDeactivated, n.Kind)
}

type assertionError struct{}

func (assertionError) Error() string { return "mock failure" }
