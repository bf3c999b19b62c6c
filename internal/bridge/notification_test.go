package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/bnema/swellgo/internal/layout"
	"github.com/bnema/swellgo/internal/reactor"
	"github.com/bnema/swellgo/internal/worker"
	"github.com/bnema/swellgo/pkg/ax"
	mock_ax "github.com/bnema/swellgo/pkg/ax/mocks"
	"github.com/bnema/swellgo/pkg/osnotify"
	mock_osnotify "github.com/bnema/swellgo/pkg/osnotify/mocks"
)

func TestTranslateNotificationMapsEveryKind(t *testing.T) {
	b := NewNotificationBridge(reactor.New(reactor.ConfigSnapshot{}, nil), nil)

	cases := []struct {
		name string
		in   worker.Notification
		want reactor.EventKind
	}{
		{"activated", worker.Notification{Kind: worker.NotificationAppActivated, Pid: 1, MainWindowIndex: 2, HasMainWindow: true}, reactor.EventApplicationActivated},
		{"deactivated", worker.Notification{Kind: worker.NotificationAppDeactivated, Pid: 1}, reactor.EventApplicationDeactivated},
		{"main window changed", worker.Notification{Kind: worker.NotificationMainWindowChanged, Pid: 1, MainWindowIndex: 3, HasMainWindow: true}, reactor.EventApplicationMainWindowChanged},
		{"window created", worker.Notification{Kind: worker.NotificationWindowCreated, Pid: 1, NewWindowIndex: 4, Title: "new"}, reactor.EventWindowCreated},
		{"window destroyed", worker.Notification{Kind: worker.NotificationWindowDestroyed, Pid: 1, WindowIndex: 4}, reactor.EventWindowDestroyed},
		{"frame changed", worker.Notification{Kind: worker.NotificationFrameChanged, Pid: 1, WindowIndex: 4, Frame: ax.Frame{X: 1, Y: 2, W: 3, H: 4}, SeenTxid: 9, Requested: true}, reactor.EventWindowFrameChanged},
	}

	for _, tc := range cases {
		ev, ok := b.translateNotification(tc.in)
		assert.True(t, ok, tc.name)
		assert.Equal(t, tc.want, ev.Kind, tc.name)
		assert.Equal(t, tc.in.Pid, ev.Pid, tc.name)
	}
}

func TestTranslateNotificationUnknownKindIsIgnored(t *testing.T) {
	b := NewNotificationBridge(reactor.New(reactor.ConfigSnapshot{}, nil), nil)

	_, ok := b.translateNotification(worker.Notification{Kind: worker.NotificationKind(99), Pid: 1})
	assert.False(t, ok, "unrecognized notification kind must not translate to any event")
}

func TestTranslateNotificationFrameChangedCarriesGeometryAndTxid(t *testing.T) {
	b := NewNotificationBridge(reactor.New(reactor.ConfigSnapshot{}, nil), nil)

	n := worker.Notification{
		Kind:        worker.NotificationFrameChanged,
		Pid:         7,
		WindowIndex: 2,
		Frame:       ax.Frame{X: 10, Y: 20, W: 300, H: 400},
		SeenTxid:    5,
		Requested:   true,
	}
	ev, ok := b.translateNotification(n)

	assert.True(t, ok)
	assert.Equal(t, layout.Rect{X: 10, Y: 20, W: 300, H: 400}, ev.Frame)
	assert.EqualValues(t, 5, ev.SeenTxid)
	assert.True(t, ev.Requested)
	assert.EqualValues(t, 2, ev.WindowIndex)
}

func TestToReactorScreensSynthesizesIdsByIndex(t *testing.T) {
	in := []osnotify.ScreenInfo{
		{Frame: osnotify.Rect{X: 0, Y: 0, W: 1920, H: 1080}, Visible: osnotify.Rect{X: 0, Y: 25, W: 1920, H: 1055}, Space: "space-a"},
		{Frame: osnotify.Rect{X: 1920, Y: 0, W: 1080, H: 1920}, Visible: osnotify.Rect{X: 1920, Y: 0, W: 1080, H: 1920}, Space: "space-b"},
	}

	out := toReactorScreens(in)
	require := assert.New(t)
	require.Len(out, 2)
	require.Equal("screen-0", string(out[0].ID))
	require.Equal("screen-1", string(out[1].ID))
	require.Equal(layout.Rect{X: 0, Y: 0, W: 1920, H: 1080}, out[0].Frame)
	require.Equal(layout.Rect{X: 0, Y: 25, W: 1920, H: 1055}, out[0].Visible)
	require.Equal("space-a", string(out[0].Space))
	require.Equal("space-b", string(out[1].Space))
}

func TestSubscribeSeedsScreensBeforeSubscribing(t *testing.T) {
	ctrl := gomock.NewController(t)
	osColl := mock_osnotify.NewMockCollaborator(ctrl)
	sub := mock_osnotify.NewMockSubscription(ctrl)

	screens := []osnotify.ScreenInfo{{Frame: osnotify.Rect{W: 800, H: 600}, Space: "main"}}
	osColl.EXPECT().CurrentScreens().Return(screens, nil)
	osColl.EXPECT().Subscribe(gomock.Any()).Return(sub, nil)

	r := reactor.New(reactor.ConfigSnapshot{}, nil)
	b := NewNotificationBridge(r, nil)

	got, err := b.Subscribe(osColl)
	assert.NoError(t, err)
	assert.Equal(t, sub, got)
}

func TestSubscribePropagatesCurrentScreensError(t *testing.T) {
	ctrl := gomock.NewController(t)
	osColl := mock_osnotify.NewMockCollaborator(ctrl)
	osColl.EXPECT().CurrentScreens().Return(nil, osnotify.ErrUnsupportedPlatform)

	r := reactor.New(reactor.ConfigSnapshot{}, nil)
	b := NewNotificationBridge(r, nil)

	_, err := b.Subscribe(osColl)
	assert.ErrorIs(t, err, osnotify.ErrUnsupportedPlatform)
}

func TestApplicationLaunchedIgnoredWhenWorkerSpawnFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	axColl := mock_ax.NewMockCollaborator(ctrl)
	axColl.EXPECT().ApplicationByPid(42).Return(nil, assertSpawnErr{})

	r := reactor.New(reactor.ConfigSnapshot{}, nil)
	b := NewNotificationBridge(r, axColl)

	// Must not panic and must not enqueue an EventApplicationLaunched; there
	// is no public way to observe "nothing was enqueued" short of racing the
	// reactor's own channel, so this only asserts the call completes cleanly.
	b.ApplicationLaunched(42, "com.example.failing", "Failing")
}

type assertSpawnErr struct{}

func (assertSpawnErr) Error() string { return "spawn failed" }
