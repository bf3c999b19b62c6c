// Package osnotify is the contract for the OS-global notification
// collaborator (§6) consumed by internal/bridge's notification bridge:
// application lifecycle and activation, active-space changes, and screen
// parameter changes, delivered process-wide rather than per-application.
package osnotify

import "errors"

// ErrUnsupportedPlatform is returned by the stub build.
var ErrUnsupportedPlatform = errors.New("osnotify: global notification collaborator unavailable on this platform")

// Rect mirrors ax.Frame without importing pkg/ax, keeping the two
// collaborator contracts independent of each other.
type Rect struct {
	X, Y, W, H int
}

// ScreenInfo is one display's geometry and current space, as reported by
// the screen-parameters-changed notification.
type ScreenInfo struct {
	Frame   Rect
	Visible Rect
	Space   string
}

// Observer receives every OS-global event (§6). The notification bridge
// is the one Observer implementation, translating each callback directly
// into a reactor event.
type Observer interface {
	ApplicationLaunched(pid int, bundleID, name string)
	ApplicationTerminated(pid int)
	ApplicationActivated(pid int)
	ApplicationDeactivated(pid int)
	ActiveSpaceChanged(screens []ScreenInfo)
	ScreenParametersChanged(screens []ScreenInfo)
}

// Subscription detaches an Observer from the global notification center.
type Subscription interface {
	Unsubscribe()
}

// Collaborator is the top-level global-notification binding.
type Collaborator interface {
	// Subscribe registers o for every event kind above and runs its
	// delivery on the calling goroutine's run loop (the bridge is
	// responsible for running this on the process's main thread, per §5).
	Subscribe(o Observer) (Subscription, error)
	// CurrentScreens returns the present screen configuration (main-screen
	// first), the same shape ScreenParametersChanged delivers, for the
	// bridge's startup snapshot before any change notification arrives.
	CurrentScreens() ([]ScreenInfo, error)
}
