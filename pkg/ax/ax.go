// Package ax is the contract for the OS accessibility/window collaborator
// consumed by internal/worker (§6): enumerating applications, listing and
// manipulating their windows, and subscribing to per-element
// notifications. The real binding lives behind a platform build tag
// (ax_darwin.go); ax_stub.go backs every other platform so the rest of the
// module always compiles.
package ax

import (
	"errors"
	"time"
)

// ErrUnsupportedPlatform is returned by the stub build wherever the real
// accessibility APIs would be called.
var ErrUnsupportedPlatform = errors.New("ax: accessibility collaborator unavailable on this platform")

// Standard window role/subrole values, named the way the OS reports them
// (AX-prefixed) so workers can compare without a translation table.
const (
	RoleWindow        = "AXWindow"
	SubroleStandard   = "AXStandardWindow"
	SubroleDialog     = "AXDialog"
	SubroleSystemDlg  = "AXSystemDialog"
	SubroleFloating   = "AXFloatingWindow"
)

// Frame is an axis-aligned rectangle in the manager's top-left-origin
// coordinate system (§3, §6 "Coordinate system").
type Frame struct {
	X, Y, W, H int
}

// AppInfo is the static metadata Collaborator.RunningApplications returns
// for one running application.
type AppInfo struct {
	Pid      int
	BundleID string
	Name     string
}

// Window is a handle to one application window. Index is the per-process
// nonzero identity the worker pairs with its owning pid to form a
// wm.WindowId.
type Window interface {
	Index() uint64
	Role() (role, subrole string, err error)
	Title() (string, error)
	Frame() (Frame, error)
	SetFrame(Frame) error
	SetPosition(x, y int) error
	// Raise activates the window, aborting if timeout elapses before the
	// OS call returns (§4.7's bounded messaging timeout).
	Raise(timeout time.Duration) error
}

// Observer receives every per-element notification an Application
// subscription delivers. Per §9's cyclic-observer design note, the worker
// that owns this Observer also owns the Subscription returned from
// Application.Subscribe; the observer must not outlive the run-loop
// invocation that delivers to it.
type Observer interface {
	WindowCreated(w Window)
	WindowDestroyed(index uint64)
	WindowMoved(index uint64)
	WindowResized(index uint64)
	WindowMinimized(index uint64)
	WindowDeminimized(index uint64)
	TitleChanged(index uint64, title string)
	Activated(mainWindowIndex uint64, hasMain bool)
	Deactivated()
	MainWindowChanged(index uint64, hasMain bool)
}

// Subscription lets a worker detach its Observer; internal/worker does so
// when its run loop stops. Move/resize suppression during a bracketed
// animation (§4.5's BeginWindowAnimation/EndWindowAnimation) is done by
// the worker itself and keeps the subscription attached.
type Subscription interface {
	Unsubscribe()
}

// Application is a handle to one running application's accessibility
// element.
type Application interface {
	Pid() int
	BundleID() string
	Name() string
	Windows() ([]Window, error)
	SetMessagingTimeout(time.Duration) error
	Subscribe(Observer) (Subscription, error)
}

// Collaborator is the top-level accessibility/window binding a worker
// dials to obtain an Application handle.
type Collaborator interface {
	RunningApplications() ([]AppInfo, error)
	ApplicationByPid(pid int) (Application, error)
}
