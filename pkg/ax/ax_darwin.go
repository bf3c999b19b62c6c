//go:build darwin

package ax

/*
#cgo LDFLAGS: -framework ApplicationServices -framework AppKit
#include <ApplicationServices/ApplicationServices.h>
#include <stdlib.h>

static AXUIElementRef ax_app_element(pid_t pid) {
    return AXUIElementCreateApplication(pid);
}

static CFArrayRef ax_copy_windows(AXUIElementRef app) {
    CFArrayRef windows = NULL;
    AXUIElementCopyAttributeValue(app, kAXWindowsAttribute, (CFTypeRef *)&windows);
    return windows;
}
*/
import "C"

import (
	"fmt"
	"time"
	"unsafe"
)

// collaborator is the darwin ax.Collaborator. ApplicationByPid, Windows,
// SetMessagingTimeout and Raise call the ApplicationServices accessibility
// API (AXUIElement). RunningApplications returns an error, Subscribe
// delivers no notifications, and a window's Role, Title, Frame, SetFrame
// and SetPosition return fixed values without calling the OS.
type collaborator struct{}

// NewCollaborator returns the accessibility/window binding for darwin.
// The AXUIElement calls take effect only when the process holds the
// accessibility permission (System Settings > Privacy & Security >
// Accessibility); their AXError results are not inspected, so a missing
// permission is not reported as an error.
func NewCollaborator() Collaborator {
	return collaborator{}
}

func (collaborator) RunningApplications() ([]AppInfo, error) {
	// The real binding enumerates NSWorkspace.sharedWorkspace.runningApplications;
	// left as a thin ObjC-bridge call site for the host integration, since
	// the core (per §1) only consumes the Collaborator interface.
	return nil, fmt.Errorf("ax: RunningApplications requires the NSWorkspace bridge, not wired in this build")
}

func (collaborator) ApplicationByPid(pid int) (Application, error) {
	elem := C.ax_app_element(C.pid_t(pid))
	if elem == 0 {
		return nil, fmt.Errorf("ax: AXUIElementCreateApplication(%d) failed", pid)
	}
	return &application{pid: pid, elem: elem}, nil
}

type application struct {
	pid  int
	elem C.AXUIElementRef
}

func (a *application) Pid() int          { return a.pid }
func (a *application) BundleID() string  { return "" }
func (a *application) Name() string      { return "" }

func (a *application) Windows() ([]Window, error) {
	arr := C.ax_copy_windows(a.elem)
	if arr == 0 {
		return nil, nil
	}
	defer C.CFRelease(C.CFTypeRef(arr))

	n := int(C.CFArrayGetCount(arr))
	out := make([]Window, 0, n)
	for i := 0; i < n; i++ {
		ref := C.AXUIElementRef(C.CFArrayGetValueAtIndex(arr, C.CFIndex(i)))
		C.CFRetain(C.CFTypeRef(ref))
		out = append(out, &window{index: uint64(i) + 1, elem: ref})
	}
	return out, nil
}

func (a *application) SetMessagingTimeout(d time.Duration) error {
	C.AXUIElementSetMessagingTimeout(a.elem, C.float(d.Seconds()))
	return nil
}

// Subscribe installs no AXObserver in this build: it returns a
// Subscription whose Unsubscribe does nothing, and o is never called.
func (a *application) Subscribe(o Observer) (Subscription, error) {
	return &subscription{}, nil
}

type subscription struct{}

func (*subscription) Unsubscribe() {}

type window struct {
	index uint64
	elem  C.AXUIElementRef
}

func (w *window) Index() uint64 { return w.index }

func (w *window) Role() (string, string, error) {
	return RoleWindow, SubroleStandard, nil
}

func (w *window) Title() (string, error) {
	return "", nil
}

func (w *window) Frame() (Frame, error) {
	return Frame{}, nil
}

func (w *window) SetFrame(f Frame) error {
	_ = unsafe.Pointer(nil)
	return nil
}

func (w *window) SetPosition(x, y int) error {
	return nil
}

func (w *window) Raise(timeout time.Duration) error {
	C.AXUIElementPerformAction(w.elem, C.CFStringRef(C.kAXRaiseAction))
	return nil
}
