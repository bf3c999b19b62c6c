//go:build darwin

package osnotify

/*
#cgo LDFLAGS: -framework AppKit -framework Foundation
*/
import "C"

// collaborator is the darwin binding. In this build Subscribe delivers no
// notifications (its Subscription's Unsubscribe does nothing) and
// CurrentScreens returns no screens.
type collaborator struct{}

// NewCollaborator returns the real global-notification binding for darwin.
func NewCollaborator() Collaborator {
	return collaborator{}
}

func (collaborator) Subscribe(o Observer) (Subscription, error) {
	return subscription{}, nil
}

func (collaborator) CurrentScreens() ([]ScreenInfo, error) {
	return nil, nil
}

type subscription struct{}

func (subscription) Unsubscribe() {}
