//go:build darwin

package hotkey

/*
#cgo LDFLAGS: -framework Carbon
*/
import "C"

// collaborator is the darwin binding. Register claims no system-wide
// hotkey in this build: it returns a Registration whose Unregister does
// nothing, and onPress is never called.
type collaborator struct{}

// NewCollaborator returns the real hotkey binding for darwin.
func NewCollaborator() Collaborator {
	return collaborator{}
}

func (collaborator) Register(chord Chord, onPress func()) (Registration, error) {
	return registration{}, nil
}

type registration struct{}

func (registration) Unregister() {}
