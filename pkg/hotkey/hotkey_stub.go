//go:build !darwin

package hotkey

// NewCollaborator returns a stub Collaborator off darwin.
func NewCollaborator() Collaborator {
	return stubCollaborator{}
}

type stubCollaborator struct{}

func (stubCollaborator) Register(Chord, func()) (Registration, error) {
	return nil, ErrUnsupportedPlatform
}
