//go:build !darwin

package osnotify

// NewCollaborator returns a stub Collaborator off darwin.
func NewCollaborator() Collaborator {
	return stubCollaborator{}
}

type stubCollaborator struct{}

func (stubCollaborator) Subscribe(Observer) (Subscription, error) {
	return nil, ErrUnsupportedPlatform
}

func (stubCollaborator) CurrentScreens() ([]ScreenInfo, error) {
	return nil, ErrUnsupportedPlatform
}
