//go:build !darwin

package ax

import "time"

// NewCollaborator returns a stub Collaborator on platforms without an
// accessibility binding: every call fails with ErrUnsupportedPlatform so
// internal/worker's startup-failure path (§4.5 "Liveness") exits silently
// instead of the process refusing to build.
func NewCollaborator() Collaborator {
	return stubCollaborator{}
}

type stubCollaborator struct{}

func (stubCollaborator) RunningApplications() ([]AppInfo, error) {
	return nil, ErrUnsupportedPlatform
}

func (stubCollaborator) ApplicationByPid(int) (Application, error) {
	return nil, ErrUnsupportedPlatform
}

type stubApplication struct{ pid int }

func (a stubApplication) Pid() int                            { return a.pid }
func (stubApplication) BundleID() string                      { return "" }
func (stubApplication) Name() string                          { return "" }
func (stubApplication) Windows() ([]Window, error)            { return nil, ErrUnsupportedPlatform }
func (stubApplication) SetMessagingTimeout(time.Duration) error { return ErrUnsupportedPlatform }
func (stubApplication) Subscribe(Observer) (Subscription, error) {
	return nil, ErrUnsupportedPlatform
}

type stubWindow struct{}

func (stubWindow) Index() uint64                        { return 0 }
func (stubWindow) Role() (string, string, error)         { return "", "", ErrUnsupportedPlatform }
func (stubWindow) Title() (string, error)                { return "", ErrUnsupportedPlatform }
func (stubWindow) Frame() (Frame, error)                 { return Frame{}, ErrUnsupportedPlatform }
func (stubWindow) SetFrame(Frame) error                  { return ErrUnsupportedPlatform }
func (stubWindow) SetPosition(int, int) error             { return ErrUnsupportedPlatform }
func (stubWindow) Raise(time.Duration) error              { return ErrUnsupportedPlatform }
