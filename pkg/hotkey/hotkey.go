// Package hotkey is the contract for the global hotkey collaborator (§6)
// consumed by internal/bridge's hotkey bridge: registering chord bindings
// and delivering each press as a callback on the process's main thread.
package hotkey

import "errors"

// ErrUnsupportedPlatform is returned by the stub build.
var ErrUnsupportedPlatform = errors.New("hotkey: global hotkey collaborator unavailable on this platform")

// Modifier is one bit of an OS-standard modifier set.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModOption
	ModCommand
)

// Chord is a (modifier set, key code) binding. KeyCode is the OS's raw
// virtual key code, not a rune, so the binding survives layout changes the
// way a real tiling WM's keybindings do.
type Chord struct {
	Modifiers Modifier
	KeyCode   uint16
}

// Registration is returned by Register and unregisters the chord when
// released.
type Registration interface {
	Unregister()
}

// Collaborator is the top-level global-hotkey binding.
type Collaborator interface {
	// Register binds chord so that each press invokes onPress on the
	// collaborator's run loop (§5: the hotkey bridge runs on the process's
	// main thread and funnels onPress into a reactor Command event — it
	// never calls into the reactor directly from here).
	Register(chord Chord, onPress func()) (Registration, error)
}
