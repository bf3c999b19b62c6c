// Package wm implements the LayoutManager façade over internal/tree,
// internal/layout, and internal/selection: window-identity-to-node
// bookkeeping, the public command/event surface, and the traversal,
// move, resize, and nesting algorithms that make a tiling layout feel like
// one.
package wm

import (
	"fmt"

	"github.com/bnema/swellgo/internal/layout"
)

// WindowId identifies one window: a process id plus a per-process nonzero
// index. Stable only for the lifetime of the owning process and of the
// reactor's session.
type WindowId struct {
	Pid   int
	Index uint64
}

func (w WindowId) String() string {
	return fmt.Sprintf("%d.%d", w.Pid, w.Index)
}

// SpaceId is an opaque virtual-desktop identifier, comparable for equality
// only.
type SpaceId string

// ScreenId is an opaque per-display identifier, comparable for equality
// only.
type ScreenId string

// Direction is a traversal/move/resize direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Orientation returns the axis d moves along, expressed as the matching
// layout.Orientation so traverse/move can compare directly against a
// container's split kind.
func (d Direction) Orientation() layout.Orientation {
	if d == Left || d == Right {
		return layout.OrientationHorizontal
	}
	return layout.OrientationVertical
}

// Polarity returns -1 for Left/Up (moving toward the start of the axis)
// and +1 for Right/Down.
func (d Direction) Polarity() int {
	if d == Left || d == Up {
		return -1
	}
	return 1
}
