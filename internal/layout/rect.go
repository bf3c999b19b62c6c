package layout

import "github.com/bnema/swellgo/internal/tree"

// Rect is an axis-aligned rectangle in the manager's single top-left-origin
// coordinate system.
type Rect struct {
	X, Y, W, H int
}

// LeafRect pairs a leaf node with its computed on-screen rectangle.
type LeafRect struct {
	Node tree.NodeID
	Rect Rect
}

// GetSizes computes the rectangle of every leaf reachable from root,
// recursively partitioning rect by proportional share for split kinds and
// handing every child the full rect for group kinds. Adjacent emitted
// rectangles along a split's axis share an exact pixel edge, computed by
// snapping each partition's min and max corners independently (§4.2's
// rounding rule) rather than accumulating rounded widths, which would
// otherwise drift and leave a gap or overlap at the last child.
func (l *Layout) GetSizes(root tree.NodeID, rect Rect) []LeafRect {
	var out []LeafRect
	l.getSizes(root, rect, &out)
	return out
}

func (l *Layout) getSizes(n tree.NodeID, rect Rect, out *[]LeafRect) {
	if !l.arena.HasChildren(n) {
		*out = append(*out, LeafRect{Node: n, Rect: rect})
		return
	}

	kind := l.Kind(n)
	children := l.arena.Children(n)

	if kind.IsGroup() {
		for _, c := range children {
			l.getSizes(c, rect, out)
		}
		return
	}

	total := l.Total(n)
	if total <= 0 {
		for _, c := range children {
			l.getSizes(c, rect, out)
		}
		return
	}

	switch kind.Orientation() {
	case OrientationHorizontal:
		l.partitionAxis(n, children, rect, total, out, true)
	default:
		l.partitionAxis(n, children, rect, total, out, false)
	}
}

// partitionAxis partitions rect along x (horizontal=true) or y
// (horizontal=false) among children proportional to their size/total,
// snapping each child's min and max edge independently to pixel
// boundaries so adjacent rectangles share an exact coordinate.
func (l *Layout) partitionAxis(parent tree.NodeID, children []tree.NodeID, rect Rect, total float64, out *[]LeafRect, horizontal bool) {
	axisStart := rect.X
	axisLen := rect.W
	if !horizontal {
		axisStart = rect.Y
		axisLen = rect.H
	}

	cumulative := 0.0
	prevMax := axisStart
	for i, c := range children {
		cumulative += l.Size(c)
		var maxEdge int
		if i == len(children)-1 {
			maxEdge = axisStart + axisLen
		} else {
			maxEdge = axisStart + snapRound(float64(axisLen)*cumulative/total)
		}

		childRect := rect
		if horizontal {
			childRect.X = prevMax
			childRect.W = maxEdge - prevMax
		} else {
			childRect.Y = prevMax
			childRect.H = maxEdge - prevMax
		}

		l.getSizes(c, childRect, out)
		prevMax = maxEdge
	}
}

func snapRound(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return -int(-v + 0.5)
}
