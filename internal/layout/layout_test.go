package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/swellgo/internal/layout"
	"github.com/bnema/swellgo/internal/tree"
)

func TestAddedToForestDefaults(t *testing.T) {
	a := tree.NewArena()
	l := layout.New(a)
	root := a.NewRoot()
	defer root.Release()

	assert.Equal(t, layout.Horizontal, l.Kind(root.ID()))
	assert.Equal(t, 1.0, l.Size(root.ID()))
	assert.Equal(t, 0.0, l.Total(root.ID()))
}

func TestTotalTracksChildShares(t *testing.T) {
	a := tree.NewArena()
	l := layout.New(a)
	root := a.NewRoot()
	defer root.Release()

	c1 := a.PushBack(root.ID())
	c2 := a.PushBack(root.ID())
	assert.Equal(t, 2.0, l.Total(root.ID()))

	a.Remove(c1)
	assert.Equal(t, 1.0, l.Total(root.ID()))

	a.Remove(c2)
	assert.Equal(t, 0.0, l.Total(root.ID()))
}

func TestFourWindowHorizontalVerticalSplit(t *testing.T) {
	// Horizontal(W1, Vertical(W2,W3), W4) on a 3000x3000 screen:
	// W1=(0,0,1000,3000) W2=(1000,0,1000,1500) W3=(1000,1500,1000,1500) W4=(2000,0,1000,3000)
	a := tree.NewArena()
	l := layout.New(a)
	root := a.NewRoot()
	defer root.Release()
	l.SetKind(root.ID(), layout.Horizontal)

	w1 := a.PushBack(root.ID())
	vert := a.PushBack(root.ID())
	l.SetKind(vert, layout.Vertical)
	w2 := a.PushBack(vert)
	w3 := a.PushBack(vert)
	w4 := a.PushBack(root.ID())

	sizes := l.GetSizes(root.ID(), layout.Rect{X: 0, Y: 0, W: 3000, H: 3000})
	byNode := map[tree.NodeID]layout.Rect{}
	for _, lr := range sizes {
		byNode[lr.Node] = lr.Rect
	}

	require.Len(t, sizes, 4)
	assert.Equal(t, layout.Rect{X: 0, Y: 0, W: 1000, H: 3000}, byNode[w1])
	assert.Equal(t, layout.Rect{X: 1000, Y: 0, W: 1000, H: 1500}, byNode[w2])
	assert.Equal(t, layout.Rect{X: 1000, Y: 1500, W: 1000, H: 1500}, byNode[w3])
	assert.Equal(t, layout.Rect{X: 2000, Y: 0, W: 1000, H: 3000}, byNode[w4])
}

func TestGroupKindGivesEveryChildFullRect(t *testing.T) {
	a := tree.NewArena()
	l := layout.New(a)
	root := a.NewRoot()
	defer root.Release()
	l.SetKind(root.ID(), layout.Tabbed)

	c1 := a.PushBack(root.ID())
	c2 := a.PushBack(root.ID())

	sizes := l.GetSizes(root.ID(), layout.Rect{X: 0, Y: 0, W: 800, H: 600})
	for _, lr := range sizes {
		assert.Equal(t, layout.Rect{X: 0, Y: 0, W: 800, H: 600}, lr.Rect)
		assert.Contains(t, []tree.NodeID{c1, c2}, lr.Node)
	}
}

func TestAssumeSizeOfTransfersAndZeroes(t *testing.T) {
	a := tree.NewArena()
	l := layout.New(a)
	root := a.NewRoot()
	defer root.Release()

	old := a.PushBack(root.ID())
	newNode := a.InsertBefore(old)

	l.AssumeSizeOf(newNode, old)

	assert.Equal(t, 1.0, l.Size(newNode))
	assert.Equal(t, 0.0, l.Size(old))
	assert.Equal(t, 1.0, l.Total(root.ID()))
}

func TestTakeShareClampsAndPreservesTotal(t *testing.T) {
	a := tree.NewArena()
	l := layout.New(a)
	root := a.NewRoot()
	defer root.Release()

	c1 := a.PushBack(root.ID())
	c2 := a.PushBack(root.ID())
	totalBefore := l.Total(root.ID())

	l.TakeShare(c1, c2, 0.5)
	assert.Equal(t, 1.5, l.Size(c1))
	assert.Equal(t, 0.5, l.Size(c2))
	assert.Equal(t, totalBefore, l.Total(root.ID()))

	l.TakeShare(c1, c2, 10) // clamp to size(c2)
	assert.Equal(t, 0.0, l.Size(c2))
	assert.Equal(t, 2.0, l.Size(c1))
}

func TestResizeRoundTripRestoresSizes(t *testing.T) {
	a := tree.NewArena()
	l := layout.New(a)
	root := a.NewRoot()
	defer root.Release()
	c1 := a.PushBack(root.ID())
	c2 := a.PushBack(root.ID())

	before := l.GetSizes(root.ID(), layout.Rect{X: 0, Y: 0, W: 1000, H: 1000})

	l.TakeShare(c1, c2, 0.3)
	l.TakeShare(c1, c2, -0.3)

	after := l.GetSizes(root.ID(), layout.Rect{X: 0, Y: 0, W: 1000, H: 1000})
	assert.Equal(t, before, after)
}
