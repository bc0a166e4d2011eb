package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stackOrder returns object ids bottom-to-top.
func stackOrder(f *fixture) []string {
	return f.ctrl.orderedObjectIDs()
}

func assertDenseZIndices(t *testing.T, f *fixture) {
	t.Helper()
	objs := f.doc.ObjectsInOrder()
	seen := make(map[int]bool, len(objs))
	for _, obj := range objs {
		seen[obj.ZIndex] = true
	}
	for i := 0; i < len(objs); i++ {
		assert.True(t, seen[i], "z-index %d missing from stack", i)
	}
}

func TestReorder_FrontAndBack(t *testing.T) {
	f := newFixture(t)
	b1 := f.addBox(t, "d1", 1, 2)
	b2 := f.addBox(t, "d1", 3, 4)
	b3 := f.addBox(t, "d2", 5, 6)
	b4 := f.addBox(t, "d2", 7, 8)

	f.ctrl.ReorderObjects([]string{b1.ID, b3.ID}, ReorderFront)
	assert.Equal(t, []string{b2.ID, b4.ID, b1.ID, b3.ID}, stackOrder(f),
		"selection moves above, keeping relative order in both groups")
	assertDenseZIndices(t, f)

	f.ctrl.ReorderObjects([]string{b3.ID}, ReorderBack)
	assert.Equal(t, []string{b3.ID, b2.ID, b4.ID, b1.ID}, stackOrder(f))
	assertDenseZIndices(t, f)
}

func TestReorder_ForwardPassesOneNeighbor(t *testing.T) {
	f := newFixture(t)
	b1 := f.addBox(t, "d1", 1, 2)
	b2 := f.addBox(t, "d1", 3, 4)
	b3 := f.addBox(t, "d2", 5, 6)

	f.ctrl.ReorderObjects([]string{b1.ID}, ReorderForward)
	assert.Equal(t, []string{b2.ID, b1.ID, b3.ID}, stackOrder(f))

	f.ctrl.ReorderObjects([]string{b1.ID}, ReorderForward)
	assert.Equal(t, []string{b2.ID, b3.ID, b1.ID}, stackOrder(f))

	// Already on top: nothing changes, nothing is logged.
	before := f.log.Len()
	f.ctrl.ReorderObjects([]string{b1.ID}, ReorderForward)
	assert.Equal(t, before, f.log.Len())
	assert.True(t, f.obs.last(t).NoOp)
}

func TestReorder_BackwardPassesOneNeighbor(t *testing.T) {
	f := newFixture(t)
	b1 := f.addBox(t, "d1", 1, 2)
	b2 := f.addBox(t, "d1", 3, 4)
	b3 := f.addBox(t, "d2", 5, 6)

	f.ctrl.ReorderObjects([]string{b3.ID}, ReorderBackward)
	assert.Equal(t, []string{b1.ID, b3.ID, b2.ID}, stackOrder(f))

	f.ctrl.ReorderObjects([]string{b3.ID}, ReorderBackward)
	assert.Equal(t, []string{b3.ID, b1.ID, b2.ID}, stackOrder(f))
}

func TestReorder_GroupForwardKeepsSelectionTogether(t *testing.T) {
	f := newFixture(t)
	b1 := f.addBox(t, "d1", 1, 2)
	b2 := f.addBox(t, "d1", 3, 4)
	b3 := f.addBox(t, "d2", 5, 6)
	b4 := f.addBox(t, "d2", 7, 8)

	// Each selected object passes exactly one non-selected neighbor; the
	// adjacent pair does not leapfrog within itself.
	f.ctrl.ReorderObjects([]string{b1.ID, b2.ID}, ReorderForward)
	assert.Equal(t, []string{b3.ID, b1.ID, b2.ID, b4.ID}, stackOrder(f))
	assertDenseZIndices(t, f)
}

func TestReorder_UndoesAsOneEntry(t *testing.T) {
	f := newFixture(t)
	b1 := f.addBox(t, "d1", 1, 2)
	b2 := f.addBox(t, "d1", 3, 4)
	b3 := f.addBox(t, "d2", 5, 6)
	original := stackOrder(f)
	depth := f.log.Len()

	f.ctrl.ReorderObjects([]string{b1.ID}, ReorderFront)
	require.Equal(t, []string{b2.ID, b3.ID, b1.ID}, stackOrder(f))
	require.Equal(t, depth+1, f.log.Len())

	require.True(t, f.log.Undo())
	assert.Equal(t, original, stackOrder(f))
}

func TestReorder_DeadSelectionIsNoOp(t *testing.T) {
	f := newFixture(t)
	f.addBox(t, "d1", 1, 2)
	before := f.log.Len()

	f.ctrl.ReorderObjects([]string{"gone"}, ReorderFront)

	assert.Equal(t, before, f.log.Len())
	last := f.obs.last(t)
	assert.True(t, last.NoOp)
	assert.Equal(t, "no live selection", last.Reason)
}
