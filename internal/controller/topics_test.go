package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jthomassen/roadline/internal/domain"
)

func TestAddTopic_CyclesPalette(t *testing.T) {
	f := newFixture(t)
	f.ctrl.SetPalette([]string{"#111111", "#222222", "#333333"})

	// The fixture already holds two topics, so the cycle continues at
	// index 2 and wraps.
	t3 := f.ctrl.AddTopic("Ops", "")
	t4 := f.ctrl.AddTopic("Support", "")
	t5 := f.ctrl.AddTopic("Hiring", "#fabd2f")

	assert.Equal(t, "#333333", t3.Color)
	assert.Equal(t, "#111111", t4.Color)
	assert.Equal(t, "#fabd2f", t5.Color, "explicit color wins")
}

func TestUpdateTopic_NoOpPushesNothing(t *testing.T) {
	f := newFixture(t)
	before := f.log.Len()

	f.ctrl.UpdateTopic(f.doc.GetTopic("t1").Clone())

	assert.Equal(t, before, f.log.Len())
	assert.True(t, f.obs.last(t).NoOp)
}

func TestRemoveTopic_CascadesRowsObjectsAndAttachments(t *testing.T) {
	f := newFixture(t)
	onD1 := f.addBox(t, "d1", 4, 8)
	onD2 := f.addBox(t, "d2", 10, 12)
	survivor := f.addBox(t, "d3", 4, 8)

	// An arrow living on t2 but targeting a t1 row goes with the topic.
	arrow := f.ctrl.MakeDefaultObject(domain.KindArrow, "d3", 4, 9, "")
	f.ctrl.AddObject(arrow, "")
	f.ctrl.UpdateObject(arrow.ID, "Retarget", func(o *domain.CanvasObject) {
		o.TargetRowID = "d1"
	})

	// A textbox anchored to a doomed object loses only its link.
	tb := f.addTextbox(t, 500, 300)
	f.ctrl.AddAnchorLink(tb.ID, onD1.ID, domain.SideLeft, nil)
	// A connector from the survivor into the topic goes too.
	f.ctrl.AddConnectorArrow(survivor.ID, onD2.ID, domain.SideRight, nil, domain.SideLeft, nil)

	total := f.doc.ObjectCount()
	require.True(t, f.ctrl.RemoveTopic("t1"))

	assert.Nil(t, f.doc.GetTopic("t1"))
	assert.Nil(t, f.doc.Object(onD1.ID))
	assert.Nil(t, f.doc.Object(onD2.ID))
	assert.Nil(t, f.doc.Object(arrow.ID), "arrow targeting a removed row goes too")
	assert.NotNil(t, f.doc.Object(survivor.ID))
	assert.NotNil(t, f.doc.Object(tb.ID), "anchored textbox survives, its link does not")
	assert.Empty(t, f.ctrl.linksFromSource(tb.ID))

	require.True(t, f.log.Undo())
	assert.NotNil(t, f.doc.GetTopic("t1"))
	assert.Equal(t, 0, f.doc.TopicIndex("t1"))
	assert.Equal(t, total, f.doc.ObjectCount(), "one undo restores rows, objects and attachments")
	assert.Len(t, f.ctrl.linksFromSource(tb.ID), 1)
}

func TestRemoveDeliverable_CascadesItsObjects(t *testing.T) {
	f := newFixture(t)
	doomed := f.addBox(t, "d1", 4, 8)
	kept := f.addBox(t, "d2", 4, 8)

	require.True(t, f.ctrl.RemoveDeliverable("d1"))

	_, _, del := f.doc.FindDeliverable("d1")
	assert.Nil(t, del)
	assert.Nil(t, f.doc.Object(doomed.ID))
	assert.NotNil(t, f.doc.Object(kept.ID))

	require.True(t, f.log.Undo())
	topic, idx, del := f.doc.FindDeliverable("d1")
	require.NotNil(t, del)
	assert.Equal(t, "t1", topic.ID)
	assert.Equal(t, 0, idx, "restored at its original position")
	assert.NotNil(t, f.doc.Object(doomed.ID))
}

func TestMoveDeliverable_WithinTopic(t *testing.T) {
	f := newFixture(t)

	require.True(t, f.ctrl.MoveDeliverable("d1", +1))
	topic := f.doc.GetTopic("t1")
	assert.Equal(t, "d2", topic.Deliverables[0].ID)
	assert.Equal(t, "d1", topic.Deliverables[1].ID)

	require.True(t, f.ctrl.MoveDeliverable("d1", -1))
	topic = f.doc.GetTopic("t1")
	assert.Equal(t, "d1", topic.Deliverables[0].ID)
}

func TestMoveDeliverable_CrossesTopicBoundary(t *testing.T) {
	f := newFixture(t)

	// Down past the end of t1: lands at the front of t2.
	require.True(t, f.ctrl.MoveDeliverable("d2", +1))
	topic, idx, _ := f.doc.FindDeliverable("d2")
	assert.Equal(t, "t2", topic.ID)
	assert.Equal(t, 0, idx)

	// Back up: lands at the end of t1.
	require.True(t, f.ctrl.MoveDeliverable("d2", -1))
	topic, idx, _ = f.doc.FindDeliverable("d2")
	assert.Equal(t, "t1", topic.ID)
	assert.Equal(t, 1, idx)
}

func TestMoveDeliverable_StopsAtDocumentEdges(t *testing.T) {
	f := newFixture(t)

	assert.False(t, f.ctrl.MoveDeliverable("d1", -1), "first deliverable of first topic")
	assert.False(t, f.ctrl.MoveDeliverable("d3", +1), "last deliverable of last topic")
}

func TestToggleTopicCollapsed_UndoRestoresState(t *testing.T) {
	f := newFixture(t)

	f.ctrl.ToggleTopicCollapsed("t1")
	assert.True(t, f.doc.GetTopic("t1").Collapsed)

	require.True(t, f.log.Undo())
	assert.False(t, f.doc.GetTopic("t1").Collapsed)

	require.True(t, f.log.Redo())
	assert.True(t, f.doc.GetTopic("t1").Collapsed)
}

func TestUpdateClassification(t *testing.T) {
	f := newFixture(t)

	f.ctrl.UpdateClassification("Confidential", domain.IntPtr(14))
	assert.Equal(t, "Confidential", f.doc.Classification)
	assert.Equal(t, 14, f.doc.ClassificationSize)

	// Clamped and trimmed input that lands on the current state is a no-op.
	before := f.log.Len()
	f.ctrl.UpdateClassification("  Confidential  ", domain.IntPtr(14))
	assert.Equal(t, before, f.log.Len())
	assert.True(t, f.obs.last(t).NoOp)

	require.True(t, f.log.Undo())
	assert.Equal(t, domain.DefaultClassification, f.doc.Classification)
	assert.Equal(t, domain.ClassificationSizeDefault, f.doc.ClassificationSize)
}

func TestAddDeliverable_UnknownTopicIsNoOp(t *testing.T) {
	f := newFixture(t)

	assert.Nil(t, f.ctrl.AddDeliverable("gone", "Orphan"))
	last := f.obs.last(t)
	assert.True(t, last.NoOp)
	assert.Equal(t, "unknown topic id", last.Reason)
}
