package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jthomassen/roadline/internal/domain"
)

func TestCommand_UpdateObjectRoundTrip(t *testing.T) {
	doc := newTestDoc(t)
	old := newBox("b1", 4, 8)
	doc.AddObject(old)

	updated := old.Clone()
	updated.Text = "Ship v2"
	updated.StartWeek, updated.EndWeek = 6, 10

	cmd := &Command{Op: OpUpdateObject, OldObject: old, NewObject: updated}
	cmd.Apply(doc, Forward)
	require.Equal(t, "Ship v2", doc.Object("b1").Text)
	require.Equal(t, 6, doc.Object("b1").StartWeek)

	cmd.Apply(doc, Backward)
	assert.True(t, old.Equal(doc.Object("b1")))
}

func TestCommand_RemoveTopicRestoresObjects(t *testing.T) {
	doc := newTestDoc(t)
	onTopic := newBox("b1", 4, 8)
	onTopic.RowID = "t1"
	onDeliverable := newBox("b2", 10, 12)
	doc.AddObject(onTopic)
	doc.AddObject(onDeliverable)

	topic := doc.GetTopic("t1").Clone()
	idx := doc.TopicIndex("t1")
	cmd := &Command{
		Op:             OpRemoveTopic,
		Topic:          topic,
		TopicIndex:     domain.IntPtr(idx),
		RemovedObjects: []*domain.CanvasObject{onTopic.Clone(), onDeliverable.Clone()},
	}

	cmd.Apply(doc, Forward)
	require.Nil(t, doc.GetTopic("t1"))
	require.Equal(t, 0, doc.ObjectCount())

	cmd.Apply(doc, Backward)
	restored := doc.GetTopic("t1")
	require.NotNil(t, restored)
	assert.Equal(t, 0, doc.TopicIndex("t1"))
	assert.Len(t, restored.Deliverables, 2)
	assert.NotNil(t, doc.Object("b1"))
	assert.NotNil(t, doc.Object("b2"))
}

func TestCommand_RemoveDeliverableRestoresAtIndex(t *testing.T) {
	doc := newTestDoc(t)
	obj := newBox("b1", 4, 8)
	doc.AddObject(obj)

	cmd := &Command{
		Op:               OpRemoveDeliverable,
		TopicID:          "t1",
		Deliverable:      domain.Deliverable{ID: "d1", Name: "API"},
		DeliverableIndex: domain.IntPtr(0),
		RemovedObjects:   []*domain.CanvasObject{obj.Clone()},
	}

	cmd.Apply(doc, Forward)
	_, _, del := doc.FindDeliverable("d1")
	require.Nil(t, del)
	require.Nil(t, doc.Object("b1"))

	cmd.Apply(doc, Backward)
	topic, idx, del := doc.FindDeliverable("d1")
	require.NotNil(t, del)
	assert.Equal(t, "t1", topic.ID)
	assert.Equal(t, 0, idx)
	assert.NotNil(t, doc.Object("b1"))
}

func TestCommand_MoveDeliverableAcrossTopics(t *testing.T) {
	doc := newTestDoc(t)
	doc.InsertTopic(&domain.Topic{
		ID: "t2", Name: "Research", Color: "#b16286",
		Deliverables: []domain.Deliverable{{ID: "d3", Name: "Prototype"}},
	}, nil)

	cmd := &Command{
		Op:            OpMoveDeliverableAcrossTopics,
		DeliverableID: "d1",
		SourceTopicID: "t1",
		SourceIndex:   0,
		TargetTopicID: "t2",
		TargetIndex:   1,
	}

	cmd.Apply(doc, Forward)
	topic, idx, _ := doc.FindDeliverable("d1")
	require.Equal(t, "t2", topic.ID)
	require.Equal(t, 1, idx)

	cmd.Apply(doc, Backward)
	topic, idx, _ = doc.FindDeliverable("d1")
	assert.Equal(t, "t1", topic.ID)
	assert.Equal(t, 0, idx)
}

func TestCommand_ToggleCollapsedRestoresRecordedState(t *testing.T) {
	doc := newTestDoc(t)
	cmd := &Command{Op: OpToggleTopicCollapsed, TopicID: "t1", WasCollapsed: false}

	cmd.Apply(doc, Forward)
	require.True(t, doc.GetTopic("t1").Collapsed)

	cmd.Apply(doc, Backward)
	assert.False(t, doc.GetTopic("t1").Collapsed)

	// Backward restores the recorded prior state even when an
	// intervening edit already flipped the flag back.
	cmd.Apply(doc, Backward)
	assert.False(t, doc.GetTopic("t1").Collapsed)
}

func TestCommand_SetClassification(t *testing.T) {
	doc := newTestDoc(t)
	cmd := &Command{
		Op:                    OpSetClassification,
		OldClassification:     domain.DefaultClassification,
		OldClassificationSize: domain.ClassificationSizeDefault,
		NewClassification:     "Confidential",
		NewClassificationSize: 12,
	}

	cmd.Apply(doc, Forward)
	require.Equal(t, "Confidential", doc.Classification)
	require.Equal(t, 12, doc.ClassificationSize)

	cmd.Apply(doc, Backward)
	assert.Equal(t, domain.DefaultClassification, doc.Classification)
	assert.Equal(t, domain.ClassificationSizeDefault, doc.ClassificationSize)
}
