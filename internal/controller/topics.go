package controller

import (
	"github.com/jthomassen/roadline/internal/domain"
	"github.com/jthomassen/roadline/internal/history"
)

// AddTopic creates a topic, cycling through the palette when no color is
// given.
func (c *Controller) AddTopic(name, color string) *domain.Topic {
	if color == "" {
		color = c.palette[len(c.doc.Topics())%len(c.palette)]
	}
	topic := &domain.Topic{ID: domain.NewID(), Name: name, Color: color}
	c.log.Push(&history.Command{Op: history.OpAddTopic, Label: "Add Topic", Topic: topic})
	c.committed("add_topic", "Add Topic", 1)
	return topic
}

func (c *Controller) UpdateTopic(topic *domain.Topic) {
	current := c.doc.GetTopic(topic.ID)
	if current == nil {
		c.noop("update_topic", "unknown topic id")
		return
	}
	if current.Equal(topic) {
		c.noop("update_topic", "no-op edit")
		return
	}
	c.log.Push(&history.Command{
		Op:       history.OpUpdateTopic,
		Label:    "Update Topic",
		OldTopic: current.Clone(),
		NewTopic: topic.Clone(),
	})
	c.committed("update_topic", "Update Topic", 1)
}

// RemoveTopic deletes a topic, its deliverables, every object on any of
// those rows (including arrow target rows), and every link or connector
// touching that set, as one undo step.
func (c *Controller) RemoveTopic(topicID string) bool {
	index := c.doc.TopicIndex(topicID)
	if index < 0 {
		c.noop("remove_topic", "unknown topic id")
		return false
	}
	topic := c.doc.Topics()[index]
	rowIDs := map[string]bool{topic.ID: true}
	for _, del := range topic.Deliverables {
		rowIDs[del.ID] = true
	}
	removed := c.objectsForRows(rowIDs)
	c.log.Push(&history.Command{
		Op:             history.OpRemoveTopic,
		Label:          "Remove Topic",
		Topic:          topic.Clone(),
		TopicIndex:     domain.IntPtr(index),
		RemovedObjects: removed,
	})
	c.committed("remove_topic", "Remove Topic", 1)
	return true
}

func (c *Controller) AddDeliverable(topicID, name string) *domain.Deliverable {
	if c.doc.GetTopic(topicID) == nil {
		c.noop("add_deliverable", "unknown topic id")
		return nil
	}
	del := domain.Deliverable{ID: domain.NewID(), Name: name}
	c.log.Push(&history.Command{
		Op:          history.OpAddDeliverable,
		Label:       "Add Deliverable",
		TopicID:     topicID,
		Deliverable: del,
	})
	c.committed("add_deliverable", "Add Deliverable", 1)
	return &del
}

func (c *Controller) UpdateDeliverable(del domain.Deliverable) {
	_, _, current := c.doc.FindDeliverable(del.ID)
	if current == nil {
		c.noop("update_deliverable", "unknown deliverable id")
		return
	}
	if *current == del {
		c.noop("update_deliverable", "no-op edit")
		return
	}
	c.log.Push(&history.Command{
		Op:             history.OpUpdateDeliverable,
		Label:          "Update Deliverable",
		OldDeliverable: *current,
		NewDeliverable: del,
	})
	c.committed("update_deliverable", "Update Deliverable", 1)
}

// RemoveDeliverable deletes the row plus all objects and attachments on it,
// as one undo step.
func (c *Controller) RemoveDeliverable(deliverableID string) bool {
	topic, index, del := c.doc.FindDeliverable(deliverableID)
	if del == nil {
		c.noop("remove_deliverable", "unknown deliverable id")
		return false
	}
	removed := c.objectsForRows(map[string]bool{deliverableID: true})
	c.log.Push(&history.Command{
		Op:               history.OpRemoveDeliverable,
		Label:            "Remove Deliverable",
		TopicID:          topic.ID,
		Deliverable:      *del,
		DeliverableIndex: domain.IntPtr(index),
		RemovedObjects:   removed,
	})
	c.committed("remove_deliverable", "Remove Deliverable", 1)
	return true
}

func (c *Controller) ToggleTopicCollapsed(topicID string) {
	topic := c.doc.GetTopic(topicID)
	if topic == nil {
		c.noop("toggle_topic_collapsed", "unknown topic id")
		return
	}
	c.log.Push(&history.Command{
		Op:           history.OpToggleTopicCollapsed,
		Label:        "Toggle Topic Collapse",
		TopicID:      topicID,
		WasCollapsed: topic.Collapsed,
	})
	c.committed("toggle_topic_collapsed", "Toggle Topic Collapse", 1)
}

// MoveDeliverable shifts a deliverable one slot up (direction < 0) or down
// (direction > 0). At the edge of its topic it crosses into the adjacent
// topic: onto the end of the previous one, or the front of the next.
func (c *Controller) MoveDeliverable(deliverableID string, direction int) bool {
	topic, index, del := c.doc.FindDeliverable(deliverableID)
	if del == nil || len(topic.Deliverables) == 0 {
		c.noop("move_deliverable", "unknown deliverable id")
		return false
	}
	topicIndex := c.doc.TopicIndex(topic.ID)
	if topicIndex < 0 {
		return false
	}
	topics := c.doc.Topics()

	push := func(cmd *history.Command) bool {
		c.log.Push(cmd)
		c.committed("move_deliverable", cmd.Label, 1)
		return true
	}

	switch {
	case direction < 0:
		if index > 0 {
			return push(&history.Command{
				Op:            history.OpMoveDeliverable,
				Label:         "Move Deliverable",
				DeliverableID: deliverableID,
				OldIndex:      index,
				NewIndex:      index - 1,
			})
		}
		if topicIndex > 0 {
			target := topics[topicIndex-1]
			return push(&history.Command{
				Op:            history.OpMoveDeliverableAcrossTopics,
				Label:         "Move Deliverable",
				DeliverableID: deliverableID,
				SourceTopicID: topic.ID,
				SourceIndex:   index,
				TargetTopicID: target.ID,
				TargetIndex:   len(target.Deliverables),
			})
		}
	case direction > 0:
		if index < len(topic.Deliverables)-1 {
			return push(&history.Command{
				Op:            history.OpMoveDeliverable,
				Label:         "Move Deliverable",
				DeliverableID: deliverableID,
				OldIndex:      index,
				NewIndex:      index + 1,
			})
		}
		if topicIndex < len(topics)-1 {
			target := topics[topicIndex+1]
			return push(&history.Command{
				Op:            history.OpMoveDeliverableAcrossTopics,
				Label:         "Move Deliverable",
				DeliverableID: deliverableID,
				SourceTopicID: topic.ID,
				SourceIndex:   index,
				TargetTopicID: target.ID,
				TargetIndex:   0,
			})
		}
	}
	return false
}

// UpdateClassification edits the document banner through the log.
func (c *Controller) UpdateClassification(text string, size *int) {
	newText, newSize := c.doc.NormalizeClassification(text, size)
	if newText == c.doc.Classification && newSize == c.doc.ClassificationSize {
		c.noop("update_classification", "no-op edit")
		return
	}
	c.log.Push(&history.Command{
		Op:                    history.OpSetClassification,
		Label:                 "Update Classification",
		OldClassification:     c.doc.Classification,
		OldClassificationSize: c.doc.ClassificationSize,
		NewClassification:     newText,
		NewClassificationSize: newSize,
	})
	c.committed("update_classification", "Update Classification", 1)
}

// objectsForRows gathers every object sitting on (or arrow-targeting) the
// given rows, plus the links and connectors attached to any of them.
func (c *Controller) objectsForRows(rowIDs map[string]bool) []*domain.CanvasObject {
	var rowObjects []*domain.CanvasObject
	rowObjectIDs := map[string]bool{}
	for _, obj := range c.doc.ObjectsInOrder() {
		if obj.Kind == domain.KindLink {
			continue
		}
		if rowIDs[obj.RowID] || (obj.TargetRowID != "" && rowIDs[obj.TargetRowID]) {
			rowObjects = append(rowObjects, obj)
			rowObjectIDs[obj.ID] = true
		}
	}
	var attached []*domain.CanvasObject
	for _, obj := range c.doc.ObjectsInOrder() {
		switch obj.Kind {
		case domain.KindLink:
			if rowObjectIDs[obj.LinkSourceID] || rowObjectIDs[obj.LinkTargetID] {
				attached = append(attached, obj)
			}
		case domain.KindConnector:
			if !rowObjectIDs[obj.ID] && (rowObjectIDs[obj.ConnectorSourceID] || rowObjectIDs[obj.ConnectorTargetID]) {
				attached = append(attached, obj)
			}
		}
	}
	return append(rowObjects, attached...)
}
