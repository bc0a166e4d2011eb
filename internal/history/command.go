// Package history makes every controller-driven mutation reversible.
// Commands form a closed set of primitive operations, each carrying full
// old/new snapshots so both directions apply without re-deriving state.
package history

import "github.com/jthomassen/roadline/internal/domain"

type Op int

const (
	OpAddObject Op = iota
	OpRemoveObject
	OpUpdateObject
	OpAddTopic
	OpRemoveTopic
	OpUpdateTopic
	OpAddDeliverable
	OpRemoveDeliverable
	OpUpdateDeliverable
	OpMoveDeliverable
	OpMoveDeliverableAcrossTopics
	OpToggleTopicCollapsed
	OpSetClassification
)

type Direction int

const (
	Forward Direction = iota
	Backward
)

// Command is one primitive reversible operation. Only the fields relevant
// to its Op are populated; snapshots are never shared with live model state.
type Command struct {
	Op    Op
	Label string

	Object    *domain.CanvasObject
	OldObject *domain.CanvasObject
	NewObject *domain.CanvasObject

	Topic      *domain.Topic
	OldTopic   *domain.Topic
	NewTopic   *domain.Topic
	TopicIndex *int
	TopicID    string

	Deliverable      domain.Deliverable
	OldDeliverable   domain.Deliverable
	NewDeliverable   domain.Deliverable
	DeliverableID    string
	DeliverableIndex *int

	OldIndex int
	NewIndex int

	SourceTopicID string
	SourceIndex   int
	TargetTopicID string
	TargetIndex   int

	WasCollapsed bool

	OldClassification     string
	OldClassificationSize int
	NewClassification     string
	NewClassificationSize int

	// RemovedObjects rides along with topic/deliverable removal so row
	// deletion and its object cascade stay one primitive.
	RemovedObjects []*domain.CanvasObject
}

// Apply executes the command against the document in the given direction.
func (c *Command) Apply(doc *domain.Document, dir Direction) {
	switch c.Op {
	case OpAddObject:
		if dir == Forward {
			doc.AddObject(c.Object)
		} else {
			doc.RemoveObject(c.Object.ID)
		}
	case OpRemoveObject:
		if dir == Forward {
			doc.RemoveObject(c.Object.ID)
		} else {
			doc.AddObject(c.Object)
		}
	case OpUpdateObject:
		if dir == Forward {
			doc.UpdateObject(c.OldObject.ID, c.NewObject)
		} else {
			doc.UpdateObject(c.OldObject.ID, c.OldObject)
		}
	case OpAddTopic:
		if dir == Forward {
			doc.InsertTopic(c.Topic, c.TopicIndex)
		} else {
			doc.RemoveTopic(c.Topic.ID)
		}
	case OpRemoveTopic:
		if dir == Forward {
			for _, obj := range c.RemovedObjects {
				doc.RemoveObject(obj.ID)
			}
			doc.RemoveTopic(c.Topic.ID)
		} else {
			doc.InsertTopic(c.Topic, c.TopicIndex)
			for _, obj := range c.RemovedObjects {
				doc.AddObject(obj)
			}
		}
	case OpUpdateTopic:
		if dir == Forward {
			doc.UpdateTopic(c.OldTopic.ID, c.NewTopic)
		} else {
			doc.UpdateTopic(c.OldTopic.ID, c.OldTopic)
		}
	case OpAddDeliverable:
		if dir == Forward {
			doc.InsertDeliverable(c.TopicID, c.Deliverable, c.DeliverableIndex)
		} else {
			doc.RemoveDeliverable(c.Deliverable.ID)
		}
	case OpRemoveDeliverable:
		if dir == Forward {
			for _, obj := range c.RemovedObjects {
				doc.RemoveObject(obj.ID)
			}
			doc.RemoveDeliverable(c.Deliverable.ID)
		} else {
			doc.InsertDeliverable(c.TopicID, c.Deliverable, c.DeliverableIndex)
			for _, obj := range c.RemovedObjects {
				doc.AddObject(obj)
			}
		}
	case OpUpdateDeliverable:
		if dir == Forward {
			doc.UpdateDeliverable(c.OldDeliverable.ID, c.NewDeliverable)
		} else {
			doc.UpdateDeliverable(c.OldDeliverable.ID, c.OldDeliverable)
		}
	case OpMoveDeliverable:
		if dir == Forward {
			doc.MoveDeliverable(c.DeliverableID, c.NewIndex)
		} else {
			doc.MoveDeliverable(c.DeliverableID, c.OldIndex)
		}
	case OpMoveDeliverableAcrossTopics:
		if dir == Forward {
			doc.MoveDeliverableToTopic(c.DeliverableID, c.TargetTopicID, &c.TargetIndex)
		} else {
			doc.MoveDeliverableToTopic(c.DeliverableID, c.SourceTopicID, &c.SourceIndex)
		}
	case OpToggleTopicCollapsed:
		if dir == Forward {
			doc.ToggleTopicCollapsed(c.TopicID)
		} else {
			// Restore the recorded prior state rather than blindly
			// toggling: intervening edits may have flipped the flag.
			t := doc.GetTopic(c.TopicID)
			if t != nil && t.Collapsed != c.WasCollapsed {
				doc.ToggleTopicCollapsed(c.TopicID)
			}
		}
	case OpSetClassification:
		if dir == Forward {
			doc.SetClassification(c.NewClassification, domain.IntPtr(c.NewClassificationSize))
		} else {
			doc.SetClassification(c.OldClassification, domain.IntPtr(c.OldClassificationSize))
		}
	}
}
