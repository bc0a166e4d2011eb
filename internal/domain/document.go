package domain

import "strings"

// Document is the canonical in-memory store for one open roadmap: topics
// with their deliverables, canvas objects keyed by id, and document-level
// metadata. It is pure data plus change notification; all invariant
// enforcement lives in the controller, and every mutation reaching a
// Document arrives through the command log.
type Document struct {
	Year               int
	Classification     string
	ClassificationSize int

	topics      []*Topic
	objects     map[string]*CanvasObject
	objectOrder []string

	rowsSubs     []func()
	objectsSubs  []func()
	metadataSubs []func()
}

func NewDocument(year int) *Document {
	return &Document{
		Year:               year,
		Classification:     DefaultClassification,
		ClassificationSize: ClassificationSizeDefault,
		objects:            make(map[string]*CanvasObject),
	}
}

// OnRowsChanged registers a callback fired whenever topic/deliverable
// structure changes. Renderers and the layout engine subscribe here.
func (d *Document) OnRowsChanged(fn func()) { d.rowsSubs = append(d.rowsSubs, fn) }

// OnObjectsChanged registers a callback fired whenever the object set or
// any object value changes.
func (d *Document) OnObjectsChanged(fn func()) { d.objectsSubs = append(d.objectsSubs, fn) }

// OnMetadataChanged registers a callback fired for year/classification edits.
func (d *Document) OnMetadataChanged(fn func()) { d.metadataSubs = append(d.metadataSubs, fn) }

func (d *Document) emitRows() {
	for _, fn := range d.rowsSubs {
		fn()
	}
}

func (d *Document) emitObjects() {
	for _, fn := range d.objectsSubs {
		fn()
	}
}

func (d *Document) emitMetadata() {
	for _, fn := range d.metadataSubs {
		fn()
	}
}

func (d *Document) SetYear(year int) {
	if d.Year == year {
		return
	}
	d.Year = year
	d.emitMetadata()
}

// NormalizeClassification cleans a banner edit: blank text falls back to the
// default label, a nil size keeps the current one, and the size is clamped.
func (d *Document) NormalizeClassification(text string, size *int) (string, int) {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		cleaned = DefaultClassification
	}
	value := d.ClassificationSize
	if size != nil {
		value = *size
	}
	if value < ClassificationSizeMin {
		value = ClassificationSizeMin
	}
	if value > ClassificationSizeMax {
		value = ClassificationSizeMax
	}
	return cleaned, value
}

func (d *Document) SetClassification(text string, size *int) {
	cleaned, value := d.NormalizeClassification(text, size)
	if cleaned == d.Classification && value == d.ClassificationSize {
		return
	}
	d.Classification = cleaned
	d.ClassificationSize = value
	d.emitMetadata()
}

// ── topics ──────────────────────────────────────────────────────────────────

// Topics returns the ordered topic list. Callers must not mutate entries;
// edits go through the controller.
func (d *Document) Topics() []*Topic { return d.topics }

// InsertTopic places a topic at index, or appends when index is nil.
func (d *Document) InsertTopic(t *Topic, index *int) {
	if index == nil || *index >= len(d.topics) {
		d.topics = append(d.topics, t)
	} else {
		i := *index
		if i < 0 {
			i = 0
		}
		d.topics = append(d.topics[:i], append([]*Topic{t}, d.topics[i:]...)...)
	}
	d.emitRows()
}

func (d *Document) UpdateTopic(topicID string, replacement *Topic) {
	for i, t := range d.topics {
		if t.ID == topicID {
			d.topics[i] = replacement
			d.emitRows()
			return
		}
	}
}

func (d *Document) RemoveTopic(topicID string) *Topic {
	for i, t := range d.topics {
		if t.ID == topicID {
			d.topics = append(d.topics[:i], d.topics[i+1:]...)
			d.emitRows()
			return t
		}
	}
	return nil
}

func (d *Document) GetTopic(topicID string) *Topic {
	for _, t := range d.topics {
		if t.ID == topicID {
			return t
		}
	}
	return nil
}

func (d *Document) TopicIndex(topicID string) int {
	for i, t := range d.topics {
		if t.ID == topicID {
			return i
		}
	}
	return -1
}

func (d *Document) ToggleTopicCollapsed(topicID string) {
	t := d.GetTopic(topicID)
	if t == nil {
		return
	}
	t.Collapsed = !t.Collapsed
	d.emitRows()
}

// ── deliverables ────────────────────────────────────────────────────────────

// InsertDeliverable adds del under topicID at index (append when nil).
// Unknown topic ids are silently ignored.
func (d *Document) InsertDeliverable(topicID string, del Deliverable, index *int) {
	t := d.GetTopic(topicID)
	if t == nil {
		return
	}
	if index == nil || *index >= len(t.Deliverables) {
		t.Deliverables = append(t.Deliverables, del)
	} else {
		i := *index
		if i < 0 {
			i = 0
		}
		t.Deliverables = append(t.Deliverables[:i], append([]Deliverable{del}, t.Deliverables[i:]...)...)
	}
	d.emitRows()
}

func (d *Document) UpdateDeliverable(deliverableID string, replacement Deliverable) {
	for _, t := range d.topics {
		for i, del := range t.Deliverables {
			if del.ID == deliverableID {
				t.Deliverables[i] = replacement
				d.emitRows()
				return
			}
		}
	}
}

func (d *Document) RemoveDeliverable(deliverableID string) *Deliverable {
	for _, t := range d.topics {
		for i, del := range t.Deliverables {
			if del.ID == deliverableID {
				removed := del
				t.Deliverables = append(t.Deliverables[:i], t.Deliverables[i+1:]...)
				d.emitRows()
				return &removed
			}
		}
	}
	return nil
}

// FindDeliverable locates a deliverable and its owning topic and position.
func (d *Document) FindDeliverable(deliverableID string) (*Topic, int, *Deliverable) {
	for _, t := range d.topics {
		for i := range t.Deliverables {
			if t.Deliverables[i].ID == deliverableID {
				return t, i, &t.Deliverables[i]
			}
		}
	}
	return nil, 0, nil
}

// MoveDeliverable repositions a deliverable within its own topic.
func (d *Document) MoveDeliverable(deliverableID string, newIndex int) bool {
	topic, index, del := d.FindDeliverable(deliverableID)
	if del == nil || len(topic.Deliverables) == 0 {
		return false
	}
	moved := *del
	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex > len(topic.Deliverables)-1 {
		newIndex = len(topic.Deliverables) - 1
	}
	if newIndex == index {
		return false
	}
	topic.Deliverables = append(topic.Deliverables[:index], topic.Deliverables[index+1:]...)
	topic.Deliverables = append(topic.Deliverables[:newIndex], append([]Deliverable{moved}, topic.Deliverables[newIndex:]...)...)
	d.emitRows()
	return true
}

// MoveDeliverableToTopic transfers ownership to another topic at
// targetIndex (append when nil). Same-topic moves require an index.
func (d *Document) MoveDeliverableToTopic(deliverableID, targetTopicID string, targetIndex *int) bool {
	sourceTopic, sourceIndex, del := d.FindDeliverable(deliverableID)
	if del == nil {
		return false
	}
	targetTopic := d.GetTopic(targetTopicID)
	if targetTopic == nil {
		return false
	}
	moved := *del
	if sourceTopic.ID == targetTopicID {
		if targetIndex == nil {
			return false
		}
		return d.MoveDeliverable(deliverableID, *targetIndex)
	}
	sourceTopic.Deliverables = append(sourceTopic.Deliverables[:sourceIndex], sourceTopic.Deliverables[sourceIndex+1:]...)
	i := len(targetTopic.Deliverables)
	if targetIndex != nil {
		i = *targetIndex
		if i < 0 {
			i = 0
		}
		if i > len(targetTopic.Deliverables) {
			i = len(targetTopic.Deliverables)
		}
	}
	targetTopic.Deliverables = append(targetTopic.Deliverables[:i], append([]Deliverable{moved}, targetTopic.Deliverables[i:]...)...)
	d.emitRows()
	return true
}

// FindRow resolves a row id to its kind and owning topic.
func (d *Document) FindRow(rowID string) (RowKind, *Topic, *Deliverable) {
	for _, t := range d.topics {
		if t.ID == rowID {
			return RowTopic, t, nil
		}
		for i := range t.Deliverables {
			if t.Deliverables[i].ID == rowID {
				return RowDeliverable, t, &t.Deliverables[i]
			}
		}
	}
	return "", nil, nil
}

// TopicForRow returns the topic owning rowID (the topic itself for topic
// rows), or nil.
func (d *Document) TopicForRow(rowID string) *Topic {
	_, topic, _ := d.FindRow(rowID)
	return topic
}

// ── objects ─────────────────────────────────────────────────────────────────

// Object returns the stored object for id, or nil. The returned value is a
// shared snapshot: callers must Clone before changing fields.
func (d *Document) Object(id string) *CanvasObject {
	return d.objects[id]
}

// ObjectCount returns the number of live canvas objects.
func (d *Document) ObjectCount() int { return len(d.objects) }

// ObjectsInOrder returns all objects in insertion order. Insertion order is
// the tiebreak for equal z-indices during reordering.
func (d *Document) ObjectsInOrder() []*CanvasObject {
	out := make([]*CanvasObject, 0, len(d.objectOrder))
	for _, id := range d.objectOrder {
		if obj, ok := d.objects[id]; ok {
			out = append(out, obj)
		}
	}
	return out
}

func (d *Document) AddObject(obj *CanvasObject) {
	if _, exists := d.objects[obj.ID]; !exists {
		d.objectOrder = append(d.objectOrder, obj.ID)
	}
	d.objects[obj.ID] = obj
	d.emitObjects()
}

func (d *Document) UpdateObject(id string, replacement *CanvasObject) {
	if _, ok := d.objects[id]; !ok {
		return
	}
	d.objects[id] = replacement
	d.emitObjects()
}

func (d *Document) RemoveObject(id string) {
	if _, ok := d.objects[id]; !ok {
		return
	}
	delete(d.objects, id)
	for i, oid := range d.objectOrder {
		if oid == id {
			d.objectOrder = append(d.objectOrder[:i], d.objectOrder[i+1:]...)
			break
		}
	}
	d.emitObjects()
}
