package domain

// Deliverable is a named lane owned by exactly one topic at a time.
type Deliverable struct {
	ID   string
	Name string
}

// Topic is a top-level lane grouping an ordered list of deliverables.
type Topic struct {
	ID           string
	Name         string
	Color        string
	Collapsed    bool
	Deliverables []Deliverable
}

// Clone returns a deep copy including the deliverables slice.
func (t *Topic) Clone() *Topic {
	c := *t
	c.Deliverables = make([]Deliverable, len(t.Deliverables))
	copy(c.Deliverables, t.Deliverables)
	return &c
}

// Equal compares name, color, collapse state and deliverable order.
func (t *Topic) Equal(other *Topic) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.ID != other.ID || t.Name != other.Name || t.Color != other.Color || t.Collapsed != other.Collapsed {
		return false
	}
	if len(t.Deliverables) != len(other.Deliverables) {
		return false
	}
	for i := range t.Deliverables {
		if t.Deliverables[i] != other.Deliverables[i] {
			return false
		}
	}
	return true
}
