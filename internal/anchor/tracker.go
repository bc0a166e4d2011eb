package anchor

import (
	"github.com/jthomassen/roadline/internal/domain"
	"github.com/jthomassen/roadline/internal/layout"
)

// Tracker caches the last successfully resolved anchor point per object and
// role. When an object becomes unresolvable (its row was deleted or its
// topic collapsed), dependent links and connectors keep rendering from the
// cached point instead of disappearing, until the object resolves again or
// is removed.
type Tracker struct {
	last map[string]Point
}

func NewTracker() *Tracker {
	return &Tracker{last: make(map[string]Point)}
}

// Center resolves an object's center point, falling back to the cache.
// Reports false only when the point never resolved before.
func (t *Tracker) Center(obj *domain.CanvasObject, l *layout.Layout) (Point, bool) {
	key := obj.ID + "/center"
	if pt, ok := Center(obj, l); ok {
		t.last[key] = pt
		return pt, true
	}
	pt, ok := t.last[key]
	return pt, ok
}

// Edge resolves an edge anchor point with the same cache fallback. The role
// distinguishes the two ends of a connector on the same object.
func (t *Tracker) Edge(obj *domain.CanvasObject, l *layout.Layout, side domain.Side, offset *float64, role string) (Point, bool) {
	key := obj.ID + "/" + role + "/" + string(side)
	if pt, ok := ObjectEdgePoint(obj, l, side, offset); ok {
		t.last[key] = pt
		return pt, true
	}
	pt, ok := t.last[key]
	return pt, ok
}

// Forget drops all cached points for an object id. Called when the object
// is deleted so a later id reuse cannot resurrect stale geometry.
func (t *Tracker) Forget(objectID string) {
	for key := range t.last {
		if len(key) >= len(objectID) && key[:len(objectID)] == objectID {
			delete(t.last, key)
		}
	}
}
