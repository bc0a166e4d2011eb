package anchor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jthomassen/roadline/internal/domain"
	"github.com/jthomassen/roadline/internal/layout"
)

func TestTrackerFallsBackToCachedPoint(t *testing.T) {
	doc := domain.NewDocument(2026)
	doc.InsertTopic(&domain.Topic{
		ID: "t1", Name: "Platform", Color: "#4E79A7",
		Deliverables: []domain.Deliverable{{ID: "d1", Name: "API"}},
	}, nil)
	l := layout.New(doc, 40)
	tracker := NewTracker()

	obj := &domain.CanvasObject{ID: "m1", Kind: domain.KindMilestone, RowID: "d1", StartWeek: 5, Size: 3}

	pt, ok := tracker.Center(obj, l)
	require.True(t, ok)

	// Collapse the topic: the row disappears, the cached point survives.
	doc.Topics()[0].Collapsed = true
	l.Rebuild(doc)

	cached, ok := tracker.Center(obj, l)
	require.True(t, ok)
	assert.Equal(t, pt, cached)

	// Expanding again resolves fresh geometry.
	doc.Topics()[0].Collapsed = false
	l.Rebuild(doc)
	fresh, ok := tracker.Center(obj, l)
	require.True(t, ok)
	assert.Equal(t, pt, fresh)
}

func TestTrackerNeverResolvedReportsFalse(t *testing.T) {
	doc := domain.NewDocument(2026)
	l := layout.New(doc, 40)
	tracker := NewTracker()

	obj := &domain.CanvasObject{ID: "m1", Kind: domain.KindMilestone, RowID: "ghost", StartWeek: 5}
	_, ok := tracker.Center(obj, l)
	assert.False(t, ok)
}

func TestTrackerEdgeRolesAreIndependent(t *testing.T) {
	doc := domain.NewDocument(2026)
	doc.InsertTopic(&domain.Topic{ID: "t1", Name: "Platform", Color: "#4E79A7"}, nil)
	l := layout.New(doc, 40)
	tracker := NewTracker()

	obj := &domain.CanvasObject{ID: "b1", Kind: domain.KindBox, RowID: "t1", StartWeek: 1, EndWeek: 4, Size: 3}

	src, ok := tracker.Edge(obj, l, domain.SideRight, domain.FloatPtr(0.5), "source")
	require.True(t, ok)
	dst, ok := tracker.Edge(obj, l, domain.SideLeft, domain.FloatPtr(0.5), "target")
	require.True(t, ok)
	assert.NotEqual(t, src, dst)
}

func TestTrackerForget(t *testing.T) {
	doc := domain.NewDocument(2026)
	doc.InsertTopic(&domain.Topic{ID: "t1", Name: "Platform", Color: "#4E79A7"}, nil)
	l := layout.New(doc, 40)
	tracker := NewTracker()

	obj := &domain.CanvasObject{ID: "b1", Kind: domain.KindBox, RowID: "t1", StartWeek: 1, EndWeek: 2, Size: 3}
	_, ok := tracker.Center(obj, l)
	require.True(t, ok)

	tracker.Forget("b1")
	doc.RemoveTopic("t1")
	l.Rebuild(doc)

	_, ok = tracker.Center(obj, l)
	assert.False(t, ok, "forgotten objects do not resurrect stale geometry")
}
