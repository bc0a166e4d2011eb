package controller

import (
	"sort"

	"github.com/jthomassen/roadline/internal/domain"
	"github.com/jthomassen/roadline/internal/history"
)

type ReorderAction string

const (
	ReorderFront    ReorderAction = "front"
	ReorderBack     ReorderAction = "back"
	ReorderForward  ReorderAction = "forward"
	ReorderBackward ReorderAction = "backward"
)

// ReorderObjects restacks the selected objects. Front/back move the
// selection to the extremes of the z-order; forward/backward are
// incremental, letting each selected object pass exactly one non-selected
// neighbor per call. Z-indices are then reassigned densely (0..n-1) inside
// one macro, skipping objects whose index did not change.
func (c *Controller) ReorderObjects(ids []string, action ReorderAction) {
	selected := map[string]bool{}
	for _, id := range ids {
		if c.doc.Object(id) != nil {
			selected[id] = true
		}
	}
	if len(selected) == 0 {
		c.noop("reorder_objects", "no live selection")
		return
	}
	order := c.orderedObjectIDs()

	switch action {
	case ReorderFront:
		order = partition(order, selected, false)
		c.applyZOrder(order, "Bring to Front")
	case ReorderBack:
		order = partition(order, selected, true)
		c.applyZOrder(order, "Send to Back")
	case ReorderForward:
		for i := len(order) - 2; i >= 0; i-- {
			if selected[order[i]] && !selected[order[i+1]] {
				order[i], order[i+1] = order[i+1], order[i]
			}
		}
		c.applyZOrder(order, "Bring Forward")
	case ReorderBackward:
		for i := 1; i < len(order); i++ {
			if selected[order[i]] && !selected[order[i-1]] {
				order[i], order[i-1] = order[i-1], order[i]
			}
		}
		c.applyZOrder(order, "Send Backward")
	}
}

// orderedObjectIDs returns all object ids sorted by (z-index, insertion
// order) — the total stacking order.
func (c *Controller) orderedObjectIDs() []string {
	objs := c.doc.ObjectsInOrder()
	idx := make(map[string]int, len(objs))
	for i, obj := range objs {
		idx[obj.ID] = i
	}
	sorted := make([]*domain.CanvasObject, len(objs))
	copy(sorted, objs)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].ZIndex != sorted[b].ZIndex {
			return sorted[a].ZIndex < sorted[b].ZIndex
		}
		return idx[sorted[a].ID] < idx[sorted[b].ID]
	})
	ids := make([]string, len(sorted))
	for i, obj := range sorted {
		ids[i] = obj.ID
	}
	return ids
}

// partition keeps relative order within both groups; selectedFirst picks
// which group leads.
func partition(order []string, selected map[string]bool, selectedFirst bool) []string {
	var in, out []string
	for _, id := range order {
		if selected[id] {
			in = append(in, id)
		} else {
			out = append(out, id)
		}
	}
	if selectedFirst {
		return append(in, out...)
	}
	return append(out, in...)
}

func (c *Controller) applyZOrder(order []string, label string) {
	type pair struct{ old, new *domain.CanvasObject }
	var updates []pair
	for i, id := range order {
		obj := c.doc.Object(id)
		if obj == nil || obj.ZIndex == i {
			continue
		}
		updated := obj.Clone()
		updated.ZIndex = i
		updates = append(updates, pair{obj, Normalize(updated)})
	}
	if len(updates) == 0 {
		c.noop("reorder_objects", "order unchanged")
		return
	}
	c.log.BeginMacro(label)
	for _, u := range updates {
		c.log.Push(&history.Command{Op: history.OpUpdateObject, Label: "Reorder", OldObject: u.old, NewObject: u.new})
	}
	c.log.EndMacro()
	c.committed("reorder_objects", label, len(updates))
}
