// Package controller is the single entry point for every document change.
// It normalizes per-kind invariants, computes cascade sets for anchored
// objects, and funnels all mutations through the command log so a single
// user gesture reverses as one unit.
package controller

import (
	"math"

	"github.com/jthomassen/roadline/internal/anchor"
	"github.com/jthomassen/roadline/internal/domain"
	"github.com/jthomassen/roadline/internal/history"
	"github.com/jthomassen/roadline/internal/layout"
)

// anchorEpsilon is the smallest stored-offset change worth a command.
const anchorEpsilon = 0.01

type Controller struct {
	doc      *domain.Document
	log      *history.Log
	layout   *layout.Layout
	observer MutationObserver
	palette  []string

	// Sticky defaults: the last size/color applied to a connector or
	// arrow seeds the next one created.
	connectorDefaultSize  int
	connectorDefaultColor string
	arrowDefaultSize      int
	arrowDefaultColor     string
}

func New(doc *domain.Document, log *history.Log, observers ...MutationObserver) *Controller {
	return &Controller{
		doc:                   doc,
		log:                   log,
		observer:              observerOrNoop(observers),
		palette:               domain.DefaultTopicColors,
		connectorDefaultSize:  1,
		connectorDefaultColor: domain.ConnectorDefaultColor,
		arrowDefaultSize:      1,
		arrowDefaultColor:     domain.ConnectorDefaultColor,
	}
}

// SetLayout attaches the layout used for anchor-dependent cascades. Without
// one, geometry cascades are skipped (structure edits still work).
func (c *Controller) SetLayout(l *layout.Layout) { c.layout = l }

// SetPalette overrides the topic color cycle. Empty input keeps the
// built-in palette.
func (c *Controller) SetPalette(colors []string) {
	if len(colors) > 0 {
		c.palette = colors
	}
}

// Log exposes undo/redo to the host UI.
func (c *Controller) Log() *history.Log { return c.log }

// ConnectorDefaults returns the sticky size and color seeded into the next
// connector, tracking the most recent connector/arrow style edits.
func (c *Controller) ConnectorDefaults() (int, string) {
	return c.connectorDefaultSize, c.connectorDefaultColor
}

// ArrowDefaults returns the sticky size and color for new arrows.
func (c *Controller) ArrowDefaults() (int, string) {
	return c.arrowDefaultSize, c.arrowDefaultColor
}

func (c *Controller) noop(action, reason string) {
	c.observer.ObserveMutation(MutationEvent{Action: action, NoOp: true, Reason: reason})
}

func (c *Controller) committed(action, label string, commands int) {
	c.observer.ObserveMutation(MutationEvent{Action: action, Label: label, Commands: commands})
}

func (c *Controller) nextZIndex() int {
	objs := c.doc.ObjectsInOrder()
	if len(objs) == 0 {
		return 0
	}
	max := objs[0].ZIndex
	for _, obj := range objs[1:] {
		if obj.ZIndex > max {
			max = obj.ZIndex
		}
	}
	return max + 1
}

func (c *Controller) linksFromSource(sourceID string) []*domain.CanvasObject {
	var out []*domain.CanvasObject
	for _, obj := range c.doc.ObjectsInOrder() {
		if obj.Kind == domain.KindLink && obj.LinkSourceID == sourceID {
			out = append(out, obj)
		}
	}
	return out
}

func (c *Controller) linksForTarget(targetID string, skipSources map[string]bool) []*domain.CanvasObject {
	var out []*domain.CanvasObject
	for _, obj := range c.doc.ObjectsInOrder() {
		if obj.Kind == domain.KindLink && obj.LinkTargetID == targetID &&
			obj.LinkSourceID != "" && !skipSources[obj.LinkSourceID] {
			out = append(out, obj)
		}
	}
	return out
}

// AddObject normalizes and appends an object. Objects arriving without an
// explicit z-index go on top of the stack.
func (c *Controller) AddObject(obj *domain.CanvasObject, label string) {
	if label == "" {
		label = "Add Object"
	}
	if obj.ZIndex == 0 && c.doc.ObjectCount() > 0 {
		obj = obj.Clone()
		obj.ZIndex = c.nextZIndex()
	}
	obj = Normalize(obj)
	c.log.Push(&history.Command{Op: history.OpAddObject, Label: label, Object: obj})
	c.committed("add_object", label, 1)
}

// RemoveObject deletes an object together with every link and connector
// referencing it, as one macro, so undo restores the whole attachment set.
func (c *Controller) RemoveObject(id string) {
	obj := c.doc.Object(id)
	if obj == nil {
		c.noop("remove_object", "unknown object id")
		return
	}
	var attached []*domain.CanvasObject
	for _, other := range c.doc.ObjectsInOrder() {
		if other.ID != id && other.References(id) {
			attached = append(attached, other)
		}
	}
	if len(attached) == 0 {
		c.log.Push(&history.Command{Op: history.OpRemoveObject, Label: "Remove Object", Object: obj})
		c.committed("remove_object", "Remove Object", 1)
		return
	}
	c.log.BeginMacro("Remove Object")
	for _, a := range attached {
		c.log.Push(&history.Command{Op: history.OpRemoveObject, Label: "Remove Object", Object: a})
	}
	c.log.Push(&history.Command{Op: history.OpRemoveObject, Label: "Remove Object", Object: obj})
	c.log.EndMacro()
	c.committed("remove_object", "Remove Object", len(attached)+1)
}

// UpdateOptions tune cascade behavior during group gestures.
type UpdateOptions struct {
	// SkipAnchorSources names link source textboxes that are moving in the
	// same gesture; their repositioning cascade is suppressed.
	SkipAnchorSources map[string]bool
	// DeferLinkUpdates suppresses stored-offset recomputation for links
	// whose source is the edited textbox. Callers finish the gesture with
	// RefreshAnchorOffsets.
	DeferLinkUpdates bool
}

// UpdateObject applies mutate to a copy of the stored object, normalizes the
// result, and commits it together with any cascade updates as one atomic
// step. Edits producing an unchanged object push nothing.
func (c *Controller) UpdateObject(id string, label string, mutate func(*domain.CanvasObject)) {
	c.UpdateObjectWith(id, label, mutate, UpdateOptions{})
}

func (c *Controller) UpdateObjectWith(id string, label string, mutate func(*domain.CanvasObject), opts UpdateOptions) {
	obj := c.doc.Object(id)
	if obj == nil {
		c.noop("update_object", "unknown object id")
		return
	}
	next := obj.Clone()
	mutate(next)
	next = Normalize(next)
	if next.Equal(obj) {
		c.noop("update_object", "no-op edit")
		return
	}
	c.rememberDefaults(obj, next)

	type pair struct {
		old, new *domain.CanvasObject
		label    string
	}
	updates := []pair{{obj, next, label}}

	// Cascade 1: the edited object is a link target. Every anchored
	// textbox follows so it keeps its visual position relative to the
	// target's new anchor point.
	skip := opts.SkipAnchorSources
	if skip == nil {
		skip = map[string]bool{}
	}
	if targetLinks := c.linksForTarget(id, skip); len(targetLinks) > 0 {
		if targetPoint, ok := c.anchorCenter(next); ok {
			for _, link := range targetLinks {
				source := c.doc.Object(link.LinkSourceID)
				if source == nil || source.Kind != domain.KindTextbox {
					continue
				}
				pt := anchor.Point{
					X: targetPoint.X + domain.FloatOr(0, link.LinkOffsetX),
					Y: targetPoint.Y + domain.FloatOr(0, link.LinkOffsetY),
				}
				width := domain.FloatOr(domain.TextboxMinWidth, source.Width)
				height := domain.FloatOr(domain.TextboxMinHeight, source.Height)
				pos := anchor.TextboxPosForAnchor(pt, width, height, link.LinkSourceSide, link.LinkSourceOffset)
				moved := source.Clone()
				moved.X = domain.FloatPtr(pos.X)
				moved.Y = domain.FloatPtr(pos.Y)
				if c.layout != nil {
					moved.StartWeek = c.layout.WeekFromX(pos.X, false)
					moved.EndWeek = c.layout.WeekFromX(pos.X+width, false)
				}
				moved = Normalize(moved)
				if !moved.Equal(source) {
					updates = append(updates, pair{source, moved, "Anchor Textbox"})
				}
			}
		}
	}

	// Cascade 2: the edited object is a link source textbox. Stored pixel
	// offsets are recomputed from its new anchor point.
	var linkUpdates []pair
	if obj.Kind == domain.KindTextbox && !opts.DeferLinkUpdates {
		for _, link := range c.linksFromSource(id) {
			if updated, changed := c.recomputeLinkOffset(link, next); changed {
				linkUpdates = append(linkUpdates, pair{link, updated, "Update Anchor"})
			}
		}
	}

	total := len(updates) + len(linkUpdates)
	if total > 1 {
		c.log.BeginMacro(label)
	}
	for _, u := range updates {
		c.log.Push(&history.Command{Op: history.OpUpdateObject, Label: u.label, OldObject: u.old, NewObject: u.new})
	}
	for _, u := range linkUpdates {
		c.log.Push(&history.Command{Op: history.OpUpdateObject, Label: u.label, OldObject: u.old, NewObject: u.new})
	}
	if total > 1 {
		c.log.EndMacro()
	}
	c.committed("update_object", label, total)
}

// recomputeLinkOffset rebuilds a link's stored target-relative offset from
// the given source textbox state. Changes under anchorEpsilon are absorbed.
func (c *Controller) recomputeLinkOffset(link *domain.CanvasObject, source *domain.CanvasObject) (*domain.CanvasObject, bool) {
	target := c.doc.Object(link.LinkTargetID)
	if target == nil {
		return nil, false
	}
	targetPoint, ok := c.anchorCenter(target)
	if !ok {
		return nil, false
	}
	sourceAnchor := anchor.TextboxAnchorPoint(source, link.LinkSourceSide, link.LinkSourceOffset)
	newX := sourceAnchor.X - targetPoint.X
	newY := sourceAnchor.Y - targetPoint.Y
	oldX := domain.FloatOr(0, link.LinkOffsetX)
	oldY := domain.FloatOr(0, link.LinkOffsetY)
	if math.Abs(newX-oldX) <= anchorEpsilon && math.Abs(newY-oldY) <= anchorEpsilon {
		return nil, false
	}
	updated := link.Clone()
	updated.LinkOffsetX = domain.FloatPtr(newX)
	updated.LinkOffsetY = domain.FloatPtr(newY)
	return Normalize(updated), true
}

func (c *Controller) anchorCenter(obj *domain.CanvasObject) (anchor.Point, bool) {
	if c.layout == nil {
		return anchor.Point{}, false
	}
	return anchor.Center(obj, c.layout)
}

func (c *Controller) rememberDefaults(old, next *domain.CanvasObject) {
	if old.Kind == domain.KindConnector && next.Size != old.Size {
		c.connectorDefaultSize = next.Size
	}
	if old.Kind == domain.KindArrow && next.Size != old.Size {
		c.arrowDefaultSize = next.Size
	}
	if (old.Kind == domain.KindConnector || old.Kind == domain.KindArrow) && next.Color != old.Color {
		c.connectorDefaultColor = next.Color
	}
	if old.Kind == domain.KindArrow && next.Color != old.Color {
		c.arrowDefaultColor = next.Color
	}
}

// RefreshAnchorOffsets recomputes stored link offsets for the given source
// textboxes after a group gesture that deferred per-move updates. All
// resulting changes commit as one macro.
func (c *Controller) RefreshAnchorOffsets(sourceIDs map[string]bool, label string) {
	if len(sourceIDs) == 0 || c.layout == nil {
		return
	}
	if label == "" {
		label = "Update Anchors"
	}
	type pair struct{ old, new *domain.CanvasObject }
	var updates []pair
	for sourceID := range sourceIDs {
		source := c.doc.Object(sourceID)
		if source == nil || source.Kind != domain.KindTextbox {
			continue
		}
		for _, link := range c.linksFromSource(sourceID) {
			if updated, changed := c.recomputeLinkOffset(link, source); changed {
				updates = append(updates, pair{link, updated})
			}
		}
	}
	if len(updates) == 0 {
		c.noop("refresh_anchor_offsets", "offsets already current")
		return
	}
	c.log.BeginMacro(label)
	for _, u := range updates {
		c.log.Push(&history.Command{Op: history.OpUpdateObject, Label: "Update Anchor", OldObject: u.old, NewObject: u.new})
	}
	c.log.EndMacro()
	c.committed("refresh_anchor_offsets", label, len(updates))
}

// DuplicateObject clones an object with a fresh id. Week-based kinds shift
// forward by their own span so the clone never overlaps its source;
// textboxes shift right by a width-proportional padding instead.
func (c *Controller) DuplicateObject(id string) *domain.CanvasObject {
	obj := c.doc.Object(id)
	if obj == nil {
		c.noop("duplicate_object", "unknown object id")
		return nil
	}
	clone := obj.Clone()
	clone.ID = domain.NewID()
	clone.ZIndex = c.nextZIndex()
	if obj.Kind == domain.KindTextbox {
		width := domain.FloatOr(domain.TextboxMinWidth, obj.Width)
		padding := math.Max(10.0, width*0.1)
		clone.X = domain.FloatPtr(domain.FloatOr(0, obj.X) + width + padding)
	} else {
		delta := duplicateSpan(obj)
		clone.StartWeek = obj.StartWeek + delta
		clone.EndWeek = obj.EndWeek + delta
		if obj.TargetWeek != nil {
			clone.TargetWeek = domain.IntPtr(*obj.TargetWeek + delta)
		}
		if obj.ArrowMidWeek != nil {
			clone.ArrowMidWeek = domain.IntPtr(*obj.ArrowMidWeek + delta)
		}
	}
	c.AddObject(clone, "Duplicate Object")
	return clone
}

// duplicateSpan is the forward shift for a duplicate: the object's own
// span, floored at one week.
func duplicateSpan(obj *domain.CanvasObject) int {
	end := domain.IntOr(obj.EndWeek, obj.TargetWeek)
	span := end - obj.StartWeek
	if span < 0 {
		span = -span
	}
	span++
	if span < 1 {
		return 1
	}
	return span
}
