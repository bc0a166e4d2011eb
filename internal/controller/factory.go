package controller

import (
	"github.com/jthomassen/roadline/internal/anchor"
	"github.com/jthomassen/roadline/internal/domain"
	"github.com/jthomassen/roadline/internal/history"
)

// MakeDefaultObject builds a normalized default instance for the creation
// UI. Point kinds collapse to a single week; arrows aim at their own row
// and end week until retargeted.
func (c *Controller) MakeDefaultObject(kind domain.Kind, rowID string, startWeek, endWeek int, color string) *domain.CanvasObject {
	if endWeek == 0 {
		endWeek = startWeek
	}
	if color == "" {
		if kind == domain.KindDeadline {
			color = domain.DeadlineDefaultColor
		} else if topic := c.doc.TopicForRow(rowID); topic != nil {
			color = topic.Color
		} else {
			color = domain.DefaultTopicColors[0]
		}
	}
	size := domain.DefaultSize
	if kind == domain.KindBox || kind == domain.KindText {
		size = domain.SizeMax
	}
	obj := &domain.CanvasObject{
		ID:           domain.NewID(),
		Kind:         kind,
		RowID:        rowID,
		StartWeek:    startWeek,
		EndWeek:      endWeek,
		TextAlign:    domain.AlignCenter,
		Color:        color,
		Size:         size,
		ZIndex:       c.nextZIndex(),
		Opacity:      domain.TextboxDefaultOpacity,
		ArrowHeadEnd: true,
	}
	if kind == domain.KindArrow {
		obj.TargetRowID = rowID
		obj.TargetWeek = domain.IntPtr(endWeek)
	}
	return Normalize(obj)
}

// MakeTextbox builds a normalized free-floating textbox on the synthetic
// canvas row.
func (c *Controller) MakeTextbox(x, y, width, height float64) *domain.CanvasObject {
	obj := &domain.CanvasObject{
		ID:           domain.NewID(),
		Kind:         domain.KindTextbox,
		RowID:        domain.CanvasRowID,
		TextAlign:    domain.AlignLeft,
		Color:        domain.TextboxDefaultColor,
		Size:         domain.DefaultSize,
		ZIndex:       c.nextZIndex(),
		X:            domain.FloatPtr(x),
		Y:            domain.FloatPtr(y),
		Width:        domain.FloatPtr(width),
		Height:       domain.FloatPtr(height),
		Opacity:      domain.TextboxNewOpacity,
		ArrowHeadEnd: true,
	}
	return Normalize(obj)
}

// AddAnchorLink anchors a textbox to a target object. A textbox carries at
// most one anchor, so existing links from the same source are replaced
// inside the same macro. Links render beneath both endpoints.
func (c *Controller) AddAnchorLink(sourceID, targetID string, side domain.Side, offset *float64) {
	source := c.doc.Object(sourceID)
	target := c.doc.Object(targetID)
	if source == nil || target == nil || sourceID == targetID ||
		source.Kind != domain.KindTextbox ||
		target.Kind == domain.KindLink || target.Kind == domain.KindTextbox || target.Kind == domain.KindConnector {
		c.noop("add_anchor_link", "invalid source/target")
		return
	}
	if c.layout == nil {
		c.noop("add_anchor_link", "no layout attached")
		return
	}
	sideValue := domain.NormalizeSide(side, domain.SideRight)
	offsetValue := clampUnit(offset)
	if offsetValue == nil {
		offsetValue = domain.FloatPtr(0.5)
	}
	targetPoint, ok := anchor.Center(target, c.layout)
	if !ok {
		c.noop("add_anchor_link", "target anchor unresolved")
		return
	}
	sourceAnchor := anchor.TextboxAnchorPoint(source, sideValue, offsetValue)
	link := &domain.CanvasObject{
		ID:               domain.NewID(),
		Kind:             domain.KindLink,
		RowID:            domain.CanvasRowID,
		Color:            domain.LinkLineColor,
		Size:             domain.DefaultSize,
		ZIndex:           underneathZIndex(source, target),
		Opacity:          domain.TextboxDefaultOpacity,
		LinkSourceID:     sourceID,
		LinkTargetID:     targetID,
		LinkSourceSide:   sideValue,
		LinkSourceOffset: offsetValue,
		LinkOffsetX:      domain.FloatPtr(sourceAnchor.X - targetPoint.X),
		LinkOffsetY:      domain.FloatPtr(sourceAnchor.Y - targetPoint.Y),
	}
	existing := c.linksFromSource(sourceID)
	c.log.BeginMacro("Anchor Textbox")
	for _, old := range existing {
		c.log.Push(&history.Command{Op: history.OpRemoveObject, Label: "Remove Anchor", Object: old})
	}
	c.log.Push(&history.Command{Op: history.OpAddObject, Label: "Add Anchor", Object: Normalize(link)})
	c.log.EndMacro()
	c.committed("add_anchor_link", "Anchor Textbox", len(existing)+1)
}

// AddConnectorArrow creates an edge-anchored connector between two objects.
func (c *Controller) AddConnectorArrow(sourceID, targetID string, sourceSide domain.Side, sourceOffset *float64, targetSide domain.Side, targetOffset *float64) {
	source := c.doc.Object(sourceID)
	target := c.doc.Object(targetID)
	if source == nil || target == nil || sourceID == targetID ||
		source.Kind == domain.KindLink || source.Kind == domain.KindConnector ||
		target.Kind == domain.KindLink || target.Kind == domain.KindConnector {
		c.noop("add_connector_arrow", "invalid source/target")
		return
	}
	srcOffset := clampUnit(sourceOffset)
	if srcOffset == nil {
		srcOffset = domain.FloatPtr(0.5)
	}
	dstOffset := clampUnit(targetOffset)
	if dstOffset == nil {
		dstOffset = domain.FloatPtr(0.5)
	}
	connector := &domain.CanvasObject{
		ID:                    domain.NewID(),
		Kind:                  domain.KindConnector,
		RowID:                 domain.CanvasRowID,
		Color:                 c.connectorDefaultColor,
		Size:                  c.connectorDefaultSize,
		ZIndex:                underneathZIndex(source, target),
		Opacity:               domain.TextboxDefaultOpacity,
		ArrowHeadEnd:          true,
		ConnectorSourceID:     sourceID,
		ConnectorTargetID:     targetID,
		ConnectorSourceSide:   domain.NormalizeSide(sourceSide, domain.SideRight),
		ConnectorSourceOffset: srcOffset,
		ConnectorTargetSide:   domain.NormalizeSide(targetSide, domain.SideLeft),
		ConnectorTargetOffset: dstOffset,
	}
	c.AddObject(connector, "Add Connector Arrow")
}

// underneathZIndex stacks a line just below both of its endpoints, avoiding
// the z-index 0 slot that AddObject treats as "unassigned".
func underneathZIndex(a, b *domain.CanvasObject) int {
	z := a.ZIndex
	if b.ZIndex < z {
		z = b.ZIndex
	}
	z--
	if z == 0 {
		z = -1
	}
	return z
}
