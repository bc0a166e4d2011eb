// Package anchor computes canvas-space geometry for canvas objects: per-kind
// bounding shapes, a representative center point used by simple links, and
// parametrized edge anchor points used by connectors. All functions are pure
// reads of the current layout; absence of a row is reported, never raised.
package anchor

import (
	"math"

	"github.com/jthomassen/roadline/internal/domain"
	"github.com/jthomassen/roadline/internal/layout"
)

type Point struct {
	X float64
	Y float64
}

type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2.0, Y: r.Y + r.Height/2.0}
}

// SizeScale maps the 1-5 size field onto a row-height fraction in
// [0.6, 1.0].
func SizeScale(size int) float64 {
	scale := 0.5 + 0.1*float64(size)
	if scale < 0.6 {
		return 0.6
	}
	if scale > 1.0 {
		return 1.0
	}
	return scale
}

// ChevronDepth is how far a box's chevron notch cuts into its horizontal
// edges: at least 8 units, scaling with height, but never more than 45% of
// the width.
func ChevronDepth(width, height float64) float64 {
	depth := math.Max(8.0, height*0.35)
	limit := math.Max(1.0, width*0.45)
	return math.Min(depth, limit)
}

func clampOffset(offset *float64) float64 {
	v := 0.5
	if offset != nil {
		v = *offset
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Center returns the representative anchor point for an object, used as the
// target end of simple links. Reports false when the object's row (or an
// arrow's target row) is not present in the current layout.
func Center(obj *domain.CanvasObject, l *layout.Layout) (Point, bool) {
	switch obj.Kind {
	case domain.KindTextbox:
		return textboxRect(obj).Center(), true
	case domain.KindMilestone:
		// Milestones hang on the week's left edge; circles on its center.
		// Preserved as saved-file visual contract.
		cy, ok := l.RowCenterY(obj.RowID)
		if !ok {
			return Point{}, false
		}
		return Point{X: l.WeekLeftX(obj.StartWeek), Y: cy}, true
	case domain.KindCircle:
		cy, ok := l.RowCenterY(obj.RowID)
		if !ok {
			return Point{}, false
		}
		return Point{X: l.WeekCenterX(obj.StartWeek), Y: cy}, true
	case domain.KindDeadline:
		return Point{
			X: l.WeekLeftX(obj.StartWeek),
			Y: l.HeaderHeight + l.TotalHeight/2.0,
		}, true
	case domain.KindArrow:
		start, end, ok := arrowEndpoints(obj, l)
		if !ok {
			return Point{}, false
		}
		return Point{X: (start.X + end.X) / 2.0, Y: (start.Y + end.Y) / 2.0}, true
	case domain.KindLink, domain.KindConnector:
		return Point{}, false
	}
	r, ok := spanRect(obj, l)
	if !ok {
		return Point{}, false
	}
	return r.Center(), true
}

// Bounds returns the bounding shape used for edge anchoring. Links and
// connectors have no intrinsic geometry and always report false.
func Bounds(obj *domain.CanvasObject, l *layout.Layout) (Rect, bool) {
	switch obj.Kind {
	case domain.KindLink, domain.KindConnector:
		return Rect{}, false
	case domain.KindTextbox:
		return textboxRect(obj), true
	case domain.KindMilestone:
		return pointKindRect(obj, l, l.WeekLeftX(obj.StartWeek))
	case domain.KindCircle:
		return pointKindRect(obj, l, l.WeekCenterX(obj.StartWeek))
	case domain.KindDeadline:
		cx := l.WeekLeftX(obj.StartWeek)
		width := math.Max(1.0, float64(obj.Size))
		return Rect{
			X:      cx - width/2.0,
			Y:      0,
			Width:  width,
			Height: l.HeaderHeight + l.TotalHeight,
		}, true
	case domain.KindArrow:
		start, end, ok := arrowEndpoints(obj, l)
		if !ok {
			return Rect{}, false
		}
		return Rect{
			X:      math.Min(start.X, end.X),
			Y:      math.Min(start.Y, end.Y),
			Width:  math.Max(1.0, math.Abs(end.X-start.X)),
			Height: math.Max(1.0, math.Abs(end.Y-start.Y)),
		}, true
	}
	return spanRect(obj, l)
}

// EdgePoint interpolates along the requested side of bounds. For chevron-cut
// boxes (direction left/right) the left/right x is pulled inward so the
// point lands on the drawn outline rather than the rectangle's true edge:
// the inset is deepest where the notch is deepest, which depends on whether
// the notch points into or out of the requested side.
func EdgePoint(bounds Rect, side domain.Side, offset *float64, direction domain.ArrowDirection) Point {
	v := clampOffset(offset)
	width := math.Max(1.0, bounds.Width)
	height := math.Max(1.0, bounds.Height)
	depth := ChevronDepth(width, height)
	direction = domain.NormalizeArrowDirection(direction)
	// 0 at mid-height, 1 at the corners.
	edgeFactor := math.Abs(v*2.0 - 1.0)
	centerFactor := 1.0 - edgeFactor

	switch side {
	case domain.SideTop:
		return Point{X: bounds.X + width*v, Y: bounds.Y}
	case domain.SideBottom:
		return Point{X: bounds.X + width*v, Y: bounds.Bottom()}
	case domain.SideLeft:
		x := bounds.X
		switch direction {
		case domain.DirectionLeft:
			x += depth * edgeFactor
		case domain.DirectionRight:
			x += depth * centerFactor
		}
		return Point{X: x, Y: bounds.Y + height*v}
	}
	x := bounds.Right()
	switch direction {
	case domain.DirectionRight:
		x -= depth * edgeFactor
	case domain.DirectionLeft:
		x -= depth * centerFactor
	}
	return Point{X: x, Y: bounds.Y + height*v}
}

// ObjectEdgePoint resolves an edge anchor for an object in one call.
func ObjectEdgePoint(obj *domain.CanvasObject, l *layout.Layout, side domain.Side, offset *float64) (Point, bool) {
	b, ok := Bounds(obj, l)
	if !ok {
		return Point{}, false
	}
	direction := domain.DirectionNone
	if obj.Kind == domain.KindBox {
		direction = obj.ArrowDirection
	}
	return EdgePoint(b, side, offset, direction), true
}

// TextboxAnchorPoint returns the point on a textbox's edge that a link line
// departs from.
func TextboxAnchorPoint(obj *domain.CanvasObject, side domain.Side, offset *float64) Point {
	r := textboxRect(obj)
	v := clampOffset(offset)
	switch side {
	case domain.SideLeft:
		return Point{X: r.X, Y: r.Y + r.Height*v}
	case domain.SideTop:
		return Point{X: r.X + r.Width*v, Y: r.Y}
	case domain.SideBottom:
		return Point{X: r.X + r.Width*v, Y: r.Bottom()}
	}
	return Point{X: r.Right(), Y: r.Y + r.Height*v}
}

// TextboxPosForAnchor inverts TextboxAnchorPoint: given where the anchor
// point must land, it returns the top-left position that puts it there.
func TextboxPosForAnchor(pt Point, width, height float64, side domain.Side, offset *float64) Point {
	v := clampOffset(offset)
	switch side {
	case domain.SideLeft:
		return Point{X: pt.X, Y: pt.Y - height*v}
	case domain.SideTop:
		return Point{X: pt.X - width*v, Y: pt.Y}
	case domain.SideBottom:
		return Point{X: pt.X - width*v, Y: pt.Y - height}
	}
	return Point{X: pt.X - width, Y: pt.Y - height*v}
}

func textboxRect(obj *domain.CanvasObject) Rect {
	return Rect{
		X:      domain.FloatOr(0, obj.X),
		Y:      domain.FloatOr(0, obj.Y),
		Width:  domain.FloatOr(domain.TextboxMinWidth, obj.Width),
		Height: domain.FloatOr(domain.TextboxMinHeight, obj.Height),
	}
}

// pointKindRect sizes a milestone diamond or circle ellipse against the
// smaller of week width and row height.
func pointKindRect(obj *domain.CanvasObject, l *layout.Layout, centerX float64) (Rect, bool) {
	rowHeight, ok := l.RowHeight(obj.RowID)
	if !ok {
		return Rect{}, false
	}
	cy, _ := l.RowCenterY(obj.RowID)
	size := math.Min(l.WeekWidth, rowHeight) * SizeScale(obj.Size)
	return Rect{X: centerX - size/2.0, Y: cy - size/2.0, Width: size, Height: size}, true
}

// spanRect is the rectangle for box/text kinds: the full week span wide,
// size-scaled row height, vertically centered in the row.
func spanRect(obj *domain.CanvasObject, l *layout.Layout) (Rect, bool) {
	rowHeight, ok := l.RowHeight(obj.RowID)
	if !ok {
		return Rect{}, false
	}
	top, _ := l.RowTopY(obj.RowID)
	height := rowHeight * SizeScale(obj.Size)
	weeks := obj.EndWeek - obj.StartWeek + 1
	if weeks < 1 {
		weeks = 1
	}
	return Rect{
		X:      l.WeekLeftX(obj.StartWeek),
		Y:      top + (rowHeight-height)/2.0,
		Width:  float64(weeks) * l.WeekWidth,
		Height: height,
	}, true
}

// arrowEndpoints resolves an arrow's start and end points. When the arrow
// carries connector-style source/target object ids those anchor points win;
// otherwise the endpoints are row-center to target-row-center.
func arrowEndpoints(obj *domain.CanvasObject, l *layout.Layout) (Point, Point, bool) {
	startY, ok := l.RowCenterY(obj.RowID)
	if !ok {
		return Point{}, Point{}, false
	}
	targetRow := obj.TargetRowID
	if targetRow == "" {
		targetRow = obj.RowID
	}
	endY, ok := l.RowCenterY(targetRow)
	if !ok {
		return Point{}, Point{}, false
	}
	targetWeek := domain.IntOr(obj.EndWeek, obj.TargetWeek)
	start := Point{X: l.WeekCenterX(obj.StartWeek), Y: startY}
	end := Point{X: l.WeekCenterX(targetWeek), Y: endY}
	return start, end, true
}
