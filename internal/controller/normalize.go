package controller

import "github.com/jthomassen/roadline/internal/domain"

// Normalize returns a corrected copy of obj with every per-kind field
// invariant applied. It is idempotent: normalizing an already-normalized
// object yields an equal object. Out-of-range numerics are clamped, never
// rejected.
func Normalize(obj *domain.CanvasObject) *domain.CanvasObject {
	o := obj.Clone()

	if o.Size < domain.SizeMin {
		o.Size = domain.SizeMin
	}
	if o.Size > domain.SizeMax {
		o.Size = domain.SizeMax
	}
	if o.Opacity < 0 {
		o.Opacity = 0
	}
	if o.Opacity > 1 {
		o.Opacity = 1
	}

	// Explicitly blank rich-text overrides collapse to absent so "no
	// override" and "blank override" stay distinguishable in saved files.
	o.TextHTML = blankToNil(o.TextHTML)
	o.NotesHTML = blankToNil(o.NotesHTML)
	o.ScopeHTML = blankToNil(o.ScopeHTML)
	o.RisksHTML = blankToNil(o.RisksHTML)

	// Chevron decoration is a box-only concept.
	o.ArrowDirection = domain.NormalizeArrowDirection(o.ArrowDirection)
	if o.Kind != domain.KindBox {
		o.ArrowDirection = domain.DirectionNone
	}

	// The end head defaults on. Arrows and connectors may drop it as long
	// as the start head is set; every other kind keeps it at the default.
	switch o.Kind {
	case domain.KindArrow, domain.KindConnector:
		if !o.ArrowHeadStart && !o.ArrowHeadEnd {
			o.ArrowHeadEnd = true
		}
	default:
		o.ArrowHeadEnd = true
	}

	switch o.Kind {
	case domain.KindMilestone, domain.KindCircle, domain.KindDeadline:
		o.EndWeek = o.StartWeek
	case domain.KindArrow:
		target := domain.IntOr(o.EndWeek, o.TargetWeek)
		o.TargetWeek = domain.IntPtr(target)
		o.EndWeek = target
	case domain.KindLink:
		o.LinkOffsetX = domain.FloatPtr(domain.FloatOr(0, o.LinkOffsetX))
		o.LinkOffsetY = domain.FloatPtr(domain.FloatOr(0, o.LinkOffsetY))
		o.LinkSourceOffset = clampUnit(o.LinkSourceOffset)
	case domain.KindConnector:
		o.ConnectorSourceOffset = clampUnit(o.ConnectorSourceOffset)
		o.ConnectorTargetOffset = clampUnit(o.ConnectorTargetOffset)
	case domain.KindTextbox:
		o.X = domain.FloatPtr(domain.FloatOr(0, o.X))
		o.Y = domain.FloatPtr(domain.FloatOr(0, o.Y))
		width := domain.FloatOr(domain.TextboxMinWidth, o.Width)
		if width < domain.TextboxMinWidth {
			width = domain.TextboxMinWidth
		}
		height := domain.FloatOr(domain.TextboxMinHeight, o.Height)
		if height < domain.TextboxMinHeight {
			height = domain.TextboxMinHeight
		}
		o.Width = domain.FloatPtr(width)
		o.Height = domain.FloatPtr(height)
	default:
		// box and text span a week range.
		if o.EndWeek < o.StartWeek {
			o.EndWeek = o.StartWeek
		}
	}

	return o
}

func blankToNil(p *string) *string {
	if p != nil && *p == "" {
		return nil
	}
	return p
}

func clampUnit(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return &v
}
