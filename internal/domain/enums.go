package domain

type Kind string

const (
	KindBox       Kind = "box"
	KindText      Kind = "text"
	KindMilestone Kind = "milestone"
	KindCircle    Kind = "circle"
	KindDeadline  Kind = "deadline"
	KindArrow     Kind = "arrow"
	KindTextbox   Kind = "textbox"
	KindLink      Kind = "link"
	KindConnector Kind = "connector"
)

// ValidKinds is the canonical set of accepted object kinds.
var ValidKinds = map[Kind]bool{
	KindBox: true, KindText: true, KindMilestone: true, KindCircle: true,
	KindDeadline: true, KindArrow: true, KindTextbox: true, KindLink: true,
	KindConnector: true,
}

// IsPointKind reports whether the kind has zero temporal span.
func IsPointKind(k Kind) bool {
	return k == KindMilestone || k == KindCircle || k == KindDeadline
}

type Side string

const (
	SideLeft   Side = "left"
	SideTop    Side = "top"
	SideBottom Side = "bottom"
	SideRight  Side = "right"
)

// NormalizeSide maps unknown side values to the fallback.
func NormalizeSide(s Side, fallback Side) Side {
	switch s {
	case SideLeft, SideTop, SideBottom, SideRight:
		return s
	}
	return fallback
}

type ArrowDirection string

const (
	DirectionNone  ArrowDirection = "none"
	DirectionLeft  ArrowDirection = "left"
	DirectionRight ArrowDirection = "right"
)

// NormalizeArrowDirection maps anything outside {none,left,right} to none.
func NormalizeArrowDirection(d ArrowDirection) ArrowDirection {
	switch d {
	case DirectionLeft, DirectionRight:
		return d
	}
	return DirectionNone
}

type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

type RowKind string

const (
	RowTopic       RowKind = "topic"
	RowDeliverable RowKind = "deliverable"
)

// CanvasRowID is the synthetic row for free-floating objects (textboxes,
// links, connectors) that have no topic or deliverable lane.
const CanvasRowID = "__canvas__"
