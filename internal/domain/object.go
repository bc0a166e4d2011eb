package domain

// CanvasObject is the universal schedule entity. Treated as an immutable
// value: every mutation builds a new object via Clone plus field changes,
// so command history can hold old/new snapshots safely.
type CanvasObject struct {
	ID        string
	Kind      Kind
	RowID     string
	StartWeek int
	EndWeek   int

	Text      string
	TextAlign TextAlign
	TextHTML  *string
	Notes     string
	NotesHTML *string
	Scope     string
	ScopeHTML *string
	Risks     string
	RisksHTML *string

	Color   string
	Size    int
	ZIndex  int
	Opacity float64

	// Arrow fields. ArrowDirection is the chevron decoration on "box"
	// objects; for arrows proper the heads and mid/target fields apply.
	TargetRowID    string
	TargetWeek     *int
	ArrowMidWeek   *int
	ArrowHeadStart bool
	ArrowHeadEnd   bool
	ArrowDirection ArrowDirection

	// Free-floating textbox geometry.
	X      *float64
	Y      *float64
	Width  *float64
	Height *float64

	// Link: a textbox anchored to a target object. The stored pixel offset
	// is the source anchor position relative to the target's center point.
	LinkSourceID     string
	LinkTargetID     string
	LinkSourceSide   Side
	LinkSourceOffset *float64
	LinkOffsetX      *float64
	LinkOffsetY      *float64

	// Connector: an edge-anchored line between two objects.
	ConnectorSourceID     string
	ConnectorTargetID     string
	ConnectorSourceSide   Side
	ConnectorSourceOffset *float64
	ConnectorTargetSide   Side
	ConnectorTargetOffset *float64
}

// Clone returns a deep copy; pointer-valued optionals are re-allocated so
// the copy shares no state with the original.
func (o *CanvasObject) Clone() *CanvasObject {
	c := *o
	c.TextHTML = cloneStr(o.TextHTML)
	c.NotesHTML = cloneStr(o.NotesHTML)
	c.ScopeHTML = cloneStr(o.ScopeHTML)
	c.RisksHTML = cloneStr(o.RisksHTML)
	c.TargetWeek = cloneInt(o.TargetWeek)
	c.ArrowMidWeek = cloneInt(o.ArrowMidWeek)
	c.X = cloneFloat(o.X)
	c.Y = cloneFloat(o.Y)
	c.Width = cloneFloat(o.Width)
	c.Height = cloneFloat(o.Height)
	c.LinkSourceOffset = cloneFloat(o.LinkSourceOffset)
	c.LinkOffsetX = cloneFloat(o.LinkOffsetX)
	c.LinkOffsetY = cloneFloat(o.LinkOffsetY)
	c.ConnectorSourceOffset = cloneFloat(o.ConnectorSourceOffset)
	c.ConnectorTargetOffset = cloneFloat(o.ConnectorTargetOffset)
	return &c
}

// Equal compares all fields, dereferencing optionals. Used for no-op
// suppression: an update that produces an equal object pushes no command.
func (o *CanvasObject) Equal(other *CanvasObject) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.ID == other.ID &&
		o.Kind == other.Kind &&
		o.RowID == other.RowID &&
		o.StartWeek == other.StartWeek &&
		o.EndWeek == other.EndWeek &&
		o.Text == other.Text &&
		o.TextAlign == other.TextAlign &&
		eqStr(o.TextHTML, other.TextHTML) &&
		o.Notes == other.Notes &&
		eqStr(o.NotesHTML, other.NotesHTML) &&
		o.Scope == other.Scope &&
		eqStr(o.ScopeHTML, other.ScopeHTML) &&
		o.Risks == other.Risks &&
		eqStr(o.RisksHTML, other.RisksHTML) &&
		o.Color == other.Color &&
		o.Size == other.Size &&
		o.ZIndex == other.ZIndex &&
		o.Opacity == other.Opacity &&
		o.TargetRowID == other.TargetRowID &&
		eqInt(o.TargetWeek, other.TargetWeek) &&
		eqInt(o.ArrowMidWeek, other.ArrowMidWeek) &&
		o.ArrowHeadStart == other.ArrowHeadStart &&
		o.ArrowHeadEnd == other.ArrowHeadEnd &&
		o.ArrowDirection == other.ArrowDirection &&
		eqFloat(o.X, other.X) &&
		eqFloat(o.Y, other.Y) &&
		eqFloat(o.Width, other.Width) &&
		eqFloat(o.Height, other.Height) &&
		o.LinkSourceID == other.LinkSourceID &&
		o.LinkTargetID == other.LinkTargetID &&
		o.LinkSourceSide == other.LinkSourceSide &&
		eqFloat(o.LinkSourceOffset, other.LinkSourceOffset) &&
		eqFloat(o.LinkOffsetX, other.LinkOffsetX) &&
		eqFloat(o.LinkOffsetY, other.LinkOffsetY) &&
		o.ConnectorSourceID == other.ConnectorSourceID &&
		o.ConnectorTargetID == other.ConnectorTargetID &&
		o.ConnectorSourceSide == other.ConnectorSourceSide &&
		eqFloat(o.ConnectorSourceOffset, other.ConnectorSourceOffset) &&
		o.ConnectorTargetSide == other.ConnectorTargetSide &&
		eqFloat(o.ConnectorTargetOffset, other.ConnectorTargetOffset)
}

// References reports whether this object points at id as a link or
// connector endpoint. Such objects are cascade-deleted with their target.
func (o *CanvasObject) References(id string) bool {
	switch o.Kind {
	case KindLink:
		return o.LinkSourceID == id || o.LinkTargetID == id
	case KindConnector:
		return o.ConnectorSourceID == id || o.ConnectorTargetID == id
	}
	return false
}

func cloneStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func eqStr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func eqInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func eqFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// IntPtr, FloatPtr and StrPtr build optional field values in place.
func IntPtr(v int) *int { return &v }

func FloatPtr(v float64) *float64 { return &v }

func StrPtr(v string) *string { return &v }
