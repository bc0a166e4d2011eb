// Package layout maps abstract schedule coordinates (week index, row id)
// to and from continuous canvas space. It is rebuilt from the document
// whenever topic or deliverable structure changes and is read-only for
// renderers and the anchor resolver.
package layout

import (
	"math"
	"sort"

	"github.com/jthomassen/roadline/internal/domain"
)

const (
	DefaultWeekWidth = 40.0
	LabelWidth       = 220.0

	TopicRowHeight       = 44.0
	DeliverableRowHeight = 32.0

	HeaderYearHeight    = 18.0
	HeaderQuarterHeight = 18.0
	HeaderMonthHeight   = 18.0
	HeaderWeekHeight    = 22.0
)

// Row is one horizontal lane: a topic, or a deliverable of an expanded topic.
type Row struct {
	ID      string
	Name    string
	Kind    domain.RowKind
	TopicID string
	Y       float64
	Height  float64
	Indent  int
}

type Layout struct {
	WeekWidth    float64
	LabelWidth   float64
	HeaderHeight float64
	OriginWeek   int
	TotalHeight  float64

	rows     []Row
	rowIndex map[string]int
	rowEnds  []float64
}

// New builds a layout for the document. A weekWidth of zero selects the
// default.
func New(doc *domain.Document, weekWidth float64) *Layout {
	if weekWidth <= 0 {
		weekWidth = DefaultWeekWidth
	}
	l := &Layout{
		WeekWidth:    weekWidth,
		LabelWidth:   LabelWidth,
		HeaderHeight: HeaderYearHeight + HeaderQuarterHeight + HeaderMonthHeight + HeaderWeekHeight,
		OriginWeek:   1,
	}
	l.Rebuild(doc)
	return l
}

// Rebuild recomputes the row table from topic/deliverable order and
// collapse flags. Collapsed topics contribute no deliverable rows. Runs in
// time linear in the row count.
func (l *Layout) Rebuild(doc *domain.Document) {
	l.rows = l.rows[:0]
	l.rowIndex = make(map[string]int)
	l.rowEnds = l.rowEnds[:0]
	y := 0.0
	for _, topic := range doc.Topics() {
		l.rows = append(l.rows, Row{
			ID:      topic.ID,
			Name:    topic.Name,
			Kind:    domain.RowTopic,
			TopicID: topic.ID,
			Y:       y,
			Height:  TopicRowHeight,
		})
		y += TopicRowHeight
		if topic.Collapsed {
			continue
		}
		for _, del := range topic.Deliverables {
			l.rows = append(l.rows, Row{
				ID:      del.ID,
				Name:    del.Name,
				Kind:    domain.RowDeliverable,
				TopicID: topic.ID,
				Y:       y,
				Height:  DeliverableRowHeight,
				Indent:  1,
			})
			y += DeliverableRowHeight
		}
	}
	l.TotalHeight = y
	for i, row := range l.rows {
		l.rowIndex[row.ID] = i
		l.rowEnds = append(l.rowEnds, row.Y+row.Height)
	}
}

// Rows returns the current row table in vertical order.
func (l *Layout) Rows() []Row { return l.rows }

// HasRow reports whether rowID is present after the latest rebuild.
// Callers treat absence as "object currently has no visual row".
func (l *Layout) HasRow(rowID string) bool {
	_, ok := l.rowIndex[rowID]
	return ok
}

func (l *Layout) row(rowID string) (Row, bool) {
	i, ok := l.rowIndex[rowID]
	if !ok {
		return Row{}, false
	}
	return l.rows[i], true
}

// WeekLeftX returns the canvas x of the left edge of a week column.
func (l *Layout) WeekLeftX(week int) float64 {
	return l.LabelWidth + float64(week-l.OriginWeek)*l.WeekWidth
}

// WeekCenterX returns the canvas x of the middle of a week column.
func (l *Layout) WeekCenterX(week int) float64 {
	return l.WeekLeftX(week) + l.WeekWidth/2.0
}

func (l *Layout) RowTopY(rowID string) (float64, bool) {
	row, ok := l.row(rowID)
	if !ok {
		return 0, false
	}
	return l.HeaderHeight + row.Y, true
}

func (l *Layout) RowCenterY(rowID string) (float64, bool) {
	row, ok := l.row(rowID)
	if !ok {
		return 0, false
	}
	return l.HeaderHeight + row.Y + row.Height/2.0, true
}

func (l *Layout) RowHeight(rowID string) (float64, bool) {
	row, ok := l.row(rowID)
	if !ok {
		return 0, false
	}
	return row.Height, true
}

// RowAtY locates the row containing the given canvas y, or reports false
// when y falls in the header or below the last row. O(log rows).
func (l *Layout) RowAtY(y float64) (string, bool) {
	rel := y - l.HeaderHeight
	if rel < 0 || len(l.rows) == 0 {
		return "", false
	}
	i := sort.Search(len(l.rowEnds), func(i int) bool { return l.rowEnds[i] > rel })
	if i >= len(l.rows) {
		return "", false
	}
	row := l.rows[i]
	if row.Y <= rel && rel < row.Y+row.Height {
		return row.ID, true
	}
	return "", false
}

// RowIndex returns the vertical position of rowID in the row table.
func (l *Layout) RowIndex(rowID string) (int, bool) {
	i, ok := l.rowIndex[rowID]
	return i, ok
}

// RowIndexRange returns the half-open row index interval overlapping the
// vertical span [yMin, yMax], measured relative to the body (header
// excluded). Used by renderers for visible-row culling.
func (l *Layout) RowIndexRange(yMin, yMax float64) (int, int) {
	if len(l.rows) == 0 {
		return 0, 0
	}
	start := sort.Search(len(l.rowEnds), func(i int) bool { return l.rowEnds[i] >= yMin })
	end := sort.Search(len(l.rowEnds), func(i int) bool { return l.rowEnds[i] > yMax })
	return start, end
}

// AdjacentRow returns the row direction steps away in row order
// (direction is +1 or -1), or false at the table edges.
func (l *Layout) AdjacentRow(rowID string, direction int) (string, bool) {
	i, ok := l.rowIndex[rowID]
	if !ok {
		return "", false
	}
	j := i + direction
	if j < 0 || j >= len(l.rows) {
		return "", false
	}
	return l.rows[j].ID, true
}

// WeekFromX inverts WeekLeftX. With snap it rounds to the nearest integer
// week (ties away from zero); otherwise it floors, which is used for
// free-form textbox queries where sub-week precision should not be forced.
func (l *Layout) WeekFromX(x float64, snap bool) int {
	ratio := (x - l.LabelWidth) / l.WeekWidth
	var offset int
	if snap {
		if ratio >= 0 {
			offset = int(ratio + 0.5)
		} else {
			offset = int(ratio - 0.5)
		}
	} else {
		offset = int(math.Floor(ratio))
	}
	return offset + l.OriginWeek
}

// WeekFromCenterX inverts WeekCenterX.
func (l *Layout) WeekFromCenterX(x float64, snap bool) int {
	return l.WeekFromX(x-l.WeekWidth/2.0, snap)
}
