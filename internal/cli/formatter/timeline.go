package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jthomassen/roadline/internal/domain"
	"github.com/jthomassen/roadline/internal/layout"
)

// Timeline glyphs. Boxes draw as filled runs, point kinds as single marks.
const (
	glyphBox       = '█'
	glyphMilestone = '◆'
	glyphDeadline  = '▼'
	glyphArrow     = '─'
	glyphArrowHead = '▶'
	glyphEmpty     = '·'
)

// RenderTimeline draws the week grid as text: one line per row, one cell
// per week. Textboxes, links and connectors are free-floating geometry and
// are summarized below the grid instead of drawn in it.
func RenderTimeline(doc *domain.Document, l *layout.Layout, weeks int) string {
	if weeks <= 0 {
		weeks = layout.WeeksInYear(doc.Year)
	}

	labelWidth := 0
	rows := l.Rows()
	for _, row := range rows {
		if w := lipgloss.Width(rowTitle(row)); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(renderQuarterHeader(labelWidth, weeks))
	b.WriteString(renderWeekHeader(labelWidth, weeks))

	for _, row := range rows {
		cells := make([]rune, weeks)
		styles := make([]lipgloss.Style, weeks)
		for i := range cells {
			cells[i] = glyphEmpty
			styles[i] = StyleDim
		}
		for _, obj := range doc.ObjectsInOrder() {
			if obj.RowID != row.ID || isFloating(obj.Kind) {
				continue
			}
			paintObject(cells, styles, obj)
		}

		title := rowTitle(row)
		pad := labelWidth - lipgloss.Width(title)
		b.WriteString(title)
		b.WriteString(strings.Repeat(" ", pad+1))
		for i, r := range cells {
			b.WriteString(styles[i].Render(string(r)))
		}
		b.WriteString("\n")
	}

	// Floating objects live on the canvas row, never on a layout row.
	floating := 0
	for _, obj := range doc.ObjectsInOrder() {
		if isFloating(obj.Kind) {
			floating++
		}
	}
	if floating > 0 {
		b.WriteString(StyleDim.Render(fmt.Sprintf("+ %d floating objects (textboxes, links, connectors)", floating)))
		b.WriteString("\n")
	}
	return b.String()
}

func isFloating(k domain.Kind) bool {
	return k == domain.KindTextbox || k == domain.KindLink || k == domain.KindConnector
}

func rowTitle(row layout.Row) string {
	if row.Kind == domain.RowTopic {
		return StyleBold.Render(row.Name)
	}
	return "  " + row.Name
}

func paintObject(cells []rune, styles []lipgloss.Style, obj *domain.CanvasObject) {
	style := KindStyle(string(obj.Kind))
	set := func(week int, r rune) {
		i := week - 1
		if i >= 0 && i < len(cells) {
			cells[i] = r
			styles[i] = style
		}
	}

	switch obj.Kind {
	case domain.KindMilestone:
		set(obj.StartWeek, glyphMilestone)
	case domain.KindDeadline:
		set(obj.StartWeek, glyphDeadline)
	case domain.KindArrow:
		end := obj.EndWeek
		if obj.TargetWeek != nil {
			end = *obj.TargetWeek
		}
		lo, hi := obj.StartWeek, end
		if lo > hi {
			lo, hi = hi, lo
		}
		for w := lo; w <= hi; w++ {
			set(w, glyphArrow)
		}
		if obj.ArrowHeadEnd {
			set(end, glyphArrowHead)
		}
	default: // box
		for w := obj.StartWeek; w <= obj.EndWeek; w++ {
			set(w, glyphBox)
		}
	}
}

func renderQuarterHeader(labelWidth, weeks int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth+1))
	week := 1
	for week <= weeks {
		quarter := layout.QuarterForWeek(week)
		span := 0
		for week+span <= weeks && layout.QuarterForWeek(week+span) == quarter {
			span++
		}
		label := fmt.Sprintf("Q%d", quarter)
		if span < len(label) {
			label = label[:span]
		}
		b.WriteString(StyleHeader.Render(label))
		b.WriteString(strings.Repeat(" ", span-len(label)))
		week += span
	}
	b.WriteString("\n")
	return b.String()
}

func renderWeekHeader(labelWidth, weeks int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth+1))
	for w := 1; w <= weeks; w++ {
		if w%5 == 0 {
			b.WriteString(StyleDim.Render(string(rune('0' + (w/10)%10))))
		} else {
			b.WriteString(" ")
		}
	}
	b.WriteString("\n")
	return b.String()
}
