package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/jthomassen/roadline/internal/domain"
)

// FormatDocumentInfo renders a document summary block for `info`.
func FormatDocumentInfo(doc *domain.Document, path string) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(fmt.Sprintf("Roadmap %d", doc.Year)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(path))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s (size %d)\n",
		StyleBold.Render("Classification:"), doc.Classification, doc.ClassificationSize))

	objects := doc.ObjectsInOrder()
	counts := map[domain.Kind]int{}
	for _, obj := range objects {
		counts[obj.Kind]++
	}
	b.WriteString(fmt.Sprintf("%s %d topics, %d objects\n",
		StyleBold.Render("Contents:"), len(doc.Topics()), len(objects)))
	if len(objects) > 0 {
		var parts []string
		for _, kind := range []domain.Kind{
			domain.KindBox, domain.KindMilestone, domain.KindDeadline,
			domain.KindArrow, domain.KindTextbox, domain.KindLink, domain.KindConnector,
		} {
			if n := counts[kind]; n > 0 {
				parts = append(parts, fmt.Sprintf("%d %s", n, kind))
			}
		}
		b.WriteString(StyleDim.Render("  (" + strings.Join(parts, ", ") + ")"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, topic := range doc.Topics() {
		marker := "▸"
		if !topic.Collapsed {
			marker = "▾"
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			StyleDim.Render(marker), StyleBold.Render(topic.Name), StyleDim.Render(topic.ID[:8])))
		for _, d := range topic.Deliverables {
			b.WriteString(fmt.Sprintf("    %s %s\n", d.Name, StyleDim.Render(d.ID[:8])))
		}
	}

	return b.String()
}

// FormatRecentList renders the catalog's recent-documents table.
func FormatRecentList(entries []*domain.DocumentEntry) string {
	headers := []string{"NAME", "YEAR", "PATH", "LAST OPENED"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		opened := StyleDim.Render("never")
		if e.LastOpenedAt != nil {
			opened = e.LastOpenedAt.Local().Format(time.DateTime)
		}
		rows = append(rows, []string{
			e.Name,
			fmt.Sprintf("%d", e.Year),
			StyleDim.Render(e.Path),
			opened,
		})
	}
	return RenderTable(headers, rows)
}

// FormatObjectList renders the object table for `object list`.
func FormatObjectList(doc *domain.Document) string {
	headers := []string{"ID", "KIND", "ROW", "WEEKS", "Z", "TEXT"}
	rows := make([][]string, 0, len(doc.ObjectsInOrder()))
	for _, obj := range doc.ObjectsInOrder() {
		rows = append(rows, []string{
			StyleDim.Render(obj.ID[:8]),
			KindStyle(string(obj.Kind)).Render(string(obj.Kind)),
			rowLabel(doc, obj.RowID),
			weekSpan(obj),
			fmt.Sprintf("%d", obj.ZIndex),
			truncate(obj.Text, 32),
		})
	}
	return RenderTable(headers, rows)
}

func rowLabel(doc *domain.Document, rowID string) string {
	if rowID == domain.CanvasRowID {
		return StyleDim.Render("canvas")
	}
	if topic := doc.TopicForRow(rowID); topic != nil {
		if topic.ID == rowID {
			return topic.Name
		}
		for _, d := range topic.Deliverables {
			if d.ID == rowID {
				return topic.Name + "/" + d.Name
			}
		}
	}
	return StyleDim.Render(rowID[:min(8, len(rowID))])
}

func weekSpan(obj *domain.CanvasObject) string {
	if obj.Kind == domain.KindTextbox || obj.Kind == domain.KindLink {
		return StyleDim.Render("—")
	}
	if domain.IsPointKind(obj.Kind) {
		return fmt.Sprintf("w%d", obj.StartWeek)
	}
	if obj.Kind == domain.KindArrow && obj.TargetWeek != nil {
		return fmt.Sprintf("w%d→w%d", obj.StartWeek, *obj.TargetWeek)
	}
	return fmt.Sprintf("w%d–w%d", obj.StartWeek, obj.EndWeek)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
