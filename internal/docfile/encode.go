package docfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jthomassen/roadline/internal/domain"
)

// Encode serializes a document to the sparse JSON format. The optional view
// blob carries host view state (scroll, zoom) the core does not interpret.
func Encode(doc *domain.Document, view map[string]any) ([]byte, error) {
	dto := documentDTO{
		SchemaVersion:      SchemaVersion,
		Year:               doc.Year,
		Classification:     doc.Classification,
		ClassificationSize: doc.ClassificationSize,
		Topics:             []topicDTO{},
		Objects:            []objectDTO{},
		View:               view,
	}
	for _, topic := range doc.Topics() {
		t := topicDTO{
			ID:           topic.ID,
			Name:         topic.Name,
			Color:        topic.Color,
			Collapsed:    topic.Collapsed,
			Deliverables: []deliverableDTO{},
		}
		for _, del := range topic.Deliverables {
			t.Deliverables = append(t.Deliverables, deliverableDTO{ID: del.ID, Name: del.Name})
		}
		dto.Topics = append(dto.Topics, t)
	}
	for _, obj := range doc.ObjectsInOrder() {
		dto.Objects = append(dto.Objects, encodeObject(obj))
	}
	return json.MarshalIndent(dto, "", "  ")
}

func encodeObject(obj *domain.CanvasObject) objectDTO {
	dto := objectDTO{
		ID:        obj.ID,
		Kind:      string(obj.Kind),
		RowID:     obj.RowID,
		StartWeek: obj.StartWeek,
		EndWeek:   domain.IntPtr(obj.EndWeek),
		Text:      obj.Text,
		TextAlign: string(obj.TextAlign),
		TextHTML:  obj.TextHTML,
		Notes:     obj.Notes,
		NotesHTML: obj.NotesHTML,
		Scope:     obj.Scope,
		ScopeHTML: obj.ScopeHTML,
		Risks:     obj.Risks,
		RisksHTML: obj.RisksHTML,
		Color:     obj.Color,
		Size:      obj.Size,
		ZIndex:    obj.ZIndex,

		TargetRowID:  obj.TargetRowID,
		TargetWeek:   obj.TargetWeek,
		ArrowMidWeek: obj.ArrowMidWeek,

		X:      obj.X,
		Y:      obj.Y,
		Width:  obj.Width,
		Height: obj.Height,

		LinkSourceID:     obj.LinkSourceID,
		LinkTargetID:     obj.LinkTargetID,
		LinkSourceSide:   string(obj.LinkSourceSide),
		LinkSourceOffset: obj.LinkSourceOffset,
		LinkOffsetX:      obj.LinkOffsetX,
		LinkOffsetY:      obj.LinkOffsetY,

		ConnectorSourceID:     obj.ConnectorSourceID,
		ConnectorTargetID:     obj.ConnectorTargetID,
		ConnectorSourceSide:   string(obj.ConnectorSourceSide),
		ConnectorSourceOffset: obj.ConnectorSourceOffset,
		ConnectorTargetSide:   string(obj.ConnectorTargetSide),
		ConnectorTargetOffset: obj.ConnectorTargetOffset,
	}
	// Non-default flag values only: heads start=false/end=true and a "none"
	// direction stay out of the file.
	dto.ArrowHeadStart = obj.ArrowHeadStart
	if !obj.ArrowHeadEnd {
		dto.ArrowHeadEnd = &obj.ArrowHeadEnd
	}
	if obj.Kind == domain.KindBox {
		if dir := domain.NormalizeArrowDirection(obj.ArrowDirection); dir != domain.DirectionNone {
			dto.ArrowDirection = string(dir)
		}
	}
	if obj.Opacity != domain.TextboxDefaultOpacity {
		dto.Opacity = domain.FloatPtr(obj.Opacity)
	}
	return dto
}

// Save writes the document atomically: encode to a temp file beside the
// target, then rename.
func Save(path string, doc *domain.Document, view map[string]any) error {
	data, err := Encode(doc, view)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing document: %w", err)
	}
	return nil
}
