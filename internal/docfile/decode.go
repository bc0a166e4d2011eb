package docfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jthomassen/roadline/internal/domain"
)

// Decode parses a saved document, rejecting any schema version other than
// the current one. Omitted optional fields receive their documented
// defaults.
func Decode(data []byte) (*domain.Document, map[string]any, error) {
	var dto documentDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, nil, fmt.Errorf("parsing document: %w", err)
	}
	if dto.SchemaVersion != SchemaVersion {
		return nil, nil, fmt.Errorf("%w: %d (expected %d)", ErrSchemaVersion, dto.SchemaVersion, SchemaVersion)
	}
	if errs := Validate(&dto); len(errs) > 0 {
		return nil, nil, fmt.Errorf("invalid document: %w", errs[0])
	}

	year := dto.Year
	if year == 0 {
		year = 2026
	}
	doc := domain.NewDocument(year)
	var bannerSize *int
	if dto.ClassificationSize != 0 {
		bannerSize = domain.IntPtr(dto.ClassificationSize)
	}
	text, size := doc.NormalizeClassification(dto.Classification, bannerSize)
	doc.Classification = text
	doc.ClassificationSize = size

	for _, t := range dto.Topics {
		color := t.Color
		if color == "" {
			color = domain.DefaultTopicColors[0]
		}
		topic := &domain.Topic{ID: t.ID, Name: t.Name, Color: color, Collapsed: t.Collapsed}
		for _, d := range t.Deliverables {
			topic.Deliverables = append(topic.Deliverables, domain.Deliverable{ID: d.ID, Name: d.Name})
		}
		doc.InsertTopic(topic, nil)
	}
	for i := range dto.Objects {
		doc.AddObject(decodeObject(&dto.Objects[i]))
	}
	return doc, dto.View, nil
}

func decodeObject(dto *objectDTO) *domain.CanvasObject {
	kind := domain.Kind(dto.Kind)

	color := dto.Color
	if color == "" {
		if kind == domain.KindTextbox {
			color = domain.TextboxDefaultColor
		} else {
			color = domain.DefaultTopicColors[0]
		}
	}
	align := domain.TextAlign(dto.TextAlign)
	if align == "" {
		align = domain.AlignCenter
	}
	size := dto.Size
	if size == 0 {
		size = domain.DefaultSize
	}
	direction := domain.NormalizeArrowDirection(domain.ArrowDirection(dto.ArrowDirection))
	if kind != domain.KindBox {
		direction = domain.DirectionNone
	}
	scope := dto.Scope
	if scope == "" {
		scope = dto.Assumptions
	}
	scopeHTML := dto.ScopeHTML
	if scopeHTML == nil {
		scopeHTML = dto.AssumptionsHTML
	}

	return &domain.CanvasObject{
		ID:        dto.ID,
		Kind:      kind,
		RowID:     dto.RowID,
		StartWeek: dto.StartWeek,
		EndWeek:   domain.IntOr(dto.StartWeek, dto.EndWeek),

		Text:      dto.Text,
		TextAlign: align,
		TextHTML:  dto.TextHTML,
		Notes:     dto.Notes,
		NotesHTML: dto.NotesHTML,
		Scope:     scope,
		ScopeHTML: scopeHTML,
		Risks:     dto.Risks,
		RisksHTML: dto.RisksHTML,

		Color:   color,
		Size:    size,
		ZIndex:  dto.ZIndex,
		Opacity: domain.FloatOr(domain.TextboxDefaultOpacity, dto.Opacity),

		TargetRowID:    dto.TargetRowID,
		TargetWeek:     dto.TargetWeek,
		ArrowMidWeek:   dto.ArrowMidWeek,
		ArrowHeadStart: dto.ArrowHeadStart,
		ArrowHeadEnd:   boolOr(true, dto.ArrowHeadEnd),
		ArrowDirection: direction,

		X:      dto.X,
		Y:      dto.Y,
		Width:  dto.Width,
		Height: dto.Height,

		LinkSourceID:     dto.LinkSourceID,
		LinkTargetID:     dto.LinkTargetID,
		LinkSourceSide:   domain.Side(dto.LinkSourceSide),
		LinkSourceOffset: dto.LinkSourceOffset,
		LinkOffsetX:      dto.LinkOffsetX,
		LinkOffsetY:      dto.LinkOffsetY,

		ConnectorSourceID:     dto.ConnectorSourceID,
		ConnectorTargetID:     dto.ConnectorTargetID,
		ConnectorSourceSide:   domain.Side(dto.ConnectorSourceSide),
		ConnectorSourceOffset: dto.ConnectorSourceOffset,
		ConnectorTargetSide:   domain.Side(dto.ConnectorTargetSide),
		ConnectorTargetOffset: dto.ConnectorTargetOffset,
	}
}

func boolOr(fallback bool, p *bool) bool {
	if p != nil {
		return *p
	}
	return fallback
}

// Load reads and decodes a document file.
func Load(path string) (*domain.Document, map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading document: %w", err)
	}
	return Decode(data)
}
