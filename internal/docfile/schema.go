// Package docfile reads and writes the versioned JSON document format.
// Optional object fields are omitted from saved files rather than written
// as nulls, and decoding fills documented defaults for every omitted field.
// A schema version mismatch is a hard failure: guessing a migration could
// silently corrupt user data.
package docfile

import "errors"

// SchemaVersion is the single integer version key of the file format.
const SchemaVersion = 3

// ErrSchemaVersion is returned when a file's schema_version does not match
// SchemaVersion exactly.
var ErrSchemaVersion = errors.New("unsupported schema version")

type documentDTO struct {
	SchemaVersion      int            `json:"schema_version"`
	Year               int            `json:"year"`
	Classification     string         `json:"classification"`
	ClassificationSize int            `json:"classification_size"`
	Topics             []topicDTO     `json:"topics"`
	Objects            []objectDTO    `json:"objects"`
	View               map[string]any `json:"view,omitempty"`
}

type topicDTO struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Color        string           `json:"color,omitempty"`
	Collapsed    bool             `json:"collapsed,omitempty"`
	Deliverables []deliverableDTO `json:"deliverables"`
}

type deliverableDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type objectDTO struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	RowID     string `json:"row_id"`
	StartWeek int    `json:"start_week"`
	EndWeek   *int   `json:"end_week,omitempty"`

	Text      string  `json:"text"`
	TextAlign string  `json:"text_align,omitempty"`
	TextHTML  *string `json:"text_html,omitempty"`
	Notes     string  `json:"notes,omitempty"`
	NotesHTML *string `json:"notes_html,omitempty"`
	Scope     string  `json:"scope,omitempty"`
	ScopeHTML *string `json:"scope_html,omitempty"`
	Risks     string  `json:"risks,omitempty"`
	RisksHTML *string `json:"risks_html,omitempty"`

	// Legacy spelling of the scope fields, read but never written.
	Assumptions     string  `json:"assumptions,omitempty"`
	AssumptionsHTML *string `json:"assumptions_html,omitempty"`

	Color   string   `json:"color,omitempty"`
	Size    int      `json:"size"`
	ZIndex  int      `json:"z_index"`
	Opacity *float64 `json:"opacity,omitempty"`

	TargetRowID    string `json:"target_row_id,omitempty"`
	TargetWeek     *int   `json:"target_week,omitempty"`
	ArrowMidWeek   *int   `json:"arrow_mid_week,omitempty"`
	ArrowHeadStart bool   `json:"arrow_head_start,omitempty"`
	ArrowHeadEnd   *bool  `json:"arrow_head_end,omitempty"`
	ArrowDirection string `json:"arrow_direction,omitempty"`

	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`

	LinkSourceID     string   `json:"link_source_id,omitempty"`
	LinkTargetID     string   `json:"link_target_id,omitempty"`
	LinkSourceSide   string   `json:"link_source_side,omitempty"`
	LinkSourceOffset *float64 `json:"link_source_offset,omitempty"`
	LinkOffsetX      *float64 `json:"link_offset_x,omitempty"`
	LinkOffsetY      *float64 `json:"link_offset_y,omitempty"`

	ConnectorSourceID     string   `json:"connector_source_id,omitempty"`
	ConnectorTargetID     string   `json:"connector_target_id,omitempty"`
	ConnectorSourceSide   string   `json:"connector_source_side,omitempty"`
	ConnectorSourceOffset *float64 `json:"connector_source_offset,omitempty"`
	ConnectorTargetSide   string   `json:"connector_target_side,omitempty"`
	ConnectorTargetOffset *float64 `json:"connector_target_offset,omitempty"`
}
