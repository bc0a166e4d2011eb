package docfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jthomassen/roadline/internal/domain"
)

func sampleDocument() *domain.Document {
	doc := domain.NewDocument(2026)
	topic := &domain.Topic{
		ID:    "t1",
		Name:  "Platform",
		Color: "#4E79A7",
		Deliverables: []domain.Deliverable{
			{ID: "d1", Name: "API"},
		},
	}
	doc.InsertTopic(topic, nil)
	doc.AddObject(&domain.CanvasObject{
		ID:             "box1",
		Kind:           domain.KindBox,
		RowID:          "d1",
		StartWeek:      4,
		EndWeek:        8,
		Text:           "Build API",
		TextAlign:      domain.AlignCenter,
		Color:          "#4E79A7",
		Size:           3,
		Opacity:        1.0,
		ArrowHeadEnd:   true,
		ArrowDirection: domain.DirectionNone,
	})
	doc.AddObject(&domain.CanvasObject{
		ID:             "arrow1",
		Kind:           domain.KindArrow,
		RowID:          "d1",
		StartWeek:      8,
		EndWeek:        12,
		TargetRowID:    "t1",
		TargetWeek:     domain.IntPtr(12),
		ArrowHeadEnd:   true,
		TextAlign:      domain.AlignCenter,
		Color:          "#4E79A7",
		Size:           3,
		Opacity:        1.0,
		ArrowDirection: domain.DirectionNone,
	})
	return doc
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc := sampleDocument()
	view := map[string]any{"zoom": 1.5}

	data, err := Encode(doc, view)
	require.NoError(t, err)

	got, gotView, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, doc.Year, got.Year)
	assert.Equal(t, doc.Classification, got.Classification)
	assert.Equal(t, 1.5, gotView["zoom"])

	require.Len(t, got.Topics(), 1)
	assert.True(t, doc.Topics()[0].Equal(got.Topics()[0]))

	require.Len(t, got.ObjectsInOrder(), 2)
	for i, obj := range doc.ObjectsInOrder() {
		assert.True(t, obj.Equal(got.ObjectsInOrder()[i]), "object %s", obj.ID)
	}
}

func TestEncode_SparseFields(t *testing.T) {
	doc := sampleDocument()
	data, err := Encode(doc, nil)
	require.NoError(t, err)

	var raw struct {
		Objects []map[string]any `json:"objects"`
	}
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw.Objects, 2)

	box := raw.Objects[0]
	_, hasOpacity := box["opacity"]
	assert.False(t, hasOpacity, "default opacity must be omitted")
	_, hasHeadEnd := box["arrow_head_end"]
	assert.False(t, hasHeadEnd, "default head_end must be omitted")
	_, hasDirection := box["arrow_direction"]
	assert.False(t, hasDirection, "direction none must be omitted")
	_, hasTextHTML := box["text_html"]
	assert.False(t, hasTextHTML, "nil html must be omitted")
}

func TestEncode_NonDefaultFlags(t *testing.T) {
	doc := domain.NewDocument(2026)
	doc.AddObject(&domain.CanvasObject{
		ID:             "a1",
		Kind:           domain.KindArrow,
		RowID:          domain.CanvasRowID,
		ArrowHeadStart: true,
		ArrowHeadEnd:   false,
		Opacity:        0.85,
		Size:           3,
		TextAlign:      domain.AlignCenter,
		Color:          "#4E79A7",
	})
	data, err := Encode(doc, nil)
	require.NoError(t, err)

	var raw struct {
		Objects []map[string]any `json:"objects"`
	}
	require.NoError(t, json.Unmarshal(data, &raw))
	obj := raw.Objects[0]
	assert.Equal(t, true, obj["arrow_head_start"])
	assert.Equal(t, false, obj["arrow_head_end"])
	assert.Equal(t, 0.85, obj["opacity"])
}

func TestDecode_SchemaVersionMismatch(t *testing.T) {
	data := []byte(`{"schema_version": 2, "year": 2026, "topics": [], "objects": []}`)
	_, _, err := Decode(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaVersion)
}

func TestDecode_Defaults(t *testing.T) {
	data := []byte(`{
		"schema_version": 3,
		"year": 2026,
		"topics": [{"id": "t1", "name": "T", "deliverables": []}],
		"objects": [
			{"id": "m1", "kind": "milestone", "row_id": "t1", "start_week": 5, "text": ""},
			{"id": "tb1", "kind": "textbox", "row_id": "__canvas__", "start_week": 0, "text": "note"}
		]
	}`)
	doc, _, err := Decode(data)
	require.NoError(t, err)

	m := doc.Object("m1")
	require.NotNil(t, m)
	assert.Equal(t, 5, m.EndWeek, "end_week defaults to start_week")
	assert.Equal(t, domain.DefaultTopicColors[0], m.Color)
	assert.Equal(t, domain.AlignCenter, m.TextAlign)
	assert.Equal(t, domain.DefaultSize, m.Size)
	assert.Equal(t, 1.0, m.Opacity)
	assert.True(t, m.ArrowHeadEnd)
	assert.Equal(t, domain.DirectionNone, m.ArrowDirection)

	tb := doc.Object("tb1")
	require.NotNil(t, tb)
	assert.Equal(t, domain.TextboxDefaultColor, tb.Color)

	assert.Equal(t, domain.DefaultClassification, doc.Classification)
	assert.Equal(t, domain.ClassificationSizeDefault, doc.ClassificationSize)
}

func TestDecode_LegacyAssumptionsMigration(t *testing.T) {
	data := []byte(`{
		"schema_version": 3,
		"year": 2026,
		"topics": [],
		"objects": [
			{"id": "b1", "kind": "box", "row_id": "__canvas__", "start_week": 1, "text": "x",
			 "assumptions": "old scope", "assumptions_html": "<p>old scope</p>"}
		]
	}`)
	doc, _, err := Decode(data)
	require.NoError(t, err)

	obj := doc.Object("b1")
	require.NotNil(t, obj)
	assert.Equal(t, "old scope", obj.Scope)
	require.NotNil(t, obj.ScopeHTML)
	assert.Equal(t, "<p>old scope</p>", *obj.ScopeHTML)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	data := []byte(`{
		"schema_version": 3,
		"year": 2026,
		"topics": [{"id": "t1", "name": "T", "deliverables": [{"id": "t1", "name": "dup"}]}],
		"objects": [
			{"id": "o1", "kind": "nonsense", "row_id": "missing", "start_week": 1, "text": ""},
			{"id": "o1", "kind": "box", "row_id": "t1", "start_week": 1, "text": ""}
		]
	}`)
	var dto documentDTO
	require.NoError(t, json.Unmarshal(data, &dto))

	errs := Validate(&dto)
	require.NotEmpty(t, errs)
	joined := ""
	for _, e := range errs {
		joined += e.Error() + "\n"
	}
	assert.Contains(t, joined, "duplicate id")
	assert.Contains(t, joined, "invalid value")
	assert.Contains(t, joined, "unknown row")
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roadmap.json")

	doc := sampleDocument()
	require.NoError(t, Save(path, doc, nil))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file must not remain")

	got, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, doc.Year, got.Year)
	assert.Len(t, got.ObjectsInOrder(), 2)
}
