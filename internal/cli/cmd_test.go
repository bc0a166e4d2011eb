package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jthomassen/roadline/internal/config"
	"github.com/jthomassen/roadline/internal/db"
	"github.com/jthomassen/roadline/internal/docfile"
	"github.com/jthomassen/roadline/internal/domain"
	"github.com/jthomassen/roadline/internal/repository"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	conn, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &App{
		Catalog:       repository.NewSQLiteDocumentCatalog(conn),
		Config:        config.Default(),
		IsInteractive: func() bool { return false },
	}
}

func runCommand(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	root.SetArgs(args)
	return root.Execute()
}

func TestNewCreatesDocument(t *testing.T) {
	app := newTestApp(t)
	path := filepath.Join(t.TempDir(), "roadmap.json")

	require.NoError(t, runCommand(t, app, "new", path, "--year", "2026"))

	doc, _, err := docfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2026, doc.Year)
	assert.Empty(t, doc.Topics())
}

func TestNewRefusesOverwriteWithoutForce(t *testing.T) {
	app := newTestApp(t)
	path := filepath.Join(t.TempDir(), "roadmap.json")

	require.NoError(t, runCommand(t, app, "new", path))
	assert.Error(t, runCommand(t, app, "new", path))
	assert.NoError(t, runCommand(t, app, "new", path, "--force"))
}

func TestTopicAndObjectLifecycle(t *testing.T) {
	app := newTestApp(t)
	path := filepath.Join(t.TempDir(), "roadmap.json")
	require.NoError(t, runCommand(t, app, "new", path, "--year", "2026"))

	require.NoError(t, runCommand(t, app, "topic", "add", path, "Platform"))
	require.NoError(t, runCommand(t, app, "deliverable", "add", path, "Platform", "API"))
	require.NoError(t, runCommand(t, app, "object", "add", path,
		"--kind", "box", "--row", "Platform/API", "--start", "4", "--end", "8", "--text", "Build API"))

	doc, _, err := docfile.Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Topics(), 1)
	require.Len(t, doc.Topics()[0].Deliverables, 1)
	require.Len(t, doc.ObjectsInOrder(), 1)

	obj := doc.ObjectsInOrder()[0]
	assert.Equal(t, domain.KindBox, obj.Kind)
	assert.Equal(t, 4, obj.StartWeek)
	assert.Equal(t, 8, obj.EndWeek)
	assert.Equal(t, "Build API", obj.Text)
	assert.Equal(t, doc.Topics()[0].Color, obj.Color, "box inherits topic color")

	// Duplicate shifts by the span.
	require.NoError(t, runCommand(t, app, "object", "duplicate", path, obj.ID))
	doc, _, err = docfile.Load(path)
	require.NoError(t, err)
	require.Len(t, doc.ObjectsInOrder(), 2)
	dup := doc.ObjectsInOrder()[1]
	assert.Equal(t, 9, dup.StartWeek)
	assert.Equal(t, 13, dup.EndWeek)

	// Remove by unique prefix.
	require.NoError(t, runCommand(t, app, "object", "remove", path, dup.ID[:8]))
	doc, _, err = docfile.Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.ObjectsInOrder(), 1)
}

func TestObjectAddRejectsBadKind(t *testing.T) {
	app := newTestApp(t)
	path := filepath.Join(t.TempDir(), "roadmap.json")
	require.NoError(t, runCommand(t, app, "new", path))

	assert.Error(t, runCommand(t, app, "object", "add", path, "--kind", "banana"))
	assert.Error(t, runCommand(t, app, "object", "add", path, "--kind", "link"))
}

func TestTopicRemoveCascades(t *testing.T) {
	app := newTestApp(t)
	path := filepath.Join(t.TempDir(), "roadmap.json")
	require.NoError(t, runCommand(t, app, "new", path))
	require.NoError(t, runCommand(t, app, "topic", "add", path, "Platform"))
	require.NoError(t, runCommand(t, app, "object", "add", path,
		"--kind", "milestone", "--row", "Platform", "--start", "10"))

	require.NoError(t, runCommand(t, app, "topic", "remove", path, "Platform"))

	doc, _, err := docfile.Load(path)
	require.NoError(t, err)
	assert.Empty(t, doc.Topics())
	assert.Empty(t, doc.ObjectsInOrder(), "objects on the topic rows go with it")
}

func TestRecentListsTouchedDocuments(t *testing.T) {
	app := newTestApp(t)
	dir := t.TempDir()
	require.NoError(t, runCommand(t, app, "new", filepath.Join(dir, "a.json")))
	require.NoError(t, runCommand(t, app, "new", filepath.Join(dir, "b.json")))
	require.NoError(t, runCommand(t, app, "info", filepath.Join(dir, "a.json")))

	require.NoError(t, runCommand(t, app, "recent"))
}

func TestEditRequiresTerminal(t *testing.T) {
	app := newTestApp(t)
	path := filepath.Join(t.TempDir(), "roadmap.json")
	require.NoError(t, runCommand(t, app, "new", path))

	err := runCommand(t, app, "edit", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestResolveRowID(t *testing.T) {
	doc := domain.NewDocument(2026)
	topic := &domain.Topic{ID: "topic-1", Name: "Platform", Color: "#4E79A7",
		Deliverables: []domain.Deliverable{{ID: "del-1", Name: "API"}}}
	doc.InsertTopic(topic, nil)

	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"canvas", domain.CanvasRowID, false},
		{"", domain.CanvasRowID, false},
		{"Platform", "topic-1", false},
		{"platform", "topic-1", false},
		{"Platform/API", "del-1", false},
		{"API", "del-1", false},
		{"del-1", "del-1", false},
		{"nope", "", true},
	}
	for _, tt := range tests {
		got, err := resolveRowID(doc, tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}
