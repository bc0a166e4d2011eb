package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jthomassen/roadline/internal/db"
	"github.com/jthomassen/roadline/internal/domain"
)

func newTestCatalog(t *testing.T) *SQLiteDocumentCatalog {
	t.Helper()
	conn, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewSQLiteDocumentCatalog(conn)
}

func entry(path, name string, year int) *domain.DocumentEntry {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.DocumentEntry{
		ID:        domain.NewID(),
		Path:      path,
		Name:      name,
		Year:      year,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCatalogUpsertAndGet(t *testing.T) {
	cat := newTestCatalog(t)
	ctx := context.Background()

	e := entry("/tmp/roadmap.json", "roadmap", 2026)
	require.NoError(t, cat.Upsert(ctx, e))

	got, err := cat.GetByPath(ctx, "/tmp/roadmap.json")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, "roadmap", got.Name)
	assert.Equal(t, 2026, got.Year)
	assert.Nil(t, got.LastOpenedAt)
}

func TestCatalogUpsertUpdatesExistingPath(t *testing.T) {
	cat := newTestCatalog(t)
	ctx := context.Background()

	e := entry("/tmp/roadmap.json", "roadmap", 2026)
	require.NoError(t, cat.Upsert(ctx, e))

	e2 := entry("/tmp/roadmap.json", "renamed", 2027)
	require.NoError(t, cat.Upsert(ctx, e2))

	got, err := cat.GetByPath(ctx, "/tmp/roadmap.json")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, e.ID, got.ID, "original id survives upsert")
	assert.Equal(t, "renamed", got.Name)
	assert.Equal(t, 2027, got.Year)
}

func TestCatalogGetMissingReturnsNil(t *testing.T) {
	cat := newTestCatalog(t)

	got, err := cat.GetByPath(context.Background(), "/nope.json")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCatalogRecentOrdersByLastOpened(t *testing.T) {
	cat := newTestCatalog(t)
	ctx := context.Background()

	old := entry("/tmp/a.json", "a", 2026)
	old.UpdatedAt = old.UpdatedAt.Add(-2 * time.Hour)
	require.NoError(t, cat.Upsert(ctx, old))
	require.NoError(t, cat.Upsert(ctx, entry("/tmp/b.json", "b", 2026)))

	require.NoError(t, cat.Touch(ctx, "/tmp/a.json"))

	entries, err := cat.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "/tmp/a.json", entries[0].Path, "touched file sorts first")
	require.NotNil(t, entries[0].LastOpenedAt)

	entries, err = cat.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCatalogRemove(t *testing.T) {
	cat := newTestCatalog(t)
	ctx := context.Background()

	require.NoError(t, cat.Upsert(ctx, entry("/tmp/a.json", "a", 2026)))
	require.NoError(t, cat.Remove(ctx, "/tmp/a.json"))

	got, err := cat.GetByPath(ctx, "/tmp/a.json")
	require.NoError(t, err)
	assert.Nil(t, got)
}
