package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jthomassen/roadline/internal/domain"
)

// SQLiteDocumentCatalog implements DocumentCatalog using a SQLite database.
type SQLiteDocumentCatalog struct {
	db *sql.DB
}

// NewSQLiteDocumentCatalog creates a new SQLiteDocumentCatalog.
func NewSQLiteDocumentCatalog(db *sql.DB) *SQLiteDocumentCatalog {
	return &SQLiteDocumentCatalog{db: db}
}

func (r *SQLiteDocumentCatalog) Upsert(ctx context.Context, e *domain.DocumentEntry) error {
	query := `INSERT INTO documents (id, path, name, year, created_at, updated_at, last_opened_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			name = excluded.name,
			year = excluded.year,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Path,
		e.Name,
		e.Year,
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
		nullableTimeToString(e.LastOpenedAt, time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting document entry: %w", err)
	}
	return nil
}

func (r *SQLiteDocumentCatalog) GetByPath(ctx context.Context, path string) (*domain.DocumentEntry, error) {
	query := `SELECT id, path, name, year, created_at, updated_at, last_opened_at
		FROM documents WHERE path = ?`
	row := r.db.QueryRowContext(ctx, query, path)
	return scanEntry(row)
}

func (r *SQLiteDocumentCatalog) Recent(ctx context.Context, limit int) ([]*domain.DocumentEntry, error) {
	query := `SELECT id, path, name, year, created_at, updated_at, last_opened_at
		FROM documents
		ORDER BY COALESCE(last_opened_at, updated_at) DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent documents: %w", err)
	}
	defer rows.Close()

	var entries []*domain.DocumentEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}
	return entries, nil
}

func (r *SQLiteDocumentCatalog) Touch(ctx context.Context, path string) error {
	query := `UPDATE documents SET last_opened_at = ? WHERE path = ?`
	if _, err := r.db.ExecContext(ctx, query, nowUTC(), path); err != nil {
		return fmt.Errorf("touching document entry: %w", err)
	}
	return nil
}

func (r *SQLiteDocumentCatalog) Remove(ctx context.Context, path string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE path = ?`, path); err != nil {
		return fmt.Errorf("removing document entry: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*domain.DocumentEntry, error) {
	var e domain.DocumentEntry
	var createdAt, updatedAt string
	var lastOpened sql.NullString
	err := row.Scan(&e.ID, &e.Path, &e.Name, &e.Year, &createdAt, &updatedAt, &lastOpened)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning document entry: %w", err)
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	e.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	e.LastOpenedAt = parseNullableTime(lastOpened, time.RFC3339)
	return &e, nil
}
