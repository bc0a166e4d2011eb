package repository

import (
	"context"

	"github.com/jthomassen/roadline/internal/domain"
)

// DocumentCatalog tracks roadmap files the host application has created or
// opened, so the CLI can list recent documents.
type DocumentCatalog interface {
	Upsert(ctx context.Context, e *domain.DocumentEntry) error
	GetByPath(ctx context.Context, path string) (*domain.DocumentEntry, error)
	Recent(ctx context.Context, limit int) ([]*domain.DocumentEntry, error)
	Touch(ctx context.Context, path string) error
	Remove(ctx context.Context, path string) error
}
