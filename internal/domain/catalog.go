package domain

import "time"

// DocumentEntry is a catalog record for a roadmap file the host application
// knows about. The catalog tracks files; it never parses their contents.
type DocumentEntry struct {
	ID           string
	Path         string
	Name         string
	Year         int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastOpenedAt *time.Time
}
