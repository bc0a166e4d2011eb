package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jthomassen/roadline/internal/controller"
	"github.com/jthomassen/roadline/internal/docfile"
	"github.com/jthomassen/roadline/internal/domain"
	"github.com/jthomassen/roadline/internal/history"
	"github.com/jthomassen/roadline/internal/layout"
)

// session wires a loaded document to its controller, history log and layout.
// Plain commands open one, mutate, save and exit; the editor holds one for
// the whole run.
type session struct {
	app    *App
	path   string
	doc    *domain.Document
	view   map[string]any
	log    *history.Log
	ctrl   *controller.Controller
	layout *layout.Layout
}

func openSession(app *App, path string) (*session, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	doc, view, err := docfile.Load(abs)
	if err != nil {
		return nil, err
	}
	s := wireSession(app, abs, doc, view)
	if app.Catalog != nil {
		if err := app.Catalog.Touch(context.Background(), abs); err != nil {
			return nil, fmt.Errorf("updating catalog: %w", err)
		}
	}
	return s, nil
}

func wireSession(app *App, path string, doc *domain.Document, view map[string]any) *session {
	log := history.NewLog(doc)
	ctrl := controller.New(doc, log, app.Observers...)
	ctrl.SetPalette(app.Config.Palette())

	lay := layout.New(doc, app.Config.WeekWidth)
	ctrl.SetLayout(lay)
	// Row edits invalidate the geometry; rebuild before the next lookup.
	doc.OnRowsChanged(func() { lay.Rebuild(doc) })

	return &session{
		app:    app,
		path:   path,
		doc:    doc,
		view:   view,
		log:    log,
		ctrl:   ctrl,
		layout: lay,
	}
}

// save writes the document back and records it in the catalog.
func (s *session) save(ctx context.Context) error {
	if err := docfile.Save(s.path, s.doc, s.view); err != nil {
		return err
	}
	if s.app.Catalog == nil {
		return nil
	}
	now := time.Now().UTC()
	entry := &domain.DocumentEntry{
		ID:        domain.NewID(),
		Path:      s.path,
		Name:      documentName(s.path),
		Year:      s.doc.Year,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.app.Catalog.Upsert(ctx, entry); err != nil {
		return fmt.Errorf("updating catalog: %w", err)
	}
	return nil
}

func documentName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// resolveObjectID matches a full object id or a unique prefix.
func resolveObjectID(doc *domain.Document, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("object ID is required")
	}
	if doc.Object(input) != nil {
		return input, nil
	}
	var matches []string
	for _, obj := range doc.ObjectsInOrder() {
		if strings.HasPrefix(obj.ID, input) {
			matches = append(matches, obj.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("object not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("object ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveRowID matches a row by id, id prefix, or name (topic name or
// "topic/deliverable"). The literal "canvas" names the free canvas row.
func resolveRowID(doc *domain.Document, input string) (string, error) {
	if input == "" || input == "canvas" || input == domain.CanvasRowID {
		return domain.CanvasRowID, nil
	}
	kind, _, _ := doc.FindRow(input)
	if kind != "" {
		return input, nil
	}

	var matches []string
	for _, topic := range doc.Topics() {
		if strings.EqualFold(topic.Name, input) || strings.HasPrefix(topic.ID, input) {
			matches = append(matches, topic.ID)
		}
		for _, d := range topic.Deliverables {
			qualified := topic.Name + "/" + d.Name
			if strings.EqualFold(qualified, input) || strings.EqualFold(d.Name, input) || strings.HasPrefix(d.ID, input) {
				matches = append(matches, d.ID)
			}
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("row not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("row %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveTopicID matches a topic by id, id prefix, or name.
func resolveTopicID(doc *domain.Document, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("topic is required")
	}
	var matches []string
	for _, topic := range doc.Topics() {
		if topic.ID == input {
			return topic.ID, nil
		}
		if strings.EqualFold(topic.Name, input) || strings.HasPrefix(topic.ID, input) {
			matches = append(matches, topic.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("topic not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("topic %q is ambiguous (%d matches)", input, len(matches))
	}
}
