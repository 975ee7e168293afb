// Package portable serializes the organizer to a single JSON document and
// merges or replaces local state from one.
package portable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/linknest/linknest/internal/domain"
	"github.com/linknest/linknest/internal/logger"
	"github.com/linknest/linknest/internal/state"
)

// Mode selects how an import treats existing data.
type Mode string

const (
	// ModeMerge upserts the document on top of existing records.
	ModeMerge Mode = "merge"
	// ModeReplace clears all three collections first.
	ModeReplace Mode = "replace"
)

// Document is the portable export format. It is versionless on purpose:
// the only schema change allowed is additive.
type Document struct {
	Items      []domain.Item     `json:"items"`
	Categories []domain.Category `json:"categories"`
	ExportedAt string            `json:"exportedAt,omitempty"`
}

// Stats summarizes what an import wrote.
type Stats struct {
	Items      int `json:"items"`
	Categories int `json:"categories"`
}

// Store is the slice of the storage gateway the import path writes through.
type Store interface {
	PutItem(ctx context.Context, item domain.Item) error
	PutCategory(ctx context.Context, cat domain.Category) error
	ClearItems(ctx context.Context) error
	ClearCategories(ctx context.Context) error
	ClearFiles(ctx context.Context) error
}

// Service implements import and export against the store and state cache.
type Service struct {
	store  Store
	state  *state.State
	logger logger.Logger
	now    func() time.Time
}

// New creates an import/export service.
func New(store Store, st *state.State, log logger.Logger) *Service {
	return &Service{
		store:  store,
		state:  st,
		logger: log,
		now:    time.Now,
	}
}

// Export produces the portable document from current state, verbatim.
func (s *Service) Export() Document {
	snap := s.state.Snapshot()
	return Document{
		Items:      snap.Items,
		Categories: snap.Categories,
		ExportedAt: s.now().UTC().Format(time.RFC3339),
	}
}

// Parse decodes an import payload. It accepts either the full document
// shape or a bare array of items (treated as items with no categories).
// Malformed input yields a ParseError and nothing is written.
func Parse(data []byte) (Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Document{}, &domain.ParseError{Err: fmt.Errorf("empty document")}
	}

	if trimmed[0] == '[' {
		var items []domain.Item
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return Document{}, &domain.ParseError{Err: err}
		}
		return Document{Items: items}, nil
	}

	var doc Document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return Document{}, &domain.ParseError{Err: err}
	}
	return doc, nil
}

// Import parses the payload and writes it into the store. Replace mode
// clears items, categories and file blobs first. Every category and item
// in the document is upserted by id; items without an id get a fresh one,
// so repeated imports of anonymous data append rather than overwrite.
func (s *Service) Import(ctx context.Context, data []byte, mode Mode) (Stats, error) {
	doc, err := Parse(data)
	if err != nil {
		return Stats{}, err
	}

	if mode == ModeReplace {
		if err := s.store.ClearItems(ctx); err != nil {
			return Stats{}, err
		}
		if err := s.store.ClearCategories(ctx); err != nil {
			return Stats{}, err
		}
		if err := s.store.ClearFiles(ctx); err != nil {
			return Stats{}, err
		}
	}

	for _, cat := range doc.Categories {
		if err := s.store.PutCategory(ctx, cat); err != nil {
			return Stats{}, err
		}
	}
	for _, item := range doc.Items {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		if err := s.store.PutItem(ctx, item); err != nil {
			return Stats{}, err
		}
	}

	stats := Stats{Items: len(doc.Items), Categories: len(doc.Categories)}
	s.logger.Info("import completed",
		logger.String("mode", string(mode)),
		logger.Int("items", stats.Items),
		logger.Int("categories", stats.Categories))
	return stats, s.state.Refresh(ctx)
}
