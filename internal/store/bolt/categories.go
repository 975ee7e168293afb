package bolt

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/linknest/linknest/internal/domain"
)

// PutCategory stores a category record, replacing any existing record with
// the same id.
func (s *Store) PutCategory(ctx context.Context, cat domain.Category) error {
	data, err := json.Marshal(cat)
	if err != nil {
		return fmt.Errorf("failed to marshal category %s: %w", cat.ID, err)
	}
	if err := s.put(ctx, bucketCategories, cat.ID, data); err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

// GetCategory retrieves a single category by id.
func (s *Store) GetCategory(ctx context.Context, id string) (domain.Category, bool, error) {
	data, found, err := s.get(ctx, bucketCategories, id)
	if err != nil {
		return domain.Category{}, false, fmt.Errorf("failed to get category: %w", err)
	}
	if !found {
		return domain.Category{}, false, nil
	}
	var cat domain.Category
	if err := json.Unmarshal(data, &cat); err != nil {
		return domain.Category{}, false, fmt.Errorf("failed to unmarshal category %s: %w", id, err)
	}
	return cat, true, nil
}

// GetAllCategories retrieves every category record.
func (s *Store) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	raw, err := s.getAll(ctx, bucketCategories)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	cats := make([]domain.Category, 0, len(raw))
	for _, data := range raw {
		var cat domain.Category
		if err := json.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("failed to unmarshal category: %w", err)
		}
		cats = append(cats, cat)
	}
	return cats, nil
}

// DeleteCategory removes a category record. Items tagged with its name are
// left untouched; they surface as Uncategorized at query time.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	if err := s.delete(ctx, bucketCategories, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// ClearCategories removes all category records.
func (s *Store) ClearCategories(ctx context.Context) error {
	if err := s.clear(ctx, bucketCategories); err != nil {
		return fmt.Errorf("failed to clear categories: %w", err)
	}
	return nil
}
