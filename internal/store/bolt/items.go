package bolt

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/linknest/linknest/internal/domain"
)

// PutItem stores an item record, replacing any existing record with the
// same id.
func (s *Store) PutItem(ctx context.Context, item domain.Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item %s: %w", item.ID, err)
	}
	if err := s.put(ctx, bucketItems, item.ID, data); err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}
	return nil
}

// GetItem retrieves a single item by id. The second return value is false
// when no such item exists.
func (s *Store) GetItem(ctx context.Context, id string) (domain.Item, bool, error) {
	data, found, err := s.get(ctx, bucketItems, id)
	if err != nil {
		return domain.Item{}, false, fmt.Errorf("failed to get item: %w", err)
	}
	if !found {
		return domain.Item{}, false, nil
	}
	var item domain.Item
	if err := json.Unmarshal(data, &item); err != nil {
		return domain.Item{}, false, fmt.Errorf("failed to unmarshal item %s: %w", id, err)
	}
	return item, true, nil
}

// GetAllItems retrieves every item record. Order is not guaranteed; callers
// must re-sort.
func (s *Store) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	raw, err := s.getAll(ctx, bucketItems)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	items := make([]domain.Item, 0, len(raw))
	for _, data := range raw {
		var item domain.Item
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// DeleteItem removes an item record. No-op when the id is absent.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	if err := s.delete(ctx, bucketItems, id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

// ClearItems removes all item records.
func (s *Store) ClearItems(ctx context.Context) error {
	if err := s.clear(ctx, bucketItems); err != nil {
		return fmt.Errorf("failed to clear items: %w", err)
	}
	return nil
}
