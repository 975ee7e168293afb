package seedfile

import (
	"context"
	"fmt"

	"github.com/linknest/linknest/internal/domain"
	"github.com/linknest/linknest/internal/logger"
)

// Store is the slice of the storage gateway the seeder needs. Existence
// checks keep the apply insert-only: user edits are never clobbered.
type Store interface {
	GetItem(ctx context.Context, id string) (domain.Item, bool, error)
	PutItem(ctx context.Context, item domain.Item) error
	GetCategory(ctx context.Context, id string) (domain.Category, bool, error)
	PutCategory(ctx context.Context, cat domain.Category) error
}

// Apply loads the seed file and inserts any record not already present.
// Called once at startup when a seed file is configured.
func Apply(ctx context.Context, filePath string, store Store, log logger.Logger) error {
	config, err := NewLoader(filePath).Load()
	if err != nil {
		return err
	}
	cats, items := NewMapper().Map(config)

	inserted := 0
	for _, cat := range cats {
		if _, exists, err := store.GetCategory(ctx, cat.ID); err != nil {
			return fmt.Errorf("seed category lookup: %w", err)
		} else if exists {
			continue
		}
		if err := store.PutCategory(ctx, cat); err != nil {
			return fmt.Errorf("seed category write: %w", err)
		}
		inserted++
	}
	for _, item := range items {
		if _, exists, err := store.GetItem(ctx, item.ID); err != nil {
			return fmt.Errorf("seed item lookup: %w", err)
		} else if exists {
			continue
		}
		if err := store.PutItem(ctx, item); err != nil {
			return fmt.Errorf("seed item write: %w", err)
		}
		inserted++
	}

	log.Info("seed file applied",
		logger.String("file", filePath),
		logger.Int("records_inserted", inserted),
		logger.Int("records_in_file", len(cats)+len(items)))
	return nil
}
