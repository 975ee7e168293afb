package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/linknest/linknest/internal/domain"
	"github.com/linknest/linknest/internal/logger"
)

// Store is the slice of the storage gateway the sweeper needs.
type Store interface {
	GetAllItems(ctx context.Context) ([]domain.Item, error)
	FileIDs(ctx context.Context) ([]string, error)
	DeleteFile(ctx context.Context, id string) error
}

// OrphanSweeper periodically removes file blobs whose owning item no
// longer exists. An item save writes the blob before the item record with
// no rollback, so a failure in between can strand a blob; the sweeper
// turns that accepted window into a bounded leak.
type OrphanSweeper struct {
	store    Store
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
}

// NewOrphanSweeper creates a sweeper.
func NewOrphanSweeper(store Store, log logger.Logger, interval time.Duration) *OrphanSweeper {
	return &OrphanSweeper{
		store:    store,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start runs one sweep immediately, then sweeps on the configured interval
// until Stop or context cancellation.
func (os *OrphanSweeper) Start(ctx context.Context) error {
	if err := os.Sweep(ctx); err != nil {
		os.logger.Warn("initial orphan sweep failed", logger.Error(err))
	}

	ticker := time.NewTicker(os.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := os.Sweep(ctx); err != nil {
					os.logger.Error("orphan sweep failed", logger.Error(err))
				}
			case <-os.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the sweeper.
func (os *OrphanSweeper) Stop() {
	close(os.stopCh)
}

// Sweep deletes every blob not owned by a live item.
func (os *OrphanSweeper) Sweep(ctx context.Context) error {
	items, err := os.store.GetAllItems(ctx)
	if err != nil {
		return fmt.Errorf("sweep: list items: %w", err)
	}
	owned := make(map[string]bool, len(items))
	for _, item := range items {
		owned[item.ID] = true
	}

	ids, err := os.store.FileIDs(ctx)
	if err != nil {
		return fmt.Errorf("sweep: list blobs: %w", err)
	}

	deleted := 0
	for _, id := range ids {
		if owned[id] {
			continue
		}
		if err := os.store.DeleteFile(ctx, id); err != nil {
			os.logger.Warn("failed to delete orphaned blob",
				logger.String("id", id),
				logger.Error(err))
			continue
		}
		deleted++
	}

	if deleted > 0 {
		os.logger.Info("orphan sweep completed",
			logger.Int("blobs_deleted", deleted))
	}
	return nil
}
