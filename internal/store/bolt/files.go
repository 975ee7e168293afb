package bolt

import (
	"context"
	"fmt"

	bbolt "go.etcd.io/bbolt"
)

// PutFile stores a binary blob keyed by its owning item id. Blobs live in
// their own bucket so item list reads never load payloads.
func (s *Store) PutFile(ctx context.Context, id string, blob []byte) error {
	if err := s.put(ctx, bucketFiles, id, blob); err != nil {
		return fmt.Errorf("failed to save file blob: %w", err)
	}
	return nil
}

// GetFile retrieves the blob for an item id. The second return value is
// false when no blob is stored.
func (s *Store) GetFile(ctx context.Context, id string) ([]byte, bool, error) {
	data, found, err := s.get(ctx, bucketFiles, id)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get file blob: %w", err)
	}
	return data, found, nil
}

// DeleteFile removes the blob for an item id. No-op when none exists.
func (s *Store) DeleteFile(ctx context.Context, id string) error {
	if err := s.delete(ctx, bucketFiles, id); err != nil {
		return fmt.Errorf("failed to delete file blob: %w", err)
	}
	return nil
}

// ClearFiles removes all blobs.
func (s *Store) ClearFiles(ctx context.Context) error {
	if err := s.clear(ctx, bucketFiles); err != nil {
		return fmt.Errorf("failed to clear file blobs: %w", err)
	}
	return nil
}

// FileIDs returns the ids of all stored blobs without loading payloads.
// Used by the orphan sweeper.
func (s *Store) FileIDs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var ids []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketFiles).ForEach(func(k, _ []byte) error {
			ids = append(ids, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list file ids: %w", err)
	}
	return ids, nil
}
