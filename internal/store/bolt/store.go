package bolt

import (
	"context"
	"fmt"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/linknest/linknest/internal/domain"
)

// Bucket names. One bucket per collection, mirroring the persisted schema:
// items and categories hold JSON records keyed by id, files holds raw blob
// bytes keyed by the owning item id.
var (
	bucketItems      = []byte("items")
	bucketFiles      = []byte("files")
	bucketCategories = []byte("categories")

	allBuckets = [][]byte{bucketItems, bucketFiles, bucketCategories}
)

// Store is the storage gateway over the embedded bbolt database.
type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) the database file and ensures every collection
// bucket exists. Existing buckets are never dropped or rewritten; a missing
// one is simply created, so version upgrades stay additive.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrStorageUnavailable, path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database is still readable. Used by the readiness probe.
func (s *Store) Ping() error {
	return s.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketItems) == nil {
			return fmt.Errorf("items bucket missing")
		}
		return nil
	})
}

// put upserts an encoded record into a bucket. Insert-or-replace by key,
// never a partial-field merge.
func (s *Store) put(ctx context.Context, bucket []byte, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), data)
	})
}

// get reads a single raw record. found is false when the key is absent.
func (s *Store) get(ctx context.Context, bucket []byte, key string) (data []byte, found bool, err error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	err = s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucket).Get([]byte(key))
		if v == nil {
			return nil
		}
		found = true
		data = append(data, v...) // copy out of the mmap before the tx ends
		return nil
	})
	return data, found, err
}

// delete removes a record. Deleting a missing key is a no-op, not an error.
func (s *Store) delete(ctx context.Context, bucket []byte, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).Delete([]byte(key))
	})
}

// getAll returns every raw record in a bucket, in key order.
func (s *Store) getAll(ctx context.Context, bucket []byte) ([][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out [][]byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).ForEach(func(_, v []byte) error {
			out = append(out, append([]byte(nil), v...))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// clear removes every record in a bucket by dropping and recreating it.
func (s *Store) clear(ctx context.Context, bucket []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucket); err != nil {
			return fmt.Errorf("drop bucket %s: %w", bucket, err)
		}
		_, err := tx.CreateBucket(bucket)
		return err
	})
}
