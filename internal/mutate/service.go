// Package mutate validates and applies every write operation: item and
// category create/update/delete, blob uploads and manual reordering. Each
// successful mutation persists through the storage gateway and then
// triggers a full state reload; there is no partial update path.
package mutate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/linknest/linknest/internal/domain"
	"github.com/linknest/linknest/internal/logger"
	"github.com/linknest/linknest/internal/state"
)

// Store is the slice of the storage gateway the mutation service writes
// through.
type Store interface {
	PutItem(ctx context.Context, item domain.Item) error
	DeleteItem(ctx context.Context, id string) error
	PutCategory(ctx context.Context, cat domain.Category) error
	DeleteCategory(ctx context.Context, id string) error
	PutFile(ctx context.Context, id string, blob []byte) error
	DeleteFile(ctx context.Context, id string) error
}

// ItemInput is the raw form input for creating or editing an item.
type ItemInput struct {
	Title    string
	URL      string
	Category string
	File     *domain.FileUpload
}

// Service applies mutations. All validation happens before the first
// write; once writes begin they are not rolled back.
type Service struct {
	store  Store
	state  *state.State
	logger logger.Logger
	now    func() time.Time
}

// New creates a mutation service.
func New(store Store, st *state.State, log logger.Logger) *Service {
	return &Service{
		store:  store,
		state:  st,
		logger: log,
		now:    time.Now,
	}
}

// SaveItem validates and persists an item. An empty editID creates a new
// item; otherwise the existing record is merged and updated in place. When
// a file is attached its blob is written before the item record, keyed by
// the item id. A failure between the two writes can leave an orphaned
// blob; that is an accepted degraded state, cleaned up by the sweeper.
func (s *Service) SaveItem(ctx context.Context, in ItemInput, editID string) (domain.Item, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return domain.Item{}, domain.Validationf("title is required")
	}

	url := strings.TrimSpace(in.URL)
	editing := editID != ""
	if !editing && url == "" && in.File == nil {
		return domain.Item{}, domain.Validationf("a link URL or an uploaded file is required")
	}

	now := s.now()
	var item domain.Item
	if editing {
		orig, ok := s.state.Item(editID)
		if url == "" && in.File == nil && (!ok || !orig.HasContent()) {
			return domain.Item{}, domain.Validationf("item must keep a link URL or a file")
		}
		if ok {
			item = orig
		} else {
			item = domain.Item{ID: editID, CreatedAt: now}
		}
	} else {
		item = domain.Item{ID: uuid.NewString(), CreatedAt: now}
	}

	item.Title = title
	item.URL = url
	item.Tag = in.Category
	if item.Tag == "" {
		item.Tag = domain.UncategorizedTag
	}
	if item.Type == "" {
		item.Type = domain.TypeLink
	}
	item.UpdatedAt = now
	if item.Order == 0 {
		item.Order = now.UnixMilli()
	}

	if in.File != nil {
		if strings.HasPrefix(in.File.ContentType, "image") {
			item.Type = domain.TypeImage
		} else {
			item.Type = domain.TypeFile
		}
		item.FileType = in.File.ContentType
		if err := s.store.PutFile(ctx, item.ID, in.File.Data); err != nil {
			return domain.Item{}, err
		}
		if item.Title == "" {
			item.Title = in.File.Name
		}
	}

	if err := s.store.PutItem(ctx, item); err != nil {
		return domain.Item{}, err
	}

	s.logger.Info("item saved",
		logger.String("id", item.ID),
		logger.String("type", string(item.Type)),
		logger.String("tag", item.Tag))
	return item, s.state.Refresh(ctx)
}

// SaveCategory creates a category. The icon defaults to a folder glyph.
func (s *Service) SaveCategory(ctx context.Context, name, icon string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Category{}, domain.Validationf("category name is required")
	}
	if icon == "" {
		icon = "📁"
	}
	cat := domain.Category{
		ID:   "cat_" + uuid.NewString(),
		Name: name,
		Icon: icon,
	}
	if err := s.store.PutCategory(ctx, cat); err != nil {
		return domain.Category{}, err
	}
	s.logger.Info("category saved", logger.String("id", cat.ID), logger.String("name", cat.Name))
	return cat, s.state.Refresh(ctx)
}

// DeleteCategory removes the category record only. Item tags are never
// rewritten; items that pointed at the deleted name settle into the
// Uncategorized bucket at query time.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	if err := s.store.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.logger.Info("category deleted", logger.String("id", id))
	return s.state.Refresh(ctx)
}

// DeleteItem removes an item and its blob. Both deletes are no-ops when
// nothing is stored under the id.
func (s *Service) DeleteItem(ctx context.Context, id string) error {
	if err := s.store.DeleteItem(ctx, id); err != nil {
		return err
	}
	if err := s.store.DeleteFile(ctx, id); err != nil {
		return err
	}
	s.logger.Info("item deleted", logger.String("id", id))
	return s.state.Refresh(ctx)
}

// ReorderSwap exchanges the order values of two items and persists both.
// No-op when the ids are equal or either item is unknown.
func (s *Service) ReorderSwap(ctx context.Context, srcID, targetID string) error {
	if srcID == targetID {
		return nil
	}
	src, okSrc := s.state.Item(srcID)
	target, okTarget := s.state.Item(targetID)
	if !okSrc || !okTarget {
		return nil
	}

	src.Order, target.Order = target.Order, src.Order
	if err := s.store.PutItem(ctx, src); err != nil {
		return fmt.Errorf("reorder source: %w", err)
	}
	if err := s.store.PutItem(ctx, target); err != nil {
		return fmt.Errorf("reorder target: %w", err)
	}
	s.logger.Debug("items reordered",
		logger.String("src", srcID),
		logger.String("target", targetID))
	return s.state.Refresh(ctx)
}
