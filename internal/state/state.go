package state

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/linknest/linknest/internal/domain"
)

// Store is the slice of the storage gateway the state cache depends on.
type Store interface {
	GetAllItems(ctx context.Context) ([]domain.Item, error)
	GetAllCategories(ctx context.Context) ([]domain.Category, error)
	PutCategory(ctx context.Context, cat domain.Category) error
}

// State is the in-memory cache of items and categories plus the transient
// view parameters. It is a disposable, fully-reloadable projection of the
// store: every mutation is followed by a full Refresh, there is no partial
// update path.
type State struct {
	store Store

	mu         sync.RWMutex
	items      []domain.Item
	categories []domain.Category

	page    int
	perPage int
	search  string
	filter  string
	view    string
}

// Snapshot is a consistent copy of the cache handed to the view engine.
type Snapshot struct {
	Items      []domain.Item
	Categories []domain.Category
	Page       int
	PerPage    int
	Search     string
	Filter     string
	View       string
}

// New creates an empty state bound to a store. Call Init before use.
func New(store Store, perPage int) *State {
	if perPage <= 0 {
		perPage = 20
	}
	return &State{
		store:   store,
		page:    1,
		perPage: perPage,
		filter:  domain.FilterAll,
		view:    "grid",
	}
}

// Init seeds default categories when the collection is empty and performs
// the first full load.
func (s *State) Init(ctx context.Context) error {
	if err := s.EnsureSeeded(ctx); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// Refresh reloads items and categories from the store. Items missing an
// explicit order get one synthesized from their creation timestamp, then
// the list is sorted descending by order. Must run after every mutation.
func (s *State) Refresh(ctx context.Context) error {
	items, err := s.store.GetAllItems(ctx)
	if err != nil {
		return fmt.Errorf("refresh items: %w", err)
	}
	cats, err := s.store.GetAllCategories(ctx)
	if err != nil {
		return fmt.Errorf("refresh categories: %w", err)
	}

	for i := range items {
		if items[i].Order == 0 && !items[i].CreatedAt.IsZero() {
			items[i].Order = items[i].CreatedAt.UnixMilli()
		}
	}
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].Order > items[b].Order
	})

	s.mu.Lock()
	s.items = items
	s.categories = cats
	s.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the cached records and view parameters.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Items:      append([]domain.Item(nil), s.items...),
		Categories: append([]domain.Category(nil), s.categories...),
		Page:       s.page,
		PerPage:    s.perPage,
		Search:     s.search,
		Filter:     s.filter,
		View:       s.view,
	}
}

// Item looks up a cached item by id.
func (s *State) Item(id string) (domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return domain.Item{}, false
}

// SetFilter switches the active category filter and resets pagination.
func (s *State) SetFilter(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = name
	s.page = 1
}

// SetSearch updates the search text and resets pagination.
func (s *State) SetSearch(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = q
	s.page = 1
}

// SetPage moves to a 1-based page. Values below 1 clamp to 1.
func (s *State) SetPage(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 1 {
		n = 1
	}
	s.page = n
}

// SetView switches the display hint between grid and list. Unknown values
// are ignored.
func (s *State) SetView(mode string) {
	if mode != "grid" && mode != "list" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = mode
}
