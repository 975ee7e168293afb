package state

import (
	"context"
	"fmt"

	"github.com/linknest/linknest/internal/domain"
)

// DefaultCategories are written once into an empty categories collection so
// a fresh database is not a blank slate. Ids are stable, which keeps the
// seed idempotent across restarts.
var DefaultCategories = []domain.Category{
	{ID: "cat_work", Name: "Work", Icon: "💼"},
	{ID: "cat_learn", Name: "Learn", Icon: "🧠"},
	{ID: "cat_tools", Name: "Tools", Icon: "🛠️"},
}

// EnsureSeeded writes the default categories when none exist yet. It is an
// explicit init-time step, deliberately kept out of the read path.
func (s *State) EnsureSeeded(ctx context.Context) error {
	cats, err := s.store.GetAllCategories(ctx)
	if err != nil {
		return fmt.Errorf("seed check: %w", err)
	}
	if len(cats) > 0 {
		return nil
	}
	for _, cat := range DefaultCategories {
		if err := s.store.PutCategory(ctx, cat); err != nil {
			return fmt.Errorf("seed category %s: %w", cat.Name, err)
		}
	}
	return nil
}
