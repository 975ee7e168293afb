// Package view derives the rendered item list from cached state. All
// functions are pure: they filter, search and slice but never re-sort, so
// the descending order established at load time is preserved end to end.
package view

import (
	"strings"

	"github.com/linknest/linknest/internal/domain"
	"github.com/linknest/linknest/internal/state"
)

// Result is the fully derived view for the current parameters: the visible
// page plus everything the sidebar and pagination controls need.
type Result struct {
	Items         []domain.Item  `json:"items"`
	Total         int            `json:"total"`
	Page          int            `json:"page"`
	PerPage       int            `json:"perPage"`
	TotalPages    int            `json:"totalPages"`
	Filter        string         `json:"filter"`
	Search        string         `json:"search"`
	View          string         `json:"view"`
	Counts        map[string]int `json:"counts"`
	Uncategorized int            `json:"uncategorized"`
}

// Visible applies the category filter and the search text, in that order.
// A named filter matches the tag exactly; Uncategorized matches items whose
// tag is not the name of any existing category; All passes everything.
// Search is a case-insensitive substring match against title or url, and an
// empty search matches all.
func Visible(items []domain.Item, categories []domain.Category, filter, search string) []domain.Item {
	var known map[string]bool
	if filter == domain.UncategorizedTag {
		known = knownNames(categories)
	}

	q := strings.ToLower(search)
	out := make([]domain.Item, 0, len(items))
	for _, it := range items {
		switch filter {
		case domain.FilterAll:
		case domain.UncategorizedTag:
			if known[it.Tag] {
				continue
			}
		default:
			if it.Tag != filter {
				continue
			}
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(it.Title), q) &&
			!strings.Contains(strings.ToLower(it.URL), q) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Paginate returns the 1-based page slice of the visible set.
func Paginate(visible []domain.Item, page, perPage int) []domain.Item {
	if page < 1 || perPage < 1 {
		return nil
	}
	start := (page - 1) * perPage
	if start >= len(visible) {
		return nil
	}
	end := start + perPage
	if end > len(visible) {
		end = len(visible)
	}
	return visible[start:end]
}

// TotalPages returns how many pages the visible set spans.
func TotalPages(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// CategoryCounts counts items per category by exact tag-name match.
func CategoryCounts(items []domain.Item, categories []domain.Category) map[string]int {
	counts := make(map[string]int, len(categories))
	for _, cat := range categories {
		counts[cat.Name] = 0
	}
	for _, it := range items {
		if _, ok := counts[it.Tag]; ok {
			counts[it.Tag]++
		}
	}
	return counts
}

// UncategorizedCount counts items whose tag matches no category name.
func UncategorizedCount(items []domain.Item, categories []domain.Category) int {
	known := knownNames(categories)
	n := 0
	for _, it := range items {
		if !known[it.Tag] {
			n++
		}
	}
	return n
}

// Render assembles the complete view result for a state snapshot.
func Render(snap state.Snapshot) Result {
	visible := Visible(snap.Items, snap.Categories, snap.Filter, snap.Search)
	return Result{
		Items:         Paginate(visible, snap.Page, snap.PerPage),
		Total:         len(visible),
		Page:          snap.Page,
		PerPage:       snap.PerPage,
		TotalPages:    TotalPages(len(visible), snap.PerPage),
		Filter:        snap.Filter,
		Search:        snap.Search,
		View:          snap.View,
		Counts:        CategoryCounts(snap.Items, snap.Categories),
		Uncategorized: UncategorizedCount(snap.Items, snap.Categories),
	}
}

func knownNames(categories []domain.Category) map[string]bool {
	known := make(map[string]bool, len(categories))
	for _, cat := range categories {
		known[cat.Name] = true
	}
	return known
}
