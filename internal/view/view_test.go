package view

import (
	"testing"

	"github.com/linknest/linknest/internal/domain"
	"github.com/linknest/linknest/internal/state"
)

var testCategories = []domain.Category{
	{ID: "cat_work", Name: "Work", Icon: "💼"},
	{ID: "cat_learn", Name: "Learn", Icon: "🧠"},
}

func testItems() []domain.Item {
	// Already in descending order, as the state cache guarantees.
	return []domain.Item{
		{ID: "1", Title: "Go Blog", URL: "https://go.dev/blog", Tag: "Learn", Order: 500},
		{ID: "2", Title: "Jira", URL: "https://jira.example.com", Tag: "Work", Order: 400},
		{ID: "3", Title: "Orphaned", URL: "https://lost.example.com", Tag: "Archive", Order: 300},
		{ID: "4", Title: "Notes.pdf", Tag: "Work", Order: 200},
		{ID: "5", Title: "Untagged", URL: "https://plain.example.com", Tag: "Uncategorized", Order: 100},
	}
}

func TestVisibleFilters(t *testing.T) {
	tests := []struct {
		name    string
		filter  string
		search  string
		wantIDs []string
	}{
		{
			name:    "all passes everything",
			filter:  "All",
			wantIDs: []string{"1", "2", "3", "4", "5"},
		},
		{
			name:    "named filter matches tag exactly",
			filter:  "Work",
			wantIDs: []string{"2", "4"},
		},
		{
			name:    "uncategorized matches unknown tags",
			filter:  "Uncategorized",
			wantIDs: []string{"3", "5"},
		},
		{
			name:    "filter with no matches",
			filter:  "Tools",
			wantIDs: []string{},
		},
		{
			name:    "search matches title case-insensitively",
			filter:  "All",
			search:  "jIrA",
			wantIDs: []string{"2"},
		},
		{
			name:    "search matches url",
			filter:  "All",
			search:  "go.dev",
			wantIDs: []string{"1"},
		},
		{
			name:    "search composes with filter",
			filter:  "Work",
			search:  "notes",
			wantIDs: []string{"4"},
		},
		{
			name:    "empty search matches all",
			filter:  "Learn",
			search:  "",
			wantIDs: []string{"1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Visible(testItems(), testCategories, tt.filter, tt.search)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Visible() returned %d items, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("Visible()[%d].ID = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestVisiblePreservesOrder(t *testing.T) {
	got := Visible(testItems(), testCategories, "All", "")
	for i := 1; i < len(got); i++ {
		if got[i-1].Order < got[i].Order {
			t.Errorf("Visible() disturbed ordering at %d", i)
		}
	}
}

func TestUncategorizedDisjointFromNamedPartitions(t *testing.T) {
	items := testItems()
	uncat := Visible(items, testCategories, "Uncategorized", "")

	inUncat := make(map[string]bool, len(uncat))
	for _, it := range uncat {
		inUncat[it.ID] = true
	}
	for _, cat := range testCategories {
		for _, it := range Visible(items, testCategories, cat.Name, "") {
			if inUncat[it.ID] {
				t.Errorf("item %s is in both Uncategorized and %s", it.ID, cat.Name)
			}
		}
	}
}

func TestPaginate(t *testing.T) {
	items := testItems()

	tests := []struct {
		name    string
		page    int
		perPage int
		wantIDs []string
	}{
		{"first page", 1, 2, []string{"1", "2"}},
		{"middle page", 2, 2, []string{"3", "4"}},
		{"short last page", 3, 2, []string{"5"}},
		{"page past the end", 4, 2, nil},
		{"zero page", 0, 2, nil},
		{"single page holds all", 1, 10, []string{"1", "2", "3", "4", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.page, tt.perPage)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Paginate() returned %d items, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("Paginate()[%d].ID = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestPaginationReconstructsVisibleSet(t *testing.T) {
	visible := Visible(testItems(), testCategories, "All", "")
	perPage := 2

	var rebuilt []domain.Item
	for page := 1; page <= TotalPages(len(visible), perPage); page++ {
		rebuilt = append(rebuilt, Paginate(visible, page, perPage)...)
	}

	if len(rebuilt) != len(visible) {
		t.Fatalf("concatenated pages hold %d items, want %d", len(rebuilt), len(visible))
	}
	for i := range visible {
		if rebuilt[i].ID != visible[i].ID {
			t.Errorf("page concatenation diverges at %d: %s != %s",
				i, rebuilt[i].ID, visible[i].ID)
		}
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, perPage, want int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{5, 2, 3},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.perPage); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.perPage, got, tt.want)
		}
	}
}

func TestCounts(t *testing.T) {
	items := testItems()

	counts := CategoryCounts(items, testCategories)
	if counts["Work"] != 2 {
		t.Errorf("counts[Work] = %d, want 2", counts["Work"])
	}
	if counts["Learn"] != 1 {
		t.Errorf("counts[Learn] = %d, want 1", counts["Learn"])
	}
	if _, ok := counts["Archive"]; ok {
		t.Error("counts includes a tag with no matching category")
	}

	if got := UncategorizedCount(items, testCategories); got != 2 {
		t.Errorf("UncategorizedCount() = %d, want 2", got)
	}
}

func TestCategoryDeleteShiftsCountsNotTags(t *testing.T) {
	items := testItems()
	remaining := []domain.Category{testCategories[0]} // Learn deleted

	// Tags are untouched; the Learn item now counts as Uncategorized.
	if got := UncategorizedCount(items, remaining); got != 3 {
		t.Errorf("UncategorizedCount() after delete = %d, want 3", got)
	}
	uncat := Visible(items, remaining, "Uncategorized", "")
	found := false
	for _, it := range uncat {
		if it.ID == "1" {
			found = true
			if it.Tag != "Learn" {
				t.Errorf("item tag was rewritten to %q", it.Tag)
			}
		}
	}
	if !found {
		t.Error("item tagged with the deleted category is not in Uncategorized")
	}
}

func TestRender(t *testing.T) {
	snap := state.Snapshot{
		Items:      testItems(),
		Categories: testCategories,
		Page:       2,
		PerPage:    2,
		Search:     "",
		Filter:     "All",
		View:       "grid",
	}

	res := Render(snap)
	if res.Total != 5 {
		t.Errorf("Total = %d, want 5", res.Total)
	}
	if res.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", res.TotalPages)
	}
	if len(res.Items) != 2 || res.Items[0].ID != "3" {
		t.Errorf("page 2 items = %+v, want ids [3 4]", res.Items)
	}
	if res.Uncategorized != 2 {
		t.Errorf("Uncategorized = %d, want 2", res.Uncategorized)
	}
	if res.Counts["Work"] != 2 {
		t.Errorf("Counts[Work] = %d, want 2", res.Counts["Work"])
	}
}
