package domain

import "time"

// ItemType classifies what an item points at.
type ItemType string

const (
	TypeLink  ItemType = "link"
	TypeImage ItemType = "image"
	TypeFile  ItemType = "file"
)

// UncategorizedTag is the fallback tag for items saved without a category.
// It is also a reserved filter name, together with FilterAll.
const (
	UncategorizedTag = "Uncategorized"
	FilterAll        = "All"
)

// Item represents a saved bookmark or uploaded file.
type Item struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier (UUID for user-created
	// items, hash-derived for seeded ones).
	ID string `json:"id"`

	// ─────────────────────────────
	// Content
	// ─────────────────────────────

	// Title is the display name. Never empty for user-created items.
	Title string `json:"title"`

	// URL is the external link. Empty for uploaded files.
	URL string `json:"url,omitempty"`

	// Type is link, image or file.
	Type ItemType `json:"type,omitempty"`

	// FileType is the MIME type of the attached blob, when one exists.
	FileType string `json:"fileType,omitempty"`

	// Tag is the category name this item belongs to. It is a free-text
	// join key against Category.Name, not a foreign key: when no
	// category carries this name the item shows up as Uncategorized.
	Tag string `json:"tag,omitempty"`

	// ─────────────────────────────
	// Ordering & metadata
	// ─────────────────────────────

	// Order is the descending sort key, epoch milliseconds at creation
	// unless rearranged manually. Zero means "not yet assigned".
	Order int64 `json:"order,omitempty"`

	// CreatedAt is set once at creation.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is stamped on every mutation.
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasContent reports whether the item carries a link or an attached file.
func (i Item) HasContent() bool {
	return i.URL != "" || i.FileType != ""
}

// Category is a user-defined bucket items are tagged into by name.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// FileUpload is a decoded file attachment handed to the mutation service.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}
