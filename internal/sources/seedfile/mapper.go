package seedfile

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/linknest/linknest/internal/domain"
)

// Mapper converts a seed config to domain records.
type Mapper struct{}

// NewMapper creates a seed mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Map converts the config. Entries without a URL are skipped; a missing
// title falls back to the URL. Ids are derived from stable content (the
// URL for items, the name for categories) so re-applying the same seed
// file never duplicates records.
func (m *Mapper) Map(config Config) ([]domain.Category, []domain.Item) {
	now := time.Now()

	cats := make([]domain.Category, 0, len(config.Categories))
	for _, entry := range config.Categories {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			continue
		}
		icon := entry.Icon
		if icon == "" {
			icon = "📁"
		}
		cats = append(cats, domain.Category{
			ID:   "cat_" + seedID(name),
			Name: name,
			Icon: icon,
		})
	}

	items := make([]domain.Item, 0, len(config.Items))
	for _, entry := range config.Items {
		url := strings.TrimSpace(entry.URL)
		if url == "" {
			continue
		}
		title := strings.TrimSpace(entry.Title)
		if title == "" {
			title = url
		}
		tag := strings.TrimSpace(entry.Category)
		if tag == "" {
			tag = domain.UncategorizedTag
		}
		items = append(items, domain.Item{
			ID:        seedID(url),
			Title:     title,
			URL:       url,
			Type:      domain.TypeLink,
			Tag:       tag,
			Order:     now.UnixMilli(),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return cats, items
}

// seedID derives a short stable id from record content. The same input
// always produces the same id, which is what makes the seed idempotent.
func seedID(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])[:16]
}
