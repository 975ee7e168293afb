// Package prefs persists the theme preference as a single string in a
// plain file, deliberately outside the embedded database.
package prefs

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Prefs stores display preferences.
type Prefs struct {
	path string
	mu   sync.Mutex
}

// New creates a preference store backed by the given file path. The file
// is created on first write.
func New(path string) *Prefs {
	return &Prefs{path: path}
}

// Theme returns the saved theme, defaulting to light when nothing has been
// saved or the file is unreadable.
func (p *Prefs) Theme() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := os.ReadFile(p.path)
	if err != nil {
		return ThemeLight
	}
	theme := strings.TrimSpace(string(data))
	if theme != ThemeDark {
		return ThemeLight
	}
	return theme
}

// SetTheme saves the theme. Only light and dark are accepted.
func (p *Prefs) SetTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme %q", theme)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return os.WriteFile(p.path, []byte(theme+"\n"), 0o600)
}
