package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestThemeDefaultsToLight(t *testing.T) {
	p := New(filepath.Join(t.TempDir(), "theme"))
	if got := p.Theme(); got != ThemeLight {
		t.Errorf("Theme() = %q, want light before any save", got)
	}
}

func TestSetThemeRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme")
	p := New(path)

	if err := p.SetTheme(ThemeDark); err != nil {
		t.Fatalf("SetTheme(dark) failed: %v", err)
	}
	if got := p.Theme(); got != ThemeDark {
		t.Errorf("Theme() = %q, want dark", got)
	}

	// A fresh instance reads the same file.
	if got := New(path).Theme(); got != ThemeDark {
		t.Errorf("Theme() from new instance = %q, want dark", got)
	}

	if err := p.SetTheme(ThemeLight); err != nil {
		t.Fatalf("SetTheme(light) failed: %v", err)
	}
	if got := p.Theme(); got != ThemeLight {
		t.Errorf("Theme() = %q, want light", got)
	}
}

func TestSetThemeRejectsUnknown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme")
	p := New(path)

	if err := p.SetTheme("sepia"); err == nil {
		t.Error("SetTheme(sepia) = nil, want error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("rejected theme was written to disk")
	}
}

func TestThemeTreatsGarbageAsLight(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme")
	if err := os.WriteFile(path, []byte("???\n"), 0o600); err != nil {
		t.Fatalf("writing prefs file: %v", err)
	}
	if got := New(path).Theme(); got != ThemeLight {
		t.Errorf("Theme() on corrupt file = %q, want light", got)
	}
}
