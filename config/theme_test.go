package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestLoadThemeMissingFile(t *testing.T) {
	log := zaptest.NewLogger(t)

	theme := LoadTheme(filepath.Join(t.TempDir(), "nope.json"), log)
	if theme.Accent != "#FF3621" {
		t.Errorf("accent fallback = %q", theme.Accent)
	}
	if theme.FontFamily != "DM Sans" {
		t.Errorf("font fallback = %q", theme.FontFamily)
	}
}

func TestLoadThemeMalformedJSON(t *testing.T) {
	log := zaptest.NewLogger(t)

	path := filepath.Join(t.TempDir(), "theme.json")
	if err := os.WriteFile(path, []byte(`{"modes": `), 0644); err != nil {
		t.Fatal(err)
	}
	theme := LoadTheme(path, log)
	if theme.DarkBG != "#1B3139" {
		t.Errorf("dark bg fallback = %q", theme.DarkBG)
	}
}

// Keys fall back independently: a partial theme overrides only what it
// carries.
func TestLoadThemePerKeyFallback(t *testing.T) {
	log := zaptest.NewLogger(t)

	path := filepath.Join(t.TempDir(), "theme.json")
	content := `{
		"modes": {
			"light": {"accent": "#00A1C9"}
		},
		"typography": {"font_family": "Inter"}
	}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	theme := LoadTheme(path, log)
	if theme.Accent != "#00A1C9" {
		t.Errorf("accent not overridden: %q", theme.Accent)
	}
	if theme.FontFamily != "Inter" {
		t.Errorf("font not overridden: %q", theme.FontFamily)
	}
	// everything the file does not mention keeps brand defaults
	if theme.DarkBG != "#1B3139" || theme.Green != "#10B981" {
		t.Errorf("missing keys lost defaults: %+v", theme)
	}
}

func TestLoadThemeWrongValueType(t *testing.T) {
	log := zaptest.NewLogger(t)

	path := filepath.Join(t.TempDir(), "theme.json")
	if err := os.WriteFile(path, []byte(`{"modes": {"light": {"accent": 42}}}`), 0644); err != nil {
		t.Fatal(err)
	}
	theme := LoadTheme(path, log)
	if theme.Accent != "#FF3621" {
		t.Errorf("non-string value should fall back: %q", theme.Accent)
	}
}
