package config

import (
	"encoding/json"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Theme keeps brand colors and typography used when filling slides. Colors are
// hex strings ("#RRGGBB").
type Theme struct {
	Accent        string
	DarkBG        string
	LightBG       string
	TextDark      string
	TextLight     string
	TextSecondary string
	Green         string
	Red           string
	Divider       string
	FontFamily    string
}

// DefaultTheme returns hardcoded brand values used when theme file is absent
// or incomplete.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:        "#FF3621",
		DarkBG:        "#1B3139",
		LightBG:       "#F5F3F0",
		TextDark:      "#1B3139",
		TextLight:     "#FFFFFF",
		TextSecondary: "#6B7280",
		Green:         "#10B981",
		Red:           "#EF4444",
		Divider:       "#E5E7EB",
		FontFamily:    "DM Sans",
	}
}

// themeKeys maps dotted key paths in the theme file to theme fields. Paths
// follow the shared theme file layout also consumed by the web side of the
// brand kit.
var themeKeys = []struct {
	path   string
	assign func(*Theme, string)
}{
	{"modes.light.accent", func(t *Theme, v string) { t.Accent = v }},
	{"modes.dark.background", func(t *Theme, v string) { t.DarkBG = v }},
	{"modes.light.background", func(t *Theme, v string) { t.LightBG = v }},
	{"modes.light.text_primary", func(t *Theme, v string) { t.TextDark = v }},
	{"modes.dark.text_primary", func(t *Theme, v string) { t.TextLight = v }},
	{"modes.light.text_secondary", func(t *Theme, v string) { t.TextSecondary = v }},
	{"elements.pros_header_color", func(t *Theme, v string) { t.Green = v }},
	{"elements.cons_header_color", func(t *Theme, v string) { t.Red = v }},
	{"elements.stat_row_divider", func(t *Theme, v string) { t.Divider = v }},
	{"typography.font_family", func(t *Theme, v string) { t.FontFamily = v }},
}

// LoadTheme reads brand theme from JSON file. It never fails: file problems
// fall back to defaults wholesale, a missing or malformed key falls back for
// that key only. Every fallback is logged once.
func LoadTheme(path string, log *zap.Logger) *Theme {
	theme := DefaultTheme()

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("Theme file not readable, using default brand theme", zap.String("file", path), zap.Error(err))
		return theme
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Warn("Theme file is not valid JSON, using default brand theme", zap.String("file", path), zap.Error(err))
		return theme
	}

	for _, key := range themeKeys {
		v, ok := lookupString(raw, key.path)
		if !ok {
			log.Warn("Theme key missing or not a string, using default value", zap.String("key", key.path))
			continue
		}
		key.assign(theme, v)
	}
	return theme
}

func lookupString(raw map[string]any, path string) (string, bool) {
	cur := any(raw)
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return "", false
		}
		if cur, ok = m[part]; !ok {
			return "", false
		}
	}
	s, ok := cur.(string)
	return s, ok
}
