// Package deck defines the declarative input model: typed slide
// specifications and the inline accent markup they carry.
package deck

//go:generate go tool go-enum --marshal --nocomments

// Logical slide type of a single deck entry. Values match the "type" tags of
// the input JSON.
// ENUM(title, section, content, two-column, three-column, big-number, callout, quote, closing, agenda, timeline, icon-grid, stat-row, pros-cons, comparison, checklist, logos, two-column-icons, three-column-icons, cards, card-right, card-left, card-full, one-column, section-description)
type SlideType int

// SlideSpec is one declarative entry of the input deck: a slide type tag plus
// an open map of type-specific fields. Field presence is optional by design -
// assemblers skip what is absent.
type SlideSpec struct {
	Type   SlideType
	Fields map[string]any
}

// Notes returns speaker notes when present.
func (s *SlideSpec) Notes() string {
	return s.Str("notes")
}

// Str returns a string field or empty string when absent or not a string.
func (s *SlideSpec) Str(key string) string {
	if v, ok := s.Fields[key].(string); ok {
		return v
	}
	return ""
}

// StrOr returns a string field or the supplied default.
func (s *SlideSpec) StrOr(key, def string) string {
	if v := s.Str(key); v != "" {
		return v
	}
	return def
}

// Bool returns a boolean field, false when absent.
func (s *SlideSpec) Bool(key string) bool {
	v, _ := s.Fields[key].(bool)
	return v
}

// Strings returns a field holding a list of strings. Non-string members are
// skipped.
func (s *SlideSpec) Strings(key string) []string {
	raw, ok := s.Fields[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if str, ok := item.(string); ok {
			out = append(out, str)
		}
	}
	return out
}

// Maps returns a field holding a list of objects. Non-object members are
// skipped.
func (s *SlideSpec) Maps(key string) []map[string]any {
	raw, ok := s.Fields[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// Items returns a list field whose members may be either plain strings or
// objects carrying a text key. Used by checklist and logos where both forms
// are accepted.
func (s *SlideSpec) Items(key string) []map[string]any {
	raw, ok := s.Fields[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		switch v := item.(type) {
		case map[string]any:
			out = append(out, v)
		case string:
			out = append(out, map[string]any{"text": v})
		}
	}
	return out
}
