package deck

import (
	"reflect"
	"strings"
	"testing"
)

func TestSegmentAccents(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []AccentSegment
	}{
		{
			name: "no markers",
			in:   "plain text",
			want: []AccentSegment{{Text: "plain text"}},
		},
		{
			name: "empty string",
			in:   "",
			want: []AccentSegment{{Text: ""}},
		},
		{
			name: "single accent in the middle",
			in:   "Hello *world* today",
			want: []AccentSegment{
				{Text: "Hello "},
				{Text: "world", Accent: true},
				{Text: " today"},
			},
		},
		{
			name: "accent at start",
			in:   "*Lakehouse* unifies everything",
			want: []AccentSegment{
				{Text: "Lakehouse", Accent: true},
				{Text: " unifies everything"},
			},
		},
		{
			name: "accent at end",
			in:   "powered by *AI*",
			want: []AccentSegment{
				{Text: "powered by "},
				{Text: "AI", Accent: true},
			},
		},
		{
			name: "multiple accents",
			in:   "*fast* and *simple*",
			want: []AccentSegment{
				{Text: "fast", Accent: true},
				{Text: " and "},
				{Text: "simple", Accent: true},
			},
		},
		{
			name: "whole string accented",
			in:   "*everything*",
			want: []AccentSegment{{Text: "everything", Accent: true}},
		},
		{
			name: "adjacent markers yield empty accent",
			in:   "**",
			want: []AccentSegment{{Text: "", Accent: true}},
		},
		{
			name: "unbalanced marker stays literal",
			in:   "a*b",
			want: []AccentSegment{{Text: "a*b"}},
		},
		{
			name: "trailing unbalanced marker after pair",
			in:   "*a* and b*",
			want: []AccentSegment{
				{Text: "a", Accent: true},
				{Text: " and b*"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentAccents(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SegmentAccents(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

// Concatenating segment texts of marker-free input must reproduce the input
// exactly, no characters lost or invented.
func TestSegmentAccentsLossless(t *testing.T) {
	inputs := []string{
		"plain",
		"with spaces and punctuation, even — dashes",
		"unicode: данные платформы",
		"a*b*c*d",
	}
	for _, in := range inputs {
		var b strings.Builder
		for _, seg := range SegmentAccents(in) {
			if seg.Accent {
				b.WriteString("*" + seg.Text + "*")
			} else {
				b.WriteString(seg.Text)
			}
		}
		if b.String() != in {
			t.Errorf("round trip of %q produced %q", in, b.String())
		}
	}
}

func TestHasAccent(t *testing.T) {
	if HasAccent(SegmentAccents("no markers here")) {
		t.Error("plain text reported as accented")
	}
	if !HasAccent(SegmentAccents("the *important* part")) {
		t.Error("accented text not detected")
	}
}
