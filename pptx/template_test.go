package pptx

import "testing"

func TestIsDarkColor(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"1B3139", true},  // brand dark, special-cased
		{"000000", true},  // black
		{"7F7F7F", true},  // just under the midpoint
		{"808080", false}, // exactly at the midpoint
		{"FFFFFF", false}, // white
		{"F5F3F0", false}, // brand light
		{"FFF", false},    // too short
		{"GGGGGG", false}, // not hex
		{"", false},
	}
	for _, tt := range tests {
		if got := isDarkColor(tt.val); got != tt.want {
			t.Errorf("isDarkColor(%q) = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestRelsPartName(t *testing.T) {
	tests := []struct {
		part string
		want string
	}{
		{"ppt/presentation.xml", "ppt/_rels/presentation.xml.rels"},
		{"ppt/slides/slide1.xml", "ppt/slides/_rels/slide1.xml.rels"},
		{"[Content_Types].xml", "_rels/[Content_Types].xml.rels"},
	}
	for _, tt := range tests {
		if got := relsPartName(tt.part); got != tt.want {
			t.Errorf("relsPartName(%q) = %q, want %q", tt.part, got, tt.want)
		}
	}
}

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		owner  string
		target string
		want   string
	}{
		{"ppt/presentation.xml", "slideMasters/slideMaster1.xml", "ppt/slideMasters/slideMaster1.xml"},
		{"ppt/slideMasters/slideMaster1.xml", "../slideLayouts/slideLayout2.xml", "ppt/slideLayouts/slideLayout2.xml"},
		{"ppt/presentation.xml", "/ppt/slides/slide1.xml", "ppt/slides/slide1.xml"},
	}
	for _, tt := range tests {
		if got := resolveTarget(tt.owner, tt.target); got != tt.want {
			t.Errorf("resolveTarget(%q, %q) = %q, want %q", tt.owner, tt.target, got, tt.want)
		}
	}
}

func TestRelativeTarget(t *testing.T) {
	tests := []struct {
		owner  string
		target string
		want   string
	}{
		{"ppt/slides/slide1.xml", "ppt/slideLayouts/slideLayout3.xml", "../slideLayouts/slideLayout3.xml"},
		{"ppt/notesSlides/notesSlide1.xml", "ppt/slides/slide1.xml", "../slides/slide1.xml"},
		{"ppt/presentation.xml", "ppt/slides/slide1.xml", "slides/slide1.xml"},
	}
	for _, tt := range tests {
		if got := relativeTarget(tt.owner, tt.target); got != tt.want {
			t.Errorf("relativeTarget(%q, %q) = %q, want %q", tt.owner, tt.target, got, tt.want)
		}
	}
}

// The shared subtitle row sits above the threshold, column regions below it;
// the survivors come back ordered left to right.
func TestBelow(t *testing.T) {
	regions := []*Region{
		{Idx: 5, Top: 0.5, Left: 0.8},
		{Idx: 3, Top: 2.0, Left: 7.0},
		{Idx: 4, Top: 2.6, Left: 0.7},
	}
	got := Below(regions, 1.5)
	if len(got) != 2 {
		t.Fatalf("expected 2 regions below threshold, got %d", len(got))
	}
	if got[0].Idx != 4 || got[1].Idx != 3 {
		t.Errorf("regions not ordered left to right: %d, %d", got[0].Idx, got[1].Idx)
	}
}
