package pptx

import (
	"strings"

	"slidegen/deck"
)

// Layout name patterns per slide type, most specific first, ending in a
// generic fallback token. Names track the corporate template and its
// versioned near-duplicates; the trailing tokens match the generic layouts
// Google Slides exports carry.
var layoutPatterns = map[deck.SlideType][]string{
	// structural slides, dark by default
	deck.SlideTypeTitle:   {"1_3 Title Slide B - Dark", "3 Title Slide B - Light", "TITLE"},
	deck.SlideTypeSection: {"Content E - Power Statement 3", "SECTION_HEADER"},
	deck.SlideTypeCallout: {"Content E - Power Statement 2_1", "MAIN_POINT"},
	deck.SlideTypeQuote:   {"Content E - Power Statement 2_1", "MAIN_POINT"},
	deck.SlideTypeClosing: {"Z - Closing Dark", "Z - Closing Light"},
	// content slides, light by default
	deck.SlideTypeContent:     {"7 Content A - Basic", "TITLE_AND_BODY"},
	deck.SlideTypeTwoColumn:   {"9 Content B - 2 Column", "TITLE_AND_TWO_COLUMNS"},
	deck.SlideTypeThreeColumn: {"11 Content C - 3 Column"},
	deck.SlideTypeBigNumber:   {"Content E - Power Statement 1", "BIG_NUMBER"},
	deck.SlideTypeTwoColumnIcons:   {"10 Content B - 2 Column w/ Icon Spot"},
	deck.SlideTypeThreeColumnIcons: {"12 Content C - 3 Column w/ Icon Spot"},
	deck.SlideTypeCards:            {"13 Content C - 3 Column Cards"},
	deck.SlideTypeCardRight:        {"14 Content D - Card Right"},
	deck.SlideTypeCardLeft:         {"15 Content D - Card Left"},
	deck.SlideTypeCardFull:         {"16 Content D - Card Large"},
	deck.SlideTypeOneColumn:          {"7 Content A - Basic", "ONE_COLUMN_TEXT"},
	deck.SlideTypeSectionDescription: {"Content E - Power Statement 2", "SECTION_TITLE_AND_DESCRIPTION"},
	// composed slides draw their own shapes on a clean branded background
	deck.SlideTypeAgenda:     {"CUSTOM"},
	deck.SlideTypeTimeline:   {"CUSTOM"},
	deck.SlideTypeIconGrid:   {"CUSTOM"},
	deck.SlideTypeStatRow:    {"CUSTOM"},
	deck.SlideTypeProsCons:   {"CUSTOM"},
	deck.SlideTypeComparison: {"CUSTOM"},
	deck.SlideTypeChecklist:  {"CUSTOM"},
	deck.SlideTypeLogos:      {"CUSTOM"},
}

// layoutTable is a name-indexed layout collection preserving insertion order,
// so substring scans are deterministic.
type layoutTable struct {
	byName  map[string]*Layout
	ordered []*Layout
}

func newLayoutTable() *layoutTable {
	return &layoutTable{byName: make(map[string]*Layout)}
}

func (t *layoutTable) add(l *Layout) {
	if _, exists := t.byName[l.Name]; exists {
		// first occurrence wins
		return
	}
	t.byName[l.Name] = l
	t.ordered = append(t.ordered, l)
}

func (t *layoutTable) exact(name string) *Layout {
	return t.byName[name]
}

func (t *layoutTable) substring(pattern string) *Layout {
	// NOTE: a short pattern can match an unrelated layout whose name merely
	// contains it. Known sharp edge, kept: renamed/versioned template layouts
	// must still resolve, and exact matches have already been tried.
	for _, l := range t.ordered {
		if strings.Contains(l.Name, pattern) {
			return l
		}
	}
	return nil
}

// buildLayoutTables indexes every layout by name into three tables: light
// masters only, dark masters only, and a combined table where light masters
// are iterated first so light layouts win name collisions.
func buildLayoutTables(masters []*Master) (all, light, dark *layoutTable) {
	all = newLayoutTable()
	light = newLayoutTable()
	dark = newLayoutTable()

	for _, pass := range []bool{false, true} { // light masters first
		for _, m := range masters {
			if m.Dark != pass {
				continue
			}
			for _, l := range m.Layouts {
				all.add(l)
				if m.Dark {
					dark.add(l)
				} else {
					light.add(l)
				}
			}
		}
	}
	return all, light, dark
}

// ResolveLayout picks the best matching layout for a slide type.
//
// With preferDark the dark-only table is consulted before the combined one.
// Exact name matches are strictly preferred to substring matches; within the
// same match kind pattern order decides. Resolution never fails: the BLANK
// layout, or failing that the first layout, is the catch-all.
func (p *Presentation) ResolveLayout(slideType deck.SlideType, preferDark bool) *Layout {
	patterns, ok := layoutPatterns[slideType]
	if !ok {
		patterns = []string{"BLANK"}
	}

	tables := []*layoutTable{p.allLayouts}
	if preferDark {
		tables = []*layoutTable{p.darkLayouts, p.allLayouts}
	}

	for _, pattern := range patterns {
		for _, table := range tables {
			if l := table.exact(pattern); l != nil {
				return l
			}
		}
	}
	for _, pattern := range patterns {
		for _, table := range tables {
			if l := table.substring(pattern); l != nil {
				return l
			}
		}
	}

	if l := p.allLayouts.exact("BLANK"); l != nil {
		return l
	}
	return p.allLayouts.ordered[0]
}
