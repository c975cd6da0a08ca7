package generate

import (
	"strings"

	"go.uber.org/zap"

	"slidegen/config"
	"slidegen/deck"
	"slidegen/pptx"
)

// Column header rows sit above these offsets in every multi-column layout;
// per-column regions sit below them. See the layout family the patterns in
// pptx resolve to.
const (
	columnHeaderTop = 1.5
	columnBodyTop   = 2.5
)

// assembler maps declarative slide fields onto the regions of resolved
// layouts. One method per slide type, dispatched by build.
type assembler struct {
	prs   *pptx.Presentation
	theme *config.Theme
	log   *zap.Logger
}

func newAssembler(prs *pptx.Presentation, theme *config.Theme, log *zap.Logger) *assembler {
	return &assembler{prs: prs, theme: theme, log: log}
}

func (a *assembler) build(spec *deck.SlideSpec) {
	switch spec.Type {
	case deck.SlideTypeTitle:
		a.title(spec)
	case deck.SlideTypeSection:
		a.section(spec)
	case deck.SlideTypeTwoColumn:
		a.twoColumn(spec)
	case deck.SlideTypeThreeColumn:
		a.threeColumn(spec)
	case deck.SlideTypeBigNumber:
		a.bigNumber(spec)
	case deck.SlideTypeCallout:
		a.callout(spec)
	case deck.SlideTypeQuote:
		a.quote(spec)
	case deck.SlideTypeClosing:
		a.closing(spec)
	case deck.SlideTypeTwoColumnIcons:
		a.twoColumnIcons(spec)
	case deck.SlideTypeThreeColumnIcons:
		a.threeColumnIcons(spec)
	case deck.SlideTypeCards:
		a.cards(spec)
	case deck.SlideTypeCardRight:
		a.cardRight(spec)
	case deck.SlideTypeCardLeft:
		a.cardLeft(spec)
	case deck.SlideTypeCardFull:
		a.cardFull(spec)
	case deck.SlideTypeOneColumn:
		a.oneColumn(spec)
	case deck.SlideTypeSectionDescription:
		a.sectionDescription(spec)
	case deck.SlideTypeAgenda:
		a.agenda(spec)
	case deck.SlideTypeTimeline:
		a.timeline(spec)
	case deck.SlideTypeIconGrid:
		a.iconGrid(spec)
	case deck.SlideTypeStatRow:
		a.statRow(spec)
	case deck.SlideTypeProsCons:
		a.prosCons(spec)
	case deck.SlideTypeComparison:
		a.comparison(spec)
	case deck.SlideTypeChecklist:
		a.checklist(spec)
	case deck.SlideTypeLogos:
		a.logos(spec)
	default:
		a.content(spec)
	}
}

// newSlide resolves a layout for the slide type, instantiates a slide from it
// and attaches speaker notes when present.
func (a *assembler) newSlide(t deck.SlideType, spec *deck.SlideSpec, preferDark bool) *pptx.Slide {
	layout := a.prs.ResolveLayout(t, preferDark)
	slide := a.prs.AddSlide(layout)
	if notes := spec.Notes(); notes != "" {
		slide.SetNotes(notes)
	}
	a.log.Debug("Slide added",
		zap.Stringer("type", t), zap.String("layout", layout.Name), zap.Bool("dark", layout.Master.Dark))
	return slide
}

func (a *assembler) fill(s *pptx.Slide, idx int, text string) {
	a.prs.FillText(s.Placeholder(idx), text, pptx.TextOptions{})
}

func (a *assembler) title(spec *deck.SlideSpec) {
	slide := a.newSlide(deck.SlideTypeTitle, spec, true)

	a.fill(slide, 0, spec.StrOr("title", "Presentation Title"))
	a.fill(slide, 1, spec.Str("subtitle"))

	// author and date share the second subtitle row
	if ph := slide.Placeholder(2); ph != nil {
		var parts []string
		if v := spec.Str("author"); v != "" {
			parts = append(parts, v)
		}
		if v := spec.Str("date"); v != "" {
			parts = append(parts, v)
		}
		a.prs.FillText(ph, strings.Join(parts, " | "), pptx.TextOptions{})
	}
}

func (a *assembler) section(spec *deck.SlideSpec) {
	slide := a.newSlide(deck.SlideTypeSection, spec, true)
	a.fill(slide, 0, spec.StrOr("title", "Section Title"))
}

func (a *assembler) content(spec *deck.SlideSpec) {
	slide := a.newSlide(deck.SlideTypeContent, spec, false)

	a.fill(slide, 0, spec.StrOr("title", "Slide Title"))
	if v := spec.Str("subtitle"); v != "" {
		a.fill(slide, 2, v)
	}
	a.prs.FillBullets(slide.Placeholder(1), spec.Strings("bullets"), 0)
}

func (a *assembler) twoColumn(spec *deck.SlideSpec) {
	slide := a.newSlide(deck.SlideTypeTwoColumn, spec, false)

	a.prs.FillText(slide.PlaceholderByType(pptx.PhTitle), spec.StrOr("title", "Two Column"), pptx.TextOptions{})
	if v := spec.Str("subtitle"); v != "" {
		a.fill(slide, 5, v)
	}

	// the top subtitle row shares the role type with column headers, only
	// vertical position tells them apart
	headers := pptx.Below(slide.PlaceholdersByType(pptx.PhSubtitle), columnHeaderTop)
	bodies := pptx.Below(slide.PlaceholdersByType(pptx.PhBody), columnBodyTop)

	if v := spec.Str("left_header"); v != "" && len(headers) > 0 {
		a.prs.FillText(headers[0], v, pptx.TextOptions{})
	}
	if v := spec.Str("right_header"); v != "" && len(headers) > 1 {
		a.prs.FillText(headers[1], v, pptx.TextOptions{})
	}
	if len(bodies) > 0 {
		a.prs.FillBullets(bodies[0], spec.Strings("left"), 0)
	}
	if len(bodies) > 1 {
		a.prs.FillBullets(bodies[1], spec.Strings("right"), 0)
	}
}

func (a *assembler) threeColumn(spec *deck.SlideSpec) {
	slide := a.newSlide(deck.SlideTypeThreeColumn, spec, false)

	a.prs.FillText(slide.PlaceholderByType(pptx.PhTitle), spec.StrOr("title", "Three Column"), pptx.TextOptions{})
	if v := spec.Str("subtitle"); v != "" {
		a.fill(slide, 7, v)
	}

	columns := spec.Maps("columns")
	if len(columns) > 3 {
		columns = columns[:3]
	}

	headers := pptx.Below(slide.PlaceholdersByType(pptx.PhSubtitle), columnHeaderTop)
	bodies := pptx.Below(slide.PlaceholdersByType(pptx.PhBody), columnBodyTop)

	for i, col := range columns {
		if i < len(headers) {
			if v := mapStr(col, "header"); v != "" {
				a.prs.FillText(headers[i], v, pptx.TextOptions{})
			}
		}
		if i < len(bodies) {
			a.prs.FillBullets(bodies[i], mapStrings(col, "items"), 0)
		}
	}
}

func (a *assembler) bigNumber(spec *deck.SlideSpec) {
	slide := a.newSlide(deck.SlideTypeBigNumber, spec, false)

	a.prs.FillText(slide.Placeholder(0), spec.StrOr("number", "0"),
		pptx.TextOptions{Bold: true, Color: a.theme.Accent})

	description := spec.Str("text")
	if v := spec.Str("subtitle"); v != "" {
		description += "\n" + v
	}
	a.fill(slide, 1, description)
}

func (a *assembler) callout(spec *deck.SlideSpec) {
	slide := a.newSlide(deck.SlideTypeCallout, spec, true)

	a.fill(slide, 0, spec.StrOr("text", "Key message"))
	if v := spec.Str("source"); v != "" {
		a.fill(slide, 1, "— "+v)
	}
}

func (a *assembler) quote(spec *deck.SlideSpec) {
	slide := a.newSlide(deck.SlideTypeQuote, spec, true)

	a.fill(slide, 0, `"`+spec.StrOr("quote", "Quote goes here.")+`"`)
	if v := spec.Str("attribution"); v != "" {
		a.fill(slide, 1, "— "+v)
	}
}

// closing resolves the pre-designed closing layout and only overlays a title,
// the layout carries the rest of the artwork.
func (a *assembler) closing(spec *deck.SlideSpec) {
	slide := a.newSlide(deck.SlideTypeClosing, spec, true)

	a.textbox(slide, spec.StrOr("title", "Thank You"),
		0.75, 0.8, 11.5, 1.2, 48, true, a.textColor(true), "ctr")
}

func (a *assembler) twoColumnIcons(spec *deck.SlideSpec) {
	slide := a.newSlide(deck.SlideTypeTwoColumnIcons, spec, false)

	a.fill(slide, 0, spec.StrOr("title", "Two Column with Icons"))
	if v := spec.Str("subtitle"); v != "" {
		a.fill(slide, 5, v)
	}

	columns := spec.Maps("columns")
	if len(columns) > 2 {
		columns = columns[:2]
	}
	for i, col := range columns {
		if v := mapStr(col, "header"); v != "" {
			a.fill(slide, 3+i, v)
		}
		a.prs.FillBullets(slide.Placeholder(1+i), mapStrings(col, "items"), 0)
	}
}

func (a *assembler) threeColumnIcons(spec *deck.SlideSpec) {
	slide := a.newSlide(deck.SlideTypeThreeColumnIcons, spec, false)

	a.fill(slide, 0, spec.StrOr("title", "Three Column with Icons"))
	if v := spec.Str("subtitle"); v != "" {
		a.fill(slide, 7, v)
	}

	columns := spec.Maps("columns")
	if len(columns) > 3 {
		columns = columns[:3]
	}
	headerIdx := []int{3, 4, 6}
	bodyIdx := []int{1, 2, 5}
	for i, col := range columns {
		if v := mapStr(col, "header"); v != "" {
			a.fill(slide, headerIdx[i], v)
		}
		a.prs.FillBullets(slide.Placeholder(bodyIdx[i]), mapStrings(col, "items"), 0)
	}
}

func (a *assembler) cards(spec *deck.SlideSpec) {
	slide := a.newSlide(deck.SlideTypeCards, spec, false)

	a.fill(slide, 0, spec.StrOr("title", "Cards"))
	if v := spec.Str("subtitle"); v != "" {
		a.fill(slide, 7, v)
	}

	cards := spec.Maps("cards")
	if len(cards) > 3 {
		cards = cards[:3]
	}
	for i, card := range cards {
		if v := mapStr(card, "header"); v != "" {
			a.fill(slide, 4+i, v)
		}
		if v := mapStr(card, "content"); v != "" {
			a.fill(slide, 1+i, v)
		} else {
			a.prs.FillBullets(slide.Placeholder(1+i), mapStrings(card, "items"), 0)
		}
	}
}

func (a *assembler) cardRight(spec *deck.SlideSpec) {
	slide := a.newSlide(deck.SlideTypeCardRight, spec, false)

	a.fill(slide, 0, spec.StrOr("title", "Card Right"))
	if v := spec.Str("subtitle"); v != "" {
		a.fill(slide, 3, v)
	}

	if v := spec.Str("content"); v != "" {
		a.fill(slide, 1, v)
	} else {
		a.prs.FillBullets(slide.Placeholder(1), spec.Strings("bullets"), 0)
	}
	if v := spec.Str("card_content"); v != "" {
		a.fill(slide, 2, v)
	}
}

func (a *assembler) cardLeft(spec *deck.SlideSpec) {
	slide := a.newSlide(deck.SlideTypeCardLeft, spec, false)

	a.fill(slide, 0, spec.StrOr("title", "Card Left"))
	if v := spec.Str("subtitle"); v != "" {
		a.fill(slide, 3, v)
	}

	if v := spec.Str("card_content"); v != "" {
		a.fill(slide, 2, v)
	}
	if v := spec.Str("content"); v != "" {
		a.fill(slide, 1, v)
	} else {
		a.prs.FillBullets(slide.Placeholder(1), spec.Strings("bullets"), 0)
	}
}

func (a *assembler) cardFull(spec *deck.SlideSpec) {
	slide := a.newSlide(deck.SlideTypeCardFull, spec, false)

	a.fill(slide, 0, spec.StrOr("title", "Full Card"))
	if v := spec.Str("subtitle"); v != "" {
		a.fill(slide, 2, v)
	}
	if v := spec.Str("content"); v != "" {
		a.fill(slide, 1, v)
	}
}

func (a *assembler) oneColumn(spec *deck.SlideSpec) {
	slide := a.newSlide(deck.SlideTypeOneColumn, spec, false)

	a.fill(slide, 0, spec.Str("title"))
	if v := spec.Str("subtitle"); v != "" {
		a.fill(slide, 2, v)
	}
	if v := spec.Str("content"); v != "" {
		a.fill(slide, 1, v)
	} else {
		a.prs.FillBullets(slide.Placeholder(1), spec.Strings("bullets"), 0)
	}
}

func (a *assembler) sectionDescription(spec *deck.SlideSpec) {
	slide := a.newSlide(deck.SlideTypeSectionDescription, spec, false)

	a.fill(slide, 0, spec.StrOr("title", "Section Title"))
	a.fill(slide, 1, spec.Str("subtitle"))
	if v := spec.Str("description"); v != "" {
		a.fill(slide, 2, v)
	} else {
		a.prs.FillBullets(slide.Placeholder(2), spec.Strings("bullets"), 0)
	}
}

// field helpers for nested column/card/step objects

func mapStr(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}

func mapStrOr(m map[string]any, key, def string) string {
	if v := mapStr(m, key); v != "" {
		return v
	}
	return def
}

func mapBool(m map[string]any, key string) bool {
	v, _ := m[key].(bool)
	return v
}

func mapStrings(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
