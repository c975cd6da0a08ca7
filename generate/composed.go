package generate

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"slidegen/deck"
	"slidegen/pptx"
)

// Composed slide types resolve a branded background layout and draw their own
// shapes on it. Coordinates are inches on a 13.33x7.5 slide.

func (a *assembler) textColor(dark bool) string {
	if dark {
		return a.theme.TextLight
	}
	return a.theme.TextDark
}

func (a *assembler) secondaryColor(dark bool) string {
	if dark {
		return a.theme.TextLight
	}
	return a.theme.TextSecondary
}

// panelFill is the fill of light panels drawn on the background: white on a
// dark slide, the brand light background otherwise.
func (a *assembler) panelFill(dark bool) string {
	if dark {
		return a.theme.TextLight
	}
	return a.theme.LightBG
}

func (a *assembler) textbox(s *pptx.Slide, text string, left, top, width, height, sizePt float64, bold bool, color, align string) {
	a.prs.AddTextBox(s, text, left, top, width, height, pptx.TextOptions{
		SizePt: sizePt,
		Bold:   bold,
		Color:  color,
		Font:   a.theme.FontFamily,
		Align:  align,
	})
}

// slideTitle draws the standard composed-slide heading.
func (a *assembler) slideTitle(s *pptx.Slide, title string, dark bool) {
	a.textbox(s, title, 0.83, 0.59, 10.0, 0.8, 36, true, a.textColor(dark), "")
}

// badgeText styles numbers drawn inside accent-filled badges.
func (a *assembler) badgeText() pptx.TextOptions {
	return pptx.TextOptions{SizePt: 18, Bold: true, Color: a.theme.TextLight, Font: a.theme.FontFamily}
}

func (a *assembler) agenda(spec *deck.SlideSpec) {
	const dark = false
	slide := a.newSlide(deck.SlideTypeAgenda, spec, dark)

	a.slideTitle(slide, spec.StrOr("title", "Agenda"), dark)

	const startY = 2.0
	for i, item := range spec.Strings("items") {
		y := startY + float64(i)*0.9

		a.prs.AddShape(slide, pptx.ShapeHexagon, 0.75, y, 0.6, 0.6, pptx.ShapeOptions{
			Fill:     a.theme.Accent,
			Text:     strconv.Itoa(i + 1),
			TextOpts: a.badgeText(),
		})

		// background bar behind the item text
		a.prs.AddShape(slide, pptx.ShapeRect, 1.5, y, 8, 0.6, pptx.ShapeOptions{
			Fill: a.panelFill(dark),
		})
		a.textbox(slide, item, 1.7, y+0.1, 7.5, 0.5, 20, false, a.theme.TextDark, "")
	}
}

func (a *assembler) timeline(spec *deck.SlideSpec) {
	const dark = false
	slide := a.newSlide(deck.SlideTypeTimeline, spec, dark)

	a.slideTitle(slide, spec.StrOr("title", "Timeline"), dark)

	steps := spec.Maps("steps")
	if len(steps) == 0 {
		return
	}

	stepWidth := 10.5 / float64(len(steps))
	const startX = 1.4

	// connecting line behind the step circles
	a.prs.AddShape(slide, pptx.ShapeRect,
		startX+0.3, 3.1, stepWidth*float64(len(steps))-0.6, 0.05,
		pptx.ShapeOptions{Fill: a.theme.Accent})

	for i, step := range steps {
		x := startX + float64(i)*stepWidth

		a.prs.AddShape(slide, pptx.ShapeOval,
			x+stepWidth/2-0.35, 2.75, 0.7, 0.7,
			pptx.ShapeOptions{
				Fill:     a.theme.Accent,
				Text:     strconv.Itoa(i + 1),
				TextOpts: a.badgeText(),
			})

		a.textbox(slide, mapStrOr(step, "title", fmt.Sprintf("Step %d", i+1)),
			x, 3.7, stepWidth, 0.6, 16, true, a.textColor(dark), "ctr")
		if desc := mapStr(step, "description"); desc != "" {
			a.textbox(slide, desc, x, 4.4, stepWidth, 1.5, 12, false, a.secondaryColor(dark), "ctr")
		}
	}
}

func (a *assembler) iconGrid(spec *deck.SlideSpec) {
	const dark = false
	slide := a.newSlide(deck.SlideTypeIconGrid, spec, dark)

	a.slideTitle(slide, spec.StrOr("title", "Features"), dark)

	items := spec.Maps("items")
	if _, ok := spec.Fields["items"]; !ok {
		items = spec.Maps("features")
	}
	if len(items) == 0 {
		return
	}
	if len(items) > 8 {
		items = items[:8]
	}

	cols := len(items)
	switch {
	case len(items) > 6:
		cols = 4
	case len(items) > 3:
		cols = 3
	}

	cellWidth := 11.0 / float64(cols)
	const (
		cellHeight = 2.2
		startX     = 1.2
		startY     = 1.8
	)

	for i, item := range items {
		x := startX + float64(i%cols)*cellWidth
		y := startY + float64(i/cols)*(cellHeight+0.5)

		a.prs.AddShape(slide, pptx.ShapeOval,
			x+cellWidth/2-0.5, y, 1, 1,
			pptx.ShapeOptions{
				Fill:        a.panelFill(dark),
				Line:        a.theme.Accent,
				LineWidthPt: 3,
				Text:        iconText(item),
				TextOpts: pptx.TextOptions{
					SizePt: 24, Bold: true, Color: a.theme.Accent, Font: a.theme.FontFamily,
				},
			})

		a.textbox(slide, mapStr(item, "title"),
			x, y+1.1, cellWidth, 0.5, 14, true, a.textColor(dark), "ctr")
		if desc := mapStr(item, "description"); desc != "" {
			a.textbox(slide, desc, x, y+1.55, cellWidth, 0.8, 11, false, a.secondaryColor(dark), "ctr")
		}
	}
}

// iconText picks the glyph shown in an icon circle: a short icon string (an
// emoji) verbatim, a longer one cut to its first rune, otherwise the
// capitalized first letter of the item title.
func iconText(item map[string]any) string {
	if icon := mapStr(item, "icon"); icon != "" {
		if utf8.RuneCountInString(icon) <= 2 {
			return icon
		}
		r, _ := utf8.DecodeRuneInString(icon)
		return string(r)
	}
	title := mapStr(item, "title")
	if title == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(title)
	return string(unicode.ToUpper(r))
}

func (a *assembler) statRow(spec *deck.SlideSpec) {
	const dark = false
	slide := a.newSlide(deck.SlideTypeStatRow, spec, dark)

	a.slideTitle(slide, spec.StrOr("title", "Key Metrics"), dark)

	stats := spec.Maps("stats")
	if len(stats) == 0 {
		return
	}

	statWidth := 11.5 / float64(len(stats))
	const startX = 0.9

	for i, stat := range stats {
		x := startX + float64(i)*statWidth

		a.textbox(slide, mapStrOr(stat, "value", "0"),
			x, 2.5, statWidth-0.3, 1.5, 56, true, a.theme.Accent, "ctr")
		a.textbox(slide, mapStr(stat, "label"),
			x, 4.2, statWidth-0.3, 1.0, 16, true, a.textColor(dark), "ctr")

		if i < len(stats)-1 {
			a.prs.AddShape(slide, pptx.ShapeRect,
				x+statWidth-0.15, 2.7, 0.02, 2.5,
				pptx.ShapeOptions{Fill: a.theme.Divider})
		}
	}
}

func (a *assembler) prosCons(spec *deck.SlideSpec) {
	const dark = false
	slide := a.newSlide(deck.SlideTypeProsCons, spec, dark)

	a.slideTitle(slide, spec.StrOr("title", "Pros & Cons"), dark)

	a.textbox(slide, spec.StrOr("pros_header", "Pros"), 0.75, 1.6, 5.5, 0.5, 20, true, a.theme.Green, "")
	for i, pro := range spec.Strings("pros") {
		a.textbox(slide, "✓  "+pro, 0.75, 2.2+float64(i)*0.6, 5.5, 0.5, 16, false, a.textColor(dark), "")
	}

	a.textbox(slide, spec.StrOr("cons_header", "Cons"), 7.0, 1.6, 5.5, 0.5, 20, true, a.theme.Red, "")
	for i, con := range spec.Strings("cons") {
		a.textbox(slide, "✗  "+con, 7.0, 2.2+float64(i)*0.6, 5.5, 0.5, 16, false, a.textColor(dark), "")
	}
}

func (a *assembler) comparison(spec *deck.SlideSpec) {
	const dark = false
	slide := a.newSlide(deck.SlideTypeComparison, spec, dark)

	a.slideTitle(slide, spec.StrOr("title", "Comparison"), dark)

	diamondFill := a.theme.Accent
	if dark {
		diamondFill = a.theme.DarkBG
	}
	a.prs.AddShape(slide, pptx.ShapeDiamond, 6.166, 3.25, 1, 1, pptx.ShapeOptions{
		Fill: diamondFill,
		Text: "vs.",
		TextOpts: pptx.TextOptions{
			SizePt: 14, Bold: true, Color: a.theme.TextLight, Font: a.theme.FontFamily,
		},
	})

	a.textbox(slide, spec.StrOr("left_label", "Option A"),
		1.5, 5.0, 4.0, 0.6, 20, true, a.textColor(dark), "ctr")
	a.textbox(slide, spec.StrOr("right_label", "Option B"),
		7.833, 5.0, 4.0, 0.6, 20, true, a.textColor(dark), "ctr")
}

func (a *assembler) checklist(spec *deck.SlideSpec) {
	const dark = false
	slide := a.newSlide(deck.SlideTypeChecklist, spec, dark)

	a.slideTitle(slide, spec.StrOr("title", "Checklist"), dark)

	const startY = 1.8
	for i, item := range spec.Items("items") {
		y := startY + float64(i)*0.7

		box := pptx.ShapeOptions{
			Fill:        a.panelFill(dark),
			Line:        a.theme.Accent,
			LineWidthPt: 2,
		}
		if mapBool(item, "checked") {
			box.Fill = a.theme.Accent
			box.Text = "✓"
			box.TextOpts = pptx.TextOptions{
				SizePt: 14, Bold: true, Color: a.theme.TextLight, Font: a.theme.FontFamily,
			}
		}
		a.prs.AddShape(slide, pptx.ShapeRoundRect, 0.9, y, 0.35, 0.35, box)

		a.textbox(slide, mapStr(item, "text"), 1.5, y, 10.0, 0.4, 16, false, a.textColor(dark), "")
	}
}

func (a *assembler) logos(spec *deck.SlideSpec) {
	const dark = false
	slide := a.newSlide(deck.SlideTypeLogos, spec, dark)

	a.slideTitle(slide, spec.StrOr("title", "Our Partners"), dark)
	if v := spec.Str("subtitle"); v != "" {
		a.textbox(slide, v, 0.75, 1.3, 11.0, 0.5, 16, false, a.secondaryColor(dark), "ctr")
	}

	logos := spec.Items("logos")
	if len(logos) > 10 {
		logos = logos[:10]
	}

	cols := len(logos)
	switch {
	case len(logos) > 8:
		cols = 5
	case len(logos) > 4:
		cols = 4
	}
	if cols == 0 {
		return
	}

	cellWidth := 10.0 / float64(cols)
	const (
		cellHeight = 1.6
		startX     = 1.7
		startY     = 2.5
	)

	for i, logo := range logos {
		x := startX + float64(i%cols)*cellWidth
		y := startY + float64(i/cols)*(cellHeight+0.3)

		name := mapStr(logo, "text")
		if name == "" {
			name = mapStrOr(logo, "name", "Company")
		}

		a.prs.AddShape(slide, pptx.ShapeRoundRect,
			x, y, cellWidth-0.4, cellHeight-0.3,
			pptx.ShapeOptions{
				Fill:        a.panelFill(dark),
				Line:        a.theme.Divider,
				LineWidthPt: 1,
				Text:        name,
				TextOpts: pptx.TextOptions{
					SizePt: 12, Bold: true, Color: a.theme.TextSecondary, Font: a.theme.FontFamily,
				},
			})
	}
}
