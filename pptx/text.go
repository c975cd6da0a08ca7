package pptx

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"slidegen/deck"
)

// TextOptions is styling applied to filled text. Zero values leave the
// template's own styling in effect.
type TextOptions struct {
	SizePt float64
	Bold   bool
	Color  string // hex, "#RRGGBB"
	Font   string // typeface name, only honored by free text boxes
	Align  string // paragraph alignment token ("ctr", "l", "r"), empty keeps template default
}

// colorVal normalizes a hex color to the OOXML attribute form, memoized since
// the same handful of brand colors is written thousands of times per deck.
func (p *Presentation) colorVal(hex string) string {
	if v, ok := p.colorCache[hex]; ok {
		return v
	}
	v := strings.ToUpper(strings.TrimPrefix(hex, "#"))
	p.colorCache[hex] = v
	return v
}

// FillText writes styled text into a placeholder region. Accent markers
// (*text*) switch the marked runs to the accent color; when the text carries
// no markers the whole field is styled in one run. A nil region is a no-op:
// the resolved layout simply does not support this field.
func (p *Presentation) FillText(r *Region, text string, o TextOptions) {
	if r == nil {
		return
	}
	txBody := textBody(r.sp)

	for _, line := range strings.Split(text, "\n") {
		para := txBody.CreateElement("a:p")
		if o.Align != "" {
			para.CreateElement("a:pPr").CreateAttr("algn", o.Align)
		}

		segments := deck.SegmentAccents(line)
		if !deck.HasAccent(segments) {
			p.addRun(para, line, o, false)
			continue
		}
		for _, seg := range segments {
			if seg.Text == "" && !seg.Accent {
				continue
			}
			p.addRun(para, seg.Text, o, seg.Accent)
		}
	}
}

// FillBullets writes one bullet paragraph per item into a placeholder region.
// Items carry the same accent markup as free text.
func (p *Presentation) FillBullets(r *Region, items []string, sizePt float64) {
	if r == nil || len(items) == 0 {
		return
	}
	o := TextOptions{SizePt: sizePt}
	txBody := textBody(r.sp)
	for _, item := range items {
		para := txBody.CreateElement("a:p")
		segments := deck.SegmentAccents(item)
		if !deck.HasAccent(segments) {
			p.addRun(para, item, o, false)
			continue
		}
		for _, seg := range segments {
			if seg.Text == "" && !seg.Accent {
				continue
			}
			p.addRun(para, seg.Text, o, seg.Accent)
		}
	}
}

// textBody returns the shape's text body with all paragraphs removed, ready
// for new content. Body properties and list styles are kept.
func textBody(sp *etree.Element) *etree.Element {
	txBody := sp.FindElement("p:txBody")
	if txBody == nil {
		txBody = sp.CreateElement("p:txBody")
		txBody.CreateElement("a:bodyPr")
		txBody.CreateElement("a:lstStyle")
	}
	for _, para := range txBody.SelectElements("a:p") {
		txBody.RemoveChild(para)
	}
	return txBody
}

func (p *Presentation) addRun(para *etree.Element, text string, o TextOptions, accent bool) {
	run := para.CreateElement("a:r")
	rPr := run.CreateElement("a:rPr")
	rPr.CreateAttr("lang", "en-US")
	if o.SizePt > 0 {
		rPr.CreateAttr("sz", strconv.Itoa(int(o.SizePt*100)))
	}
	if o.Bold {
		rPr.CreateAttr("b", "1")
	}
	color := o.Color
	if accent {
		color = p.accent
	}
	if color != "" {
		fill := rPr.CreateElement("a:solidFill")
		fill.CreateElement("a:srgbClr").CreateAttr("val", p.colorVal(color))
	}
	if o.Font != "" {
		rPr.CreateElement("a:latin").CreateAttr("typeface", o.Font)
	}
	t := run.CreateElement("a:t")
	t.SetText(text)
}
