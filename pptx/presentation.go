package pptx

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

const presentationPart = "ppt/presentation.xml"

// Presentation is the open document: template parts plus slides added on top.
// Template slides are dropped, the rest of the template (masters, layouts,
// themes, media) is carried into the output verbatim.
type Presentation struct {
	parts     map[string][]byte
	partNames []string

	masters     []*Master
	allLayouts  *layoutTable
	lightLayouts *layoutTable
	darkLayouts *layoutTable

	slides []*Slide

	accent     string
	colorCache map[string]string

	log *zap.Logger
}

// Slide is one instantiated slide: a fresh part built from a layout's
// placeholder shapes.
type Slide struct {
	Layout *Layout

	doc     *etree.Document
	spTree  *etree.Element
	regions []*Region
	notes   string

	nextShapeID int
}

// Open loads a .pptx template and prepares layout lookup tables.
func Open(templatePath string, log *zap.Logger) (*Presentation, error) {
	parts, names, err := readZipParts(templatePath)
	if err != nil {
		return nil, err
	}
	if _, err := parsePart(parts, presentationPart); err != nil {
		return nil, fmt.Errorf("not a presentation: %w", err)
	}

	masters, err := loadMasters(parts)
	if err != nil {
		return nil, err
	}
	all, light, dark := buildLayoutTables(masters)

	log.Debug("Template loaded",
		zap.String("file", templatePath),
		zap.Int("masters", len(masters)),
		zap.Int("layouts", len(all.ordered)),
		zap.Int("light", len(light.ordered)),
		zap.Int("dark", len(dark.ordered)))

	return &Presentation{
		parts:        parts,
		partNames:    names,
		masters:      masters,
		allLayouts:   all,
		lightLayouts: light,
		darkLayouts:  dark,
		accent:       "#FF3621",
		colorCache:   make(map[string]string),
		log:          log,
	}, nil
}

// SetAccent sets the highlight color used for accented text runs.
func (p *Presentation) SetAccent(hex string) {
	if hex != "" {
		p.accent = hex
	}
}

// SlideCount returns the number of slides added so far.
func (p *Presentation) SlideCount() int {
	return len(p.slides)
}

// Masters exposes the template's masters (read-only).
func (p *Presentation) Masters() []*Master {
	return p.masters
}

// AddSlide instantiates a new slide from a layout: the layout's placeholder
// shapes are cloned into the slide with their text cleared, so the slide
// inherits exactly the layout's region set.
func (p *Presentation) AddSlide(layout *Layout) *Slide {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	sld := doc.CreateElement("p:sld")
	sld.CreateAttr("xmlns:a", nsDrawing)
	sld.CreateAttr("xmlns:r", nsRelation)
	sld.CreateAttr("xmlns:p", nsPresent)

	cSld := sld.CreateElement("p:cSld")
	spTree := cSld.CreateElement("p:spTree")

	nvGrp := spTree.CreateElement("p:nvGrpSpPr")
	cNvPr := nvGrp.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", "1")
	cNvPr.CreateAttr("name", "")
	nvGrp.CreateElement("p:cNvGrpSpPr")
	nvGrp.CreateElement("p:nvPr")

	grpSpPr := spTree.CreateElement("p:grpSpPr")
	xfrm := grpSpPr.CreateElement("a:xfrm")
	for _, tag := range []string{"a:off", "a:chOff"} {
		off := xfrm.CreateElement(tag)
		off.CreateAttr("x", "0")
		off.CreateAttr("y", "0")
	}
	for _, tag := range []string{"a:ext", "a:chExt"} {
		ext := xfrm.CreateElement(tag)
		ext.CreateAttr("cx", "0")
		ext.CreateAttr("cy", "0")
	}

	slide := &Slide{
		Layout:      layout,
		doc:         doc,
		spTree:      spTree,
		nextShapeID: 2,
	}

	for _, src := range layout.placeholderShapes() {
		sp := src.Copy()
		slide.renumberShape(sp)
		clearShapeText(sp)
		spTree.AddChild(sp)
		slide.regions = append(slide.regions, regionFromShape(sp))
	}

	clrMapOvr := sld.CreateElement("p:clrMapOvr")
	clrMapOvr.CreateElement("a:masterClrMapping")

	p.slides = append(p.slides, slide)
	return slide
}

// SetNotes attaches speaker notes to the slide.
func (s *Slide) SetNotes(text string) {
	s.notes = text
}

func (s *Slide) renumberShape(sp *etree.Element) {
	if cNvPr := sp.FindElement("p:nvSpPr/p:cNvPr"); cNvPr != nil {
		cNvPr.RemoveAttr("id")
		cNvPr.CreateAttr("id", strconv.Itoa(s.nextShapeID))
	}
	s.nextShapeID++
}

// clearShapeText replaces the placeholder's prompt text with a single empty
// paragraph, keeping body properties and list styles from the layout.
func clearShapeText(sp *etree.Element) {
	txBody := sp.FindElement("p:txBody")
	if txBody == nil {
		return
	}
	for _, para := range txBody.SelectElements("a:p") {
		txBody.RemoveChild(para)
	}
	txBody.CreateElement("a:p")
}
