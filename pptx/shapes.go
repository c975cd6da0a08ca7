package pptx

import (
	"strconv"

	"github.com/beevik/etree"
)

// Preset geometries used by composed slide types.
const (
	ShapeRect      = "rect"
	ShapeRoundRect = "roundRect"
	ShapeOval      = "ellipse"
	ShapeHexagon   = "hexagon"
	ShapeDiamond   = "diamond"
)

// ShapeOptions styles a free autoshape.
type ShapeOptions struct {
	Fill        string // solid fill color, hex
	Line        string // outline color, hex; empty means no outline
	LineWidthPt float64
	Text        string // optional centered text inside the shape
	TextOpts    TextOptions
}

// AddTextBox places a free word-wrapped text box on the slide. Coordinates
// and sizes are inches.
func (p *Presentation) AddTextBox(s *Slide, text string, left, top, width, height float64, o TextOptions) {
	sp := s.newShape("TextBox", left, top, width, height)

	cNvSpPr := sp.FindElement("p:nvSpPr/p:cNvSpPr")
	cNvSpPr.CreateAttr("txBox", "1")

	spPr := sp.FindElement("p:spPr")
	geom := spPr.CreateElement("a:prstGeom")
	geom.CreateAttr("prst", "rect")
	geom.CreateElement("a:avLst")
	spPr.CreateElement("a:noFill")

	txBody := sp.CreateElement("p:txBody")
	bodyPr := txBody.CreateElement("a:bodyPr")
	bodyPr.CreateAttr("wrap", "square")
	txBody.CreateElement("a:lstStyle")

	para := txBody.CreateElement("a:p")
	if o.Align != "" {
		para.CreateElement("a:pPr").CreateAttr("algn", o.Align)
	}
	p.addRun(para, text, o, false)
}

// AddShape places a preset-geometry autoshape on the slide. Coordinates and
// sizes are inches.
func (p *Presentation) AddShape(s *Slide, preset string, left, top, width, height float64, o ShapeOptions) {
	sp := s.newShape("Shape", left, top, width, height)

	spPr := sp.FindElement("p:spPr")
	geom := spPr.CreateElement("a:prstGeom")
	geom.CreateAttr("prst", preset)
	geom.CreateElement("a:avLst")

	if o.Fill != "" {
		fill := spPr.CreateElement("a:solidFill")
		fill.CreateElement("a:srgbClr").CreateAttr("val", p.colorVal(o.Fill))
	}

	ln := spPr.CreateElement("a:ln")
	if o.Line != "" {
		if o.LineWidthPt > 0 {
			ln.CreateAttr("w", strconv.FormatInt(int64(o.LineWidthPt*12700), 10))
		}
		lnFill := ln.CreateElement("a:solidFill")
		lnFill.CreateElement("a:srgbClr").CreateAttr("val", p.colorVal(o.Line))
	} else {
		ln.CreateElement("a:noFill")
	}

	txBody := sp.CreateElement("p:txBody")
	bodyPr := txBody.CreateElement("a:bodyPr")
	bodyPr.CreateAttr("wrap", "none")
	bodyPr.CreateAttr("anchor", "ctr")
	txBody.CreateElement("a:lstStyle")

	para := txBody.CreateElement("a:p")
	if o.Text != "" {
		align := o.TextOpts.Align
		if align == "" {
			align = "ctr"
		}
		para.CreateElement("a:pPr").CreateAttr("algn", align)
		p.addRun(para, o.Text, o.TextOpts, false)
	}
}

// newShape appends a bare p:sp with non-visual properties and position.
func (s *Slide) newShape(kind string, left, top, width, height float64) *etree.Element {
	id := s.nextShapeID
	s.nextShapeID++

	sp := s.spTree.CreateElement("p:sp")

	nvSpPr := sp.CreateElement("p:nvSpPr")
	cNvPr := nvSpPr.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", strconv.Itoa(id))
	cNvPr.CreateAttr("name", kind+" "+strconv.Itoa(id))
	nvSpPr.CreateElement("p:cNvSpPr")
	nvSpPr.CreateElement("p:nvPr")

	spPr := sp.CreateElement("p:spPr")
	xfrm := spPr.CreateElement("a:xfrm")
	off := xfrm.CreateElement("a:off")
	off.CreateAttr("x", strconv.FormatInt(inchesToEMU(left), 10))
	off.CreateAttr("y", strconv.FormatInt(inchesToEMU(top), 10))
	ext := xfrm.CreateElement("a:ext")
	ext.CreateAttr("cx", strconv.FormatInt(inchesToEMU(width), 10))
	ext.CreateAttr("cy", strconv.FormatInt(inchesToEMU(height), 10))

	return sp
}
