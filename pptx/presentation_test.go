package pptx

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"go.uber.org/zap/zaptest"
)

// ---------------------------------------------------------------------------
// template fixture
// ---------------------------------------------------------------------------

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`

type phFixture struct {
	phType string // empty means no type attribute (body)
	idx    int
	left   float64 // inches
	top    float64
}

func shapeXML(id int, ph phFixture) string {
	attrs := ""
	if ph.phType != "" {
		attrs += fmt.Sprintf(` type="%s"`, ph.phType)
	}
	if ph.idx != 0 {
		attrs += fmt.Sprintf(` idx="%d"`, ph.idx)
	}
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Placeholder %d"/><p:cNvSpPr/><p:nvPr><p:ph%s/></p:nvPr></p:nvSpPr>`+
		`<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="914400" cy="914400"/></a:xfrm></p:spPr>`+
		`<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:t>prompt text</a:t></a:r></a:p></p:txBody></p:sp>`,
		id, id, attrs, inchesToEMU(ph.left), inchesToEMU(ph.top))
}

func layoutXML(name string, phs ...phFixture) string {
	var shapes strings.Builder
	for i, ph := range phs {
		shapes.WriteString(shapeXML(i+2, ph))
	}
	return fmt.Sprintf(xmlHeader+
		`<p:sldLayout xmlns:a="%s" xmlns:r="%s" xmlns:p="%s"><p:cSld name="%s"><p:spTree>%s</p:spTree></p:cSld></p:sldLayout>`,
		nsDrawing, nsRelation, nsPresent, name, shapes.String())
}

func masterXML(bg string) string {
	bgXML := ""
	if bg != "" {
		bgXML = fmt.Sprintf(`<p:bg><p:bgPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill></p:bgPr></p:bg>`, bg)
	}
	return fmt.Sprintf(xmlHeader+
		`<p:sldMaster xmlns:a="%s" xmlns:r="%s" xmlns:p="%s"><p:cSld>%s<p:spTree/></p:cSld></p:sldMaster>`,
		nsDrawing, nsRelation, nsPresent, bgXML)
}

func relsXML(rels ...[2]string) string { // pairs of (type, target)
	var b strings.Builder
	b.WriteString(xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	for i, rel := range rels {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="%s" Target="%s"/>`, i+1, rel[0], rel[1])
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

// writeTestTemplate builds a two-master template on disk: a light master with
// the content layout family and a dark master with title/closing/custom
// layouts. It carries one pre-existing slide that generation must drop.
func writeTestTemplate(t *testing.T) string {
	t.Helper()

	lightLayouts := map[string]string{
		"slideLayout1.xml": layoutXML("BLANK"),
		"slideLayout2.xml": layoutXML("7 Content A - Basic",
			phFixture{phType: "title", left: 0.8, top: 0.6},
			phFixture{idx: 1, left: 0.8, top: 2.6},
			phFixture{idx: 2, left: 0.8, top: 1.6}),
		"slideLayout3.xml": layoutXML("9 Content B - 2 Column",
			phFixture{phType: "title", left: 0.8, top: 0.6},
			phFixture{phType: "subTitle", idx: 5, left: 0.8, top: 1.2},
			phFixture{phType: "subTitle", idx: 3, left: 7.0, top: 2.0},
			phFixture{phType: "subTitle", idx: 4, left: 0.7, top: 2.0},
			phFixture{idx: 1, left: 0.7, top: 2.8},
			phFixture{idx: 2, left: 7.0, top: 2.8}),
	}
	darkLayouts := map[string]string{
		"slideLayout4.xml": layoutXML("1_3 Title Slide B - Dark",
			phFixture{phType: "ctrTitle", left: 0.8, top: 2.0},
			phFixture{phType: "subTitle", idx: 1, left: 0.8, top: 4.0},
			phFixture{idx: 2, left: 0.8, top: 5.0}),
		"slideLayout5.xml": layoutXML("Z - Closing Dark"),
		"slideLayout6.xml": layoutXML("CUSTOM"),
	}

	parts := map[string]string{
		"[Content_Types].xml": xmlHeader + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
			`<Default Extension="xml" ContentType="application/xml"/>` +
			`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
			`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>` +
			`<Override PartName="/ppt/slides/slide7.xml" ContentType="` + contentTypeSlide + `"/>` +
			`</Types>`,
		"ppt/presentation.xml": xmlHeader +
			fmt.Sprintf(`<p:presentation xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">`, nsDrawing, nsRelation, nsPresent) +
			`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/><p:sldMasterId id="2147483649" r:id="rId2"/></p:sldMasterIdLst>` +
			`<p:sldIdLst><p:sldId id="256" r:id="rId3"/></p:sldIdLst>` +
			`<p:sldSz cx="12192000" cy="6858000"/></p:presentation>`,
		"ppt/_rels/presentation.xml.rels": relsXML(
			[2]string{relTypeSlideMaster, "slideMasters/slideMaster1.xml"},
			[2]string{relTypeSlideMaster, "slideMasters/slideMaster2.xml"},
			[2]string{relTypeSlide, "slides/slide7.xml"}),
		"ppt/slideMasters/slideMaster1.xml": masterXML("FFFFFF"),
		"ppt/slideMasters/slideMaster2.xml": masterXML("1B3139"),
		"ppt/slideMasters/_rels/slideMaster1.xml.rels": relsXML(
			[2]string{relTypeSlideLayout, "../slideLayouts/slideLayout1.xml"},
			[2]string{relTypeSlideLayout, "../slideLayouts/slideLayout2.xml"},
			[2]string{relTypeSlideLayout, "../slideLayouts/slideLayout3.xml"}),
		"ppt/slideMasters/_rels/slideMaster2.xml.rels": relsXML(
			[2]string{relTypeSlideLayout, "../slideLayouts/slideLayout4.xml"},
			[2]string{relTypeSlideLayout, "../slideLayouts/slideLayout5.xml"},
			[2]string{relTypeSlideLayout, "../slideLayouts/slideLayout6.xml"}),
		"ppt/slides/slide7.xml": xmlHeader +
			fmt.Sprintf(`<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s"><p:cSld><p:spTree/></p:cSld></p:sld>`, nsDrawing, nsRelation, nsPresent),
		"ppt/slides/_rels/slide7.xml.rels": relsXML(
			[2]string{relTypeSlideLayout, "../slideLayouts/slideLayout1.xml"}),
	}
	for name, content := range lightLayouts {
		parts["ppt/slideLayouts/"+name] = content
	}
	for name, content := range darkLayouts {
		parts["ppt/slideLayouts/"+name] = content
	}

	path := filepath.Join(t.TempDir(), "template.pptx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func readOutputParts(t *testing.T, path string) map[string]string {
	t.Helper()
	parts, _, err := readZipParts(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	out := make(map[string]string, len(parts))
	for name, data := range parts {
		out[name] = string(data)
	}
	return out
}

// ---------------------------------------------------------------------------
// tests
// ---------------------------------------------------------------------------

func TestOpen(t *testing.T) {
	prs, err := Open(writeTestTemplate(t), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	masters := prs.Masters()
	if len(masters) != 2 {
		t.Fatalf("expected 2 masters, got %d", len(masters))
	}
	if masters[0].Dark || !masters[1].Dark {
		t.Errorf("master classification wrong: %v, %v", masters[0].Dark, masters[1].Dark)
	}
	if len(prs.allLayouts.ordered) != 6 {
		t.Errorf("expected 6 layouts, got %d", len(prs.allLayouts.ordered))
	}
}

func TestOpenNotAPresentation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.pptx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, _ := zw.Create("readme.txt")
	w.Write([]byte("not a presentation"))
	zw.Close()
	f.Close()

	if _, err := Open(path, zaptest.NewLogger(t)); err == nil {
		t.Error("archive without presentation part did not fail")
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "absent.pptx"), zaptest.NewLogger(t)); err == nil {
		t.Error("missing template did not fail")
	}
}

func TestAddSlideClonesPlaceholders(t *testing.T) {
	prs, err := Open(writeTestTemplate(t), zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}

	layout := prs.allLayouts.exact("9 Content B - 2 Column")
	if layout == nil {
		t.Fatal("fixture layout missing")
	}
	slide := prs.AddSlide(layout)

	if len(slide.regions) != 6 {
		t.Fatalf("expected 6 regions, got %d", len(slide.regions))
	}
	if slide.Placeholder(5) == nil {
		t.Error("idx 5 region not cloned")
	}
	if slide.PlaceholderByType(PhTitle) == nil {
		t.Error("title region not cloned")
	}

	// prompt text from the layout must not leak into the slide
	if txt := slide.doc.FindElement("//a:t"); txt != nil {
		t.Errorf("layout prompt text leaked into slide: %q", txt.Text())
	}

	// the layout itself is untouched
	if layout.doc.FindElement("//a:t") == nil {
		t.Error("layout lost its own text")
	}
}

func TestFillTextAccentRuns(t *testing.T) {
	prs, err := Open(writeTestTemplate(t), zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	prs.SetAccent("#FF3621")

	slide := prs.AddSlide(prs.allLayouts.exact("7 Content A - Basic"))
	region := slide.PlaceholderByType(PhTitle)

	prs.FillText(region, "go *fast* now", TextOptions{})

	runs := region.sp.FindElements("p:txBody/a:p/a:r")
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	accentFill := runs[1].FindElement("a:rPr/a:solidFill/a:srgbClr")
	if accentFill == nil || accentFill.SelectAttrValue("val", "") != "FF3621" {
		t.Error("accent run not colored with the accent")
	}
	if runs[0].FindElement("a:rPr/a:solidFill") != nil {
		t.Error("plain run should keep template coloring")
	}
}

func TestFillTextNilRegion(t *testing.T) {
	prs, err := Open(writeTestTemplate(t), zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	// resolved layout has no such region: silently skipped
	prs.FillText(nil, "whatever", TextOptions{})
	prs.FillBullets(nil, []string{"a"}, 0)
}

func TestFillBullets(t *testing.T) {
	prs, err := Open(writeTestTemplate(t), zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}

	slide := prs.AddSlide(prs.allLayouts.exact("7 Content A - Basic"))
	region := slide.Placeholder(1)

	prs.FillBullets(region, []string{"alpha", "beta *gamma*"}, 0)

	paras := region.sp.FindElements("p:txBody/a:p")
	if len(paras) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(paras))
	}
	if runs := paras[1].SelectElements("a:r"); len(runs) != 2 {
		t.Errorf("accented bullet should split into runs, got %d", len(runs))
	}
}

func TestSave(t *testing.T) {
	prs, err := Open(writeTestTemplate(t), zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}

	s1 := prs.AddSlide(prs.allLayouts.exact("7 Content A - Basic"))
	prs.FillText(s1.PlaceholderByType(PhTitle), "First", TextOptions{})
	s1.SetNotes("talk slowly")
	prs.AddSlide(prs.allLayouts.exact("Z - Closing Dark"))

	out := filepath.Join(t.TempDir(), "deck.pptx")
	if err := prs.Save(t.Context(), out, false, true); err != nil {
		t.Fatalf("save: %v", err)
	}

	parts := readOutputParts(t, out)

	for _, want := range []string{
		"ppt/slides/slide1.xml",
		"ppt/slides/_rels/slide1.xml.rels",
		"ppt/slides/slide2.xml",
		"ppt/notesSlides/notesSlide1.xml",
		"ppt/slideMasters/slideMaster2.xml",
	} {
		if _, ok := parts[want]; !ok {
			t.Errorf("output missing part %s", want)
		}
	}
	if _, ok := parts["ppt/slides/slide7.xml"]; ok {
		t.Error("template slide survived generation")
	}
	if _, ok := parts["ppt/notesSlides/notesSlide2.xml"]; ok {
		t.Error("notes part emitted for a slide without notes")
	}

	ct := parts["[Content_Types].xml"]
	if !strings.Contains(ct, "/ppt/slides/slide2.xml") {
		t.Error("content types missing generated slide override")
	}
	if strings.Contains(ct, "/ppt/slides/slide7.xml") {
		t.Error("content types kept the template slide override")
	}

	pres := etree.NewDocument()
	if err := pres.ReadFromString(parts["ppt/presentation.xml"]); err != nil {
		t.Fatalf("parse output presentation: %v", err)
	}
	sldIDs := pres.FindElements("//p:sldIdLst/p:sldId")
	if len(sldIDs) != 2 {
		t.Fatalf("expected 2 slide ids, got %d", len(sldIDs))
	}

	rels := etree.NewDocument()
	if err := rels.ReadFromString(parts["ppt/_rels/presentation.xml.rels"]); err != nil {
		t.Fatal(err)
	}
	slideRels := 0
	for _, rel := range rels.Root().ChildElements() {
		if rel.SelectAttrValue("Type", "") == relTypeSlide {
			slideRels++
		}
	}
	if slideRels != 2 {
		t.Errorf("expected 2 slide relationships, got %d", slideRels)
	}

	// slide rels point at the layout family
	if !strings.Contains(parts["ppt/slides/_rels/slide1.xml.rels"], "../slideLayouts/") {
		t.Error("slide layout relationship malformed")
	}
	if !strings.Contains(parts["ppt/notesSlides/notesSlide1.xml"], "talk slowly") {
		t.Error("speaker notes lost")
	}
}

func TestSaveOverwriteGuard(t *testing.T) {
	prs, err := Open(writeTestTemplate(t), zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	prs.AddSlide(prs.allLayouts.exact("BLANK"))

	out := filepath.Join(t.TempDir(), "deck.pptx")
	if err := os.WriteFile(out, []byte("occupied"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := prs.Save(t.Context(), out, false, false); err == nil {
		t.Error("existing output without overwrite did not fail")
	}
	if err := prs.Save(t.Context(), out, true, false); err != nil {
		t.Errorf("overwrite save failed: %v", err)
	}
}
