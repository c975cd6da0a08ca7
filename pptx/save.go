package pptx

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	fixzip "github.com/hidez8891/zip"
	"go.uber.org/zap"
)

const contentTypesPart = "[Content_Types].xml"

// Save writes the finished deck. Template parts are carried over verbatim
// except for the template's own slides, which are replaced by the slides
// added through AddSlide. The archive is assembled in a temporary file next
// to the output and moved into place only when complete.
func (p *Presentation) Save(ctx context.Context, outputPath string, overwrite, fixZip bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := os.Stat(outputPath); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", outputPath)
		}
		p.log.Warn("Overwriting existing file", zap.String("file", outputPath))
		if err = os.Remove(outputPath); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	p.log.Info("Generating presentation", zap.String("output", outputPath), zap.Int("slides", len(p.slides)))

	tmpName := outputPath + ".tmp"

	f, err := os.Create(tmpName)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	defer zw.Close()

	if err := p.writeContentTypes(zw); err != nil {
		return fmt.Errorf("unable to write content types: %w", err)
	}
	if err := p.writePresentationPart(zw); err != nil {
		return fmt.Errorf("unable to write presentation part: %w", err)
	}
	if err := p.writeTemplateParts(zw); err != nil {
		return err
	}
	notesMaster := p.notesMasterPart()
	for i, slide := range p.slides {
		if err := p.writeSlide(zw, slide, i+1, notesMaster); err != nil {
			return fmt.Errorf("unable to write slide %d: %w", i+1, err)
		}
	}

	// make sure buffers are flushed before continuing
	if err := zw.Close(); err != nil {
		return fmt.Errorf("unable to close output archive: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to finalize output file: %w", err)
	}
	defer os.Remove(tmpName)

	if fixZip {
		return copyZipWithoutDataDescriptors(tmpName, outputPath)
	}
	return copyFile(tmpName, outputPath)
}

// replacedPart reports whether a template part is superseded by generated
// content and must not be copied verbatim.
func replacedPart(name string) bool {
	return name == contentTypesPart ||
		name == presentationPart ||
		name == relsPartName(presentationPart) ||
		strings.HasPrefix(name, "ppt/slides/") ||
		strings.HasPrefix(name, "ppt/notesSlides/")
}

func (p *Presentation) writeTemplateParts(zw *zip.Writer) error {
	for _, name := range p.partNames {
		if replacedPart(name) {
			continue
		}
		w, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("unable to create part %s: %w", name, err)
		}
		if _, err := w.Write(p.parts[name]); err != nil {
			return fmt.Errorf("unable to write part %s: %w", name, err)
		}
	}
	return nil
}

// writeContentTypes rewrites [Content_Types].xml: template slide overrides
// are dropped and one override per generated slide (and notes slide) added.
func (p *Presentation) writeContentTypes(zw *zip.Writer) error {
	doc, err := parsePart(p.parts, contentTypesPart)
	if err != nil {
		return err
	}
	root := doc.Root()
	for _, ovr := range root.SelectElements("Override") {
		name := ovr.SelectAttrValue("PartName", "")
		if strings.HasPrefix(name, "/ppt/slides/") || strings.HasPrefix(name, "/ppt/notesSlides/") {
			root.RemoveChild(ovr)
		}
	}
	for i, slide := range p.slides {
		ovr := root.CreateElement("Override")
		ovr.CreateAttr("PartName", fmt.Sprintf("/ppt/slides/slide%d.xml", i+1))
		ovr.CreateAttr("ContentType", contentTypeSlide)
		if slide.notes != "" {
			notesOvr := root.CreateElement("Override")
			notesOvr.CreateAttr("PartName", fmt.Sprintf("/ppt/notesSlides/notesSlide%d.xml", i+1))
			notesOvr.CreateAttr("ContentType", contentTypeNotesSlide)
		}
	}
	return writeXMLPart(zw, contentTypesPart, doc)
}

// writePresentationPart rebuilds the slide ID list and the presentation
// relationships around the generated slides, leaving everything else (slide
// size, master list, view properties) as the template had it.
func (p *Presentation) writePresentationPart(zw *zip.Writer) error {
	doc, err := parsePart(p.parts, presentationPart)
	if err != nil {
		return err
	}
	relsDoc, err := parsePart(p.parts, relsPartName(presentationPart))
	if err != nil {
		return err
	}

	relsRoot := relsDoc.Root()
	maxRID := 0
	for _, rel := range relsRoot.ChildElements() {
		if rel.SelectAttrValue("Type", "") == relTypeSlide {
			relsRoot.RemoveChild(rel)
			continue
		}
		id := rel.SelectAttrValue("Id", "")
		if n, err := strconv.Atoi(strings.TrimPrefix(id, "rId")); err == nil && n > maxRID {
			maxRID = n
		}
	}

	root := doc.Root()
	sldIdLst := root.SelectElement("p:sldIdLst")
	if sldIdLst == nil {
		sldIdLst = etree.NewElement("p:sldIdLst")
		idx := 0
		if masterLst := root.SelectElement("p:sldMasterIdLst"); masterLst != nil {
			idx = masterLst.Index() + 1
		}
		root.InsertChildAt(idx, sldIdLst)
	}
	for _, child := range sldIdLst.ChildElements() {
		sldIdLst.RemoveChild(child)
	}

	for i := range p.slides {
		rid := fmt.Sprintf("rId%d", maxRID+1+i)

		sldID := sldIdLst.CreateElement("p:sldId")
		sldID.CreateAttr("id", strconv.Itoa(256+i))
		sldID.CreateAttr("r:id", rid)

		rel := relsRoot.CreateElement("Relationship")
		rel.CreateAttr("Id", rid)
		rel.CreateAttr("Type", relTypeSlide)
		rel.CreateAttr("Target", fmt.Sprintf("slides/slide%d.xml", i+1))
	}

	if err := writeXMLPart(zw, presentationPart, doc); err != nil {
		return err
	}
	return writeXMLPart(zw, relsPartName(presentationPart), relsDoc)
}

func (p *Presentation) writeSlide(zw *zip.Writer, slide *Slide, num int, notesMaster string) error {
	partName := fmt.Sprintf("ppt/slides/slide%d.xml", num)
	if err := writeXMLPart(zw, partName, slide.doc); err != nil {
		return err
	}

	rels := newRelsDoc()
	addRel(rels, "rId1", relTypeSlideLayout, relativeTarget(partName, slide.Layout.PartName))
	if slide.notes != "" {
		notesPart := fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", num)
		addRel(rels, "rId2", relTypeNotesSlide, relativeTarget(partName, notesPart))
		if err := p.writeNotesSlide(zw, slide, notesPart, partName, notesMaster); err != nil {
			return err
		}
	}
	return writeXMLPart(zw, relsPartName(partName), rels)
}

// writeNotesSlide emits a minimal notes part: a single body placeholder
// holding the speaker notes text.
func (p *Presentation) writeNotesSlide(zw *zip.Writer, slide *Slide, partName, slidePart, notesMaster string) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	notes := doc.CreateElement("p:notes")
	notes.CreateAttr("xmlns:a", nsDrawing)
	notes.CreateAttr("xmlns:r", nsRelation)
	notes.CreateAttr("xmlns:p", nsPresent)

	cSld := notes.CreateElement("p:cSld")
	spTree := cSld.CreateElement("p:spTree")

	nvGrp := spTree.CreateElement("p:nvGrpSpPr")
	cNvPr := nvGrp.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", "1")
	cNvPr.CreateAttr("name", "")
	nvGrp.CreateElement("p:cNvGrpSpPr")
	nvGrp.CreateElement("p:nvPr")
	spTree.CreateElement("p:grpSpPr")

	sp := spTree.CreateElement("p:sp")
	nvSpPr := sp.CreateElement("p:nvSpPr")
	spCNvPr := nvSpPr.CreateElement("p:cNvPr")
	spCNvPr.CreateAttr("id", "2")
	spCNvPr.CreateAttr("name", "Notes Placeholder")
	nvSpPr.CreateElement("p:cNvSpPr")
	ph := nvSpPr.CreateElement("p:nvPr").CreateElement("p:ph")
	ph.CreateAttr("type", "body")
	ph.CreateAttr("idx", "1")
	sp.CreateElement("p:spPr")

	txBody := sp.CreateElement("p:txBody")
	txBody.CreateElement("a:bodyPr")
	txBody.CreateElement("a:lstStyle")
	for _, line := range strings.Split(slide.notes, "\n") {
		para := txBody.CreateElement("a:p")
		run := para.CreateElement("a:r")
		run.CreateElement("a:t").SetText(line)
	}

	notes.CreateElement("p:clrMapOvr").CreateElement("a:masterClrMapping")

	if err := writeXMLPart(zw, partName, doc); err != nil {
		return err
	}

	rels := newRelsDoc()
	addRel(rels, "rId1", relTypeSlide, relativeTarget(partName, slidePart))
	if notesMaster != "" {
		addRel(rels, "rId2", relTypeNotesMaster, relativeTarget(partName, notesMaster))
	}
	return writeXMLPart(zw, relsPartName(partName), rels)
}

// notesMasterPart finds the template's notes master part, if any.
func (p *Presentation) notesMasterPart() string {
	for _, name := range p.partNames {
		if strings.HasPrefix(name, "ppt/notesMasters/") && strings.HasSuffix(name, ".xml") {
			return name
		}
	}
	return ""
}

func newRelsDoc() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	root := doc.CreateElement("Relationships")
	root.CreateAttr("xmlns", "http://schemas.openxmlformats.org/package/2006/relationships")
	return doc
}

func addRel(doc *etree.Document, id, relType, target string) {
	rel := doc.Root().CreateElement("Relationship")
	rel.CreateAttr("Id", id)
	rel.CreateAttr("Type", relType)
	rel.CreateAttr("Target", target)
}

// relativeTarget expresses target relative to the directory of ownerPart.
// OOXML relationship targets inside ppt/ are conventionally of the
// "../slideLayouts/..." form, which a lexical walk reproduces.
func relativeTarget(ownerPart, target string) string {
	ownerDir := strings.Split(ownerPart, "/")
	ownerDir = ownerDir[:len(ownerDir)-1]
	targetSegs := strings.Split(target, "/")

	common := 0
	for common < len(ownerDir) && common < len(targetSegs)-1 && ownerDir[common] == targetSegs[common] {
		common++
	}
	var b strings.Builder
	for i := common; i < len(ownerDir); i++ {
		b.WriteString("../")
	}
	b.WriteString(strings.Join(targetSegs[common:], "/"))
	return b.String()
}

func writeXMLPart(zw *zip.Writer, name string, doc *etree.Document) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("unable to create part %s: %w", name, err)
	}
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("unable to write part %s: %w", name, err)
	}
	return nil
}

func copyZipWithoutDataDescriptors(from, to string) error {

	out, err := os.Create(to)
	if err != nil {
		return fmt.Errorf("unable to create target file (%s): %w", to, err)
	}
	defer out.Close()

	r, err := fixzip.OpenReader(from)
	if err != nil {
		return fmt.Errorf("unable to read archive file (%s): %w", from, err)
	}
	defer r.Close()

	w := fixzip.NewWriter(out)
	defer w.Close()

	for _, file := range r.File {
		// unset data descriptor flag.
		file.Flags &= ^fixzip.FlagDataDescriptor

		// copy zip entry
		if err := w.CopyFile(file); err != nil {
			return fmt.Errorf("unable to write target file (%s): %w", to, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {

	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer sourceFile.Close()

	destinationFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer destinationFile.Close()

	if _, err = io.Copy(destinationFile, sourceFile); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}

	if err = destinationFile.Close(); err != nil {
		return fmt.Errorf("failed to close destination file: %w", err)
	}
	return nil
}
