package pptx

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Master is a top-level visual theme bundle: a background classification and
// the layouts it owns.
type Master struct {
	PartName string
	Dark     bool
	Layouts  []*Layout
}

// Layout is a named, immutable template fragment belonging to exactly one
// master. Its placeholder shapes define the regions slides instantiated from
// it will carry.
type Layout struct {
	Name     string
	PartName string
	Master   *Master

	doc    *etree.Document
	spTree *etree.Element
}

type relationship struct {
	ID     string
	Type   string
	Target string
}

// knownDarkBG is the brand dark background; templates occasionally carry it
// with effects that defeat the channel-sum check, so it is special-cased.
const knownDarkBG = "1B3139"

func readZipParts(zipPath string) (map[string][]byte, []string, error) {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open template archive: %w", err)
	}
	defer zr.Close()

	parts := make(map[string][]byte, len(zr.File))
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, nil, fmt.Errorf("unable to read template part %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("unable to read template part %s: %w", f.Name, err)
		}
		parts[f.Name] = data
		names = append(names, f.Name)
	}
	return parts, names, nil
}

func parsePart(parts map[string][]byte, name string) (*etree.Document, error) {
	data, ok := parts[name]
	if !ok {
		return nil, fmt.Errorf("template part %s is missing", name)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("template part %s is malformed: %w", name, err)
	}
	return doc, nil
}

// relsPartName returns the rels part name for a given part, e.g.
// ppt/presentation.xml -> ppt/_rels/presentation.xml.rels
func relsPartName(partName string) string {
	dir, base := path.Split(partName)
	return dir + "_rels/" + base + ".rels"
}

func parseRels(parts map[string][]byte, partName string) ([]relationship, error) {
	name := relsPartName(partName)
	if _, ok := parts[name]; !ok {
		return nil, nil
	}
	doc, err := parsePart(parts, name)
	if err != nil {
		return nil, err
	}
	var rels []relationship
	root := doc.Root()
	if root == nil {
		return nil, nil
	}
	for _, rel := range root.ChildElements() {
		rels = append(rels, relationship{
			ID:     rel.SelectAttrValue("Id", ""),
			Type:   rel.SelectAttrValue("Type", ""),
			Target: rel.SelectAttrValue("Target", ""),
		})
	}
	return rels, nil
}

// resolveTarget resolves a relationship target relative to the part that owns
// the relationship.
func resolveTarget(ownerPart, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	dir, _ := path.Split(ownerPart)
	return path.Clean(dir + target)
}

// loadMasters discovers slide masters and their layouts from the presentation
// part relationships.
func loadMasters(parts map[string][]byte) ([]*Master, error) {
	presRels, err := parseRels(parts, presentationPart)
	if err != nil {
		return nil, err
	}

	var masters []*Master
	for _, rel := range presRels {
		if rel.Type != relTypeSlideMaster {
			continue
		}
		partName := resolveTarget(presentationPart, rel.Target)
		doc, err := parsePart(parts, partName)
		if err != nil {
			return nil, err
		}
		master := &Master{
			PartName: partName,
			Dark:     isDarkBackground(doc),
		}
		if err := loadLayouts(parts, master); err != nil {
			return nil, err
		}
		masters = append(masters, master)
	}
	if len(masters) == 0 {
		return nil, fmt.Errorf("template has no slide masters")
	}
	return masters, nil
}

func loadLayouts(parts map[string][]byte, master *Master) error {
	rels, err := parseRels(parts, master.PartName)
	if err != nil {
		return err
	}
	for _, rel := range rels {
		if rel.Type != relTypeSlideLayout {
			continue
		}
		partName := resolveTarget(master.PartName, rel.Target)
		doc, err := parsePart(parts, partName)
		if err != nil {
			return err
		}
		layout := &Layout{
			Name:     layoutName(doc),
			PartName: partName,
			Master:   master,
			doc:      doc,
			spTree:   doc.FindElement("//p:cSld/p:spTree"),
		}
		master.Layouts = append(master.Layouts, layout)
	}
	return nil
}

func layoutName(doc *etree.Document) string {
	if cSld := doc.FindElement("//p:cSld"); cSld != nil {
		return cSld.SelectAttrValue("name", "")
	}
	return ""
}

// isDarkBackground classifies a master by its solid background fill. The
// brand dark color matches outright, anything with a channel sum below the
// midpoint (avg < 128) counts as dark, everything else - including masters
// with no solid background - is light.
func isDarkBackground(doc *etree.Document) bool {
	clr := doc.FindElement("//p:cSld/p:bg/p:bgPr/a:solidFill/a:srgbClr")
	if clr == nil {
		return false
	}
	val := strings.ToUpper(clr.SelectAttrValue("val", ""))
	return isDarkColor(val)
}

func isDarkColor(val string) bool {
	if val == knownDarkBG {
		return true
	}
	if len(val) < 6 {
		return false
	}
	r, err1 := strconv.ParseInt(val[0:2], 16, 0)
	g, err2 := strconv.ParseInt(val[2:4], 16, 0)
	b, err3 := strconv.ParseInt(val[4:6], 16, 0)
	if err1 != nil || err2 != nil || err3 != nil {
		return false
	}
	return r+g+b < 384
}

// placeholderShapes returns the layout's p:sp elements that carry a ph
// element, in document order.
func (l *Layout) placeholderShapes() []*etree.Element {
	if l.spTree == nil {
		return nil
	}
	var shapes []*etree.Element
	for _, sp := range l.spTree.SelectElements("p:sp") {
		if sp.FindElement("p:nvSpPr/p:nvPr/p:ph") != nil {
			shapes = append(shapes, sp)
		}
	}
	return shapes
}
