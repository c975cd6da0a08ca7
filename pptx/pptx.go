// Package pptx implements the OOXML presentation engine: reading a .pptx
// template (masters, layouts, placeholder regions), resolving the right
// layout for a logical slide type, instantiating slides from layouts and
// writing the finished deck back as a zip container.
package pptx

// EMU (English Metric Units) per inch, the native OOXML coordinate unit.
const emuPerInch = 914400

func inchesToEMU(in float64) int64 {
	return int64(in*emuPerInch + 0.5)
}

func emuToInches(emu int64) float64 {
	return float64(emu) / emuPerInch
}

// PlaceholderType is the coarse role of a placeholder region, as encoded by
// the ph/@type attribute. An absent attribute means body.
type PlaceholderType string

const (
	PhTitle       PlaceholderType = "title"
	PhCenterTitle PlaceholderType = "ctrTitle"
	PhBody        PlaceholderType = "body"
	PhSubtitle    PlaceholderType = "subTitle"
	PhPicture     PlaceholderType = "pic"
	PhDate        PlaceholderType = "dt"
	PhFooter      PlaceholderType = "ftr"
	PhSlideNumber PlaceholderType = "sldNum"
)

const (
	contentTypeSlide      = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	contentTypeNotesSlide = "application/vnd.openxmlformats-officedocument.presentationml.notesSlide+xml"

	relTypeSlide       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	relTypeSlideLayout = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	relTypeSlideMaster = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	relTypeNotesSlide  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide"
	relTypeNotesMaster = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesMaster"

	nsDrawing  = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPresent  = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsRelation = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)
