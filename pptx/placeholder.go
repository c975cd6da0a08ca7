package pptx

import (
	"sort"
	"strconv"

	"github.com/beevik/etree"
)

// Region is a placeholder on an instantiated slide. It carries three
// independent identifying attributes: a small integer index (stable within
// one layout only), a coarse role type and an on-slide position. Which one
// disambiguates is decided per slide type by the caller.
type Region struct {
	Idx  int
	Type PlaceholderType

	// offsets in inches from the slide's top-left corner
	Top  float64
	Left float64

	sp *etree.Element
}

func regionFromShape(sp *etree.Element) *Region {
	r := &Region{Type: PhBody, sp: sp}

	if ph := sp.FindElement("p:nvSpPr/p:nvPr/p:ph"); ph != nil {
		if t := ph.SelectAttrValue("type", ""); t != "" {
			r.Type = PlaceholderType(t)
		}
		if idx := ph.SelectAttrValue("idx", ""); idx != "" {
			r.Idx, _ = strconv.Atoi(idx)
		}
	}
	if off := sp.FindElement("p:spPr/a:xfrm/a:off"); off != nil {
		if x, err := strconv.ParseInt(off.SelectAttrValue("x", "0"), 10, 64); err == nil {
			r.Left = emuToInches(x)
		}
		if y, err := strconv.ParseInt(off.SelectAttrValue("y", "0"), 10, 64); err == nil {
			r.Top = emuToInches(y)
		}
	}
	return r
}

// Placeholder returns the region with the given index, nil when the layout
// does not carry one. Absence is not an error - callers skip the field.
func (s *Slide) Placeholder(idx int) *Region {
	for _, r := range s.regions {
		if r.Idx == idx {
			return r
		}
	}
	return nil
}

// PlaceholderByType returns the first region of the given role type, nil when
// absent.
func (s *Slide) PlaceholderByType(t PlaceholderType) *Region {
	for _, r := range s.regions {
		if r.Type == t {
			return r
		}
	}
	return nil
}

// PlaceholdersByType returns all regions of the given role type sorted
// top-to-bottom, then left-to-right.
func (s *Slide) PlaceholdersByType(t PlaceholderType) []*Region {
	var matching []*Region
	for _, r := range s.regions {
		if r.Type == t {
			matching = append(matching, r)
		}
	}
	sort.SliceStable(matching, func(i, j int) bool {
		if matching[i].Top != matching[j].Top {
			return matching[i].Top < matching[j].Top
		}
		return matching[i].Left < matching[j].Left
	})
	return matching
}

// Below keeps regions whose top offset exceeds the threshold (in inches) and
// orders them left-to-right. Layouts expose several same-typed regions with
// no other distinguishing attribute - a shared subtitle row above the
// threshold, per-column headers below it - so callers supply the threshold
// appropriate to the layout they resolved.
func Below(regions []*Region, topInches float64) []*Region {
	var out []*Region
	for _, r := range regions {
		if r.Top > topInches {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Left < out[j].Left
	})
	return out
}
