// Copyright LIMIT Lab, 2026. All rights reserved.

package publication

import (
	"slices"
	"strconv"

	"github.com/limitlab/labsite/pkg/types"
)

// Facets lists the distinct values of each filterable dimension in the
// order they first occur in the records. The order is intentionally not
// sorted: selectors show venues and years the way the content lists them.
type Facets struct {
	Conferences []string `json:"conferences" yaml:"conferences"`
	Years       []int    `json:"years" yaml:"years"`
	Fields      []string `json:"fields" yaml:"fields"`
}

// ExtractFacets collects first-seen, duplicate-free facet values. An empty
// input yields three empty (non-nil) lists.
func ExtractFacets(records []types.Publication) Facets {
	f := Facets{
		Conferences: []string{},
		Years:       []int{},
		Fields:      []string{},
	}
	seenConf := make(map[string]bool)
	seenYear := make(map[int]bool)
	seenField := make(map[string]bool)

	for _, r := range records {
		if !seenConf[r.Conference] {
			seenConf[r.Conference] = true
			f.Conferences = append(f.Conferences, r.Conference)
		}
		if !seenYear[r.Year] {
			seenYear[r.Year] = true
			f.Years = append(f.Years, r.Year)
		}
		if !seenField[r.Field] {
			seenField[r.Field] = true
			f.Fields = append(f.Fields, r.Field)
		}
	}
	return f
}

// YearStrings returns the years as the strings a selector submits.
func (f Facets) YearStrings() []string {
	out := make([]string, len(f.Years))
	for i, y := range f.Years {
		out[i] = strconv.Itoa(y)
	}
	return out
}

// Values returns the selectable values for one facet, as strings.
func (f Facets) Values(facet Facet) []string {
	switch facet {
	case FacetConference:
		return slices.Clone(f.Conferences)
	case FacetYear:
		return f.YearStrings()
	case FacetField:
		return slices.Clone(f.Fields)
	}
	return nil
}

func (f Facets) clone() Facets {
	return Facets{
		Conferences: slices.Clone(f.Conferences),
		Years:       slices.Clone(f.Years),
		Fields:      slices.Clone(f.Fields),
	}
}
