// Copyright LIMIT Lab, 2026. All rights reserved.

package publication

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/limitlab/labsite/pkg/types"
)

// All is the wildcard facet value: do not constrain this facet.
const All = "all"

// Facet names one filterable dimension.
type Facet string

const (
	FacetConference Facet = "conference"
	FacetYear       Facet = "year"
	FacetField      Facet = "field"
)

// Facets in display order.
var FacetOrder = []Facet{FacetConference, FacetYear, FacetField}

// Label returns the selector heading for the facet.
func (f Facet) Label() string {
	switch f {
	case FacetConference:
		return "Conference"
	case FacetYear:
		return "Year"
	case FacetField:
		return "Field"
	}
	return string(f)
}

// ParseFacet converts a facet name into a Facet.
func ParseFacet(s string) (Facet, error) {
	switch f := Facet(strings.ToLower(strings.TrimSpace(s))); f {
	case FacetConference, FacetYear, FacetField:
		return f, nil
	}
	return "", fmt.Errorf("unknown facet %q: use conference, year, or field", s)
}

// Filter is one view's facet selection. The zero value is not normalized;
// use NewFilter or Normalize before comparing fields directly.
type Filter struct {
	Conference string `json:"conference" yaml:"conference"`
	Year       string `json:"year" yaml:"year"`
	Field      string `json:"field" yaml:"field"`
}

// NewFilter returns a filter with every facet set to All.
func NewFilter() Filter {
	return Filter{Conference: All, Year: All, Field: All}
}

// Normalize trims each facet and maps empty values to All. Only the exact
// wildcard "all" is treated as All; "All" is an ordinary facet value.
func (f Filter) Normalize() Filter {
	return Filter{
		Conference: normalizeValue(f.Conference),
		Year:       normalizeValue(f.Year),
		Field:      normalizeValue(f.Field),
	}
}

func normalizeValue(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return All
	}
	return v
}

// IsAll reports whether no facet is constrained.
func (f Filter) IsAll() bool {
	n := f.Normalize()
	return n.Conference == All && n.Year == All && n.Field == All
}

// Value returns the selection for one facet.
func (f Filter) Value(facet Facet) string {
	n := f.Normalize()
	switch facet {
	case FacetConference:
		return n.Conference
	case FacetYear:
		return n.Year
	case FacetField:
		return n.Field
	}
	return All
}

// With returns a copy of f with one facet set to value.
func (f Filter) With(facet Facet, value string) Filter {
	n := f.Normalize()
	value = normalizeValue(value)
	switch facet {
	case FacetConference:
		n.Conference = value
	case FacetYear:
		n.Year = value
	case FacetField:
		n.Field = value
	}
	return n
}

// Matches reports whether p passes every facet. The year is compared as
// the decimal string of p.Year, so "2024" never matches 20240.
func (f Filter) Matches(p types.Publication) bool {
	n := f.Normalize()
	if n.Conference != All && n.Conference != p.Conference {
		return false
	}
	if n.Year != All && n.Year != strconv.Itoa(p.Year) {
		return false
	}
	if n.Field != All && n.Field != p.Field {
		return false
	}
	return true
}

// String renders the filter for logs and status lines.
func (f Filter) String() string {
	n := f.Normalize()
	return fmt.Sprintf("conference=%s year=%s field=%s", n.Conference, n.Year, n.Field)
}

// Evaluate returns the records that pass f, ordered by descending ID
// (newest first). The input is not modified. An empty result is valid.
func Evaluate(records []types.Publication, f Filter) []types.Publication {
	n := f.Normalize()
	out := make([]types.Publication, 0, len(records))
	for _, r := range records {
		if n.Matches(r) {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b types.Publication) int {
		return cmp.Compare(b.ID, a.ID)
	})
	return out
}

// Cycle steps through All followed by values. It returns the entry after
// current, wrapping to All; a current value not in values restarts at All.
// Pass a negative step to move backwards.
func Cycle(values []string, current string, step int) string {
	options := append([]string{All}, values...)
	idx := slices.Index(options, normalizeValue(current))
	if idx < 0 {
		return All
	}
	n := len(options)
	next := ((idx+step)%n + n) % n
	return options[next]
}
