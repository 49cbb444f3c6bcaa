// Copyright LIMIT Lab, 2026. All rights reserved.

package web

import (
	"github.com/limitlab/labsite/internal/content"
	"github.com/limitlab/labsite/internal/nav"
	"github.com/limitlab/labsite/internal/publication"
	"github.com/limitlab/labsite/internal/theme"
	"github.com/limitlab/labsite/pkg/types"
)

// PageData is everything a page template reads. One value is built per
// request (or per exported page) and never shared.
type PageData struct {
	Site  types.SiteInfo
	Page  nav.Item
	Nav   []nav.Link
	Theme theme.Mode
	Dark  bool

	// Return is where the theme switch redirects. The server sets it to
	// the request URI so the publication filter survives a theme change.
	Return string

	// Static marks pages written by the static export.
	Static bool

	Members []types.Member
	News    []types.NewsItem

	Filter       publication.Filter
	Selects      []FacetSelect
	Publications []types.Publication
	Total        int
}

// FacetSelect is one filter dropdown.
type FacetSelect struct {
	Name    string
	Label   string
	Options []FacetOption
}

// FacetOption is one dropdown entry. The wildcard is always first.
type FacetOption struct {
	Value    string
	Label    string
	Selected bool
}

// Logo returns the lab logo for the resolved display mode.
func (d PageData) Logo() string {
	return theme.Pick(d.Site.Logo, d.Dark)
}

// NavMark returns the header mark for the resolved display mode.
func (d PageData) NavMark() string {
	return theme.Pick(d.Site.NavMark, d.Dark)
}

// Title is the document title.
func (d PageData) Title() string {
	if d.Page.Page == nav.Top {
		return d.Site.Name
	}
	return d.Page.Label + " | " + d.Site.Name
}

// NewPageData builds the view for page. Publications are filtered with f;
// other pages ignore it.
func NewPageData(c *content.Content, page nav.Page, f publication.Filter, mode theme.Mode, systemDark bool) PageData {
	item, _ := nav.Lookup(page)
	d := PageData{
		Site:  c.Site,
		Page:  item,
		Nav:   nav.Items(item.Path),
		Theme:  mode,
		Dark:   mode.Resolve(systemDark),
		Return: item.Path,
	}

	switch page {
	case nav.Top:
		d.Members = c.Members
		d.News = c.News
	case nav.Publications:
		f = f.Normalize()
		d.Filter = f
		d.Selects = facetSelects(c.Publications.Facets(), f)
		d.Publications = c.Publications.Evaluate(f)
		d.Total = c.Publications.Len()
	}
	return d
}

func facetSelects(facets publication.Facets, f publication.Filter) []FacetSelect {
	selects := make([]FacetSelect, 0, len(publication.FacetOrder))
	for _, facet := range publication.FacetOrder {
		current := f.Value(facet)
		opts := []FacetOption{{Value: publication.All, Label: "All", Selected: current == publication.All}}
		for _, v := range facets.Values(facet) {
			opts = append(opts, FacetOption{Value: v, Label: v, Selected: v == current})
		}
		selects = append(selects, FacetSelect{
			Name:    string(facet),
			Label:   facet.Label(),
			Options: opts,
		})
	}
	return selects
}
