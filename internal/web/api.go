// Copyright LIMIT Lab, 2026. All rights reserved.

package web

import (
	"encoding/json"
	"io"
	"net/url"

	"github.com/limitlab/labsite/internal/publication"
	"github.com/limitlab/labsite/pkg/types"
)

// APIResponse is the JSON body of the publications API and of the
// exported api/publications.json.
type APIResponse struct {
	Publications []types.Publication `json:"publications"`
	Facets       publication.Facets  `json:"facets"`
	Filter       publication.Filter  `json:"filter"`
	Count        int                 `json:"count"`
}

// NewAPIResponse evaluates f against store.
func NewAPIResponse(store *publication.Store, f publication.Filter) APIResponse {
	f = f.Normalize()
	pubs := store.Evaluate(f)
	return APIResponse{
		Publications: pubs,
		Facets:       store.Facets(),
		Filter:       f,
		Count:        len(pubs),
	}
}

// WriteJSON encodes resp with indentation.
func (resp APIResponse) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

// FilterFromQuery reads the facet parameters. Missing parameters mean All.
func FilterFromQuery(q url.Values) publication.Filter {
	return publication.Filter{
		Conference: q.Get(string(publication.FacetConference)),
		Year:       q.Get(string(publication.FacetYear)),
		Field:      q.Get(string(publication.FacetField)),
	}.Normalize()
}
