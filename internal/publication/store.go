// Copyright LIMIT Lab, 2026. All rights reserved.

// Package publication holds the lab's publication list and derives the
// visible subset for a filter selection.
//
// A Store is immutable once built. Facet extraction and filtering are pure
// functions over its records; callers own their Filter values.
package publication

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/limitlab/labsite/pkg/types"
)

// ErrDuplicateID is returned when two records share an ID.
var ErrDuplicateID = errors.New("duplicate publication id")

// Store is an immutable, ID-unique set of publications kept in source order.
type Store struct {
	records []types.Publication
	byID    map[int]int
	facets  Facets
}

// NewStore copies records into a new Store. It fails if any ID repeats.
// Conference and field values are trimmed the same way filter values are.
func NewStore(records []types.Publication) (*Store, error) {
	byID := make(map[int]int, len(records))
	recs := slices.Clone(records)
	for i := range recs {
		r := &recs[i]
		if j, ok := byID[r.ID]; ok {
			return nil, fmt.Errorf("%w: %d (records %d and %d)", ErrDuplicateID, r.ID, j, i)
		}
		byID[r.ID] = i
		r.Conference = strings.TrimSpace(r.Conference)
		r.Field = strings.TrimSpace(r.Field)
	}

	s := &Store{
		records: recs,
		byID:    byID,
	}
	s.facets = ExtractFacets(s.records)
	return s, nil
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// All returns a copy of the records in source order.
func (s *Store) All() []types.Publication {
	return slices.Clone(s.records)
}

// Get looks up a record by ID.
func (s *Store) Get(id int) (types.Publication, bool) {
	i, ok := s.byID[id]
	if !ok {
		return types.Publication{}, false
	}
	return s.records[i], true
}

// Facets returns the facet values computed when the store was built.
func (s *Store) Facets() Facets {
	return s.facets.clone()
}

// Evaluate returns the records visible under f, newest first.
func (s *Store) Evaluate(f Filter) []types.Publication {
	return Evaluate(s.records, f)
}
