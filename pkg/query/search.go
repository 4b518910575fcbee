/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package query

import (
	"time"

	"github.com/dburkart/skywatch/pkg/catalog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DateKeyLayout is the coarse, day-granularity key format used by the
// catalog's date index.
const DateKeyLayout = "2006-01-02"

// A Searcher executes plans against a catalog. The catalog is read-only
// after load, so a single Searcher is safe for concurrent queries.
type Searcher struct {
	catalog *catalog.Catalog
	log     zerolog.Logger
}

func NewSearcher(c *catalog.Catalog, log zerolog.Logger) *Searcher {
	return &Searcher{catalog: c, log: log}
}

// EqualsSearch returns the objects recorded on a single date key,
// deduplicated by name, first occurrence winning.
func (s *Searcher) EqualsSearch(date string) []*catalog.NearEarthObject {
	var neos []*catalog.NearEarthObject
	seen := make(map[string]bool)

	for _, neo := range s.catalog.ByDate(date) {
		if seen[neo.Name] {
			continue
		}
		seen[neo.Name] = true
		neos = append(neos, neo)
	}

	return neos
}

// BetweenSearch walks every coarse date from start to end inclusive, in
// ascending calendar order, collecting objects not yet seen. Dates that
// have no recorded objects are simply empty, not errors.
func (s *Searcher) BetweenSearch(start, end string) ([]*catalog.NearEarthObject, error) {
	startDate, err := time.Parse(DateKeyLayout, start)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidQuerySpec, "bad start date %q", start)
	}
	endDate, err := time.Parse(DateKeyLayout, end)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidQuerySpec, "bad end date %q", end)
	}
	if endDate.Before(startDate) {
		return nil, errors.Wrapf(ErrInvalidDateRange, "%s precedes %s", end, start)
	}

	var neos []*catalog.NearEarthObject
	seen := make(map[string]bool)

	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		for _, neo := range s.catalog.ByDate(d.Format(DateKeyLayout)) {
			if seen[neo.Name] {
				continue
			}
			seen[neo.Name] = true
			neos = append(neos, neo)
		}
	}

	return neos, nil
}

// GetObjects executes a plan: resolve dates, apply filters as a strict
// intersection, shape, and cap the result at plan.Number. When the plan
// asks for the Path shape, approaches are re-derived from the filtered
// objects rather than carried through the pipeline.
func (s *Searcher) GetObjects(plan Plan) (Results, error) {
	qid := uuid.NewString()
	log := s.log.With().Str("query", qid).Logger()

	var neos []*catalog.NearEarthObject
	var err error

	switch plan.DateSearch.Type {
	case Equals:
		neos = s.EqualsSearch(plan.DateSearch.Start)
	case Between:
		neos, err = s.BetweenSearch(plan.DateSearch.Start, plan.DateSearch.End)
		if err != nil {
			return Results{}, err
		}
	}

	filters, err := ParseFilters(plan.Filters)
	if err != nil {
		return Results{}, err
	}
	if len(filters.Dropped) > 0 {
		log.Debug().Strs("fields", filters.Dropped).Msg("dropped unrecognized filter fields")
	}

	neos = filters.Apply(neos)

	results := Results{Shape: plan.Shape}
	switch plan.Shape {
	case ShapePath:
		seen := make(map[string]bool)
		for _, neo := range neos {
			for _, approach := range neo.Approaches {
				if seen[approach.Key()] || !filters.MatchesApproach(approach) {
					continue
				}
				seen[approach.Key()] = true
				results.Approaches = append(results.Approaches, approach)
			}
		}
		if len(results.Approaches) > plan.Number {
			results.Approaches = results.Approaches[:plan.Number]
		}
	default:
		if len(neos) > plan.Number {
			neos = neos[:plan.Number]
		}
		results.Objects = neos
	}

	log.Info().
		Str("mode", plan.DateSearch.Type.String()).
		Str("shape", string(plan.Shape)).
		Int("results", results.Len()).
		Msg("query executed")

	return results, nil
}
