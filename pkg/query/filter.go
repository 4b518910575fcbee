/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package query

import (
	"strconv"
	"strings"

	"github.com/dburkart/skywatch/pkg/catalog"
	"github.com/pkg/errors"
)

// FilterKind tags which attribute a filter compares. The kind and its
// comparator are resolved once at parse time; evaluation never
// re-dispatches on field names.
type FilterKind int

const (
	KindDiameter FilterKind = iota
	KindHazardous
	KindDistance
)

// All filter values are compared as float64; booleans are projected
// onto 0/1 so a single operator table covers every field.
type comparator func(a, b float64) bool

var operators = map[string]comparator{
	">":  func(a, b float64) bool { return a > b },
	"=":  func(a, b float64) bool { return a == b },
	">=": func(a, b float64) bool { return a >= b },
}

// A Filter is one field/operator/value predicate. Filters are stateless
// once constructed and may be reused across evaluations.
type Filter struct {
	Kind  FilterKind
	cmp   comparator
	value float64
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Apply narrows a candidate list to the objects satisfying the
// predicate. Distance filters examine each object's approaches,
// deduplicated by (date, name) within this application, and keep an
// object at most once no matter how many approaches qualify.
func (f Filter) Apply(neos []*catalog.NearEarthObject) []*catalog.NearEarthObject {
	var filtered []*catalog.NearEarthObject

	switch f.Kind {
	case KindDiameter:
		for _, neo := range neos {
			if f.cmp(neo.DiameterMinKM, f.value) {
				filtered = append(filtered, neo)
			}
		}
	case KindHazardous:
		for _, neo := range neos {
			if f.cmp(boolValue(neo.Hazardous), f.value) {
				filtered = append(filtered, neo)
			}
		}
	case KindDistance:
		seen := make(map[string]bool)
		for _, neo := range neos {
			matched := false
			for _, approach := range neo.Approaches {
				if seen[approach.Key()] {
					continue
				}
				seen[approach.Key()] = true
				if f.cmp(approach.MissDistanceKM, f.value) {
					matched = true
				}
			}
			if matched {
				filtered = append(filtered, neo)
			}
		}
	}

	return filtered
}

// Matches reports whether a single approach satisfies the predicate.
// Only meaningful for distance filters.
func (f Filter) Matches(a *catalog.CloseApproach) bool {
	return f.cmp(a.MissDistanceKM, f.value)
}

// A FilterSet is the routed form of a raw filter list: object-level
// predicates, approach-level predicates, and any field names that were
// not recognized and therefore dropped.
type FilterSet struct {
	Objects    []Filter
	Approaches []Filter
	Dropped    []string
}

// Apply runs every filter as a strict intersection, object filters
// first, then approach filters.
func (fs FilterSet) Apply(neos []*catalog.NearEarthObject) []*catalog.NearEarthObject {
	for _, f := range fs.Objects {
		neos = f.Apply(neos)
	}
	for _, f := range fs.Approaches {
		neos = f.Apply(neos)
	}
	return neos
}

// MatchesApproach reports whether an approach satisfies every
// approach-level filter in the set.
func (fs FilterSet) MatchesApproach(a *catalog.CloseApproach) bool {
	for _, f := range fs.Approaches {
		if !f.Matches(a) {
			return false
		}
	}
	return true
}

// ParseFilters splits each raw "field:operator:value" expression and
// routes it by field. Unrecognized fields are dropped rather than
// rejected, for compatibility with filter lists written against newer
// dataset revisions; they are reported in FilterSet.Dropped so callers
// can log them. An empty raw list is not an error.
func ParseFilters(raw []string) (FilterSet, error) {
	var fs FilterSet

	for _, expr := range raw {
		pieces := strings.Split(expr, ":")
		if len(pieces) != 3 {
			return fs, errors.Wrapf(ErrInvalidQuerySpec, "malformed filter %q", expr)
		}
		field, op, literal := pieces[0], pieces[1], pieces[2]

		cmp, ok := operators[op]
		if !ok {
			return fs, errors.Wrapf(ErrUnsupportedOperator, "%q", op)
		}

		switch field {
		case "diameter", "diameter_min":
			value, err := strconv.ParseFloat(literal, 64)
			if err != nil {
				return fs, errors.Wrapf(ErrInvalidQuerySpec, "filter value %q is not numeric", literal)
			}
			fs.Objects = append(fs.Objects, Filter{Kind: KindDiameter, cmp: cmp, value: value})
		case "is_hazardous":
			fs.Objects = append(fs.Objects, Filter{Kind: KindHazardous, cmp: cmp, value: boolValue(literal == "True")})
		case "distance", "miss_distance":
			value, err := strconv.ParseFloat(literal, 64)
			if err != nil {
				return fs, errors.Wrapf(ErrInvalidQuerySpec, "filter value %q is not numeric", literal)
			}
			fs.Approaches = append(fs.Approaches, Filter{Kind: KindDistance, cmp: cmp, value: value})
		default:
			fs.Dropped = append(fs.Dropped, field)
		}
	}

	return fs, nil
}
