/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package query

import (
	"errors"
	"testing"

	"github.com/dburkart/skywatch/pkg/catalog"
)

func neoWithApproaches(name string, diameter float64, hazardous bool, approaches ...*catalog.CloseApproach) *catalog.NearEarthObject {
	neo := &catalog.NearEarthObject{
		ID:            name,
		Name:          name,
		DiameterMinKM: diameter,
		Hazardous:     hazardous,
	}
	for _, a := range approaches {
		a.NEOName = name
		neo.AddApproach(a)
	}
	return neo
}

func TestParseFiltersRouting(t *testing.T) {
	fs, err := ParseFilters([]string{
		"diameter:>:1.0",
		"is_hazardous:=:True",
		"distance:>=:50000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fs.Objects) != 2 {
		t.Errorf("expected 2 object filters, found %d", len(fs.Objects))
	}
	if len(fs.Approaches) != 1 {
		t.Errorf("expected 1 approach filter, found %d", len(fs.Approaches))
	}
	if len(fs.Dropped) != 0 {
		t.Errorf("expected nothing dropped, found %v", fs.Dropped)
	}
}

func TestParseFiltersEmpty(t *testing.T) {
	for _, raw := range [][]string{nil, {}} {
		fs, err := ParseFilters(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fs.Objects) != 0 || len(fs.Approaches) != 0 {
			t.Error("expected empty filter buckets")
		}
	}
}

func TestParseFiltersDropsUnknownFields(t *testing.T) {
	fs, err := ParseFilters([]string{"albedo:>:0.2", "diameter:>:1.0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fs.Objects) != 1 {
		t.Errorf("expected 1 object filter, found %d", len(fs.Objects))
	}
	if len(fs.Dropped) != 1 || fs.Dropped[0] != "albedo" {
		t.Errorf("expected albedo to be dropped, got %v", fs.Dropped)
	}
}

func TestParseFiltersUnsupportedOperator(t *testing.T) {
	for _, op := range []string{"<", "!=", "<="} {
		_, err := ParseFilters([]string{"diameter:" + op + ":1.0"})
		if !errors.Is(err, ErrUnsupportedOperator) {
			t.Errorf("operator %q: expected ErrUnsupportedOperator, got %v", op, err)
		}
	}
}

func TestParseFiltersMalformed(t *testing.T) {
	_, err := ParseFilters([]string{"diameter>1.0"})
	if !errors.Is(err, ErrInvalidQuerySpec) {
		t.Errorf("expected ErrInvalidQuerySpec, got %v", err)
	}
}

func TestDiameterFilter(t *testing.T) {
	small := neoWithApproaches("Small", 0.5, false)
	big := neoWithApproaches("Big", 2.0, true)

	fs, err := ParseFilters([]string{"diameter:>:1.0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	filtered := fs.Apply([]*catalog.NearEarthObject{small, big})
	if len(filtered) != 1 || filtered[0] != big {
		t.Errorf("expected only Big to survive, got %v", filtered)
	}
}

func TestHazardousFilter(t *testing.T) {
	safe := neoWithApproaches("Safe", 0.5, false)
	risky := neoWithApproaches("Risky", 2.0, true)

	fs, err := ParseFilters([]string{"is_hazardous:=:True"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	filtered := fs.Apply([]*catalog.NearEarthObject{safe, risky})
	if len(filtered) != 1 || filtered[0] != risky {
		t.Errorf("expected only Risky to survive, got %v", filtered)
	}

	// Any literal other than "True" means false
	fs, err = ParseFilters([]string{"is_hazardous:=:nope"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	filtered = fs.Apply([]*catalog.NearEarthObject{safe, risky})
	if len(filtered) != 1 || filtered[0] != safe {
		t.Errorf("expected only Safe to survive, got %v", filtered)
	}
}

func TestDistanceFilterKeepsObjectOnce(t *testing.T) {
	// Two qualifying approaches must still yield a single result
	neo := neoWithApproaches("Eros", 0.5, false,
		&catalog.CloseApproach{MissDistanceKM: 60000, Date: "2015-Jan-01 10:00"},
		&catalog.CloseApproach{MissDistanceKM: 70000, Date: "2015-Jan-02 10:00"},
	)

	fs, err := ParseFilters([]string{"distance:>=:50000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	filtered := fs.Apply([]*catalog.NearEarthObject{neo})
	if len(filtered) != 1 {
		t.Errorf("expected Eros exactly once, found %d entries", len(filtered))
	}
}

func TestDistanceFilterExcludes(t *testing.T) {
	near := neoWithApproaches("Near", 0.5, false,
		&catalog.CloseApproach{MissDistanceKM: 10000, Date: "2015-Jan-01 10:00"},
	)
	far := neoWithApproaches("Far", 0.5, false,
		&catalog.CloseApproach{MissDistanceKM: 90000, Date: "2015-Jan-01 12:00"},
	)

	fs, err := ParseFilters([]string{"distance:>=:50000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	filtered := fs.Apply([]*catalog.NearEarthObject{near, far})
	if len(filtered) != 1 || filtered[0] != far {
		t.Errorf("expected only Far to survive, got %v", filtered)
	}
}

func TestFilterCompositionIsIntersection(t *testing.T) {
	a := neoWithApproaches("A", 0.5, false)
	b := neoWithApproaches("B", 2.0, true)
	c := neoWithApproaches("C", 3.0, false)

	neos := []*catalog.NearEarthObject{a, b, c}

	first, err := ParseFilters([]string{"diameter:>:1.0", "is_hazardous:=:True"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ParseFilters([]string{"is_hazardous:=:True", "diameter:>:1.0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := first.Apply(neos)
	if len(got) != 1 || got[0] != b {
		t.Errorf("expected only B to survive, got %v", got)
	}

	// Order must not matter for object-level filters
	swapped := second.Apply(neos)
	if len(swapped) != 1 || swapped[0] != b {
		t.Errorf("expected only B to survive with swapped order, got %v", swapped)
	}
}

func TestFilterEqualityOperator(t *testing.T) {
	neo := neoWithApproaches("Exact", 1.5, false)

	fs, err := ParseFilters([]string{"diameter:=:1.5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := fs.Apply([]*catalog.NearEarthObject{neo}); len(got) != 1 {
		t.Errorf("expected an exact diameter match, got %v", got)
	}
}
