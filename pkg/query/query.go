/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package query implements the skywatch query engine: normalizing raw
// query parameters into a plan, evaluating attribute filters, and
// executing date searches against a catalog.
package query

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidQuerySpec covers malformed query parameters: a missing
	// or doubled date form, a non-positive result count, or a filter
	// string that cannot be split into field:op:value.
	ErrInvalidQuerySpec = errors.New("invalid query specification")

	// ErrUnsupportedOperator is returned for operator symbols outside
	// the supported set (>, =, >=).
	ErrUnsupportedOperator = errors.New("unsupported filter operator")

	// ErrUnsupportedOutputShape is returned when return_object does not
	// name a known output shape.
	ErrUnsupportedOutputShape = errors.New("unsupported output shape")

	// ErrInvalidDateRange is returned when a range search's end date
	// precedes its start date.
	ErrInvalidDateRange = errors.New("invalid date range")
)

// DateSearchType selects how the executor resolves dates.
type DateSearchType int

const (
	// Equals searches a single coarse date key.
	Equals DateSearchType = iota
	// Between searches every coarse date key from Start to End,
	// inclusive on both ends.
	Between
)

func (t DateSearchType) String() string {
	if t == Between {
		return "between"
	}
	return "equals"
}

// A DateSearch carries the resolved date mode of a plan. Equals
// searches use Start only.
type DateSearch struct {
	Type  DateSearchType
	Start string
	End   string
}

// Shape names what a query ultimately emits.
type Shape string

const (
	// ShapeNEO emits near-earth objects.
	ShapeNEO Shape = "NEO"
	// ShapePath emits close approaches.
	ShapePath Shape = "Path"
)

// Params are the raw, unvalidated query parameters as supplied by a
// caller. Exactly one of Date or the StartDate/EndDate pair must be
// set.
type Params struct {
	Number       int
	Date         string
	StartDate    string
	EndDate      string
	Filters      []string
	ReturnObject string
}

// A Plan is the canonical, executable form of a query. Filters stay as
// raw strings here; the executor hands them to ParseFilters when the
// plan runs.
type Plan struct {
	DateSearch DateSearch
	Number     int
	Filters    []string
	Shape      Shape
}

// BuildPlan validates raw parameters and normalizes them into a Plan.
func BuildPlan(p Params) (Plan, error) {
	var plan Plan

	if p.Number <= 0 {
		return plan, errors.Wrapf(ErrInvalidQuerySpec, "number must be positive, got %d", p.Number)
	}

	switch {
	case p.Date != "" && (p.StartDate != "" || p.EndDate != ""):
		return plan, errors.Wrap(ErrInvalidQuerySpec, "date and start/end date are mutually exclusive")
	case p.Date != "":
		plan.DateSearch = DateSearch{Type: Equals, Start: p.Date}
	case p.StartDate != "" && p.EndDate != "":
		plan.DateSearch = DateSearch{Type: Between, Start: p.StartDate, End: p.EndDate}
	default:
		return plan, errors.Wrap(ErrInvalidQuerySpec, "either date or both start and end dates are required")
	}

	switch Shape(p.ReturnObject) {
	case ShapeNEO, ShapePath:
		plan.Shape = Shape(p.ReturnObject)
	case "":
		plan.Shape = ShapeNEO
	default:
		return plan, errors.Wrapf(ErrUnsupportedOutputShape, "%q", p.ReturnObject)
	}

	plan.Number = p.Number
	plan.Filters = p.Filters

	return plan, nil
}
