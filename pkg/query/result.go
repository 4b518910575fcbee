/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package query

import (
	"strconv"

	"github.com/dburkart/skywatch/pkg/catalog"
)

// Results is what a query execution emits: either objects or
// approaches, depending on the plan's shape. Exactly one of the two
// slices is populated.
type Results struct {
	Shape      Shape
	Objects    []*catalog.NearEarthObject `json:",omitempty"`
	Approaches []*catalog.CloseApproach   `json:",omitempty"`
}

func (r Results) Len() int {
	if r.Shape == ShapePath {
		return len(r.Approaches)
	}
	return len(r.Objects)
}

func (r Results) Headers() []string {
	if r.Shape == ShapePath {
		return []string{"name", "date", "miss distance (km)"}
	}
	return []string{"id", "name", "diameter min (km)", "hazardous"}
}

func (r Results) Values() [][]string {
	var values [][]string

	if r.Shape == ShapePath {
		for _, approach := range r.Approaches {
			values = append(values, []string{
				approach.NEOName,
				approach.Date,
				strconv.FormatFloat(approach.MissDistanceKM, 'f', -1, 64),
			})
		}
		return values
	}

	for _, neo := range r.Objects {
		values = append(values, []string{
			neo.ID,
			neo.Name,
			strconv.FormatFloat(neo.DiameterMinKM, 'f', -1, 64),
			strconv.FormatBool(neo.Hazardous),
		})
	}
	return values
}
