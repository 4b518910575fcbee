/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package catalog holds the in-memory store of near-earth objects and
// their close approaches.
//
// To support optimized date searching, the catalog keeps a mapping of
// coarse approach dates to the objects recorded on that day, alongside
// a mapping of object names to the single instance of each object. The
// catalog is built once by Load and is read-only afterwards, so it can
// be shared freely between concurrent queries.
package catalog

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ErrDataLoad is the sentinel wrapped by every load failure. A load
// failure is fatal; the catalog must be considered unusable when Load
// returns an error.
var ErrDataLoad = errors.New("data load failed")

// A Row is one decoded record from the source dataset, keyed by
// column name. Rows are produced by the CSV loader, but any collaborator
// can feed the catalog as long as the required columns are present.
type Row map[string]string

// Required dataset columns.
const (
	FieldID           = "id"
	FieldName         = "name"
	FieldDiameterMin  = "estimated_diameter_min_kilometers"
	FieldHazardous    = "is_potentially_hazardous_asteroid"
	FieldMissDistance = "miss_distance_kilometers"
	FieldDate         = "close_approach_date"
	FieldDateFull     = "close_approach_date_full"
)

type Catalog struct {
	objects    map[string]*NearEarthObject
	byDate     map[string][]*NearEarthObject
	approaches []*CloseApproach

	log zerolog.Logger
}

func NewCatalog(log zerolog.Logger) *Catalog {
	return &Catalog{
		objects: make(map[string]*NearEarthObject),
		byDate:  make(map[string][]*NearEarthObject),
		log:     log,
	}
}

func (c *Catalog) field(row Row, key string) (string, error) {
	v, ok := row[key]
	if !ok {
		return "", errors.Wrapf(ErrDataLoad, "row is missing required field %q", key)
	}
	return v, nil
}

// Load populates the catalog from a sequence of decoded rows. Each row
// contributes one close approach; the owning object is looked up or
// created by name, so repeated names share a single instance. The date
// index preserves duplicates under a key -- deduplication is a query
// time concern.
//
// Load is meant to be called once per process. Calling it again appends
// duplicate approaches and is not supported.
func (c *Catalog) Load(rows []Row) error {
	for i, row := range rows {
		dateKey, err := c.field(row, FieldDate)
		if err != nil {
			return err
		}
		name, err := c.field(row, FieldName)
		if err != nil {
			return err
		}

		neo, ok := c.objects[name]
		if !ok {
			id, err := c.field(row, FieldID)
			if err != nil {
				return err
			}
			rawDiameter, err := c.field(row, FieldDiameterMin)
			if err != nil {
				return err
			}
			diameter, err := strconv.ParseFloat(rawDiameter, 64)
			if err != nil {
				return errors.Wrapf(ErrDataLoad, "row %d: bad diameter %q", i, rawDiameter)
			}
			hazardous, err := c.field(row, FieldHazardous)
			if err != nil {
				return err
			}

			neo = &NearEarthObject{
				ID:            id,
				Name:          name,
				DiameterMinKM: diameter,
				Hazardous:     hazardous == "True",
			}
			c.objects[name] = neo
		}

		rawDistance, err := c.field(row, FieldMissDistance)
		if err != nil {
			return err
		}
		distance, err := strconv.ParseFloat(rawDistance, 64)
		if err != nil {
			return errors.Wrapf(ErrDataLoad, "row %d: bad miss distance %q", i, rawDistance)
		}
		dateFull, err := c.field(row, FieldDateFull)
		if err != nil {
			return err
		}

		approach := &CloseApproach{
			NEOName:        name,
			MissDistanceKM: distance,
			Date:           dateFull,
		}
		neo.AddApproach(approach)
		c.approaches = append(c.approaches, approach)
		c.byDate[dateKey] = append(c.byDate[dateKey], neo)
	}

	c.log.Info().
		Str("rows", humanize.Comma(int64(len(rows)))).
		Str("objects", humanize.Comma(int64(len(c.objects)))).
		Msg("catalog loaded")

	return nil
}

// ByDate returns the objects recorded on the given coarse date key, in
// load order, duplicates included. Absent dates yield an empty slice,
// never an error. The returned slice is a copy; mutating it does not
// affect the index.
func (c *Catalog) ByDate(dateKey string) []*NearEarthObject {
	stored := c.byDate[dateKey]
	neos := make([]*NearEarthObject, len(stored))
	copy(neos, stored)
	return neos
}

// ByName resolves an object name to its single instance, or nil.
func (c *Catalog) ByName(name string) *NearEarthObject {
	return c.objects[name]
}

// Size reports how many unique objects and total approaches are loaded.
func (c *Catalog) Size() (objects, approaches int) {
	return len(c.objects), len(c.approaches)
}
