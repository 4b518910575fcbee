/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"github.com/dburkart/skywatch/pkg/catalog"
	"github.com/prometheus/client_golang/prometheus"
)

type catalogStatsCollector struct {
	cat *catalog.Catalog

	objects    *prometheus.Desc
	approaches *prometheus.Desc
}

func NewCatalogStatsCollector(cat *catalog.Catalog) prometheus.Collector {
	return &catalogStatsCollector{
		cat: cat,
		objects: prometheus.NewDesc(
			"skywatch_catalog_objects",
			"Number of unique near-earth objects in the catalog.",
			nil, nil,
		),
		approaches: prometheus.NewDesc(
			"skywatch_catalog_approaches",
			"Number of close approaches in the catalog.",
			nil, nil,
		),
	}
}

// Describe implements Collector.
func (c *catalogStatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.objects
	ch <- c.approaches
}

// Collect implements Collector.
func (c *catalogStatsCollector) Collect(ch chan<- prometheus.Metric) {
	objects, approaches := c.cat.Size()
	ch <- prometheus.MustNewConstMetric(c.objects, prometheus.GaugeValue, float64(objects))
	ch <- prometheus.MustNewConstMetric(c.approaches, prometheus.GaugeValue, float64(approaches))
}
