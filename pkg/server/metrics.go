/*
 * Copyright (c) 2023, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsStore interface {
	Registry() *prometheus.Registry
	RegisterCollector(c prometheus.Collector)
	Handler() http.Handler

	// Collection
	IncQueries(shape, mode string)
	ObserveResponseNS(shape, mode string, t int64)
}

type metricsStore struct {
	registry   *prometheus.Registry
	Queries    *prometheus.CounterVec
	ResponseNS *prometheus.HistogramVec
}

var (
	ShapeLabel = "shape"
	ModeLabel  = "mode"
)

func NewMetricsStore() MetricsStore {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsAll),
		),
	)

	buckets := []float64{}
	for i := 1; i < 20; i++ {
		buckets = append(buckets, float64(2*i*int(time.Millisecond)))
	}

	factory := promauto.With(reg)
	return &metricsStore{
		registry: reg,
		Queries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "skywatch_queries",
			Help: "Query counts by output shape and date-search mode",
		}, []string{ShapeLabel, ModeLabel}),
		ResponseNS: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "skywatch_response_ns",
			Help:    "Response times for queries made against the catalog",
			Buckets: buckets,
		}, []string{ShapeLabel, ModeLabel}),
	}
}

func (ms *metricsStore) Registry() *prometheus.Registry {
	return ms.registry
}

func (ms *metricsStore) RegisterCollector(c prometheus.Collector) {
	ms.registry.MustRegister(c)
}

func (ms *metricsStore) Handler() http.Handler {
	return promhttp.HandlerFor(ms.Registry(), promhttp.HandlerOpts{Registry: ms.Registry()})
}

func (ms *metricsStore) IncQueries(shape, mode string) {
	ms.Queries.With(prometheus.Labels{ShapeLabel: shape, ModeLabel: mode}).Inc()
}

func (ms *metricsStore) ObserveResponseNS(shape, mode string, t int64) {
	ms.ResponseNS.
		With(prometheus.Labels{ShapeLabel: shape, ModeLabel: mode}).
		Observe(float64(t))
}
