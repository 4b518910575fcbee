/*
 * Copyright (c) 2023, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dburkart/skywatch/pkg/catalog"
	"github.com/dburkart/skywatch/pkg/query"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Server struct {
	log     zerolog.Logger
	metrics MetricsStore

	searcher    *query.Searcher
	queryPort   int
	metricsPort int
}

func New(log zerolog.Logger, cat *catalog.Catalog, queryPort, metricsPort int) Server {
	metrics := NewMetricsStore()
	metrics.RegisterCollector(NewCatalogStatsCollector(cat))

	return Server{
		log,
		metrics,
		query.NewSearcher(cat, log),
		queryPort,
		metricsPort,
	}
}

type errResponse struct {
	Error string `json:"error"`
}

// paramsFromRequest maps URL query values onto raw query parameters.
// Validation stays with the planner; only number needs decoding here.
func paramsFromRequest(r *http.Request) (query.Params, error) {
	values := r.URL.Query()

	params := query.Params{
		Date:         values.Get("date"),
		StartDate:    values.Get("start_date"),
		EndDate:      values.Get("end_date"),
		Filters:      values["filter"],
		ReturnObject: values.Get("return_object"),
	}

	if raw := values.Get("number"); raw != "" {
		number, err := strconv.Atoi(raw)
		if err != nil {
			return params, errors.Errorf("number must be an integer, got %q", raw)
		}
		params.Number = number
	}

	return params, nil
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	params, err := paramsFromRequest(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	plan, err := query.BuildPlan(params)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	results, err := s.searcher.GetObjects(plan)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	mode := plan.DateSearch.Type.String()
	s.metrics.IncQueries(string(plan.Shape), mode)
	s.metrics.ObserveResponseNS(string(plan.Shape), mode, time.Since(start).Nanoseconds())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(results); err != nil {
		s.log.Error().Err(err).Msg("unable to write response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, err error) {
	s.log.Debug().Err(err).Msg("rejecting query")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(errResponse{Error: err.Error()})
}

// Mux returns the query API routes. Exposed for tests.
func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/query", s.handleQuery)
	return mux
}

func (s *Server) ServeQueries() {
	s.log.Info().Int("query-port", s.queryPort).Msg("listening for queries")
	err := http.ListenAndServe(fmt.Sprintf(":%d", s.queryPort), s.Mux())
	if err != nil {
		s.log.Error().Err(err).Msg("error listening and serving")
	}
}

func (s *Server) ServeMetrics() {
	s.log.Info().Int("port", s.metricsPort).Msg("/metrics endpoint started")
	http.Handle("/metrics", s.metrics.Handler())
	http.ListenAndServe(fmt.Sprintf(":%d", s.metricsPort), nil)
}
