/*
 * Copyright (c) 2023, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dburkart/skywatch/pkg/catalog"
	"github.com/dburkart/skywatch/pkg/server"
	"github.com/rs/zerolog"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	cat := catalog.NewCatalog(zerolog.Nop())
	err := cat.Load([]catalog.Row{
		{
			catalog.FieldID:           "1",
			catalog.FieldName:         "Eros",
			catalog.FieldDiameterMin:  "0.5",
			catalog.FieldHazardous:    "False",
			catalog.FieldMissDistance: "10000",
			catalog.FieldDate:         "2015-01-01",
			catalog.FieldDateFull:     "2015-Jan-01 10:00",
		},
		{
			catalog.FieldID:           "2",
			catalog.FieldName:         "Apophis",
			catalog.FieldDiameterMin:  "2.0",
			catalog.FieldHazardous:    "True",
			catalog.FieldMissDistance: "90000",
			catalog.FieldDate:         "2015-01-01",
			catalog.FieldDateFull:     "2015-Jan-01 12:00",
		},
	})
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	srv := server.New(zerolog.Nop(), cat, 0, 0)
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

type queryResponse struct {
	Shape   string
	Objects []struct {
		Name          string
		DiameterMinKM float64
	}
}

func TestQueryEndpoint(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Get(ts.URL + "/v1/query?date=2015-01-01&number=10&filter=diameter:%3E:1.0")
	if err != nil {
		t.Fatalf("unexpected request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var decoded queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("unable to decode response: %v", err)
	}
	if len(decoded.Objects) != 1 || decoded.Objects[0].Name != "Apophis" {
		t.Errorf("expected [Apophis], got %+v", decoded.Objects)
	}
}

func TestQueryEndpointAbsentDate(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Get(ts.URL + "/v1/query?date=1999-12-31&number=10")
	if err != nil {
		t.Fatalf("unexpected request error: %v", err)
	}
	defer resp.Body.Close()

	// Absent dates are empty results, never errors
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestQueryEndpointRejectsBadSpec(t *testing.T) {
	ts := testServer(t)

	for _, url := range []string{
		"/v1/query?number=10",
		"/v1/query?date=2015-01-01",
		"/v1/query?date=2015-01-01&number=nope",
		"/v1/query?date=2015-01-01&number=10&return_object=Orbit",
		"/v1/query?start_date=2015-02-01&end_date=2015-01-01&number=10",
	} {
		resp, err := http.Get(ts.URL + url)
		if err != nil {
			t.Fatalf("unexpected request error: %v", err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", url, resp.StatusCode)
		}
	}
}
