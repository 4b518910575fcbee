/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andreyvit/diff"
)

type fakePrintable struct{}

func (fakePrintable) Headers() []string {
	return []string{"id", "name", "diameter min (km)", "hazardous"}
}

func (fakePrintable) Values() [][]string {
	return [][]string{
		{"1", "Eros", "0.5", "false"},
		{"2", "Apophis", "2", "true"},
	}
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer

	NewOutputWriter(&buf, "csv").Write(fakePrintable{})

	expected := strings.Join([]string{
		"id,name,diameter min (km),hazardous",
		"1,Eros,0.5,false",
		"2,Apophis,2,true",
		"",
	}, "\n")

	if actual := buf.String(); actual != expected {
		t.Errorf("csv output mismatch:\n%s", diff.LineDiff(expected, actual))
	}
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer

	NewOutputWriter(&buf, "text").Write(fakePrintable{})

	rendered := buf.String()
	for _, want := range []string{"Eros", "Apophis", "2"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("expected rendered table to contain %q:\n%s", want, rendered)
		}
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer

	NewOutputWriter(&buf, "json").Write(fakePrintable{})

	if !strings.Contains(buf.String(), "{}") {
		// fakePrintable has no exported fields, so the encoding is empty
		t.Errorf("unexpected json output: %s", buf.String())
	}
}

func TestUnknownFormatFallsBackToText(t *testing.T) {
	if _, ok := NewOutputWriter(&bytes.Buffer{}, "yaml").(TextWriter); !ok {
		t.Error("expected the text writer for unknown formats")
	}
}
