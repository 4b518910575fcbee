/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"strconv"
	"strings"

	"github.com/dburkart/skywatch/pkg/query"
	"github.com/pkg/errors"
)

// ParseQueryLine parses a shell query line of space-separated key=value
// pairs into raw query parameters. Recognized keys:
//
//	date=2015-01-01 start=2015-01-01 end=2015-02-01
//	number=10 filter=diameter:>:1.0 return=NEO
//
// filter may be given more than once. Validation is left to the query
// planner; this function only splits tokens.
//
// This function assumes there is no '\n'.
func ParseQueryLine(line string) (query.Params, error) {
	params := query.Params{}

	for _, token := range strings.Fields(line) {
		key, value, found := strings.Cut(token, "=")
		if !found || value == "" {
			return params, errors.Errorf("expected key=value, got %q", token)
		}

		switch key {
		case "date":
			params.Date = value
		case "start":
			params.StartDate = value
		case "end":
			params.EndDate = value
		case "number":
			n, err := strconv.Atoi(value)
			if err != nil {
				return params, errors.Errorf("number must be an integer, got %q", value)
			}
			params.Number = n
		case "filter":
			params.Filters = append(params.Filters, value)
		case "return":
			params.ReturnObject = value
		default:
			return params, errors.Errorf("unknown key %q", key)
		}
	}

	return params, nil
}
