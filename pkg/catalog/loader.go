/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package catalog

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"
)

// ReadRows decodes a comma-separated dataset into header-keyed rows.
// The first record is the header; every subsequent record becomes one
// Row keyed by header name.
func ReadRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.Wrap(ErrDataLoad, "dataset is empty")
	} else if err != nil {
		return nil, errors.Wrap(ErrDataLoad, err.Error())
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrap(ErrDataLoad, err.Error())
		}

		row := make(Row, len(header))
		for i, key := range header {
			row[key] = record[i]
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// LoadCSV reads the dataset at path into the catalog.
func (c *Catalog) LoadCSV(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(ErrDataLoad, "unable to open dataset %s", path)
	}
	defer file.Close()

	rows, err := ReadRows(file)
	if err != nil {
		return err
	}

	return c.Load(rows)
}
