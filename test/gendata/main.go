/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package main

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
)

/*
 * Generates a synthetic close-approach dataset on stdout. Handy for
 * exercising the query engine against arbitrarily large inputs:
 *
 *     go run ./test/gendata 10000 > neo_data.csv
 */

func main() {
	count := 1000
	if len(os.Args) > 1 {
		fmt.Sscanf(os.Args[1], "%d", &count)
	}

	w := csv.NewWriter(os.Stdout)
	w.Write([]string{
		"id", "name",
		"estimated_diameter_min_kilometers",
		"is_potentially_hazardous_asteroid",
		"miss_distance_kilometers",
		"close_approach_date",
		"close_approach_date_full",
	})

	epoch := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < count; i++ {
		id := uuid.NewString()
		name := fmt.Sprintf("(%d) %s", i, id[:8])
		hazardous := "False"
		if rand.Intn(10) == 0 {
			hazardous = "True"
		}

		// Objects re-approach across the year, so repeated names with
		// distinct events show up in the output
		approaches := 1 + rand.Intn(3)
		for j := 0; j < approaches; j++ {
			when := epoch.AddDate(0, 0, rand.Intn(365))
			w.Write([]string{
				id,
				name,
				fmt.Sprintf("%.4f", rand.Float64()*5),
				hazardous,
				fmt.Sprintf("%.1f", rand.Float64()*100000),
				when.Format("2006-01-02"),
				when.Format("2006-Jan-02 15:04"),
			})
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		os.Exit(1)
	}
}
