/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package query

import (
	"os"
	"time"

	"github.com/dburkart/skywatch/pkg/catalog"
	"github.com/dburkart/skywatch/pkg/query"
	"github.com/dburkart/skywatch/pkg/repl"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "query",
	Short: "Run a single close-approach query against a dataset",

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		output := viper.GetString("skywatch.query.output")
		if output != "csv" && output != "json" && output != "text" {
			log.Fatal().Msg("unsupported output format")
		}

		cat := catalog.NewCatalog(log)
		if err := cat.LoadCSV(viper.GetString("skywatch.dataset")); err != nil {
			log.Fatal().Err(err).Msg("unable to load dataset")
		}

		params := query.Params{
			Number:       viper.GetInt("skywatch.number"),
			Date:         viper.GetString("skywatch.date"),
			StartDate:    viper.GetString("skywatch.start"),
			EndDate:      viper.GetString("skywatch.end"),
			Filters:      viper.GetStringSlice("skywatch.filter"),
			ReturnObject: viper.GetString("skywatch.return"),
		}

		plan, err := query.BuildPlan(params)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid query")
		}

		start := time.Now()
		results, err := query.NewSearcher(cat, log).GetObjects(plan)
		if err != nil {
			log.Fatal().Err(err).Msg("query failed")
		}

		log.Debug().
			Str("results", humanize.Comma(int64(results.Len()))).
			Dur("elapsed", time.Since(start)).
			Msg("query complete")

		repl.NewOutputWriter(os.Stdout, output).Write(results)
	},
}

func init() {
	// Flags for this command
	Command.Flags().String("date", "", "Search a single approach date (YYYY-MM-DD)")
	Command.Flags().String("start", "", "Start of an inclusive approach date range")
	Command.Flags().String("end", "", "End of an inclusive approach date range")
	Command.Flags().IntP("number", "n", 10, "Maximum number of results to return")
	Command.Flags().StringArrayP("filter", "f", nil, "Attribute filter (field:op:value), repeatable")
	Command.Flags().StringP("return", "r", "NEO", "Output shape [NEO, Path]")
	Command.Flags().StringP("output", "o", "text", "Output format of results [csv, json, text]")

	// Bind flags to viper
	viper.BindPFlag("skywatch.date", Command.Flags().Lookup("date"))
	viper.BindPFlag("skywatch.start", Command.Flags().Lookup("start"))
	viper.BindPFlag("skywatch.end", Command.Flags().Lookup("end"))
	viper.BindPFlag("skywatch.number", Command.Flags().Lookup("number"))
	viper.BindPFlag("skywatch.filter", Command.Flags().Lookup("filter"))
	viper.BindPFlag("skywatch.return", Command.Flags().Lookup("return"))
	viper.BindPFlag("skywatch.query.output", Command.Flags().Lookup("output"))
}
