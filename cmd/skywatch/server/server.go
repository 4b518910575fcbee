/*
 * Copyright (c) 2023, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"github.com/dburkart/skywatch/pkg/catalog"
	"github.com/dburkart/skywatch/pkg/server"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "server",
	Short: "Serve close-approach queries over HTTP",

	Run: func(cmd *cobra.Command, args []string) {
		logger := viper.Get("logger").(zerolog.Logger)

		cat := catalog.NewCatalog(logger)
		if err := cat.LoadCSV(viper.GetString("skywatch.dataset")); err != nil {
			logger.Fatal().Err(err).Msg("unable to load dataset")
		}

		srv := server.New(
			logger,
			cat,
			viper.GetInt("skywatch.port"),
			viper.GetInt("skywatch.prom-port"),
		)

		// Serve the query API
		go srv.ServeQueries()

		// Serve the metrics endpoint
		srv.ServeMetrics()
	},
}

func init() {
	// Flags for this command
	Command.Flags().IntP("port", "p", 8720, "Port for the query API")
	Command.Flags().Int("prom-port", 2112, "Port for the prometheus metrics endpoint")

	// Bind flags to viper
	viper.BindPFlag("skywatch.port", Command.Flags().Lookup("port"))
	viper.BindPFlag("skywatch.prom-port", Command.Flags().Lookup("prom-port"))
}
