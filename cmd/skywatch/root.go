/*
 * Copyright (c) 2023, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package skywatch

import (
	"fmt"
	"os"

	"github.com/dburkart/skywatch/cmd/skywatch/query"
	"github.com/dburkart/skywatch/cmd/skywatch/server"
	"github.com/dburkart/skywatch/cmd/skywatch/shell"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "skywatch",
		Short: "Skywatch is a small and fast close-approach query engine",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
		},
		Version: Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("dataset", "d", "./neo_data.csv", "Path to the close-approach dataset")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the skywatch config file (default ./config.toml)")

	// Bind viper config to the root flags
	viper.BindPFlag("skywatch.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("skywatch.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("skywatch.dataset", rootCmd.PersistentFlags().Lookup("dataset"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("skywatch version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	// Bind viper flags to ENV variables
	viper.AutomaticEnv()

	// Register commands on the root binary command
	query.Command.Version = rootCmd.Version
	shell.Command.Version = rootCmd.Version
	server.Command.Version = rootCmd.Version
	rootCmd.AddCommand(query.Command)
	rootCmd.AddCommand(shell.Command)
	rootCmd.AddCommand(server.Command)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}
