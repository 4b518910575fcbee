/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package shell

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/dburkart/skywatch/pkg/catalog"
	"github.com/dburkart/skywatch/pkg/query"
	"github.com/dburkart/skywatch/pkg/repl"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log zerolog.Logger

var (
	Command = &cobra.Command{
		Use:   "shell",
		Short: "Interactive terminal for querying a close-approach dataset",

		Run: func(cmd *cobra.Command, args []string) {
			log := viper.Get("logger").(zerolog.Logger)
			output := viper.GetString("skywatch.shell.output")
			if output != "csv" && output != "json" && output != "text" {
				log.Fatal().Msg("unsupported output format")
			}

			cat := catalog.NewCatalog(log)
			if err := cat.LoadCSV(viper.GetString("skywatch.dataset")); err != nil {
				log.Fatal().Err(err).Msg("unable to load dataset")
			}

			readlinePrompt(query.NewSearcher(cat, log), output)
		},
	}
)

func init() {
	log = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).
		With().
		Timestamp().
		Caller().
		Logger()

	// Flags for this command
	Command.Flags().StringP("output", "o", "text", "Output format of results [csv, json, text]")

	// Bind flags to viper
	viper.BindPFlag("skywatch.shell.output", Command.Flags().Lookup("output"))
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func makeFilterOptions() []readline.PrefixCompleterInterface {
	filterSlice := []string{
		"filter=diameter:",
		"filter=is_hazardous:",
		"filter=distance:",
	}

	ret := []readline.PrefixCompleterInterface{}
	for i := range filterSlice {
		ret = append(ret, readline.PcItem(filterSlice[i]))
	}
	return ret
}

func readlinePrompt(searcher *query.Searcher, output string) {
	// Configure the completer
	items := []readline.PrefixCompleterInterface{
		readline.PcItem("help"),
		readline.PcItem("exit"),
		readline.PcItem("date="),
		readline.PcItem("start="),
		readline.PcItem("end="),
		readline.PcItem("number="),
		readline.PcItem("return=", readline.PcItem("NEO"), readline.PcItem("Path")),
	}
	items = append(items, makeFilterOptions()...)
	completer := readline.NewPrefixCompleter(items...)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	// Configure output writer
	writer := repl.NewOutputWriter(os.Stdout, output)

	// Handle input
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}
		line := strings.TrimSpace(ln.Line)

		if strings.ToUpper(line) == "HELP" {
			fmt.Println("usage: date=YYYY-MM-DD | start=YYYY-MM-DD end=YYYY-MM-DD,")
			fmt.Println("       number=N [filter=field:op:value ...] [return=NEO|Path]")
			fmt.Println(completer.Tree("    "))
			continue
		}
		if strings.ToUpper(line) == "EXIT" {
			os.Exit(0)
		}

		params, err := repl.ParseQueryLine(line)
		if err != nil {
			log.Error().Err(err).Send()
			continue
		}

		plan, err := query.BuildPlan(params)
		if err != nil {
			log.Error().Err(err).Send()
			continue
		}

		results, err := searcher.GetObjects(plan)
		if err != nil {
			log.Error().Err(err).Send()
			continue
		}

		writer.Write(results)
		fmt.Println()
	}
	rl.Clean()
}
