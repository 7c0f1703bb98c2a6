// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmatch

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/woozymasta/pathmatch"
	"github.com/woozymasta/pathmatch/internal/config"
	"github.com/woozymasta/pathmatch/internal/logging"
)

// app is state shared by all subcommands.
type app struct {
	log       *slog.Logger
	cfg       config.Config
	logLevel  string
	logFormat string
}

func newRootCmd(cfg config.Config) *cobra.Command {
	a := &app{cfg: cfg, log: logging.Nop()}

	rootCmd := &cobra.Command{
		Use:   "pathmatch",
		Short: "Match URLs against route patterns",
		Long: `pathmatch compiles route patterns such as /users/:id or /files/* and
matches URLs against them, picking the most specific pattern.

Defaults can be set with PATHMATCH_* environment variables or a .env file:
  PATHMATCH_LOG_LEVEL, PATHMATCH_LOG_FORMAT, PATHMATCH_OUTPUT, PATHMATCH_ROUTES`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = logging.New(logging.Config{
				Output: cmd.ErrOrStderr(),
				Format: logging.ParseFormat(a.logFormat),
				Level:  logging.ParseLevel(a.logLevel),
			})
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", cfg.LogFormat, "Log format: text, json")

	rootCmd.AddCommand(
		lexCmd(a),
		matchCmd(a),
		generateCmd(a),
		versionCmd(),
	)

	return rootCmd
}

// loadRoutes loads route tables from files or globs in order.
// Later tables override earlier routes of the same name.
func (a *app) loadRoutes(specs []string) ([]pathmatch.Route, error) {
	sets := make([][]pathmatch.Route, 0, len(specs))
	for _, spec := range specs {
		routes, err := pathmatch.LoadRoutesGlob(spec)
		if err != nil {
			return nil, err
		}

		a.log.Debug("routes loaded", "source", spec, "count", len(routes))
		sets = append(sets, routes)
	}

	return pathmatch.MergeRoutes(sets...), nil
}
