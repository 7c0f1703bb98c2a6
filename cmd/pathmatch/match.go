// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmatch

package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/woozymasta/pathmatch"
)

var (
	errNoMatch    = errors.New("no route matched")
	errNoPatterns = errors.New("no patterns given, pass patterns or --routes")
)

func matchCmd(a *app) *cobra.Command {
	var (
		routeFiles []string
		opts       pathmatch.Options
		output     string
	)

	cmd := &cobra.Command{
		Use:   "match <url> [pattern...]",
		Short: "Find the most specific pattern matching a URL",
		Long: `Match a URL against patterns given as arguments or loaded from route tables.

Examples:
  # Pick between inline patterns
  pathmatch match /users/5 /users/:id '/users/*'

  # Match against route tables, text or YAML
  pathmatch match /users/5 --routes routes.yaml --routes 'conf/**/*.routes'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidate, patterns := args[0], args[1:]

			files := routeFiles
			if len(files) == 0 && len(patterns) == 0 {
				files = a.cfg.Routes
			}

			if len(files) == 0 {
				if len(patterns) == 0 {
					return errNoPatterns
				}

				res, ok, err := pathmatch.MatchPath(candidate, patterns, opts)
				if err != nil {
					return err
				}

				if !ok {
					return errNoMatch
				}

				a.log.Debug("pattern matched", "url", candidate, "pattern", res.Path)
				return writeOutput(cmd.OutOrStdout(), output, res, func(w io.Writer) error {
					return writeResultText(w, res)
				})
			}

			routes, err := a.loadRoutes(files)
			if err != nil {
				return err
			}

			for _, pattern := range patterns {
				routes = append(routes, pathmatch.Route{Pattern: pattern, Options: opts})
			}

			m, err := pathmatch.NewMatcher(routes)
			if err != nil {
				return err
			}

			rm, ok := m.Match(candidate)
			if !ok {
				return errNoMatch
			}

			a.log.Debug("route matched", "url", candidate, "route", rm.Route.Name, "index", rm.Index)
			return writeOutput(cmd.OutOrStdout(), output, rm, func(w io.Writer) error {
				if rm.Route.Name != "" {
					if _, err := io.WriteString(w, "route: "+rm.Route.Name+"\n"); err != nil {
						return err
					}
				}
				return writeResultText(w, rm.Result)
			})
		},
	}

	cmd.Flags().StringArrayVarP(&routeFiles, "routes", "r", nil, "Route table files or globs (repeatable)")
	cmd.Flags().BoolVar(&opts.Exact, "exact", false, "Require patterns to consume the whole URL")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Reject optional trailing slash")
	cmd.Flags().BoolVarP(&opts.CaseInsensitive, "ignore-case", "i", false, "Match case-insensitively")
	cmd.Flags().StringVarP(&output, "output", "o", a.cfg.Output, "Output format: json, yaml, text")

	return cmd
}
