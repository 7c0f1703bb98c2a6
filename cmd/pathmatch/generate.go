// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmatch

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woozymasta/pathmatch"
)

var errNoPattern = errors.New("pattern argument is required")

func generateCmd(a *app) *cobra.Command {
	var (
		routeName  string
		routeFiles []string
	)

	cmd := &cobra.Command{
		Use:   "generate <pattern> [key=value...]",
		Short: "Build a URL from a pattern and params",
		Long: `Build a URL from a pattern and key=value params.

The wildcard is set with *=a/b/c. With --route the pattern argument is
omitted and the named route of the loaded route tables is used.

Examples:
  pathmatch generate /users/:id id=42
  pathmatch generate '/files/*' '*=docs/readme.md'
  pathmatch generate --route user --routes routes.yaml id=42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := a.generate(routeName, routeFiles, args)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
			return err
		},
	}

	cmd.Flags().StringVar(&routeName, "route", "", "Route name from route tables")
	cmd.Flags().StringArrayVarP(&routeFiles, "routes", "r", nil, "Route table files or globs (repeatable)")

	return cmd
}

// generate builds a URL from inline pattern or from named route of route tables.
func (a *app) generate(routeName string, files []string, args []string) (string, error) {
	if routeName == "" {
		if len(args) == 0 {
			return "", errNoPattern
		}

		params, err := parseParams(args[1:])
		if err != nil {
			return "", err
		}

		return pathmatch.GeneratePath(args[0], params)
	}

	params, err := parseParams(args)
	if err != nil {
		return "", err
	}

	if len(files) == 0 {
		files = a.cfg.Routes
	}

	routes, err := a.loadRoutes(files)
	if err != nil {
		return "", err
	}

	m, err := pathmatch.NewMatcher(routes)
	if err != nil {
		return "", err
	}

	return m.Generate(routeName, params)
}

// parseParams converts key=value arguments to params, "*" values become segment lists.
func parseParams(args []string) (pathmatch.Params, error) {
	params := make(pathmatch.Params, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid param %q, want key=value", arg)
		}

		if key == pathmatch.WildcardKey {
			params[key] = strings.Split(strings.Trim(value, "/"), "/")
			continue
		}

		params[key] = value
	}

	return params, nil
}
