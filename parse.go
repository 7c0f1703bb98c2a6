// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmatch

package pathmatch

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Route table line flags.
const (
	flagExact     = "exact"
	flagStrict    = "strict"
	flagNoCase    = "nocase"
	namePrefix    = "name="
	commentPrefix = "#"
)

// ParseRoutes parses a plain-text route table from reader.
//
// Semantics:
// - blank lines and "#" comments are ignored
// - each line is "[name=<name>] <pattern> [exact] [strict] [nocase]"
// - fields are separated by spaces or tabs, so patterns cannot contain them
func ParseRoutes(r io.Reader) ([]Route, error) {
	s := bufio.NewScanner(r)
	routes := make([]Route, 0, 16)
	lineNo := 0

	for s.Scan() {
		lineNo++

		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		route, err := parseRouteLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		routes = append(routes, route)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan routes: %w", err)
	}

	return routes, nil
}

// ParseRoutesString parses route table from string input.
func ParseRoutesString(src string) ([]Route, error) {
	return ParseRoutes(strings.NewReader(src))
}

// parseRouteLine parses one non-empty, non-comment route table line.
func parseRouteLine(line string) (Route, error) {
	var (
		route      Route
		hasPattern bool
	)

	for _, field := range strings.Fields(line) {
		switch {
		case strings.HasPrefix(field, namePrefix):
			if route.Name != "" {
				return Route{}, fmt.Errorf("%w: duplicate name in %q", ErrInvalidRoute, line)
			}

			route.Name = strings.TrimPrefix(field, namePrefix)
			if route.Name == "" {
				return Route{}, fmt.Errorf("%w: empty name in %q", ErrInvalidRoute, line)
			}
		case field == flagExact && hasPattern:
			route.Exact = true
		case field == flagStrict && hasPattern:
			route.Strict = true
		case field == flagNoCase && hasPattern:
			route.CaseInsensitive = true
		case !hasPattern:
			route.Pattern = field
			hasPattern = true
		default:
			return Route{}, fmt.Errorf("%w: unexpected field %q in %q", ErrInvalidRoute, field, line)
		}
	}

	if !hasPattern {
		return Route{}, fmt.Errorf("%w: missing pattern in %q", ErrInvalidRoute, line)
	}

	return route, nil
}
