// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmatch

package pathmatch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// LoadRoutesFile reads and parses a route table file.
//
// Files with ".yaml" or ".yml" extension are parsed as YAML, any other
// file as plain-text route table.
func LoadRoutesFile(path string) ([]Route, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open routes file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var routes []Route
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		routes, err = ParseRoutesYAML(f)
	default:
		routes, err = ParseRoutes(f)
	}

	if err != nil {
		return nil, fmt.Errorf("parse routes file %s: %w", path, err)
	}

	return routes, nil
}

// LoadRoutesFiles reads and merges route tables from files in the given order.
//
// Returned routes preserve file order and route order inside each file.
func LoadRoutesFiles(paths ...string) ([]Route, error) {
	out := make([]Route, 0, len(paths)*8)
	for _, path := range paths {
		routes, err := LoadRoutesFile(path)
		if err != nil {
			return nil, err
		}

		out = append(out, routes...)
	}

	return out, nil
}

// LoadRoutesGlob loads every route table file matching glob pattern.
//
// The pattern supports "**" for recursive matching. Files are loaded in
// lexical order of their paths. A pattern without meta characters is
// loaded as a single file.
func LoadRoutesGlob(pattern string) ([]Route, error) {
	if !hasGlobMeta(pattern) {
		return LoadRoutesFile(pattern)
	}

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("expand routes glob %q: %w", pattern, err)
	}

	sort.Strings(matches)
	return LoadRoutesFiles(matches...)
}

// hasGlobMeta reports whether pattern contains glob meta characters.
func hasGlobMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
