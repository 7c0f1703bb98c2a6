// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmatch

package pathmatch

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// RouteTable is the YAML document layout of a route table.
type RouteTable struct {
	// Routes are table entries in match-tie order.
	Routes []Route `json:"routes" yaml:"routes"`
}

// ParseRoutesYAML parses a YAML route table from reader.
//
// Document layout:
//
//	routes:
//	  - name: user
//	    pattern: /users/:id
//	    exact: true
//
// An empty document yields no routes.
func ParseRoutesYAML(r io.Reader) ([]Route, error) {
	var table RouteTable

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&table); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalidRoute, err)
	}

	for i, route := range table.Routes {
		if route.Pattern == "" {
			return nil, fmt.Errorf("%w: route %d: missing pattern", ErrInvalidRoute, i)
		}
	}

	return table.Routes, nil
}
