// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmatch

package pathmatch

import (
	"fmt"
	"slices"
	"strings"
)

// Matcher selects the most specific route of a compiled route table.
//
// Matcher is read-only after NewMatcher and safe for concurrent use.
type Matcher struct {
	// byName maps route name to index in compiled.
	byName map[string]int
	// compiled are route parsers in input order.
	compiled []*Parser
	// routes are source routes in input order.
	routes []Route
}

// NewMatcher compiles ordered routes into matcher.
func NewMatcher(routes []Route) (*Matcher, error) {
	m := &Matcher{
		byName:   make(map[string]int, len(routes)),
		compiled: make([]*Parser, 0, len(routes)),
		routes:   make([]Route, 0, len(routes)),
	}

	for i, route := range routes {
		route.Name = strings.TrimSpace(route.Name)
		if strings.TrimSpace(route.Pattern) == "" {
			return nil, fmt.Errorf("%w: route %d: empty pattern", ErrInvalidRoute, i)
		}

		if route.Name != "" {
			if prev, ok := m.byName[route.Name]; ok {
				return nil, fmt.Errorf("%w: route %d: name %q already used by route %d", ErrInvalidRoute, i, route.Name, prev)
			}

			m.byName[route.Name] = i
		}

		p, err := NewParser(route.Pattern, route.Options)
		if err != nil {
			return nil, fmt.Errorf("route %d: %w", i, err)
		}

		m.compiled = append(m.compiled, p)
		m.routes = append(m.routes, route)
	}

	return m, nil
}

// Match returns the most specific route matching candidate.
//
// Selection policy:
// - higher score wins (see CompareScores)
// - on equal scores the earliest route wins
func (m *Matcher) Match(candidate string) (RouteMatch, bool) {
	best := RouteMatch{Index: -1}

	for i, p := range m.compiled {
		res, ok := p.Parse(candidate)
		if !ok {
			continue
		}

		if best.Index < 0 || CompareScores(res.Score, best.Result.Score) < 0 {
			best = RouteMatch{
				Route:  m.routes[i],
				Result: res,
				Index:  i,
			}
		}
	}

	return best, best.Index >= 0
}

// Generate builds a URL for named route from params.
func (m *Matcher) Generate(name string, params Params) (string, error) {
	i, ok := m.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}

	return m.compiled[i].Compile(params)
}

// Routes returns source routes in input order.
func (m *Matcher) Routes() []Route {
	return slices.Clone(m.routes)
}

// Len returns number of compiled routes.
func (m *Matcher) Len() int {
	return len(m.compiled)
}
