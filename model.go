// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmatch

package pathmatch

// WildcardKey is the params key holding segments captured by "*".
const WildcardKey = "*"

// Weight is the specificity weight of one pattern token in a score vector.
type Weight int

const (
	// WeightWildcard is scored once per segment absorbed by a wildcard.
	WeightWildcard Weight = 3
	// WeightParam is scored for a dynamic ":name" segment.
	WeightParam Weight = 6
	// WeightStatic is scored for a literal segment.
	WeightStatic Weight = 10
)

// Options controls pattern compilation.
//
// The zero value is case-sensitive, non-strict prefix matching.
type Options struct {
	// CaseInsensitive enables case-insensitive matching.
	CaseInsensitive bool `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty"`
	// Strict disallows the optional trailing "/" in exact and wildcard patterns.
	Strict bool `json:"strict,omitempty" yaml:"strict,omitempty"`
	// Exact requires the pattern to consume the whole URL.
	Exact bool `json:"exact,omitempty" yaml:"exact,omitempty"`
}

// Params holds captured or supplied parameter values.
//
// Values are string for named params and []string for the wildcard key.
// A named param whose group did not take part in the match is stored as
// an empty []string.
type Params map[string]any

// MatchResult is one successful pattern match.
type MatchResult struct {
	// Params are captured values by key.
	Params Params `json:"params" yaml:"params"`
	// Path is the source pattern.
	Path string `json:"path" yaml:"path"`
	// URL is the matched part of the candidate.
	URL string `json:"url" yaml:"url"`
	// Score is the specificity vector used to rank competing matches.
	Score []Weight `json:"score" yaml:"score"`
	// IsExact reports whether the whole candidate was consumed.
	IsExact bool `json:"is_exact" yaml:"is_exact"`
}

// Route is one named entry of a route table.
type Route struct {
	// Name is an optional unique route name used by Matcher.Generate.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Pattern is the route template.
	Pattern string `json:"pattern" yaml:"pattern"`
	// Options are compilation options of this route.
	Options `yaml:",inline"`
}

// RouteMatch is the best route selected by Matcher.
type RouteMatch struct {
	// Route is the matched source route.
	Route Route `json:"route" yaml:"route"`
	// Result is the match result of the route pattern.
	Result MatchResult `json:"result" yaml:"result"`
	// Index is the route index in matcher input order.
	Index int `json:"index" yaml:"index"`
}

// Get returns a string param value, or "" when key is absent or not a string.
func (p Params) Get(key string) string {
	s, _ := p[key].(string)
	return s
}

// Strings returns a list param value.
//
// A string value is returned as a one-element list, other slices have
// their elements formatted.
func (p Params) Strings(key string) []string {
	if s, ok := p[key].(string); ok {
		return []string{s}
	}

	list, _ := paramList(p[key])
	return list
}
