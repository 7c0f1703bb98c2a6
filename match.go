// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmatch

package pathmatch

// MatchPath matches candidate against every pattern and returns the most specific match.
//
// Patterns are compiled on every call. When several patterns produce equal
// scores, the earliest one wins. It reports false when no pattern matched;
// a malformed pattern is returned as error.
func MatchPath(candidate string, patterns []string, opts Options) (MatchResult, bool, error) {
	var (
		best  MatchResult
		found bool
	)

	for _, pattern := range patterns {
		p, err := NewParser(pattern, opts)
		if err != nil {
			return MatchResult{}, false, err
		}

		res, ok := p.Parse(candidate)
		if !ok {
			continue
		}

		if !found || CompareScores(res.Score, best.Score) < 0 {
			best = res
			found = true
		}
	}

	return best, found, nil
}

// GeneratePath builds a URL for pattern from params.
func GeneratePath(pattern string, params Params) (string, error) {
	p, err := NewParser(pattern, Options{})
	if err != nil {
		return "", err
	}

	return p.Compile(params)
}
