// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmatch

package pathmatch

import (
	"regexp"
	"strings"
)

// collapseSlashes replaces every run of "/" with a single "/".
func collapseSlashes(s string) string {
	if !strings.Contains(s, "//") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '/' && i > 0 && s[i-1] == '/' {
			continue
		}

		b.WriteByte(s[i])
	}

	return b.String()
}

// escapeStatic escapes literal segment text for regexp source.
func escapeStatic(s string) string {
	return regexp.QuoteMeta(s)
}

// splitSegments splits wildcard capture into segments, empty capture yields no segments.
func splitSegments(s string) []string {
	if s == "" {
		return []string{}
	}

	return strings.Split(s, "/")
}
