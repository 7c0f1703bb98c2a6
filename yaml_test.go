// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmatch

package pathmatch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoutesYAML(t *testing.T) {
	t.Parallel()

	routes, err := ParseRoutesYAML(strings.NewReader(`
routes:
  - name: home
    pattern: /
    exact: true
  - name: user
    pattern: /users/:id
    strict: true
    case_insensitive: true
  - pattern: /files/*
`))
	require.NoError(t, err)
	assert.Equal(t, []Route{
		{Name: "home", Pattern: "/", Options: Options{Exact: true}},
		{Name: "user", Pattern: "/users/:id", Options: Options{Strict: true, CaseInsensitive: true}},
		{Pattern: "/files/*"},
	}, routes)
}

func TestParseRoutesYAMLEmpty(t *testing.T) {
	t.Parallel()

	routes, err := ParseRoutesYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, routes)
}

func TestParseRoutesYAMLErrors(t *testing.T) {
	t.Parallel()

	for _, src := range []string{
		"routes:\n  - name: x\n",
		"routes:\n  - pattern: /a\n    unknown: 1\n",
		"routes: [",
	} {
		_, err := ParseRoutesYAML(strings.NewReader(src))
		require.ErrorIs(t, err, ErrInvalidRoute, "src %q", src)
	}
}
