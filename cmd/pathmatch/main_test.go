// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmatch

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/pathmatch"
	"github.com/woozymasta/pathmatch/internal/config"
)

func testConfig() config.Config {
	return config.Config{LogLevel: "info", LogFormat: "text", Output: "json"}
}

// run executes root command with args and returns stdout and stderr.
func run(t *testing.T, cfg config.Config, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(cfg)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeRoutes(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestMatchInlinePatterns(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, testConfig(), "match", "/users/5", "/users/*", "/users/:id")
	require.NoError(t, err)

	var res pathmatch.MatchResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "/users/:id", res.Path)
	assert.Equal(t, []pathmatch.Weight{10, 6}, res.Score)
	assert.Equal(t, "5", res.Params["id"])
	assert.True(t, res.IsExact)
}

func TestMatchNoMatch(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, testConfig(), "match", "/a/b", "/a")
	require.ErrorIs(t, err, errNoMatch)
}

func TestMatchNoPatterns(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, testConfig(), "match", "/a")
	require.ErrorIs(t, err, errNoPatterns)
}

func TestMatchInvalidPattern(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, testConfig(), "match", "/a", "a")
	require.ErrorIs(t, err, pathmatch.ErrPatternSyntax)
}

func TestMatchRoutesFileYAMLOutput(t *testing.T) {
	t.Parallel()

	path := writeRoutes(t, "app.routes", "name=user /users/:id\nname=files /users/*\n")

	out, _, err := run(t, testConfig(), "match", "/users/5/docs", "--routes", path, "-o", "yaml")
	require.NoError(t, err)

	var rm pathmatch.RouteMatch
	require.NoError(t, yaml.Unmarshal([]byte(out), &rm))
	assert.Equal(t, "files", rm.Route.Name)
	assert.Equal(t, 1, rm.Index)
	assert.Equal(t, []pathmatch.Weight{10, 3, 3}, rm.Result.Score)
}

func TestMatchRoutesFromConfigWithDebugLog(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Routes = []string{writeRoutes(t, "routes.yaml", "routes:\n  - name: home\n    pattern: /\n    exact: true\n")}
	cfg.Output = "text"

	out, logs, err := run(t, cfg, "match", "/", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "route: home\n")
	assert.Contains(t, out, "url:   /\n")
	assert.Contains(t, logs, "routes loaded")
}

func TestMatchTextOutput(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, testConfig(), "match", "/files/a/b", "/files/*", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "path:  /files/*\nurl:   /files/a/b\nexact: true\nscore: [10 3 3]\nparam: *=a/b\n", out)
}

func TestMatchUnknownOutput(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, testConfig(), "match", "/a", "/a", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, testConfig(), "generate", "/users/:id/files/*", "id=42", "*=docs/readme.md")
	require.NoError(t, err)
	assert.Equal(t, "/users/42/files/docs/readme.md\n", out)

	_, _, err = run(t, testConfig(), "generate", "/users/:id")
	require.ErrorIs(t, err, pathmatch.ErrParamCompile)

	_, _, err = run(t, testConfig(), "generate", "/users/:id", "id")
	require.Error(t, err)

	_, _, err = run(t, testConfig(), "generate")
	require.ErrorIs(t, err, errNoPattern)
}

func TestGenerateByRouteName(t *testing.T) {
	t.Parallel()

	path := writeRoutes(t, "app.routes", "name=user /users/:id\n")

	out, _, err := run(t, testConfig(), "generate", "--route", "user", "--routes", path, "id=7")
	require.NoError(t, err)
	assert.Equal(t, "/users/7\n", out)

	_, _, err = run(t, testConfig(), "generate", "--route", "nope", "--routes", path)
	require.ErrorIs(t, err, pathmatch.ErrUnknownRoute)
}

func TestLex(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, testConfig(), "lex", "/a/:b", "-o", "text")
	require.NoError(t, err)
	assert.Equal(t, "delimiter /\nstatic    a\ndelimiter /\nparam     b\n", out)

	out, _, err = run(t, testConfig(), "lex", "/a")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"kind":"delimiter","value":"/"},{"kind":"static","value":"a"}]`, out)

	_, _, err = run(t, testConfig(), "lex", "a")
	require.ErrorIs(t, err, pathmatch.ErrPatternSyntax)
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, testConfig(), "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestParseParams(t *testing.T) {
	t.Parallel()

	params, err := parseParams([]string{"id=1", "*=/a/b/", "empty="})
	require.NoError(t, err)
	assert.Equal(t, pathmatch.Params{"id": "1", "*": []string{"a", "b"}, "empty": ""}, params)

	_, err = parseParams([]string{"=x"})
	require.Error(t, err)
}
