// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmatch

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/woozymasta/pathmatch"
)

// Output formats.
const (
	outputJSON = "json"
	outputYAML = "yaml"
	outputText = "text"
)

// writeOutput encodes v in format, text is used for the text format.
func writeOutput(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch strings.ToLower(format) {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case outputText:
		return text(w)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// writeResultText prints one match result as plain text.
func writeResultText(w io.Writer, res pathmatch.MatchResult) error {
	if _, err := fmt.Fprintf(w, "path:  %s\nurl:   %s\nexact: %t\nscore: %v\n", res.Path, res.URL, res.IsExact, res.Score); err != nil {
		return err
	}

	keys := make([]string, 0, len(res.Params))
	for key := range res.Params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := res.Params[key]
		if list, ok := value.([]string); ok {
			value = strings.Join(list, "/")
		}

		if _, err := fmt.Fprintf(w, "param: %s=%v\n", key, value); err != nil {
			return err
		}
	}

	return nil
}
