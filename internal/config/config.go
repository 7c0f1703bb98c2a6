// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmatch

// Package config loads pathmatch CLI settings from the environment.
//
// Values are read from PATHMATCH_* variables. A .env file is loaded first
// when present; variables already set in the environment win over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Prefix is prepended to every variable name.
const Prefix = "PATHMATCH_"

// DefaultEnvFile is loaded when Load gets no files.
const DefaultEnvFile = ".env"

// Config holds CLI defaults; command-line flags override them.
type Config struct {
	// LogLevel is debug, info, warn or error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// LogFormat is text or json.
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	// Output is result encoding: json, yaml or text.
	Output string `env:"OUTPUT" envDefault:"json"`
	// Routes are route table files or globs loaded by default.
	Routes []string `env:"ROUTES" envSeparator:","`
}

// Load reads env files, then parses PATHMATCH_* variables.
//
// Missing env files are ignored.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}

	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}
