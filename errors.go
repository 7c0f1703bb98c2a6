// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmatch

package pathmatch

import "errors"

// Sentinel errors for pathmatch operations.
var (
	// ErrPatternSyntax indicates a malformed route pattern.
	ErrPatternSyntax = errors.New("invalid pattern syntax")
	// ErrParamCompile indicates a missing or empty parameter during URL generation.
	ErrParamCompile = errors.New("cannot compile params")
	// ErrInvalidRoute indicates malformed route table input.
	ErrInvalidRoute = errors.New("invalid route")
	// ErrUnknownRoute indicates a route name that is not present in matcher.
	ErrUnknownRoute = errors.New("unknown route")
)
