// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmatch

/*
Package pathmatch compiles route templates into anchored regular expressions
and matches URLs against them with specificity scoring.

Pattern syntax:
  - "/" separates segments
  - ":name" captures one segment into params["name"]
  - ":name(body)" captures with a custom regexp body
  - "*" captures all remaining segments into params["*"] as a list
  - any other text is a literal segment

Basic flow:
  - compile one pattern (`NewParser`)
  - match a URL (`Parser.Parse`) or build one from params (`Parser.Compile`)
  - pick the most specific of several patterns (`MatchPath`)
  - build a URL in one call (`GeneratePath`)

Every match carries a score vector: 10 per literal segment, 6 per parameter
and 3 per segment absorbed by a wildcard. `CompareScores` orders vectors so
the most specific pattern wins.

For named route tables, use `Matcher`:
  - parse routes from text (`ParseRoutes`) or YAML (`ParseRoutesYAML`)
  - optionally load them from files or globs (`LoadRoutesFile`, `LoadRoutesGlob`)
  - compile once (`NewMatcher`) and reuse (`Match` / `Generate`)

Nothing is cached by the package: every Parser and MatchResult is owned by
the caller and is read-only once returned.
*/
package pathmatch
