// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmatch

package pathmatch

import "strings"

// MergeRoutes overlays route tables in order.
//
// A named route replaces the earlier route of the same name in place, so a
// later table can redefine a route without changing its priority among
// equal scores. Unnamed routes are appended.
func MergeRoutes(routeSets ...[]Route) []Route {
	total := 0
	for _, set := range routeSets {
		total += len(set)
	}

	out := make([]Route, 0, total)
	byName := make(map[string]int, total)

	for _, set := range routeSets {
		for _, route := range set {
			name := strings.TrimSpace(route.Name)
			if name == "" {
				out = append(out, route)
				continue
			}

			if i, ok := byName[name]; ok {
				out[i] = route
				continue
			}

			byName[name] = len(out)
			out = append(out, route)
		}
	}

	return out
}
