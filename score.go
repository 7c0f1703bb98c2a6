// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathmatch

package pathmatch

// CompareScores orders two score vectors by specificity.
//
// It returns a negative number when a sorts before b, a positive number when
// b sorts before a and zero when both are equal. At the first differing
// position the higher weight sorts first; when one vector is a prefix of the
// other, the shorter one sorts first.
func CompareScores(a, b []Weight) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return -1
			}

			return 1
		}
	}

	return len(a) - len(b)
}

// expandScore returns prefix with n wildcard weights inserted at index at.
//
// Negative at means the pattern has no expandable wildcard.
func expandScore(prefix []Weight, at int, n int) []Weight {
	if at < 0 {
		out := make([]Weight, len(prefix))
		copy(out, prefix)
		return out
	}

	out := make([]Weight, 0, len(prefix)+n)
	out = append(out, prefix[:at]...)
	for range n {
		out = append(out, WeightWildcard)
	}

	return append(out, prefix[at:]...)
}
