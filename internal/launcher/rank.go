// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package launcher

import (
	"cmp"
	"slices"

	"github.com/hearthshell/hearth/internal/domain"
)

// Rank imposes a total order on a candidate set. The sort is stable, so
// the incoming order (search relevance, or catalog order for empty
// queries) is the final tie-break under the fixed chain:
//
//  1. favorites before non-favorites
//  2. entries on the recents list before absent ones; among two
//     recents, the more recently used (smaller recents index) first
//  3. higher usage count first
//
// Rank is pure: it returns a permutation of entries and mutates nothing.
func Rank(entries []domain.Entry, recents []string) []domain.Entry {
	ranked := slices.Clone(entries)
	slices.SortStableFunc(ranked, Comparator(recents))

	return ranked
}

// Comparator returns the ranking comparator for a given recents list.
// Exposed separately so callers that want relevance to yield to
// favorite/recency can re-sort with a different primary signal.
func Comparator(recents []string) func(a, b domain.Entry) int {
	positions := make(map[string]int, len(recents))
	for i, id := range recents {
		if _, seen := positions[id]; !seen {
			positions[id] = i
		}
	}

	return func(a, b domain.Entry) int {
		if a.Favorite != b.Favorite {
			if a.Favorite {
				return -1
			}

			return 1
		}

		posA, recentA := positions[a.ID]
		posB, recentB := positions[b.ID]

		if recentA != recentB {
			if recentA {
				return -1
			}

			return 1
		}

		if recentA && recentB && posA != posB {
			return cmp.Compare(posA, posB)
		}

		// Higher usage first.
		return cmp.Compare(b.UsageCount, a.UsageCount)
	}
}
