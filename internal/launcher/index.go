// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package launcher

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/hearthshell/hearth/internal/domain"
)

// Field weights for the search index. Name dominates, description is
// close behind, grouping metadata trails. The weight scales the
// normalized fuzzy score before the cutoff is applied, so a weak hit on
// a low-weight field drops out while the same hit on the name survives.
const (
	weightName        = 1.0
	weightDescription = 0.8
	weightTags        = 0.6
	weightCategory    = 0.5
	weightSubcategory = 0.5
	weightKeywords    = 0.5
)

// MinScore is the normalized score below which a fuzzy match is
// discarded. Scores are scaled so 1.0 is an exact prefix match of the
// highest-weight field; prefixes and near-miss tokens land well above
// the cutoff while incidental subsequence hits in unrelated words fall
// under it.
const MinScore = 0.3

// Match is one index hit, in descending relevance order.
type Match struct {
	ID    string
	Score float64
}

type indexField struct {
	text   string
	weight float64
}

type indexDoc struct {
	id     string
	fields []indexField
}

// Index is a weighted fuzzy text index over a catalog snapshot. It is
// immutable once built; catalog changes rebuild the whole index, which
// is cheap at tens-to-hundreds of entries.
type Index struct {
	docs []indexDoc
}

// NewIndex builds an index over the searchable fields of entries.
func NewIndex(entries []domain.Entry) *Index {
	docs := make([]indexDoc, 0, len(entries))

	for _, entry := range entries {
		fields := make([]indexField, 0, 6)
		fields = append(fields, indexField{text: entry.Name, weight: weightName})

		if entry.Description != "" {
			fields = append(fields, indexField{text: entry.Description, weight: weightDescription})
		}

		if len(entry.Tags) > 0 {
			fields = append(fields, indexField{text: strings.Join(entry.Tags, " "), weight: weightTags})
		}

		fields = append(fields, indexField{text: string(entry.Category), weight: weightCategory})

		if entry.Subcategory != "" {
			fields = append(fields, indexField{text: entry.Subcategory, weight: weightSubcategory})
		}

		if len(entry.Keywords) > 0 {
			fields = append(fields, indexField{text: strings.Join(entry.Keywords, " "), weight: weightKeywords})
		}

		docs = append(docs, indexDoc{id: entry.ID, fields: fields})
	}

	return &Index{docs: docs}
}

// Search returns the entries approximately matching query, best first.
// When within is non-nil the search is restricted to those identifiers.
// Ties preserve index (catalog) order so downstream ranking stays
// deterministic.
func (ix *Index) Search(query string, within IDSet) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	perfect := perfectScore(query)
	matches := make([]Match, 0, len(ix.docs))

	for _, doc := range ix.docs {
		if within != nil && !within.Has(doc.id) {
			continue
		}

		score, ok := doc.score(query, perfect)
		if !ok || score < MinScore {
			continue
		}

		matches = append(matches, Match{ID: doc.id, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// score computes the best weighted field score for query against doc.
func (d indexDoc) score(query string, perfect float64) (float64, bool) {
	best := 0.0
	matched := false

	for _, field := range d.fields {
		results := fuzzy.Find(query, []string{field.text})
		if len(results) == 0 {
			continue
		}

		matched = true

		normalized := normalize(float64(results[0].Score), perfect)
		if weighted := normalized * field.weight; weighted > best {
			best = weighted
		}
	}

	return best, matched
}

// perfectScore is the fuzzy score of a query matched against itself,
// used as the normalization baseline for that query.
func perfectScore(query string) float64 {
	results := fuzzy.Find(query, []string{query})
	if len(results) == 0 {
		return 0
	}

	return float64(results[0].Score)
}

// normalize maps a raw fuzzy score onto a 0..1 scale where 1 is an
// exact prefix match. Scattered subsequence matches accrue penalties
// and normalize toward (or below) zero.
func normalize(score, perfect float64) float64 {
	if perfect <= 0 {
		// Degenerate queries (single separator chars) have no usable
		// baseline; any subsequence hit counts as a full match.
		return 1
	}

	normalized := score / perfect
	if normalized < 0 {
		return 0
	}

	if normalized > 1 {
		normalized = 1
	}

	return normalized
}
