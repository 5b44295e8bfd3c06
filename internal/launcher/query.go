// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package launcher

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/hearthshell/hearth/internal/domain"
	"github.com/hearthshell/hearth/internal/stringutil"
)

// ErrNoIndex is returned when a search runs before any catalog was set.
var ErrNoIndex = errors.New("search index not built")

// Engine owns the search index for the current catalog snapshot and
// answers free-text queries with an optional category filter. The index
// is rebuilt wholesale on every catalog change.
type Engine struct {
	log     *zap.Logger
	entries []domain.Entry
	byID    map[string]domain.Entry
	index   *Index

	// search is the fuzzy lookup, split out so tests can fault it.
	search func(query string, within IDSet) []Match
}

// NewEngine creates an engine with an empty catalog.
func NewEngine(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}

	return &Engine{log: log}
}

// SetCatalog replaces the catalog snapshot and rebuilds the index.
func (e *Engine) SetCatalog(entries []domain.Entry) {
	e.entries = entries
	e.byID = make(map[string]domain.Entry, len(entries))

	for _, entry := range entries {
		e.byID[entry.ID] = entry
	}

	index := NewIndex(entries)
	e.index = index
	e.search = index.Search
}

// Catalog returns the current catalog snapshot.
func (e *Engine) Catalog() []domain.Entry {
	return e.entries
}

// Entry looks up a catalog entry by identifier.
func (e *Engine) Entry(id string) (domain.Entry, bool) {
	entry, ok := e.byID[id]

	return entry, ok
}

// Query returns the candidate set for a free-text query and category
// filter, in relevance order. An empty category means all categories;
// an empty or whitespace query returns the whole (category-filtered)
// working set in catalog order. Fuzzy search failures fall back to a
// case-insensitive substring match and are logged, never surfaced.
func (e *Engine) Query(text string, category domain.Category) []domain.Entry {
	working := e.workingSet(category)

	text = stringutil.NormalizeQuery(text)
	if text == "" {
		return working
	}

	matches, err := e.fuzzySearch(text, working)
	if err != nil {
		e.log.Warn("fuzzy search degraded to substring match",
			zap.String("query", text),
			zap.Error(err),
		)

		return substringMatch(working, text)
	}

	results := make([]domain.Entry, 0, len(matches))

	for _, match := range matches {
		if entry, ok := e.byID[match.ID]; ok {
			results = append(results, entry)
		}
	}

	return results
}

// workingSet filters the catalog by category and drops hidden entries,
// preserving catalog order.
func (e *Engine) workingSet(category domain.Category) []domain.Entry {
	working := make([]domain.Entry, 0, len(e.entries))

	for _, entry := range e.entries {
		if entry.Hidden {
			continue
		}

		if category != "" && entry.Category != category {
			continue
		}

		working = append(working, entry)
	}

	return working
}

// fuzzySearch runs the index search with panic containment: an index
// fault must degrade the single query cycle, not crash the shell.
func (e *Engine) fuzzySearch(text string, working []domain.Entry) (matches []Match, err error) {
	if e.search == nil {
		return nil, ErrNoIndex
	}

	defer func() {
		if r := recover(); r != nil {
			matches = nil
			err = fmt.Errorf("index search panic: %v", r)
		}
	}()

	ids := make(IDSet, len(working))
	for _, entry := range working {
		ids[entry.ID] = struct{}{}
	}

	return e.search(text, ids), nil
}

// substringMatch is the degraded matcher: case-insensitive substring
// test against name, description and tags, in working-set order.
func substringMatch(working []domain.Entry, text string) []domain.Entry {
	results := make([]domain.Entry, 0, len(working))

	for _, entry := range working {
		if stringutil.ContainsFold(entry.Name, text) ||
			stringutil.ContainsFold(entry.Description, text) ||
			stringutil.ContainsAnyFold(entry.Tags, text) {
			results = append(results, entry)
		}
	}

	return results
}
