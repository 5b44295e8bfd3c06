// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthshell/hearth/internal/domain"
)

func indexFixture() []domain.Entry {
	return []domain.Entry{
		{ID: "terminal", Name: "Terminal", Description: "Command-line shell session",
			Category: domain.CategorySystemTools, Tags: []string{"shell", "console"}},
		{ID: "files", Name: "File Manager", Description: "Browse and manage files",
			Category: domain.CategorySystemTools, Tags: []string{"explorer"}},
		{ID: "wifi", Name: "Wi-Fi Networks", Description: "Scan and join wireless networks",
			Category: domain.CategoryNetworkHub, Tags: []string{"wireless"}},
	}
}

func TestIndexPrefixQueryMatches(t *testing.T) {
	t.Parallel()

	index := NewIndex(indexFixture())
	matches := index.Search("term", nil)

	require.NotEmpty(t, matches)
	assert.Equal(t, "terminal", matches[0].ID)
}

func TestIndexUnrelatedQueryReturnsNothing(t *testing.T) {
	t.Parallel()

	index := NewIndex(indexFixture())

	assert.Empty(t, index.Search("xyz123", nil))
}

func TestIndexTagMatch(t *testing.T) {
	t.Parallel()

	index := NewIndex(indexFixture())
	matches := index.Search("shell", nil)

	require.NotEmpty(t, matches)
	assert.Equal(t, "terminal", matches[0].ID)
}

func TestIndexNameOutranksTagMatch(t *testing.T) {
	t.Parallel()

	entries := []domain.Entry{
		{ID: "tagged", Name: "File Manager", Tags: []string{"terminal"}},
		{ID: "named", Name: "Terminal"},
	}

	matches := NewIndex(entries).Search("terminal", nil)

	require.Len(t, matches, 2)
	assert.Equal(t, "named", matches[0].ID, "name hits outweigh tag hits")
	assert.Greater(t, matches[0].Score, matches[1].Score)
}

func TestIndexRestrictedToWorkingSet(t *testing.T) {
	t.Parallel()

	index := NewIndex(indexFixture())
	matches := index.Search("a", NewIDSet([]string{"files"}))

	for _, match := range matches {
		assert.Equal(t, "files", match.ID)
	}
}

func TestIndexEmptyQueryReturnsNothing(t *testing.T) {
	t.Parallel()

	index := NewIndex(indexFixture())

	assert.Empty(t, index.Search("", nil))
	assert.Empty(t, index.Search("   ", nil))
}

func TestIndexTiesPreserveCatalogOrder(t *testing.T) {
	t.Parallel()

	entries := []domain.Entry{
		{ID: "alpha", Name: "Notes"},
		{ID: "beta", Name: "Notes"},
	}

	matches := NewIndex(entries).Search("notes", nil)

	require.Len(t, matches, 2)
	assert.Equal(t, "alpha", matches[0].ID)
	assert.Equal(t, "beta", matches[1].ID)
}
