// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package launcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthshell/hearth/internal/domain"
)

func TestBuildCatalogPreservesBuiltinThenInstalledOrder(t *testing.T) {
	t.Parallel()

	builtins := []domain.Entry{
		{ID: "terminal", Name: "Terminal", Builtin: true},
		{ID: "files", Name: "File Manager", Builtin: true},
	}
	installed := []domain.Entry{
		{ID: "spotify", Name: "Spotify"},
		{ID: "firefox", Name: "Firefox"},
	}

	catalog := BuildCatalog(builtins, installed, nil, nil, nil)

	require.Len(t, catalog, 4)
	assert.Equal(t, []string{"terminal", "files", "spotify", "firefox"}, catalogIDs(catalog))
}

func TestBuildCatalogBuiltinWinsIdentifierCollision(t *testing.T) {
	t.Parallel()

	builtins := []domain.Entry{
		{ID: "terminal", Name: "Terminal", Builtin: true},
	}
	installed := []domain.Entry{
		{ID: "terminal", Name: "Imposter Terminal"},
		{ID: "spotify", Name: "Spotify"},
	}

	catalog := BuildCatalog(builtins, installed, nil, nil, nil)

	require.Len(t, catalog, 2)
	assert.Equal(t, "Terminal", catalog[0].Name)
	assert.True(t, catalog[0].Builtin)
}

func TestBuildCatalogAnnotatesLiveState(t *testing.T) {
	t.Parallel()

	lastUsed := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	builtins := []domain.Entry{
		{ID: "terminal", Name: "Terminal"},
		{ID: "files", Name: "File Manager"},
	}

	catalog := BuildCatalog(
		builtins,
		nil,
		NewTitleSet([]string{"TERMINAL", "Settings"}),
		NewIDSet([]string{"files"}),
		map[string]domain.UsageRecord{
			"terminal": {Count: 5, LastUsed: lastUsed},
		},
	)

	require.Len(t, catalog, 2)

	assert.True(t, catalog[0].Running, "running titles compare case-insensitively")
	assert.False(t, catalog[0].Favorite)
	assert.Equal(t, 5, catalog[0].UsageCount)
	assert.Equal(t, lastUsed, catalog[0].LastUsed)

	assert.False(t, catalog[1].Running)
	assert.True(t, catalog[1].Favorite)
	assert.Zero(t, catalog[1].UsageCount)
	assert.True(t, catalog[1].LastUsed.IsZero())
}

func TestBuildCatalogWithoutInstalledSource(t *testing.T) {
	t.Parallel()

	builtins := []domain.Entry{{ID: "terminal", Name: "Terminal"}}

	// A failed discovery fetch degrades to nil installed entries.
	catalog := BuildCatalog(builtins, nil, nil, nil, nil)

	require.Len(t, catalog, 1)
	assert.Equal(t, "terminal", catalog[0].ID)
}

func TestEntriesFromDescriptors(t *testing.T) {
	t.Parallel()

	var launched []string
	launch := func(id string) error {
		launched = append(launched, id)

		return nil
	}

	descriptors := []domain.EntryDescriptor{
		{ID: "spotify", Name: "Spotify", Category: "media-hub", Tags: []string{"music"}},
		{ID: "mystery", Name: "Mystery", Category: "not-a-category"},
		{ID: "", Name: "Nameless"},
	}

	entries := EntriesFromDescriptors(descriptors, launch)

	require.Len(t, entries, 2)
	assert.Equal(t, domain.CategoryMediaHub, entries[0].Category)
	assert.Equal(t, domain.CategoryApplications, entries[1].Category, "unknown category coerces to applications")

	require.NoError(t, entries[0].Action.Invoke())
	require.NoError(t, entries[1].Action.Invoke())
	assert.Equal(t, []string{"spotify", "mystery"}, launched, "each action launches its own id")
}

func catalogIDs(entries []domain.Entry) []string {
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ID)
	}

	return ids
}
