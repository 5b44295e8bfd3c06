// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hearthshell/hearth/internal/domain"
	"github.com/hearthshell/hearth/internal/testutil"
)

func builtinEntries() []domain.Entry {
	return []domain.Entry{
		{
			ID:       "terminal",
			Name:     "Terminal",
			Category: domain.CategoryApplications,
			Builtin:  true,
			Action:   domain.ActionFunc(func() error { return nil }),
		},
		{
			ID:       "files",
			Name:     "Files",
			Category: domain.CategoryApplications,
			Builtin:  true,
			Action:   domain.ActionFunc(func() error { return nil }),
		},
	}
}

func happyMocks() (*testutil.MockAppSource, *testutil.MockPreferenceService, *testutil.MockUsageService, *testutil.MockWindowRegistry) {
	source := &testutil.MockAppSource{}
	source.On("InstalledEntries", mock.Anything).Return([]domain.EntryDescriptor{
		{ID: "firefox", Name: "Firefox", Category: "applications", Tags: []string{"browser"}},
	}, nil)

	prefs := &testutil.MockPreferenceService{}
	prefs.On("Load", mock.Anything).Return(&domain.Preferences{
		Favorites: []string{"files"},
		Recent:    []string{"terminal"},
		ViewMode:  domain.ViewList,
	}, nil)
	prefs.On("Save", mock.Anything, mock.Anything).Return(nil)

	usage := &testutil.MockUsageService{}
	usage.On("History", mock.Anything).Return(map[string]domain.UsageRecord{
		"terminal": {Count: 4},
	}, nil)
	usage.On("Record", mock.Anything, mock.Anything).Return(nil)

	windows := &testutil.MockWindowRegistry{}
	windows.On("OpenTitles", mock.Anything).Return([]string{"firefox"}, nil)

	return source, prefs, usage, windows
}

func newRefreshedService(t *testing.T) *ShellService {
	t.Helper()

	source, prefs, usage, windows := happyMocks()
	service := NewShellService(Deps{
		Source:       source,
		Prefs:        prefs,
		Usage:        usage,
		Windows:      windows,
		Builtins:     builtinEntries(),
		SaveDebounce: 10 * time.Millisecond,
	})
	service.Refresh(context.Background())

	return service
}

func TestRefreshBuildsAnnotatedCatalog(t *testing.T) {
	t.Parallel()

	service := newRefreshedService(t)

	catalog := service.Catalog()
	require.Len(t, catalog, 3)

	firefox, ok := service.Entry("firefox")
	require.True(t, ok)
	assert.True(t, firefox.Running, "open window title matches case-insensitively")

	files, ok := service.Entry("files")
	require.True(t, ok)
	assert.True(t, files.Favorite)

	terminal, ok := service.Entry("terminal")
	require.True(t, ok)
	assert.Equal(t, 4, terminal.UsageCount)

	assert.Equal(t, domain.ViewList, service.ViewMode())
}

func TestRefreshDegradesPerSource(t *testing.T) {
	t.Parallel()

	source := &testutil.MockAppSource{}
	source.On("InstalledEntries", mock.Anything).Return(nil, errors.New("backend down"))

	prefs := &testutil.MockPreferenceService{}
	prefs.On("Load", mock.Anything).Return(nil, errors.New("backend down"))

	usage := &testutil.MockUsageService{}
	usage.On("History", mock.Anything).Return(nil, errors.New("backend down"))

	windows := &testutil.MockWindowRegistry{}
	windows.On("OpenTitles", mock.Anything).Return(nil, errors.New("backend down"))

	service := NewShellService(Deps{
		Source:   source,
		Prefs:    prefs,
		Usage:    usage,
		Windows:  windows,
		Builtins: builtinEntries(),
	})
	service.Refresh(context.Background())

	catalog := service.Catalog()
	require.Len(t, catalog, 2, "catalog degrades to builtins only")
	assert.Empty(t, service.Favorites())
}

func TestSearchRanksFavoritesFirst(t *testing.T) {
	t.Parallel()

	service := newRefreshedService(t)

	results := service.Search("", "")
	require.NotEmpty(t, results)
	assert.Equal(t, "files", results[0].ID, "favorite outranks recents and usage")
}

func TestSearchCategoryFilter(t *testing.T) {
	t.Parallel()

	service := newRefreshedService(t)

	for _, entry := range service.Search("", domain.CategoryApplications) {
		assert.Equal(t, domain.CategoryApplications, entry.Category)
	}

	assert.Empty(t, service.Search("", domain.CategoryMediaHub))
}

func TestExecuteRecordsUsageAndRuns(t *testing.T) {
	t.Parallel()

	invoked := false
	builtins := builtinEntries()
	builtins[0].Action = domain.ActionFunc(func() error {
		invoked = true

		return nil
	})

	source, prefs, usage, windows := happyMocks()
	service := NewShellService(Deps{
		Source:       source,
		Prefs:        prefs,
		Usage:        usage,
		Windows:      windows,
		Builtins:     builtins,
		SaveDebounce: 10 * time.Millisecond,
	})
	service.Refresh(context.Background())

	require.NoError(t, service.Execute("terminal"))
	assert.True(t, invoked)
	assert.Equal(t, []string{"terminal"}, service.Recents())

	terminal, _ := service.Entry("terminal")
	assert.Equal(t, 5, terminal.UsageCount, "seeded count incremented")

	assert.Eventually(t, func() bool {
		return len(usage.Calls) > 1
	}, time.Second, 10*time.Millisecond, "invocation reported to usage service")
}

func TestExecuteFailingActionStillCounts(t *testing.T) {
	t.Parallel()

	builtins := builtinEntries()
	builtins[1].Action = domain.ActionFunc(func() error {
		return errors.New("spawn failed")
	})

	service := NewShellService(Deps{Builtins: builtins})

	require.Error(t, service.Execute("files"))

	files, _ := service.Entry("files")
	assert.Equal(t, 1, files.UsageCount, "usage recorded before the action ran")
}

func TestExecuteUnknownEntry(t *testing.T) {
	t.Parallel()

	service := NewShellService(Deps{Builtins: builtinEntries()})

	err := service.Execute("ghost")
	require.ErrorIs(t, err, domain.ErrEntryNotFound)
	assert.Empty(t, service.Recents())
}

func TestToggleFavorite(t *testing.T) {
	t.Parallel()

	service := NewShellService(Deps{Builtins: builtinEntries()})

	assert.True(t, service.ToggleFavorite("terminal"))
	assert.Equal(t, []string{"terminal"}, service.Favorites())

	terminal, _ := service.Entry("terminal")
	assert.True(t, terminal.Favorite)

	assert.False(t, service.ToggleFavorite("terminal"))
	assert.Empty(t, service.Favorites())

	assert.False(t, service.ToggleFavorite("ghost"), "unknown ids are rejected")
}

func TestToggleViewMode(t *testing.T) {
	t.Parallel()

	service := NewShellService(Deps{Builtins: builtinEntries()})

	assert.Equal(t, domain.ViewGrid, service.ViewMode())
	assert.Equal(t, domain.ViewList, service.ToggleViewMode())
	assert.Equal(t, domain.ViewGrid, service.ToggleViewMode())
}

func TestConfiguredRecentsLimit(t *testing.T) {
	t.Parallel()

	service := NewShellService(Deps{
		Builtins:   builtinEntries(),
		MaxRecents: 1,
	})

	require.NoError(t, service.Execute("terminal"))
	require.NoError(t, service.Execute("files"))

	assert.Equal(t, []string{"files"}, service.Recents())
}

func TestConfiguredDefaultView(t *testing.T) {
	t.Parallel()

	service := NewShellService(Deps{
		Builtins:    builtinEntries(),
		DefaultView: domain.ViewList,
	})
	assert.Equal(t, domain.ViewList, service.ViewMode())

	fallback := NewShellService(Deps{
		Builtins:    builtinEntries(),
		DefaultView: domain.ViewMode("table"),
	})
	assert.Equal(t, domain.ViewGrid, fallback.ViewMode())
}

func TestPreferenceSavesAreCoalesced(t *testing.T) {
	t.Parallel()

	prefs := &testutil.MockPreferenceService{}
	prefs.On("Save", mock.Anything, mock.Anything).Return(nil)

	service := NewShellService(Deps{
		Prefs:        prefs,
		Builtins:     builtinEntries(),
		SaveDebounce: 50 * time.Millisecond,
	})

	service.ToggleFavorite("terminal")
	service.ToggleViewMode()
	service.ToggleFavorite("files")

	assert.Eventually(t, func() bool {
		return len(prefs.Calls) == 1
	}, time.Second, 10*time.Millisecond, "burst of changes collapses into one save")
}

func TestCloseFlushesPendingSave(t *testing.T) {
	t.Parallel()

	saved := make(chan *domain.Preferences, 1)

	prefs := &testutil.MockPreferenceService{}
	prefs.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		if snapshot, ok := args.Get(1).(*domain.Preferences); ok {
			saved <- snapshot
		}
	}).Return(nil)

	service := NewShellService(Deps{
		Prefs:        prefs,
		Builtins:     builtinEntries(),
		SaveDebounce: time.Hour,
	})

	service.ToggleFavorite("terminal")
	service.Close()

	select {
	case snapshot := <-saved:
		assert.Equal(t, []string{"terminal"}, snapshot.Favorites)
	default:
		t.Fatal("Close did not flush the pending preference save")
	}
}
