// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesFixedOrder(t *testing.T) {
	t.Parallel()

	cats := Categories()
	require.Len(t, cats, 8)
	assert.Equal(t, CategoryControlCenter, cats[0])
	assert.Equal(t, CategoryNetworkHub, cats[7])

	for _, cat := range cats {
		assert.True(t, cat.Valid(), "category %q should be valid", cat)
	}
}

func TestCategoryValidRejectsUnknown(t *testing.T) {
	t.Parallel()

	assert.False(t, Category("games").Valid())
	assert.False(t, Category("").Valid())
}

func TestViewModeToggle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ViewList, ViewGrid.Toggle())
	assert.Equal(t, ViewGrid, ViewList.Toggle())
	assert.True(t, ViewGrid.Valid())
	assert.True(t, ViewList.Valid())
	assert.False(t, ViewMode("table").Valid())
}

func TestActionFuncInvoke(t *testing.T) {
	t.Parallel()

	calls := 0
	action := ActionFunc(func() error {
		calls++

		return nil
	})

	require.NoError(t, action.Invoke())
	assert.Equal(t, 1, calls)

	wantErr := errors.New("surface unavailable")
	failing := ActionFunc(func() error { return wantErr })
	assert.ErrorIs(t, failing.Invoke(), wantErr)
}

func TestDefaultPreferences(t *testing.T) {
	t.Parallel()

	prefs := DefaultPreferences()
	require.NotNil(t, prefs)
	assert.Empty(t, prefs.Favorites)
	assert.Empty(t, prefs.Recent)
	assert.Equal(t, ViewGrid, prefs.ViewMode)
}

func TestParseViewMode(t *testing.T) {
	t.Parallel()

	mode, err := ParseViewMode("list")
	require.NoError(t, err)
	assert.Equal(t, ViewList, mode)

	_, err = ParseViewMode("table")
	assert.ErrorIs(t, err, ErrUnknownViewMode)

	_, err = ParseViewMode("")
	assert.ErrorIs(t, err, ErrUnknownViewMode)
}
