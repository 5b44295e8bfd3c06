// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

// Package testutil provides testify mocks for the domain ports.
package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hearthshell/hearth/internal/domain"
)

// MockAppSource mocks the AppSource port.
type MockAppSource struct {
	mock.Mock
}

// InstalledEntries mocks installed-app discovery.
func (m *MockAppSource) InstalledEntries(ctx context.Context) ([]domain.EntryDescriptor, error) {
	args := m.Called(ctx)
	if result := args.Get(0); result != nil {
		descriptors, ok := result.([]domain.EntryDescriptor)
		if !ok {
			return nil, args.Error(1)
		}

		return descriptors, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockPreferenceService mocks the PreferenceService port.
type MockPreferenceService struct {
	mock.Mock
}

// Load mocks preference retrieval.
func (m *MockPreferenceService) Load(ctx context.Context) (*domain.Preferences, error) {
	args := m.Called(ctx)
	if result := args.Get(0); result != nil {
		prefs, ok := result.(*domain.Preferences)
		if !ok {
			return nil, args.Error(1)
		}

		return prefs, args.Error(1)
	}

	return nil, args.Error(1)
}

// Save mocks preference storage.
func (m *MockPreferenceService) Save(ctx context.Context, prefs *domain.Preferences) error {
	args := m.Called(ctx, prefs)

	return args.Error(0)
}

// MockUsageService mocks the UsageService port.
type MockUsageService struct {
	mock.Mock
}

// History mocks usage history retrieval.
func (m *MockUsageService) History(ctx context.Context) (map[string]domain.UsageRecord, error) {
	args := m.Called(ctx)
	if result := args.Get(0); result != nil {
		records, ok := result.(map[string]domain.UsageRecord)
		if !ok {
			return nil, args.Error(1)
		}

		return records, args.Error(1)
	}

	return nil, args.Error(1)
}

// Record mocks usage reporting.
func (m *MockUsageService) Record(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)

	return args.Error(0)
}

// MockWindowRegistry mocks the WindowRegistry port.
type MockWindowRegistry struct {
	mock.Mock
}

// OpenTitles mocks the open-window listing.
func (m *MockWindowRegistry) OpenTitles(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if result := args.Get(0); result != nil {
		titles, ok := result.([]string)
		if !ok {
			return nil, args.Error(1)
		}

		return titles, args.Error(1)
	}

	return nil, args.Error(1)
}
