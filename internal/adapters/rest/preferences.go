// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package rest

import (
	"context"
	"fmt"

	"github.com/hearthshell/hearth/internal/domain"
)

// PreferenceService implements domain.PreferenceService against the
// persistence endpoint.
type PreferenceService struct {
	client *Client
}

// NewPreferenceService creates the preference client.
func NewPreferenceService(client *Client) *PreferenceService {
	return &PreferenceService{client: client}
}

// Load retrieves stored launcher preferences. Unknown view modes
// degrade to the default rather than failing the whole load.
func (s *PreferenceService) Load(ctx context.Context) (*domain.Preferences, error) {
	var prefs domain.Preferences
	if err := s.client.getJSON(ctx, "/api/preferences/launcher", &prefs); err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}

	if _, err := domain.ParseViewMode(string(prefs.ViewMode)); err != nil {
		prefs.ViewMode = domain.DefaultPreferences().ViewMode
	}

	return &prefs, nil
}

// Save stores launcher preferences.
func (s *PreferenceService) Save(ctx context.Context, prefs *domain.Preferences) error {
	if err := s.client.postJSON(ctx, "/api/preferences/launcher", prefs); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}

	return nil
}
