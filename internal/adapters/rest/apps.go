// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package rest

import (
	"context"
	"fmt"

	"github.com/hearthshell/hearth/internal/domain"
)

// AppSource implements domain.AppSource against the discovery endpoint.
type AppSource struct {
	client *Client
}

// NewAppSource creates the installed-entries source.
func NewAppSource(client *Client) *AppSource {
	return &AppSource{client: client}
}

// InstalledEntries fetches descriptors for all discovered applications.
func (s *AppSource) InstalledEntries(ctx context.Context) ([]domain.EntryDescriptor, error) {
	var descriptors []domain.EntryDescriptor
	if err := s.client.getJSON(ctx, "/api/apps/installed", &descriptors); err != nil {
		return nil, fmt.Errorf("installed entries: %w", err)
	}

	return descriptors, nil
}
