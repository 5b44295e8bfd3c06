// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package rest

import (
	"context"
	"fmt"

	"github.com/hearthshell/hearth/internal/domain"
)

// usageRow is the wire shape of one usage record.
type usageRow struct {
	AppID string `json:"appId"`
	domain.UsageRecord
}

// UsageService implements domain.UsageService against the usage
// history endpoint.
type UsageService struct {
	client *Client
}

// NewUsageService creates the usage client.
func NewUsageService(client *Client) *UsageService {
	return &UsageService{client: client}
}

// History fetches all usage records, reduced into a map keyed by entry
// identifier. Rows without an id are dropped.
func (s *UsageService) History(ctx context.Context) (map[string]domain.UsageRecord, error) {
	var rows []usageRow
	if err := s.client.getJSON(ctx, "/api/apps/usage", &rows); err != nil {
		return nil, fmt.Errorf("usage history: %w", err)
	}

	records := make(map[string]domain.UsageRecord, len(rows))

	for _, row := range rows {
		if row.AppID == "" {
			continue
		}

		records[row.AppID] = row.UsageRecord
	}

	return records, nil
}

// Record reports one invocation of an entry.
func (s *UsageService) Record(ctx context.Context, entryID string) error {
	payload := struct {
		AppID string `json:"appId"`
	}{AppID: entryID}

	if err := s.client.postJSON(ctx, "/api/apps/usage", payload); err != nil {
		return fmt.Errorf("record usage: %w", err)
	}

	return nil
}
