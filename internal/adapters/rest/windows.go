// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package rest

import (
	"context"
	"fmt"
)

// WindowRegistry implements domain.WindowRegistry against the
// window-management endpoint.
type WindowRegistry struct {
	client *Client
}

// NewWindowRegistry creates the window registry client.
func NewWindowRegistry(client *Client) *WindowRegistry {
	return &WindowRegistry{client: client}
}

// OpenTitles returns the titles of all currently open windows.
func (r *WindowRegistry) OpenTitles(ctx context.Context) ([]string, error) {
	var windows []struct {
		Title string `json:"title"`
	}

	if err := r.client.getJSON(ctx, "/api/windows", &windows); err != nil {
		return nil, fmt.Errorf("open windows: %w", err)
	}

	titles := make([]string, 0, len(windows))
	for _, window := range windows {
		titles = append(titles, window.Title)
	}

	return titles, nil
}
