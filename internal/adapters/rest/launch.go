// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package rest

import (
	"context"
	"fmt"
)

// LaunchService asks the window manager to open surfaces and start
// installed applications.
type LaunchService struct {
	client *Client
}

// NewLaunchService creates the launch client.
func NewLaunchService(client *Client) *LaunchService {
	return &LaunchService{client: client}
}

// OpenSurface opens a builtin shell surface by its target id.
func (s *LaunchService) OpenSurface(ctx context.Context, target string) error {
	payload := struct {
		Target string `json:"target"`
	}{Target: target}

	if err := s.client.postJSON(ctx, "/api/windows/open", payload); err != nil {
		return fmt.Errorf("open surface %s: %w", target, err)
	}

	return nil
}

// LaunchApp starts an installed application by id.
func (s *LaunchService) LaunchApp(ctx context.Context, id string) error {
	payload := struct {
		AppID string `json:"appId"`
	}{AppID: id}

	if err := s.client.postJSON(ctx, "/api/apps/launch", payload); err != nil {
		return fmt.Errorf("launch app %s: %w", id, err)
	}

	return nil
}
