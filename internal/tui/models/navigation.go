// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

// Package models defines the screen models of the shell TUI and the
// navigation messages between them.
package models

// NavigateMsg is a message sent to request navigation to a specific screen.
type NavigateMsg struct {
	Screen int
	Data   any // Optional data to pass to the new screen
}

// Screen constants for navigation.
const (
	HubScreen = iota
	LauncherScreen
	SettingsScreen
	HelpScreen
)

// Key constants for common key inputs.
const (
	KeyCtrlC = "ctrl+c"
	KeyEnter = "enter"
	KeyEsc   = "esc"
)

// GoodbyeMessage is shown when the shell exits.
const GoodbyeMessage = "Until next time.\n"

// RefreshedMsg signals that a catalog refresh completed and screens
// should re-query their data.
type RefreshedMsg struct{}

// OpenedMsg signals that a cached screen model became the active screen
// again and should reset its transient state.
type OpenedMsg struct{}

// PreferencesChangedMsg signals that the settings screen committed a
// preference change.
type PreferencesChangedMsg struct{}
