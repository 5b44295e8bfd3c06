// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

// Package config loads and stores hearth's local configuration from
// the XDG config directory.
package config

import (
	"os"
	"path/filepath"
)

// GetXDGConfigHome returns the XDG config directory.
func GetXDGConfigHome() string {
	return GetXDGConfigHomeWithEnv(os.Getenv("XDG_CONFIG_HOME"))
}

// GetXDGConfigHomeWithEnv returns the XDG config directory with a custom
// environment override for testing.
func GetXDGConfigHomeWithEnv(xdgConfigHome string) string {
	if xdgConfigHome != "" {
		return xdgConfigHome
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config")
	}

	return ""
}

// GetXDGStateHome returns the XDG state directory, used for logs.
func GetXDGStateHome() string {
	return GetXDGStateHomeWithEnv(os.Getenv("XDG_STATE_HOME"))
}

// GetXDGStateHomeWithEnv returns the XDG state directory with a custom
// environment override for testing.
func GetXDGStateHomeWithEnv(xdgStateHome string) string {
	if xdgStateHome != "" {
		return xdgStateHome
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state")
	}

	return ""
}

// GetConfigPath returns the path of hearth's configuration file.
func GetConfigPath() string {
	return filepath.Join(GetXDGConfigHome(), "hearth", "hearth.toml")
}

// GetStatePath returns the path of a file under hearth's state directory.
func GetStatePath(name string) string {
	return filepath.Join(GetXDGStateHome(), "hearth", name)
}
