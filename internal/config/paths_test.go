// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetXDGConfigHomeWithEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		env      string
		expected func() string
	}{
		{
			name: "uses XDG_CONFIG_HOME when set",
			env:  "/custom/config",
			expected: func() string {
				return "/custom/config"
			},
		},
		{
			name: "falls back to home directory",
			env:  "",
			expected: func() string {
				home, _ := os.UserHomeDir()

				return filepath.Join(home, ".config")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected(), GetXDGConfigHomeWithEnv(tt.env))
		})
	}
}

func TestGetXDGStateHomeWithEnv(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/custom/state", GetXDGStateHomeWithEnv("/custom/state"))

	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, ".local", "state"), GetXDGStateHomeWithEnv(""))
}

func TestGetStatePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")

	assert.Equal(t, "/tmp/state/hearth/hearth.log", GetStatePath("hearth.log"))
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/config")

	assert.Equal(t, "/tmp/config/hearth/hearth.toml", GetConfigPath())
}
