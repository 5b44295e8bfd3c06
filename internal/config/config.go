// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is hearth's local configuration file structure.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Launcher LauncherConfig `toml:"launcher"`
	Debug    bool           `toml:"debug"`
}

// ServerConfig holds the backend collaborator settings.
type ServerConfig struct {
	BaseURL string        `toml:"base_url"`
	Timeout time.Duration `toml:"timeout"`
}

// LauncherConfig holds launcher tuning knobs.
type LauncherConfig struct {
	Debounce    time.Duration `toml:"debounce"`
	MaxRecents  int           `toml:"max_recents"`
	DefaultView string        `toml:"default_view"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL: "http://127.0.0.1:7420",
			Timeout: 5 * time.Second,
		},
		Launcher: LauncherConfig{
			Debounce:    150 * time.Millisecond,
			MaxRecents:  8,
			DefaultView: "grid",
		},
	}
}

// Load reads the configuration from path. A missing file yields the
// defaults without error; a malformed file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := Default()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.fillDefaults()

	return config, nil
}

// Save writes the configuration to path, creating parent directories.
func Save(path string, config *Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// fillDefaults replaces zero values with the defaults so a partial
// file still produces a usable configuration.
func (c *Config) fillDefaults() {
	defaults := Default()

	if c.Server.BaseURL == "" {
		c.Server.BaseURL = defaults.Server.BaseURL
	}

	if c.Server.Timeout <= 0 {
		c.Server.Timeout = defaults.Server.Timeout
	}

	if c.Launcher.Debounce <= 0 {
		c.Launcher.Debounce = defaults.Launcher.Debounce
	}

	if c.Launcher.MaxRecents <= 0 {
		c.Launcher.MaxRecents = defaults.Launcher.MaxRecents
	}

	if c.Launcher.DefaultView == "" {
		c.Launcher.DefaultView = defaults.Launcher.DefaultView
	}
}
