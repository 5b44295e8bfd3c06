// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package launcher

import (
	"github.com/hearthshell/hearth/internal/domain"
)

// OpenFunc is the window-management capability handed to the builtin
// registry. The launcher passes an opaque surface target and does not
// observe what opening it does.
type OpenFunc func(target string) error

// Builtins returns the static registry of built-in tools. The slice
// order is the canonical catalog order before ranking; identifiers are
// stable and never reused.
func Builtins(open OpenFunc) []domain.Entry {
	entry := func(id, name, desc, icon string, cat domain.Category, sub string, tags ...string) domain.Entry {
		return domain.Entry{
			ID:          id,
			Name:        name,
			Description: desc,
			Icon:        icon,
			Category:    cat,
			Subcategory: sub,
			Tags:        tags,
			Builtin:     true,
			Action: domain.ActionFunc(func() error {
				return open(id)
			}),
		}
	}

	return []domain.Entry{
		entry("terminal", "Terminal", "Command-line shell session", "",
			domain.CategorySystemTools, "shell", "shell", "console", "cli"),
		entry("files", "File Manager", "Browse and manage files", "",
			domain.CategorySystemTools, "filesystem", "files", "explorer", "directory"),
		entry("system-monitor", "System Monitor", "CPU, memory and process overview", "",
			domain.CategorySystemTools, "diagnostics", "top", "processes", "resources"),
		entry("settings", "Settings", "Shell configuration and preferences", "",
			domain.CategoryControlCenter, "", "config", "preferences", "options"),
		entry("display", "Display", "Resolution, scaling and appearance", "",
			domain.CategoryControlCenter, "appearance", "screen", "theme", "resolution"),
		entry("notifications", "Notifications", "Alerts and notification history", "",
			domain.CategoryControlCenter, "", "alerts", "messages"),
		entry("editor", "Code Editor", "Edit source files", "",
			domain.CategoryDevelopment, "editing", "code", "ide", "text"),
		entry("api-console", "API Console", "Inspect and replay backend requests", "",
			domain.CategoryDevelopment, "debugging", "http", "rest", "requests"),
		entry("ai-chat", "AI Chat", "Converse with configured assistants", "",
			domain.CategoryAIHub, "chat", "assistant", "llm", "chat"),
		entry("ai-agents", "Agent Manager", "Manage background AI agents", "",
			domain.CategoryAIHub, "agents", "automation", "tasks"),
		entry("media-library", "Media Library", "Browse the local media catalog", "",
			domain.CategoryMediaHub, "library", "music", "video", "photos"),
		entry("media-server", "Media Server", "Status of the attached media server", "",
			domain.CategoryMediaHub, "server", "streaming", "dlna"),
		entry("wifi", "Wi-Fi Networks", "Scan and join wireless networks", "",
			domain.CategoryNetworkHub, "wireless", "network", "wireless", "ssid"),
		entry("network-status", "Network Status", "Interfaces, routes and throughput", "",
			domain.CategoryNetworkHub, "diagnostics", "network", "interfaces", "bandwidth"),
		entry("devices", "Devices", "Paired smart-home devices", "",
			domain.CategorySmartHome, "devices", "home", "iot", "sensors"),
		entry("scenes", "Scenes", "Trigger smart-home scenes", "",
			domain.CategorySmartHome, "automation", "home", "automation", "lighting"),
	}
}
