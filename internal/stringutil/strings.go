// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

// Package stringutil provides string helpers shared by the launcher
// engine and the TUI renderers.
package stringutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// TitleLabel renders a kebab-case identifier as a display label, e.g.
// "ai-hub" becomes "Ai Hub".
func TitleLabel(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "-", " "))
}

// ContainsFold checks if text contains substr, ignoring case.
func ContainsFold(text, substr string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(substr))
}

// ContainsAnyFold checks if any of the provided strings contains substr,
// ignoring case.
func ContainsAnyFold(texts []string, substr string) bool {
	for _, text := range texts {
		if ContainsFold(text, substr) {
			return true
		}
	}

	return false
}

// NormalizeQuery lowercases a search query and collapses surrounding
// whitespace. An all-whitespace query normalizes to the empty string.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Truncate shortens s to the given display width, appending an ellipsis
// when anything was cut. Widths are measured in terminal cells, not
// bytes, so wide runes are handled correctly.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}

	return runewidth.Truncate(s, width, "…")
}

// PadRight extends s with spaces to the given display width.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
