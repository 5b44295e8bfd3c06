// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"context"
)

// AppSource discovers dynamically installed applications. The source is
// advisory: a failing source degrades the catalog to builtins only.
type AppSource interface {
	// InstalledEntries returns descriptors for all discovered apps.
	InstalledEntries(ctx context.Context) ([]EntryDescriptor, error)
}

// PreferenceService persists user launcher state. Both directions are
// best-effort; callers must tolerate failure.
type PreferenceService interface {
	// Load retrieves the stored preferences.
	Load(ctx context.Context) (*Preferences, error)

	// Save stores the preferences.
	Save(ctx context.Context, prefs *Preferences) error
}

// UsageService exposes per-entry invocation history.
type UsageService interface {
	// History returns all usage records keyed by entry identifier.
	History(ctx context.Context) (map[string]UsageRecord, error)

	// Record reports a single invocation of an entry.
	Record(ctx context.Context, entryID string) error
}

// WindowRegistry exposes the titles of currently open windows. Titles
// are compared case-insensitively against entry names to compute the
// running badge.
type WindowRegistry interface {
	// OpenTitles returns the titles of all open windows.
	OpenTitles(ctx context.Context) ([]string, error)
}

// OutputPort abstracts CLI result output so command handlers stay
// independent of the text/JSON formatting choice.
type OutputPort interface {
	// Result outputs the primary result of an operation.
	Result(data any) error

	// Error outputs an error message.
	Error(message string) error

	// Info outputs a progress or informational message.
	Info(message string) error
}
