// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import "errors"

// Common domain errors.
var (
	// ErrEntryNotFound is returned when an entry id is absent from the catalog.
	ErrEntryNotFound = errors.New("entry not found in catalog")

	// ErrNoAction is returned when an entry carries no launch action.
	ErrNoAction = errors.New("entry has no launch action")

	// ErrUnknownCategory is returned when a category filter is not in the closed set.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUnknownViewMode is returned when a persisted view mode is unrecognized.
	ErrUnknownViewMode = errors.New("unknown view mode")
)
