// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

// Package domain defines the core launcher model and the ports to the
// external collaborators (installed-app discovery, preferences, usage
// history, window registry).
package domain

import (
	"fmt"
	"time"
)

// Category is the closed set of launcher groupings. Entries outside this
// set are coerced to CategoryApplications when merged into the catalog.
type Category string

// Launcher categories, in the fixed order used for Alt+digit jumps.
const (
	CategoryControlCenter Category = "control-center"
	CategoryApplications  Category = "applications"
	CategorySystemTools   Category = "system-tools"
	CategoryDevelopment   Category = "development"
	CategoryAIHub         Category = "ai-hub"
	CategorySmartHome     Category = "smart-home"
	CategoryMediaHub      Category = "media-hub"
	CategoryNetworkHub    Category = "network-hub"
)

// Categories returns all categories in their fixed display order.
func Categories() []Category {
	return []Category{
		CategoryControlCenter,
		CategoryApplications,
		CategorySystemTools,
		CategoryDevelopment,
		CategoryAIHub,
		CategorySmartHome,
		CategoryMediaHub,
		CategoryNetworkHub,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}

	return false
}

// Action is the capability an entry carries across the component
// boundary. The launcher never inspects what an action does; its only
// contract is that one Enter or click invokes it exactly once.
type Action interface {
	Invoke() error
}

// ActionFunc adapts a plain function to the Action interface.
type ActionFunc func() error

// Invoke calls the wrapped function.
func (f ActionFunc) Invoke() error {
	return f()
}

// Entry is one launchable item in the catalog: a built-in tool or a
// dynamically discovered application.
type Entry struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Category    Category
	Subcategory string
	Tags        []string
	Keywords    []string
	Action      Action

	Builtin bool
	Hidden  bool

	// Annotated per catalog build, never stored on the entry source.
	Running    bool
	Favorite   bool
	UsageCount int
	LastUsed   time.Time // zero value means never used
}

// EntryDescriptor is the wire shape returned by the installed-entries
// source. Descriptors are merged into the catalog after builtins.
type EntryDescriptor struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Icon     string   `json:"icon"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// UsageRecord holds the invocation history for a single entry. Counts
// only ever increase; records are never deleted during a session.
type UsageRecord struct {
	Count    int       `json:"count"`
	LastUsed time.Time `json:"lastUsed"`
}

// ViewMode selects how the launcher renders its ranked results.
type ViewMode string

// Supported view modes.
const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// Valid reports whether v is a known view mode.
func (v ViewMode) Valid() bool {
	return v == ViewGrid || v == ViewList
}

// ParseViewMode validates a persisted or configured view mode string.
func ParseViewMode(s string) (ViewMode, error) {
	mode := ViewMode(s)
	if !mode.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownViewMode, s)
	}

	return mode, nil
}

// Toggle returns the other view mode.
func (v ViewMode) Toggle() ViewMode {
	if v == ViewGrid {
		return ViewList
	}

	return ViewGrid
}

// Preferences is the user state persisted by the preference service.
type Preferences struct {
	Favorites []string `json:"favorites"`
	Recent    []string `json:"recent"`
	ViewMode  ViewMode `json:"viewMode"`
}

// DefaultPreferences returns the state used when the preference service
// is unavailable or has never been written.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Favorites: []string{},
		Recent:    []string{},
		ViewMode:  ViewGrid,
	}
}
