// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package launcher

// NavState is the launcher's navigation state.
type NavState int

// Navigation states.
const (
	// Idle means the launcher overlay is closed; no index is valid.
	Idle NavState = iota
	// Browsing means the overlay is open with an index into the ranked
	// list (the list may be empty).
	Browsing
)

// Selection tracks the single selected index into the current ranked
// result list. Keyboard movement and mouse hover share this index.
// The invariant is that while Browsing with a non-empty list the index
// stays within [0, count).
type Selection struct {
	state NavState
	index int
	count int
}

// NewSelection returns a closed (Idle) selection.
func NewSelection() *Selection {
	return &Selection{state: Idle}
}

// Open transitions to Browsing over a ranked list of the given size,
// selecting the first row.
func (s *Selection) Open(resultCount int) {
	s.state = Browsing
	s.count = maxInt(resultCount, 0)
	s.index = 0
}

// Close transitions back to Idle and discards all transient state.
func (s *Selection) Close() {
	s.state = Idle
	s.count = 0
	s.index = 0
}

// Browsing reports whether the launcher overlay is open.
func (s *Selection) Browsing() bool {
	return s.state == Browsing
}

// Index returns the selected index, or -1 when no index is valid
// (Idle, or an empty result list).
func (s *Selection) Index() int {
	if s.state != Browsing || s.count == 0 {
		return -1
	}

	return s.index
}

// Count returns the size of the current ranked list.
func (s *Selection) Count() int {
	return s.count
}

// SetResults records that the ranked list identity changed (new query,
// new category or catalog rebuild) and resets the index to 0.
func (s *Selection) SetResults(count int) {
	s.count = maxInt(count, 0)
	s.index = 0
}

// Next advances the selection, wrapping at the end. No-op on an empty
// list or while Idle.
func (s *Selection) Next() {
	if s.state != Browsing || s.count == 0 {
		return
	}

	s.index = (s.index + 1) % s.count
}

// Prev retreats the selection, wrapping at the start.
func (s *Selection) Prev() {
	if s.state != Browsing || s.count == 0 {
		return
	}

	s.index = (s.index - 1 + s.count) % s.count
}

// Hover sets the index directly (mouse hover over a row). Out-of-range
// indices are ignored.
func (s *Selection) Hover(index int) {
	if s.state != Browsing || index < 0 || index >= s.count {
		return
	}

	s.index = index
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
