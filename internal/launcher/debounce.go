// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package launcher

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period used for query input and for
// coalescing preference writes.
const DefaultDebounce = 150 * time.Millisecond

// Debouncer runs a function only after its duration has elapsed without
// a newer call. Each call cancels the previously scheduled one, so a
// burst of events collapses into a single trailing invocation.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(duration time.Duration) *Debouncer {
	return &Debouncer{duration: duration}
}

// Debounce schedules fn after the quiet period, replacing any pending
// invocation.
func (d *Debouncer) Debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.duration, fn)
}

// Cancel discards any pending invocation. Safe to call unconditionally
// on close or teardown.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Flush cancels any pending invocation and runs fn immediately.
func (d *Debouncer) Flush(fn func()) {
	d.Cancel()
	fn()
}
