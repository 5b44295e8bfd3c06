// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package launcher

import (
	"slices"
	"sync"
	"time"

	"github.com/hearthshell/hearth/internal/domain"
)

// MaxRecents bounds the most-recently-used list fed into ranking.
const MaxRecents = 8

// UsageTracker owns the in-memory usage records and the bounded recents
// list. It is safe for concurrent use; persistence of its state is the
// caller's concern and never blocks recording.
type UsageTracker struct {
	mu      sync.Mutex
	records map[string]domain.UsageRecord
	recents []string
	limit   int
	now     func() time.Time
}

// NewUsageTracker returns an empty tracker with the default recents cap.
func NewUsageTracker() *UsageTracker {
	return NewUsageTrackerWithLimit(MaxRecents)
}

// NewUsageTrackerWithLimit returns an empty tracker with a custom
// recents cap. Non-positive limits fall back to MaxRecents.
func NewUsageTrackerWithLimit(limit int) *UsageTracker {
	if limit <= 0 {
		limit = MaxRecents
	}

	return &UsageTracker{
		records: make(map[string]domain.UsageRecord),
		limit:   limit,
		now:     time.Now,
	}
}

// Seed loads previously persisted state. Recents are deduplicated and
// truncated to the cap; counts merge by keeping the larger value so a
// stale fetch never decreases a live counter.
func (t *UsageTracker) Seed(records map[string]domain.UsageRecord, recents []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for id, record := range records {
		if existing, ok := t.records[id]; ok && existing.Count >= record.Count {
			continue
		}

		t.records[id] = record
	}

	for _, id := range recents {
		if len(t.recents) >= t.limit {
			break
		}

		if id == "" || slices.Contains(t.recents, id) {
			continue
		}

		t.recents = append(t.recents, id)
	}
}

// RecordInvocation registers one invocation of an entry: the count
// increments (starting at 1), the timestamp moves to now, and the entry
// moves to the front of the recents list.
func (t *UsageTracker) RecordInvocation(entryID string) domain.UsageRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	record := t.records[entryID]
	record.Count++
	record.LastUsed = t.now()
	t.records[entryID] = record

	t.recents = slices.DeleteFunc(t.recents, func(id string) bool {
		return id == entryID
	})
	t.recents = append([]string{entryID}, t.recents...)

	if len(t.recents) > t.limit {
		t.recents = t.recents[:t.limit]
	}

	return record
}

// Recents returns a copy of the most-recent-first id list.
func (t *UsageTracker) Recents() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return slices.Clone(t.recents)
}

// Records returns a copy of the usage map.
func (t *UsageTracker) Records() map[string]domain.UsageRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	records := make(map[string]domain.UsageRecord, len(t.records))
	for id, record := range t.records {
		records[id] = record
	}

	return records
}
