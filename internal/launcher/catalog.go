// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

// Package launcher implements the application launcher engine: catalog
// building, fuzzy search, ranking, selection state and usage tracking.
package launcher

import (
	"strings"
	"time"

	"github.com/hearthshell/hearth/internal/domain"
)

// TitleSet is a case-insensitive set of open window titles used to
// compute the running badge.
type TitleSet map[string]struct{}

// NewTitleSet builds a TitleSet from raw window titles.
func NewTitleSet(titles []string) TitleSet {
	set := make(TitleSet, len(titles))
	for _, title := range titles {
		set[strings.ToLower(title)] = struct{}{}
	}

	return set
}

// Has reports whether a window with the given name is open. The
// comparison is case-insensitive.
func (s TitleSet) Has(name string) bool {
	_, ok := s[strings.ToLower(name)]

	return ok
}

// IDSet is a set of entry identifiers.
type IDSet map[string]struct{}

// NewIDSet builds an IDSet from a slice of ids.
func NewIDSet(ids []string) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}

// Has reports whether id is in the set.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]

	return ok
}

// BuildCatalog merges builtin and installed entries into one canonical
// collection, annotating each entry with its running status, favorite
// flag and usage history. The merge is an ordered fold: builtins are
// inserted first and always win identifier collisions, installed
// entries keep their discovery order after them.
//
// BuildCatalog is a pure transform of already-fetched inputs. A caller
// whose installed-entry source failed passes nil and gets a
// builtins-only catalog.
func BuildCatalog(
	builtins []domain.Entry,
	installed []domain.Entry,
	running TitleSet,
	favorites IDSet,
	usage map[string]domain.UsageRecord,
) []domain.Entry {
	catalog := make([]domain.Entry, 0, len(builtins)+len(installed))
	seen := make(map[string]struct{}, len(builtins)+len(installed))

	for _, entry := range builtins {
		if _, dup := seen[entry.ID]; dup {
			continue
		}

		seen[entry.ID] = struct{}{}
		catalog = append(catalog, annotate(entry, running, favorites, usage))
	}

	for _, entry := range installed {
		if _, dup := seen[entry.ID]; dup {
			// Builtins are never overwritten by discovered entries.
			continue
		}

		seen[entry.ID] = struct{}{}
		catalog = append(catalog, annotate(entry, running, favorites, usage))
	}

	return catalog
}

// EntriesFromDescriptors converts installed-app descriptors into catalog
// entries. Unknown categories are coerced to applications; the launch
// capability is supplied by the caller and closed over per entry.
func EntriesFromDescriptors(descriptors []domain.EntryDescriptor, launch func(id string) error) []domain.Entry {
	entries := make([]domain.Entry, 0, len(descriptors))

	for _, desc := range descriptors {
		if desc.ID == "" || desc.Name == "" {
			continue
		}

		category := domain.Category(desc.Category)
		if !category.Valid() {
			category = domain.CategoryApplications
		}

		id := desc.ID

		entries = append(entries, domain.Entry{
			ID:       id,
			Name:     desc.Name,
			Icon:     desc.Icon,
			Category: category,
			Tags:     desc.Tags,
			Action: domain.ActionFunc(func() error {
				return launch(id)
			}),
		})
	}

	return entries
}

// annotate fills the runtime fields of an entry from live state.
func annotate(entry domain.Entry, running TitleSet, favorites IDSet, usage map[string]domain.UsageRecord) domain.Entry {
	entry.Running = running.Has(entry.Name)
	entry.Favorite = favorites.Has(entry.ID)

	if record, ok := usage[entry.ID]; ok {
		entry.UsageCount = record.Count
		entry.LastUsed = record.LastUsed
	} else {
		entry.UsageCount = 0
		entry.LastUsed = time.Time{}
	}

	return entry
}
