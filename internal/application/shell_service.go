// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

// Package application wires the launcher engine to the external
// collaborator ports and owns the mutable shell state.
package application

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hearthshell/hearth/internal/domain"
	"github.com/hearthshell/hearth/internal/launcher"
)

// persistTimeout bounds every background persistence call.
const persistTimeout = 3 * time.Second

// Deps collects the collaborators of the shell service. Any port may be
// nil; the corresponding data then degrades to its empty value.
type Deps struct {
	Source  domain.AppSource
	Prefs   domain.PreferenceService
	Usage   domain.UsageService
	Windows domain.WindowRegistry

	// Builtins is the static panel catalog, already bound to actions.
	Builtins []domain.Entry

	// Launch starts an installed application by id.
	Launch func(id string) error

	// SaveDebounce coalesces preference writes. Zero means the default.
	SaveDebounce time.Duration

	// MaxRecents caps the most-recently-used list. Zero means the default.
	MaxRecents int

	// DefaultView is the view mode before any preference fetch resolves.
	// Invalid or empty values fall back to the built-in default.
	DefaultView domain.ViewMode

	Log *zap.Logger
}

// ShellService orchestrates catalog refresh, search, execution and
// preference sync for the launcher. All methods are safe for concurrent
// use.
type ShellService struct {
	source  domain.AppSource
	prefs   domain.PreferenceService
	usage   domain.UsageService
	windows domain.WindowRegistry

	log          *zap.Logger
	tracker      *launcher.UsageTracker
	engine       *launcher.Engine
	saveDebounce *launcher.Debouncer
	launch       func(id string) error

	mu        sync.RWMutex
	builtins  []domain.Entry
	installed []domain.Entry
	running   launcher.TitleSet
	favorites []string
	viewMode  domain.ViewMode
}

// NewShellService creates the service. The catalog is empty until the
// first Refresh.
func NewShellService(deps Deps) *ShellService {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	debounce := deps.SaveDebounce
	if debounce <= 0 {
		debounce = launcher.DefaultDebounce
	}

	launch := deps.Launch
	if launch == nil {
		launch = func(string) error { return nil }
	}

	viewMode := deps.DefaultView
	if !viewMode.Valid() {
		viewMode = domain.DefaultPreferences().ViewMode
	}

	service := &ShellService{
		source:       deps.Source,
		prefs:        deps.Prefs,
		usage:        deps.Usage,
		windows:      deps.Windows,
		log:          log,
		tracker:      launcher.NewUsageTrackerWithLimit(deps.MaxRecents),
		engine:       launcher.NewEngine(log),
		saveDebounce: launcher.NewDebouncer(debounce),
		launch:       launch,
		builtins:     deps.Builtins,
		running:      launcher.NewTitleSet(nil),
		viewMode:     viewMode,
	}

	service.rebuildLocked()

	return service
}

// Refresh fetches installed apps, preferences, usage history and open
// windows concurrently, then swaps in a freshly built catalog. Each
// fetch degrades independently: a failed source only blanks its own
// slice of the catalog.
func (s *ShellService) Refresh(ctx context.Context) {
	var (
		group       sync.WaitGroup
		descriptors []domain.EntryDescriptor
		prefs       *domain.Preferences
		history     map[string]domain.UsageRecord
		titles      []string
	)

	fetch := func(name string, run func() error) {
		group.Add(1)

		go func() {
			defer group.Done()

			if err := run(); err != nil {
				s.log.Warn("refresh fetch degraded",
					zap.String("source", name),
					zap.Error(err),
				)
			}
		}()
	}

	if s.source != nil {
		fetch("installed", func() (err error) {
			descriptors, err = s.source.InstalledEntries(ctx)

			return err
		})
	}

	if s.prefs != nil {
		fetch("preferences", func() (err error) {
			prefs, err = s.prefs.Load(ctx)

			return err
		})
	}

	if s.usage != nil {
		fetch("usage", func() (err error) {
			history, err = s.usage.History(ctx)

			return err
		})
	}

	if s.windows != nil {
		fetch("windows", func() (err error) {
			titles, err = s.windows.OpenTitles(ctx)

			return err
		})
	}

	group.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	if history != nil || prefs != nil {
		var recents []string
		if prefs != nil {
			recents = prefs.Recent
		}

		s.tracker.Seed(history, recents)
	}

	if prefs != nil {
		s.favorites = prefs.Favorites
		if prefs.ViewMode.Valid() {
			s.viewMode = prefs.ViewMode
		}
	}

	s.installed = launcher.EntriesFromDescriptors(descriptors, s.launch)
	if titles != nil {
		s.running = launcher.NewTitleSet(titles)
	}

	s.rebuildLocked()
}

func (s *ShellService) rebuildLocked() {
	catalog := launcher.BuildCatalog(
		s.builtins,
		s.installed,
		s.running,
		launcher.NewIDSet(s.favorites),
		s.tracker.Records(),
	)
	s.engine.SetCatalog(catalog)
}

// Search runs a free-text query with an optional category filter and
// returns the results in final display order.
func (s *ShellService) Search(text string, category domain.Category) []domain.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return launcher.Rank(s.engine.Query(text, category), s.tracker.Recents())
}

// Catalog returns the full visible catalog in display order.
func (s *ShellService) Catalog() []domain.Entry {
	return s.Search("", "")
}

// Entry looks up a catalog entry by id.
func (s *ShellService) Entry(id string) (domain.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.engine.Entry(id)
}

// Execute invokes the entry's action. Usage is recorded before the
// action runs so a slow or failing action never loses the event; both
// persistence paths are asynchronous and best-effort.
func (s *ShellService) Execute(id string) error {
	s.mu.Lock()

	entry, ok := s.engine.Entry(id)
	if !ok {
		s.mu.Unlock()

		return domain.ErrEntryNotFound
	}

	s.tracker.RecordInvocation(id)
	s.rebuildLocked()
	s.mu.Unlock()

	s.persistUsage(id)
	s.schedulePreferenceSave()

	if entry.Action == nil {
		return domain.ErrNoAction
	}

	return entry.Action.Invoke()
}

// ToggleFavorite flips the favorite flag of an entry and schedules a
// preference save.
func (s *ShellService) ToggleFavorite(id string) bool {
	s.mu.Lock()

	if _, ok := s.engine.Entry(id); !ok {
		s.mu.Unlock()

		return false
	}

	favorites := make([]string, 0, len(s.favorites)+1)
	removed := false

	for _, fav := range s.favorites {
		if fav == id {
			removed = true

			continue
		}

		favorites = append(favorites, fav)
	}

	if !removed {
		favorites = append(favorites, id)
	}

	s.favorites = favorites
	s.rebuildLocked()
	s.mu.Unlock()

	s.schedulePreferenceSave()

	return !removed
}

// Favorites returns the current favorite ids.
func (s *ShellService) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	favorites := make([]string, len(s.favorites))
	copy(favorites, s.favorites)

	return favorites
}

// Recents returns the most-recent-first invocation list.
func (s *ShellService) Recents() []string {
	return s.tracker.Recents()
}

// ViewMode returns the current launcher view mode.
func (s *ShellService) ViewMode() domain.ViewMode {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.viewMode
}

// ToggleViewMode flips between grid and list and schedules a save.
func (s *ShellService) ToggleViewMode() domain.ViewMode {
	s.mu.Lock()
	s.viewMode = s.viewMode.Toggle()
	mode := s.viewMode
	s.mu.Unlock()

	s.schedulePreferenceSave()

	return mode
}

// Close flushes any pending preference write synchronously.
func (s *ShellService) Close() {
	s.saveDebounce.Flush(s.savePreferences)
}

// persistUsage reports one invocation in the background.
func (s *ShellService) persistUsage(id string) {
	if s.usage == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if err := s.usage.Record(ctx, id); err != nil {
			s.log.Warn("usage record not persisted",
				zap.String("entry", id),
				zap.Error(err),
			)
		}
	}()
}

// schedulePreferenceSave coalesces bursts of preference changes into a
// single trailing write.
func (s *ShellService) schedulePreferenceSave() {
	if s.prefs == nil {
		return
	}

	s.saveDebounce.Debounce(s.savePreferences)
}

func (s *ShellService) savePreferences() {
	if s.prefs == nil {
		return
	}

	s.mu.RLock()
	snapshot := &domain.Preferences{
		Favorites: append([]string(nil), s.favorites...),
		Recent:    s.tracker.Recents(),
		ViewMode:  s.viewMode,
	}
	s.mu.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := s.prefs.Save(ctx, snapshot); err != nil {
		s.log.Warn("preference save failed", zap.Error(err))
	}
}
