// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

// Package tui implements the shell's terminal interface following the
// tree-of-models pattern: the App owns navigation and delegates content
// to per-screen models.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/hearthshell/hearth/internal/application"
	"github.com/hearthshell/hearth/internal/tui/models"
	"github.com/hearthshell/hearth/internal/tui/styles"
)

// ErrNoTerminal is returned when the TUI is launched in a non-terminal
// environment.
var ErrNoTerminal = errors.New("TUI requires a terminal environment")

// Screen represents the TUI screens.
type Screen int

// Screen constants mirror the models package for navigation messages.
const (
	HubScreen      Screen = Screen(models.HubScreen)
	LauncherScreen Screen = Screen(models.LauncherScreen)
	SettingsScreen Screen = Screen(models.SettingsScreen)
	HelpScreen     Screen = Screen(models.HelpScreen)
)

// App is the root model. It manages screen switching and forwards
// everything else to the active content model.
type App struct {
	width         int
	height        int
	styles        *styles.Styles
	service       *application.ShellService
	debounce      time.Duration
	currentScreen Screen
	contentModel  tea.Model
	models        map[Screen]tea.Model
	quitting      bool
}

// NewApp creates the root model. The launcher opens first: it is the
// screen the shell exists for.
func NewApp(service *application.ShellService, debounce time.Duration) *App {
	app := &App{
		styles:        styles.New(),
		service:       service,
		debounce:      debounce,
		currentScreen: LauncherScreen,
		models:        make(map[Screen]tea.Model),
	}

	launcherModel := models.NewLauncher(app.styles, service, debounce)
	app.contentModel = launcherModel
	app.models[LauncherScreen] = launcherModel

	return app
}

// Run starts the TUI with the provided context.
func (a *App) Run(ctx context.Context) error {
	program := tea.NewProgram(
		a,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI application failed: %w", err)
	}

	return nil
}

// Init implements tea.Model. The catalog refresh runs off the UI loop
// and lands as a RefreshedMsg.
func (a *App) Init() tea.Cmd {
	refresh := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		a.service.Refresh(ctx)

		return models.RefreshedMsg{}
	}

	return tea.Batch(a.contentModel.Init(), refresh)
}

// Update implements tea.Model with global navigation handling.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		return a.forward(msg)

	case models.NavigateMsg:
		return a.navigate(Screen(msg.Screen))

	case models.PreferencesChangedMsg:
		// The launcher caches the view mode; rebuild it on return.
		delete(a.models, LauncherScreen)

		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.quitting = true

			return a, tea.Quit
		}

		return a.forward(msg)

	default:
		return a.forward(msg)
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return models.GoodbyeMessage
	}

	return a.contentModel.View()
}

// CurrentScreen returns the active screen (for testing).
func (a *App) CurrentScreen() Screen {
	return a.currentScreen
}

// ContentModel returns the active content model (for testing).
func (a *App) ContentModel() tea.Model {
	return a.contentModel
}

// LaunchInteractive starts the interactive shell, refusing to run
// without a terminal. Pending preference writes flush on the way out.
func LaunchInteractive(ctx context.Context, service *application.ShellService, debounce time.Duration) error {
	if !isTerminal() {
		return fmt.Errorf("terminal check failed: %w", ErrNoTerminal)
	}

	defer service.Close()

	return NewApp(service, debounce).Run(ctx)
}

// navigate switches the content model, creating and caching screen
// models on first visit.
func (a *App) navigate(screen Screen) (tea.Model, tea.Cmd) {
	model, ok := a.models[screen]
	if !ok {
		model = a.newScreenModel(screen)
		a.models[screen] = model
	}

	a.currentScreen = screen
	a.contentModel = model

	resize := tea.WindowSizeMsg{Width: a.width, Height: a.height}
	a.contentModel, _ = a.contentModel.Update(resize)
	a.contentModel, _ = a.contentModel.Update(models.OpenedMsg{})

	return a, a.contentModel.Init()
}

func (a *App) newScreenModel(screen Screen) tea.Model {
	switch screen {
	case LauncherScreen:
		return models.NewLauncher(a.styles, a.service, a.debounce)
	case SettingsScreen:
		return models.NewSettings(a.styles, a.service)
	case HelpScreen:
		return models.NewHelp(a.styles)
	case HubScreen:
		return models.NewHub(a.styles)
	default:
		return models.NewHub(a.styles)
	}
}

func (a *App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	a.contentModel, cmd = a.contentModel.Update(msg)

	return a, cmd
}

// isTerminal checks if stdout is connected to a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
