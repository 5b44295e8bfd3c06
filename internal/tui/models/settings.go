// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/hearthshell/hearth/internal/application"
	"github.com/hearthshell/hearth/internal/domain"
	"github.com/hearthshell/hearth/internal/tui/styles"
)

// Settings edits launcher preferences through a huh form.
type Settings struct {
	styles  *styles.Styles
	service *application.ShellService
	form    *huh.Form

	viewMode string
}

// NewSettings creates the settings model seeded from the live state.
func NewSettings(styleConfig *styles.Styles, service *application.ShellService) *Settings {
	model := &Settings{
		styles:   styleConfig,
		service:  service,
		viewMode: string(service.ViewMode()),
	}

	model.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Launcher view").
				Options(
					huh.NewOption("Grid", string(domain.ViewGrid)),
					huh.NewOption("List", string(domain.ViewList)),
				).
				Value(&model.viewMode),
		),
	).WithTheme(huh.ThemeCharm())

	return model
}

// Init initializes the settings model.
func (m *Settings) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the Settings model.
func (m *Settings) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case KeyEsc:
			return m, func() tea.Msg {
				return NavigateMsg{Screen: HubScreen}
			}
		case KeyCtrlC:
			return m, tea.Quit
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f

		if m.form.State == huh.StateCompleted {
			m.apply()

			return m, tea.Batch(cmd, func() tea.Msg {
				return NavigateMsg{Screen: HubScreen}
			}, func() tea.Msg {
				return PreferencesChangedMsg{}
			})
		}
	}

	return m, cmd
}

// View renders the settings form.
func (m *Settings) View() string {
	return m.styles.Title.Render("Settings") + "\n" + m.form.View()
}

// apply pushes the committed form values into the shell service.
func (m *Settings) apply() {
	selected := domain.ViewMode(m.viewMode)
	if selected.Valid() && selected != m.service.ViewMode() {
		m.service.ToggleViewMode()
	}
}
