// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hearthshell/hearth/internal/tui/styles"
)

// SelectedPrefix marks the highlighted hub item.
const SelectedPrefix = "❯ "

// HubItem represents one hub menu option.
type HubItem struct {
	Title       string
	Description string
	Icon        string
	Screen      int
}

// Hub is the landing screen: logo plus the entry points into the shell.
type Hub struct {
	styles   *styles.Styles
	items    []HubItem
	cursor   int
	width    int
	height   int
	quitting bool
}

// NewHub creates the hub model.
func NewHub(styleConfig *styles.Styles) *Hub {
	items := []HubItem{
		{
			Title:       "Launcher",
			Description: "Search and start apps and panels",
			Icon:        "🔍",
			Screen:      LauncherScreen,
		},
		{
			Title:       "Settings",
			Description: "Tune launcher behaviour and appearance",
			Icon:        "⚙️",
			Screen:      SettingsScreen,
		},
		{
			Title:       "Help",
			Description: "Keybindings and usage guide",
			Icon:        "📚",
			Screen:      HelpScreen,
		},
	}

	return &Hub{
		styles: styleConfig,
		items:  items,
	}
}

// Init initializes the hub model.
func (m *Hub) Init() tea.Cmd {
	return nil
}

// Update handles messages for the Hub model.
func (m *Hub) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil
	}

	return m, nil
}

// View renders the hub content.
func (m *Hub) View() string {
	if m.quitting {
		return GoodbyeMessage
	}

	var builder strings.Builder

	builder.WriteString(m.styles.Logo())
	builder.WriteString("\n\n")

	for itemIndex, item := range m.items {
		var (
			style  lipgloss.Style
			prefix string
		)

		if itemIndex == m.cursor {
			style = m.styles.Selected
			prefix = SelectedPrefix
		} else {
			style = m.styles.Unselected
			prefix = "  "
		}

		builder.WriteString(style.Render(fmt.Sprintf("%s%s %s", prefix, item.Icon, item.Title)))
		builder.WriteString("\n")

		if itemIndex == m.cursor {
			builder.WriteString(m.styles.MutedText.Render("    " + item.Description))
			builder.WriteString("\n")
		}
	}

	content := builder.String()
	if m.width > 0 {
		content = lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Render(content)
	}

	return content
}

// SelectedScreen returns the screen of the highlighted item.
func (m *Hub) SelectedScreen() int {
	return m.items[m.cursor].Screen
}

func (m *Hub) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyCtrlC, "q", KeyEsc:
		m.quitting = true

		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

		return m, nil
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

		return m, nil
	case KeyEnter, " ":
		screen := m.items[m.cursor].Screen

		return m, func() tea.Msg {
			return NavigateMsg{Screen: screen}
		}
	}

	return m, nil
}
