// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/hearthshell/hearth/internal/tui/styles"
)

const helpMarkdown = `# hearth

hearth is a keyboard-first shell for your terminal desktop.

## Launcher

Type to search across apps and panels. Matching is fuzzy: ` + "`trm`" + `
finds **Terminal**. Results rank pinned entries first, then your most
recent launches, then the most used.

| Key | Action |
|-----|--------|
| Enter | Launch the highlighted entry |
| ↑ / ↓ | Move the highlight (wraps around) |
| Tab / Shift+Tab | Cycle the category filter |
| Ctrl+F | Pin or unpin the highlighted entry |
| Ctrl+G | Switch between grid and list view |
| Esc | Back to the hub |

## Badges

- ` + "`●`" + ` the entry has an open window
- ` + "`★`" + ` the entry is pinned

## CLI

Every launcher operation is also available headless, e.g.
` + "`hearth search term`" + ` or ` + "`hearth open terminal`" + `. Add
` + "`--json`" + ` for machine-readable output.
`

// Help renders the usage guide through a scrollable viewport.
type Help struct {
	styles   *styles.Styles
	viewport viewport.Model
}

// NewHelp creates the help model with pre-rendered content.
func NewHelp(styleConfig *styles.Styles) *Help {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		renderer, _ = glamour.NewTermRenderer()
	}

	content := helpMarkdown
	if renderer != nil {
		if rendered, err := renderer.Render(helpMarkdown); err == nil {
			content = rendered
		}
	}

	viewPort := viewport.New(80, 20)
	viewPort.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styleConfig.Primary).
		Padding(1)
	viewPort.SetContent(content)

	return &Help{
		styles:   styleConfig,
		viewport: viewPort,
	}
}

// Init initializes the help model.
func (m *Help) Init() tea.Cmd {
	return nil
}

// Update handles messages for the Help model.
func (m *Help) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case KeyEsc, "q":
			return m, func() tea.Msg {
				return NavigateMsg{Screen: HubScreen}
			}
		case KeyCtrlC:
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = maxInt(msg.Height-4, minListHeight)

		return m, nil
	}

	var cmd tea.Cmd

	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// View renders the help screen.
func (m *Help) View() string {
	return m.viewport.View() + "\n" + m.styles.Keybinding("Esc", "Back")
}
