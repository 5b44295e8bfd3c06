// SPDX-FileCopyrightText: 2026 The Hearth Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hearthshell/hearth/internal/application"
	"github.com/hearthshell/hearth/internal/domain"
	"github.com/hearthshell/hearth/internal/launcher"
	"github.com/hearthshell/hearth/internal/stringutil"
	"github.com/hearthshell/hearth/internal/tui/styles"
)

// Layout constants for the launcher screen.
const (
	gridColumns   = 4
	gridCellWidth = 22
	listNameWidth = 28
	minListHeight = 5
)

// debouncedQueryMsg fires after the input quiet period. The version
// lets stale timers from superseded keystrokes drop out harmlessly.
type debouncedQueryMsg struct {
	version int
}

// entryLaunchedMsg reports the outcome of an Execute.
type entryLaunchedMsg struct {
	id  string
	err error
}

// Launcher is the search-and-launch screen: a query input over the
// ranked catalog with keyboard and hover navigation.
type Launcher struct {
	styles    *styles.Styles
	service   *application.ShellService
	input     textinput.Model
	viewport  viewport.Model
	selection *launcher.Selection

	results  []domain.Entry
	category domain.Category // empty means all categories
	viewMode domain.ViewMode

	searchVersion int
	debounce      time.Duration
	status        string
	width         int
	height        int
}

// NewLauncher creates the launcher screen bound to the shell service.
func NewLauncher(styleConfig *styles.Styles, service *application.ShellService, debounce time.Duration) *Launcher {
	if debounce <= 0 {
		debounce = launcher.DefaultDebounce
	}

	input := textinput.New()
	input.Placeholder = "Search apps and panels"
	input.Prompt = "❯ "
	input.Focus()

	viewPort := viewport.New(80, 20)

	model := &Launcher{
		styles:    styleConfig,
		service:   service,
		input:     input,
		viewport:  viewPort,
		selection: launcher.NewSelection(),
		viewMode:  service.ViewMode(),
		debounce:  debounce,
	}
	model.runQuery()
	model.selection.Open(len(model.results))

	return model
}

// Init initializes the launcher model.
func (m *Launcher) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the Launcher model.
func (m *Launcher) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case debouncedQueryMsg:
		if msg.version == m.searchVersion {
			m.runQuery()
			m.selection.SetResults(len(m.results))
		}

		return m, nil
	case OpenedMsg:
		m.reopen()

		return m, nil
	case entryLaunchedMsg:
		if msg.err != nil {
			m.status = m.styles.ErrorText.Render(fmt.Sprintf("launch failed: %v", msg.err))
			m.runQuery()
			m.selection.SetResults(len(m.results))

			return m, nil
		}

		// A successful launch closes the overlay.
		m.status = ""
		m.selection.Close()

		return m, func() tea.Msg {
			return NavigateMsg{Screen: HubScreen}
		}
	case RefreshedMsg:
		m.runQuery()
		m.selection.SetResults(len(m.results))

		return m, nil
	}

	return m, nil
}

// View renders the launcher screen.
func (m *Launcher) View() string {
	var builder strings.Builder

	builder.WriteString(m.input.View())
	builder.WriteString("\n")
	builder.WriteString(m.renderCategoryBar())
	builder.WriteString("\n\n")

	if m.viewMode == domain.ViewGrid {
		m.viewport.SetContent(m.renderGrid())
	} else {
		m.viewport.SetContent(m.renderList())
	}

	builder.WriteString(m.viewport.View())
	builder.WriteString("\n")

	if m.status != "" {
		builder.WriteString(m.status)
		builder.WriteString("\n")
	}

	builder.WriteString(m.renderFooter())

	return builder.String()
}

// GetNavigationHints returns the screen-specific footer hints.
func (m *Launcher) GetNavigationHints() []string {
	return []string{
		"[↑/↓] Move",
		"[Tab] Category",
		"[Alt+1..8] Jump",
		"[Enter] Launch",
		"[Ctrl+F] Pin",
		"[Ctrl+G] Grid/List",
		"[Esc] Back",
	}
}

// Selected returns the currently highlighted entry, if any.
func (m *Launcher) Selected() (domain.Entry, bool) {
	index := m.selection.Index()
	if index < 0 || index >= len(m.results) {
		return domain.Entry{}, false
	}

	return m.results[index], true
}

// Results returns the current result slice (for testing).
func (m *Launcher) Results() []domain.Entry {
	return m.results
}

// Query returns the current input text (for testing).
func (m *Launcher) Query() string {
	return m.input.Value()
}

func (m *Launcher) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyEsc:
		m.selection.Close()

		return m, func() tea.Msg {
			return NavigateMsg{Screen: HubScreen}
		}
	case KeyEnter:
		return m, m.launchSelected()
	case "up", "ctrl+p":
		m.selection.Prev()

		return m, nil
	case "down", "ctrl+n":
		m.selection.Next()

		return m, nil
	case "tab":
		m.cycleCategory(1)

		return m, nil
	case "shift+tab":
		m.cycleCategory(-1)

		return m, nil
	case "ctrl+g":
		m.viewMode = m.service.ToggleViewMode()

		return m, nil
	case "ctrl+f":
		return m, m.togglePinned()
	case KeyCtrlC:
		return m, tea.Quit
	}

	if category, ok := categoryJump(msg.String()); ok {
		m.category = category
		m.runQuery()
		m.selection.SetResults(len(m.results))

		return m, nil
	}

	return m, m.handleInput(msg)
}

// handleInput forwards a key to the text input and schedules a
// debounced query when the text actually changed.
func (m *Launcher) handleInput(msg tea.KeyMsg) tea.Cmd {
	before := m.input.Value()

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return cmd
	}

	m.searchVersion++
	version := m.searchVersion

	return tea.Batch(cmd, tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return debouncedQueryMsg{version: version}
	}))
}

func (m *Launcher) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		// Hover drives the same highlight as the keyboard.
		if row, ok := m.rowAt(msg.Y); ok {
			m.selection.Hover(row)
		}

		return m, nil
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			if row, ok := m.rowAt(msg.Y); ok {
				m.selection.Hover(row)

				return m, m.launchSelected()
			}
		}

		return m, nil
	default:
		return m, nil
	}
}

func (m *Launcher) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	listHeight := msg.Height - 8
	if listHeight < minListHeight {
		listHeight = minListHeight
	}

	m.viewport.Width = msg.Width
	m.viewport.Height = listHeight

	return m, nil
}

// launchSelected executes the highlighted entry asynchronously.
func (m *Launcher) launchSelected() tea.Cmd {
	entry, ok := m.Selected()
	if !ok {
		return nil
	}

	return func() tea.Msg {
		return entryLaunchedMsg{id: entry.ID, err: m.service.Execute(entry.ID)}
	}
}

// togglePinned flips the favorite state of the highlighted entry.
func (m *Launcher) togglePinned() tea.Cmd {
	entry, ok := m.Selected()
	if !ok {
		return nil
	}

	m.service.ToggleFavorite(entry.ID)
	m.runQuery()
	m.selection.SetResults(len(m.results))

	return nil
}

// categoryJump maps Alt+digit to a category in the fixed order;
// Alt+0 clears the filter.
func categoryJump(key string) (domain.Category, bool) {
	if len(key) != 5 || !strings.HasPrefix(key, "alt+") {
		return "", false
	}

	digit := key[4]
	if digit == '0' {
		return "", true
	}

	categories := domain.Categories()

	index := int(digit - '1')
	if index < 0 || index >= len(categories) {
		return "", false
	}

	return categories[index], true
}

// cycleCategory steps through "all" plus the fixed category order and
// re-queries immediately: filter changes are deliberate, not typed.
func (m *Launcher) cycleCategory(direction int) {
	categories := domain.Categories()
	options := make([]domain.Category, 0, len(categories)+1)
	options = append(options, "")
	options = append(options, categories...)

	current := 0

	for i, option := range options {
		if option == m.category {
			current = i

			break
		}
	}

	next := (current + direction + len(options)) % len(options)
	m.category = options[next]

	m.runQuery()
	m.selection.SetResults(len(m.results))
}

func (m *Launcher) runQuery() {
	m.results = m.service.Search(m.input.Value(), m.category)
}

// reopen restores the launcher to its opening state: query and filter
// cleared, full catalog shown, first row selected. Pending debounce
// ticks from the previous visit are invalidated.
func (m *Launcher) reopen() {
	m.input.Reset()
	m.category = ""
	m.status = ""
	m.viewMode = m.service.ViewMode()
	m.searchVersion++
	m.runQuery()
	m.selection.Open(len(m.results))
}

// rowAt maps a terminal row to a result index in list view. Grid view
// does not support hover.
func (m *Launcher) rowAt(y int) (int, bool) {
	if m.viewMode != domain.ViewList {
		return 0, false
	}

	// Input line, category bar and a blank line precede the viewport.
	row := y - 3 + m.viewport.YOffset
	if row < 0 || row >= len(m.results) {
		return 0, false
	}

	return row, true
}

func (m *Launcher) renderCategoryBar() string {
	parts := make([]string, 0, len(domain.Categories())+1)

	render := func(label string, active bool) string {
		if active {
			return m.styles.Selected.Render(label)
		}

		return m.styles.MutedText.Render(label)
	}

	parts = append(parts, render("All", m.category == ""))
	for _, category := range domain.Categories() {
		parts = append(parts, render(stringutil.TitleLabel(string(category)), m.category == category))
	}

	return strings.Join(parts, " ")
}

func (m *Launcher) renderList() string {
	if len(m.results) == 0 {
		return m.styles.MutedText.Render("No matches")
	}

	var builder strings.Builder

	for i, entry := range m.results {
		line := fmt.Sprintf("%s %s  %s",
			m.badges(entry),
			stringutil.PadRight(entry.Name, listNameWidth),
			stringutil.Truncate(entry.Description, maxInt(m.width-listNameWidth-8, 10)),
		)

		if i == m.selection.Index() {
			builder.WriteString(m.styles.Selected.Render(line))
		} else {
			builder.WriteString(m.styles.Unselected.Render(line))
		}

		builder.WriteString("\n")
	}

	return builder.String()
}

func (m *Launcher) renderGrid() string {
	if len(m.results) == 0 {
		return m.styles.MutedText.Render("No matches")
	}

	rows := make([]string, 0, (len(m.results)+gridColumns-1)/gridColumns)

	for start := 0; start < len(m.results); start += gridColumns {
		end := start + gridColumns
		if end > len(m.results) {
			end = len(m.results)
		}

		cells := make([]string, 0, gridColumns)

		for i := start; i < end; i++ {
			entry := m.results[i]
			label := stringutil.Truncate(entry.Icon+" "+entry.Name, gridCellWidth-4)
			cell := label + " " + m.badges(entry)

			if i == m.selection.Index() {
				cells = append(cells, m.styles.Border.Padding(0, 1).Render(cell))
			} else {
				cells = append(cells, m.styles.Card.Padding(0, 1).Render(cell))
			}
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Launcher) badges(entry domain.Entry) string {
	var builder strings.Builder

	if entry.Running {
		builder.WriteString(m.styles.RunningBadge())
	} else {
		builder.WriteString(" ")
	}

	if entry.Favorite {
		builder.WriteString(m.styles.FavoriteBadge())
	} else {
		builder.WriteString(" ")
	}

	return builder.String()
}

func (m *Launcher) renderFooter() string {
	hints := make([]string, 0, 6)
	for _, hint := range m.GetNavigationHints() {
		parts := strings.SplitN(hint, "]", 2)
		if len(parts) == 2 {
			key := strings.TrimPrefix(parts[0], "[")
			hints = append(hints, m.styles.Keybinding(key, strings.TrimSpace(parts[1])))
		}
	}

	return strings.Join(hints, "  ")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
