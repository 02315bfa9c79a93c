// Package tui provides a Bubble Tea settings editor for the downloader.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/occidere/mmdownloader/internal/config"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500")).
			Bold(true)
)

// State represents the current UI state.
type State int

const (
	StateBrowse State = iota
	StateEditValue
	StateNewKey
)

// Level classifies a log line shown under the settings list.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   Level
}

const maxLogs = 5

// Model is the Bubble Tea model for the settings editor.
type Model struct {
	state  State
	cfg    *config.Configuration
	input  textinput.Model
	keys   []string
	cursor int
	// editing is the key whose value the input currently holds.
	editing string
	logs    []LogEntry

	width  int
	height int
}

// NewModel creates a settings editor over an initialized Configuration.
func NewModel(cfg *config.Configuration) Model {
	ti := textinput.New()
	ti.CharLimit = 1024
	ti.Width = 60

	return Model{
		state: StateBrowse,
		cfg:   cfg,
		input: ti,
		keys:  cfg.Keys(),
		logs:  make([]LogEntry, 0, maxLogs),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.state == StateBrowse {
			return m.updateBrowse(msg)
		}
		return m.updateInput(msg)
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.keys)-1 {
			m.cursor++
		}

	case "enter", "e":
		if len(m.keys) == 0 {
			return m, nil
		}
		m.editing = m.keys[m.cursor]
		m.state = StateEditValue
		m.input.Placeholder = "value"
		m.input.SetValue(m.cfg.GetString(m.editing, ""))
		m.input.CursorEnd()
		return m, m.input.Focus()

	case "a":
		m.editing = ""
		m.state = StateNewKey
		m.input.Placeholder = "NEW_KEY"
		m.input.SetValue("")
		return m, m.input.Focus()

	case "r":
		if err := m.cfg.LoadProperty(); err != nil {
			m.log(LevelError, fmt.Sprintf("Reload failed: %v", err))
			return m, nil
		}
		m.cfg.ApplyProperty()
		m.reloadKeys("")
		m.log(LevelInfo, "Reloaded "+m.cfg.Path())
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = StateBrowse
		m.input.Blur()
		return m, nil

	case "enter":
		value := m.input.Value()

		if m.state == StateNewKey {
			key := strings.TrimSpace(value)
			if key == "" {
				m.log(LevelError, "Key must not be empty")
				return m, nil
			}
			m.editing = key
			m.state = StateEditValue
			m.input.Placeholder = "value"
			m.input.SetValue(m.cfg.GetString(key, ""))
			return m, nil
		}

		m.cfg.SetProperty(m.editing, value)
		if err := m.cfg.Refresh(); err != nil {
			m.log(LevelError, fmt.Sprintf("Saving %s failed: %v", m.editing, err))
		} else {
			m.log(LevelSuccess, fmt.Sprintf("Saved %s=%s", m.editing, value))
		}
		m.reloadKeys(m.editing)
		m.state = StateBrowse
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// reloadKeys refreshes the key list and keeps the cursor on selected if present.
func (m *Model) reloadKeys(selected string) {
	m.keys = m.cfg.Keys()
	for i, key := range m.keys {
		if key == selected {
			m.cursor = i
			return
		}
	}
	if m.cursor >= len(m.keys) {
		m.cursor = max(len(m.keys)-1, 0)
	}
}

func (m *Model) log(level Level, message string) {
	m.logs = append(m.logs, LogEntry{Message: message, Level: level})
	// Keep only the last few logs
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("MMDownloader Settings"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.cfg.Path()))
	b.WriteString("\n\n")

	b.WriteString(m.viewList())

	switch m.state {
	case StateEditValue:
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("Value for %s:", m.editing)))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case StateNewKey:
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render("New key:"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderLogs())

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewList() string {
	if len(m.keys) == 0 {
		return dimStyle.Render("(no settings)") + "\n"
	}

	var b strings.Builder
	for i, key := range m.keys {
		line := fmt.Sprintf("%s = %s", key, m.cfg.GetString(key, ""))
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("› " + line))
		} else {
			b.WriteString(infoStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case LevelError:
			style = errorStyle
			prefix = "✗"
		case LevelSuccess:
			style = successStyle
			prefix = "✓"
		case LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateBrowse:
		return "↑/↓: move • enter: edit • a: add • r: reload • q: quit"
	case StateEditValue:
		return "enter: save • esc: cancel"
	case StateNewKey:
		return "enter: next • esc: cancel"
	}
	return ""
}

// Run starts the settings editor.
func Run(cfg *config.Configuration) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
