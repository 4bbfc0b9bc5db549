package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gymtrack/internal/logtail"
)

// logTailMsg carries a fresh read of the diagnostic log.
type logTailMsg struct {
	entries []logtail.Entry
	err     error
}

// logState holds the log overlay's data.
type logState struct {
	entries []logtail.Entry
	err     error
}

// readLogCmd reads the tail of the diagnostic log off the update loop.
func readLogCmd(path string) tea.Cmd {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	return func() tea.Msg {
		entries, err := logtail.ReadEntries(path, LogTailLimit)
		return logTailMsg{entries: entries, err: err}
	}
}

// openLogs shows the overlay and starts a read.
func (m *Model) openLogs() tea.Cmd {
	m.showLogs = true
	m.resizeLogViewport()
	return readLogCmd(m.logPath)
}

func (m *Model) handleLogTail(msg logTailMsg) {
	m.logState.err = msg.err
	if msg.err == nil {
		m.logState.entries = msg.entries
	}
	m.logViewport.SetContent(m.renderLogContent())
	m.logViewport.GotoBottom()
}

func (m *Model) resizeLogViewport() {
	// Box height = m.height - 3 (header, cmdbar, status line below).
	width, height := max(m.width-2, 1), max(m.height-5, 1)
	if m.logViewport.Width == 0 {
		m.logViewport = viewport.New(width, height)
	}
	m.logViewport.Width = width
	m.logViewport.Height = height
	m.logViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))
	m.logViewport.SetContent(m.renderLogContent())
}

// handleLogsKey processes keyboard input while the overlay is open.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Logs), key.Matches(msg, m.keys.Quit):
		m.showLogs = false
	case key.Matches(msg, m.keys.Reload):
		return m, readLogCmd(m.logPath)
	case key.Matches(msg, m.keys.Down):
		m.logViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.logViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.logViewport.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.logViewport.HalfPageUp()
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
	}
	return m, nil
}

// renderLogContent renders log entries with level colors.
func (m Model) renderLogContent() string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)
	width := max(m.width-2, 1)

	if m.logState.err != nil {
		return bg.Render("Cannot read log: "+m.logState.err.Error(), styles.DangerText)
	}
	if len(m.logState.entries) == 0 {
		return bg.Render("No log entries yet", styles.MutedText)
	}

	lines := make([]string, 0, len(m.logState.entries))
	for _, e := range m.logState.entries {
		if !e.Structured() {
			lines = append(lines, bg.FillLine(bg.Render(truncate(e.Raw, width), styles.FaintText), width))
			continue
		}
		var b strings.Builder
		if !e.Time.IsZero() {
			b.WriteString(bg.Render(e.Time.Local().Format("15:04:05"), styles.FaintText))
			b.WriteString(bg.Space())
		}
		b.WriteString(bg.Render(fit(strings.ToUpper(e.Level), 5), styles.LevelStyle(e.Level)))
		b.WriteString(bg.Space())
		b.WriteString(bg.Render(e.Message, styles.Text))
		for _, kv := range e.Fields {
			b.WriteString(bg.Space())
			b.WriteString(bg.Render(kv[0]+"=", styles.MutedText))
			b.WriteString(bg.Render(kv[1], styles.InfoText))
		}
		lines = append(lines, bg.FillLine(lipgloss.NewStyle().MaxWidth(width).Render(b.String()), width))
	}
	return strings.Join(lines, "\n")
}

// renderLogs renders the overlay box and a status line below it.
func (m Model) renderLogs() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	contentHeight := m.height - 3

	box := m.renderTitledBox("Diagnostic Log", m.logViewport.View(), m.width, contentHeight, true)

	status := fmt.Sprintf("%d entries", len(m.logState.entries))
	if m.logPath != "" {
		status += "  " + truncate(m.logPath, max(m.width-24, 10))
	}
	return box + "\n" + styles.Header.Width(m.width).Render(bg.Render(status, styles.MutedText))
}
