package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gymtrack/internal/tracker"
)

// handleMembersKey processes keyboard input for the member list.
func (m Model) handleMembersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.state.Members)

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.memberRow < count-1 {
			m.memberRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.memberRow > 0 {
			m.memberRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.memberRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.memberRow = max(count-1, 0)
	case key.Matches(msg, m.keys.Select):
		if count == 0 {
			return m, nil
		}
		id := m.state.Members[m.memberRow].ID
		cmd := m.dispatch(func(st tracker.State) (tracker.State, tracker.Effect) {
			return st.SelectMember(id)
		})
		m.focus = paneWorkouts
		return m, cmd
	case key.Matches(msg, m.keys.Escape):
		if m.state.SelectedMemberID.IsZero() {
			return m, nil
		}
		cmd := m.dispatch(func(st tracker.State) (tracker.State, tracker.Effect) {
			return st.SelectMember("")
		})
		return m, cmd
	}
	return m, nil
}

// renderMembers renders the member list rows.
func (m Model) renderMembers(width int, focused bool) string {
	bgColor := m.theme.SurfaceAlt
	if focused {
		bgColor = m.theme.FocusBg
	}
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)

	if len(m.state.Members) == 0 {
		return bg.Render("No members", styles.MutedText)
	}

	lines := make([]string, 0, len(m.state.Members))
	for i, member := range m.state.Members {
		marker := "  "
		if member.ID == m.state.SelectedMemberID {
			marker = "● "
		}
		text := fit(marker+member.Name, width)

		switch {
		case focused && i == m.memberRow:
			lines = append(lines, lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Foreground(lipgloss.Color(m.theme.SelectionText)).
				Width(width).
				Render(text))
		case member.ID == m.state.SelectedMemberID:
			lines = append(lines, bg.FillLine(bg.Render(text, styles.AccentText.Bold(true)), width))
		default:
			lines = append(lines, bg.FillLine(bg.Render(text, styles.Text), width))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) membersTitle() string {
	return fmt.Sprintf("Members (%d)", len(m.state.Members))
}
