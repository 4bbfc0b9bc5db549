package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gymtrack/internal/gymapi"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// confirmDeleteMsg is emitted when the user confirms a deletion.
type confirmDeleteMsg struct {
	id gymapi.ID
}

// confirmDeleteModal asks before a workout is deleted.
type confirmDeleteModal struct {
	workout gymapi.Workout
}

func newConfirmDelete(w gymapi.Workout) confirmDeleteModal {
	return confirmDeleteModal{workout: w}
}

func (c confirmDeleteModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil, false
	}
	switch {
	case key.Matches(keyMsg, keys.Yes):
		id := c.workout.ID
		return c, func() tea.Msg { return confirmDeleteMsg{id: id} }, true
	case key.Matches(keyMsg, keys.No):
		return c, nil, true
	}
	return c, nil, false
}

func (c confirmDeleteModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.DangerText.Render("Delete workout?"))
	b.WriteString("\n\n")
	summary := strings.TrimSpace(c.workout.Date + "  " + c.workout.Exercise)
	if summary == "" {
		summary = "#" + c.workout.ID.String()
	}
	b.WriteString(styles.Text.Render(summary))
	b.WriteString("\n\n")
	b.WriteString(styles.AccentText.Render("y") + styles.MutedText.Render(" delete   ") +
		styles.AccentText.Render("n") + styles.MutedText.Render(" keep"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Danger)).
		Padding(1, 2).
		Width(40).
		Render(b.String())

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
