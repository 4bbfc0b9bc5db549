package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gymtrack/internal/gymapi"
	"github.com/five82/gymtrack/internal/tracker"
)

// workoutColumns are the table headers in display order.
var workoutColumns = []string{"Date", "Exercise", "Sets", "Reps", "Weight", "Notes"}

// workoutCells formats a workout as table cells. Missing weight and notes
// render as "-".
func workoutCells(w gymapi.Workout) []string {
	return []string{
		w.Date,
		w.Exercise,
		strconv.Itoa(w.Sets),
		strconv.Itoa(w.Reps),
		w.WeightLabel(),
		w.NotesLabel(),
	}
}

// columnWidths splits width across the visible columns. Notes are dropped
// on narrow terminals.
func columnWidths(width int) []int {
	compact := width < LayoutCompactWidth-MembersPaneMinWidth
	fixed := []int{10, 0, 4, 4, 7} // Date, Exercise (flex), Sets, Reps, Weight
	gaps := 3 * 4
	if !compact {
		gaps += 3
	}
	used := gaps
	for _, w := range fixed {
		used += w
	}
	flex := max(width-used, 8)

	if compact {
		return []int{fixed[0], flex, fixed[2], fixed[3], fixed[4]}
	}
	exercise := max(flex/2, 8)
	notes := max(flex-exercise, 5)
	return []int{fixed[0], exercise, fixed[2], fixed[3], fixed[4], notes}
}

// formatRow joins cells into fixed-width columns separated by " | ".
func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = fit(cell, w)
	}
	return strings.Join(parts, " | ")
}

// handleWorkoutsKey processes keyboard input for the workout table.
func (m Model) handleWorkoutsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.state.Workouts)

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.workoutRow < count-1 {
			m.workoutRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.workoutRow > 0 {
			m.workoutRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.workoutRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.workoutRow = max(count-1, 0)
	case key.Matches(msg, m.keys.Add):
		if m.state.SelectedMemberID.IsZero() {
			return m, nil
		}
		if m.state.Editing() {
			m.state = m.state.CancelEdit()
			m.form.load(m.state.Form)
		}
		m.focus = paneForm
		return m, m.form.focusField(0)
	case key.Matches(msg, m.keys.Edit):
		w, ok := m.selectedWorkout()
		if !ok {
			return m, nil
		}
		m.state = m.state.BeginEdit(w)
		m.form.load(m.state.Form)
		m.focus = paneForm
		return m, m.form.focusField(0)
	case key.Matches(msg, m.keys.Delete):
		w, ok := m.selectedWorkout()
		if !ok {
			return m, nil
		}
		if m.prefs.ConfirmDelete {
			m.modal = newConfirmDelete(w)
			return m, nil
		}
		return m, m.deleteWorkout(w.ID)
	}
	return m, nil
}

func (m *Model) deleteWorkout(id gymapi.ID) tea.Cmd {
	m.state = m.state.DismissMessage()
	return m.dispatch(func(st tracker.State) (tracker.State, tracker.Effect) {
		return st.Delete(id)
	})
}

func (m Model) selectedWorkout() (gymapi.Workout, bool) {
	if m.workoutRow < 0 || m.workoutRow >= len(m.state.Workouts) {
		return gymapi.Workout{}, false
	}
	return m.state.Workouts[m.workoutRow], true
}

// renderWorkouts renders the workout table, a spinner while the list loads,
// or a placeholder.
func (m Model) renderWorkouts(width, height int, focused bool) string {
	bgColor := m.theme.SurfaceAlt
	if focused {
		bgColor = m.theme.FocusBg
	}
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)

	switch {
	case m.state.SelectedMemberID.IsZero():
		return bg.Render("Select a member to see workouts", styles.MutedText)
	case m.state.Loading:
		return bg.Render(m.spinner.View(), styles.AccentText) + bg.Space() +
			bg.Render("Loading workouts...", styles.MutedText)
	case len(m.state.Workouts) == 0:
		return bg.Render("No workouts yet. Press a to add one.", styles.MutedText)
	}

	widths := columnWidths(width)
	lines := []string{
		bg.FillLine(bg.Render(formatRow(workoutColumns, widths), styles.AccentText.Bold(true)), width),
	}

	visible := max(height-1, 1)
	start := 0
	if m.workoutRow >= visible {
		start = m.workoutRow - visible + 1
	}
	end := min(start+visible, len(m.state.Workouts))

	for i := start; i < end; i++ {
		w := m.state.Workouts[i]
		row := formatRow(workoutCells(w), widths)
		switch {
		case focused && i == m.workoutRow:
			lines = append(lines, lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Foreground(lipgloss.Color(m.theme.SelectionText)).
				Width(width).
				Render(row))
		case w.ID == m.state.EditingID:
			lines = append(lines, bg.FillLine(bg.Render(row, styles.WarningText), width))
		default:
			lines = append(lines, bg.FillLine(bg.Render(row, styles.Text), width))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) workoutsTitle() string {
	member, ok := m.state.SelectedMember()
	if !ok {
		return "Workouts"
	}
	if m.state.Loading {
		return fmt.Sprintf("Workouts · %s", member.Name)
	}
	return fmt.Sprintf("Workouts · %s (%d)", member.Name, len(m.state.Workouts))
}
