package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gymtrack/internal/tracker"
)

// formModel holds the input widgets behind tracker.Form. The tracker state
// stays the source of truth: every keystroke is copied into it with
// SetField, and load copies it back after a reset or BeginEdit.
type formModel struct {
	inputs []textinput.Model // Date, Exercise, Sets, Reps, Weight
	notes  textarea.Model
	focus  int // index into tracker.Fields
}

func newFormModel() formModel {
	placeholders := map[tracker.Field]string{
		tracker.FieldDate:     "YYYY-MM-DD",
		tracker.FieldExercise: "e.g. Squat",
		tracker.FieldSets:     "0",
		tracker.FieldReps:     "0",
		tracker.FieldWeight:   "optional",
	}
	limits := map[tracker.Field]int{
		tracker.FieldDate:     10,
		tracker.FieldExercise: 80,
		tracker.FieldSets:     4,
		tracker.FieldReps:     4,
		tracker.FieldWeight:   8,
	}

	f := formModel{}
	for _, field := range tracker.Fields {
		if field == tracker.FieldNotes {
			continue
		}
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[field]
		ti.CharLimit = limits[field]
		f.inputs = append(f.inputs, ti)
	}

	ta := textarea.New()
	ta.Placeholder = "optional"
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 500
	ta.SetHeight(NotesRows)
	f.notes = ta
	return f
}

// field returns the tracker field that has focus.
func (f formModel) field() tracker.Field {
	return tracker.Fields[f.focus]
}

// focusField moves focus to index i (wrapping) and returns the blink command.
func (f *formModel) focusField(i int) tea.Cmd {
	n := len(tracker.Fields)
	f.focus = ((i % n) + n) % n
	f.blur()
	if f.field() == tracker.FieldNotes {
		return f.notes.Focus()
	}
	return f.inputs[f.focus].Focus()
}

func (f *formModel) next() tea.Cmd { return f.focusField(f.focus + 1) }
func (f *formModel) prev() tea.Cmd { return f.focusField(f.focus - 1) }

func (f *formModel) blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.notes.Blur()
}

// load copies form into the widgets, leaving unchanged fields alone so the
// cursor does not jump while typing.
func (f *formModel) load(form tracker.Form) {
	for i, field := range tracker.Fields {
		value := form.Get(field)
		if field == tracker.FieldNotes {
			if f.notes.Value() != value {
				f.notes.SetValue(value)
			}
			continue
		}
		if f.inputs[i].Value() != value {
			f.inputs[i].SetValue(value)
		}
	}
}

// update forwards msg to the focused widget and reports its new value.
func (f *formModel) update(msg tea.Msg) (tracker.Field, string, tea.Cmd) {
	var cmd tea.Cmd
	field := f.field()
	if field == tracker.FieldNotes {
		f.notes, cmd = f.notes.Update(msg)
		return field, f.notes.Value(), cmd
	}
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return field, f.inputs[f.focus].Value(), cmd
}

func (f *formModel) setWidth(width int) {
	inputWidth := max(width-FormLabelWidth-2, 8)
	for i := range f.inputs {
		f.inputs[i].Width = inputWidth
	}
	f.notes.SetWidth(inputWidth)
}

// height is the number of content lines the form renders.
func (f formModel) height() int {
	return len(f.inputs) + NotesRows + 2
}

// renderForm renders the form pane content.
func (m Model) renderForm(width int, focused bool) string {
	bgColor := m.theme.SurfaceAlt
	if focused {
		bgColor = m.theme.FocusBg
	}
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)

	var lines []string
	for i, field := range tracker.Fields {
		labelStyle := styles.MutedText
		if focused && i == m.form.focus {
			labelStyle = styles.AccentText.Bold(true)
		}
		label := bg.Render(fit(field.String(), FormLabelWidth), labelStyle)

		if field == tracker.FieldNotes {
			noteLines := strings.Split(m.form.notes.View(), "\n")
			for j, nl := range noteLines {
				prefix := label
				if j > 0 {
					prefix = bg.Spaces(FormLabelWidth)
				}
				lines = append(lines, prefix+nl)
			}
			continue
		}
		lines = append(lines, label+m.form.inputs[i].View())
	}

	lines = append(lines, "")
	hint := "ctrl+s save"
	if m.state.Editing() {
		hint += " · esc cancel edit"
	} else {
		hint += " · esc leave form"
	}
	lines = append(lines, bg.Render(hint, styles.FaintText))

	for i := range lines {
		lines[i] = lipgloss.NewStyle().MaxWidth(width).Render(lines[i])
	}
	return strings.Join(lines, "\n")
}

// formTitle mirrors the form's mode.
func (m Model) formTitle() string {
	if m.state.Editing() {
		return "Edit Workout"
	}
	return "Add Workout"
}
