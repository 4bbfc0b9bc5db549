package ui

import "strings"

// renderHeader renders the status bar: app name, selected member and the
// current notice.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{bg.Render("gymtrack", styles.Logo)}

	if member, ok := m.state.SelectedMember(); ok {
		parts = append(parts, bg.Render(member.Name, styles.Text.Bold(true)))
	} else {
		parts = append(parts, bg.Render("No member selected", styles.MutedText))
	}

	if m.state.Loading {
		parts = append(parts, bg.Render(m.spinner.View(), styles.AccentText))
	}

	limit := max(m.width-40, 20)
	switch {
	case m.state.Err != nil:
		parts = append(parts, bg.Render("✗ "+truncate(m.state.Err.Error(), limit), styles.DangerText))
	case m.state.Message != "":
		parts = append(parts, bg.Render("✓ "+truncate(m.state.Message, limit), styles.SuccessText))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// contextBindings returns the command bar keys for the focused pane.
func (m Model) contextBindings() contextKeys {
	k := m.keys
	switch {
	case m.showLogs:
		return contextKeys{k.Up, k.Down, k.Reload, k.Escape}
	case m.focus == paneForm:
		return contextKeys{k.Submit, k.NextField, k.Escape}
	case m.focus == paneWorkouts:
		return contextKeys{k.Add, k.Edit, k.Delete, k.Reload, k.Tab, k.Logs, k.Help}
	default:
		return contextKeys{k.Up, k.Down, k.Select, k.Tab, k.Logs, k.Help, k.Quit}
	}
}

// renderCommandBar renders the key hints for the focused pane and the theme.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	h := m.help
	h.Styles.ShortKey = styles.AccentText
	h.Styles.ShortDesc = styles.MutedText
	h.Styles.ShortSeparator = styles.FaintText
	h.ShortSeparator = "  "
	h.Width = max(m.width-20, 0)

	hints := h.View(m.contextBindings())
	theme := bg.Render(m.keys.CycleTheme.Help().Key, styles.AccentText) +
		bg.Render(":", styles.FaintText) +
		bg.Render(m.theme.Name, styles.FaintText)

	return styles.Header.Width(m.width).Render(hints + bg.Spaces(2) + theme)
}
