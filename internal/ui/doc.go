// Package ui provides the gymtrack terminal interface.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model owns a tracker.State and never
// mutates it directly: key presses and remote results go through the
// tracker reducers, and the Effect a reducer returns is turned into a
// tea.Cmd that calls the backend off the update loop. The outcome comes back
// as a resultMsg and is folded in with State.Apply, which may start a
// follow-up call (the list reload after a save or delete).
//
// # Package Structure
//
//   - app.go: Model, Update/View, effect dispatch and notices
//   - members.go: member list pane
//   - form.go: Add/Edit Workout form widgets
//   - workouts.go: workout table, edit and delete
//   - header.go: status header and command bar
//   - help.go, modal.go, logs.go: help overlay, delete confirmation, diagnostic log overlay
//   - theme.go, style_helpers.go, layout.go: colors, box drawing, sizes
//
// # Layout
//
//	┌ Members ┐┌──────── Add Workout ────────┐
//	│● Ann    ││Date      2024-01-01         │
//	│  Bob    ││Exercise  Squat              │
//	│         │└─────────────────────────────┘
//	│         │┌──── Workouts · Ann (3) ─────┐
//	│         ││Date | Exercise | Sets | ... │
//	└─────────┘└─────────────────────────────┘
//
// The form pane is shown only while a member is selected.
//
// # Keyboard Shortcuts
//
//   - tab/shift+tab: cycle panes
//   - j/k, g/G: move within a pane
//   - enter: select the highlighted member; esc clears the selection
//   - a: add, e: edit, d: delete, r: reload workouts
//   - ctrl+s: save the form; esc cancels an edit
//   - L: diagnostic log, T: cycle theme, h/?: help, q/ctrl+c: quit
//
// While the form has focus every printable key is typed into the focused
// field, so only ctrl+s, esc, tab and shift+tab act as commands.
//
// # Notices
//
// Success messages and failures are shown in the header and hidden after
// NoticeTimeout. A newer notice restarts the timer.
package ui
