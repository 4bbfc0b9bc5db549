package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/gymtrack/internal/gymapi"
	"github.com/five82/gymtrack/internal/prefs"
	"github.com/five82/gymtrack/internal/tracker"
)

// pane identifies the focused area of the screen.
type pane int

const (
	paneMembers pane = iota
	paneForm
	paneWorkouts
)

// Options configures the UI.
type Options struct {
	Context        context.Context
	Backend        gymapi.Backend
	Logger         *zap.SugaredLogger
	RequestTimeout time.Duration
	Prefs          prefs.Prefs
	PrefsPath      string
	LogPath        string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	backend   gymapi.Backend
	log       *zap.SugaredLogger
	timeout   time.Duration
	prefs     prefs.Prefs
	prefsPath string
	logPath   string

	// UI state
	keys   keyMap
	help   help.Model
	theme  Theme
	width  int
	height int
	ready  bool
	focus  pane

	// Tracker state and the widgets that mirror it
	state      tracker.State
	form       formModel
	spinner    spinner.Model
	memberRow  int
	workoutRow int

	// Notices auto-hide after NoticeTimeout; noticeSeq drops timers that
	// were overtaken by a newer notice.
	noticeSeq int

	// Overlays
	modal       Modal
	showHelp    bool
	showLogs    bool
	logViewport viewport.Model
	logState    logState

	// tick schedules delayed messages; replaced in tests.
	tick func(time.Duration, func(time.Time) tea.Msg) tea.Cmd
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	p := opts.Prefs
	if p.Theme == "" {
		p = prefs.Default()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(p.Theme)
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	return Model{
		ctx:       ctx,
		backend:   opts.Backend,
		log:       log,
		timeout:   timeout,
		prefs:     p,
		prefsPath: prefsPath,
		logPath:   opts.LogPath,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     theme,
		focus:     paneMembers,
		state:     tracker.New(),
		form:      newFormModel(),
		spinner:   sp,
		tick:      tea.Tick,
	}
}

// Init implements tea.Model. Members are fetched once, at start.
func (m Model) Init() tea.Cmd {
	_, eff := m.state.Start()
	return tea.Batch(tea.EnterAltScreen, m.run(eff))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.form.setWidth(m.rightWidth() - 2)
		if m.showLogs {
			m.resizeLogViewport()
		}
		return m, nil

	case resultMsg:
		tracker.LogResult(m.log, msg.res)
		cmd := m.dispatch(func(st tracker.State) (tracker.State, tracker.Effect) {
			return st.Apply(msg.res)
		})
		return m, cmd

	case confirmDeleteMsg:
		return m, m.deleteWorkout(msg.id)

	case dismissNoticeMsg:
		if int(msg) == m.noticeSeq {
			m.state = m.state.DismissMessage().DismissError()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case logTailMsg:
		m.handleLogTail(msg)
		return m, nil
	}

	// Cursor blink and other widget messages go to the focused input.
	if m.focus == paneForm {
		_, _, cmd := m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	if m.showLogs {
		b.WriteString(m.renderLogs())
	} else {
		b.WriteString(m.renderContent())
	}
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		modal, cmd, done := m.modal.Update(msg, m.keys)
		m.modal = modal
		if done {
			m.modal = nil
		}
		return m, cmd
	}

	if m.showLogs {
		return m.handleLogsKey(msg)
	}

	// The form owns every printable key while focused.
	if m.focus == paneForm {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		return m, m.openLogs()

	case key.Matches(msg, m.keys.Tab):
		return m, m.cycleFocus(1)

	case key.Matches(msg, m.keys.ShiftTab):
		return m, m.cycleFocus(-1)

	case key.Matches(msg, m.keys.Reload):
		return m, m.reload()
	}

	switch m.focus {
	case paneWorkouts:
		return m.handleWorkoutsKey(msg)
	default:
		return m.handleMembersKey(msg)
	}
}

// handleFormKey processes keyboard input while the form has focus.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.state = m.state.DismissMessage()
		return m, m.dispatch(tracker.State.Submit)

	case key.Matches(msg, m.keys.Escape):
		if m.state.Editing() {
			m.state = m.state.CancelEdit()
			m.form.load(m.state.Form)
		}
		m.form.blur()
		m.focus = paneWorkouts
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		return m, m.form.next()

	case key.Matches(msg, m.keys.PrevField):
		return m, m.form.prev()
	}

	field, value, cmd := m.form.update(msg)
	m.state = m.state.SetField(field, value)
	return m, cmd
}

// cycleFocus moves focus between panes. The form is only reachable while
// a member is selected.
func (m *Model) cycleFocus(step int) tea.Cmd {
	order := []pane{paneMembers, paneForm, paneWorkouts}
	if m.state.SelectedMemberID.IsZero() {
		order = []pane{paneMembers, paneWorkouts}
	}
	idx := 0
	for i, p := range order {
		if p == m.focus {
			idx = i
		}
	}
	n := len(order)
	m.focus = order[((idx+step)%n+n)%n]
	if m.focus == paneForm {
		return m.form.focusField(0)
	}
	m.form.blur()
	return nil
}

// reload refetches the selected member's workouts. Members are loaded once,
// at start, so without a selection there is nothing to reload.
func (m *Model) reload() tea.Cmd {
	if m.state.SelectedMemberID.IsZero() {
		return nil
	}
	return m.dispatch(func(st tracker.State) (tracker.State, tracker.Effect) {
		return st.LoadWorkouts(st.SelectedMemberID)
	})
}

// cycleTheme switches to the next theme and persists the choice.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
	m.prefs.Theme = m.theme.Name
	if m.prefsPath != "" {
		if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
			m.log.Warnw("save prefs failed", "path", m.prefsPath, "error", err)
		}
	}
}

// dispatch runs a reducer and returns the commands its outcome needs: the
// remote call, the spinner and the notice timer.
func (m *Model) dispatch(reduce func(tracker.State) (tracker.State, tracker.Effect)) tea.Cmd {
	prev := m.state
	next, eff := reduce(m.state)
	m.state = next
	m.sync()

	cmds := []tea.Cmd{m.run(eff)}
	if m.state.Loading && !prev.Loading {
		cmds = append(cmds, m.spinner.Tick)
	}
	if cmd := m.noticeCmd(prev); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// sync brings cursors, focus and form widgets in line with the state.
func (m *Model) sync() {
	m.memberRow = clamp(m.memberRow, len(m.state.Members))
	m.workoutRow = clamp(m.workoutRow, len(m.state.Workouts))
	if m.state.SelectedMemberID.IsZero() && m.focus == paneForm {
		m.form.blur()
		m.focus = paneMembers
	}
	m.form.load(m.state.Form)
}

// noticeCmd starts the auto-hide timer when a new notice appeared.
func (m *Model) noticeCmd(prev tracker.State) tea.Cmd {
	if m.state.Message == prev.Message && m.state.Err == prev.Err {
		return nil
	}
	if m.state.Message == "" && m.state.Err == nil {
		return nil
	}
	m.noticeSeq++
	seq := m.noticeSeq
	return m.tick(NoticeTimeout, func(time.Time) tea.Msg { return dismissNoticeMsg(seq) })
}

// run turns an effect into a command that performs it.
func (m Model) run(eff tracker.Effect) tea.Cmd {
	if eff.None() || m.backend == nil {
		return nil
	}
	ctx, backend, timeout := m.ctx, m.backend, m.timeout
	return func() tea.Msg {
		callCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return resultMsg{res: tracker.Perform(callCtx, backend, eff)}
	}
}

// renderContent lays out the members pane beside the form and workouts.
func (m Model) renderContent() string {
	contentHeight := m.height - 2
	leftWidth := m.membersWidth()
	rightWidth := m.rightWidth()

	members := m.renderTitledBox(m.membersTitle(), m.renderMembers(leftWidth-2, m.focus == paneMembers),
		leftWidth, contentHeight, m.focus == paneMembers)

	workoutsHeight := contentHeight
	var right []string
	if !m.state.SelectedMemberID.IsZero() {
		formHeight := min(m.form.height()+2, contentHeight/2)
		right = append(right, m.renderTitledBox(m.formTitle(), m.renderForm(rightWidth-2, m.focus == paneForm),
			rightWidth, formHeight, m.focus == paneForm))
		workoutsHeight -= formHeight
	}
	right = append(right, m.renderTitledBox(m.workoutsTitle(),
		m.renderWorkouts(rightWidth-2, workoutsHeight-2, m.focus == paneWorkouts),
		rightWidth, workoutsHeight, m.focus == paneWorkouts))

	return lipgloss.JoinHorizontal(lipgloss.Top, members, strings.Join(right, "\n"))
}

func (m Model) membersWidth() int {
	return min(max(m.width*25/100, MembersPaneMinWidth), MembersPaneMaxWidth)
}

func (m Model) rightWidth() int {
	return max(m.width-m.membersWidth(), 10)
}

func clamp(row, count int) int {
	if count == 0 || row < 0 {
		return 0
	}
	if row >= count {
		return count - 1
	}
	return row
}

// Messages

type resultMsg struct {
	res tracker.Result
}

type dismissNoticeMsg int

// Run starts the Bubble Tea program. Cancelling opts.Context is a normal
// shutdown.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
