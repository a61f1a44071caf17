// Package ui renders the portfolio as a Bubble Tea program.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calegray/foyer/internal/config"
	"github.com/calegray/foyer/internal/forge"
	"github.com/calegray/foyer/internal/prefs"
	"github.com/calegray/foyer/internal/state"
)

// frameInterval is the animation cadence, about thirty frames per second.
// Frames are only scheduled while something is moving.
const frameInterval = 33 * time.Millisecond

// pollInterval is how often the UI picks up poller results.
const pollInterval = time.Second

// refreshTimeout bounds a manual repository refresh.
const refreshTimeout = 10 * time.Second

// View identifies a top-level screen.
type View int

const (
	ViewHome View = iota
	ViewProjects
	ViewAbout
)

// Options configures the UI.
type Options struct {
	Context      context.Context
	Client       *forge.Client
	Store        *state.Store
	Config       *config.Config
	ThemeName    string
	ReduceMotion bool
	PrefsPath    string
}

// Model is the root Bubble Tea model.
type Model struct {
	opts Options
	keys keyMap

	theme  Theme
	styles Styles

	view     View
	width    int
	height   int
	ready    bool
	showHelp bool

	reduceMotion bool

	snap     state.Snapshot
	haveSnap bool

	home     *homeView
	projects *projectsView
	about    *aboutView

	framePending bool
}

// New creates the root model.
func New(opts Options) Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	theme := GetTheme(opts.ThemeName)
	m := Model{
		opts:         opts,
		keys:         defaultKeyMap(),
		theme:        theme,
		styles:       theme.Styles(),
		reduceMotion: opts.ReduceMotion,
		home:         newHomeView(opts.Config, opts.ReduceMotion),
		projects:     newProjectsView(opts.Config, opts.ReduceMotion),
		about:        newAboutView(opts.Config),
	}
	m.projects.spin.Style = m.styles.AccentText
	return m
}

// Init starts the poll loop and the first snapshot fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		pollCmd(),
		fetchSnapshotCmd(m.opts.Store),
		m.projects.spin.Tick,
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.layout()
		return m, m.ensureFrame()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.FocusMsg:
		m.home.focus()
		return m, nil

	case tea.BlurMsg:
		m.home.blur()
		return m, m.ensureFrame()

	case frameMsg:
		m.framePending = false
		m.stepFrame(time.Time(msg))
		return m, m.ensureFrame()

	case pollMsg:
		m.home.tick(time.Time(msg))
		return m, tea.Batch(pollCmd(), fetchSnapshotCmd(m.opts.Store), m.ensureFrame())

	case snapshotMsg:
		m.snap = state.Snapshot(msg)
		m.haveSnap = true
		m.projects.setSnapshot(m.snap)
		return m, nil

	case spinner.TickMsg:
		if !m.projects.loaded() {
			var cmd tea.Cmd
			m.projects.spin, cmd = m.projects.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	return m, nil
}

// View renders the full screen.
func (m Model) View() string {
	if !m.ready {
		return "loading…"
	}
	if m.showHelp {
		return m.renderHelp()
	}
	now := time.Now()
	var content string
	switch m.view {
	case ViewHome:
		content = m.home.view(m.styles, now)
	case ViewProjects:
		content = m.projects.view(m.styles, now)
	case ViewAbout:
		content = m.about.view()
	}
	ch := m.contentHeight()
	body := lipgloss.NewStyle().Width(m.width).Height(ch).MaxHeight(ch).Render(content)
	return m.renderHeader() + "\n" + body + "\n" + m.renderFooter()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Back):
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Theme):
		m.applyTheme(NextTheme(m.theme.Name))
		m.savePrefs()
	case key.Matches(msg, m.keys.Motion):
		m.setReduceMotion(!m.reduceMotion)
		m.savePrefs()
	case key.Matches(msg, m.keys.Home):
		return m.switchView(ViewHome)
	case key.Matches(msg, m.keys.Projects):
		return m.switchView(ViewProjects)
	case key.Matches(msg, m.keys.About):
		return m.switchView(ViewAbout)
	case key.Matches(msg, m.keys.NextView):
		return m.switchView((m.view + 1) % 3)
	case key.Matches(msg, m.keys.PrevView):
		return m.switchView((m.view + 2) % 3)
	case key.Matches(msg, m.keys.Back):
		return m.switchView(ViewHome)
	default:
		return m.handleViewKey(msg)
	}
	return m, nil
}

func (m Model) handleViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case ViewHome:
		if key.Matches(msg, m.keys.Scatter) {
			m.home.scatterToggle(m.reduceMotion)
			return m, m.ensureFrame()
		}
	case ViewProjects:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.projects.moveSelection(-1)
			return m, m.ensureFrame()
		case key.Matches(msg, m.keys.Down):
			m.projects.moveSelection(1)
			return m, m.ensureFrame()
		case key.Matches(msg, m.keys.Top):
			m.projects.toTop()
			return m, m.ensureFrame()
		case key.Matches(msg, m.keys.Bottom):
			m.projects.toBottom()
			return m, m.ensureFrame()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.refreshCmd()
		case key.Matches(msg, m.keys.Yank):
			m.projects.yankURL()
		}
	case ViewAbout:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.about.lineUp(1)
		case key.Matches(msg, m.keys.Down):
			m.about.lineDown(1)
		case key.Matches(msg, m.keys.Top):
			m.about.toTop()
		case key.Matches(msg, m.keys.Bottom):
			m.about.toBottom()
		}
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		return m, nil
	}
	switch m.view {
	case ViewHome:
		if msg.Action == tea.MouseActionMotion {
			m.home.mouse(msg.X, msg.Y)
			return m, m.ensureFrame()
		}
	case ViewProjects:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.projects.moveSelection(-1)
			return m, m.ensureFrame()
		case tea.MouseButtonWheelDown:
			m.projects.moveSelection(1)
			return m, m.ensureFrame()
		}
	case ViewAbout:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.about.lineUp(3)
		case tea.MouseButtonWheelDown:
			m.about.lineDown(3)
		}
	}
	return m, nil
}

func (m Model) switchView(v View) (tea.Model, tea.Cmd) {
	if v == m.view {
		return m, nil
	}
	if m.view == ViewHome {
		m.home.leave()
	}
	m.view = v
	var cmds []tea.Cmd
	if v == ViewProjects && !m.projects.loaded() {
		cmds = append(cmds, m.projects.spin.Tick)
	}
	if cmd := m.ensureFrame(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) applyTheme(name string) {
	m.theme = GetTheme(name)
	m.styles = m.theme.Styles()
	m.projects.spin.Style = m.styles.AccentText
}

func (m *Model) setReduceMotion(on bool) {
	m.reduceMotion = on
	m.home.setReduceMotion(on)
	m.projects.setReduceMotion(on)
}

func (m *Model) savePrefs() {
	_ = prefs.Save(m.opts.PrefsPath, prefs.Prefs{Theme: m.theme.Name, ReduceMotion: m.reduceMotion})
}

func (m *Model) layout() {
	ch := m.contentHeight()
	m.home.setArea(0, 1, m.width, ch, time.Now())
	m.projects.setSize(m.width, ch)
	m.about.setSize(m.width, ch)
}

func (m Model) contentHeight() int {
	h := m.height - 2 // header and footer rows
	if h < 1 {
		return 1
	}
	return h
}

// stepFrame advances every animation one frame. Views that are not
// animating treat this as a no-op, so stepping them all is cheap.
func (m *Model) stepFrame(now time.Time) {
	m.home.tick(now)
	m.home.step()
	m.projects.step()
}

// ensureFrame schedules the next animation frame unless one is already
// pending or nothing is moving.
func (m *Model) ensureFrame() tea.Cmd {
	if m.framePending || !m.animating() {
		return nil
	}
	m.framePending = true
	return frameCmd()
}

func (m *Model) animating() bool {
	now := time.Now()
	switch m.view {
	case ViewHome:
		return m.home.animating(now)
	case ViewProjects:
		return m.projects.animating()
	default:
		return false
	}
}

// refreshCmd fetches the repository list immediately, outside the
// poller's cadence, and hands back a fresh snapshot.
func (m Model) refreshCmd() tea.Cmd {
	opts := m.opts
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(opts.Context, refreshTimeout)
		defer cancel()
		repos, err := opts.Client.ListRepos(ctx, opts.Config.GitHubUser)
		if err != nil {
			opts.Store.Update(nil, err)
		} else {
			forge.SortByPushed(repos)
			opts.Store.Update(repos, nil)
		}
		return snapshotMsg(opts.Store.Snapshot())
	}
}

// Messages

type frameMsg time.Time

type pollMsg time.Time

type snapshotMsg state.Snapshot

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func pollCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg { return pollMsg(t) })
}

// fetchSnapshotCmd reads the store off the update loop.
func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg { return snapshotMsg(store.Snapshot()) }
}

// Run starts the UI and blocks until quit.
func Run(opts Options) error {
	applyColorProfile()
	progOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(New(opts), progOpts...)
	_, err := p.Run()
	return err
}
