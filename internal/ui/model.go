package ui

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/browser"
	"go.uber.org/zap"

	"github.com/five82/hackdex/internal/catalog"
	"github.com/five82/hackdex/internal/filter"
	"github.com/five82/hackdex/internal/prefs"
	"github.com/five82/hackdex/internal/render"
	"github.com/five82/hackdex/internal/state"
)

// focus is the pane receiving keyboard input.
type focus int

const (
	focusResults focus = iota
	focusSearch
	focusFilters
)

// focusOrder is the tab cycle.
var focusOrder = []focus{focusSearch, focusFilters, focusResults}

// Options configures the UI.
type Options struct {
	Context context.Context
	// Load fetches the catalog and reports the resolved page state. It runs
	// once, off the update loop.
	Load func(ctx context.Context) state.Snapshot
	// Criteria preselects search text and filter values.
	Criteria  filter.Criteria
	ThemeName string
	CardWidth int
	PrefsPath string
	LogPath   string
	// SiteURL resolves a site-relative path such as "h/<id>" to an absolute
	// URL. Nil leaves paths unchanged.
	SiteURL func(path string) string
	// Open launches a URL in the system browser. Defaults to browser.OpenURL.
	Open   func(url string) error
	Logger *zap.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	load      func(ctx context.Context) state.Snapshot
	prefsPath string
	logPath   string
	siteURL   func(string) string
	open      func(string) error
	logger    *zap.Logger

	// UI state
	theme     Theme
	cardWidth int
	width     int
	height    int
	ready     bool
	focus     focus
	keys      keyMap
	help      help.Model
	spinner   spinner.Model
	search    textinput.Model
	showHelp  bool
	modal     Modal
	flash     string

	// Data state
	snapshot  state.Snapshot
	formatter *catalog.Formatter
	criteria  filter.Criteria

	// Filter panel state
	groups     []filter.Group
	formRows   []formRow
	formCursor int
	formView   viewport.Model

	// Results state
	cards       []render.Card
	selected    int
	rowOffsets  []int
	resultsView viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Default().Theme
	}

	cardWidth := opts.CardWidth
	if cardWidth <= 0 {
		cardWidth = prefs.DefaultCardWidth
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	open := opts.Open
	if open == nil {
		open = browser.OpenURL
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search titles..."
	ti.CharLimit = 120

	criteria := opts.Criteria.Clone()
	ti.SetValue(criteria.Search)

	m := Model{
		ctx:       ctx,
		load:      opts.Load,
		prefsPath: opts.PrefsPath,
		logPath:   opts.LogPath,
		siteURL:   opts.SiteURL,
		open:      open,
		logger:    logger,
		theme:     GetTheme(themeName),
		cardWidth: cardWidth,
		focus:     focusResults,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		spinner:   sp,
		search:    ti,
		criteria:  criteria,
	}
	m.formView = viewport.New(0, 0)
	m.resultsView = viewport.New(0, 0)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.load != nil {
		cmds = append(cmds, loadCmd(m.ctx, m.load))
	}
	return tea.Batch(cmds...)
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
		m.layout()
		return m, nil

	case spinner.TickMsg:
		if m.snapshot.Phase != state.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case diagnosticsMsg:
		m.modal = newDiagnosticsModal(m.logPath, msg.lines, msg.err)
		return m, nil

	case openedMsg:
		if msg.err != nil {
			m.logger.Warn("open detail page failed", zap.String("url", msg.url), zap.Error(msg.err))
			m.flash = "Could not open " + msg.url
		} else {
			m.flash = "Opened " + msg.url
		}
		return m, nil
	}

	if m.modal != nil {
		var cmd tea.Cmd
		var done bool
		m.modal, cmd, done = m.modal.Update(msg, m.keys)
		if done {
			m.modal = nil
		}
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	switch m.snapshot.Phase {
	case state.PhaseLoading:
		return m.renderLoading()
	case state.PhaseError:
		return m.renderError()
	}

	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	return m.renderMain()
}

// applySnapshot moves the page out of Loading. Only the first resolved
// snapshot is accepted.
func (m *Model) applySnapshot(snap state.Snapshot) {
	if m.snapshot.Phase != state.PhaseLoading || snap.Phase == state.PhaseLoading {
		return
	}
	m.snapshot = snap
	if snap.Phase != state.PhaseReady {
		return
	}

	m.formatter = catalog.NewFormatter(snap.Names, m.logger)
	m.groups = filter.Options(snap.Hacks, snap.Names)
	m.buildFormRows()
	m.refilter()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Loading and Error accept nothing but quit.
	if m.snapshot.Phase != state.PhaseReady {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		var cmd tea.Cmd
		var done bool
		m.modal, cmd, done = m.modal.Update(msg, m.keys)
		if done {
			m.modal = nil
		}
		return m, cmd
	}

	m.flash = ""

	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
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

	case key.Matches(msg, m.keys.Diagnostics):
		return m, diagnosticsCmd(m.logPath, m.theme)

	case key.Matches(msg, m.keys.Tab):
		return m, m.cycleFocus(1)

	case key.Matches(msg, m.keys.ShiftTab):
		return m, m.cycleFocus(-1)

	case key.Matches(msg, m.keys.Search):
		return m, m.setFocus(focusSearch)
	}

	switch m.focus {
	case focusFilters:
		return m.handleFormKey(msg)
	case focusResults:
		return m.handleResultsKey(msg)
	}
	return m, nil
}

// handleSearchKey routes keys to the search input. Every edit runs a full
// filter and render pass.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), msg.Type == tea.KeyEnter:
		return m, m.setFocus(focusResults)
	case key.Matches(msg, m.keys.Tab):
		return m, m.cycleFocus(1)
	case key.Matches(msg, m.keys.ShiftTab):
		return m, m.cycleFocus(-1)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if value := m.search.Value(); value != m.criteria.Search {
		m.criteria.Search = value
		m.refilter()
	}
	return m, cmd
}

// cycleFocus moves focus by delta along focusOrder.
func (m *Model) cycleFocus(delta int) tea.Cmd {
	idx := 0
	for i, f := range focusOrder {
		if f == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(focusOrder)) % len(focusOrder)
	return m.setFocus(focusOrder[idx])
}

// setFocus changes the focused pane and re-lays out, since the filter panel
// is only shown on narrow terminals while focused.
func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	var cmd tea.Cmd
	if f == focusSearch {
		cmd = m.search.Focus()
	} else {
		m.search.Blur()
	}
	m.layout()
	return cmd
}

// cycleTheme switches to the next theme and persists the choice.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefsPath != "" {
		p := prefs.Prefs{Theme: m.theme.Name, CardWidth: m.cardWidth}
		if err := prefs.Save(m.prefsPath, p); err != nil {
			m.logger.Warn("save preferences failed", zap.String("path", m.prefsPath), zap.Error(err))
		}
	}
	m.renderForm()
	m.renderResults()
}

// layout sizes the panes for the current terminal.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	bodyHeight := maxInt(1, m.height-chromeHeight)

	formWidth := 0
	if m.showForm() {
		formWidth = minInt(FilterPanelWidth, m.width)
	}

	m.formView.Width = maxInt(0, formWidth-2)
	m.formView.Height = maxInt(0, bodyHeight-2)
	m.resultsView.Width = maxInt(0, m.width-formWidth)
	m.resultsView.Height = bodyHeight
	m.search.Width = maxInt(10, m.width-len(m.search.Prompt)-2)
	m.help.Width = m.width

	m.renderForm()
	m.renderResults()
}

// showForm reports whether the filter panel is visible.
func (m Model) showForm() bool {
	return m.width >= LayoutCompactWidth || m.focus == focusFilters
}

// resolveLink turns a card link into an absolute URL.
func (m Model) resolveLink(link string) string {
	if m.siteURL == nil {
		return link
	}
	return m.siteURL(link)
}

// Messages

type loadedMsg state.Snapshot

type diagnosticsMsg struct {
	lines []string
	err   error
}

type openedMsg struct {
	url string
	err error
}

// Commands

func loadCmd(ctx context.Context, load func(context.Context) state.Snapshot) tea.Cmd {
	return func() tea.Msg {
		return loadedMsg(load(ctx))
	}
}

func openCmd(open func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		return openedMsg{url: url, err: open(url)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	// The browser helper writes to the terminal, which the TUI owns.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return shutdownErr(m.ctx, err)
}

// shutdownErr treats the program being stopped by a cancelled context (a
// signal) as a clean exit.
func shutdownErr(ctx context.Context, err error) error {
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// statusLine is the text shown in place of the footer help.
func (m Model) statusLine() string {
	return strings.TrimSpace(m.flash)
}
