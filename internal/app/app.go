package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/vidyasagar/navhist/internal/browser"
	"github.com/vidyasagar/navhist/internal/logger"
	"github.com/vidyasagar/navhist/internal/storage"
	"github.com/vidyasagar/navhist/internal/theme"
	"github.com/vidyasagar/navhist/internal/ui"
)

// User-facing messages.
const (
	msgWelcome       = "Welcome to the Browser History Simulator"
	msgNoCurrent     = "No current page loaded."
	msgBackEmpty     = "Back stack is empty. Cannot go back."
	msgForwardEmpty  = "Forward stack is empty. Cannot go forward."
	msgInvalidChoice = "Invalid choice. Please try again."
	msgFarewell      = "Exiting the browser. Thank you!"
	msgNoEntries     = "No valid entries found in the file."
	msgOpenFailed    = "Unable to open browsing history file."
)

// Menu choices.
const (
	choiceDisplay = iota + 1
	choiceBack
	choiceForward
	choiceVisit
	choiceQuit
)

var menuItems = []ui.MenuItem{
	{Choice: choiceDisplay, Label: "Display Browser History"},
	{Choice: choiceBack, Label: "Go Back"},
	{Choice: choiceForward, Label: "Go Forward"},
	{Choice: choiceVisit, Label: "Visit Site"},
	{Choice: choiceQuit, Label: "Quit"},
}

// Mode represents the current input mode.
type Mode int

const (
	ModeMenu    Mode = iota
	ModeVisit        // URL prompt focused
	ModeDisplay      // history report shown
	ModeCommand      // command bar active
)

const bannerHeight = 3

// Option configures a Model.
type Option func(*Model)

// WithSessionStore sets where ":save" writes the session. When saveOnExit is
// true the session is also written on quit.
func WithSessionStore(store *storage.SessionStore, saveOnExit bool) Option {
	return func(m *Model) {
		m.store = store
		m.saveOnExit = saveOnExit
	}
}

// WithRecentSize sets how many URLs are offered as visit suggestions.
func WithRecentSize(n int) Option {
	return func(m *Model) {
		m.recent = NewRecentURLs(n)
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// WithClock overrides the source of visit timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// WithStatus sets the initial status line, typically the outcome of loading
// the seed file.
func WithStatus(msg string, isErr bool) Option {
	return func(m *Model) {
		if isErr {
			m.statusBar.SetError(msg)
		} else {
			m.statusBar.SetMessage(msg)
		}
	}
}

// Model is the top-level bubbletea model for navhist.
type Model struct {
	// UI components
	menu       ui.MenuPanel
	prompt     ui.VisitPrompt
	report     ui.ReportViewport
	statusBar  ui.StatusBar
	commandBar ui.CommandBar

	// State
	nav        *browser.Navigator
	recent     *RecentURLs
	store      *storage.SessionStore
	saveOnExit bool
	logger     logger.Logger
	now        func() time.Time
	keys       KeyMap
	mode       Mode
	width      int
	height     int
	ready      bool
	quitting   bool
	farewell   string
}

// New creates a Model driving nav.
func New(nav *browser.Navigator, opts ...Option) Model {
	m := Model{
		menu:       ui.NewMenuPanel(menuItems),
		prompt:     ui.NewVisitPrompt(),
		report:     ui.NewReportViewport(),
		statusBar:  ui.NewStatusBar(),
		commandBar: ui.NewCommandBar(),
		nav:        nav,
		logger:     logger.NewNoopLogger(),
		now:        time.Now,
		keys:       DefaultKeyMap(),
		mode:       ModeMenu,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.recent == nil {
		m.recent = NewRecentURLs(defaultRecentSize)
	}
	m.recent.AddAll(nav.Session())
	m.syncStatusBar()
	return m
}

// DescribeLoad turns the outcome of a seed file load into a status line.
// The bool reports whether the message describes a failure.
func DescribeLoad(res browser.LoadResult, err error) (string, bool) {
	var recErr *browser.RecordError
	switch {
	case errors.Is(err, browser.ErrFileOpen):
		return msgOpenFailed, true
	case errors.As(err, &recErr):
		return fmt.Sprintf("Stopped at malformed record on line %d; loaded %d entries.", recErr.Line, res.Loaded), true
	case err != nil:
		return err.Error(), true
	case res.Loaded == 0:
		return msgNoEntries, false
	case res.Skipped > 0:
		return fmt.Sprintf("Loaded %d entries, skipped %d malformed.", res.Loaded, res.Skipped), false
	default:
		return fmt.Sprintf("Loaded %d entries.", res.Loaded), false
	}
}

// Mode returns the current input mode.
func (m Model) Mode() Mode {
	return m.mode
}

// Status returns the current status line message.
func (m Model) Status() string {
	return m.statusBar.Message()
}

// Farewell returns the goodbye message once the model has quit.
func (m Model) Farewell() string {
	return m.farewell
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		if m.mode == ModeDisplay {
			m.refreshReport()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, m.updateComponents(msg)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return m.farewell + "\n"
	}
	if !m.ready {
		return "\n  Loading navhist..."
	}

	// Layout:
	// [banner]
	// [menu | report]
	// [url prompt] (visit mode)
	// [status bar]
	// [command bar] (if active)

	var sections []string
	sections = append(sections, m.bannerView())

	switch m.mode {
	case ModeDisplay:
		sections = append(sections, m.report.View())
	case ModeVisit:
		sections = append(sections, m.menu.View(), m.prompt.View())
	default:
		sections = append(sections, m.menu.View())
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	gap := m.height - lipgloss.Height(body) - 1
	if m.commandBar.IsActive() {
		gap--
	}
	if gap > 0 {
		body += strings.Repeat("\n", gap)
	}

	out := []string{body, m.statusBar.View()}
	if m.commandBar.IsActive() {
		out = append(out, m.commandBar.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

func (m Model) bannerView() string {
	t := theme.Current

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Padding(0, 1)

	lineStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Padding(0, 1)

	line := msgNoCurrent
	if cur, ok := m.nav.Current(); ok {
		line = "Current page: " + cur.Format(m.nav.Location())
	}

	return titleStyle.Render(msgWelcome) + "\n" + lineStyle.Render(line) + "\n"
}

// layout recalculates dimensions for all components.
func (m *Model) layout() {
	m.menu.SetWidth(m.width)
	m.prompt.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)
	m.commandBar.SetWidth(m.width)

	statusBarHeight := 1
	commandBarHeight := 0
	if m.commandBar.IsActive() {
		commandBarHeight = 1
	}
	reportHeight := m.height - bannerHeight - statusBarHeight - commandBarHeight
	if reportHeight < 1 {
		reportHeight = 1
	}
	m.report.SetSize(m.width, reportHeight)
}

// handleKeyMsg processes key events based on current mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Always allow Ctrl+C to quit.
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.mode {
	case ModeVisit:
		return m.handleVisitMode(msg)
	case ModeDisplay:
		return m.handleDisplayMode(msg)
	case ModeCommand:
		return m.handleCommandMode(msg)
	default:
		return m.handleMenuMode(msg)
	}
}

// handleMenuMode processes keys on the main menu.
func (m Model) handleMenuMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Display):
		return m.choose(choiceDisplay)
	case key.Matches(msg, m.keys.Back):
		return m.choose(choiceBack)
	case key.Matches(msg, m.keys.Forward):
		return m.choose(choiceForward)
	case key.Matches(msg, m.keys.Visit):
		return m.choose(choiceVisit)
	case key.Matches(msg, m.keys.Quit):
		return m.choose(choiceQuit)
	case key.Matches(msg, m.keys.Up):
		m.menu.CursorUp()
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.menu.CursorDown()
		return m, nil
	case key.Matches(msg, m.keys.Select):
		return m.choose(m.menu.Selected())
	case key.Matches(msg, m.keys.CommandMode):
		m.mode = ModeCommand
		m.statusBar.SetMode(ui.ModeCommand)
		cmd := m.commandBar.Open()
		m.layout()
		return m, cmd
	case key.Matches(msg, m.keys.CycleTheme):
		return m.cycleTheme()
	}

	m.logger.Debug("invalid menu choice", zap.String("key", msg.String()))
	m.statusBar.SetError(msgInvalidChoice)
	return m, nil
}

// choose runs a numbered menu choice.
func (m Model) choose(choice int) (tea.Model, tea.Cmd) {
	switch choice {
	case choiceDisplay:
		m.mode = ModeDisplay
		m.statusBar.SetMode(ui.ModeDisplay)
		m.statusBar.SetMessage("")
		m.refreshReport()
		m.syncStatusBar()
		return m, nil

	case choiceBack:
		cur, ok := m.nav.Back(1)
		if !ok {
			m.statusBar.SetError(msgBackEmpty)
		} else {
			m.statusBar.SetMessage("Now at " + cur.URL())
		}
		m.syncStatusBar()
		return m, nil

	case choiceForward:
		cur, ok := m.nav.Forward(1)
		if !ok {
			m.statusBar.SetError(msgForwardEmpty)
		} else {
			m.statusBar.SetMessage("Now at " + cur.URL())
		}
		m.syncStatusBar()
		return m, nil

	case choiceVisit:
		m.mode = ModeVisit
		m.statusBar.SetMode(ui.ModeVisit)
		m.statusBar.SetMessage("")
		return m, m.prompt.Open(m.recent.List())

	case choiceQuit:
		return m.quit()
	}

	m.statusBar.SetError(msgInvalidChoice)
	return m, nil
}

// handleVisitMode processes keys while the URL prompt is focused.
func (m Model) handleVisitMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.backToMenu()
		m.statusBar.SetMessage("Visit cancelled.")
		return m, nil

	case tea.KeyEnter:
		url, ok := m.prompt.Submit()
		if !ok {
			m.statusBar.SetError(m.prompt.Err())
			return m, nil
		}
		ts := m.now().Unix()
		if err := m.nav.Visit(url, ts); err != nil {
			m.logger.Warn("visit failed", zap.String("url", url), zap.Error(err))
			m.statusBar.SetError(err.Error())
			return m, nil
		}
		m.logger.Debug("visited", zap.String("url", url), zap.Int64("timestamp", ts))
		m.recent.Add(browser.NewNavigationEntry(url, ts))
		m.backToMenu()
		m.statusBar.SetMessage("Visited " + url)
		m.syncStatusBar()
		return m, nil
	}

	return m, m.prompt.Update(msg)
}

// handleDisplayMode processes keys while the history report is shown.
func (m Model) handleDisplayMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.backToMenu()
		return m, nil
	case key.Matches(msg, m.keys.ScrollDown):
		m.report.LineDown(1)
	case key.Matches(msg, m.keys.ScrollUp):
		m.report.LineUp(1)
	case key.Matches(msg, m.keys.HalfPageDown):
		m.report.LineDown(max(m.height/2, 1))
	case key.Matches(msg, m.keys.HalfPageUp):
		m.report.LineUp(max(m.height/2, 1))
	case key.Matches(msg, m.keys.GotoTop):
		m.report.GotoTop()
	case key.Matches(msg, m.keys.GotoBottom):
		m.report.GotoBottom()
	default:
		cmd := m.updateComponents(msg)
		m.syncStatusBar()
		return m, cmd
	}
	m.syncStatusBar()
	return m, nil
}

// handleCommandMode processes keys while the command bar is open.
func (m Model) handleCommandMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		line := m.commandBar.Submit()
		m.backToMenu()
		return m.executeCommand(line)
	}

	cb, cmd := m.commandBar.Update(msg)
	m.commandBar = *cb
	if !m.commandBar.IsActive() {
		m.backToMenu()
	}
	return m, cmd
}

// executeCommand handles :commands.
func (m Model) executeCommand(line string) (tea.Model, tea.Cmd) {
	c, ok := ui.ParseCommand(line)
	if !ok {
		return m, nil
	}

	switch c.Name {
	case "q", "quit":
		return m.quit()

	case "load":
		if len(c.Args) == 0 {
			m.statusBar.SetError("Usage: :load <file>")
			return m, nil
		}
		res, err := m.nav.LoadFile(c.Arg())
		m.recent.AddAll(m.nav.Session())
		text, isErr := DescribeLoad(res, err)
		if isErr {
			m.statusBar.SetError(text)
		} else {
			m.statusBar.SetMessage(text)
		}

	case "save", "w":
		if err := m.saveSession(); err != nil {
			m.statusBar.SetError(err.Error())
		} else {
			m.statusBar.SetMessage("Session saved to " + m.store.Path())
		}

	case "clear":
		m.nav.Reset()
		m.statusBar.SetMessage("History cleared.")

	case "theme":
		if len(c.Args) > 0 {
			if theme.Set(c.Args[0]) {
				m.statusBar.SetMessage(fmt.Sprintf("Theme: %s", c.Args[0]))
			} else {
				m.statusBar.SetError(fmt.Sprintf("Unknown theme: %s (available: %s)", c.Args[0], strings.Join(theme.List(), ", ")))
			}
		} else {
			m.statusBar.SetMessage(fmt.Sprintf("Current: %s | Available: %s", theme.Current.Name, strings.Join(theme.List(), ", ")))
		}

	default:
		m.statusBar.SetError(fmt.Sprintf("Unknown command: %s", c.Name))
	}

	m.syncStatusBar()
	return m, nil
}

// cycleTheme switches to the next available theme.
func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	themes := theme.List()
	if len(themes) == 0 {
		return m, nil
	}
	next := themes[0]
	for i, name := range themes {
		if name == theme.Current.Name {
			next = themes[(i+1)%len(themes)]
			break
		}
	}
	theme.Set(next)
	m.statusBar.SetMessage(fmt.Sprintf("Theme: %s", next))
	return m, nil
}

// quit says goodbye, saving the session first when configured to.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.farewell = msgFarewell
	if m.saveOnExit {
		if err := m.saveSession(); err != nil {
			m.logger.Error("saving session on exit", zap.Error(err))
			m.farewell += "\nSession not saved: " + err.Error()
		}
	}
	m.quitting = true
	m.statusBar.SetMessage(msgFarewell)
	return m, tea.Quit
}

var errNoSessionStore = errors.New("no session file configured")

func (m Model) saveSession() error {
	if m.store == nil {
		return errNoSessionStore
	}
	if err := m.store.Save(m.nav.Session()); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	m.logger.Info("session saved", zap.String("path", m.store.Path()))
	return nil
}

// backToMenu leaves any sub-mode and returns to the menu.
func (m *Model) backToMenu() {
	m.mode = ModeMenu
	m.prompt.Close()
	if m.commandBar.IsActive() {
		m.commandBar.Close()
	}
	m.statusBar.SetMode(ui.ModeMenu)
	m.layout()
}

// refreshReport re-renders the history report into the viewport.
func (m *Model) refreshReport() {
	m.report.SetContent(ui.RenderReport(m.nav, m.width))
}

// updateComponents forwards messages to sub-components.
func (m *Model) updateComponents(msg tea.Msg) tea.Cmd {
	switch m.mode {
	case ModeDisplay:
		vp, cmd := m.report.Update(msg)
		m.report = *vp
		return cmd
	case ModeVisit:
		return m.prompt.Update(msg)
	case ModeCommand:
		cb, cmd := m.commandBar.Update(msg)
		m.commandBar = *cb
		return cmd
	}
	return nil
}

// syncStatusBar updates the status bar with current state.
func (m *Model) syncStatusBar() {
	if cur, ok := m.nav.Current(); ok {
		m.statusBar.SetCurrent(cur.URL(), cur.Time())
	} else {
		m.statusBar.SetCurrent("", time.Time{})
	}
	m.statusBar.SetDepths(m.nav.BackLen(), m.nav.ForwardLen())
	m.statusBar.SetScrollInfo(m.report.ScrollInfo())
}
