package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lumipallolabs/fx/internal/core"
	"github.com/lumipallolabs/fx/internal/logging"
)

// DefaultTickRate is how often the screen is redrawn without input
const DefaultTickRate = 250 * time.Millisecond

// tickMsg drives the periodic redraw
type tickMsg time.Time

// Config holds the UI settings chosen at startup
type Config struct {
	Version  string
	TickRate time.Duration
	// Reporter must be the sink the controller reports to; its last error
	// is shown on the status line
	Reporter *logging.Reporter
}

// App is the main TUI application model
type App struct {
	// Core controller (navigation logic)
	ctrl *core.Controller

	// UI Components
	header   Header
	dirPanel DirPanel
	info     InfoPanel
	overlay  HelpOverlay
	help     help.Model
	keys     KeyMap

	tickRate time.Duration
	reporter *logging.Reporter

	// Dimensions
	width  int
	height int
}

// NewApp creates a new application instance around ctrl
func NewApp(ctrl *core.Controller, cfg Config) App {
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}
	if cfg.Reporter == nil {
		cfg.Reporter = logging.NewReporter()
	}
	return App{
		ctrl:     ctrl,
		header:   NewHeader(cfg.Version),
		dirPanel: NewDirPanel(),
		info:     NewInfoPanel(),
		overlay:  NewHelpOverlay(cfg.Version),
		help:     help.New(),
		keys:     DefaultKeyMap(),
		tickRate: cfg.TickRate,
		reporter: cfg.Reporter,
	}
}

// Init implements tea.Model
func (a App) Init() tea.Cmd {
	return a.tick()
}

func (a App) tick() tea.Cmd {
	return tea.Tick(a.tickRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateLayout()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tickMsg:
		// redraw from cached panel data
		return a, a.tick()
	}

	return a, nil
}

// handleKey handles keyboard input
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay - any key closes it
	if a.overlay.IsVisible() {
		a.overlay.SetVisible(false)
		return a, nil
	}

	if key.Matches(msg, a.keys.Help) {
		a.overlay.Toggle()
		return a, nil
	}

	action := a.keys.Action(msg)
	if action == core.ActionNone {
		return a, nil
	}

	// the status line shows what went wrong in the latest load only
	switch action {
	case core.ActionDescend, core.ActionAscend, core.ActionReload:
		a.reporter.Clear()
	}

	switch a.ctrl.Apply(action).(type) {
	case core.QuitEvent:
		logging.Debug.Info("quit")
		return a, tea.Quit
	case core.NavigatedEvent:
		a.dirPanel.Reset()
		a.info.Invalidate()
	}

	a.syncPanels()
	return a, nil
}

// syncPanels brings scroll position and cached metadata up to date
func (a *App) syncPanels() {
	state := a.ctrl.State()
	a.dirPanel.Sync(state.Entries)
	a.info.Refresh(state)
}

// updateLayout calculates component sizes
func (a *App) updateLayout() {
	headerHeight := 2
	helpBarHeight := 1
	statusHeight := 1

	panelHeight := a.height - headerHeight - helpBarHeight - statusHeight
	if panelHeight < 3 {
		panelHeight = 3
	}

	listWidth := a.width * 60 / 100
	if listWidth < 20 {
		listWidth = 20
	}

	a.header.SetWidth(a.width)
	a.dirPanel.SetSize(listWidth, panelHeight)
	a.info.SetSize(a.width-listWidth, panelHeight)
	a.overlay.SetSize(a.width, a.height)
	a.syncPanels()
}

// View implements tea.Model
func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	if a.overlay.IsVisible() {
		return a.overlay.View()
	}

	state := a.ctrl.State()

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		a.dirPanel.View(state),
		a.info.View(state),
	)

	var status string
	if err := a.reporter.Last(); err != nil {
		status = ErrorStyle.Render(fmt.Sprintf("Error: %v", err))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.header.View(state, a.ctrl.SortOrder()),
		panels,
		status,
		HelpBar(a.help, a.keys, a.width),
	)
}
