// internal/tui/app.go
//
// This is the main TUI for Dashboard Mayhem. It uses bubbletea, which
// follows The Elm Architecture:
//
// 1. Model: the App below, holding the controller and one screen per stage
// 2. Update: global keys and transition requests are handled here, the rest
//    is forwarded to the active screen
// 3. View: stage header, progress bar, active screen, log panel, footer
//
// Screens never move the journey themselves. They return commands that emit
// screens.TransitionMsg and the App applies them to the controller.

package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/kingrea/dashboard-mayhem/internal/config"
	"github.com/kingrea/dashboard-mayhem/internal/content"
	"github.com/kingrea/dashboard-mayhem/internal/journey"
	"github.com/kingrea/dashboard-mayhem/internal/logbook"
	"github.com/kingrea/dashboard-mayhem/internal/screens"
	"github.com/kingrea/dashboard-mayhem/internal/screens/analysis"
	"github.com/kingrea/dashboard-mayhem/internal/screens/charts"
	"github.com/kingrea/dashboard-mayhem/internal/screens/cleaning"
	"github.com/kingrea/dashboard-mayhem/internal/screens/intro"
	"github.com/kingrea/dashboard-mayhem/internal/screens/predict"
	"github.com/kingrea/dashboard-mayhem/internal/screens/questions"
	"github.com/kingrea/dashboard-mayhem/internal/screens/sources"
	"github.com/kingrea/dashboard-mayhem/internal/screens/summary"
	"github.com/kingrea/dashboard-mayhem/internal/stage"
)

const logPanelLines = 6

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) AppOption {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithJourney replaces the journey content named in the config.
func WithJourney(j *content.Journey) AppOption {
	return func(a *App) {
		if j != nil {
			a.journey = j
		}
	}
}

// WithMarkdownStyle pins the glamour style instead of detecting the
// terminal background.
func WithMarkdownStyle(style string) AppOption {
	return func(a *App) {
		a.markdownStyle = style
	}
}

// WithScreens overrides the screens for their stages.
func WithScreens(list ...screens.Screen) AppOption {
	return func(a *App) {
		for _, s := range list {
			if s != nil {
				a.overrides = append(a.overrides, s)
			}
		}
	}
}

type keyMap struct {
	Next key.Binding
	Back key.Binding
	Help key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "continue")),
		Back: key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b", "back")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// App is the main application model.
type App struct {
	config     *config.Config
	journey    *content.Journey
	controller *stage.Controller
	session    *journey.Session
	logbook    *logbook.Logbook
	logger     *zap.Logger

	theme         screens.Theme
	markdownStyle string
	overrides     []screens.Screen
	screens       map[stage.ID]screens.Screen
	active        screens.Screen

	// UI components
	progress  progress.Model
	help      help.Model
	keys      keyMap
	statusMsg string
	err       error

	width  int
	height int
}

// NewApp creates the App for projectDir and enters the first stage.
func NewApp(projectDir string, opts ...AppOption) (*App, error) {
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return nil, err
	}
	a := &App{
		config: cfg,
		logger: zap.NewNop(),
		help:   help.New(),
		keys:   defaultKeyMap(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	if a.journey == nil {
		j, err := content.Load(cfg.ContentPath())
		if err != nil {
			return nil, err
		}
		a.journey = j
	}
	a.theme = screens.NewTheme(cfg.Accent(), a.markdownStyle)
	a.progress = progress.New(progress.WithSolidFill(string(a.theme.Accent)))

	reg := stage.Default()
	a.session = journey.NewSession(reg.First().ID)
	a.controller = stage.NewController(reg,
		stage.WithObserver(a.session.Observe),
		stage.WithObserver(a.onTransition),
	)
	if err := a.buildScreens(reg); err != nil {
		return nil, err
	}

	lb, err := logbook.New(cfg.JourneyLogPath())
	if err != nil {
		a.logger.Warn("journey log unavailable", zap.Error(err))
	} else {
		a.logbook = lb
		a.logInfo("Session %s opened · %s", a.session.ID(), a.controller.Current().Label())
	}
	a.logger.Info("session opened",
		zap.String("session", a.session.ID()),
		zap.String("project", cfg.ProjectDir),
	)

	a.enterCurrent()
	return a, nil
}

func (a *App) buildScreens(reg *stage.Registry) error {
	a.screens = map[stage.ID]screens.Screen{}
	for _, s := range []screens.Screen{
		intro.New(),
		questions.New(),
		sources.New(),
		cleaning.New(),
		analysis.New(),
		charts.New(),
		predict.New(),
		summary.New(),
	} {
		a.screens[s.Stage()] = s
	}
	for _, s := range a.overrides {
		a.screens[s.Stage()] = s
	}
	for _, st := range reg.Stages() {
		if _, ok := a.screens[st.ID]; !ok {
			return fmt.Errorf("tui: no screen for stage %s", st.ID)
		}
	}
	return nil
}

// Current returns the active stage.
func (a *App) Current() stage.Stage {
	return a.controller.Current()
}

// Screen returns the screen registered for id.
func (a *App) Screen(id stage.ID) screens.Screen {
	return a.screens[id]
}

// Session returns the journal for this run.
func (a *App) Session() *journey.Session {
	return a.session
}

// StatusMsg returns the footer status line.
func (a *App) StatusMsg() string {
	return a.statusMsg
}

// Err returns the last transition or export error.
func (a *App) Err() error {
	return a.err
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logError(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Error(format, args...)
}

func (a *App) onTransition(t stage.Transition) {
	a.logInfo("%s · %s → %s", t.Kind, t.From.Title, t.To.Label())
	a.logger.Debug("stage transition",
		zap.String("kind", string(t.Kind)),
		zap.String("from", string(t.From.ID)),
		zap.String("to", string(t.To.ID)),
		zap.Float64("progress", t.To.Progress()),
	)
}

// enterCurrent resets the screen of the current stage and makes it active.
func (a *App) enterCurrent() {
	st := a.controller.Current()
	scr := a.screens[st.ID]
	scr.Enter(screens.Context{
		Stage:    st,
		Progress: st.Progress(),
		Journey:  a.journey,
		Theme:    a.theme,
	})
	a.active = scr
	a.keys.Back.SetEnabled(a.controller.CanRetreat())
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle(a.journey.Intro.Title)
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.progress.Width = max(10, min(msg.Width-8, a.config.WordWrap()))
		return a, nil

	case screens.TransitionMsg:
		a.applyTransition(msg)
		return a, nil

	case screens.ExportRequestMsg:
		return a, a.exportSummary()

	case screens.ExportResultMsg:
		if msg.Err != nil {
			a.err = msg.Err
			a.logger.Error("summary export failed", zap.Error(msg.Err))
			a.logError("Export failed: %v", msg.Err)
		} else {
			a.logger.Info("summary exported", zap.Strings("paths", msg.Paths))
			a.logInfo("Summary exported to %s", strings.Join(msg.Paths, ", "))
		}
		return a, a.active.Update(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			a.logInfo("Session %s closed at %s", a.session.ID(), a.controller.Current().Label())
			return a, tea.Quit
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			return a, nil
		case key.Matches(msg, a.keys.Next):
			return a, a.active.Continue()
		case key.Matches(msg, a.keys.Back):
			return a, screens.Retreat()
		case msg.String() == "b" || msg.String() == "esc":
			// back is disabled on the first stage
			a.statusMsg = "You are at the start of the journey."
			return a, nil
		}
	}

	return a, a.active.Update(msg)
}

func (a *App) applyTransition(msg screens.TransitionMsg) {
	var err error
	switch msg.Kind {
	case stage.KindAdvance:
		err = a.controller.Advance()
	case stage.KindRetreat:
		err = a.controller.Retreat()
	case stage.KindRestart:
		a.controller.Restart()
	case stage.KindGoTo:
		err = a.controller.GoTo(msg.Target)
	default:
		err = fmt.Errorf("tui: unknown transition %q", msg.Kind)
	}
	if err != nil {
		a.err = err
		a.statusMsg = err.Error()
		a.logger.Error("transition rejected",
			zap.String("kind", string(msg.Kind)),
			zap.String("target", string(msg.Target)),
			zap.Error(err),
		)
		a.logError("Transition %s rejected: %v", msg.Kind, err)
		return
	}
	a.err = nil
	a.statusMsg = ""
	a.enterCurrent()
}

// exportSummary snapshots the session now and writes it off the update loop.
func (a *App) exportSummary() tea.Cmd {
	var tail []string
	if a.logbook != nil {
		tail, _ = a.logbook.Tail(50)
	}
	report := a.session.Report(a.controller.Registry(), a.journey.Summary.Milestones, tail)
	dir := a.config.ExportDir()
	formats := a.config.ExportFormats()
	return func() tea.Msg {
		paths, err := journey.Export(report, dir, formats)
		return screens.ExportResultMsg{Paths: paths, Err: err}
	}
}

// View renders the status board around the active screen.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}
	inner := max(20, min(width-4, a.config.WordWrap()))
	return a.renderStatusBoard(a.active.View(inner-4), inner)
}

func (a *App) renderStatusBoard(mainContent string, width int) string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.theme.Accent).
		MarginBottom(1).
		Render("▣ DASHBOARD MAYHEM")
	main := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Width(width).
		Render(mainContent)

	sections := []string{header, a.renderStagePanel(width), main, a.renderActions()}
	if a.config.ShowLog() {
		if logPanel := a.renderLogPanel(); logPanel != "" {
			sections = append(sections, logPanel)
		}
	}
	sections = append(sections, a.help.View(a))
	status := a.statusMsg
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	if a.err != nil && status == a.err.Error() {
		style = style.Foreground(a.theme.Bad)
	}
	sections = append(sections, style.Render(status))
	return strings.Join(sections, "\n")
}

func (a *App) renderStagePanel(width int) string {
	st := a.controller.Current()
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render("Stage: " + st.Label()),
		a.progress.ViewAs(st.Progress()),
	}
	if next, ok, err := a.controller.Registry().Next(st.ID); err == nil && ok {
		if upcoming, err := a.controller.Registry().Lookup(next); err == nil {
			lines = append(lines, a.theme.Dim("Next: "+upcoming.Title))
		}
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

// renderActions shows the forward action and, past the first stage, back.
func (a *App) renderActions() string {
	button := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(a.theme.Accent).
		Padding(0, 1)
	parts := []string{button.Render("[n] " + a.active.ContinueLabel())}
	if a.controller.CanRetreat() {
		back := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC")).
			Background(lipgloss.Color("#333333")).
			Padding(0, 1)
		parts = append([]string{back.Render("[b] ← Back")}, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, "  "))
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines, total := a.logbook.Tail(logPanelLines)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	if fileName == "." || fileName == "" {
		fileName = "log"
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.theme.Accent).
		Render(fmt.Sprintf("LOG · %s · %d entries", fileName, total))
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(fmt.Sprintf("%s\n%s", head, body))
}

// ShortHelp implements help.KeyMap.
func (a *App) ShortHelp() []key.Binding {
	return []key.Binding{a.keys.Next, a.keys.Back, a.keys.Help, a.keys.Quit}
}

// FullHelp implements help.KeyMap: the screen's keys, then the global ones.
func (a *App) FullHelp() [][]key.Binding {
	groups := [][]key.Binding{}
	if hints := a.active.Hints(); len(hints) > 0 {
		groups = append(groups, hints)
	}
	return append(groups, a.ShortHelp())
}
