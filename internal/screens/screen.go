// internal/screens/screen.go
//
// Defines the Screen interface every stage's content implements.
// A screen owns its stage-local interaction state and talks back to the
// stage controller only through transition messages.

package screens

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/dashboard-mayhem/internal/content"
	"github.com/kingrea/dashboard-mayhem/internal/stage"
)

// Context is what the shell hands a screen when it becomes current.
type Context struct {
	Stage    stage.Stage
	Progress float64
	Journey  *content.Journey
	Theme    Theme
}

// Screen is the content provider for one stage.
type Screen interface {
	// Stage returns the stage this screen renders.
	Stage() stage.ID

	// Enter is called every time the stage becomes current. Implementations
	// must discard all stage-local state so revisits start clean.
	Enter(ctx Context)

	// Update handles messages while the screen is current.
	Update(msg tea.Msg) tea.Cmd

	// View renders the screen body at the given width.
	View(width int) string

	// ContinueLabel names the forward affordance.
	ContinueLabel() string

	// Continue is invoked when the learner presses the forward key.
	Continue() tea.Cmd

	// Hints lists screen-specific key bindings for the help line.
	Hints() []key.Binding
}

// TransitionMsg asks the shell to move the stage controller.
type TransitionMsg struct {
	Kind   stage.TransitionKind
	Target stage.ID
}

// ExportRequestMsg asks the shell to write the journey summary.
type ExportRequestMsg struct{}

// ExportResultMsg reports where the summary was written.
type ExportResultMsg struct {
	Paths []string
	Err   error
}

// Advance requests a move to the next stage.
func Advance() tea.Cmd {
	return transition(stage.KindAdvance, "")
}

// Retreat requests a move to the previous stage.
func Retreat() tea.Cmd {
	return transition(stage.KindRetreat, "")
}

// Restart requests a return to the first stage.
func Restart() tea.Cmd {
	return transition(stage.KindRestart, "")
}

// GoTo requests a jump to a specific stage.
func GoTo(id stage.ID) tea.Cmd {
	return transition(stage.KindGoTo, id)
}

func transition(kind stage.TransitionKind, target stage.ID) tea.Cmd {
	return func() tea.Msg {
		return TransitionMsg{Kind: kind, Target: target}
	}
}

// BaseScreen provides common functionality for all screens.
type BaseScreen struct {
	id        stage.ID
	ctx       Context
	statusMsg string
}

// NewBaseScreen creates a BaseScreen bound to a stage.
func NewBaseScreen(id stage.ID) BaseScreen {
	return BaseScreen{id: id}
}

// Stage returns the stage this screen renders.
func (b *BaseScreen) Stage() stage.ID {
	return b.id
}

// SetContext stores the context handed over on Enter and clears the status.
func (b *BaseScreen) SetContext(ctx Context) {
	b.ctx = ctx
	b.statusMsg = ""
}

// Context returns the context from the last Enter.
func (b *BaseScreen) Context() Context {
	return b.ctx
}

// Journey is shorthand for Context().Journey.
func (b *BaseScreen) Journey() *content.Journey {
	return b.ctx.Journey
}

// Theme is shorthand for Context().Theme.
func (b *BaseScreen) Theme() Theme {
	return b.ctx.Theme
}

// StatusMsg returns the current status message.
func (b *BaseScreen) StatusMsg() string {
	return b.statusMsg
}

// SetStatusMsg sets the status message.
func (b *BaseScreen) SetStatusMsg(msg string) {
	b.statusMsg = msg
}

// Continue advances by default.
func (b *BaseScreen) Continue() tea.Cmd {
	return Advance()
}

// Hints returns no screen-specific bindings by default.
func (b *BaseScreen) Hints() []key.Binding {
	return nil
}
