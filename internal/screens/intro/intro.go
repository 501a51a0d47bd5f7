// internal/screens/intro/intro.go
//
// The opening screen: the Data Detective pitch and the start affordance.

package intro

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/dashboard-mayhem/internal/screens"
	"github.com/kingrea/dashboard-mayhem/internal/stage"
)

// Screen renders the intro stage.
type Screen struct {
	screens.BaseScreen
}

// New creates the intro screen.
func New() *Screen {
	return &Screen{BaseScreen: screens.NewBaseScreen(stage.Intro)}
}

// Enter resets the screen.
func (s *Screen) Enter(ctx screens.Context) {
	s.SetContext(ctx)
}

// Update starts the journey on enter.
func (s *Screen) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, screens.KeySelect) {
		return s.Continue()
	}
	return nil
}

// ContinueLabel returns the start label.
func (s *Screen) ContinueLabel() string {
	if j := s.Journey(); j != nil && j.Intro.StartLabel != "" {
		return j.Intro.StartLabel
	}
	return "Start"
}

// Hints advertises enter as a second way to start.
func (s *Screen) Hints() []key.Binding {
	return []key.Binding{key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start"))}
}

// View renders the pitch.
func (s *Screen) View(width int) string {
	j := s.Journey()
	if j == nil {
		return ""
	}
	theme := s.Theme()
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Accent).
		Padding(1, 0).
		Render(strings.ToUpper(j.Intro.Title))
	pitch := theme.Markdown(j.Intro.Pitch, width)
	start := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(theme.Accent).
		Padding(0, 2).
		MarginTop(1).
		Render(s.ContinueLabel())
	return lipgloss.JoinVertical(lipgloss.Left, title, pitch, start)
}
