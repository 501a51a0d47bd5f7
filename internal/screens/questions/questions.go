// internal/screens/questions/questions.go
//
// Level 1: each card shows a vague business question until the learner
// reveals the sharper version.

package questions

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/dashboard-mayhem/internal/screens"
	"github.com/kingrea/dashboard-mayhem/internal/stage"
)

// Screen renders level 1.
type Screen struct {
	screens.BaseScreen
	revealed []bool
	cursor   int
}

// New creates the level 1 screen.
func New() *Screen {
	return &Screen{BaseScreen: screens.NewBaseScreen(stage.Level1)}
}

// Enter hides every card again.
func (s *Screen) Enter(ctx screens.Context) {
	s.SetContext(ctx)
	s.cursor = 0
	s.revealed = make([]bool, len(ctx.Journey.Questions.Pairs))
}

// Revealed reports whether card i shows its better question.
func (s *Screen) Revealed(i int) bool {
	return i >= 0 && i < len(s.revealed) && s.revealed[i]
}

// Update moves the cursor and reveals cards.
func (s *Screen) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(km, screens.KeyUp):
		s.cursor = screens.MoveCursor(s.cursor, len(s.revealed), true)
	case key.Matches(km, screens.KeyDown):
		s.cursor = screens.MoveCursor(s.cursor, len(s.revealed), false)
	case key.Matches(km, screens.KeySelect):
		if s.cursor < len(s.revealed) {
			s.revealed[s.cursor] = true
			s.SetStatusMsg(fmt.Sprintf("%d of %d questions sharpened", s.revealedCount(), len(s.revealed)))
		}
	}
	return nil
}

func (s *Screen) revealedCount() int {
	n := 0
	for _, r := range s.revealed {
		if r {
			n++
		}
	}
	return n
}

// ContinueLabel returns the level's forward label.
func (s *Screen) ContinueLabel() string {
	return s.Journey().Questions.ContinueLabel
}

// Hints lists the card keys.
func (s *Screen) Hints() []key.Binding {
	reveal := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "reveal"))
	return []key.Binding{screens.KeyUp, screens.KeyDown, reveal}
}

// View renders the cards.
func (s *Screen) View(width int) string {
	section := s.Journey().Questions
	theme := s.Theme()
	var b strings.Builder
	b.WriteString(theme.Title(section.Title))
	b.WriteString("\n")
	b.WriteString(theme.Lead(section.Lead, width))
	b.WriteString("\n\n")
	for i, pair := range section.Pairs {
		label, text, color := "❌ Vague Question", pair.Bad, theme.Bad
		if s.revealed[i] {
			label, text, color = "✅ Better Question", pair.Good, theme.Accent
		}
		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color).
			Padding(0, 1).
			Width(max(20, width-6)).
			Render(lipgloss.NewStyle().Bold(true).Foreground(color).Render(label) + "\n" + text)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, theme.Cursor(i == s.cursor), card))
		b.WriteString("\n")
	}
	if status := s.StatusMsg(); status != "" {
		b.WriteString(theme.Dim(status))
	}
	return b.String()
}
