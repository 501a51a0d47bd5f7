// internal/screens/charts/charts.go
//
// Level 5: pairs of charts built from the same data, one misleading and one
// fair. The learner picks one per pair; Continue steps through the pairs
// before leaving the level.

package charts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/dashboard-mayhem/internal/content"
	"github.com/kingrea/dashboard-mayhem/internal/screens"
	"github.com/kingrea/dashboard-mayhem/internal/stage"
)

// Screen renders level 5.
type Screen struct {
	screens.BaseScreen
	pair      int
	focus     content.Choice
	selection content.Choice
}

// New creates the level 5 screen.
func New() *Screen {
	return &Screen{BaseScreen: screens.NewBaseScreen(stage.Level5)}
}

// Enter rewinds to the first pair with nothing selected.
func (s *Screen) Enter(ctx screens.Context) {
	s.SetContext(ctx)
	s.pair = 0
	s.focus = content.ChoiceBad
	s.selection = ""
}

// Pair returns the index of the pair on screen.
func (s *Screen) Pair() int {
	return s.pair
}

// Selection returns the chart picked for the current pair, if any.
func (s *Screen) Selection() content.Choice {
	return s.selection
}

func (s *Screen) onLastPair() bool {
	return s.pair >= len(s.Journey().Charts.Pairs)-1
}

// Update moves focus between the two charts and records a pick.
func (s *Screen) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(km, screens.KeyLeft):
		s.focus = content.ChoiceBad
	case key.Matches(km, screens.KeyRight):
		s.focus = content.ChoiceGood
	case key.Matches(km, screens.KeySelect):
		s.selection = s.focus
	}
	return nil
}

// Continue shows the next pair, and advances only from the last one.
func (s *Screen) Continue() tea.Cmd {
	if s.onLastPair() {
		return screens.Advance()
	}
	s.pair++
	s.focus = content.ChoiceBad
	s.selection = ""
	return nil
}

// ContinueLabel depends on whether pairs remain.
func (s *Screen) ContinueLabel() string {
	section := s.Journey().Charts
	if s.onLastPair() {
		return section.ContinueLabel
	}
	return section.NextLabel
}

// Hints lists the chart keys.
func (s *Screen) Hints() []key.Binding {
	pick := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick chart"))
	return []key.Binding{screens.KeyLeft, screens.KeyRight, pick}
}

// View renders the pair side by side.
func (s *Screen) View(width int) string {
	section := s.Journey().Charts
	theme := s.Theme()
	pair := section.Pairs[s.pair]

	boxWidth := max(30, (width-6)/2)
	box := func(choice content.Choice, chart content.ChartSpec, label string) string {
		border := lipgloss.Color("#444444")
		switch {
		case s.selection == choice && choice == content.ChoiceGood:
			border = theme.Good
		case s.selection == choice:
			border = theme.Bad
		case s.focus == choice:
			border = theme.Accent
		}
		body := theme.Dim(label) + "\n" + renderChart(chart, pair.Data, theme)
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			Width(boxWidth).
			Render(body)
	}

	var b strings.Builder
	b.WriteString(theme.Title(section.Title))
	b.WriteString("\n")
	b.WriteString(theme.Lead(section.Lead, width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).Render(
		fmt.Sprintf("%s (%d/%d)", pair.Title, s.pair+1, len(section.Pairs))))
	b.WriteString("\n")
	b.WriteString(theme.Dim(pair.Description))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		box(content.ChoiceBad, pair.Bad, "Chart A"),
		box(content.ChoiceGood, pair.Good, "Chart B"),
	))
	if s.selection != "" {
		b.WriteString("\n")
		b.WriteString(theme.Feedback("Feedback: "+pair.FeedbackFor(s.selection), width))
	}
	return b.String()
}
