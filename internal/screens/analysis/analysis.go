// internal/screens/analysis/analysis.go
//
// Level 4: pick a cleaned dataset, run one of its canned analysis actions
// and see which rows the conclusion rests on.

package analysis

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/dashboard-mayhem/internal/content"
	"github.com/kingrea/dashboard-mayhem/internal/screens"
	"github.com/kingrea/dashboard-mayhem/internal/stage"
)

// Screen renders level 4.
type Screen struct {
	screens.BaseScreen
	dataset     int
	action      int
	feedback    string
	highlighted map[int]bool
}

// New creates the level 4 screen.
func New() *Screen {
	return &Screen{BaseScreen: screens.NewBaseScreen(stage.Level4)}
}

// Enter selects the first dataset with nothing highlighted.
func (s *Screen) Enter(ctx screens.Context) {
	s.SetContext(ctx)
	s.selectDataset(0)
}

func (s *Screen) selectDataset(i int) {
	s.dataset = i
	s.action = 0
	s.feedback = ""
	s.highlighted = map[int]bool{}
	s.SetStatusMsg("")
}

func (s *Screen) current() content.Dataset {
	return s.Journey().Analysis.Datasets[s.dataset]
}

// Dataset returns the selected dataset index.
func (s *Screen) Dataset() int {
	return s.dataset
}

// Feedback returns the feedback of the last action run.
func (s *Screen) Feedback() string {
	return s.feedback
}

// Highlighted reports whether row r is highlighted.
func (s *Screen) Highlighted(r int) bool {
	return s.highlighted[r]
}

// Update switches datasets, moves between actions and runs them.
func (s *Screen) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	datasets := s.Journey().Analysis.Datasets
	switch {
	case key.Matches(km, screens.KeyLeft):
		if next := screens.MoveCursor(s.dataset, len(datasets), true); next != s.dataset {
			s.selectDataset(next)
		}
	case key.Matches(km, screens.KeyRight):
		if next := screens.MoveCursor(s.dataset, len(datasets), false); next != s.dataset {
			s.selectDataset(next)
		}
	case key.Matches(km, screens.KeyUp):
		s.action = screens.MoveCursor(s.action, len(s.current().Actions), true)
	case key.Matches(km, screens.KeyDown):
		s.action = screens.MoveCursor(s.action, len(s.current().Actions), false)
	case key.Matches(km, screens.KeySelect):
		actions := s.current().Actions
		if s.action < len(actions) {
			s.apply(actions[s.action])
		}
	}
	return nil
}

func (s *Screen) apply(action content.AnalysisAction) {
	s.feedback = action.Feedback
	s.highlighted = map[int]bool{}
	for _, r := range action.HighlightedRows {
		s.highlighted[r] = true
	}
	s.SetStatusMsg("Ran: " + action.Label)
}

// ContinueLabel returns the level's forward label.
func (s *Screen) ContinueLabel() string {
	return s.Journey().Analysis.ContinueLabel
}

// Hints lists the dataset and action keys.
func (s *Screen) Hints() []key.Binding {
	dataset := key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "dataset"))
	run := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run action"))
	return []key.Binding{dataset, screens.KeyUp, screens.KeyDown, run}
}

// View renders the dataset tabs, table, actions and feedback.
func (s *Screen) View(width int) string {
	section := s.Journey().Analysis
	theme := s.Theme()
	ds := s.current()

	tabs := make([]string, 0, len(section.Datasets))
	for i, d := range section.Datasets {
		style := lipgloss.NewStyle().Padding(0, 2).MarginRight(1)
		if i == s.dataset {
			style = style.Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(theme.Accent)
		} else {
			style = style.Foreground(lipgloss.Color("#CCCCCC")).Background(lipgloss.Color("#333333"))
		}
		tabs = append(tabs, style.Render(d.Name))
	}

	var b strings.Builder
	b.WriteString(theme.Title(section.Title))
	b.WriteString("\n")
	b.WriteString(theme.Lead(section.Lead, width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).Render(ds.Name))
	b.WriteString("\n")
	b.WriteString(theme.Dim(ds.Description))
	b.WriteString("\n")
	b.WriteString(theme.RenderTable(ds.Table, screens.TableOptions{Cursor: -1, Highlighted: s.highlighted}))
	b.WriteString("\n")
	for i, action := range ds.Actions {
		b.WriteString(theme.Cursor(i == s.action))
		b.WriteString(action.Label)
		b.WriteString("\n")
	}
	if s.feedback != "" {
		b.WriteString("\n")
		b.WriteString(theme.Feedback("Feedback: "+s.feedback, width))
	}
	if status := s.StatusMsg(); status != "" {
		b.WriteString("\n")
		b.WriteString(theme.Dim(status))
	}
	return b.String()
}
