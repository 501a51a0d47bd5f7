// internal/screens/summary/summary.go
//
// The terminal screen. Continue restarts the journey; the learner can also
// export a summary of the session.

package summary

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/dashboard-mayhem/internal/screens"
	"github.com/kingrea/dashboard-mayhem/internal/stage"
)

var keyExport = key.NewBinding(
	key.WithKeys("e"),
	key.WithHelp("e", "export summary"),
)

// Screen renders the summary stage.
type Screen struct {
	screens.BaseScreen
	exported []string
	err      error
}

// New creates the summary screen.
func New() *Screen {
	return &Screen{BaseScreen: screens.NewBaseScreen(stage.Summary)}
}

// Enter clears the last export result.
func (s *Screen) Enter(ctx screens.Context) {
	s.SetContext(ctx)
	s.exported = nil
	s.err = nil
}

// Exported returns the files written by the last export.
func (s *Screen) Exported() []string {
	return s.exported
}

// Update requests exports and records their outcome.
func (s *Screen) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(m, keyExport) {
			s.SetStatusMsg("Exporting summary…")
			return func() tea.Msg { return screens.ExportRequestMsg{} }
		}
	case screens.ExportResultMsg:
		s.exported = m.Paths
		s.err = m.Err
		if m.Err != nil {
			s.SetStatusMsg(fmt.Sprintf("Export failed: %v", m.Err))
		} else {
			s.SetStatusMsg("Summary exported")
		}
	}
	return nil
}

// Continue restarts the journey; there is no stage after this one.
func (s *Screen) Continue() tea.Cmd {
	return screens.Restart()
}

// ContinueLabel returns the restart label.
func (s *Screen) ContinueLabel() string {
	return s.Journey().Summary.RestartLabel
}

// Hints lists the export key.
func (s *Screen) Hints() []key.Binding {
	return []key.Binding{keyExport}
}

// View renders milestones, quote and progress.
func (s *Screen) View(width int) string {
	sum := s.Journey().Summary
	theme := s.Theme()
	var b strings.Builder
	b.WriteString(theme.Title(sum.Title))
	b.WriteString("\n")
	b.WriteString(theme.Markdown(sum.Body, width))
	b.WriteString("\n\n")
	for _, m := range sum.Milestones {
		b.WriteString("  ✅ " + m + "\n")
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Italic(true).
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(theme.Accent).
		PaddingLeft(1).
		Width(max(20, width-4)).
		Render(fmt.Sprintf("%q", sum.Quote)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).Render("📊 Your Progress"))
	b.WriteString("\n")
	b.WriteString(sum.ProgressNote)
	b.WriteString("\n")
	for _, path := range s.exported {
		b.WriteString(theme.Dim("  → " + path))
		b.WriteString("\n")
	}
	if status := s.StatusMsg(); status != "" {
		b.WriteString(theme.Dim(status))
	}
	return b.String()
}
