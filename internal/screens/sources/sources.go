// internal/screens/sources/sources.go
//
// Level 2: collect each data source to reveal its sample table, then mark
// the rows that look wrong. Marks belong to this visit only.

package sources

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/dashboard-mayhem/internal/screens"
	"github.com/kingrea/dashboard-mayhem/internal/stage"
)

// focus points at a source header (row == -1) or one of its data rows.
type focus struct {
	source int
	row    int
}

// Screen renders level 2.
type Screen struct {
	screens.BaseScreen
	collected []bool
	marked    []map[int]bool
	cursor    int
}

// New creates the level 2 screen.
func New() *Screen {
	return &Screen{BaseScreen: screens.NewBaseScreen(stage.Level2)}
}

// Enter forgets collected sources and marked rows.
func (s *Screen) Enter(ctx screens.Context) {
	s.SetContext(ctx)
	n := len(ctx.Journey.Sources.Items)
	s.collected = make([]bool, n)
	s.marked = make([]map[int]bool, n)
	for i := range s.marked {
		s.marked[i] = map[int]bool{}
	}
	s.cursor = 0
}

// Collected reports whether source i has been collected.
func (s *Screen) Collected(i int) bool {
	return i >= 0 && i < len(s.collected) && s.collected[i]
}

// Marked reports whether row r of source i is marked suspicious.
func (s *Screen) Marked(i, r int) bool {
	return i >= 0 && i < len(s.marked) && s.marked[i][r]
}

// focusList flattens headers and the rows of collected sources.
func (s *Screen) focusList() []focus {
	var out []focus
	for i, src := range s.Journey().Sources.Items {
		out = append(out, focus{source: i, row: -1})
		if !s.collected[i] {
			continue
		}
		for r := range src.Table.Rows {
			out = append(out, focus{source: i, row: r})
		}
	}
	return out
}

func (s *Screen) current() (focus, bool) {
	list := s.focusList()
	if s.cursor < 0 || s.cursor >= len(list) {
		return focus{}, false
	}
	return list[s.cursor], true
}

// Update handles collecting and marking.
func (s *Screen) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	n := len(s.focusList())
	switch {
	case key.Matches(km, screens.KeyUp):
		s.cursor = screens.MoveCursor(s.cursor, n, true)
	case key.Matches(km, screens.KeyDown):
		s.cursor = screens.MoveCursor(s.cursor, n, false)
	case key.Matches(km, screens.KeySelect):
		f, ok := s.current()
		if !ok {
			return nil
		}
		name := s.Journey().Sources.Items[f.source].Name
		if f.row < 0 {
			if !s.collected[f.source] {
				s.collected[f.source] = true
				s.SetStatusMsg(fmt.Sprintf("Collected %s", name))
			}
			return nil
		}
		if s.marked[f.source][f.row] {
			delete(s.marked[f.source], f.row)
			s.SetStatusMsg(fmt.Sprintf("Unmarked row %d of %s", f.row+1, name))
		} else {
			s.marked[f.source][f.row] = true
			s.SetStatusMsg(fmt.Sprintf("Marked row %d of %s as suspicious", f.row+1, name))
		}
	}
	return nil
}

// ContinueLabel returns the level's forward label.
func (s *Screen) ContinueLabel() string {
	return s.Journey().Sources.ContinueLabel
}

// Hints lists the collect/mark keys.
func (s *Screen) Hints() []key.Binding {
	act := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "collect / mark row"))
	return []key.Binding{screens.KeyUp, screens.KeyDown, act}
}

// View renders every source card.
func (s *Screen) View(width int) string {
	section := s.Journey().Sources
	theme := s.Theme()
	cur, _ := s.current()
	var b strings.Builder
	b.WriteString(theme.Title(section.Title))
	b.WriteString("\n")
	b.WriteString(theme.Lead(section.Lead, width))
	b.WriteString("\n\n")
	for i, src := range section.Items {
		headerSelected := cur.source == i && cur.row < 0
		name := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).Render(src.Name)
		lines := []string{theme.Cursor(headerSelected) + name, "  " + theme.Dim(src.Description)}
		if s.collected[i] {
			cursorRow := -1
			if cur.source == i && cur.row >= 0 {
				cursorRow = cur.row
			}
			lines = append(lines,
				theme.RenderTable(src.Table, screens.TableOptions{Cursor: cursorRow, Highlighted: s.marked[i]}),
				lipgloss.NewStyle().Width(max(20, width-4)).Render(src.Action),
				lipgloss.NewStyle().Bold(true).Foreground(theme.Bad).Render(section.Warning),
			)
		} else {
			lines = append(lines, "  "+lipgloss.NewStyle().Foreground(theme.Accent).Render("[ Collect Data ]"))
		}
		border := lipgloss.Color("#444444")
		if s.collected[i] {
			border = theme.Accent
		}
		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			Render(strings.Join(lines, "\n"))
		b.WriteString(card)
		b.WriteString("\n")
	}
	if status := s.StatusMsg(); status != "" {
		b.WriteString(theme.Dim(status))
	}
	return b.String()
}
