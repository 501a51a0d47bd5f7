// internal/screens/cleaning/cleaning.go
//
// Level 3: every source can be cleaned once, either by fixing known bad
// values or by dropping invalid rows. Cleaning works on this visit's copy
// of the tables; the journey content itself is never modified.

package cleaning

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

var (
	keyFix = key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "fix data"),
	)
	keyRemove = key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "remove invalid"),
	)
)

// Screen renders level 3.
type Screen struct {
	screens.BaseScreen
	tables        []content.Table
	cleaned       []bool
	changed       []map[screens.Cell]bool
	fixReasons    []string
	removeReasons []string
	feedback      string
	cursor        int
}

// New creates the level 3 screen.
func New() *Screen {
	return &Screen{BaseScreen: screens.NewBaseScreen(stage.Level3)}
}

// Enter restores the dirty tables.
func (s *Screen) Enter(ctx screens.Context) {
	s.SetContext(ctx)
	items := ctx.Journey.Cleaning.Items
	s.tables = make([]content.Table, len(items))
	s.cleaned = make([]bool, len(items))
	s.changed = make([]map[screens.Cell]bool, len(items))
	for i, src := range items {
		s.tables[i] = src.Table.Clone()
		s.changed[i] = map[screens.Cell]bool{}
	}
	s.fixReasons = nil
	s.removeReasons = nil
	s.feedback = ""
	s.cursor = 0
}

// Table returns this visit's copy of source i.
func (s *Screen) Table(i int) content.Table {
	return s.tables[i]
}

// Cleaned reports whether source i has been cleaned.
func (s *Screen) Cleaned(i int) bool {
	return i >= 0 && i < len(s.cleaned) && s.cleaned[i]
}

// Feedback returns the latest feedback line.
func (s *Screen) Feedback() string {
	return s.feedback
}

// Reasons returns fix reasons followed by removal reasons.
func (s *Screen) Reasons() []string {
	out := append([]string(nil), s.fixReasons...)
	return append(out, s.removeReasons...)
}

// Update handles source selection and the two cleaning actions.
func (s *Screen) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(km, screens.KeyUp):
		s.cursor = screens.MoveCursor(s.cursor, len(s.tables), true)
	case key.Matches(km, screens.KeyDown):
		s.cursor = screens.MoveCursor(s.cursor, len(s.tables), false)
	case key.Matches(km, keyFix):
		s.fix(s.cursor)
	case key.Matches(km, keyRemove):
		s.removeInvalid(s.cursor)
	}
	return nil
}

func (s *Screen) fix(i int) {
	if i < 0 || i >= len(s.tables) {
		return
	}
	name := s.Journey().Cleaning.Items[i].Name
	if s.cleaned[i] {
		s.SetStatusMsg(fmt.Sprintf("%s is already clean", name))
		return
	}
	fixed, changes := content.Fix(s.tables[i])
	s.tables[i] = fixed
	for _, ch := range changes {
		s.changed[i][screens.Cell{Row: ch.Row, Col: ch.Column}] = true
		s.fixReasons = append(s.fixReasons, ch.Reason)
	}
	s.cleaned[i] = true
	s.feedback = fmt.Sprintf("Data for %q has been fixed successfully.", name)
}

func (s *Screen) removeInvalid(i int) {
	if i < 0 || i >= len(s.tables) {
		return
	}
	name := s.Journey().Cleaning.Items[i].Name
	if s.cleaned[i] {
		s.SetStatusMsg(fmt.Sprintf("%s is already clean", name))
		return
	}
	kept, _ := content.RemoveInvalid(s.tables[i])
	s.tables[i] = kept
	s.removeReasons = append(s.removeReasons, content.RemovalReason)
	s.cleaned[i] = true
	s.feedback = fmt.Sprintf("Invalid entries for %q have been removed successfully.", name)
}

// ContinueLabel returns the level's forward label.
func (s *Screen) ContinueLabel() string {
	return s.Journey().Cleaning.ContinueLabel
}

// Hints lists the cleaning keys.
func (s *Screen) Hints() []key.Binding {
	return []key.Binding{screens.KeyUp, screens.KeyDown, keyFix, keyRemove}
}

// View renders feedback, reasons and the tables.
func (s *Screen) View(width int) string {
	section := s.Journey().Cleaning
	theme := s.Theme()
	var b strings.Builder
	b.WriteString(theme.Title(section.Title))
	b.WriteString("\n")
	b.WriteString(theme.Lead(section.Lead, width))
	b.WriteString("\n\n")
	if s.feedback != "" {
		b.WriteString(theme.Feedback(s.feedback, width))
		b.WriteString("\n")
		for _, reason := range uniqueStrings(s.Reasons()) {
			b.WriteString(theme.Dim("  • " + reason))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	for i, src := range section.Items {
		name := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).Render(src.Name)
		lines := []string{theme.Cursor(i == s.cursor) + name, "  " + theme.Dim(src.Description)}
		lines = append(lines, theme.RenderTable(s.tables[i], screens.TableOptions{Cursor: -1, Changed: s.changed[i]}))
		if s.cleaned[i] {
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.Good).Render("✔ cleaned"))
		} else {
			lines = append(lines, theme.Dim(src.Action), theme.Dim("[f] Fix Data   [x] Remove Invalid"))
		}
		border := lipgloss.Color("#444444")
		if s.cleaned[i] {
			border = theme.Accent
		}
		b.WriteString(lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			Render(strings.Join(lines, "\n")))
		b.WriteString("\n")
	}
	if status := s.StatusMsg(); status != "" {
		b.WriteString(theme.Dim(status))
	}
	return b.String()
}

func uniqueStrings(values []string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
