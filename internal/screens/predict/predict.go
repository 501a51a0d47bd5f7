// internal/screens/predict/predict.go
//
// Level 6: review a handful of customers, read the rule drawn from them,
// then try the rule with two sliders.

package predict

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

const sliderWidth = 30

type field int

const (
	fieldAge field = iota
	fieldIncome
)

var keyPredict = key.NewBinding(
	key.WithKeys("enter", "p"),
	key.WithHelp("enter/p", "predict"),
)

// Screen renders level 6.
type Screen struct {
	screens.BaseScreen
	age        int
	income     int
	field      field
	prediction *bool
}

// New creates the level 6 screen.
func New() *Screen {
	return &Screen{BaseScreen: screens.NewBaseScreen(stage.Level6)}
}

// Enter puts the sliders back on their defaults and clears the prediction.
func (s *Screen) Enter(ctx screens.Context) {
	s.SetContext(ctx)
	p := ctx.Journey.Prediction
	s.age = p.Age.Default
	s.income = p.Income.Default
	s.field = fieldAge
	s.prediction = nil
}

// Inputs returns the slider values.
func (s *Screen) Inputs() (age, income int) {
	return s.age, s.income
}

// Prediction returns the last prediction, ok is false before the first one.
func (s *Screen) Prediction() (likely, ok bool) {
	if s.prediction == nil {
		return false, false
	}
	return *s.prediction, true
}

// Update adjusts sliders and runs the rule.
func (s *Screen) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	p := s.Journey().Prediction
	switch {
	case key.Matches(km, screens.KeyUp):
		s.field = fieldAge
	case key.Matches(km, screens.KeyDown):
		s.field = fieldIncome
	case key.Matches(km, screens.KeyLeft):
		if s.field == fieldAge {
			s.age = p.Age.Dec(s.age)
		} else {
			s.income = p.Income.Dec(s.income)
		}
	case key.Matches(km, screens.KeyRight):
		if s.field == fieldAge {
			s.age = p.Age.Inc(s.age)
		} else {
			s.income = p.Income.Inc(s.income)
		}
	case key.Matches(km, keyPredict):
		likely := p.Rule.Predict(s.age, s.income)
		s.prediction = &likely
	}
	return nil
}

// ContinueLabel returns the level's forward label.
func (s *Screen) ContinueLabel() string {
	return s.Journey().Prediction.ContinueLabel
}

// Hints lists the slider keys.
func (s *Screen) Hints() []key.Binding {
	choose := key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "field"))
	adjust := key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "adjust"))
	return []key.Binding{choose, adjust, keyPredict}
}

// View renders the three steps.
func (s *Screen) View(width int) string {
	p := s.Journey().Prediction
	theme := s.Theme()
	step := func(title string) string {
		return lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).MarginTop(1).Render(title)
	}

	var b strings.Builder
	b.WriteString(theme.Title(p.Title))
	b.WriteString("\n")
	b.WriteString(theme.Markdown(p.Lead, width))
	b.WriteString("\n")

	b.WriteString(step("Step 1: Review the data"))
	b.WriteString("\n")
	for _, sample := range p.Samples {
		purchased := "No"
		if sample.Purchased {
			purchased = "Yes"
		}
		b.WriteString(fmt.Sprintf("  • Age: %d, Income: %s, Purchased: %s\n", sample.Age, screens.Money(sample.Income), purchased))
	}

	b.WriteString(step("Step 2: Build the Model"))
	b.WriteString("\n")
	b.WriteString(theme.Lead(p.RuleText, width))
	b.WriteString("\n")

	b.WriteString(step("Step 3: Try It Yourself"))
	b.WriteString("\n")
	b.WriteString(s.renderSlider(theme, "Age", fmt.Sprintf("%d", s.age), p.Age, s.age, s.field == fieldAge))
	b.WriteString("\n")
	b.WriteString(s.renderSlider(theme, "Income", screens.Money(s.income), p.Income, s.income, s.field == fieldIncome))
	b.WriteString("\n")

	if likely, ok := s.Prediction(); ok {
		verdict := "Unlikely to Purchase ❌"
		color := theme.Bad
		if likely {
			verdict = "Likely to Purchase ✅"
			color = theme.Good
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(color).Render("Prediction: " + verdict))
		b.WriteString("\n")
		b.WriteString(theme.Feedback(p.FeedbackFor(likely), width))
	}
	return b.String()
}

func (s *Screen) renderSlider(theme screens.Theme, label, value string, slider content.Slider, v int, selected bool) string {
	filled := int(slider.Fraction(v) * float64(sliderWidth))
	track := lipgloss.NewStyle().Foreground(theme.Accent).Render(strings.Repeat("━", filled)) +
		"●" +
		theme.Dim(strings.Repeat("─", sliderWidth-filled))
	return fmt.Sprintf("%s%-7s %s %s", theme.Cursor(selected), label, track, value)
}
