package content

import (
	"fmt"
	"strings"
)

// Chart kinds.
const (
	ChartBar = "bar"
	ChartPie = "pie"
)

// Point is one labeled value.
type Point struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
}

// ChartSpec describes how a pair's data is drawn.
type ChartSpec struct {
	Kind string `yaml:"kind"`
	// Domain fixes the value axis as [min, max]; empty means [0, largest value].
	Domain []float64 `yaml:"domain,omitempty"`
	// Limit keeps only the first N points when > 0.
	Limit  int      `yaml:"limit,omitempty"`
	Colors []string `yaml:"colors,omitempty"`
}

// Points returns the data this chart draws.
func (s ChartSpec) Points(data []Point) []Point {
	if s.Limit > 0 && s.Limit < len(data) {
		data = data[:s.Limit]
	}
	return append([]Point(nil), data...)
}

// Bounds returns the value axis for the given points.
func (s ChartSpec) Bounds(points []Point) (lo, hi float64) {
	if len(s.Domain) == 2 {
		return s.Domain[0], s.Domain[1]
	}
	for _, p := range points {
		if p.Value > hi {
			hi = p.Value
		}
	}
	return 0, hi
}

// Color returns the color for the i-th point, cycling through Colors.
func (s ChartSpec) Color(i int) string {
	if len(s.Colors) == 0 {
		return ""
	}
	return s.Colors[i%len(s.Colors)]
}

// Validate checks kind and domain shape.
func (s ChartSpec) Validate() error {
	switch strings.ToLower(strings.TrimSpace(s.Kind)) {
	case ChartBar, ChartPie:
	default:
		return fmt.Errorf("unknown chart kind %q", s.Kind)
	}
	if len(s.Domain) != 0 && len(s.Domain) != 2 {
		return fmt.Errorf("domain must have exactly two values")
	}
	if len(s.Domain) == 2 && s.Domain[0] >= s.Domain[1] {
		return fmt.Errorf("domain min must be below max")
	}
	if s.Limit < 0 {
		return fmt.Errorf("limit must be >= 0")
	}
	return nil
}

// Choice is the chart a learner picked.
type Choice string

const (
	ChoiceBad  Choice = "bad"
	ChoiceGood Choice = "good"
)

// ChartFeedback holds the canned reply for each choice.
type ChartFeedback struct {
	Good string `yaml:"good"`
	Bad  string `yaml:"bad"`
}

// ChartPair is a misleading chart shown next to a fair one.
type ChartPair struct {
	ID          string        `yaml:"id"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Data        []Point       `yaml:"data"`
	Bad         ChartSpec     `yaml:"bad"`
	Good        ChartSpec     `yaml:"good"`
	Feedback    ChartFeedback `yaml:"feedback"`
}

// FeedbackFor returns the reply for a choice.
func (p ChartPair) FeedbackFor(choice Choice) string {
	if choice == ChoiceGood {
		return p.Feedback.Good
	}
	return p.Feedback.Bad
}

// Validate checks both specs and the data.
func (p ChartPair) Validate() error {
	if len(p.Data) == 0 {
		return fmt.Errorf("%s: data is empty", p.ID)
	}
	if err := p.Bad.Validate(); err != nil {
		return fmt.Errorf("%s: bad: %w", p.ID, err)
	}
	if err := p.Good.Validate(); err != nil {
		return fmt.Errorf("%s: good: %w", p.ID, err)
	}
	return nil
}

// ChartSection backs level 5.
type ChartSection struct {
	Title         string      `yaml:"title"`
	Lead          string      `yaml:"lead"`
	NextLabel     string      `yaml:"next_label"`
	ContinueLabel string      `yaml:"continue_label"`
	Pairs         []ChartPair `yaml:"pairs"`
}
