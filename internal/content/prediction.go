package content

import "fmt"

// Sample is one observed customer.
type Sample struct {
	Age       int  `yaml:"age"`
	Income    int  `yaml:"income"`
	Purchased bool `yaml:"purchased"`
}

// Rule is the toy purchase model: both thresholds must be exceeded.
type Rule struct {
	MinAge    int `yaml:"min_age"`
	MinIncome int `yaml:"min_income"`
}

// Predict reports whether a customer is likely to purchase.
func (r Rule) Predict(age, income int) bool {
	return income > r.MinIncome && age > r.MinAge
}

// Slider is a bounded integer input.
type Slider struct {
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
	Step    int `yaml:"step"`
	Default int `yaml:"default"`
}

// Clamp keeps v inside [Min, Max].
func (s Slider) Clamp(v int) int {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// Inc moves v up one step.
func (s Slider) Inc(v int) int {
	return s.Clamp(v + s.Step)
}

// Dec moves v down one step.
func (s Slider) Dec(v int) int {
	return s.Clamp(v - s.Step)
}

// Fraction returns v's position in the range as 0..1.
func (s Slider) Fraction(v int) float64 {
	if s.Max == s.Min {
		return 0
	}
	return float64(s.Clamp(v)-s.Min) / float64(s.Max-s.Min)
}

func (s Slider) validate() error {
	if s.Step <= 0 {
		return fmt.Errorf("step must be positive")
	}
	if s.Min >= s.Max {
		return fmt.Errorf("min must be below max")
	}
	if s.Default < s.Min || s.Default > s.Max {
		return fmt.Errorf("default %d outside [%d, %d]", s.Default, s.Min, s.Max)
	}
	return nil
}

// PredictionFeedback holds the canned reply for each outcome.
type PredictionFeedback struct {
	Likely   string `yaml:"likely"`
	Unlikely string `yaml:"unlikely"`
}

// PredictionSection backs level 6.
type PredictionSection struct {
	Title         string             `yaml:"title"`
	Lead          string             `yaml:"lead"`
	RuleText      string             `yaml:"rule_text"`
	ContinueLabel string             `yaml:"continue_label"`
	Samples       []Sample           `yaml:"samples"`
	Rule          Rule               `yaml:"rule"`
	Age           Slider             `yaml:"age"`
	Income        Slider             `yaml:"income"`
	Feedback      PredictionFeedback `yaml:"feedback"`
}

// FeedbackFor returns the reply for a prediction.
func (p PredictionSection) FeedbackFor(likely bool) string {
	if likely {
		return p.Feedback.Likely
	}
	return p.Feedback.Unlikely
}

// Validate checks slider ranges.
func (p PredictionSection) Validate() error {
	if err := p.Age.validate(); err != nil {
		return fmt.Errorf("age: %w", err)
	}
	if err := p.Income.validate(); err != nil {
		return fmt.Errorf("income: %w", err)
	}
	return nil
}
