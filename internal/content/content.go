// internal/content/content.go
//
// Journey content is authored in YAML. The built-in journey is embedded in
// the binary; a project may point content.path in its config at a copy to
// reword screens without rebuilding.

package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed journey.yaml
var defaultJourneyYAML []byte

// Journey is the full static content of the walkthrough.
type Journey struct {
	Version    int               `yaml:"version"`
	Intro      Intro             `yaml:"intro"`
	Questions  QuestionSection   `yaml:"questions"`
	Sources    SourceSection     `yaml:"sources"`
	Cleaning   SourceSection     `yaml:"cleaning"`
	Analysis   AnalysisSection   `yaml:"analysis"`
	Charts     ChartSection      `yaml:"charts"`
	Prediction PredictionSection `yaml:"prediction"`
	Summary    SummarySection    `yaml:"summary"`
}

// Intro is the opening screen copy. Pitch is markdown.
type Intro struct {
	Title      string `yaml:"title"`
	Pitch      string `yaml:"pitch"`
	StartLabel string `yaml:"start_label"`
}

// QuestionPair contrasts a vague question with a better one.
type QuestionPair struct {
	Bad  string `yaml:"bad"`
	Good string `yaml:"good"`
}

// QuestionSection backs level 1.
type QuestionSection struct {
	Title         string         `yaml:"title"`
	Lead          string         `yaml:"lead"`
	ContinueLabel string         `yaml:"continue_label"`
	Pairs         []QuestionPair `yaml:"pairs"`
}

// Source is one data source with its sample table.
type Source struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Action      string `yaml:"action"`
	Table       Table  `yaml:"table"`
}

// SourceSection backs levels 2 and 3.
type SourceSection struct {
	Title         string   `yaml:"title"`
	Lead          string   `yaml:"lead"`
	Warning       string   `yaml:"warning,omitempty"`
	ContinueLabel string   `yaml:"continue_label"`
	Items         []Source `yaml:"items"`
}

// AnalysisAction is a canned analysis step with its outcome.
type AnalysisAction struct {
	Label           string `yaml:"label"`
	Key             string `yaml:"key"`
	Feedback        string `yaml:"feedback"`
	HighlightedRows []int  `yaml:"highlighted_rows"`
}

// Dataset is a cleaned table plus the analysis actions offered on it.
type Dataset struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Table       Table            `yaml:"table"`
	Actions     []AnalysisAction `yaml:"actions"`
}

// AnalysisSection backs level 4.
type AnalysisSection struct {
	Title         string    `yaml:"title"`
	Lead          string    `yaml:"lead"`
	ContinueLabel string    `yaml:"continue_label"`
	Datasets      []Dataset `yaml:"datasets"`
}

// SummarySection backs the final screen.
type SummarySection struct {
	Title        string   `yaml:"title"`
	Body         string   `yaml:"body"`
	Milestones   []string `yaml:"milestones"`
	Quote        string   `yaml:"quote"`
	ProgressNote string   `yaml:"progress_note"`
	RestartLabel string   `yaml:"restart_label"`
}

// Default returns the built-in journey.
func Default() (*Journey, error) {
	return Parse(bytes.NewReader(defaultJourneyYAML))
}

// MustDefault panics if the embedded journey is malformed.
func MustDefault() *Journey {
	j, err := Default()
	if err != nil {
		panic(err)
	}
	return j
}

// Load reads a journey from path, or the built-in journey when path is empty.
func Load(path string) (*Journey, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("content: open %s: %w", path, err)
	}
	defer f.Close()
	j, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("content: %s: %w", path, err)
	}
	return j, nil
}

// Parse decodes and validates a journey document. Unknown keys are rejected.
func Parse(r io.Reader) (*Journey, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var j Journey
	if err := dec.Decode(&j); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("content: empty journey document")
		}
		return nil, fmt.Errorf("content: parse: %w", err)
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return &j, nil
}

// Validate checks the structural rules screens rely on.
func (j *Journey) Validate() error {
	if j.Version < 1 {
		return fmt.Errorf("content: version must be >= 1")
	}
	if len(j.Questions.Pairs) == 0 {
		return fmt.Errorf("content: questions.pairs is empty")
	}
	for i, p := range j.Questions.Pairs {
		if strings.TrimSpace(p.Bad) == "" || strings.TrimSpace(p.Good) == "" {
			return fmt.Errorf("content: questions.pairs[%d] needs both bad and good", i)
		}
	}
	if err := validateSources("sources", j.Sources.Items); err != nil {
		return err
	}
	if err := validateSources("cleaning", j.Cleaning.Items); err != nil {
		return err
	}
	if len(j.Analysis.Datasets) == 0 {
		return fmt.Errorf("content: analysis.datasets is empty")
	}
	for i, ds := range j.Analysis.Datasets {
		if err := ds.Table.Validate(); err != nil {
			return fmt.Errorf("content: analysis.datasets[%d]: %w", i, err)
		}
		for k, action := range ds.Actions {
			for _, row := range action.HighlightedRows {
				if row < 0 || row >= len(ds.Table.Rows) {
					return fmt.Errorf("content: analysis.datasets[%d].actions[%d]: highlighted row %d out of range", i, k, row)
				}
			}
		}
	}
	if len(j.Charts.Pairs) == 0 {
		return fmt.Errorf("content: charts.pairs is empty")
	}
	for i, pair := range j.Charts.Pairs {
		if err := pair.Validate(); err != nil {
			return fmt.Errorf("content: charts.pairs[%d]: %w", i, err)
		}
	}
	if err := j.Prediction.Validate(); err != nil {
		return fmt.Errorf("content: prediction: %w", err)
	}
	return nil
}

func validateSources(section string, items []Source) error {
	if len(items) == 0 {
		return fmt.Errorf("content: %s.items is empty", section)
	}
	for i, src := range items {
		if strings.TrimSpace(src.Name) == "" {
			return fmt.Errorf("content: %s.items[%d]: name is required", section, i)
		}
		if err := src.Table.Validate(); err != nil {
			return fmt.Errorf("content: %s.items[%d]: %w", section, i, err)
		}
	}
	return nil
}
