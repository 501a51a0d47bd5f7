package journey

import (
	"fmt"
	"strings"
	"time"

	"github.com/kingrea/dashboard-mayhem/internal/stage"
)

// StageVisit is one row of the visit table.
type StageVisit struct {
	ID     stage.ID `json:"id"`
	Title  string   `json:"title"`
	Order  int      `json:"order"`
	Visits int      `json:"visits"`
}

// Report is the exported summary of a session.
type Report struct {
	SessionID   string       `json:"session_id"`
	StartedAt   time.Time    `json:"started_at"`
	GeneratedAt time.Time    `json:"generated_at"`
	Duration    string       `json:"duration"`
	Transitions int          `json:"transitions"`
	Restarts    int          `json:"restarts"`
	Completed   bool         `json:"completed"`
	Stages      []StageVisit `json:"stages"`
	Milestones  []string     `json:"milestones"`
	Log         []string     `json:"log,omitempty"`
}

// Markdown renders the report as a markdown document.
func (r Report) Markdown() string {
	var b strings.Builder
	b.WriteString("# Dashboard Mayhem summary\n\n")
	fmt.Fprintf(&b, "- Session: `%s`\n", r.SessionID)
	fmt.Fprintf(&b, "- Started: %s\n", r.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "- Duration: %s\n", r.Duration)
	fmt.Fprintf(&b, "- Transitions: %d (restarts: %d)\n", r.Transitions, r.Restarts)
	status := "in progress"
	if r.Completed {
		status = "completed"
	}
	fmt.Fprintf(&b, "- Status: %s\n", status)

	b.WriteString("\n## Stages\n\n")
	b.WriteString("| # | Stage | Visits |\n|---|---|---|\n")
	for _, v := range r.Stages {
		fmt.Fprintf(&b, "| %d | %s | %d |\n", v.Order+1, v.Title, v.Visits)
	}

	if len(r.Milestones) > 0 {
		b.WriteString("\n## Milestones\n\n")
		for _, m := range r.Milestones {
			fmt.Fprintf(&b, "- [x] %s\n", m)
		}
	}
	if len(r.Log) > 0 {
		b.WriteString("\n## Journey log\n\n```\n")
		for _, line := range r.Log {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("```\n")
	}
	return b.String()
}
