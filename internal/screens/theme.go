package screens

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// DefaultAccent is the journey's signature blue.
const DefaultAccent = "#5270ff"

// Theme carries the colors and markdown style screens render with.
type Theme struct {
	Accent        lipgloss.Color
	Good          lipgloss.Color
	Bad           lipgloss.Color
	Muted         lipgloss.Color
	Highlight     lipgloss.Color
	MarkdownStyle string

	md *markdownCache
}

// markdownCache keeps one glamour renderer and rebuilds it when the wrap
// width changes. Copies of a Theme share it.
type markdownCache struct {
	mu       sync.Mutex
	width    int
	renderer *glamour.TermRenderer
}

// NewTheme builds a theme around an accent color. An empty accent or
// markdown style falls back to the defaults.
func NewTheme(accent, markdownStyle string) Theme {
	accent = strings.TrimSpace(accent)
	if accent == "" {
		accent = DefaultAccent
	}
	markdownStyle = strings.TrimSpace(markdownStyle)
	if markdownStyle == "" {
		markdownStyle = "auto"
	}
	return Theme{
		Accent:        lipgloss.Color(accent),
		Good:          lipgloss.Color("#4CAF50"),
		Bad:           lipgloss.Color("#ff5656"),
		Muted:         lipgloss.Color("#888888"),
		Highlight:     lipgloss.Color("#F7B801"),
		MarkdownStyle: markdownStyle,
		md:            &markdownCache{},
	}
}

// Title renders a level heading.
func (t Theme) Title(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Accent).MarginBottom(1).Render(s)
}

// Lead renders the intro paragraph under a heading.
func (t Theme) Lead(s string, width int) string {
	return lipgloss.NewStyle().Width(clampWidth(width)).Foreground(lipgloss.Color("#CCCCCC")).Render(s)
}

// Feedback renders a canned feedback box.
func (t Theme) Feedback(s string, width int) string {
	return lipgloss.NewStyle().
		Width(clampWidth(width) - 4).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1).
		Render(s)
}

// Dim renders secondary text.
func (t Theme) Dim(s string) string {
	return lipgloss.NewStyle().Foreground(t.Muted).Render(s)
}

// Cursor prefixes the selected line.
func (t Theme) Cursor(selected bool) string {
	if selected {
		return lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render("▸ ")
	}
	return "  "
}

// Markdown renders md with glamour, falling back to the raw text.
func (t Theme) Markdown(md string, width int) string {
	width = clampWidth(width)
	cache := t.md
	if cache == nil {
		cache = &markdownCache{}
	}
	cache.mu.Lock()
	defer cache.mu.Unlock()
	if cache.renderer == nil || cache.width != width {
		renderer, err := t.newMarkdownRenderer(width)
		if err != nil {
			return md
		}
		cache.renderer = renderer
		cache.width = width
	}
	out, err := cache.renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

func (t Theme) newMarkdownRenderer(width int) (*glamour.TermRenderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if t.MarkdownStyle == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(t.MarkdownStyle))
	}
	return glamour.NewTermRenderer(opts...)
}

func clampWidth(width int) int {
	if width < 20 {
		return 20
	}
	return width
}
