package charts

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/dashboard-mayhem/internal/content"
	"github.com/kingrea/dashboard-mayhem/internal/screens"
)

const barWidth = 24

// renderChart draws a chart as text: horizontal bars or a slice legend.
func renderChart(chart content.ChartSpec, data []content.Point, theme screens.Theme) string {
	points := chart.Points(data)
	if strings.EqualFold(chart.Kind, content.ChartPie) {
		return renderPie(chart, points, theme)
	}
	return renderBars(chart, points, theme)
}

// barLength scales v into [0, width] against the axis [lo, hi]. Values
// below lo collapse to zero, the way a truncated axis hides them.
func barLength(v, lo, hi float64, width int) int {
	if hi <= lo {
		return 0
	}
	frac := (v - lo) / (hi - lo)
	frac = math.Max(0, math.Min(1, frac))
	return int(math.Round(frac * float64(width)))
}

func renderBars(chart content.ChartSpec, points []content.Point, theme screens.Theme) string {
	lo, hi := chart.Bounds(points)
	nameWidth := 0
	for _, p := range points {
		nameWidth = max(nameWidth, lipgloss.Width(p.Name))
	}
	lines := []string{theme.Dim(fmt.Sprintf("axis %s – %s", formatValue(lo), formatValue(hi)))}
	for i, p := range points {
		color := chart.Color(i)
		style := lipgloss.NewStyle()
		if color != "" {
			style = style.Foreground(lipgloss.Color(color))
		}
		n := barLength(p.Value, lo, hi, barWidth)
		bar := style.Render(strings.Repeat("█", n)) + strings.Repeat(" ", barWidth-n)
		lines = append(lines, fmt.Sprintf("%-*s %s %s", nameWidth, p.Name, bar, formatValue(p.Value)))
	}
	return strings.Join(lines, "\n")
}

func renderPie(chart content.ChartSpec, points []content.Point, theme screens.Theme) string {
	total := 0.0
	for _, p := range points {
		total += p.Value
	}
	lines := []string{theme.Dim("share of total")}
	for i, p := range points {
		share := 0.0
		if total > 0 {
			share = p.Value / total * 100
		}
		style := lipgloss.NewStyle()
		if color := chart.Color(i); color != "" {
			style = style.Foreground(lipgloss.Color(color))
		}
		lines = append(lines, fmt.Sprintf("%s %s %.0f%%", style.Render("◕"), p.Name, share))
	}
	return strings.Join(lines, "\n")
}

func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return screens.Number(int(v))
	}
	return fmt.Sprintf("%.1f", v)
}
