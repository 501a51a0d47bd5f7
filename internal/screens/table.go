package screens

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/kingrea/dashboard-mayhem/internal/content"
)

// Cell addresses one data cell.
type Cell struct {
	Row, Col int
}

// TableOptions controls per-row and per-cell emphasis.
type TableOptions struct {
	// Cursor is the focused data row, or -1.
	Cursor int
	// Highlighted rows get the highlight background.
	Highlighted map[int]bool
	// Changed cells are drawn in the good color.
	Changed map[Cell]bool
}

// blankCell is shown in place of empty values so gaps stay visible.
const blankCell = "(blank)"

// RenderTable draws a content table with lipgloss.
func (t Theme) RenderTable(tbl content.Table, opts TableOptions) string {
	rows := make([][]string, len(tbl.Rows))
	for i, row := range tbl.Rows {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			if cell == "" {
				cell = blankCell
			}
			rows[i][j] = cell
		}
	}
	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(t.Accent).Padding(0, 1)
	base := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))).
		Headers(tbl.Header...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			style := base
			if opts.Highlighted[row] {
				style = style.Background(t.Highlight).Foreground(lipgloss.Color("#1A1A1A")).Bold(true)
			}
			if opts.Changed[Cell{Row: row, Col: col}] {
				style = style.Foreground(t.Good).Bold(true)
			}
			if row == opts.Cursor {
				style = style.Reverse(true)
			}
			return style
		}).
		Render()
}
