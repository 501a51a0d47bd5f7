package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kingrea/dashboard-mayhem/internal/stage"
)

func newStagesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stages",
		Short: "List the journey stages with their progress fractions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := stage.Default()
			rows := make([][]string, 0, reg.Len())
			for _, st := range reg.Stages() {
				rows = append(rows, []string{
					fmt.Sprintf("%d/%d", st.Order+1, st.Total),
					string(st.ID),
					st.Title,
					fmt.Sprintf("%.3f", st.Progress()),
				})
			}
			out := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("#", "ID", "Title", "Progress").
				Rows(rows...).
				Render()
			fmt.Fprintln(cmd.OutOrStdout(), out)
			c.logger.Debug("listed stages", zap.Int("count", reg.Len()))
			return nil
		},
	}
}
