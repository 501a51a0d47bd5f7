package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kingrea/dashboard-mayhem/internal/content"
	"github.com/kingrea/dashboard-mayhem/internal/screens"
)

const (
	modeFix    = "fix"
	modeRemove = "remove"
)

func newCleanCmd(c *cli) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "clean <source>",
		Short: "Run a level 3 cleaning action on one data source",
		Long: `Runs Fix Data or Remove Invalid on one of the level 3 sources and prints
the cleaned table followed by the reasons for each change.

Sources are matched by name, case-insensitively, or by the first word of
their name (emails, spreadsheets, crm).`,
		Example: `  mayhem clean emails
  mayhem clean spreadsheets --mode remove`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := c.journey()
			if err != nil {
				return err
			}
			src, err := findSource(j.Cleaning.Items, args[0])
			if err != nil {
				return err
			}

			var (
				cleaned content.Table
				reasons []string
				changed = map[screens.Cell]bool{}
			)
			switch strings.ToLower(strings.TrimSpace(mode)) {
			case modeFix:
				var changes []content.Change
				cleaned, changes = content.Fix(src.Table)
				for _, ch := range changes {
					changed[screens.Cell{Row: ch.Row, Col: ch.Column}] = true
					reasons = append(reasons, fmt.Sprintf("row %d: %q → %q. %s", ch.Row+1, ch.From, ch.To, ch.Reason))
				}
			case modeRemove:
				var removed int
				cleaned, removed = content.RemoveInvalid(src.Table)
				if removed > 0 {
					reasons = append(reasons, fmt.Sprintf("%d row(s): %s", removed, content.RemovalReason))
				}
			default:
				return fmt.Errorf("clean: mode must be %q or %q", modeFix, modeRemove)
			}
			c.logger.Info("cleaned source",
				zap.String("source", src.Name),
				zap.String("mode", mode),
				zap.Int("rows", len(cleaned.Rows)),
				zap.Int("reasons", len(reasons)),
			)

			theme := screens.NewTheme(c.config.Accent(), "notty")
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, src.Name)
			fmt.Fprintln(out, theme.RenderTable(cleaned, screens.TableOptions{Cursor: -1, Changed: changed}))
			if len(reasons) == 0 {
				fmt.Fprintln(out, "Nothing to clean.")
			}
			for _, r := range reasons {
				fmt.Fprintf(out, "  • %s\n", r)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", modeFix, "cleaning action: fix or remove")
	return cmd
}

func findSource(items []content.Source, name string) (content.Source, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	var names []string
	for _, src := range items {
		full := strings.ToLower(src.Name)
		first, _, _ := strings.Cut(full, " ")
		if want == full || want == first {
			return src, nil
		}
		names = append(names, src.Name)
	}
	return content.Source{}, fmt.Errorf("clean: unknown source %q (have %s)", name, strings.Join(names, ", "))
}
