package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kingrea/dashboard-mayhem/internal/screens"
)

func newAccentCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "accent [color]",
		Short: "Show or persist the accent color used by the TUI",
		Example: `  mayhem accent
  mayhem accent "#ff5656"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := c.config.SetAccent(args[0]); err != nil {
					return err
				}
				c.logger.Info("accent updated", zap.String("accent", c.config.Accent()))
			}
			accent := c.config.Accent()
			if accent == "" {
				accent = screens.DefaultAccent + " (default)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "accent: %s\n", accent)
			return nil
		},
	}
}
