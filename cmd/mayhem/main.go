// cmd/mayhem/main.go
//
// Entry point for the Dashboard Mayhem CLI. Running `mayhem` with no
// subcommand launches the TUI in the current directory; the subcommands
// expose the stage list, the prediction rule and the cleaning actions
// without the interface.

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kingrea/dashboard-mayhem/internal/config"
	"github.com/kingrea/dashboard-mayhem/internal/content"
	"github.com/kingrea/dashboard-mayhem/internal/logging"
	"github.com/kingrea/dashboard-mayhem/internal/tui"
)

// cli holds the flags and the state built in PersistentPreRunE.
type cli struct {
	dir         string
	verbose     bool
	noAltScreen bool

	config *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "mayhem",
		Short: "Dashboard Mayhem - a guided data-literacy journey in your terminal",
		Long: `Dashboard Mayhem walks you through six levels of the data journey:
asking better questions, collecting sources, cleaning dirty data, analysing,
choosing honest charts and making a first prediction.

Run without arguments to start the interactive journey.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: c.runTUI,
	}
	root.PersistentFlags().StringVar(&c.dir, "dir", ".", "project directory holding .mayhem/")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "debug-level structured logging")
	root.Flags().BoolVar(&c.noAltScreen, "no-alt-screen", false, "render inline instead of taking over the terminal")

	root.AddCommand(
		newStagesCmd(c),
		newPredictCmd(c),
		newCleanCmd(c),
		newAccentCmd(c),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	if err := config.InitMayhemDir(c.dir); err != nil {
		return err
	}
	cfg, err := config.NewConfig(c.dir)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogsDir(), c.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.config = cfg
	c.logger = logger.With(zap.String("command", cmd.Name()))
	return nil
}

func (c *cli) journey() (*content.Journey, error) {
	j, err := content.Load(c.config.ContentPath())
	if err != nil {
		c.logger.Error("load journey content", zap.Error(err))
		return nil, err
	}
	return j, nil
}

func (c *cli) runTUI(cmd *cobra.Command, args []string) error {
	app, err := tui.NewApp(c.dir, tui.WithLogger(c.logger))
	if err != nil {
		c.logger.Error("start tui", zap.Error(err))
		return err
	}
	var opts []tea.ProgramOption
	if c.config.AltScreen() && !c.noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		c.logger.Error("tui exited with error", zap.Error(err))
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
