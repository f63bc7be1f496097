package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/tasktxt/internal/app"
	"github.com/twiced-technology-gmbh/tasktxt/internal/config"
	"github.com/twiced-technology-gmbh/tasktxt/internal/output"
	"github.com/twiced-technology-gmbh/tasktxt/internal/watcher"
)

var summaryCmd = &cobra.Command{
	Use:     "summary",
	Aliases: []string{"board"},
	Short:   "Show task counts per status",
	Long: `Displays how many tasks are in each tab, in tab order, plus the total.

Use --watch to keep the display live-updating. The summary re-renders
whenever the tasks file changes on disk. Press Ctrl+C to stop.`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "live-update the summary on file changes")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // best effort

	// Render once.
	if err := renderSummary(cmd, cfg, logger); err != nil {
		return err
	}

	if !cfg.Watch {
		return nil
	}

	return watchSummary(cmd, cfg, logger)
}

func renderSummary(cmd *cobra.Command, cfg *config.Config, logger *log.Logger) error {
	b, err := loadBoard(cfg, logger)
	if err != nil {
		return err
	}
	ov := b.Summary(app.TabOrder())

	w := cmd.OutOrStdout()
	switch outputFormat() {
	case output.FormatJSON:
		return output.JSON(w, ov)
	case output.FormatCompact:
		output.SummaryCompact(w, ov)
	default:
		output.SummaryTable(w, cfg.Title, ov)
	}
	return nil
}

func watchSummary(cmd *cobra.Command, cfg *config.Config, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w, err := watcher.New(cfg.File, func() {
		clearScreen(cmd)
		if renderErr := renderSummary(cmd, cfg, logger); renderErr != nil {
			logger.Warn("rendering summary", "err", renderErr)
		}
	})
	if err != nil {
		return fmt.Errorf("starting file watcher: %w", err)
	}
	defer w.Close()

	fmt.Fprintln(os.Stderr, "Watching for changes... (Ctrl+C to stop)")

	w.Run(ctx, func(watchErr error) {
		logger.Warn("file watcher", "err", watchErr)
	})

	return nil
}

// clearScreen sends ANSI escape codes to clear the terminal and move the
// cursor to the top-left corner.
func clearScreen(cmd *cobra.Command) {
	if isTerminal(cmd.OutOrStdout()) {
		fmt.Fprint(cmd.OutOrStdout(), "\033[2J\033[H")
	}
}
