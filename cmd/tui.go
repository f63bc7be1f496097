package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/tasktxt/internal/output"
	"github.com/twiced-technology-gmbh/tasktxt/internal/tui"
	"github.com/twiced-technology-gmbh/tasktxt/internal/watcher"
)

var flagWatch bool

func init() {
	rootCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "reload the tasks file when it changes")
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	interactive := isTerminal(out)

	logger, closeLog, err := newLogger(cfg, interactive)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // best effort

	// The file is read before the screen switches so open errors are
	// reported on a normal terminal.
	b, err := loadBoard(cfg, logger)
	if err != nil {
		return err
	}

	if !interactive {
		output.TaskCompact(out, b.All())
		return nil
	}

	model := tui.New(b, tui.Options{
		Path:   cfg.File,
		Title:  cfg.Title,
		Tick:   cfg.TickInterval(),
		Logger: logger,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Watch {
		go startTUIWatcher(ctx, cfg.File, p, logger)
	}

	_, err = p.Run()
	return err
}

func startTUIWatcher(ctx context.Context, path string, p *tea.Program, logger *log.Logger) {
	w, err := watcher.New(path, func() {
		p.Send(tui.ReloadMsg{})
	})
	if err != nil {
		// Non-fatal: the TUI works without live reload.
		logger.Warn("file watcher unavailable", "file", path, "err", err)
		return
	}
	defer w.Close()
	w.Run(ctx, func(watchErr error) {
		logger.Warn("file watcher", "err", watchErr)
	})
}
