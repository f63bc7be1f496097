// Package cmd implements the tasktxt CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/twiced-technology-gmbh/tasktxt/internal/board"
	"github.com/twiced-technology-gmbh/tasktxt/internal/clierr"
	"github.com/twiced-technology-gmbh/tasktxt/internal/config"
	"github.com/twiced-technology-gmbh/tasktxt/internal/logging"
	"github.com/twiced-technology-gmbh/tasktxt/internal/output"
)

// version is set at build time via ldflags.
var version = "dev"

// Global flags.
var (
	flagJSON     bool
	flagTable    bool
	flagCompact  bool
	flagNoColor  bool
	flagFile     string
	flagConfig   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "tasktxt",
	Short: "Terminal viewer for tasks.txt checklists",
	Long: `tasktxt shows a plain-text checklist as four tabs: Not Done, Almost Done,
Done and Unsure. Each line of the file is "<marker> - <description>" where the
marker is one of [ ], [~], [X] or [?].

Run tasktxt to open the viewer. Use h/l to switch tabs, j/k to move, q to quit.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runTUI,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagNoColor || os.Getenv("NO_COLOR") != "" {
			output.DisableColor()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagJSON, "json", false, "output as JSON")
	pf.BoolVar(&flagTable, "table", false, "output as table")
	pf.BoolVar(&flagCompact, "compact", false, "compact one-line-per-record output")
	pf.BoolVar(&flagCompact, "oneline", false, "alias for --compact")
	pf.StringVarP(&flagFile, "file", "f", config.DefaultFile, "path to the tasks file")
	pf.StringVar(&flagConfig, "config", "", "path to a config file (default: .tasktxt.yml in the working directory)")
	pf.BoolVar(&flagNoColor, "no-color", false, "disable color output")
	pf.StringVar(&flagLogLevel, "log-level", config.DefaultLogLevel,
		"log level ("+strings.Join(config.LogLevels, ", ")+")")
	rootCmd.SetGlobalNormalizationFunc(normalizeFlags)
}

// normalizeFlags maps legacy flag spellings onto their current names.
func normalizeFlags(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "tasks":
		name = "file"
	case "loglevel":
		name = "log-level"
	}
	return pflag.NormalizedName(name)
}

// Execute runs the root command.
func Execute() {
	_, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}

	// SilentError exits with its code and prints nothing.
	var silent *clierr.SilentError
	if errors.As(err, &silent) {
		os.Exit(silent.Code)
	}

	// Determine if JSON mode is active.
	jsonMode := flagJSON
	if !jsonMode {
		jsonMode = os.Getenv(output.EnvOutput) == "json"
	}

	if jsonMode {
		var cliErr *clierr.Error
		if errors.As(err, &cliErr) {
			output.JSONError(os.Stdout, cliErr.Code, cliErr.Message, cliErr.Details)
			os.Exit(cliErr.ExitCode())
		}
		// Unknown errors are reported as INTERNAL_ERROR.
		output.JSONError(os.Stdout, clierr.InternalError, err.Error(), nil)
		os.Exit(2) //nolint:mnd // exit code 2 for internal errors
	}

	// Non-JSON mode: print to stderr.
	fmt.Fprintln(os.Stderr, "Error:", err)
	var cliErr *clierr.Error
	if errors.As(err, &cliErr) {
		os.Exit(cliErr.ExitCode())
	}
	os.Exit(1)
}

// loadConfig resolves the configuration: defaults, then the config file,
// then flags that were set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flagConfig != "" {
		cfg, err = config.Load(flagConfig)
	} else {
		var cwd string
		cwd, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		cfg, err = config.Find(cwd)
	}
	if err != nil {
		return nil, clierr.New(clierr.InvalidConfig, err.Error())
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.File = flagFile
	}
	if flags.Changed("log-level") {
		if !slices.Contains(config.LogLevels, flagLogLevel) {
			return nil, clierr.Newf(clierr.InvalidInput, "invalid --log-level %q; valid: %s",
				flagLogLevel, strings.Join(config.LogLevels, ", "))
		}
		cfg.Log.Level = flagLogLevel
	}
	if f := flags.Lookup("watch"); f != nil && f.Changed {
		cfg.Watch = flagWatch
	}
	return cfg, nil
}

// newLogger builds the logger for a command. Interactive commands must not
// write to stderr, so without a log file their log is discarded.
func newLogger(cfg *config.Config, interactive bool) (*log.Logger, func() error, error) {
	var w io.Writer = os.Stderr
	if interactive {
		w = nil
	}
	logger, closeFn, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
		Writer: w,
	})
	if err != nil {
		return nil, closeFn, clierr.New(clierr.InvalidConfig, err.Error())
	}
	return logger, closeFn, nil
}

// loadBoard reads the tasks file and logs every dropped line.
func loadBoard(cfg *config.Config, logger *log.Logger) (*board.Board, error) {
	b, warnings, err := board.Load(cfg.File)
	if err != nil {
		return nil, err
	}
	logging.DroppedLines(logger, cfg.File, warnings)
	logger.Debug("loaded tasks", "file", cfg.File, "tasks", b.Total(), "dropped", len(warnings))
	return b, nil
}

// outputFormat returns the detected output format from flags/env.
func outputFormat() output.Format {
	return output.Detect(flagJSON, flagTable, flagCompact)
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}
