package cmd

import (
	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/tasktxt/internal/clierr"
	"github.com/twiced-technology-gmbh/tasktxt/internal/output"
	"github.com/twiced-technology-gmbh/tasktxt/internal/task"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report lines the viewer would skip",
	Long: `Reads the tasks file and lists every non-blank line that does not parse,
with its line number and the reason. Exits 1 when any line is skipped.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	_, warnings, err := task.ReadFile(cfg.File)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch outputFormat() {
	case output.FormatJSON:
		if err := output.JSON(w, output.WarningRecords(warnings)); err != nil {
			return err
		}
	case output.FormatCompact:
		output.WarningsCompact(w, cfg.File, warnings)
	default:
		output.WarningTable(w, cfg.File, warnings)
	}

	if len(warnings) > 0 {
		return &clierr.SilentError{Code: 1}
	}
	return nil
}
