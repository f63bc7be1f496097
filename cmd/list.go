package cmd

import (
	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/tasktxt/internal/board"
	"github.com/twiced-technology-gmbh/tasktxt/internal/output"
	"github.com/twiced-technology-gmbh/tasktxt/internal/task"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `Prints the parsed tasks in file order. Lines that do not parse are skipped.

Statuses may be given by name (not-done, almost-done, done, unsure) or by
marker ("[ ]", "[~]", "[X]", "[?]").`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringSlice("status", nil, "filter by status (comma-separated)")
	listCmd.Flags().StringP("search", "s", "", "search descriptions (case-insensitive)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	rawStatuses, _ := cmd.Flags().GetStringSlice("status")
	search, _ := cmd.Flags().GetString("search")

	statuses := make([]task.Status, 0, len(rawStatuses))
	for _, s := range rawStatuses {
		st, err := task.ParseStatus(s)
		if err != nil {
			return err
		}
		statuses = append(statuses, st)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // best effort

	b, err := loadBoard(cfg, logger)
	if err != nil {
		return err
	}

	tasks := board.Filter(b.All(), board.FilterOptions{
		Statuses: statuses,
		Search:   search,
	})
	return outputTaskList(cmd, tasks)
}

func outputTaskList(cmd *cobra.Command, tasks []task.Task) error {
	w := cmd.OutOrStdout()
	switch outputFormat() {
	case output.FormatJSON:
		return output.JSON(w, output.TaskRecords(tasks))
	case output.FormatCompact:
		output.TaskCompact(w, tasks)
	default:
		output.TaskTable(w, tasks)
	}
	return nil
}
