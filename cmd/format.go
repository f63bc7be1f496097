package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/tasktxt/internal/app"
	"github.com/twiced-technology-gmbh/tasktxt/internal/task"
)

const formatWrap = 80

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Describe the tasks file format",
	Args:  cobra.NoArgs,
	RunE:  runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, _ []string) error {
	doc := formatReference()
	w := cmd.OutOrStdout()

	if flagNoColor || os.Getenv("NO_COLOR") != "" || !isTerminal(w) {
		_, err := fmt.Fprint(w, doc)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(formatWrap),
	)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(doc)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	_, err = fmt.Fprint(w, out)
	return err
}

// formatReference builds the markdown description of the file format
// from the status table, so it cannot drift from the parser.
func formatReference() string {
	var sb strings.Builder
	sb.WriteString("# tasks.txt format\n\n")
	sb.WriteString("One task per line:\n\n")
	fmt.Fprintf(&sb, "```\n<marker>%s<description>\n```\n\n", task.Separator)
	sb.WriteString("| Marker | Status | Tab | Color |\n|---|---|---|---|\n")
	for _, tab := range app.Tabs() {
		fmt.Fprintf(&sb, "| `%s` | %s | %s | %s |\n",
			tab.Status.Marker(), tab.Status, tab.Label, tab.Status.Color())
	}
	sb.WriteString("\n## Rules\n\n")
	fmt.Fprintf(&sb, "- The line is split at the first `%s`; later ones belong to the description.\n",
		strings.TrimSpace(task.Separator))
	sb.WriteString("- Space around the marker and the description is ignored.\n")
	sb.WriteString("- Markers must match exactly: `[x]` is not `[X]`.\n")
	sb.WriteString("- Lines without a separator or with an unknown marker are skipped. " +
		"Run `tasktxt check` to list them.\n")
	sb.WriteString("- Blank lines are ignored.\n\n")
	sb.WriteString("## Example\n\n```\n")
	for _, s := range app.TabOrder() {
		fmt.Fprintf(&sb, "%s\n", task.Task{Description: "write the " + s.String() + " item", Status: s})
	}
	sb.WriteString("```\n")
	return sb.String()
}
