package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/tasktxt/internal/clierr"
	"github.com/twiced-technology-gmbh/tasktxt/internal/config"
	"github.com/twiced-technology-gmbh/tasktxt/internal/output"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the defaults",
	Long: `Creates .tasktxt.yml (or .tasktxt.toml with --toml) in the working directory.
The tasks file itself is never created or modified.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("toml", false, "write TOML instead of YAML")
	initCmd.Flags().String("title", "", "title shown above the tabs")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	// Any existing config file would shadow or be shadowed by the new one.
	for _, name := range config.FileNames {
		existing := filepath.Join(cwd, name)
		if _, err := os.Stat(existing); err == nil {
			return clierr.Newf(clierr.InvalidInput, "config already exists: %s", existing).
				WithDetails(map[string]any{"path": existing})
		}
	}

	name := config.FileNames[0]
	if useTOML, _ := cmd.Flags().GetBool("toml"); useTOML {
		name = ".tasktxt.toml"
	}
	path := filepath.Join(cwd, name)

	cfg := config.NewDefault()
	if cmd.Flags().Changed("file") {
		cfg.File = flagFile
	}
	if title, _ := cmd.Flags().GetString("title"); title != "" {
		cfg.Title = title
	}
	if err := cfg.Validate(); err != nil {
		return clierr.New(clierr.InvalidConfig, err.Error())
	}
	if err := cfg.Save(path); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if outputFormat() == output.FormatJSON {
		return output.JSON(w, map[string]string{
			"status": "initialized",
			"config": path,
			"file":   cfg.File,
		})
	}

	output.Messagef(w, "Wrote %s", path)
	output.Messagef(w, "  Tasks file: %s", cfg.File)
	return nil
}
