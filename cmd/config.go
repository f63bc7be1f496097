package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/tasktxt/internal/clierr"
	"github.com/twiced-technology-gmbh/tasktxt/internal/config"
	"github.com/twiced-technology-gmbh/tasktxt/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Shows the configuration in effect: defaults, overridden by the config file,
overridden by flags.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

// configAccessors maps each config key to its getter.
func configAccessors() map[string]func(*config.Config) any {
	return map[string]func(*config.Config) any{
		"file":      func(c *config.Config) any { return c.File },
		"title":     func(c *config.Config) any { return c.Title },
		"tick":      func(c *config.Config) any { return c.TickInterval().String() },
		"watch":     func(c *config.Config) any { return c.Watch },
		"log.level": func(c *config.Config) any { return c.Log.Level },
		"log.file":  func(c *config.Config) any { return c.Log.File },
		"source":    func(c *config.Config) any { return configSource(c) },
	}
}

// allConfigKeys returns config keys in display order.
func allConfigKeys() []string {
	return []string{"source", "file", "title", "tick", "watch", "log.level", "log.file"}
}

func configSource(c *config.Config) string {
	if c.Path() == "" {
		return "defaults"
	}
	return c.Path()
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	accessors := configAccessors()
	w := cmd.OutOrStdout()

	if outputFormat() == output.FormatJSON {
		m := make(map[string]any, len(accessors))
		for _, key := range allConfigKeys() {
			m[key] = accessors[key](cfg)
		}
		return output.JSON(w, m)
	}

	// Table mode: key-value pairs.
	for _, key := range allConfigKeys() {
		fmt.Fprintf(w, "%-10s %s\n", key, formatConfigValue(accessors[key](cfg)))
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	key := args[0]
	get, ok := configAccessors()[key]
	if !ok {
		return clierr.Newf(clierr.InvalidInput, "unknown config key %q", key).
			WithDetails(map[string]any{"key": key, "allowed": allConfigKeys()})
	}

	val := get(cfg)
	if outputFormat() == output.FormatJSON {
		return output.JSON(cmd.OutOrStdout(), val)
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatConfigValue(val))
	return nil
}

func formatConfigValue(val any) string {
	switch v := val.(type) {
	case string:
		if v == "" {
			return "--"
		}
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
