// Package config handles the optional tasktxt configuration file.
package config

import "time"

const (
	// DefaultFile is the tasks file read when nothing else is configured.
	DefaultFile = "tasks.txt"
	// DefaultTitle is the heading shown above the tab bar.
	DefaultTitle = "Task txt"
	// DefaultTick is how often the TUI loop wakes without input.
	DefaultTick = "200ms"
	// DefaultLogLevel is the minimum level written to the log.
	DefaultLogLevel = "warn"

	minTick = 10 * time.Millisecond
	maxTick = 10 * time.Second
)

// FileNames are the config files looked for in the working directory,
// in order.
var FileNames = []string{".tasktxt.yml", ".tasktxt.yaml", ".tasktxt.toml"}

// LogLevels are the accepted log.level values.
var LogLevels = []string{"debug", "info", "warn", "error"}
