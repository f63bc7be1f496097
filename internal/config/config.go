package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.yaml.in/yaml/v3"
)

// Sentinel errors.
var (
	ErrNotFound = errors.New("config file not found")
	ErrInvalid  = errors.New("invalid config")
)

// Config is the optional tasktxt configuration. Every field has a default,
// so running without a config file behaves like reading tasks.txt.
type Config struct {
	File  string    `yaml:"file" toml:"file"`
	Title string    `yaml:"title" toml:"title"`
	Tick  string    `yaml:"tick" toml:"tick"`
	Watch bool      `yaml:"watch" toml:"watch"`
	Log   LogConfig `yaml:"log" toml:"log"`

	// path is the file the config was loaded from, empty for defaults.
	path string `yaml:"-" toml:"-"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
	File  string `yaml:"file,omitempty" toml:"file,omitempty"`
}

// NewDefault creates a Config with default values.
func NewDefault() *Config {
	return &Config{
		File:  DefaultFile,
		Title: DefaultTitle,
		Tick:  DefaultTick,
		Log:   LogConfig{Level: DefaultLogLevel},
	}
}

// Path returns the file the config was loaded from, or "" when defaults
// are in use.
func (c *Config) Path() string {
	return c.path
}

// TickInterval returns the parsed tick duration, falling back to
// DefaultTick when unset or unparseable.
func (c *Config) TickInterval() time.Duration {
	if d, err := time.ParseDuration(c.Tick); err == nil {
		return d
	}
	d, _ := time.ParseDuration(DefaultTick)
	return d
}

// Validate checks the config for errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return fmt.Errorf("%w: file must not be empty", ErrInvalid)
	}
	d, err := time.ParseDuration(c.Tick)
	if err != nil {
		return fmt.Errorf("%w: invalid tick %q: %w", ErrInvalid, c.Tick, err)
	}
	if d < minTick || d > maxTick {
		return fmt.Errorf("%w: tick must be between %s and %s", ErrInvalid, minTick, maxTick)
	}
	if !slices.Contains(LogLevels, c.Log.Level) {
		return fmt.Errorf("%w: log.level %q must be one of %s",
			ErrInvalid, c.Log.Level, strings.Join(LogLevels, ", "))
	}
	return nil
}

// Load reads and validates the config file at path. The format follows
// the extension: .toml is TOML, anything else YAML. Unset keys keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted source
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := NewDefault()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: parsing %s: %w", ErrInvalid, path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: parsing %s: %w", ErrInvalid, path, err)
		}
	}
	cfg.path = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Find loads the first of FileNames present in dir. When none exists the
// defaults are returned.
func Find(dir string) (*Config, error) {
	for _, name := range FileNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		return Load(candidate)
	}
	return NewDefault(), nil
}

// Save writes the config to path, as TOML when the extension is .toml
// and YAML otherwise.
func (c *Config) Save(path string) error {
	const fileMode = 0o644

	var data []byte
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		data = buf.Bytes()
	} else {
		var err error
		if data, err = yaml.Marshal(c); err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
	}

	if err := os.WriteFile(path, data, fileMode); err != nil { //nolint:gosec // config is not secret
		return fmt.Errorf("writing config: %w", err)
	}
	c.path = path
	return nil
}
