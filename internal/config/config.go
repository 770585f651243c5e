// Package config loads, validates and saves the sitecarbon configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is the schema version written by New and config init.
const CurrentVersion = "1.0.0"

// SupportedVersions is the range of schema versions this build understands.
const SupportedVersions = ">= 1.0.0, < 2.0.0"

// Output formats understood by the calculate and suggest commands.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
	FormatReport = "report"
)

// configFileName is the file read from the config directory.
const configFileName = "config.yaml"

// Config is the on-disk configuration.
type Config struct {
	Version string        `yaml:"version"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Report  ReportConfig  `yaml:"report"`

	// path is where the config was loaded from or will be saved to.
	path string
}

// OutputConfig controls command output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig controls the application logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`

	// Output is stderr or stdout; a set File always wins.
	Output string `yaml:"output,omitempty"`
	File   string `yaml:"file,omitempty"`

	// Caller adds the source file and line to every entry.
	Caller bool `yaml:"caller,omitempty"`
}

// ReportConfig controls where printable reports are written from the TUI.
type ReportConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the built-in configuration without reading any file.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Output: OutputConfig{
			DefaultFormat: FormatTable,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Report: ReportConfig{
			Dir: ".",
		},
	}
}

// New returns the defaults overlaid with the user's config file, if one exists
// and parses, followed by environment overrides. An unreadable file leaves the
// defaults in place; use Load to surface the error.
func New() *Config {
	cfg := Default()
	if path, err := FilePath(); err == nil {
		cfg.path = path
		if loaded, loadErr := Load(path); loadErr == nil {
			cfg = loaded
		}
	}
	cfg.ApplyEnvOverrides(os.LookupEnv)
	return cfg
}

// Load reads the config at path on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.path = path
	return cfg, nil
}

// Path returns where the config was loaded from.
func (c *Config) Path() string {
	return c.path
}

// SetPath changes where Save writes.
func (c *Config) SetPath(path string) {
	c.path = path
}

// Save writes the config as YAML, creating the parent directory.
func (c *Config) Save() error {
	if c.path == "" {
		path, err := FilePath()
		if err != nil {
			return err
		}
		c.path = path
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.path, err)
	}
	return nil
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	if err := validateVersion(c.Version); err != nil {
		return err
	}
	if !slices.Contains(OutputFormats(), c.Output.DefaultFormat) {
		return fmt.Errorf("%w: output.default_format %q (want one of %s)",
			ErrInvalidValue, c.Output.DefaultFormat, strings.Join(OutputFormats(), ", "))
	}
	if !slices.Contains(logLevels(), strings.ToLower(c.Logging.Level)) {
		return fmt.Errorf("%w: logging.level %q", ErrInvalidValue, c.Logging.Level)
	}
	if !slices.Contains(logFormats(), strings.ToLower(c.Logging.Format)) {
		return fmt.Errorf("%w: logging.format %q", ErrInvalidValue, c.Logging.Format)
	}
	if c.Logging.Output != "" && !slices.Contains(logOutputs(), strings.ToLower(c.Logging.Output)) {
		return fmt.Errorf("%w: logging.output %q", ErrInvalidValue, c.Logging.Output)
	}
	if strings.TrimSpace(c.Report.Dir) == "" {
		return fmt.Errorf("%w: report.dir must not be empty", ErrInvalidValue)
	}
	return nil
}

func validateVersion(version string) error {
	if version == "" {
		return fmt.Errorf("%w: version is required", ErrInvalidValue)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: version %q: %w", ErrInvalidValue, version, err)
	}
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing supported versions: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s (supported %s)", ErrUnsupportedVersion, version, SupportedVersions)
	}
	return nil
}

// OutputFormats lists the values accepted for output.default_format.
func OutputFormats() []string {
	return []string{FormatTable, FormatJSON, FormatNDJSON, FormatReport}
}

func logLevels() []string {
	return []string{"trace", "debug", "info", "warn", "error"}
}

func logFormats() []string {
	return []string{"console", "json", "text"}
}

func logOutputs() []string {
	return []string{"stderr", "stdout"}
}
