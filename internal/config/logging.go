package config

import (
	"strings"

	"github.com/rshade/sitecarbon/internal/logging"
)

// Environment overrides for logging.
const (
	EnvLogLevel  = "SITECARBON_LOG_LEVEL"
	EnvLogFormat = "SITECARBON_LOG_FORMAT"
)

// ApplyEnvOverrides replaces logging settings with any values set in the
// environment. lookupEnv is usually os.LookupEnv.
func (c *Config) ApplyEnvOverrides(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
}

// ToLoggingConfig converts the config section to a logging.Config. A set File
// selects file output; otherwise logs go to stdout when asked, else stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	switch {
	case lc.File != "":
		output = logging.OutputFile
	case strings.EqualFold(lc.Output, logging.OutputStdout):
		output = logging.OutputStdout
	}
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
		Caller: lc.Caller,
	}
}

// GetLoggingConfig returns a copy of the global Logging section. Flag
// overrides such as --debug are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
