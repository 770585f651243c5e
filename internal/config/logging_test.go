package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/sitecarbon/internal/logging"
)

func TestToLoggingConfig(t *testing.T) {
	tests := []struct {
		name string
		in   LoggingConfig
		want logging.Config
	}{
		{
			name: "stderr",
			in:   LoggingConfig{Level: "info", Format: "console"},
			want: logging.Config{Level: "info", Format: "console", Output: logging.OutputStderr},
		},
		{
			name: "file",
			in:   LoggingConfig{Level: "debug", Format: "json", File: "/tmp/a.log"},
			want: logging.Config{Level: "debug", Format: "json", Output: logging.OutputFile, File: "/tmp/a.log"},
		},
		{
			name: "stdout with caller",
			in:   LoggingConfig{Level: "info", Format: "json", Output: "stdout", Caller: true},
			want: logging.Config{Level: "info", Format: "json", Output: logging.OutputStdout, Caller: true},
		},
		{
			name: "file wins over stdout",
			in:   LoggingConfig{Level: "info", Format: "json", Output: "stdout", File: "/tmp/b.log"},
			want: logging.Config{Level: "info", Format: "json", Output: logging.OutputFile, File: "/tmp/b.log"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.ToLoggingConfig())
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	env := map[string]string{EnvLogLevel: "trace"}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	cfg.ApplyEnvOverrides(lookup)

	assert.Equal(t, "trace", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestGetLoggingConfig(t *testing.T) {
	t.Cleanup(ResetGlobalConfigForTest)
	cfg := Default()
	cfg.Logging.Level = "warn"
	SetGlobalConfig(cfg)

	got := GetLoggingConfig()
	got.Level = "error"
	assert.Equal(t, "warn", GetGlobalConfig().Logging.Level)
}
