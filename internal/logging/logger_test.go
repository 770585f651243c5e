package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewLogger_JSONWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: "debug", Format: FormatJSON}, &buf)

	ctx := ContextWithTraceID(context.Background(), "01TESTTRACE")
	component := ComponentLogger(logger, "emissions")
	component.Debug().Ctx(ctx).Float64("total_kg", 268).Msg("aggregated")

	out := buf.String()
	assert.Contains(t, out, `"trace_id":"01TESTTRACE"`)
	assert.Contains(t, out, `"component":"emissions"`)
	assert.Contains(t, out, `"total_kg":268`)
	assert.Contains(t, out, `"message":"aggregated"`)
}

func TestNewLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: "warn", Format: FormatJSON}, &buf)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger_Caller(t *testing.T) {
	tests := []struct {
		name   string
		caller bool
	}{
		{name: "with caller", caller: true},
		{name: "without caller", caller: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(Config{Level: "info", Format: FormatJSON, Caller: tt.caller}, &buf)

			logger.Info().Msg("located")

			if tt.caller {
				assert.Contains(t, buf.String(), `"caller":`)
				assert.Contains(t, buf.String(), "logger_test.go")
				return
			}
			assert.NotContains(t, buf.String(), `"caller":`)
		})
	}
}

func TestNewLoggerWithPath_Stdout(t *testing.T) {
	result := NewLoggerWithPath(Config{Level: "info", Output: OutputStdout})

	assert.False(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.Empty(t, result.FilePath)
}

func TestNewLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: "info", Format: FormatConsole}, &buf)

	logger.Info().Msg("plain line")

	assert.Contains(t, buf.String(), "plain line")
	assert.False(t, strings.HasPrefix(buf.String(), "{"))
}

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sitecarbon.log")

	result := NewLoggerWithPath(Config{Level: "info", Output: OutputFile, File: path})
	require.True(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, path, result.FilePath)

	result.Logger.Info().Msg("to file")
	require.NoError(t, result.Close())
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"to file"`)
}

func TestNewLoggerWithPath_Fallback(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	result := NewLoggerWithPath(Config{Output: OutputFile, File: filepath.Join(blocker, "app.log")})
	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.FallbackReason)
	assert.NoError(t, result.Close())

	empty := NewLoggerWithPath(Config{Output: OutputFile})
	assert.True(t, empty.FallbackUsed)
	assert.Equal(t, "no log file configured", empty.FallbackReason)
}

func TestPrintMessages(t *testing.T) {
	var buf bytes.Buffer
	PrintLogPathMessage(&buf, "/tmp/x.log")
	PrintFallbackWarning(&buf, "denied")

	assert.Equal(t, "Logging to /tmp/x.log\nWarning: file logging unavailable (denied), logging to stderr\n", buf.String())
}

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TraceIDFromContext(ctx))

	generated := GetOrGenerateTraceID(ctx)
	_, err := ulid.Parse(generated)
	require.NoError(t, err)

	ctx = ContextWithTraceID(ctx, generated)
	assert.Equal(t, generated, GetOrGenerateTraceID(ctx))
}

func TestFromContext(t *testing.T) {
	nop := FromContext(context.Background())
	require.NotNil(t, nop)
	assert.Equal(t, zerolog.Disabled, nop.GetLevel())

	var buf bytes.Buffer
	logger := NewLogger(Config{Level: "info", Format: FormatJSON}, &buf)
	ctx := logger.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from ctx")

	assert.Contains(t, buf.String(), "from ctx")
}
