package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/sitecarbon/internal/config"
)

func TestConfigInit(t *testing.T) {
	home := setupCLITest(t)
	path := filepath.Join(home, "config.yaml")

	out, err := runCLI(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")
	assert.Contains(t, out, path)
	_, statErr := os.Stat(path)
	require.NoError(t, statErr)

	_, err = runCLI(t, "config", "init")
	require.ErrorIs(t, err, config.ErrConfigExists)

	_, err = runCLI(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigInit_ExplicitPath(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")

	out, err := runCLI(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.FormatTable, loaded.Output.DefaultFormat)
}

func TestConfigShow(t *testing.T) {
	home := setupCLITest(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("version: 1.0.0\noutput:\n  default_format: ndjson\n"), 0o600))

	out, err := runCLI(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "version: 1.0.0")
	assert.Contains(t, out, "default_format: ndjson")
	assert.Contains(t, out, "level: error", "environment override is applied")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		errText string
	}{
		{name: "no file uses defaults"},
		{name: "valid file", content: "version: 1.2.0\noutput:\n  default_format: report\n"},
		{
			name:    "unsupported version",
			content: "version: 2.0.0\n",
			wantErr: config.ErrUnsupportedVersion,
		},
		{
			name:    "bad output format",
			content: "version: 1.0.0\noutput:\n  default_format: xml\n",
			wantErr: config.ErrInvalidValue,
		},
		{
			name:    "malformed yaml",
			content: "output: [\n",
			errText: "configuration validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := setupCLITest(t)
			if tt.content != "" {
				require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(tt.content), 0o600))
			}

			out, err := runCLI(t, "config", "validate")
			if tt.wantErr == nil && tt.errText == "" {
				require.NoError(t, err)
				assert.Contains(t, out, "Configuration is valid")
				return
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			if tt.errText != "" {
				assert.Contains(t, err.Error(), tt.errText)
			}
		})
	}
}
