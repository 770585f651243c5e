package cli_test

import (
	"bytes"
	"testing"

	"github.com/rshade/sitecarbon/internal/cli"
	"github.com/rshade/sitecarbon/internal/config"
)

// setupCLITest isolates the config directory and quiets logging. It returns
// the config home.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv("NO_COLOR", "1")
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// runCLI executes the root command with args and returns combined output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
