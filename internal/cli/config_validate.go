package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/sitecarbon/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and semantic correctness:
the schema version, the default output format and the logging settings.`,
		Example: `  sitecarbon config validate
  sitecarbon --config ./ci.yaml config validate`,
		RunE: runConfigValidate,
	}
}

// runConfigValidate re-reads the config file strictly, since the global
// config silently falls back to defaults when the file does not parse.
func runConfigValidate(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.FilePath()
		if err != nil {
			return err
		}
		path = p
	}

	cfg := config.GetGlobalConfig()
	if _, err := os.Stat(path); err == nil {
		loaded, loadErr := config.Load(path)
		if loadErr != nil {
			return fmt.Errorf("configuration validation failed: %w", loadErr)
		}
		cfg = loaded
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot access config path %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")
	return nil
}
