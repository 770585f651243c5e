package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/sitecarbon/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:         "init",
		Annotations: map[string]string{annotationCreatesConfig: "true"},
		Short:       "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values at
$SITECARBON_HOME/config.yaml (default ~/.sitecarbon/config.yaml), or at the
path given with --config.`,
		Example: `  # Create the default configuration
  sitecarbon config init

  # Create configuration, overwriting existing
  sitecarbon config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Init(path, force)
			if err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}

			cmd.Printf("Configuration initialized successfully\n")
			cmd.Printf("Configuration file: %s\n", cfg.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}
