package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/sitecarbon/internal/config"
	"github.com/rshade/sitecarbon/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// annotationCreatesConfig marks commands that may run before the --config
// file exists.
const annotationCreatesConfig = "sitecarbon/creates-config"

// NewRootCmd creates the root Cobra command for the sitecarbon CLI.
// It loads configuration, wires up logging and tracing, and registers the
// calculate, suggest, factors, tui and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "sitecarbon",
		Short:   "Construction site carbon footprint calculator",
		Long:    "sitecarbon: Estimate the CO2e emissions of a construction project from fuel, power and material quantities",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return logResult.Close()
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $SITECARBON_HOME/config.yaml)")
	cmd.AddCommand(
		NewCalculateCmd(),
		NewSuggestCmd(),
		NewFactorsCmd(),
		NewTUICmd(),
		newConfigCmd(),
	)

	return cmd
}

// loadConfig installs the global config: an explicit --config file, or the
// user config with any .sitecarbon.yaml in the working directory merged on top.
func loadConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		cfg, err := config.Load(path)
		if errors.Is(err, fs.ErrNotExist) && cmd.Annotations[annotationCreatesConfig] == "true" {
			cfg, err = config.Default(), nil
			cfg.SetPath(path)
		}
		if err != nil {
			return err
		}
		cfg.ApplyEnvOverrides(os.LookupEnv)
		config.SetGlobalConfig(cfg)
		return nil
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}
	config.SetGlobalConfig(config.NewWithProjectDir(cmd.Context(), wd))
	return nil
}

const rootCmdExample = `  # Calculate emissions from quantities
  sitecarbon calculate --diesel 100 --electricity 1000 --cement 5000

  # Calculate several projects from files as JSON
  sitecarbon calculate --input tower-a.yaml --input block-b.json --output json

  # Write a printable report
  sitecarbon calculate --input tower-a.yaml --output report > report.txt

  # Show reduction advice
  sitecarbon suggest --steel 2000 --concrete 10

  # Show the emission factors
  sitecarbon factors

  # Open the interactive calculator
  sitecarbon tui

  # Create a default configuration file
  sitecarbon config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
