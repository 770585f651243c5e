package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rshade/sitecarbon/internal/logging"
)

// ProjectConfigName is the optional per-project overlay looked up in the
// working directory.
const ProjectConfigName = ".sitecarbon.yaml"

// Top-level YAML config key names used for shallow merge.
const (
	keyOutput  = "output"
	keyLogging = "logging"
	keyReport  = "report"
)

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// target. Keys present in the overlay replace entire sections; absent keys
// and unknown keys leave target unchanged. The version key is never merged.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	for key, node := range overlay {
		if err = unmarshalSection(target, key, &node); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}
	return nil
}

// unmarshalSection decodes node into a fresh value so the section is replaced
// rather than merged field by field.
func unmarshalSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyOutput:
		var v OutputConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Output = v
	case keyLogging:
		var v LoggingConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	case keyReport:
		var v ReportConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Report = v
	}
	return nil
}

// NewWithProjectDir returns New() with projectDir/.sitecarbon.yaml merged on
// top when it exists. A broken overlay is logged and ignored.
func NewWithProjectDir(ctx context.Context, projectDir string) *Config {
	cfg := New()
	if projectDir == "" {
		return cfg
	}

	overlayPath := filepath.Join(projectDir, ProjectConfigName)
	if _, err := os.Stat(overlayPath); err != nil {
		return cfg
	}

	merged := *cfg
	if err := ShallowMergeYAML(&merged, overlayPath); err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Ctx(ctx).
			Str("component", "config").
			Str("operation", "merge_project_config").
			Err(err).
			Str("overlay_path", overlayPath).
			Msg("failed to merge project config, using global defaults")
		return cfg
	}
	merged.ApplyEnvOverrides(os.LookupEnv)
	return &merged
}
