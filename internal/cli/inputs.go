package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/sitecarbon/internal/emissions"
	"github.com/rshade/sitecarbon/internal/logging"
	"github.com/rshade/sitecarbon/internal/projectfile"
	"github.com/rshade/sitecarbon/internal/report"
)

// defaultProjectName labels results built from quantity flags.
const defaultProjectName = "Construction Site"

// ErrMixedInputs is returned when quantity flags and --input are combined.
var ErrMixedInputs = errors.New("quantity flags cannot be combined with --input")

// inputParams holds the flags shared by calculate and suggest.
type inputParams struct {
	quantities [emissions.NumCategories]string
	files      []string
	name       string
}

// addInputFlags registers one string flag per category plus --input and --name.
// Quantities are read as text so that bad values can be treated as zero
// instead of failing flag parsing.
func addInputFlags(cmd *cobra.Command, p *inputParams) {
	for _, c := range emissions.Categories() {
		cmd.Flags().StringVar(&p.quantities[c], c.Key(), "",
			fmt.Sprintf("%s in %s", c.FormLabel(), c.Unit()))
	}
	cmd.Flags().StringArrayVar(&p.files, "input", nil,
		"project file (YAML or JSON) to read quantities from; may be repeated")
	cmd.Flags().StringVar(&p.name, "name", defaultProjectName,
		"project name used with quantity flags")
}

// quantityFlagsSet reports whether any category flag was given.
func quantityFlagsSet(cmd *cobra.Command) bool {
	for _, c := range emissions.Categories() {
		if cmd.Flags().Changed(c.Key()) {
			return true
		}
	}
	return false
}

// resolveProjects turns the input flags into calculated projects. With no
// quantity flags and no files the result is a single all-zero project.
func resolveProjects(cmd *cobra.Command, p *inputParams) ([]report.ProjectResult, error) {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if len(p.files) > 0 {
		if quantityFlagsSet(cmd) {
			return nil, ErrMixedInputs
		}
		loaded, err := projectfile.LoadAll(ctx, p.files)
		if err != nil {
			return nil, err
		}
		projects := make([]report.ProjectResult, 0, len(loaded))
		for _, proj := range loaded {
			projects = append(projects, report.NewProjectResult(proj.Name, proj.Path, proj.Inputs))
		}
		logDiscarded(cmd, projects)
		return projects, nil
	}

	raw := make(map[string]string, emissions.NumCategories)
	for _, c := range emissions.Categories() {
		raw[c.Key()] = p.quantities[c]
	}
	inputs, notes := emissions.InputsFromStrings(raw)
	for _, n := range notes {
		log.Debug().Ctx(ctx).
			Str("component", "cli").
			Str("category", n.Category.Key()).
			Str("raw", n.Raw).
			Msg("invalid quantity treated as zero")
	}

	projects := []report.ProjectResult{report.NewProjectResult(p.name, "", inputs)}
	logDiscarded(cmd, projects)
	return projects, nil
}

// logDiscarded records categories whose emission could not be represented.
func logDiscarded(cmd *cobra.Command, projects []report.ProjectResult) {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	for _, p := range projects {
		for _, d := range p.Result.Discarded {
			log.Debug().Ctx(ctx).
				Str("component", "cli").
				Str("project", p.Name).
				Str("category", d.Category.Key()).
				Str("quantity", d.Raw).
				Msg("emission out of range, counted as 0")
		}
	}
}

// resolveFormat returns the --output value, or the configured default.
func resolveFormat(flag string, defaultFormat string) string {
	if flag != "" {
		return flag
	}
	return defaultFormat
}
