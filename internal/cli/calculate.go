package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/sitecarbon/internal/config"
	"github.com/rshade/sitecarbon/internal/report"
	"github.com/rshade/sitecarbon/internal/tui"
)

// CalculateParams holds the parameters for the calculate command.
type CalculateParams struct {
	inputParams

	Output      string
	Interactive bool
}

// NewCalculateCmd creates the calculate command, which computes the emission
// breakdown for quantities given as flags or read from project files.
func NewCalculateCmd() *cobra.Command {
	var params CalculateParams

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate the carbon footprint of a construction project",
		Long: `Calculate the CO2e emissions of a construction project.

Quantities may be given as flags or read from one or more project files with
--input, but not both. Missing or invalid quantities count as zero.`,
		Example: `  # Quantities as flags
  sitecarbon calculate --diesel 100 --electricity 1000 --cement 5000 --steel 2000 --brick 10000 --concrete 10

  # Several project files as NDJSON
  sitecarbon calculate --input a.yaml --input b.json --output ndjson

  # Printable report
  sitecarbon calculate --input a.yaml --output report

  # Open the results in the interactive view
  sitecarbon calculate --steel 2000 --interactive`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeCalculate(cmd, params)
		},
	}

	addInputFlags(cmd, &params.inputParams)
	cmd.Flags().StringVar(&params.Output, "output", "",
		"output format: table, json, ndjson or report (default from config)")
	cmd.Flags().BoolVarP(&params.Interactive, "interactive", "i", false,
		"open the results in the interactive view")

	return cmd
}

// ValidateCalculateFlags checks flag combinations before any work is done.
func ValidateCalculateFlags(cmd *cobra.Command, params CalculateParams) error {
	if len(params.files) > 0 && quantityFlagsSet(cmd) {
		return ErrMixedInputs
	}
	if params.Interactive && len(params.files) > 1 {
		return errors.New("--interactive accepts at most one --input file")
	}
	if params.Output != "" && !slices.Contains(config.OutputFormats(), params.Output) {
		return fmt.Errorf("%w: %s", report.ErrUnknownFormat, params.Output)
	}
	return nil
}

func executeCalculate(cmd *cobra.Command, params CalculateParams) error {
	if err := ValidateCalculateFlags(cmd, params); err != nil {
		return err
	}

	projects, err := resolveProjects(cmd, &params.inputParams)
	if err != nil {
		return err
	}

	logger.Debug().Ctx(cmd.Context()).
		Int("projects", len(projects)).
		Bool("interactive", params.Interactive).
		Msg("emissions calculated")

	if params.Interactive {
		p := projects[0]
		return runTUI(cmd,
			tui.WithProjectName(p.Name),
			tui.WithInputs(p.Inputs),
		)
	}

	format := resolveFormat(params.Output, config.GetDefaultOutputFormat())
	return renderCalculateOutput(cmd.OutOrStdout(), format, projects)
}

// renderCalculateOutput routes the results to the renderer for format. Table
// output is styled when stdout is a terminal and plain otherwise.
func renderCalculateOutput(w io.Writer, format string, projects []report.ProjectResult) error {
	switch format {
	case config.FormatJSON, config.FormatNDJSON:
		return report.RenderResults(w, format, projects)
	case config.FormatReport:
		return report.RenderReport(w, report.NewReport(projects, time.Now()))
	case config.FormatTable:
		mode := tui.DetectOutputMode(false, false, false)
		if mode == tui.OutputModePlain {
			return report.RenderResults(w, report.FormatTable, projects)
		}
		return renderStyledOutput(w, projects)
	default:
		return fmt.Errorf("%w: %s", report.ErrUnknownFormat, format)
	}
}

func renderStyledOutput(w io.Writer, projects []report.ProjectResult) error {
	width := tui.TerminalWidth()
	for i, p := range projects {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, tui.RenderSummary(p, width)); err != nil {
			return err
		}
	}
	return nil
}
