package cli

import (
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/sitecarbon/internal/config"
	"github.com/rshade/sitecarbon/internal/report"
)

// NewSuggestCmd creates the suggest command, which prints the reduction
// priority and strategies for a project.
func NewSuggestCmd() *cobra.Command {
	var params inputParams
	var output string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Show emission reduction advice for a construction project",
		Long: `Show the reduction priority, potential reduction and recommended strategies
for a project. Accepts the same inputs as calculate.`,
		Example: `  sitecarbon suggest --steel 2000 --concrete 10
  sitecarbon suggest --input tower-a.yaml --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := resolveFormat(output, config.GetDefaultOutputFormat())
			if !slices.Contains(config.OutputFormats(), format) {
				return fmt.Errorf("%w: %s", report.ErrUnknownFormat, format)
			}

			projects, err := resolveProjects(cmd, &params)
			if err != nil {
				return err
			}

			if format == config.FormatReport {
				return report.RenderReport(cmd.OutOrStdout(), report.NewReport(projects, time.Now()))
			}
			return report.RenderPlans(cmd.OutOrStdout(), format, projects)
		},
	}

	addInputFlags(cmd, &params)
	cmd.Flags().StringVar(&output, "output", "",
		"output format: table, json, ndjson or report (default from config)")

	return cmd
}
