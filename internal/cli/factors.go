package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/sitecarbon/internal/emissions"
	"github.com/rshade/sitecarbon/internal/report"
)

// NewFactorsCmd creates the factors command.
func NewFactorsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "factors",
		Short: "Show the emission factor for each category",
		Example: `  sitecarbon factors
  sitecarbon factors --output plain`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report.RenderFactors(cmd.OutOrStdout(), output, emissions.DefaultFactors())
		},
	}

	cmd.Flags().StringVar(&output, "output", report.FormatTable, "output format: table, json or plain")

	return cmd
}
