package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/rshade/sitecarbon/internal/emissions"
)

// RenderFactors writes the emission factor reference in table, json or plain
// format. Plain is a single line: "diesel=2.68 kg/L, electricity=0.82 kg/kWh, ...".
func RenderFactors(w io.Writer, format string, factors emissions.EmissionFactors) error {
	rows := factors.Rows()
	switch format {
	case FormatTable:
		tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
		if _, err := fmt.Fprintf(tw, "CATEGORY\tKEY\tFACTOR\tUNIT\n"); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		for _, r := range rows {
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				r.Label, r.Category.Key(), formatFactor(r.Factor), r.Unit); err != nil {
				return fmt.Errorf("writing row: %w", err)
			}
		}
		return tw.Flush()
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(rows); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case FormatPlain:
		_, err := fmt.Fprintln(w, FactorSummary(factors))
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// FactorSummary returns the one-line factor list.
func FactorSummary(factors emissions.EmissionFactors) string {
	parts := make([]string, 0, len(emissions.Categories()))
	for _, c := range emissions.Categories() {
		parts = append(parts, fmt.Sprintf("%s=%s kg/%s", c.Key(), formatFactor(factors.Factor(c)), c.ShortUnit()))
	}
	return strings.Join(parts, ", ")
}
