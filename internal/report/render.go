package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/rshade/sitecarbon/internal/emissions"
)

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// RenderResults writes projects in the given format. The report format is
// handled by RenderReport.
func RenderResults(w io.Writer, format string, projects []ProjectResult) error {
	switch format {
	case FormatTable:
		return renderTable(w, projects)
	case FormatJSON:
		return renderJSON(w, projects)
	case FormatNDJSON:
		return renderNDJSON(w, projects)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func renderTable(w io.Writer, projects []ProjectResult) error {
	for i, p := range projects {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := renderProjectTable(w, p); err != nil {
			return fmt.Errorf("rendering %s: %w", p.Name, err)
		}
	}
	return nil
}

// Headline returns "Total: 15.74 tonnes CO2e (High Impact)".
func Headline(r emissions.AggregateResult) string {
	return fmt.Sprintf("Total: %s tonnes CO2e (%s Impact)", r.FormattedTotal(), r.Impact())
}

func renderProjectTable(w io.Writer, p ProjectResult) error {
	if _, err := fmt.Fprintf(w, "Project: %s\n%s\n\n", p.Name, Headline(p.Result)); err != nil {
		return fmt.Errorf("writing headline: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	if _, err := fmt.Fprintf(tw, "CATEGORY\tQUANTITY\tFACTOR\tEMISSIONS (t)\tSHARE\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "--------\t--------\t------\t-------------\t-----\n"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}
	for _, ce := range p.Result.Categories {
		if _, err := fmt.Fprintf(tw, "%s\t%s %s\t%s %s\t%s\t%s%%\n",
			ce.Label,
			formatQuantity(ce.Quantity), ce.Category.ShortUnit(),
			formatFactor(ce.Factor), ce.Category.FactorUnit(),
			ce.FormattedTonnes(),
			ce.FormattedPercentage(),
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, d := range p.Result.Discarded {
		if _, err := fmt.Fprintf(w, "Note: %s quantity %s is too large and was counted as 0\n",
			d.Category.Label(), d.Raw); err != nil {
			return fmt.Errorf("writing note: %w", err)
		}
	}

	if text := p.Equivalencies.DisplayText; text != "" {
		if _, err := fmt.Fprintf(w, "\n%s\n", text); err != nil {
			return fmt.Errorf("writing equivalencies: %w", err)
		}
	}
	return nil
}

func renderJSON(w io.Writer, projects []ProjectResult) error {
	out := make([]projectJSON, 0, len(projects))
	for _, p := range projects {
		out = append(out, toJSON(p))
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func renderNDJSON(w io.Writer, projects []ProjectResult) error {
	for _, p := range projects {
		data, err := json.Marshal(toJSON(p))
		if err != nil {
			return fmt.Errorf("marshaling project: %w", err)
		}
		if _, err = fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("writing NDJSON line: %w", err)
		}
	}
	return nil
}

// formatQuantity drops trailing zeros ("100", "2.5").
func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatFactor keeps at least one decimal ("2.0", "350.0", "2.68").
func formatFactor(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	for _, r := range s {
		if r == '.' || r == 'e' {
			return s
		}
	}
	return s + ".0"
}
