package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"

	"github.com/rshade/sitecarbon/internal/advice"
)

type planJSON struct {
	Project string `json:"project"`
	advice.Plan
}

// RenderPlans writes the reduction advice for each project as text, json
// or ndjson.
func RenderPlans(w io.Writer, format string, projects []ProjectResult) error {
	switch format {
	case FormatTable:
		return renderPlansText(w, projects)
	case FormatJSON:
		out := make([]planJSON, 0, len(projects))
		for _, p := range projects {
			out = append(out, planJSON{Project: p.Name, Plan: advice.For(p.Result)})
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(out); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case FormatNDJSON:
		for _, p := range projects {
			data, err := json.Marshal(planJSON{Project: p.Name, Plan: advice.For(p.Result)})
			if err != nil {
				return fmt.Errorf("marshaling plan: %w", err)
			}
			if _, err = fmt.Fprintf(w, "%s\n", data); err != nil {
				return fmt.Errorf("writing NDJSON line: %w", err)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func renderPlansText(w io.Writer, projects []ProjectResult) error {
	var b strings.Builder
	for i, p := range projects {
		if i > 0 {
			fmt.Fprintln(&b)
		}
		plan := advice.For(p.Result)
		fmt.Fprintf(&b, "Project: %s\n", p.Name)
		fmt.Fprintf(&b, "Current Emissions: %s tonnes CO2e\n", plan.FormattedTotal)
		fmt.Fprintf(&b, "Reduction Priority: %s\n", plan.Priority)
		fmt.Fprintf(&b, "Potential Reduction: %s\n\n", plan.PotentialReduction)

		fmt.Fprintln(&b, "Carbon Reduction Strategies")
		for _, s := range plan.SuggestionsFor() {
			fmt.Fprintf(&b, "  %s (%s)\n    %s\n    %s\n", s.Title, s.Impact, s.Description, plan.Note)
		}

		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "Additional Resources")
		for _, r := range plan.Resources {
			fmt.Fprintf(&b, "  - %s\n", r)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
