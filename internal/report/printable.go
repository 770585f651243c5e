package report

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rshade/sitecarbon/internal/advice"
)

// Footnote is printed at the end of every printable report.
const Footnote = "* Calculations follow GHG Protocol (Scope 1 & 2) and align with ISO 14064 standards"

// barWidth is the length of a 100% share bar.
const barWidth = 30

// Report is a printable document covering one or more projects.
type Report struct {
	ID          string
	GeneratedAt time.Time
	Projects    []ProjectResult
}

// NewReport stamps projects with a fresh ULID taken at now.
func NewReport(projects []ProjectResult, now time.Time) Report {
	id := ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy())
	return Report{
		ID:          id.String(),
		GeneratedAt: now.UTC(),
		Projects:    projects,
	}
}

// FileName is the name WriteFile uses for r.
func (r Report) FileName() string {
	return "sitecarbon-report-" + r.ID + ".txt"
}

// RenderReport writes the printable text form of r.
func RenderReport(w io.Writer, r Report) error {
	var b strings.Builder

	rule := strings.Repeat("=", 60)
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "Carbon Emission Results")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Report ID:  %s\n", r.ID)
	fmt.Fprintf(&b, "Generated:  %s\n", r.GeneratedAt.Format(time.RFC3339))

	for _, p := range r.Projects {
		writeProjectSection(&b, p)
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, Footnote)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func writeProjectSection(b *strings.Builder, p ProjectResult) {
	plan := advice.For(p.Result)

	fmt.Fprintln(b)
	fmt.Fprintf(b, "Project: %s\n", p.Name)
	if p.Source != "" {
		fmt.Fprintf(b, "Source:  %s\n", p.Source)
	}
	fmt.Fprintln(b, strings.Repeat("-", 60))
	fmt.Fprintf(b, "Total Emissions: %s tonnes CO2e\n", p.Result.FormattedTotal())
	fmt.Fprintf(b, "Impact: %s\n", p.Result.Impact().Label())

	fmt.Fprintln(b)
	fmt.Fprintln(b, "Emission Breakdown")
	for _, ce := range p.Result.Categories {
		fmt.Fprintf(b, "  %-12s %9s t  %5s%%  %s\n",
			ce.Label, ce.FormattedTonnes(), ce.FormattedPercentage(), Bar(ce.Percentage, barWidth))
	}

	if text := p.Equivalencies.DisplayText; text != "" {
		fmt.Fprintln(b)
		fmt.Fprintln(b, text)
	}

	fmt.Fprintln(b)
	fmt.Fprintf(b, "Reduction Priority: %s (potential reduction %s)\n", plan.Priority, plan.PotentialReduction)
	for _, s := range plan.SuggestionsFor() {
		fmt.Fprintf(b, "  - %s (%s): %s\n", s.Title, s.Impact, s.Description)
	}
}

// Bar draws a share as a run of '#' characters scaled to width. Values
// outside 0..100 are clamped.
func Bar(percentage float64, width int) string {
	if width <= 0 || math.IsNaN(percentage) {
		return ""
	}
	p := math.Max(0, math.Min(100, percentage))
	return strings.Repeat("#", int(math.Round(p/100*float64(width))))
}

// WriteFile renders r into dir and returns the written path.
func WriteFile(dir string, r Report) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}
	var buf bytes.Buffer
	if err := RenderReport(&buf, r); err != nil {
		return "", err
	}
	path := filepath.Join(dir, r.FileName())
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return "", fmt.Errorf("writing report %s: %w", path, err)
	}
	return path, nil
}
