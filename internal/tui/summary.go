package tui

import (
	"strings"

	"github.com/rshade/sitecarbon/internal/report"
)

// borderPadding accounts for the box's left and right border.
const borderPadding = 2

// minSummaryWidth keeps the box readable on very narrow terminals.
const minSummaryWidth = 40

// RenderSummary returns a boxed, styled summary of one project for
// non-interactive terminals.
func RenderSummary(p report.ProjectResult, width int) string {
	if width < minSummaryWidth {
		width = minSummaryWidth
	}
	r := p.Result

	var content strings.Builder
	content.WriteString(HeaderStyle.Render(strings.ToUpper(p.Name)))
	content.WriteString("\n\n")
	content.WriteString(LabelStyle.Render("Total Emissions: "))
	content.WriteString(ValueStyle.Render(r.FormattedTotal() + " tonnes CO2e"))
	content.WriteString("  ")
	content.WriteString(ImpactBadge(r.Impact()))
	content.WriteString("\n\n")
	content.WriteString(RenderBarChart(r, min(chartWidth, width/2)))
	content.WriteString(renderShares(r))

	if text := p.Equivalencies.DisplayText; text != "" {
		content.WriteString("\n")
		content.WriteString(SubtleStyle.Render(text))
	}

	return BoxStyle.Width(width - borderPadding).Render(content.String())
}
