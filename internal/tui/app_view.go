package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/sitecarbon/internal/advice"
	"github.com/rshade/sitecarbon/internal/emissions"
	"github.com/rshade/sitecarbon/internal/report"
)

// chartWidth is the length of the longest bar in the results chart.
const chartWidth = 30

// Home screen feature cards.
//
//nolint:gochecknoglobals // Static copy.
var featureCards = []struct{ title, body string }{
	{"GHG Protocol Compliance", "Scope 1 & 2 emissions, aligned with ISO 14064."},
	{"India-Specific Factors", "Grid electricity at 0.82 kg/kWh and local material data."},
	{"Detailed Analytics", "Category breakdown, impact level and reduction advice."},
}

// View implements tea.Model.
func (m AppModel) View() string {
	switch m.state {
	case ViewHome:
		return m.renderHome()
	case ViewForm:
		return m.renderForm()
	case ViewResults:
		return m.renderResults()
	case ViewSuggestions:
		return m.renderSuggestions()
	default:
		return ""
	}
}

func (m AppModel) renderHome() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Construction Carbon Calculator"))
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("Measure and reduce the carbon footprint of construction sites."))
	b.WriteString("\n\n")

	cards := make([]string, 0, len(featureCards))
	for _, c := range featureCards {
		cards = append(cards, CardStyle.Render(HeaderStyle.Render(c.title)+"\n"+c.body))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n\n")

	b.WriteString(HeaderStyle.Render("Supported Materials"))
	b.WriteString("\n")
	for _, c := range emissions.Categories() {
		fmt.Fprintf(&b, "  %s %s\n", ValueStyle.Render(c.Label()), SubtleStyle.Render("("+c.Unit()+")"))
	}

	b.WriteString(HelpStyle.Render("enter: Start Calculation • q: quit"))
	return b.String()
}

func (m AppModel) renderForm() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Carbon Emission Calculator"))
	b.WriteString("\n")

	for _, c := range emissions.Categories() {
		label := fmt.Sprintf("%-24s", c.FormLabel())
		marker := "  "
		if int(c) == m.focused {
			marker = "› "
			label = FocusedLabelStyle.Render(label)
		} else {
			label = LabelStyle.Render(label)
		}
		fmt.Fprintf(&b, "%s%s %s %s\n", marker, label, m.fields[c].View(), SubtleStyle.Render(c.Unit()))
	}

	b.WriteString(HelpStyle.Render("tab/↓ next • shift+tab/↑ previous • enter next/calculate • ctrl+s calculate • esc back"))
	return b.String()
}

func (m AppModel) renderResults() string {
	if m.project == nil {
		return InfoStyle.Render("No results to display.")
	}
	r := m.project.Result

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Carbon Emission Results"))
	b.WriteString("\n")
	writeField(&b, "Project: ", m.project.Name)
	b.WriteString(LabelStyle.Render("Total Emissions: "))
	b.WriteString(ValueStyle.Render(r.FormattedTotal() + " tonnes CO2e"))
	b.WriteString("  ")
	b.WriteString(ImpactBadge(r.Impact()))
	b.WriteString("\n\n")

	b.WriteString(HeaderStyle.Render("Emissions by Category (tonnes)"))
	b.WriteString("\n")
	b.WriteString(RenderBarChart(r, chartWidth))
	b.WriteString("\n")

	b.WriteString(HeaderStyle.Render("Share of Total"))
	b.WriteString("\n")
	b.WriteString(renderShares(r))
	b.WriteString("\n")

	b.WriteString(m.breakdown.View())
	b.WriteString("\n")

	if text := m.project.Equivalencies.DisplayText; text != "" {
		b.WriteString("\n")
		b.WriteString(SubtleStyle.Render(text))
		b.WriteString("\n")
	}

	if m.project.Inputs.IsZero() {
		b.WriteString(InfoStyle.Render("All quantities are zero. Press b to enter values."))
		b.WriteString("\n")
	}

	for _, d := range r.Discarded {
		b.WriteString(WarningStyle.Render(d.Category.Label() + " quantity is too large and was counted as 0"))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(CriticalStyle.Render(m.status))
		} else {
			b.WriteString(InfoStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render("s: suggestions • b: calculate again • p: print report • q: quit"))
	return b.String()
}

func (m AppModel) renderSuggestions() string {
	if m.project == nil {
		return InfoStyle.Render("No results to display.")
	}
	plan := advice.For(m.project.Result)

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Carbon Reduction Suggestions"))
	b.WriteString("\n")
	writeField(&b, "Current Emissions:   ", plan.FormattedTotal+" tonnes CO2e")
	writeField(&b, "Reduction Priority:  ", plan.Priority.String())
	writeField(&b, "Potential Reduction: ", plan.PotentialReduction)
	b.WriteString("\n")

	b.WriteString(HeaderStyle.Render("Carbon Reduction Strategies"))
	b.WriteString("\n")
	for _, s := range plan.SuggestionsFor() {
		fmt.Fprintf(&b, "  %s %s\n    %s\n    %s\n",
			ValueStyle.Render(s.Title),
			InfoStyle.Render("("+s.Impact+")"),
			s.Description,
			SubtleStyle.Render(plan.Note))
	}
	b.WriteString("\n")

	b.WriteString(HeaderStyle.Render("Additional Resources"))
	b.WriteString("\n")
	for _, r := range plan.Resources {
		fmt.Fprintf(&b, "  • %s\n", r)
	}
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render(report.Footnote))

	b.WriteString(HelpStyle.Render("b: back to results • n: new calculation • q: quit"))
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(LabelStyle.Render(label))
	b.WriteString(ValueStyle.Render(value))
	b.WriteString("\n")
}

// RenderBarChart draws one horizontal bar per category, scaled so the largest
// emitter spans width cells. An all-zero result draws no bars.
func RenderBarChart(r emissions.AggregateResult, width int) string {
	maxTonnes := 0.0
	for _, ce := range r.Categories {
		maxTonnes = math.Max(maxTonnes, ce.EmissionTonnes)
	}

	var b strings.Builder
	for _, ce := range r.Categories {
		n := 0
		if maxTonnes > 0 && width > 0 {
			n = int(math.Round(ce.EmissionTonnes / maxTonnes * float64(width)))
			n = max(0, min(n, width))
		}
		bar := lipgloss.NewStyle().Foreground(categoryColor(ce.Category)).Render(strings.Repeat("█", n))
		fmt.Fprintf(&b, "  %-12s %s %s\n", ce.Label, bar, SubtleStyle.Render(ce.FormattedTonnes()))
	}
	return b.String()
}

func renderShares(r emissions.AggregateResult) string {
	parts := make([]string, 0, len(r.Categories))
	for _, ce := range r.Categories {
		parts = append(parts, fmt.Sprintf("%s %s%%", ce.Label, ce.FormattedPercentage()))
	}
	return "  " + strings.Join(parts, " • ") + "\n"
}

// NewBreakdownTable builds the per-category results table.
func NewBreakdownTable(r emissions.AggregateResult, height int) table.Model {
	columns := []table.Column{
		{Title: "Category", Width: 12},      //nolint:mnd // Column width.
		{Title: "Quantity", Width: 14},      //nolint:mnd // Column width.
		{Title: "Emissions (t)", Width: 14}, //nolint:mnd // Column width.
		{Title: "Share", Width: 8},          //nolint:mnd // Column width.
	}

	rows := make([]table.Row, len(r.Categories))
	for i, ce := range r.Categories {
		rows[i] = table.Row{
			ce.Label,
			fmt.Sprintf("%g %s", ce.Quantity, ce.Category.ShortUnit()),
			ce.FormattedTonnes(),
			ce.FormattedPercentage() + "%",
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}
