package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/sitecarbon/internal/emissions"
)

// Color palette.
const (
	ColorHeader    = lipgloss.Color("42")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorMuted     = lipgloss.Color("240")
	ColorBorder    = lipgloss.Color("35")
	ColorHighlight = lipgloss.Color("120")
	ColorOK        = lipgloss.Color("40")
	ColorWarning   = lipgloss.Color("214")
	ColorCritical  = lipgloss.Color("196")
)

//nolint:gochecknoglobals // Shared style definitions, never mutated.
var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader).MarginBottom(1)

	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorValue)
	SubtleStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	InfoStyle     = lipgloss.NewStyle().Foreground(ColorHighlight)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	CriticalStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCritical)
	HelpStyle     = lipgloss.NewStyle().Foreground(ColorMuted).MarginTop(1)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1).
			Width(cardWidth)

	FocusedLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHighlight)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHeader).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ColorMuted)
	TableSelectedStyle = lipgloss.NewStyle().Foreground(ColorValue).Background(lipgloss.Color("22"))
)

// cardWidth is the inner width of a home-screen feature card.
const cardWidth = 26

// impactColor maps an impact band to its color.
func impactColor(level emissions.ImpactLevel) lipgloss.Color {
	switch level {
	case emissions.ImpactLow:
		return ColorOK
	case emissions.ImpactModerate:
		return ColorWarning
	default:
		return ColorCritical
	}
}

// ImpactBadge renders "High Impact Level" in the band's color.
func ImpactBadge(level emissions.ImpactLevel) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(impactColor(level)).
		Padding(0, 1).
		Render(level.Label())
}

//nolint:gochecknoglobals // Per-category bar colors, indexed by emissions.Category.
var categoryColors = [emissions.NumCategories]lipgloss.Color{
	emissions.Diesel:      lipgloss.Color("208"),
	emissions.Electricity: lipgloss.Color("226"),
	emissions.Cement:      lipgloss.Color("250"),
	emissions.Steel:       lipgloss.Color("111"),
	emissions.Brick:       lipgloss.Color("167"),
	emissions.Concrete:    lipgloss.Color("145"),
}

func categoryColor(c emissions.Category) lipgloss.Color {
	if !c.Valid() {
		return ColorValue
	}
	return categoryColors[c]
}
