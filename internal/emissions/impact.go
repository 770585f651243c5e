package emissions

import "fmt"

// Impact band boundaries in tonnes CO2e.
const (
	LowImpactMaxTonnes      = 1.0
	ModerateImpactMaxTonnes = 5.0
)

// ImpactLevel is a qualitative band for a project's total emissions.
type ImpactLevel int

const (
	// ImpactLow is below 1 tonne.
	ImpactLow ImpactLevel = iota
	// ImpactModerate is from 1 up to 5 tonnes.
	ImpactModerate
	// ImpactHigh is 5 tonnes or more.
	ImpactHigh
)

// ClassifyImpact maps a total in tonnes to its band.
func ClassifyImpact(totalTonnes float64) ImpactLevel {
	switch {
	case totalTonnes < LowImpactMaxTonnes:
		return ImpactLow
	case totalTonnes < ModerateImpactMaxTonnes:
		return ImpactModerate
	default:
		return ImpactHigh
	}
}

// String returns the band name ("Low", "Moderate", "High").
func (l ImpactLevel) String() string {
	switch l {
	case ImpactLow:
		return "Low"
	case ImpactModerate:
		return "Moderate"
	case ImpactHigh:
		return "High"
	default:
		return fmt.Sprintf("ImpactLevel(%d)", int(l))
	}
}

// Label returns the badge text ("High Impact Level").
func (l ImpactLevel) Label() string {
	return l.String() + " Impact Level"
}

// Color returns a terminal color name for the band: green, yellow or red.
func (l ImpactLevel) Color() string {
	switch l {
	case ImpactLow:
		return "green"
	case ImpactModerate:
		return "yellow"
	default:
		return "red"
	}
}

// MarshalText encodes the band name.
func (l ImpactLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}
