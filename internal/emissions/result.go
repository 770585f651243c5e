package emissions

import "strconv"

// CategoryEmission is the contribution of one category to the total.
type CategoryEmission struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Quantity float64  `json:"quantity"`
	Unit     string   `json:"unit"`
	Factor   float64  `json:"factor"`

	// EmissionKg is the unrounded quantity × factor.
	EmissionKg float64 `json:"emission_kg"`

	// EmissionTonnes is EmissionKg / 1000 rounded to three decimals.
	EmissionTonnes float64 `json:"emission_tonnes"`

	// Percentage is the share of the total rounded to one decimal; 0 when the total is 0.
	Percentage float64 `json:"percentage"`
}

// FormattedTonnes returns the emission with exactly three decimals ("4.000").
func (ce CategoryEmission) FormattedTonnes() string {
	return strconv.FormatFloat(ce.EmissionTonnes, 'f', CategoryDecimals, 64)
}

// FormattedPercentage returns the share with exactly one decimal ("25.4").
func (ce CategoryEmission) FormattedPercentage() string {
	return strconv.FormatFloat(ce.Percentage, 'f', PercentageDecimals, 64)
}

// AggregateResult is the outcome of Aggregate.
type AggregateResult struct {
	// TotalKg is the unrounded sum of every category.
	TotalKg float64 `json:"total_kg"`

	// TotalTonnes is TotalKg / 1000 rounded to two decimals.
	TotalTonnes float64 `json:"total_tonnes"`

	// Categories lists every category in declaration order.
	Categories []CategoryEmission `json:"categories"`

	// Discarded lists categories whose emission was too large to represent
	// and was counted as zero.
	Discarded []Coercion `json:"discarded,omitempty"`
}

// FormattedTotal returns the headline figure with exactly two decimals ("15.74").
func (r AggregateResult) FormattedTotal() string {
	return strconv.FormatFloat(r.TotalTonnes, 'f', TotalDecimals, 64)
}

// HasEmissions reports whether anything was emitted. Shares are only
// meaningful when this is true.
func (r AggregateResult) HasEmissions() bool {
	return r.TotalKg > 0
}

// Category returns the entry for c.
func (r AggregateResult) Category(c Category) (CategoryEmission, bool) {
	for _, ce := range r.Categories {
		if ce.Category == c {
			return ce, true
		}
	}
	return CategoryEmission{}, false
}

// Impact classifies the headline total.
func (r AggregateResult) Impact() ImpactLevel {
	return ClassifyImpact(r.TotalTonnes)
}
