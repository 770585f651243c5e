package advice

import (
	"fmt"
	"sort"

	"github.com/rshade/sitecarbon/internal/emissions"
)

// Priority thresholds in tonnes CO2e. Both bounds are exclusive.
const (
	HighPriorityAboveTonnes   = 5.0
	MediumPriorityAboveTonnes = 2.0
)

// Priority is how urgently a project should pursue reductions.
type Priority int

const (
	// PriorityMaintain applies at 2 tonnes or less.
	PriorityMaintain Priority = iota
	// PriorityMedium applies above 2 tonnes up to 5.
	PriorityMedium
	// PriorityHigh applies above 5 tonnes.
	PriorityHigh
)

// PriorityFor returns the band for a total in tonnes.
func PriorityFor(totalTonnes float64) Priority {
	switch {
	case totalTonnes > HighPriorityAboveTonnes:
		return PriorityHigh
	case totalTonnes > MediumPriorityAboveTonnes:
		return PriorityMedium
	default:
		return PriorityMaintain
	}
}

// String returns the display label.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High Priority"
	case PriorityMedium:
		return "Medium Priority"
	case PriorityMaintain:
		return "Maintain Current Practices"
	default:
		return fmt.Sprintf("Priority(%d)", int(p))
	}
}

// PotentialReduction returns the achievable reduction range for the band.
func (p Priority) PotentialReduction() string {
	switch p {
	case PriorityHigh:
		return "50-70%"
	case PriorityMedium:
		return "30-50%"
	default:
		return "20-30%"
	}
}

// MarshalText encodes the display label.
func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Plan is everything the suggestions view shows for one result.
type Plan struct {
	TotalTonnes        float64      `json:"total_tonnes"`
	FormattedTotal     string       `json:"formatted_total"`
	Priority           Priority     `json:"priority"`
	PotentialReduction string       `json:"potential_reduction"`
	Suggestions        []Suggestion `json:"suggestions"`
	Resources          []string     `json:"resources"`
	Note               string       `json:"note"`

	// Focus lists the categories that contribute most, largest first.
	Focus []emissions.Category `json:"focus,omitempty"`
}

// focusShareMin is the share of the total above which a category is called out.
const focusShareMin = 20.0

// For builds the plan for an aggregation result.
func For(result emissions.AggregateResult) Plan {
	p := PriorityFor(result.TotalTonnes)
	return Plan{
		TotalTonnes:        result.TotalTonnes,
		FormattedTotal:     result.FormattedTotal(),
		Priority:           p,
		PotentialReduction: p.PotentialReduction(),
		Suggestions:        Suggestions(),
		Resources:          Resources(),
		Note:               Note(),
		Focus:              focusCategories(result),
	}
}

// focusCategories returns categories holding at least focusShareMin percent,
// ordered by share descending; ties keep declaration order.
func focusCategories(result emissions.AggregateResult) []emissions.Category {
	if !result.HasEmissions() {
		return nil
	}
	var picked []emissions.CategoryEmission
	for _, ce := range result.Categories {
		if ce.Percentage >= focusShareMin {
			picked = append(picked, ce)
		}
	}
	sort.SliceStable(picked, func(i, j int) bool {
		return picked[i].Percentage > picked[j].Percentage
	})
	out := make([]emissions.Category, 0, len(picked))
	for _, ce := range picked {
		out = append(out, ce.Category)
	}
	return out
}

// SuggestionsFor returns every strategy, with those targeting a focus
// category moved to the front. Relative order is otherwise preserved.
func (p Plan) SuggestionsFor() []Suggestion {
	out := make([]Suggestion, 0, len(p.Suggestions))
	var rest []Suggestion
	for _, s := range p.Suggestions {
		if p.targetsFocus(s) {
			out = append(out, s)
		} else {
			rest = append(rest, s)
		}
	}
	return append(out, rest...)
}

func (p Plan) targetsFocus(s Suggestion) bool {
	for _, c := range p.Focus {
		if s.Targets(c) {
			return true
		}
	}
	return false
}
