package greenops

import (
	"fmt"
	"math"
)

// comparison pairs a kind with its divisor and label.
type comparison struct {
	kind   Kind
	factor float64
	label  string
}

//nolint:gochecknoglobals // Immutable table, in display order.
var comparisons = []comparison{
	{kind: MilesDriven, factor: MilesDrivenFactor, label: "miles driven"},
	{kind: SmartphonesCharged, factor: SmartphoneChargeFactor, label: "smartphones charged"},
	{kind: TreeSeedlings, factor: TreeSeedlingFactor, label: "tree seedlings grown for 10 years"},
	{kind: HomeDays, factor: HomeDayFactor, label: "days of home electricity"},
}

// Calculate computes every comparison for a total in kilograms CO2e.
//
// Totals below MinEquivalencyKg produce an empty Output with InputKg set.
// Negative totals return ErrNegativeValue and NaN or infinite totals return
// ErrNotFinite.
func Calculate(kg float64) (Output, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return Output{}, ErrNotFinite
	}
	if kg < 0 {
		return Output{}, ErrNegativeValue
	}
	if kg < MinEquivalencyKg {
		return Output{InputKg: kg}, nil
	}

	out := Output{
		InputKg:      kg,
		Equivalences: make([]Equivalency, 0, len(comparisons)),
	}
	for _, cmp := range comparisons {
		v := kg / cmp.factor
		out.Equivalences = append(out.Equivalences, Equivalency{
			Kind:      cmp.kind,
			Value:     v,
			Formatted: formatCount(v),
			Label:     cmp.label,
		})
	}

	miles := out.Equivalences[MilesDriven].Formatted
	phones := out.Equivalences[SmartphonesCharged].Formatted
	out.DisplayText = fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones", miles, phones)
	out.CompactText = fmt.Sprintf("(≈ %s mi, %s phones)", miles, phones)

	return out, nil
}

// Get returns the comparison of the given kind, if present.
func (o Output) Get(kind Kind) (Equivalency, bool) {
	for _, eq := range o.Equivalences {
		if eq.Kind == kind {
			return eq, true
		}
	}
	return Equivalency{}, false
}

// formatCount abbreviates very large counts and rounds the rest to whole numbers.
func formatCount(v float64) string {
	if v >= MillionThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
