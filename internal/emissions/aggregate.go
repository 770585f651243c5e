package emissions

import (
	"math"
	"strconv"
)

// Display precision for rounded values.
const (
	TotalDecimals      = 2
	CategoryDecimals   = 3
	PercentageDecimals = 1
)

// percentScale converts a fraction to a percentage.
const percentScale = 100.0

// MaxCategoryKg is the largest emission a single category may contribute.
// Every category at this bound still sums to a finite total.
const MaxCategoryKg = math.MaxFloat64 / float64(numCategories+1)

// Calculate aggregates inputs against the default factor table.
func Calculate(inputs Inputs) AggregateResult {
	return Aggregate(inputs, DefaultFactors())
}

// Aggregate multiplies every quantity by its factor and sums the result.
//
// Quantities are clamped to non-negative finite values first. Per-category
// tonnes are rounded to three decimals, the total to two, and each share of the
// total to one. When the total is zero every share is reported as 0 instead of
// dividing by zero. A category whose emission is not finite or exceeds
// MaxCategoryKg counts as zero and is listed in Discarded, so every figure in
// the result is finite.
func Aggregate(inputs Inputs, factors EmissionFactors) AggregateResult {
	var quantity, kg [numCategories]float64
	var discarded []Coercion
	totalKg := 0.0
	for _, c := range Categories() {
		q := clampQuantity(inputs[c])
		e := q * factors[c]
		if math.IsNaN(e) || math.IsInf(e, 0) || e < 0 || e > MaxCategoryKg {
			discarded = append(discarded, Coercion{Category: c, Raw: strconv.FormatFloat(q, 'g', -1, 64)})
			q, e = 0, 0
		}
		quantity[c] = q
		kg[c] = e
		totalKg += e
	}

	categories := make([]CategoryEmission, 0, numCategories)
	for _, c := range Categories() {
		pct := 0.0
		if totalKg > 0 {
			pct = RoundTo(kg[c]/totalKg*percentScale, PercentageDecimals)
		}
		categories = append(categories, CategoryEmission{
			Category:       c,
			Label:          c.Label(),
			Quantity:       quantity[c],
			Unit:           c.Unit(),
			Factor:         factors[c],
			EmissionKg:     kg[c],
			EmissionTonnes: RoundTo(kg[c]/KgPerTonne, CategoryDecimals),
			Percentage:     pct,
		})
	}

	return AggregateResult{
		TotalKg:     totalKg,
		TotalTonnes: RoundTo(totalKg/KgPerTonne, TotalDecimals),
		Categories:  categories,
		Discarded:   discarded,
	}
}

// RoundTo rounds v to the given number of decimal places, halves away from zero.
func RoundTo(v float64, decimals int) float64 {
	const base = 10
	scale := math.Pow(base, float64(decimals))
	return math.Round(v*scale) / scale
}
