package emissions

// Emission factors in kg CO2e per input unit (India-specific values).
const (
	// DieselFactor is kg CO2e per litre of diesel burned.
	DieselFactor = 2.68

	// ElectricityFactor is kg CO2e per kWh drawn from the grid.
	ElectricityFactor = 0.82

	// CementFactor is kg CO2e per kg of cement.
	CementFactor = 0.93

	// SteelFactor is kg CO2e per kg of steel.
	SteelFactor = 2.0

	// BrickFactor is kg CO2e per fired clay brick.
	BrickFactor = 0.25

	// ConcreteFactor is kg CO2e per cubic metre of concrete.
	ConcreteFactor = 350.0
)

// KgPerTonne converts kilograms to metric tonnes.
const KgPerTonne = 1000.0

// EmissionFactors maps every category to its kg CO2e per unit factor.
// It is a value type; copies cannot affect the default table.
type EmissionFactors [numCategories]float64

// DefaultFactors returns the fixed factor table.
func DefaultFactors() EmissionFactors {
	return EmissionFactors{
		Diesel:      DieselFactor,
		Electricity: ElectricityFactor,
		Cement:      CementFactor,
		Steel:       SteelFactor,
		Brick:       BrickFactor,
		Concrete:    ConcreteFactor,
	}
}

// Factor returns the factor for c, or 0 for an invalid category.
func (f EmissionFactors) Factor(c Category) float64 {
	if !c.Valid() {
		return 0
	}
	return f[c]
}

// FactorRow is one line of the reference table shown to users.
type FactorRow struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Factor   float64  `json:"factor"`
	Unit     string   `json:"unit"`
}

// Rows returns the table in declaration order.
func (f EmissionFactors) Rows() []FactorRow {
	rows := make([]FactorRow, 0, numCategories)
	for _, c := range Categories() {
		rows = append(rows, FactorRow{
			Category: c,
			Label:    c.Label(),
			Factor:   f[c],
			Unit:     c.FactorUnit(),
		})
	}
	return rows
}
