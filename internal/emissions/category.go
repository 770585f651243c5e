// Package emissions computes the carbon footprint of a construction project
// from six consumption quantities and a fixed table of emission factors.
//
// The aggregation is a pure function: Aggregate multiplies each quantity by its
// factor, sums the results, and normalizes every category to a share of the
// total. No state is kept between calls.
package emissions

import "fmt"

// Category identifies one source of construction emissions.
type Category int

// Categories in declaration order. Results are always reported in this order.
const (
	Diesel Category = iota
	Electricity
	Cement
	Steel
	Brick
	Concrete

	numCategories
)

// NumCategories is the number of declared categories.
const NumCategories = int(numCategories)

// categoryInfo holds the fixed display data for a category.
type categoryInfo struct {
	key       string
	label     string
	formLabel string
	unit      string
	unitShort string
}

//nolint:gochecknoglobals // Immutable lookup table indexed by Category.
var categoryTable = [numCategories]categoryInfo{
	Diesel:      {key: "diesel", label: "Diesel", formLabel: "Diesel Usage", unit: "litres", unitShort: "L"},
	Electricity: {key: "electricity", label: "Electricity", formLabel: "Electricity Consumption", unit: "kWh", unitShort: "kWh"},
	Cement:      {key: "cement", label: "Cement", formLabel: "Cement", unit: "kg", unitShort: "kg"},
	Steel:       {key: "steel", label: "Steel", formLabel: "Steel", unit: "kg", unitShort: "kg"},
	Brick:       {key: "brick", label: "Brick", formLabel: "Bricks", unit: "pieces", unitShort: "piece"},
	Concrete:    {key: "concrete", label: "Concrete", formLabel: "Concrete", unit: "m³", unitShort: "m³"},
}

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, 0, numCategories)
	for c := Diesel; c < numCategories; c++ {
		out = append(out, c)
	}
	return out
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c >= Diesel && c < numCategories
}

// Key returns the lowercase identifier used in files, flags and JSON ("diesel").
func (c Category) Key() string {
	if !c.Valid() {
		return ""
	}
	return categoryTable[c].key
}

// Label returns the capitalized display name ("Diesel").
func (c Category) Label() string {
	if !c.Valid() {
		return ""
	}
	return categoryTable[c].label
}

// FormLabel returns the longer label shown next to an input field ("Diesel Usage").
func (c Category) FormLabel() string {
	if !c.Valid() {
		return ""
	}
	return categoryTable[c].formLabel
}

// Unit returns the input unit ("litres", "kWh", "pieces").
func (c Category) Unit() string {
	if !c.Valid() {
		return ""
	}
	return categoryTable[c].unit
}

// ShortUnit returns the abbreviated input unit ("L", "piece", "m³").
func (c Category) ShortUnit() string {
	if !c.Valid() {
		return ""
	}
	return categoryTable[c].unitShort
}

// FactorUnit returns the unit of the category's emission factor ("kg CO2e/L").
func (c Category) FactorUnit() string {
	if !c.Valid() {
		return ""
	}
	return "kg CO2e/" + categoryTable[c].unitShort
}

// String returns the category key.
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryTable[c].key
}

// ParseCategory returns the category for a key. Matching ignores case and
// surrounding whitespace.
func ParseCategory(key string) (Category, bool) {
	k := normalizeKey(key)
	for c := Diesel; c < numCategories; c++ {
		if categoryTable[c].key == k {
			return c, true
		}
	}
	return 0, false
}

// MarshalText encodes the category as its key.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.Key()), nil
}

// UnmarshalText decodes a category key.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, ok := ParseCategory(string(text))
	if !ok {
		return fmt.Errorf("unknown category %q", string(text))
	}
	*c = parsed
	return nil
}
