package greenops

import "fmt"

// Kind is a category of comparison.
type Kind int

const (
	// MilesDriven compares against miles driven in a passenger car.
	MilesDriven Kind = iota
	// SmartphonesCharged compares against full smartphone charges.
	SmartphonesCharged
	// TreeSeedlings compares against tree seedlings grown for 10 years.
	TreeSeedlings
	// HomeDays compares against days of home electricity use.
	HomeDays
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case MilesDriven:
		return "MilesDriven"
	case SmartphonesCharged:
		return "SmartphonesCharged"
	case TreeSeedlings:
		return "TreeSeedlings"
	case HomeDays:
		return "HomeDays"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText encodes the kind name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Equivalency is one computed comparison.
type Equivalency struct {
	Kind      Kind    `json:"kind"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
	Label     string  `json:"label"`
}

// Output holds all comparisons for a carbon total.
type Output struct {
	InputKg      float64       `json:"input_kg"`
	Equivalences []Equivalency `json:"equivalences,omitempty"`

	// DisplayText is the prose line shown under a total.
	DisplayText string `json:"display_text,omitempty"`

	// CompactText is the short form used in tables: "(≈ 781 mi, 18,248 phones)".
	CompactText string `json:"compact_text,omitempty"`
}

// IsEmpty reports whether no comparisons were produced.
func (o Output) IsEmpty() bool {
	return len(o.Equivalences) == 0
}
