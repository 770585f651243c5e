package emissions

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// Inputs holds one consumption quantity per category, in that category's unit.
// The zero value is a valid, all-zero input.
type Inputs [numCategories]float64

// Get returns the quantity recorded for c.
func (in Inputs) Get(c Category) float64 {
	if !c.Valid() {
		return 0
	}
	return in[c]
}

// With returns a copy of in with the quantity for c replaced by the clamped value.
func (in Inputs) With(c Category, quantity float64) Inputs {
	if c.Valid() {
		in[c] = clampQuantity(quantity)
	}
	return in
}

// IsZero reports whether every quantity is zero.
func (in Inputs) IsZero() bool {
	for _, q := range in {
		if q != 0 {
			return false
		}
	}
	return true
}

// Map returns the quantities keyed by category key.
func (in Inputs) Map() map[string]float64 {
	out := make(map[string]float64, numCategories)
	for _, c := range Categories() {
		out[c.Key()] = in[c]
	}
	return out
}

// Coercion records a raw value that could not be used as a quantity and was
// replaced by zero.
type Coercion struct {
	Category Category `json:"category"`
	Raw      string   `json:"value"`
}

// String describes the coercion for log output.
func (c Coercion) String() string {
	return fmt.Sprintf("%s: %q treated as 0", c.Category.Key(), c.Raw)
}

// ParseQuantity converts raw user text to a quantity.
// Empty text, text that is not a number, negative numbers, NaN and infinities
// all yield 0. The boolean is false when a non-empty value was discarded.
func ParseQuantity(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	clamped := clampQuantity(v)
	return clamped, clamped == v
}

// InputsFromStrings builds Inputs from raw text keyed by category key.
// Unknown keys are ignored. When several keys name the same category the
// exact lowercase key wins, otherwise the last key in sorted order.
func InputsFromStrings(raw map[string]string) (Inputs, []Coercion) {
	var in Inputs
	var notes []Coercion
	for _, key := range orderedKeys(raw) {
		c, ok := ParseCategory(key)
		if !ok {
			continue
		}
		text := raw[key]
		q, clean := ParseQuantity(text)
		notes = dropCoercions(notes, c)
		if !clean {
			notes = append(notes, Coercion{Category: c, Raw: text})
		}
		in[c] = q
	}
	sortCoercions(notes)
	return in, notes
}

// InputsFromMap builds Inputs from decoded YAML or JSON values. Numbers and
// numeric strings are accepted; anything else becomes 0. Duplicate spellings
// of a key resolve as in InputsFromStrings.
func InputsFromMap(raw map[string]any) (Inputs, []Coercion) {
	var in Inputs
	var notes []Coercion
	for _, key := range orderedKeys(raw) {
		c, ok := ParseCategory(key)
		if !ok {
			continue
		}
		value := raw[key]
		q, clean := quantityFromValue(value)
		notes = dropCoercions(notes, c)
		if !clean {
			notes = append(notes, Coercion{Category: c, Raw: fmt.Sprint(value)})
		}
		in[c] = q
	}
	sortCoercions(notes)
	return in, notes
}

// quantityFromValue handles the scalar types produced by yaml.v3 and go-json.
func quantityFromValue(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, true
	case float64:
		q := clampQuantity(v)
		return q, q == v
	case float32:
		return quantityFromValue(float64(v))
	case int:
		return quantityFromValue(float64(v))
	case int64:
		return quantityFromValue(float64(v))
	case uint64:
		return quantityFromValue(float64(v))
	case string:
		return ParseQuantity(v)
	default:
		return 0, false
	}
}

// orderedKeys returns the keys of m sorted so that later entries override
// earlier ones predictably: exact category keys come last, the rest in
// byte order.
func orderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ci, cj := isExactKey(keys[i]), isExactKey(keys[j])
		if ci != cj {
			return cj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// dropCoercions removes notes about c left by a key that has been overridden.
func dropCoercions(notes []Coercion, c Category) []Coercion {
	return slices.DeleteFunc(notes, func(n Coercion) bool { return n.Category == c })
}

func isExactKey(key string) bool {
	c, ok := ParseCategory(key)
	return ok && c.Key() == key
}

// clampQuantity maps anything that is not a finite non-negative number to 0.
func clampQuantity(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// sortCoercions orders notes by category so log output is deterministic.
func sortCoercions(notes []Coercion) {
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].Category < notes[j].Category
	})
}
