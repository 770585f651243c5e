package emissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		want      float64
		wantClean bool
	}{
		{name: "empty", raw: "", want: 0, wantClean: true},
		{name: "whitespace", raw: "   ", want: 0, wantClean: true},
		{name: "integer", raw: "100", want: 100, wantClean: true},
		{name: "decimal with spaces", raw: " 12.5 ", want: 12.5, wantClean: true},
		{name: "exponent", raw: "1e3", want: 1000, wantClean: true},
		{name: "text", raw: "abc", want: 0, wantClean: false},
		{name: "trailing garbage", raw: "12abc", want: 0, wantClean: false},
		{name: "negative", raw: "-5", want: 0, wantClean: false},
		{name: "nan", raw: "NaN", want: 0, wantClean: false},
		{name: "infinity", raw: "Inf", want: 0, wantClean: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clean := ParseQuantity(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantClean, clean)
		})
	}
}

func TestInputsFromStrings(t *testing.T) {
	in, notes := InputsFromStrings(map[string]string{
		"Diesel":   "100",
		"steel":    "lots",
		"concrete": "-1",
		"timber":   "50",
	})

	assert.Equal(t, 100.0, in.Get(Diesel))
	assert.Zero(t, in.Get(Steel))
	assert.Zero(t, in.Get(Concrete))
	assert.Zero(t, in.Get(Electricity))

	require.Len(t, notes, 2)
	assert.Equal(t, Steel, notes[0].Category)
	assert.Equal(t, "lots", notes[0].Raw)
	assert.Equal(t, Concrete, notes[1].Category)
	assert.Contains(t, notes[0].String(), "treated as 0")
}

func TestInputsFromMap(t *testing.T) {
	in, notes := InputsFromMap(map[string]any{
		"diesel":      100,
		"electricity": "1000",
		"cement":      5000.0,
		"steel":       int64(2000),
		"brick":       []any{1, 2},
		"concrete":    nil,
	})

	assert.Equal(t, 100.0, in.Get(Diesel))
	assert.Equal(t, 1000.0, in.Get(Electricity))
	assert.Equal(t, 5000.0, in.Get(Cement))
	assert.Equal(t, 2000.0, in.Get(Steel))
	assert.Zero(t, in.Get(Brick))
	assert.Zero(t, in.Get(Concrete))

	require.Len(t, notes, 1)
	assert.Equal(t, Brick, notes[0].Category)
}

func TestInputs_DuplicateKeysResolveDeterministically(t *testing.T) {
	tests := []struct {
		name      string
		raw       map[string]string
		want      float64
		wantNotes int
	}{
		{
			name: "exact key wins",
			raw:  map[string]string{"Diesel": "5", "DIESEL": "7", "diesel": "100"},
			want: 100,
		},
		{
			name: "last in byte order without exact key",
			raw:  map[string]string{"Diesel": "5", " DIESEL ": "7"},
			want: 5,
		},
		{
			name: "overridden bad value leaves no note",
			raw:  map[string]string{"Diesel": "abc", "diesel": "100"},
			want: 100,
		},
		{
			name:      "winning bad value keeps its note",
			raw:       map[string]string{"Diesel": "100", "diesel": "abc"},
			want:      0,
			wantNotes: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := make(map[string]any, len(tt.raw))
			for k, v := range tt.raw {
				values[k] = v
			}
			// Map iteration order varies between runs; the result must not.
			for range 50 {
				in, notes := InputsFromStrings(tt.raw)
				assert.Equal(t, tt.want, in.Get(Diesel))
				assert.Len(t, notes, tt.wantNotes)

				in, notes = InputsFromMap(values)
				assert.Equal(t, tt.want, in.Get(Diesel))
				assert.Len(t, notes, tt.wantNotes)
			}
		})
	}
}

func TestInputs_With(t *testing.T) {
	var in Inputs
	assert.True(t, in.IsZero())

	updated := in.With(Cement, 12).With(Steel, -3)

	assert.True(t, in.IsZero(), "With must not mutate the receiver")
	assert.Equal(t, 12.0, updated.Get(Cement))
	assert.Zero(t, updated.Get(Steel))
	assert.Equal(t, map[string]float64{
		"diesel": 0, "electricity": 0, "cement": 12, "steel": 0, "brick": 0, "concrete": 0,
	}, updated.Map())
}
