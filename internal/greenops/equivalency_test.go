package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name       string
		kg         float64
		wantEmpty  bool
		wantErr    error
		wantMiles  float64
		wantPhones float64
		wantTrees  float64
	}{
		{
			name:       "150 kg reference",
			kg:         150,
			wantMiles:  781.25,
			wantPhones: 18248.18,
			wantTrees:  2.5,
		},
		{
			name:       "exactly at threshold",
			kg:         1,
			wantMiles:  5.208333,
			wantPhones: 121.65,
			wantTrees:  0.016667,
		},
		{name: "below threshold", kg: 0.5, wantEmpty: true},
		{name: "zero", kg: 0, wantEmpty: true},
		{name: "negative", kg: -10, wantErr: ErrNegativeValue},
		{name: "nan", kg: math.NaN(), wantErr: ErrNotFinite},
		{name: "infinite", kg: math.Inf(1), wantErr: ErrNotFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.kg)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, got.IsEmpty())
				return
			}
			require.NoError(t, err)

			if tt.wantEmpty {
				assert.True(t, got.IsEmpty())
				assert.Empty(t, got.DisplayText)
				return
			}

			require.Len(t, got.Equivalences, 4)
			miles, ok := got.Get(MilesDriven)
			require.True(t, ok)
			assert.InDelta(t, tt.wantMiles, miles.Value, 0.01)

			phones, _ := got.Get(SmartphonesCharged)
			assert.InDelta(t, tt.wantPhones, phones.Value, 0.01)

			trees, _ := got.Get(TreeSeedlings)
			assert.InDelta(t, tt.wantTrees, trees.Value, 0.001)

			assert.Contains(t, got.DisplayText, "driving")
			assert.Contains(t, got.DisplayText, "smartphones")
			assert.Contains(t, got.CompactText, "mi")
		})
	}
}

func TestCalculate_DisplayText(t *testing.T) {
	got, err := Calculate(150)
	require.NoError(t, err)

	assert.Equal(t, "Equivalent to driving ~781 miles or charging ~18,248 smartphones", got.DisplayText)
	assert.Equal(t, "(≈ 781 mi, 18,248 phones)", got.CompactText)
}

func TestCalculate_LargeValuesAbbreviated(t *testing.T) {
	got, err := Calculate(1_000_000)
	require.NoError(t, err)

	miles, _ := got.Get(MilesDriven)
	assert.Equal(t, "~5.2 million", miles.Formatted)

	phones, _ := got.Get(SmartphonesCharged)
	assert.Equal(t, "~121.7 million", phones.Formatted)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "MilesDriven", MilesDriven.String())
	assert.Equal(t, "HomeDays", HomeDays.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
