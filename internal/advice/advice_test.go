package advice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/sitecarbon/internal/emissions"
)

func TestSuggestions_Catalog(t *testing.T) {
	got := Suggestions()
	require.Len(t, got, 5)

	want := []struct {
		title  string
		impact string
	}{
		{"Optimize Equipment Usage", "10-15% reduction"},
		{"Renewable Energy Sources", "20-30% reduction"},
		{"Sustainable Materials", "15-25% reduction"},
		{"Waste Management", "5-10% reduction"},
		{"Green Building Practices", "25-40% reduction"},
	}
	for i, w := range want {
		assert.Equal(t, w.title, got[i].Title)
		assert.Equal(t, w.impact, got[i].Impact)
		assert.NotEmpty(t, got[i].Description)
		assert.NotEmpty(t, got[i].ID)
	}

	assert.Equal(t, []emissions.Category{emissions.Diesel}, got[0].Categories)
	assert.True(t, got[2].Targets(emissions.Steel))
	assert.False(t, got[2].Targets(emissions.Diesel))
	assert.Empty(t, got[4].Categories)
}

func TestSuggestions_ReturnsCopies(t *testing.T) {
	first := Suggestions()
	first[0].Title = "changed"
	first[2].Categories[0] = emissions.Brick

	second := Suggestions()
	assert.Equal(t, "Optimize Equipment Usage", second[0].Title)
	assert.Equal(t, emissions.Cement, second[2].Categories[0])

	res := Resources()
	res[0] = "changed"
	assert.NotEqual(t, "changed", Resources()[0])
}

func TestResourcesAndNote(t *testing.T) {
	assert.Equal(t, []string{
		"Bureau of Energy Efficiency (BEE) guidelines for construction",
		"Indian Green Building Council (IGBC) certification programs",
		"Ministry of Environment & Climate Change emission standards",
		"Carbon Trust footprint calculation methodologies",
	}, Resources())
	assert.Equal(t, "Recommended for Indian construction sites", Note())
}

func TestParseCatalog(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "empty document", data: "resources: [a]\n", wantErr: ErrNoSuggestions},
		{name: "unknown category", data: "suggestions:\n  - id: x\n    categories: [timber]\n"},
		{name: "malformed", data: "suggestions: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCatalog([]byte(tt.data))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
