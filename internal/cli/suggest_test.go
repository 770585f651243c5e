package cli_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/sitecarbon/internal/report"
)

func TestSuggest_Text(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		priority  string
		reduction string
	}{
		{"maintain", []string{"--diesel", "100"}, "Maintain Current Practices", "20-30%"},
		{"medium", []string{"--steel", "2000"}, "Medium Priority", "30-50%"},
		{"high", mixedSiteArgs, "High Priority", "50-70%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)

			out, err := runCLI(t, append([]string{"suggest"}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, "Reduction Priority: "+tt.priority)
			assert.Contains(t, out, "Potential Reduction: "+tt.reduction)
			assert.Contains(t, out, "Carbon Reduction Strategies")
			assert.Contains(t, out, "Additional Resources")
		})
	}
}

func TestSuggest_JSON(t *testing.T) {
	setupCLITest(t)

	out, err := runCLI(t, "suggest", "--output", "json", "--steel", "2000", "--name", "Frame")
	require.NoError(t, err)

	var plans []struct {
		Project            string   `json:"project"`
		FormattedTotal     string   `json:"formatted_total"`
		Priority           string   `json:"priority"`
		PotentialReduction string   `json:"potential_reduction"`
		Focus              []string `json:"focus"`
		Suggestions        []struct {
			ID string `json:"id"`
		} `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &plans))
	require.Len(t, plans, 1)

	p := plans[0]
	assert.Equal(t, "Frame", p.Project)
	assert.Equal(t, "4.00", p.FormattedTotal)
	assert.Equal(t, "Medium Priority", p.Priority)
	assert.Equal(t, "30-50%", p.PotentialReduction)
	assert.Equal(t, []string{"steel"}, p.Focus)
	assert.Len(t, p.Suggestions, 5)
}

func TestSuggest_UnknownFormat(t *testing.T) {
	setupCLITest(t)

	_, err := runCLI(t, "suggest", "--output", "xml")
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}
