package report

import (
	"bytes"
	"math"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	r := NewReport([]ProjectResult{dieselProject()}, now)

	id, err := ulid.Parse(r.ID)
	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli(), ulid.Time(id.Time()).UnixMilli())
	assert.Equal(t, now, r.GeneratedAt)
	assert.Equal(t, "sitecarbon-report-"+r.ID+".txt", r.FileName())

	other := NewReport(nil, now)
	assert.NotEqual(t, r.ID, other.ID)
}

func TestRenderReport(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	r := NewReport([]ProjectResult{mixedProject()}, now)

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, r))
	out := buf.String()

	assert.Contains(t, out, "Carbon Emission Results")
	assert.Contains(t, out, "Report ID:  "+r.ID)
	assert.Contains(t, out, "Generated:  2026-03-14T09:30:00Z")
	assert.Contains(t, out, "Project: Tower A")
	assert.Contains(t, out, "Source:  tower.yaml")
	assert.Contains(t, out, "Total Emissions: 15.74 tonnes CO2e")
	assert.Contains(t, out, "Impact: High Impact Level")
	assert.Contains(t, out, "25.4%  "+strings.Repeat("#", 8)+"\n")
	assert.Contains(t, out, "Reduction Priority: High Priority (potential reduction 50-70%)")
	assert.Contains(t, out, "Sustainable Materials (15-25% reduction)")
	assert.True(t, strings.HasSuffix(out, Footnote+"\n"))
}

func TestBar(t *testing.T) {
	tests := []struct {
		name  string
		pct   float64
		width int
		want  int
	}{
		{"full", 100, 30, 30},
		{"empty", 0, 30, 0},
		{"quarter", 25.4, 30, 8},
		{"over", 150, 10, 10},
		{"negative", -5, 10, 0},
		{"zero width", 50, 0, 0},
		{"nan", math.NaN(), 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Bar(tt.pct, tt.width), tt.want)
		})
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir() + "/reports"
	r := NewReport([]ProjectResult{dieselProject()}, time.Now())

	path, err := WriteFile(dir, r)
	require.NoError(t, err)
	assert.Equal(t, dir+"/"+r.FileName(), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), r.ID)
	assert.Contains(t, string(data), "Project: Site Office")
}
