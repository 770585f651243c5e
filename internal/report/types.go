// Package report renders calculation results for the terminal, for other
// programs (JSON, NDJSON), and as a printable text report.
package report

import (
	"github.com/rshade/sitecarbon/internal/emissions"
	"github.com/rshade/sitecarbon/internal/greenops"
)

// Output formats.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
	FormatReport = "report"
	FormatPlain  = "plain"
)

type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownFormat is returned for an output format the renderer does not support.
const ErrUnknownFormat = constError("unknown output format")

// ProjectResult is one calculated project ready to render.
type ProjectResult struct {
	Name   string
	Source string
	Inputs emissions.Inputs
	Result emissions.AggregateResult

	// Equivalencies is empty when the total is under 1 kg.
	Equivalencies greenops.Output
}

// NewProjectResult aggregates inputs and attaches the everyday comparisons.
func NewProjectResult(name, source string, inputs emissions.Inputs) ProjectResult {
	result := emissions.Calculate(inputs)
	// Aggregate keeps TotalKg finite and non-negative; anything greenops still
	// rejects simply gets no comparisons.
	eq, err := greenops.Calculate(result.TotalKg)
	if err != nil {
		eq = greenops.Output{}
	}
	return ProjectResult{
		Name:          name,
		Source:        source,
		Inputs:        inputs,
		Result:        result,
		Equivalencies: eq,
	}
}

// projectJSON is the wire shape of a ProjectResult.
type projectJSON struct {
	Project        string                       `json:"project"`
	Source         string                       `json:"source,omitempty"`
	TotalKg        float64                      `json:"total_kg"`
	TotalTonnes    float64                      `json:"total_tonnes"`
	FormattedTotal string                       `json:"formatted_total"`
	Impact         emissions.ImpactLevel        `json:"impact"`
	Categories     []emissions.CategoryEmission `json:"categories"`
	Equivalencies  []greenops.Equivalency       `json:"equivalencies"`
	Discarded      []emissions.Coercion         `json:"discarded,omitempty"`
}

func toJSON(p ProjectResult) projectJSON {
	eq := p.Equivalencies.Equivalences
	if eq == nil {
		eq = []greenops.Equivalency{}
	}
	return projectJSON{
		Project:        p.Name,
		Source:         p.Source,
		TotalKg:        p.Result.TotalKg,
		TotalTonnes:    p.Result.TotalTonnes,
		FormattedTotal: p.Result.FormattedTotal(),
		Impact:         p.Result.Impact(),
		Categories:     p.Result.Categories,
		Equivalencies:  eq,
		Discarded:      p.Result.Discarded,
	}
}
