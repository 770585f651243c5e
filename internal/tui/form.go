package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/rshade/sitecarbon/internal/emissions"
)

// fieldCharLimit fits any non-negative float64 in exponent notation.
const fieldCharLimit = 24

// fieldWidth is the visible width of each quantity field.
const fieldWidth = 16

// quantityFields holds one text input per category, in declaration order.
// It is an array so copies of the model never share input state.
type quantityFields [emissions.NumCategories]textinput.Model

func newQuantityFields() quantityFields {
	var f quantityFields
	for i := range f {
		ti := textinput.New()
		ti.Placeholder = "0"
		ti.Prompt = ""
		ti.CharLimit = fieldCharLimit
		ti.Width = fieldWidth
		f[i] = ti
	}
	f[0].Focus()
	return f
}

// raw returns the current text keyed by category key.
func (f *quantityFields) raw() map[string]string {
	out := make(map[string]string, len(f))
	for _, c := range emissions.Categories() {
		out[c.Key()] = f[c].Value()
	}
	return out
}

// fill sets each field from inputs; zero quantities leave the field empty.
func (f *quantityFields) fill(inputs emissions.Inputs) {
	for _, c := range emissions.Categories() {
		q := inputs.Get(c)
		if q == 0 {
			f[c].SetValue("")
			continue
		}
		f[c].SetValue(formatFieldValue(q))
	}
}

// formatFieldValue writes q in plain notation, or in exponent notation when
// the plain digits are longer than the visible field.
func formatFieldValue(q float64) string {
	s := strconv.FormatFloat(q, 'f', -1, 64)
	if len(s) > fieldWidth {
		s = strconv.FormatFloat(q, 'g', -1, 64)
	}
	return s
}

func (f *quantityFields) reset() {
	for i := range f {
		f[i].SetValue("")
	}
}

// focus moves focus to index i, blurring every other field.
func (f *quantityFields) focus(i int) {
	for j := range f {
		if j == i {
			f[j].Focus()
		} else {
			f[j].Blur()
		}
	}
}
