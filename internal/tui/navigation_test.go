package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition_ValidEdges(t *testing.T) {
	tests := []struct {
		from   ViewState
		action Action
		want   ViewState
	}{
		{ViewHome, ActionStart, ViewForm},
		{ViewHome, ActionQuit, ViewQuitting},
		{ViewForm, ActionCalculate, ViewResults},
		{ViewForm, ActionCancel, ViewHome},
		{ViewForm, ActionQuit, ViewQuitting},
		{ViewResults, ActionBackToForm, ViewForm},
		{ViewResults, ActionViewSuggestions, ViewSuggestions},
		{ViewResults, ActionQuit, ViewQuitting},
		{ViewSuggestions, ActionBackToResults, ViewResults},
		{ViewSuggestions, ActionNewCalculation, ViewHome},
		{ViewSuggestions, ActionQuit, ViewQuitting},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.action.String(), func(t *testing.T) {
			got, ok := Transition(tt.from, tt.action)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransition_InvalidEdgesRejected(t *testing.T) {
	states := []ViewState{ViewHome, ViewForm, ViewResults, ViewSuggestions, ViewQuitting}
	actions := []Action{
		ActionStart, ActionCancel, ActionCalculate, ActionBackToForm,
		ActionViewSuggestions, ActionBackToResults, ActionNewCalculation, ActionQuit,
	}

	valid := 0
	for _, s := range states {
		for _, a := range actions {
			got, ok := Transition(s, a)
			if ok {
				valid++
				continue
			}
			assert.Equal(t, s, got, "%s/%s must leave state unchanged", s, a)
		}
	}
	assert.Equal(t, 11, valid)

	got, ok := Transition(ViewHome, ActionCalculate)
	assert.False(t, ok)
	assert.Equal(t, ViewHome, got)

	_, ok = Transition(ViewQuitting, ActionQuit)
	assert.False(t, ok)
}

func TestViewStateAndActionStrings(t *testing.T) {
	assert.Equal(t, "suggestions", ViewSuggestions.String())
	assert.Equal(t, "ViewState(9)", ViewState(9).String())
	assert.Equal(t, "new_calculation", ActionNewCalculation.String())
	assert.Equal(t, "Action(-1)", Action(-1).String())
}
