package tui

import "fmt"

// ViewState is the screen the application is showing.
type ViewState int

const (
	// ViewHome is the landing screen.
	ViewHome ViewState = iota
	// ViewForm collects the six quantities.
	ViewForm
	// ViewResults shows the calculated breakdown.
	ViewResults
	// ViewSuggestions shows reduction advice for the current result.
	ViewSuggestions
	// ViewQuitting is terminal.
	ViewQuitting
)

// String returns the view name.
func (v ViewState) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewForm:
		return "form"
	case ViewResults:
		return "results"
	case ViewSuggestions:
		return "suggestions"
	case ViewQuitting:
		return "quitting"
	default:
		return fmt.Sprintf("ViewState(%d)", int(v))
	}
}

// Action is a user intent that may move between views.
type Action int

const (
	// ActionStart opens the form from the home screen.
	ActionStart Action = iota
	// ActionCancel leaves the form without calculating.
	ActionCancel
	// ActionCalculate aggregates the form values and shows results.
	ActionCalculate
	// ActionBackToForm returns from results to edit the quantities.
	ActionBackToForm
	// ActionViewSuggestions opens the advice for the current result.
	ActionViewSuggestions
	// ActionBackToResults returns from advice to the results.
	ActionBackToResults
	// ActionNewCalculation discards the result and returns home.
	ActionNewCalculation
	// ActionQuit exits from any non-terminal view.
	ActionQuit
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionCancel:
		return "cancel"
	case ActionCalculate:
		return "calculate"
	case ActionBackToForm:
		return "back_to_form"
	case ActionViewSuggestions:
		return "view_suggestions"
	case ActionBackToResults:
		return "back_to_results"
	case ActionNewCalculation:
		return "new_calculation"
	case ActionQuit:
		return "quit"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

type edge struct {
	from   ViewState
	action Action
}

//nolint:gochecknoglobals // Immutable transition table.
var transitions = map[edge]ViewState{
	{ViewHome, ActionStart}: ViewForm,
	{ViewHome, ActionQuit}:  ViewQuitting,

	{ViewForm, ActionCalculate}: ViewResults,
	{ViewForm, ActionCancel}:    ViewHome,
	{ViewForm, ActionQuit}:      ViewQuitting,

	{ViewResults, ActionBackToForm}:      ViewForm,
	{ViewResults, ActionViewSuggestions}: ViewSuggestions,
	{ViewResults, ActionQuit}:            ViewQuitting,

	{ViewSuggestions, ActionBackToResults}:  ViewResults,
	{ViewSuggestions, ActionNewCalculation}: ViewHome,
	{ViewSuggestions, ActionQuit}:           ViewQuitting,
}

// Transition returns the view reached by applying action in state. When the
// pair is not in the table it returns state unchanged and false.
func Transition(state ViewState, action Action) (ViewState, bool) {
	next, ok := transitions[edge{state, action}]
	if !ok {
		return state, false
	}
	return next, true
}
