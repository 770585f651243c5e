package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/sitecarbon/internal/emissions"
	"github.com/rshade/sitecarbon/internal/logging"
	"github.com/rshade/sitecarbon/internal/report"
)

// ReportWriter persists a printable report and returns where it went.
type ReportWriter func(report.Report) (string, error)

// reportWrittenMsg carries the outcome of a ReportWriter call.
type reportWrittenMsg struct {
	path string
	err  error
}

// defaultProjectName labels results entered through the form.
const defaultProjectName = "Construction Site"

// AppModel is the Bubble Tea model for the calculator. It moves between the
// home, form, results and suggestions views through Transition.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type AppModel struct {
	ctx   context.Context
	state ViewState

	// Form
	fields  quantityFields
	focused int

	// Results; nil outside the results and suggestions views.
	project   *report.ProjectResult
	name      string
	breakdown table.Model

	writeReport ReportWriter
	now         func() time.Time
	status      string
	statusErr   bool

	width  int
	height int
}

// Option configures an AppModel.
type Option func(*AppModel)

// WithReportWriter sets where the results view's print action writes.
func WithReportWriter(w ReportWriter) Option {
	return func(m *AppModel) { m.writeReport = w }
}

// WithProjectName labels the results.
func WithProjectName(name string) Option {
	return func(m *AppModel) {
		if name != "" {
			m.name = name
		}
	}
}

// WithInputs prefills the form and opens directly on the results view.
func WithInputs(inputs emissions.Inputs) Option {
	return func(m *AppModel) {
		m.fields.fill(inputs)
		m.calculateFrom(inputs)
		m.state = ViewResults
	}
}

// WithClock replaces time.Now for report timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *AppModel) { m.now = now }
}

// NewAppModel returns a model on the home view unless WithInputs is given.
// Options are applied in order; put WithProjectName before WithInputs.
func NewAppModel(ctx context.Context, opts ...Option) AppModel {
	m := AppModel{
		ctx:    ctx,
		state:  ViewHome,
		fields: newQuantityFields(),
		name:   defaultProjectName,
		writeReport: func(r report.Report) (string, error) {
			return report.WriteFile(".", r)
		},
		now:    time.Now,
		width:  defaultWidth,
		height: defaultHeight,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// State returns the current view.
func (m AppModel) State() ViewState {
	return m.state
}

// Result returns the current calculation, if any.
func (m AppModel) Result() (emissions.AggregateResult, bool) {
	if m.project == nil {
		return emissions.AggregateResult{}, false
	}
	return m.project.Result, true
}

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case reportWrittenMsg:
		return m.handleReportWritten(msg), nil
	case tea.KeyMsg:
		if msg.String() == keyCtrlC {
			return m.apply(ActionQuit)
		}
	}

	switch m.state {
	case ViewHome:
		return m.handleHomeUpdate(msg)
	case ViewForm:
		return m.handleFormUpdate(msg)
	case ViewResults:
		return m.handleResultsUpdate(msg)
	case ViewSuggestions:
		return m.handleSuggestionsUpdate(msg)
	default:
		return m, nil
	}
}

// apply runs action through the transition table and performs its side
// effects. Rejected actions leave the model untouched.
func (m AppModel) apply(action Action) (tea.Model, tea.Cmd) {
	next, ok := Transition(m.state, action)
	if !ok {
		return m, nil
	}

	log := logging.FromContext(m.ctx)
	log.Debug().
		Ctx(m.ctx).
		Str("component", "tui").
		Stringer("from", m.state).
		Stringer("action", action).
		Stringer("to", next).
		Msg("view transition")

	m.status = ""
	m.statusErr = false

	var cmd tea.Cmd
	switch action {
	case ActionStart, ActionBackToForm:
		m.fields.focus(m.focused)
		cmd = textinput.Blink
	case ActionCalculate:
		m.calculate()
	case ActionNewCalculation:
		m.project = nil
		m.fields.reset()
		m.focused = 0
	case ActionQuit:
		cmd = tea.Quit
	}

	m.state = next
	return m, cmd
}

// calculate aggregates the form values into a new result.
func (m *AppModel) calculate() {
	inputs, notes := emissions.InputsFromStrings(m.fields.raw())

	log := logging.FromContext(m.ctx)
	for _, n := range notes {
		log.Debug().
			Ctx(m.ctx).
			Str("component", "tui").
			Str("category", n.Category.Key()).
			Str("raw", n.Raw).
			Msg("quantity treated as 0")
	}
	m.calculateFrom(inputs)
}

func (m *AppModel) calculateFrom(inputs emissions.Inputs) {
	log := logging.FromContext(m.ctx)
	p := report.NewProjectResult(m.name, "", inputs)
	m.project = &p
	for _, d := range p.Result.Discarded {
		log.Debug().
			Ctx(m.ctx).
			Str("component", "tui").
			Str("category", d.Category.Key()).
			Str("quantity", d.Raw).
			Msg("emission out of range, counted as 0")
	}
	m.breakdown = NewBreakdownTable(p.Result, len(p.Result.Categories)+1)

	log.Debug().
		Ctx(m.ctx).
		Str("component", "tui").
		Float64("total_tonnes", p.Result.TotalTonnes).
		Stringer("impact", p.Result.Impact()).
		Msg("calculation complete")
}

func (m AppModel) handleHomeUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case keyEnter, keyS:
		return m.apply(ActionStart)
	case keyQuit:
		return m.apply(ActionQuit)
	}
	return m, nil
}

func (m AppModel) handleFormUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.fields[m.focused], cmd = m.fields[m.focused].Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case keyEsc:
		return m.apply(ActionCancel)
	case keyCtrlS:
		return m.apply(ActionCalculate)
	case keyEnter:
		if m.focused == len(m.fields)-1 {
			return m.apply(ActionCalculate)
		}
		return m.moveFocus(1), nil
	case keyTab, keyDown:
		return m.moveFocus(1), nil
	case keyShiftTab, keyUp:
		return m.moveFocus(-1), nil
	}

	var cmd tea.Cmd
	m.fields[m.focused], cmd = m.fields[m.focused].Update(keyMsg)
	return m, cmd
}

// moveFocus cycles focus by delta, wrapping at both ends.
func (m AppModel) moveFocus(delta int) AppModel {
	n := len(m.fields)
	m.focused = ((m.focused+delta)%n + n) % n
	m.fields.focus(m.focused)
	return m
}

func (m AppModel) handleResultsUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case keyS:
		return m.apply(ActionViewSuggestions)
	case keyB:
		return m.apply(ActionBackToForm)
	case keyP:
		return m, m.printReport()
	case keyQuit:
		return m.apply(ActionQuit)
	}

	var cmd tea.Cmd
	m.breakdown, cmd = m.breakdown.Update(keyMsg)
	return m, cmd
}

// printReport returns a command that writes the current result through the
// configured ReportWriter.
func (m AppModel) printReport() tea.Cmd {
	if m.project == nil || m.writeReport == nil {
		return nil
	}
	r := report.NewReport([]report.ProjectResult{*m.project}, m.now())
	write := m.writeReport
	return func() tea.Msg {
		path, err := write(r)
		return reportWrittenMsg{path: path, err: err}
	}
}

func (m AppModel) handleReportWritten(msg reportWrittenMsg) AppModel {
	log := logging.FromContext(m.ctx)
	if msg.err != nil {
		log.Error().Ctx(m.ctx).Str("component", "tui").Err(msg.err).Msg("writing report failed")
		m.status = "Could not write report: " + msg.err.Error()
		m.statusErr = true
		return m
	}
	log.Debug().Ctx(m.ctx).Str("component", "tui").Str("path", msg.path).Msg("report written")
	m.status = "Report saved to " + msg.path
	m.statusErr = false
	return m
}

func (m AppModel) handleSuggestionsUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case keyB, keyEsc:
		return m.apply(ActionBackToResults)
	case keyN:
		return m.apply(ActionNewCalculation)
	case keyQuit:
		return m.apply(ActionQuit)
	}
	return m, nil
}
