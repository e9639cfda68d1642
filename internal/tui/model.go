// Package tui implements the interactive prediction form. It is pure
// presentation: every mutation and transition goes through the
// submission controller, and the form only renders the states it is
// handed back.
package tui

import (
	"context"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JoyOffere/linear-regression-model/internal/model"
	"github.com/JoyOffere/linear-regression-model/internal/submission"
)

// Form rows, in focus order.
const (
	rowYear = iota
	rowEnrollment
	rowGapIndex
	rowCountry
	rowSTEMField
	rowCount
)

// Model holds the form state.
type Model struct {
	controller *submission.Controller
	states     chan submission.State
	sub        submission.State
	keymap     KeyMap
	countries  []string
	stemFields []string
	inputs     []textinput.Model
	spin       spinner.Model
	focus      int
	countryIdx int
	fieldIdx   int
	width      int
	height     int
	quitting   bool
}

// newModel creates the form bound to a controller.
func newModel(controller *submission.Controller, states chan submission.State, countries, stemFields []string) Model {
	year := textinput.New()
	year.Placeholder = "2024"
	year.CharLimit = 4
	year.Width = 12
	year.Focus()

	enrollment := textinput.New()
	enrollment.Placeholder = "45.5"
	enrollment.CharLimit = 6
	enrollment.Width = 12

	gapIndex := textinput.New()
	gapIndex.Placeholder = "0.75"
	gapIndex.CharLimit = 6
	gapIndex.Width = 12

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := Model{
		controller: controller,
		states:     states,
		sub:        controller.State(),
		keymap:     DefaultKeyMap(),
		countries:  countries,
		stemFields: stemFields,
		inputs:     []textinput.Model{year, enrollment, gapIndex},
		spin:       spin,
		countryIdx: -1,
		fieldIdx:   -1,
	}
	m.syncFromController()
	return m
}

// syncFromController reloads the widgets from the controller's input,
// used at startup and after a reset.
func (m *Model) syncFromController() {
	in := m.controller.Input()
	m.inputs[rowYear].SetValue(in.Year)
	m.inputs[rowEnrollment].SetValue(in.FemaleEnrollmentPercent)
	m.inputs[rowGapIndex].SetValue(in.GenderGapIndex)
	m.countryIdx = slices.Index(m.countries, in.Country)
	m.fieldIdx = slices.Index(m.stemFields, in.STEMField)
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		waitForState(m.states),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case submissionMsg:
		m.sub = submission.State(msg)
		cmds := []tea.Cmd{waitForState(m.states)}
		if m.sub.Phase == submission.PhaseSubmitting {
			cmds = append(cmds, m.spin.Tick)
		}
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		if m.sub.Phase != submission.PhaseSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit), key.Matches(msg, m.keymap.ForceQuit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Reset):
		m.controller.Reset()
		m.syncFromController()
		return m, nil

	case key.Matches(msg, m.keymap.Submit):
		m.controller.Submit(context.Background())
		return m, nil
	}

	// Everything below edits the form; the controller ignores edits
	// while a request is in flight, so the widgets must too.
	if m.sub.Phase == submission.PhaseSubmitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Next):
		m.setFocus((m.focus + 1) % rowCount)
		return m, nil

	case key.Matches(msg, m.keymap.Prev):
		m.setFocus((m.focus + rowCount - 1) % rowCount)
		return m, nil

	// Arrow keys cycle options on the enumeration rows; on text rows
	// they belong to the input's cursor.
	case key.Matches(msg, m.keymap.Left) && m.focus >= len(m.inputs):
		m.cycleOption(-1)
		return m, nil

	case key.Matches(msg, m.keymap.Right) && m.focus >= len(m.inputs):
		m.cycleOption(1)
		return m, nil
	}

	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		m.pushField(m.focus)
		return m, cmd
	}
	return m, nil
}

func (m *Model) setFocus(row int) {
	m.focus = row
	for i := range m.inputs {
		if i == row {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// cycleOption steps the focused enumeration row by delta.
func (m *Model) cycleOption(delta int) {
	switch m.focus {
	case rowCountry:
		if len(m.countries) == 0 {
			return
		}
		m.countryIdx = wrapIndex(m.countryIdx, delta, len(m.countries))
		m.controller.SetCountry(m.countries[m.countryIdx])
	case rowSTEMField:
		if len(m.stemFields) == 0 {
			return
		}
		m.fieldIdx = wrapIndex(m.fieldIdx, delta, len(m.stemFields))
		m.controller.SetSTEMField(m.stemFields[m.fieldIdx])
	}
}

func wrapIndex(current, delta, length int) int {
	if current < 0 {
		if delta < 0 {
			return length - 1
		}
		return 0
	}
	return ((current+delta)%length + length) % length
}

// pushField forwards the edited widget value to the controller.
func (m *Model) pushField(row int) {
	value := m.inputs[row].Value()
	switch row {
	case rowYear:
		m.controller.SetYear(value)
	case rowEnrollment:
		m.controller.SetFemaleEnrollmentPercent(value)
	case rowGapIndex:
		m.controller.SetGenderGapIndex(value)
	}
}

// optionValue returns the displayed value of an enumeration row.
func (m Model) optionValue(row int) string {
	switch row {
	case rowCountry:
		if m.countryIdx >= 0 && m.countryIdx < len(m.countries) {
			return m.countries[m.countryIdx]
		}
	case rowSTEMField:
		if m.fieldIdx >= 0 && m.fieldIdx < len(m.stemFields) {
			return m.stemFields[m.fieldIdx]
		}
	}
	return ""
}

// fieldError returns the validation message for a row, if any.
func (m Model) fieldError(row int) string {
	if m.sub.Phase != submission.PhaseInvalid {
		return ""
	}
	fields := [rowCount]model.Field{
		model.FieldYear,
		model.FieldEnrollment,
		model.FieldGapIndex,
		model.FieldCountry,
		model.FieldSTEMField,
	}
	return m.sub.FieldErrors[fields[row]]
}
