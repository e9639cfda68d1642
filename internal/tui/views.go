package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JoyOffere/linear-regression-model/internal/model"
	"github.com/JoyOffere/linear-regression-model/internal/submission"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	labelStyle = lipgloss.NewStyle().
			Width(22).
			Foreground(lipgloss.Color("#AAAAAA"))

	focusedLabelStyle = labelStyle.
				Foreground(lipgloss.Color("#7D56F4")).
				Bold(true)

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	resultStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

var rowLabels = [rowCount]string{
	"Year",
	"Female enrollment %",
	"Gender gap index",
	"Country",
	"STEM field",
}

// View renders the form.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var rows []string
	rows = append(rows, titleStyle.Render("STEM Graduation Rate Predictor"), "")

	for row := 0; row < rowCount; row++ {
		rows = append(rows, m.renderRow(row))
		if msg := m.fieldError(row); msg != "" {
			rows = append(rows, labelStyle.Render("")+errorStyle.Render(msg))
		}
	}

	rows = append(rows, "", m.renderStatus(), "", m.renderHelp())

	content := boxStyle.Render(strings.Join(rows, "\n"))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (m Model) renderRow(row int) string {
	label := labelStyle
	if row == m.focus {
		label = focusedLabelStyle
	}

	var value string
	if row < len(m.inputs) {
		value = m.inputs[row].View()
	} else {
		value = m.renderOption(row)
	}
	return label.Render(rowLabels[row]) + value
}

func (m Model) renderOption(row int) string {
	value := m.optionValue(row)
	if value == "" {
		value = placeholderStyle.Render("← select →")
	} else {
		value = optionStyle.Render(value)
	}
	if row == m.focus {
		return "‹ " + value + " ›"
	}
	return "  " + value
}

// renderStatus renders the lifecycle line beneath the form.
func (m Model) renderStatus() string {
	switch m.sub.Phase {
	case submission.PhaseSubmitting:
		return m.spin.View() + " Predicting..."

	case submission.PhaseSucceeded:
		return resultStyle.Render(fmt.Sprintf("Predicted graduation rate: %s", model.FormatRate(m.sub.RatePercent)))

	case submission.PhaseFailed:
		if m.sub.Outcome != nil {
			return errorStyle.Render(m.sub.Outcome.Message())
		}
		return errorStyle.Render("Prediction failed")

	case submission.PhaseInvalid:
		return errorStyle.Render("Fix the highlighted fields and try again")

	default:
		return helpStyle.Render("Fill in the form and press enter")
	}
}

func (m Model) renderHelp() string {
	bindings := []string{
		m.keymap.Next.Help().Key + " " + m.keymap.Next.Help().Desc,
		m.keymap.Left.Help().Key + m.keymap.Right.Help().Key + " options",
		m.keymap.Submit.Help().Key + " " + m.keymap.Submit.Help().Desc,
		m.keymap.Reset.Help().Key + " " + m.keymap.Reset.Help().Desc,
		m.keymap.Quit.Help().Key + " " + m.keymap.Quit.Help().Desc,
	}
	return helpStyle.Render(strings.Join(bindings, " • "))
}
