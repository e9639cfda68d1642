package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JoyOffere/linear-regression-model/internal/submission"
)

// waitForState blocks on the controller's notification channel and
// re-enters the update loop with the next snapshot. The update loop
// re-issues it after every submissionMsg.
func waitForState(states <-chan submission.State) tea.Cmd {
	return func() tea.Msg {
		return submissionMsg(<-states)
	}
}
