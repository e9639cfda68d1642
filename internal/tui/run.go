package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JoyOffere/linear-regression-model/internal/config"
	"github.com/JoyOffere/linear-regression-model/internal/submission"
)

// Run starts the interactive prediction form. It owns exactly one
// controller for the lifetime of the program; closing the controller
// on exit guarantees a resolution arriving after quit is discarded.
func Run(cfg *config.Config, predictor submission.Predictor) error {
	states := make(chan submission.State, 16)
	controller := submission.NewController(submission.Config{
		Predictor:  predictor,
		Countries:  cfg.Countries,
		STEMFields: cfg.STEMFields,
		Defaults:   cfg.SeedInput(),
		OnChange: func(s submission.State) {
			// Drop rather than block if the UI stopped draining.
			select {
			case states <- s:
			default:
			}
		},
	})
	defer controller.Close()

	m := newModel(controller, states, cfg.Countries, cfg.STEMFields)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run prediction form: %w", err)
	}
	return nil
}
