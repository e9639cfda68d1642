package main

import (
	"github.com/spf13/cobra"

	"github.com/JoyOffere/linear-regression-model/internal/config"
	"github.com/JoyOffere/linear-regression-model/internal/predictor"
	"github.com/JoyOffere/linear-regression-model/internal/tui"
)

func formCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Open the interactive prediction form",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return tui.Run(cfg, predictor.NewClient(cfg))
		},
	}
}
