package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JoyOffere/linear-regression-model/internal/cli"
	"github.com/JoyOffere/linear-regression-model/internal/common"
	"github.com/JoyOffere/linear-regression-model/internal/config"
	"github.com/JoyOffere/linear-regression-model/internal/predictor"
)

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check whether the prediction service is up",
		RunE:  runHealth,
	}
}

func runHealth(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client := predictor.NewClient(cfg)
	if !client.HealthCheck(cmd.Context()) {
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatError(fmt.Sprintf("Prediction service at %s is not healthy", cfg.BaseURL)))
		return common.NewUserError("service unhealthy", nil)
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Prediction service at %s is healthy", cfg.BaseURL)))
	return nil
}
