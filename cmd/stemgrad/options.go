package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/JoyOffere/linear-regression-model/internal/cli"
	"github.com/JoyOffere/linear-regression-model/internal/config"
	"github.com/JoyOffere/linear-regression-model/internal/predictor"
)

func optionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Show the countries and STEM fields accepted by the predictor",
		Long: `List the enumerations the validator accepts.

By default the configured sets are shown. With --remote the service's
own /countries and /stem-fields endpoints are queried instead, which is
the quickest way to spot a drifted configuration.`,
		RunE: runOptions,
	}

	cmd.Flags().Bool("remote", false, "Fetch the enumerations from the service instead of configuration")
	_ = viper.BindPFlag("options.remote", cmd.Flags().Lookup("remote"))

	return cmd
}

func runOptions(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	countries := cfg.Countries
	stemFields := cfg.STEMFields
	source := "configured"

	if viper.GetBool("options.remote") {
		client := predictor.NewClient(cfg)
		countries, err = client.Countries(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch countries: %w", err)
		}
		stemFields, err = client.STEMFields(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch STEM fields: %w", err)
		}
		source = "reported by " + cfg.BaseURL
		slog.Debug("Fetched enumerations from service",
			"countries", len(countries),
			"stem_fields", len(stemFields))
	}

	content := fmt.Sprintf(`Countries (%d):
  %s

STEM fields (%d):
  %s`,
		len(countries), strings.Join(countries, "\n  "),
		len(stemFields), strings.Join(stemFields, "\n  "))

	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox(fmt.Sprintf("Prediction options (%s)", source), content))
	return nil
}
