package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/JoyOffere/linear-regression-model/internal/cli"
	"github.com/JoyOffere/linear-regression-model/internal/common"
	"github.com/JoyOffere/linear-regression-model/internal/config"
	"github.com/JoyOffere/linear-regression-model/internal/model"
	"github.com/JoyOffere/linear-regression-model/internal/predictor"
	"github.com/JoyOffere/linear-regression-model/internal/submission"
)

func predictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Request a one-shot graduation rate prediction",
		Long: `Submit one prediction request to the service and print the estimate.

Example:
  stemgrad predict --year 2024 --enrollment 45.5 --gap-index 0.75 \
    --country "United States" --field "Computer Science"`,
		RunE: runPredict,
	}

	cmd.Flags().StringP("year", "y", "", "Target year for the prediction (1990-2030)")
	cmd.Flags().StringP("enrollment", "e", "", "Current female enrollment percentage (0-100)")
	cmd.Flags().StringP("gap-index", "g", "", "Country gender gap index (0.0-1.0)")
	cmd.Flags().StringP("country", "c", "", "Country name")
	cmd.Flags().StringP("field", "f", "", "STEM field of study")

	return cmd
}

func runPredict(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	input := model.Input{}
	input.Year, _ = cmd.Flags().GetString("year")
	input.FemaleEnrollmentPercent, _ = cmd.Flags().GetString("enrollment")
	input.GenderGapIndex, _ = cmd.Flags().GetString("gap-index")
	input.Country, _ = cmd.Flags().GetString("country")
	input.STEMField, _ = cmd.Flags().GetString("field")

	client := predictor.NewClient(cfg)
	request, outcome := predictOnce(cmd.Context(), cfg, client, input, true)

	if !outcome.OK() {
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatError(outcome.Message()))
		return common.NewUserError("prediction failed", outcome.Err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderPrediction(request, outcome.RatePercent))
	return nil
}

// predictOnce validates the input and performs a single prediction
// attempt, returning the canonical request alongside the outcome so
// validation runs exactly once. Validation failures short-circuit
// before any network call.
func predictOnce(ctx context.Context, cfg *config.Config, client *predictor.Client, input model.Input, showProgress bool) (model.PredictionRequest, model.Outcome) {
	validator := submission.NewValidator(cfg.Countries, cfg.STEMFields)
	request, fieldErrs := validator.Validate(input)
	if len(fieldErrs) > 0 {
		return model.PredictionRequest{}, model.ValidationRejected(strings.Join(fieldErrs.Messages(), "; "))
	}

	done := make(chan model.Outcome, 1)
	go func() {
		done <- client.Predict(ctx, request)
	}()

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetDescription("[cyan]Asking the prediction service...[reset]"),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionOnCompletion(func() {
				fmt.Println()
			}),
		)
	}

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case outcome := <-done:
			if bar != nil {
				_ = bar.Finish()
			}
			return request, outcome
		case <-ticker.C:
			if bar != nil {
				_ = bar.Add(1)
			}
		}
	}
}

// renderPrediction renders the result box, echoing the submitted
// request the way the service echoes input features.
func renderPrediction(request model.PredictionRequest, ratePercent float64) string {
	content := fmt.Sprintf(`Predicted graduation rate: %s

Year:                %d
Female enrollment:   %.2f%%
Gender gap index:    %.3f
Country:             %s
STEM field:          %s`,
		cli.BoldStyle.Render(model.FormatRate(ratePercent)),
		request.Year,
		request.FemaleEnrollmentPercent,
		request.GenderGapIndex,
		request.Country,
		request.STEMField,
	)
	return cli.RenderBox(fmt.Sprintf("%s Prediction", cli.GradIcon), content)
}
