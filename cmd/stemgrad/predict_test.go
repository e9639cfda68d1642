package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoyOffere/linear-regression-model/internal/common"
	"github.com/JoyOffere/linear-regression-model/internal/config"
	"github.com/JoyOffere/linear-regression-model/internal/model"
	"github.com/JoyOffere/linear-regression-model/internal/predictor"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		BaseURL:       baseURL,
		Timeout:       5 * time.Second,
		RequestFields: config.DefaultRequestFields(),
		ResponseKeys:  config.DefaultResponseKeys,
		Countries:     []string{"Germany"},
		STEMFields:    []string{"Engineering"},
	}
}

func testInput() model.Input {
	return model.Input{
		Year:                    "2023",
		FemaleEnrollmentPercent: "45.5",
		GenderGapIndex:          "0.75",
		Country:                 "Germany",
		STEMField:               "Engineering",
	}
}

func TestPredictOnceSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"predicted_graduation_rate": 52.3}`))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	request, outcome := predictOnce(context.Background(), cfg, predictor.NewClient(cfg), testInput(), false)

	require.Equal(t, model.OutcomeSuccess, outcome.Kind)
	assert.InDelta(t, 52.3, outcome.RatePercent, 1e-9)

	// The request used on the wire comes back for rendering.
	assert.Equal(t, 2023, request.Year)
	assert.Equal(t, "Germany", request.Country)
	assert.Equal(t, "Engineering", request.STEMField)
}

func TestPredictOnceInvalidInputSkipsNetwork(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		calls++
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	input := testInput()
	input.Year = "1985"
	input.Country = ""

	request, outcome := predictOnce(context.Background(), cfg, predictor.NewClient(cfg), input, false)

	require.Equal(t, model.OutcomeValidationRejected, outcome.Kind)
	assert.Zero(t, request)
	assert.Zero(t, calls)
	// Every violation is reported, not just the first.
	assert.Contains(t, outcome.Detail, "year")
	assert.Contains(t, outcome.Detail, "country")
}

func TestPredictOnceRemoteRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail": "country not supported"}`))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	_, outcome := predictOnce(context.Background(), cfg, predictor.NewClient(cfg), testInput(), false)

	require.Equal(t, model.OutcomeServerRejected, outcome.Kind)
	assert.Contains(t, outcome.Message(), "country not supported")
	assert.ErrorIs(t, outcome.Err, common.ErrRemoteValidation)
}

func TestRunPredictReturnsUserFacingError(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	config.SetDefaults(viper.GetViper())

	cmd := predictCmd()
	cmd.SetContext(context.Background())
	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, cmd.Flags().Set("year", "soon"))

	err := runPredict(cmd, nil)
	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Contains(t, out.String(), "Invalid input")
}

func TestRenderPrediction(t *testing.T) {
	request := model.PredictionRequest{
		Year:                    2023,
		FemaleEnrollmentPercent: 45.5,
		GenderGapIndex:          0.75,
		Country:                 "Germany",
		STEMField:               "Engineering",
	}

	out := renderPrediction(request, 52.3)
	assert.Contains(t, out, "52.30%")
	assert.Contains(t, out, "Germany")
	assert.Contains(t, out, "Engineering")
	assert.Contains(t, out, "2023")
}
