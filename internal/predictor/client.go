package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/JoyOffere/linear-regression-model/internal/config"
	"github.com/JoyOffere/linear-regression-model/internal/model"
)

// Client performs the HTTP calls against the prediction service.
// Every call is a single attempt; failures are classified and returned
// as data, never retried here.
type Client struct {
	httpClient *http.Client
	builder    *Builder
	parser     *Parser
	baseURL    string
}

// detailBody is the shape of a 422 validation response.
type detailBody struct {
	Detail json.RawMessage `json:"detail"`
}

// optionsBody is the shape of the enumeration endpoints.
type optionsBody struct {
	Countries  []string `json:"countries"`
	STEMFields []string `json:"stem_fields"`
}

// NewClient creates a prediction service client from the loaded
// configuration.
func NewClient(cfg *config.Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		builder: NewBuilder(cfg.RequestFields, cfg.Countries, cfg.STEMFields),
		parser:  NewParser(cfg.ResponseKeys),
	}
}

// Predict submits one prediction request and classifies the result.
// It never returns an error; everything that can go wrong becomes an
// outcome for the caller to apply.
func (c *Client) Predict(ctx context.Context, request model.PredictionRequest) model.Outcome {
	payload, err := c.builder.Build(request)
	if err != nil {
		// Unreachable when the validator ran first.
		return model.ValidationRejected(err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return model.NetworkFailure(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	slog.Debug("Submitting prediction request",
		"country", request.Country,
		"stem_field", request.STEMField,
		"year", request.Year)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.NetworkFailure(fmt.Errorf("request failed: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.NetworkFailure(fmt.Errorf("failed to read response: %w", err))
	}

	switch resp.StatusCode {
	case http.StatusOK:
		rate, parseErr := c.parser.Parse(body)
		if parseErr != nil {
			slog.Warn("Prediction response unusable", "error", parseErr)
			return model.ParseFailure(parseErr)
		}
		return model.Success(rate)

	case http.StatusUnprocessableEntity:
		return model.ServerRejected(resp.StatusCode, extractDetail(body))

	default:
		slog.Warn("Prediction service error", "status", resp.StatusCode)
		return model.ServerRejected(resp.StatusCode, "")
	}
}

// HealthCheck reports whether the service liveness endpoint answers
// with a 200. It never returns an error.
func (c *Client) HealthCheck(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("Health check failed", "error", err)
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode == http.StatusOK
}

// Countries fetches the countries the service itself supports.
func (c *Client) Countries(ctx context.Context) ([]string, error) {
	var body optionsBody
	if err := c.getJSON(ctx, "/countries", &body); err != nil {
		return nil, err
	}
	return body.Countries, nil
}

// STEMFields fetches the STEM fields the service itself supports.
func (c *Client) STEMFields(ctx context.Context) ([]string, error) {
	var body optionsBody
	if err := c.getJSON(ctx, "/stem-fields", &body); err != nil {
		return nil, err
	}
	return body.STEMFields, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("prediction service error: %d - %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// extractDetail pulls the server-supplied message out of a 422 body.
// The primary backend sends a plain string; others nest structured
// detail, which is surfaced as compact JSON rather than dropped.
func extractDetail(body []byte) string {
	var parsed detailBody
	if err := json.Unmarshal(body, &parsed); err != nil || len(parsed.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(parsed.Detail, &text); err == nil {
		return text
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, parsed.Detail); err != nil {
		return string(parsed.Detail)
	}
	return compact.String()
}
