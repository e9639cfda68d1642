package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoyOffere/linear-regression-model/internal/common"
)

func TestParserParse(t *testing.T) {
	keys := []string{"predicted_graduation_rate", "prediction"}

	tests := []struct {
		wantErr  error
		name     string
		body     string
		wantRate float64
	}{
		{
			name:     "primary key",
			body:     `{"predicted_graduation_rate": 52.3}`,
			wantRate: 52.3,
		},
		{
			name:     "fallback key",
			body:     `{"prediction": 48.75}`,
			wantRate: 48.75,
		},
		{
			name:     "integer estimate",
			body:     `{"prediction": 67}`,
			wantRate: 67,
		},
		{
			name:     "extra fields ignored",
			body:     `{"model_used": "SGD Regressor", "predicted_graduation_rate": 12.5, "metadata": {}}`,
			wantRate: 12.5,
		},
		{
			name:    "no recognized key",
			body:    `{}`,
			wantErr: common.ErrEstimateMissing,
		},
		{
			name:    "estimate is a string",
			body:    `{"predicted_graduation_rate": "52.3"}`,
			wantErr: common.ErrEstimateInvalid,
		},
		{
			name:    "estimate is an object",
			body:    `{"prediction": {"value": 52.3}}`,
			wantErr: common.ErrEstimateInvalid,
		},
		{
			name:    "estimate above 100",
			body:    `{"prediction": 182.4}`,
			wantErr: common.ErrEstimateInvalid,
		},
		{
			name:    "estimate below 0",
			body:    `{"prediction": -3.1}`,
			wantErr: common.ErrEstimateInvalid,
		},
		{
			name:    "body is not JSON",
			body:    `<html>bad gateway</html>`,
			wantErr: common.ErrMalformedResponse,
		},
		{
			name:    "body is a JSON array",
			body:    `[52.3]`,
			wantErr: common.ErrMalformedResponse,
		},
		{
			name:    "body is null",
			body:    `null`,
			wantErr: common.ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewParser(keys)
			rate, err := parser.Parse([]byte(tt.body))

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantRate, rate, 1e-9)
		})
	}
}

func TestParserKeyPrecedence(t *testing.T) {
	// Both keys present: the first key in the configured order wins.
	body := []byte(`{"prediction": 10, "predicted_graduation_rate": 20}`)

	rate, err := NewParser([]string{"predicted_graduation_rate", "prediction"}).Parse(body)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, rate, 1e-9)

	rate, err = NewParser([]string{"prediction", "predicted_graduation_rate"}).Parse(body)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, rate, 1e-9)
}

func TestParserBoundaryValues(t *testing.T) {
	parser := NewParser([]string{"prediction"})

	rate, err := parser.Parse([]byte(`{"prediction": 0}`))
	require.NoError(t, err)
	assert.Zero(t, rate)

	rate, err = parser.Parse([]byte(`{"prediction": 100}`))
	require.NoError(t, err)
	assert.InDelta(t, 100.0, rate, 1e-9)
}
