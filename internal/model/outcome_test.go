package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JoyOffere/linear-regression-model/internal/common"
)

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "52.30%", FormatRate(52.3))
	assert.Equal(t, "0.00%", FormatRate(0))
	assert.Equal(t, "100.00%", FormatRate(100))
	assert.Equal(t, "67.86%", FormatRate(67.856))
}

func TestOutcomeErrClassifiesWithSentinels(t *testing.T) {
	assert.ErrorIs(t, ServerRejected(422, "year out of range").Err, common.ErrRemoteValidation)
	assert.ErrorIs(t, ServerRejected(500, "").Err, common.ErrServer)
	assert.ErrorIs(t, ServerRejected(503, "").Err, common.ErrServer)

	cause := errors.New("dial tcp: connection refused")
	err := NetworkFailure(cause).Err
	assert.ErrorIs(t, err, common.ErrNetwork)
	assert.ErrorIs(t, err, cause)

	assert.NoError(t, Success(50).Err)
	assert.NoError(t, ValidationRejected("year must be a whole number").Err)
}

func TestOutcomeMessage(t *testing.T) {
	tests := []struct {
		name    string
		contain string
		outcome Outcome
		ok      bool
	}{
		{
			name:    "success",
			outcome: Success(52.3),
			contain: "52.30%",
			ok:      true,
		},
		{
			name:    "validation rejected",
			outcome: ValidationRejected("year must be a whole number"),
			contain: "year must be a whole number",
		},
		{
			name:    "server rejected with detail",
			outcome: ServerRejected(422, "country not supported"),
			contain: "country not supported",
		},
		{
			name:    "server rejected without detail",
			outcome: ServerRejected(503, ""),
			contain: "503",
		},
		{
			name:    "network failure",
			outcome: NetworkFailure(errors.New("dial tcp: connection refused")),
			contain: "connection refused",
		},
		{
			name:    "parse failure",
			outcome: ParseFailure(errors.New("no estimate in prediction response")),
			contain: "no estimate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.outcome.OK())
			assert.Contains(t, tt.outcome.Message(), tt.contain)
		})
	}
}
