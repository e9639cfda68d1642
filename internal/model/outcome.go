package model

import (
	"fmt"
	"net/http"

	"github.com/JoyOffere/linear-regression-model/internal/common"
)

// OutcomeKind classifies how a prediction attempt resolved.
type OutcomeKind string

// Outcome kind constants.
const (
	OutcomeSuccess            OutcomeKind = "SUCCESS"
	OutcomeValidationRejected OutcomeKind = "VALIDATION_REJECTED"
	OutcomeServerRejected     OutcomeKind = "SERVER_REJECTED"
	OutcomeNetworkFailure     OutcomeKind = "NETWORK_FAILURE"
	OutcomeParseFailure       OutcomeKind = "PARSE_FAILURE"
)

// Outcome is the resolved result of a single prediction attempt.
// Exactly one of the payload fields is meaningful, selected by Kind:
// RatePercent for success, Status/Detail for server rejections, Err
// for everything that failed before a usable response arrived.
type Outcome struct {
	Err         error
	Kind        OutcomeKind
	Detail      string
	RatePercent float64
	Status      int
}

// Success builds a successful outcome carrying the estimate.
func Success(ratePercent float64) Outcome {
	return Outcome{Kind: OutcomeSuccess, RatePercent: ratePercent}
}

// ValidationRejected builds an outcome for input rejected before any
// network call was made.
func ValidationRejected(reason string) Outcome {
	return Outcome{Kind: OutcomeValidationRejected, Detail: reason}
}

// ServerRejected builds an outcome for a non-200 response. Detail is
// the server-supplied message for a 422 and empty otherwise. Err
// carries common.ErrRemoteValidation for a 422 and common.ErrServer
// for every other status, so callers can classify with errors.Is.
func ServerRejected(status int, detail string) Outcome {
	err := fmt.Errorf("%w: status %d", common.ErrServer, status)
	if status == http.StatusUnprocessableEntity {
		err = common.ErrRemoteValidation
	}
	return Outcome{Kind: OutcomeServerRejected, Status: status, Detail: detail, Err: err}
}

// NetworkFailure builds an outcome for a transport-level failure. Err
// wraps common.ErrNetwork around the cause.
func NetworkFailure(cause error) Outcome {
	return Outcome{Kind: OutcomeNetworkFailure, Err: fmt.Errorf("%w: %w", common.ErrNetwork, cause)}
}

// ParseFailure builds an outcome for a 200 response whose body could
// not be converted into an estimate.
func ParseFailure(cause error) Outcome {
	return Outcome{Kind: OutcomeParseFailure, Err: cause}
}

// OK reports whether the attempt produced an estimate.
func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess
}

// Message renders the outcome as a human-readable line for display.
func (o Outcome) Message() string {
	switch o.Kind {
	case OutcomeSuccess:
		return fmt.Sprintf("Predicted graduation rate: %s", FormatRate(o.RatePercent))
	case OutcomeValidationRejected:
		return fmt.Sprintf("Invalid input: %s", o.Detail)
	case OutcomeServerRejected:
		if o.Detail != "" {
			return fmt.Sprintf("Prediction service rejected the request: %s", o.Detail)
		}
		return fmt.Sprintf("Prediction service returned status %d", o.Status)
	case OutcomeNetworkFailure:
		return o.Err.Error()
	case OutcomeParseFailure:
		return fmt.Sprintf("Could not read the prediction response: %v", o.Err)
	default:
		return fmt.Sprintf("Unknown outcome %q", string(o.Kind))
	}
}

// FormatRate renders an estimate as a percentage with two decimals,
// e.g. "52.30%".
func FormatRate(ratePercent float64) string {
	return fmt.Sprintf("%.2f%%", ratePercent)
}
