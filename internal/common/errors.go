// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")

	// Prediction service errors.
	ErrRemoteValidation = errors.New("prediction service rejected the input")
	ErrServer           = errors.New("prediction service error")
	ErrNetwork          = errors.New("prediction service unreachable")

	// Response parse errors, distinguished so callers can tell a
	// malformed body from a missing key from an unusable value.
	ErrMalformedResponse = errors.New("malformed prediction response")
	ErrEstimateMissing   = errors.New("no estimate in prediction response")
	ErrEstimateInvalid   = errors.New("estimate is not a usable number")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
