package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNoRules is returned by First and Apply when called without rules.
	ErrNoRules = errors.New("validator: no rules supplied")
)
