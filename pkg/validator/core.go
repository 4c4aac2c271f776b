package validator

import (
	"errors"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError describes a single failed check.
type ValidationError struct {
	Field   string
	Kind    Kind
	Message string
	Params  map[string]any
}

// Error renders the failure as "<field> <message>".
func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + " " + e.Message
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, err.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// First evaluates rules in order and returns the first failure as a
// ValidationError. Rules after the failing one are never checked.
func First(rules ...Rule) error {
	if len(rules) == 0 {
		return ErrNoRules
	}
	for _, rule := range rules {
		if !rule.Check() {
			return rule.Error
		}
	}
	return nil
}

// Apply executes every rule and returns the collected failures as
// ValidationErrors, or nil when all rules pass.
func Apply(rules ...Rule) error {
	if len(rules) == 0 {
		return ErrNoRules
	}

	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			errs.Add(rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationError returns the ValidationError wrapped in err, if any.
func ExtractValidationError(err error) (ValidationError, bool) {
	var ve ValidationError
	if err == nil {
		return ve, false
	}
	ok := errors.As(err, &ve)
	return ve, ok
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErrs ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs
	}

	return nil
}

// KindOf returns the Kind of a validation failure. Non-validation errors
// report KindUnexpected; nil reports an empty Kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	if ve, ok := ExtractValidationError(err); ok {
		return ve.Kind
	}
	if errs := ExtractValidationErrors(err); len(errs) > 0 {
		return errs[0].Kind
	}
	return KindUnexpected
}
