package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Required validates that a string is not blank.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindMissingField,
			Message: "is required",
			Params: map[string]any{
				"field": field,
			},
		},
	}
}

// MinLen validates that a string has at least min characters (runes).
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindOutOfRange,
			Message: fmt.Sprintf("must be at least %d characters", min),
			Params: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}
