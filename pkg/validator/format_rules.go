package validator

import "regexp"

// emailRegex requires local@domain.tld with a dotted domain and an alphabetic
// suffix of two or more letters. Anchored on both ends.
var emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidEmail validates that a string has the shape of an email address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindFormatMismatch,
			Message: "must be a valid email address",
			Params: map[string]any{
				"field": field,
			},
		},
	}
}
