package validator

import "fmt"

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindOutOfRange,
			Message: fmt.Sprintf("must be at least %v", min),
			Params: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindOutOfRange,
			Message: fmt.Sprintf("must be at most %v", max),
			Params: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// Between validates that min <= value <= max.
func Between[T Numeric](field string, value T, min T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindOutOfRange,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
			Params: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

// NonNegative validates that a numeric value is zero or greater.
func NonNegative[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			return value >= 0
		},
		Error: ValidationError{
			Field:   field,
			Kind:    KindOutOfRange,
			Message: "cannot be negative",
			Params: map[string]any{
				"field": field,
			},
		},
	}
}
